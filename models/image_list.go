package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"folio/imageset"
)

// ImageList 是以 JSON 陣列儲存的有序圖片列表。
// 讀取時如果資料不是字串陣列，一律視為沒有資料。
type ImageList []string

func (l ImageList) Value() (driver.Value, error) {
	const op = "ImageList.Value"
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("[%s] Fail to marshal image list, err=%w", op, err)
	}
	return string(data), nil
}

func (l *ImageList) Scan(value any) error {
	switch v := value.(type) {
	case string:
		*l = imageset.ParseImages([]byte(v))
	case []byte:
		*l = imageset.ParseImages(v)
	default:
		*l = nil
	}
	return nil
}

func (ImageList) GormDataType() string {
	return "json"
}

func (ImageList) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "postgres":
		return "jsonb"
	default:
		return "text"
	}
}
