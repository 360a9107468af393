package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Image 代表上傳到物件儲存的圖片
// 包含圖片 URL 以及上傳者在驗證服務的識別字串，用於限制上傳頻率
type Image struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"index"`

	UploaderID  string `gorm:"type:varchar(255);not null;index;<-:create"`
	Url         string `gorm:"type:text;not null;<-:create"`
	ContentType string `gorm:"type:varchar(100);not null;<-:create"`
	Size        int64  `gorm:"not null;<-:create"`
}

func (i *Image) BeforeCreate(tx *gorm.DB) error {
	const op = "Image.BeforeCreate"
	if i.ID != uuid.Nil {
		return nil
	}
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("[%s] Fail to generate id, err=%w", op, err)
	}
	i.ID = id
	return nil
}
