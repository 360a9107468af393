package models

import "time"

// Setting 代表網站的設定值，例如網站標題、聯絡信箱
type Setting struct {
	Key       string `gorm:"type:varchar(100);primaryKey"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}
