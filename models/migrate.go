package models

import "gorm.io/gorm"

// All 回傳所有需要建立資料表的 model
func All() []any {
	return []any{&Project{}, &Image{}, &Setting{}}
}

// AutoMigrate 建立或更新所有資料表
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(All()...)
}
