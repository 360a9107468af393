package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"folio/imageset"
)

// Project 代表作品集中的一個作品
// 包含作品資訊、分類、使用技術以及輪播圖片等資訊
type Project struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time      `gorm:"index"`
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Title        string   `gorm:"type:varchar(255);not null"`
	Description  string   `gorm:"type:text;not null"`
	Category     string   `gorm:"type:varchar(100);not null;index"`
	Technologies []string `gorm:"type:text;serializer:json"`
	DemoURL      string   `gorm:"type:text;not null"`
	RepoURL      string   `gorm:"type:text;not null"`
	Featured     bool     `gorm:"not null"`

	// Image 是舊版只能存一張圖片時留下的欄位，必須與 Images[0] 一致
	Image  *string   `gorm:"type:text"`
	Images ImageList `gorm:"not null"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	const op = "Project.BeforeCreate"
	if p.ID != uuid.Nil {
		return nil
	}
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("[%s] Fail to generate id, err=%w", op, err)
	}
	p.ID = id
	return nil
}

// ImageSet 從資料庫的兩個圖片欄位建立圖片列表
func (p *Project) ImageSet() *imageset.Set {
	return imageset.Load(imageset.Persisted{
		LegacyImage: p.Image,
		Images:      p.Images,
	})
}

// SetImages 同時更新兩個圖片欄位，兩者只能一起寫入
func (p *Project) SetImages(persisted imageset.Persisted) {
	p.Image = persisted.LegacyImage
	p.Images = persisted.Images
}
