package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Product represents a catalog listing with bilingual display fields.
type Product struct {
	ID            uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Slug          string         `gorm:"column:slug;not null;uniqueIndex"`
	NameUz        string         `gorm:"column:name_uz;not null"`
	NameRu        string         `gorm:"column:name_ru;not null;default:''"`
	DescriptionUz *string        `gorm:"column:description_uz"`
	DescriptionRu *string        `gorm:"column:description_ru"`
	CategoryID    *uuid.UUID     `gorm:"column:category_id;type:uuid"`
	Category      *Category      `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	PriceCents    int            `gorm:"column:price_cents;not null"`
	ImageURLs     pq.StringArray `gorm:"column:image_urls;type:text[];not null;default:ARRAY[]::text[]"`
	IsVisible     bool           `gorm:"column:is_visible;not null;default:true"`
	IsFeatured    bool           `gorm:"column:is_featured;not null;default:false"`
	SortOrder     int            `gorm:"column:sort_order;not null;default:0"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
