package models

import (
	"time"

	"github.com/google/uuid"
)

// GalleryItem is a showroom photo displayed on the storefront gallery page.
type GalleryItem struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	TitleUz   string    `gorm:"column:title_uz;not null;default:''"`
	TitleRu   string    `gorm:"column:title_ru;not null;default:''"`
	ImageURL  string    `gorm:"column:image_url;not null"`
	IsVisible bool      `gorm:"column:is_visible;not null;default:true"`
	SortOrder int       `gorm:"column:sort_order;not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
