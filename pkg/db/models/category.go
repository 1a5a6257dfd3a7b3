package models

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products for storefront navigation.
type Category struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Slug      string    `gorm:"column:slug;not null;uniqueIndex"`
	NameUz    string    `gorm:"column:name_uz;not null"`
	NameRu    string    `gorm:"column:name_ru;not null;default:''"`
	ImageURL  *string   `gorm:"column:image_url"`
	IsVisible bool      `gorm:"column:is_visible;not null;default:true"`
	SortOrder int       `gorm:"column:sort_order;not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
