package models

import (
	"time"

	"github.com/google/uuid"
)

// Banner is a rotating hero slide on the storefront landing page.
type Banner struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	TitleUz    string    `gorm:"column:title_uz;not null;default:''"`
	TitleRu    string    `gorm:"column:title_ru;not null;default:''"`
	SubtitleUz *string   `gorm:"column:subtitle_uz"`
	SubtitleRu *string   `gorm:"column:subtitle_ru"`
	ImageURL   string    `gorm:"column:image_url;not null"`
	LinkURL    *string   `gorm:"column:link_url"`
	IsActive   bool      `gorm:"column:is_active;not null;default:true"`
	SortOrder  int       `gorm:"column:sort_order;not null;default:0"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
