package models

import (
	"time"

	"github.com/google/uuid"
)

// ServiceItem describes an offered service (delivery, assembly, design).
type ServiceItem struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	NameUz        string    `gorm:"column:name_uz;not null"`
	NameRu        string    `gorm:"column:name_ru;not null;default:''"`
	DescriptionUz *string   `gorm:"column:description_uz"`
	DescriptionRu *string   `gorm:"column:description_ru"`
	IconURL       *string   `gorm:"column:icon_url"`
	IsVisible     bool      `gorm:"column:is_visible;not null;default:true"`
	SortOrder     int       `gorm:"column:sort_order;not null;default:0"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
