package models

import (
	"time"

	"github.com/google/uuid"
)

// StoreLocation is a physical showroom listed on the contacts page.
type StoreLocation struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	NameUz       string    `gorm:"column:name_uz;not null"`
	NameRu       string    `gorm:"column:name_ru;not null;default:''"`
	AddressUz    string    `gorm:"column:address_uz;not null;default:''"`
	AddressRu    string    `gorm:"column:address_ru;not null;default:''"`
	Phone        *string   `gorm:"column:phone"`
	WorkingHours *string   `gorm:"column:working_hours"`
	MapURL       *string   `gorm:"column:map_url"`
	IsVisible    bool      `gorm:"column:is_visible;not null;default:true"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
