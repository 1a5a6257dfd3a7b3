package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/begzodnazarov/mebelhub-backend/pkg/enums"
)

// OrderItem is the structured snapshot of one cart line at submission time.
// The wire contract still carries the flattened summary string; this copy
// exists so admin views do not have to re-parse it.
type OrderItem struct {
	ProductID  string `json:"product_id"`
	Name       string `json:"name"`
	PriceCents int    `json:"price_cents"`
	Quantity   int    `json:"quantity"`
}

// Order is a submitted customer order.
type Order struct {
	ID           uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CustomerName string            `gorm:"column:customer_name;not null"`
	Email        string            `gorm:"column:email;not null"`
	Phone        string            `gorm:"column:phone;not null;default:''"`
	Address      string            `gorm:"column:address;not null;default:''"`
	ProductName  string            `gorm:"column:product_name;not null;default:''"`
	Description  string            `gorm:"column:description;not null;default:''"`
	DesignFiles  pq.StringArray    `gorm:"column:design_files;type:text[];not null;default:ARRAY[]::text[]"`
	Items        []OrderItem       `gorm:"column:items;type:jsonb;serializer:json"`
	TotalCents   int               `gorm:"column:total_cents;not null;default:0"`
	Status       enums.OrderStatus `gorm:"column:status;not null;default:'new'"`
	CreatedAt    time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
