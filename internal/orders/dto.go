package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/begzodnazarov/mebelhub-backend/internal/currency"
	"github.com/begzodnazarov/mebelhub-backend/pkg/db/models"
	"github.com/begzodnazarov/mebelhub-backend/pkg/enums"
)

// OrderItemDTO mirrors one snapshotted cart line.
type OrderItemDTO struct {
	ProductID  string `json:"product_id"`
	Name       string `json:"name"`
	PriceCents int    `json:"price_cents"`
	Quantity   int    `json:"quantity"`
}

// OrderDTO is the full order payload used by the admin dashboard and
// returned on submission.
type OrderDTO struct {
	ID           uuid.UUID         `json:"id"`
	CustomerName string            `json:"customer_name"`
	Email        string            `json:"email"`
	Phone        string            `json:"phone"`
	Address      string            `json:"address,omitempty"`
	ProductName  string            `json:"product_name"`
	Description  string            `json:"description,omitempty"`
	DesignFiles  []string          `json:"design_files,omitempty"`
	Items        []OrderItemDTO    `json:"items,omitempty"`
	TotalCents   int               `json:"total_cents"`
	TotalUZS     string            `json:"total_uzs,omitempty"`
	Status       enums.OrderStatus `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// OrderListResult wraps one page of orders plus the next page cursor.
type OrderListResult struct {
	Orders     []OrderDTO `json:"orders"`
	NextCursor string     `json:"next_cursor,omitempty"`
}

// NewOrderDTO converts the stored row into the wire payload. The rate is
// used to render the UZS total alongside the raw cents.
func NewOrderDTO(row *models.Order, rate decimal.Decimal) *OrderDTO {
	items := make([]OrderItemDTO, 0, len(row.Items))
	for _, item := range row.Items {
		items = append(items, OrderItemDTO(item))
	}
	dto := &OrderDTO{
		ID:           row.ID,
		CustomerName: row.CustomerName,
		Email:        row.Email,
		Phone:        row.Phone,
		Address:      row.Address,
		ProductName:  row.ProductName,
		Description:  row.Description,
		DesignFiles:  append([]string(nil), row.DesignFiles...),
		Items:        items,
		TotalCents:   row.TotalCents,
		Status:       row.Status,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
	if row.TotalCents > 0 {
		dto.TotalUZS = currency.FormatUZS(row.TotalCents, rate)
	}
	return dto
}
