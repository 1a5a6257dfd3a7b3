package cart

import (
	"github.com/shopspring/decimal"

	"github.com/begzodnazarov/mebelhub-backend/internal/currency"
)

// LineDTO is one cart line on the wire, with the display name resolved for
// the request locale and the UZS price precomputed.
type LineDTO struct {
	ProductID  string `json:"product_id"`
	Slug       string `json:"slug"`
	Name       string `json:"name"`
	PriceCents int    `json:"price_cents"`
	PriceUZS   string `json:"price_uzs"`
	ImageURL   string `json:"image_url,omitempty"`
	Quantity   int    `json:"quantity"`
	LineCents  int    `json:"line_cents"`
}

// CartDTO is the full cart payload. Totals are derived on every read.
type CartDTO struct {
	Items      []LineDTO `json:"items"`
	TotalItems int       `json:"total_items"`
	TotalCents int       `json:"total_cents"`
	TotalUZS   string    `json:"total_uzs"`
}

// NewCartDTO maps the aggregate to its wire shape.
func NewCartDTO(items *Items, locale string, rate decimal.Decimal) *CartDTO {
	lines := items.Lines()
	dto := &CartDTO{
		Items:      make([]LineDTO, 0, len(lines)),
		TotalItems: items.TotalItems(),
		TotalCents: items.TotalCents(),
	}
	for _, line := range lines {
		dto.Items = append(dto.Items, LineDTO{
			ProductID:  line.ProductID,
			Slug:       line.Slug,
			Name:       line.Name.Resolve(locale),
			PriceCents: line.PriceCents,
			PriceUZS:   currency.FormatUZS(line.PriceCents, rate),
			ImageURL:   line.ImageURL,
			Quantity:   line.Quantity,
			LineCents:  line.PriceCents * line.Quantity,
		})
	}
	dto.TotalUZS = currency.FormatUZS(dto.TotalCents, rate)
	return dto
}
