package products

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/begzodnazarov/mebelhub-backend/internal/currency"
	"github.com/begzodnazarov/mebelhub-backend/pkg/db/models"
	"github.com/begzodnazarov/mebelhub-backend/pkg/types"
)

// ProductDTO is the public product payload with display fields resolved for
// the request locale.
type ProductDTO struct {
	ID           uuid.UUID `json:"id"`
	Slug         string    `json:"slug"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	CategorySlug string    `json:"category_slug,omitempty"`
	CategoryName string    `json:"category_name,omitempty"`
	PriceCents   int       `json:"price_cents"`
	PriceUZS     string    `json:"price_uzs"`
	ImageURLs    []string  `json:"image_urls"`
	IsFeatured   bool      `json:"is_featured"`
	CreatedAt    time.Time `json:"created_at"`
}

// AdminProductDTO carries both language variants plus visibility controls.
type AdminProductDTO struct {
	ID            uuid.UUID  `json:"id"`
	Slug          string     `json:"slug"`
	NameUz        string     `json:"name_uz"`
	NameRu        string     `json:"name_ru"`
	DescriptionUz *string    `json:"description_uz,omitempty"`
	DescriptionRu *string    `json:"description_ru,omitempty"`
	CategoryID    *uuid.UUID `json:"category_id,omitempty"`
	PriceCents    int        `json:"price_cents"`
	ImageURLs     []string   `json:"image_urls"`
	IsVisible     bool       `json:"is_visible"`
	IsFeatured    bool       `json:"is_featured"`
	SortOrder     int        `json:"sort_order"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ProductListResult bundles a page of public products with the next cursor.
type ProductListResult struct {
	Products   []ProductDTO `json:"products"`
	NextCursor string       `json:"next_cursor,omitempty"`
}

// AdminProductListResult bundles a page of admin products with the next cursor.
type AdminProductListResult struct {
	Products   []AdminProductDTO `json:"products"`
	NextCursor string            `json:"next_cursor,omitempty"`
}

// NewProductDTO maps the persisted row to its public wire shape.
func NewProductDTO(product *models.Product, locale string, rate decimal.Decimal) *ProductDTO {
	name := types.BilingualText{Uz: product.NameUz, Ru: product.NameRu}
	dto := &ProductDTO{
		ID:         product.ID,
		Slug:       product.Slug,
		Name:       name.Resolve(locale),
		PriceCents: product.PriceCents,
		PriceUZS:   currency.FormatUZS(product.PriceCents, rate),
		ImageURLs:  append([]string{}, product.ImageURLs...),
		IsFeatured: product.IsFeatured,
		CreatedAt:  product.CreatedAt,
	}
	desc := types.BilingualText{}
	if product.DescriptionUz != nil {
		desc.Uz = *product.DescriptionUz
	}
	if product.DescriptionRu != nil {
		desc.Ru = *product.DescriptionRu
	}
	dto.Description = desc.Resolve(locale)
	if product.Category != nil {
		dto.CategorySlug = product.Category.Slug
		catName := types.BilingualText{Uz: product.Category.NameUz, Ru: product.Category.NameRu}
		dto.CategoryName = catName.Resolve(locale)
	}
	return dto
}

// NewAdminProductDTO maps the persisted row to its admin wire shape.
func NewAdminProductDTO(product *models.Product) *AdminProductDTO {
	return &AdminProductDTO{
		ID:            product.ID,
		Slug:          product.Slug,
		NameUz:        product.NameUz,
		NameRu:        product.NameRu,
		DescriptionUz: product.DescriptionUz,
		DescriptionRu: product.DescriptionRu,
		CategoryID:    product.CategoryID,
		PriceCents:    product.PriceCents,
		ImageURLs:     append([]string{}, product.ImageURLs...),
		IsVisible:     product.IsVisible,
		IsFeatured:    product.IsFeatured,
		SortOrder:     product.SortOrder,
		CreatedAt:     product.CreatedAt,
		UpdatedAt:     product.UpdatedAt,
	}
}
