package products

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/begzodnazarov/mebelhub-backend/internal/currency"
	"github.com/begzodnazarov/mebelhub-backend/pkg/db"
	"github.com/begzodnazarov/mebelhub-backend/pkg/db/models"
	pkgerrors "github.com/begzodnazarov/mebelhub-backend/pkg/errors"
	"github.com/begzodnazarov/mebelhub-backend/pkg/pagination"
)

// Service exposes catalog reads and admin product management.
type Service interface {
	List(ctx context.Context, locale string, filters ListFilters, params pagination.Params) (*ProductListResult, error)
	GetBySlug(ctx context.Context, locale, slug string) (*ProductDTO, error)

	AdminList(ctx context.Context, params pagination.Params) (*AdminProductListResult, error)
	AdminGet(ctx context.Context, id uuid.UUID) (*AdminProductDTO, error)
	AdminCreate(ctx context.Context, input CreateProductInput) (*AdminProductDTO, error)
	AdminUpdate(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*AdminProductDTO, error)
	AdminDelete(ctx context.Context, id uuid.UUID) error
}

// CreateProductInput holds the validated payload to create a product.
type CreateProductInput struct {
	Slug          string
	NameUz        string
	NameRu        string
	DescriptionUz *string
	DescriptionRu *string
	CategoryID    *uuid.UUID
	PriceCents    int
	ImageURLs     []string
	IsVisible     bool
	IsFeatured    bool
	SortOrder     int
}

// UpdateProductInput holds optional mutation values for a product.
type UpdateProductInput struct {
	Slug          *string
	NameUz        *string
	NameRu        *string
	DescriptionUz *string
	DescriptionRu *string
	CategoryID    *uuid.UUID
	ClearCategory bool
	PriceCents    *int
	ImageURLs     *[]string
	IsVisible     *bool
	IsFeatured    *bool
	SortOrder     *int
}

type productRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	FindVisibleBySlug(ctx context.Context, slug string) (*models.Product, error)
	ListVisible(ctx context.Context, filters ListFilters, limit int, cursor *pagination.SortCursor) ([]models.Product, error)
	ListAll(ctx context.Context, limit int, cursor *pagination.Cursor) ([]models.Product, error)
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) (*models.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo  productRepo
	rates *currency.Resolver
}

// NewService constructs a product service instance.
func NewService(repo productRepo, rates *currency.Resolver) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	return &service{repo: repo, rates: rates}, nil
}

func (s *service) List(ctx context.Context, locale string, filters ListFilters, params pagination.Params) (*ProductListResult, error) {
	cursor, err := pagination.ParseSortCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}
	limit := pagination.NormalizeLimit(params.Limit)

	rows, err := s.repo.ListVisible(ctx, filters, limit+1, cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list products")
	}

	rate := s.rates.Rate(ctx)
	result := &ProductListResult{Products: make([]ProductDTO, 0, len(rows))}
	for i := range rows {
		if i == limit {
			last := rows[limit-1]
			result.NextCursor = pagination.EncodeSortCursor(pagination.SortCursor{SortOrder: last.SortOrder, CreatedAt: last.CreatedAt, ID: last.ID})
			break
		}
		result.Products = append(result.Products, *NewProductDTO(&rows[i], locale, rate))
	}
	return result, nil
}

func (s *service) GetBySlug(ctx context.Context, locale, slug string) (*ProductDTO, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product slug required")
	}
	row, err := s.repo.FindVisibleBySlug(ctx, slug)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product")
	}
	return NewProductDTO(row, locale, s.rates.Rate(ctx)), nil
}

func (s *service) AdminList(ctx context.Context, params pagination.Params) (*AdminProductListResult, error) {
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}
	limit := pagination.NormalizeLimit(params.Limit)

	rows, err := s.repo.ListAll(ctx, limit+1, cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list products")
	}

	result := &AdminProductListResult{Products: make([]AdminProductDTO, 0, len(rows))}
	for i := range rows {
		if i == limit {
			last := rows[limit-1]
			result.NextCursor = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
			break
		}
		result.Products = append(result.Products, *NewAdminProductDTO(&rows[i]))
	}
	return result, nil
}

func (s *service) AdminGet(ctx context.Context, id uuid.UUID) (*AdminProductDTO, error) {
	row, err := s.loadProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewAdminProductDTO(row), nil
}

func (s *service) AdminCreate(ctx context.Context, input CreateProductInput) (*AdminProductDTO, error) {
	slug := strings.TrimSpace(input.Slug)
	nameUz := strings.TrimSpace(input.NameUz)
	if slug == "" || nameUz == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "slug and name_uz are required")
	}
	if input.PriceCents < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price_cents cannot be negative")
	}

	product := &models.Product{
		Slug:          slug,
		NameUz:        nameUz,
		NameRu:        strings.TrimSpace(input.NameRu),
		DescriptionUz: input.DescriptionUz,
		DescriptionRu: input.DescriptionRu,
		CategoryID:    input.CategoryID,
		PriceCents:    input.PriceCents,
		ImageURLs:     input.ImageURLs,
		IsVisible:     input.IsVisible,
		IsFeatured:    input.IsFeatured,
		SortOrder:     input.SortOrder,
	}
	created, err := s.repo.Create(ctx, product)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "slug already in use")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert product")
	}
	return NewAdminProductDTO(created), nil
}

func (s *service) AdminUpdate(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*AdminProductDTO, error) {
	product, err := s.loadProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	applyProductUpdate(product, input)
	if product.PriceCents < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price_cents cannot be negative")
	}

	updated, err := s.repo.Update(ctx, product)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "slug already in use")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update product")
	}
	return NewAdminProductDTO(updated), nil
}

func (s *service) AdminDelete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.loadProduct(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete product")
	}
	return nil
}

func (s *service) loadProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product")
	}
	return row, nil
}

func applyProductUpdate(product *models.Product, input UpdateProductInput) {
	if input.Slug != nil {
		product.Slug = strings.TrimSpace(*input.Slug)
	}
	if input.NameUz != nil {
		product.NameUz = strings.TrimSpace(*input.NameUz)
	}
	if input.NameRu != nil {
		product.NameRu = strings.TrimSpace(*input.NameRu)
	}
	if input.DescriptionUz != nil {
		product.DescriptionUz = input.DescriptionUz
	}
	if input.DescriptionRu != nil {
		product.DescriptionRu = input.DescriptionRu
	}
	if input.ClearCategory {
		product.CategoryID = nil
		product.Category = nil
	} else if input.CategoryID != nil {
		product.CategoryID = input.CategoryID
	}
	if input.PriceCents != nil {
		product.PriceCents = *input.PriceCents
	}
	if input.ImageURLs != nil {
		product.ImageURLs = append([]string{}, (*input.ImageURLs)...)
	}
	if input.IsVisible != nil {
		product.IsVisible = *input.IsVisible
	}
	if input.IsFeatured != nil {
		product.IsFeatured = *input.IsFeatured
	}
	if input.SortOrder != nil {
		product.SortOrder = *input.SortOrder
	}
}

