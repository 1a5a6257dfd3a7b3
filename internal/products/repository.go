package products

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/begzodnazarov/mebelhub-backend/pkg/db/models"
	"github.com/begzodnazarov/mebelhub-backend/pkg/pagination"
)

// ListFilters narrows the public product listing.
type ListFilters struct {
	CategorySlug string
	FeaturedOnly bool
}

// Repository wires together product persistence helpers.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByID loads the product regardless of visibility.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).Preload("Category").First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindVisibleByID loads the product only when it is publicly visible.
func (r *Repository) FindVisibleByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ? AND is_visible = TRUE", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// FindVisibleBySlug loads a visible product by its slug.
func (r *Repository) FindVisibleBySlug(ctx context.Context, slug string) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).Preload("Category").First(&product, "slug = ? AND is_visible = TRUE", slug).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// ListVisible returns visible products with optional filters and cursor pagination.
// The cursor carries the sort position so pages stay aligned with the
// sort_order-first ordering.
func (r *Repository) ListVisible(ctx context.Context, filters ListFilters, limit int, cursor *pagination.SortCursor) ([]models.Product, error) {
	query := r.db.WithContext(ctx).Model(&models.Product{}).
		Where("products.is_visible = TRUE").
		Order("products.sort_order asc, products.created_at desc, products.id desc").
		Limit(limit)

	if filters.CategorySlug != "" {
		query = query.Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.slug = ?", filters.CategorySlug)
	}
	if filters.FeaturedOnly {
		query = query.Where("products.is_featured = TRUE")
	}
	if cursor != nil {
		query = query.Where(
			"products.sort_order > ? OR (products.sort_order = ? AND (products.created_at, products.id) < (?, ?))",
			cursor.SortOrder, cursor.SortOrder, cursor.CreatedAt, cursor.ID,
		)
	}

	var rows []models.Product
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListAll returns every product for the admin table, newest first.
func (r *Repository) ListAll(ctx context.Context, limit int, cursor *pagination.Cursor) ([]models.Product, error) {
	query := r.db.WithContext(ctx).Model(&models.Product{}).
		Preload("Category").
		Order("created_at desc, id desc").
		Limit(limit)
	if cursor != nil {
		query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
	}

	var rows []models.Product
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Create inserts the product.
func (r *Repository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// Update saves the full product row.
func (r *Repository) Update(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Save(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes the product row.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id).Error
}
