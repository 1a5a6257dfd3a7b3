package content

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/begzodnazarov/mebelhub-backend/pkg/db/models"
)

// Repository persists gallery items, banners, service items, and store
// locations. The four tables share the same small CRUD surface, so they
// live behind a single repository instead of four near-identical ones.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ListVisibleGalleryItems(ctx context.Context) ([]models.GalleryItem, error) {
	var rows []models.GalleryItem
	if err := r.db.WithContext(ctx).
		Where("is_visible = TRUE").
		Order("sort_order asc, created_at desc").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository) ListAllGalleryItems(ctx context.Context) ([]models.GalleryItem, error) {
	var rows []models.GalleryItem
	if err := r.db.WithContext(ctx).Order("sort_order asc, created_at desc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository) FindGalleryItemByID(ctx context.Context, id uuid.UUID) (*models.GalleryItem, error) {
	var row models.GalleryItem
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *Repository) CreateGalleryItem(ctx context.Context, row *models.GalleryItem) (*models.GalleryItem, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *Repository) UpdateGalleryItem(ctx context.Context, row *models.GalleryItem) (*models.GalleryItem, error) {
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *Repository) DeleteGalleryItem(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.GalleryItem{}, "id = ?", id).Error
}

func (r *Repository) ListActiveBanners(ctx context.Context) ([]models.Banner, error) {
	var rows []models.Banner
	if err := r.db.WithContext(ctx).
		Where("is_active = TRUE").
		Order("sort_order asc, created_at desc").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository) ListAllBanners(ctx context.Context) ([]models.Banner, error) {
	var rows []models.Banner
	if err := r.db.WithContext(ctx).Order("sort_order asc, created_at desc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository) FindBannerByID(ctx context.Context, id uuid.UUID) (*models.Banner, error) {
	var row models.Banner
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *Repository) CreateBanner(ctx context.Context, row *models.Banner) (*models.Banner, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *Repository) UpdateBanner(ctx context.Context, row *models.Banner) (*models.Banner, error) {
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *Repository) DeleteBanner(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Banner{}, "id = ?", id).Error
}

func (r *Repository) ListVisibleServiceItems(ctx context.Context) ([]models.ServiceItem, error) {
	var rows []models.ServiceItem
	if err := r.db.WithContext(ctx).
		Where("is_visible = TRUE").
		Order("sort_order asc, created_at asc").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository) ListAllServiceItems(ctx context.Context) ([]models.ServiceItem, error) {
	var rows []models.ServiceItem
	if err := r.db.WithContext(ctx).Order("sort_order asc, created_at asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository) FindServiceItemByID(ctx context.Context, id uuid.UUID) (*models.ServiceItem, error) {
	var row models.ServiceItem
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *Repository) CreateServiceItem(ctx context.Context, row *models.ServiceItem) (*models.ServiceItem, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *Repository) UpdateServiceItem(ctx context.Context, row *models.ServiceItem) (*models.ServiceItem, error) {
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *Repository) DeleteServiceItem(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.ServiceItem{}, "id = ?", id).Error
}

func (r *Repository) ListVisibleStoreLocations(ctx context.Context) ([]models.StoreLocation, error) {
	var rows []models.StoreLocation
	if err := r.db.WithContext(ctx).
		Where("is_visible = TRUE").
		Order("created_at asc").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository) ListAllStoreLocations(ctx context.Context) ([]models.StoreLocation, error) {
	var rows []models.StoreLocation
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository) FindStoreLocationByID(ctx context.Context, id uuid.UUID) (*models.StoreLocation, error) {
	var row models.StoreLocation
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *Repository) CreateStoreLocation(ctx context.Context, row *models.StoreLocation) (*models.StoreLocation, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *Repository) UpdateStoreLocation(ctx context.Context, row *models.StoreLocation) (*models.StoreLocation, error) {
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *Repository) DeleteStoreLocation(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.StoreLocation{}, "id = ?", id).Error
}
