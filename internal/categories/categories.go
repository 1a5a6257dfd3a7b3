package categories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/begzodnazarov/mebelhub-backend/pkg/db"
	"github.com/begzodnazarov/mebelhub-backend/pkg/db/models"
	pkgerrors "github.com/begzodnazarov/mebelhub-backend/pkg/errors"
	"github.com/begzodnazarov/mebelhub-backend/pkg/types"
)

// CategoryDTO is the public category payload.
type CategoryDTO struct {
	ID       uuid.UUID `json:"id"`
	Slug     string    `json:"slug"`
	Name     string    `json:"name"`
	ImageURL *string   `json:"image_url,omitempty"`
}

// AdminCategoryDTO carries both language variants plus visibility controls.
type AdminCategoryDTO struct {
	ID        uuid.UUID `json:"id"`
	Slug      string    `json:"slug"`
	NameUz    string    `json:"name_uz"`
	NameRu    string    `json:"name_ru"`
	ImageURL  *string   `json:"image_url,omitempty"`
	IsVisible bool      `json:"is_visible"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryInput is the admin create/update payload.
type CategoryInput struct {
	Slug      string
	NameUz    string
	NameRu    string
	ImageURL  *string
	IsVisible bool
	SortOrder int
}

// Repository persists categories.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var row models.Category
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *Repository) ListVisible(ctx context.Context) ([]models.Category, error) {
	var rows []models.Category
	if err := r.db.WithContext(ctx).
		Where("is_visible = TRUE").
		Order("sort_order asc, created_at asc").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository) ListAll(ctx context.Context) ([]models.Category, error) {
	var rows []models.Category
	if err := r.db.WithContext(ctx).Order("sort_order asc, created_at asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository) Create(ctx context.Context, row *models.Category) (*models.Category, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *Repository) Update(ctx context.Context, row *models.Category) (*models.Category, error) {
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id).Error
}

// Service exposes category reads and admin management.
type Service interface {
	List(ctx context.Context, locale string) ([]CategoryDTO, error)
	AdminList(ctx context.Context) ([]AdminCategoryDTO, error)
	AdminCreate(ctx context.Context, input CategoryInput) (*AdminCategoryDTO, error)
	AdminUpdate(ctx context.Context, id uuid.UUID, input CategoryInput) (*AdminCategoryDTO, error)
	AdminDelete(ctx context.Context, id uuid.UUID) error
}

type categoryRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Category, error)
	ListVisible(ctx context.Context) ([]models.Category, error)
	ListAll(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, row *models.Category) (*models.Category, error)
	Update(ctx context.Context, row *models.Category) (*models.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo categoryRepo
}

// NewService constructs a category service instance.
func NewService(repo categoryRepo) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("category repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context, locale string) ([]CategoryDTO, error) {
	rows, err := s.repo.ListVisible(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list categories")
	}
	out := make([]CategoryDTO, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		name := types.BilingualText{Uz: row.NameUz, Ru: row.NameRu}
		out = append(out, CategoryDTO{
			ID:       row.ID,
			Slug:     row.Slug,
			Name:     name.Resolve(locale),
			ImageURL: row.ImageURL,
		})
	}
	return out, nil
}

func (s *service) AdminList(ctx context.Context) ([]AdminCategoryDTO, error) {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list categories")
	}
	out := make([]AdminCategoryDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *newAdminDTO(&rows[i]))
	}
	return out, nil
}

func (s *service) AdminCreate(ctx context.Context, input CategoryInput) (*AdminCategoryDTO, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	row := &models.Category{
		Slug:      strings.TrimSpace(input.Slug),
		NameUz:    strings.TrimSpace(input.NameUz),
		NameRu:    strings.TrimSpace(input.NameRu),
		ImageURL:  input.ImageURL,
		IsVisible: input.IsVisible,
		SortOrder: input.SortOrder,
	}
	created, err := s.repo.Create(ctx, row)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "slug already in use")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert category")
	}
	return newAdminDTO(created), nil
}

func (s *service) AdminUpdate(ctx context.Context, id uuid.UUID, input CategoryInput) (*AdminCategoryDTO, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	row, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	row.Slug = strings.TrimSpace(input.Slug)
	row.NameUz = strings.TrimSpace(input.NameUz)
	row.NameRu = strings.TrimSpace(input.NameRu)
	row.ImageURL = input.ImageURL
	row.IsVisible = input.IsVisible
	row.SortOrder = input.SortOrder

	updated, err := s.repo.Update(ctx, row)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "slug already in use")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update category")
	}
	return newAdminDTO(updated), nil
}

func (s *service) AdminDelete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.load(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete category")
	}
	return nil
}

func (s *service) load(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "category not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load category")
	}
	return row, nil
}

func validateInput(input CategoryInput) error {
	if strings.TrimSpace(input.Slug) == "" || strings.TrimSpace(input.NameUz) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "slug and name_uz are required")
	}
	return nil
}

func newAdminDTO(row *models.Category) *AdminCategoryDTO {
	return &AdminCategoryDTO{
		ID:        row.ID,
		Slug:      row.Slug,
		NameUz:    row.NameUz,
		NameRu:    row.NameRu,
		ImageURL:  row.ImageURL,
		IsVisible: row.IsVisible,
		SortOrder: row.SortOrder,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
