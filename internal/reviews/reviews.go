package reviews

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
)

// ReviewDTO is the public testimonial payload.
type ReviewDTO struct {
	ID         uuid.UUID `json:"id"`
	AuthorName string    `json:"author_name"`
	Body       string    `json:"body,omitempty"`
	Rating     int       `json:"rating"`
	CreatedAt  time.Time `json:"created_at"`
}

// AdminReviewDTO adds moderation state for the dashboard.
type AdminReviewDTO struct {
	ID          uuid.UUID `json:"id"`
	AuthorName  string    `json:"author_name"`
	Body        string    `json:"body"`
	Rating      int       `json:"rating"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SubmitInput is the public review submission payload.
type SubmitInput struct {
	AuthorName string
	Body       string
	Rating     int
}

// AdminUpdateInput edits a review's content during moderation.
type AdminUpdateInput struct {
	AuthorName string
	Body       string
	Rating     int
}

// Repository persists customer reviews.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	var row models.Review
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *Repository) ListPublished(ctx context.Context) ([]models.Review, error) {
	var rows []models.Review
	if err := r.db.WithContext(ctx).
		Where("is_published = TRUE").
		Order("created_at desc").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository) ListAll(ctx context.Context) ([]models.Review, error) {
	var rows []models.Review
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository) Create(ctx context.Context, row *models.Review) (*models.Review, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *Repository) Update(ctx context.Context, row *models.Review) (*models.Review, error) {
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Review{}, "id = ?", id).Error
}

// Service exposes the public testimonial feed plus admin moderation.
// Submissions land unpublished and stay off the storefront until an
// admin publishes them.
type Service interface {
	ListPublished(ctx context.Context) ([]ReviewDTO, error)
	Submit(ctx context.Context, input SubmitInput) (*ReviewDTO, error)

	AdminList(ctx context.Context) ([]AdminReviewDTO, error)
	AdminUpdate(ctx context.Context, id uuid.UUID, input AdminUpdateInput) (*AdminReviewDTO, error)
	AdminSetPublished(ctx context.Context, id uuid.UUID, published bool) (*AdminReviewDTO, error)
	AdminDelete(ctx context.Context, id uuid.UUID) error
}

type reviewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Review, error)
	ListPublished(ctx context.Context) ([]models.Review, error)
	ListAll(ctx context.Context) ([]models.Review, error)
	Create(ctx context.Context, row *models.Review) (*models.Review, error)
	Update(ctx context.Context, row *models.Review) (*models.Review, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo reviewRepo
}

// NewService constructs a review service instance.
func NewService(repo reviewRepo) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("review repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListPublished(ctx context.Context) ([]ReviewDTO, error) {
	rows, err := s.repo.ListPublished(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list reviews")
	}
	out := make([]ReviewDTO, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		out = append(out, ReviewDTO{
			ID:         row.ID,
			AuthorName: row.AuthorName,
			Body:       row.Body,
			Rating:     row.Rating,
			CreatedAt:  row.CreatedAt,
		})
	}
	return out, nil
}

func (s *service) Submit(ctx context.Context, input SubmitInput) (*ReviewDTO, error) {
	author := strings.TrimSpace(input.AuthorName)
	if len(author) < 2 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "author_name must be at least 2 characters")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 1 and 5")
	}
	row := &models.Review{
		AuthorName:  author,
		Body:        strings.TrimSpace(input.Body),
		Rating:      input.Rating,
		IsPublished: false,
	}
	created, err := s.repo.Create(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert review")
	}
	return &ReviewDTO{
		ID:         created.ID,
		AuthorName: created.AuthorName,
		Body:       created.Body,
		Rating:     created.Rating,
		CreatedAt:  created.CreatedAt,
	}, nil
}

func (s *service) AdminList(ctx context.Context) ([]AdminReviewDTO, error) {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list reviews")
	}
	out := make([]AdminReviewDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *newAdminDTO(&rows[i]))
	}
	return out, nil
}

func (s *service) AdminUpdate(ctx context.Context, id uuid.UUID, input AdminUpdateInput) (*AdminReviewDTO, error) {
	author := strings.TrimSpace(input.AuthorName)
	if len(author) < 2 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "author_name must be at least 2 characters")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 1 and 5")
	}
	row, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	row.AuthorName = author
	row.Body = strings.TrimSpace(input.Body)
	row.Rating = input.Rating

	updated, err := s.repo.Update(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update review")
	}
	return newAdminDTO(updated), nil
}

func (s *service) AdminSetPublished(ctx context.Context, id uuid.UUID, published bool) (*AdminReviewDTO, error) {
	row, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	row.IsPublished = published

	updated, err := s.repo.Update(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update review")
	}
	return newAdminDTO(updated), nil
}

func (s *service) AdminDelete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.load(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete review")
	}
	return nil
}

func (s *service) load(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "review not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load review")
	}
	return row, nil
}

func newAdminDTO(row *models.Review) *AdminReviewDTO {
	return &AdminReviewDTO{
		ID:          row.ID,
		AuthorName:  row.AuthorName,
		Body:        row.Body,
		Rating:      row.Rating,
		IsPublished: row.IsPublished,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
