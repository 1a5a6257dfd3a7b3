package messages

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

// MessageDTO is the contact message payload returned to admins and to the
// submitting visitor.
type MessageDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// SubmitInput is the public contact form payload.
type SubmitInput struct {
	Name    string
	Phone   string
	Message string
}

// Repository persists contact messages.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.ContactMessage, error) {
	var row models.ContactMessage
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *Repository) ListAll(ctx context.Context) ([]models.ContactMessage, error) {
	var rows []models.ContactMessage
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Repository) Create(ctx context.Context, row *models.ContactMessage) (*models.ContactMessage, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *Repository) Update(ctx context.Context, row *models.ContactMessage) (*models.ContactMessage, error) {
	if err := r.db.WithContext(ctx).Save(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.ContactMessage{}, "id = ?", id).Error
}

// Service accepts contact form submissions and lets admins work the inbox.
type Service interface {
	Submit(ctx context.Context, input SubmitInput) (*MessageDTO, error)

	AdminList(ctx context.Context) ([]MessageDTO, error)
	AdminMarkRead(ctx context.Context, id uuid.UUID, read bool) (*MessageDTO, error)
	AdminDelete(ctx context.Context, id uuid.UUID) error
}

type messageRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.ContactMessage, error)
	ListAll(ctx context.Context) ([]models.ContactMessage, error)
	Create(ctx context.Context, row *models.ContactMessage) (*models.ContactMessage, error)
	Update(ctx context.Context, row *models.ContactMessage) (*models.ContactMessage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo messageRepo
}

// NewService constructs a contact message service instance.
func NewService(repo messageRepo) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("message repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Submit(ctx context.Context, input SubmitInput) (*MessageDTO, error) {
	name := strings.TrimSpace(input.Name)
	phone := strings.TrimSpace(input.Phone)
	body := strings.TrimSpace(input.Message)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if len(phone) < 9 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "phone must be at least 9 characters")
	}
	if len(body) < 5 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "message must be at least 5 characters")
	}
	row := &models.ContactMessage{
		Name:    name,
		Phone:   phone,
		Message: body,
	}
	created, err := s.repo.Create(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert contact message")
	}
	return newDTO(created), nil
}

func (s *service) AdminList(ctx context.Context) ([]MessageDTO, error) {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list contact messages")
	}
	out := make([]MessageDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *newDTO(&rows[i]))
	}
	return out, nil
}

func (s *service) AdminMarkRead(ctx context.Context, id uuid.UUID, read bool) (*MessageDTO, error) {
	row, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	row.IsRead = read

	updated, err := s.repo.Update(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update contact message")
	}
	return newDTO(updated), nil
}

func (s *service) AdminDelete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.load(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete contact message")
	}
	return nil
}

func (s *service) load(ctx context.Context, id uuid.UUID) (*models.ContactMessage, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "message not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load contact message")
	}
	return row, nil
}

func newDTO(row *models.ContactMessage) *MessageDTO {
	return &MessageDTO{
		ID:        row.ID,
		Name:      row.Name,
		Phone:     row.Phone,
		Message:   row.Message,
		IsRead:    row.IsRead,
		CreatedAt: row.CreatedAt,
	}
}
