package messages

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/begzodnazarov/mebelhub-backend/pkg/db/models"
	pkgerrors "github.com/begzodnazarov/mebelhub-backend/pkg/errors"
)

type stubMessageRepo struct {
	rows []models.ContactMessage
}

func (s *stubMessageRepo) FindByID(_ context.Context, id uuid.UUID) (*models.ContactMessage, error) {
	for i := range s.rows {
		if s.rows[i].ID == id {
			return &s.rows[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubMessageRepo) ListAll(_ context.Context) ([]models.ContactMessage, error) {
	return s.rows, nil
}

func (s *stubMessageRepo) Create(_ context.Context, row *models.ContactMessage) (*models.ContactMessage, error) {
	row.ID = uuid.New()
	s.rows = append(s.rows, *row)
	return row, nil
}

func (s *stubMessageRepo) Update(_ context.Context, row *models.ContactMessage) (*models.ContactMessage, error) {
	for i := range s.rows {
		if s.rows[i].ID == row.ID {
			s.rows[i] = *row
		}
	}
	return row, nil
}

func (s *stubMessageRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestSubmitTrimsAndStores(t *testing.T) {
	repo := &stubMessageRepo{}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	created, err := svc.Submit(context.Background(), SubmitInput{
		Name:    "  Jasur  ",
		Phone:   "+998901234567",
		Message: "Yotoqxona garnituri narxi qancha?",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if created.Name != "Jasur" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
	if created.IsRead {
		t.Fatal("new messages must start unread")
	}
}

func TestSubmitValidation(t *testing.T) {
	svc, _ := NewService(&stubMessageRepo{})

	cases := []struct {
		name  string
		input SubmitInput
	}{
		{"missing name", SubmitInput{Phone: "+998901234567", Message: "salom hammaga"}},
		{"short phone", SubmitInput{Name: "Jasur", Phone: "12345", Message: "salom hammaga"}},
		{"short message", SubmitInput{Name: "Jasur", Phone: "+998901234567", Message: "ok"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), tc.input)
			if pkgerrors.As(err).Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestAdminMarkRead(t *testing.T) {
	id := uuid.New()
	repo := &stubMessageRepo{rows: []models.ContactMessage{
		{ID: id, Name: "Jasur", Phone: "+998901234567", Message: "narx?"},
	}}
	svc, _ := NewService(repo)

	updated, err := svc.AdminMarkRead(context.Background(), id, true)
	if err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if !updated.IsRead {
		t.Fatal("expected message to be read")
	}
}

func TestAdminDeleteMissingMessage(t *testing.T) {
	svc, _ := NewService(&stubMessageRepo{})

	err := svc.AdminDelete(context.Background(), uuid.New())
	if pkgerrors.As(err).Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
