package reviews

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/begzodnazarov/mebelhub-backend/pkg/db/models"
	pkgerrors "github.com/begzodnazarov/mebelhub-backend/pkg/errors"
)

type stubReviewRepo struct {
	rows []models.Review
}

func (s *stubReviewRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Review, error) {
	for i := range s.rows {
		if s.rows[i].ID == id {
			return &s.rows[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubReviewRepo) ListPublished(_ context.Context) ([]models.Review, error) {
	var out []models.Review
	for _, row := range s.rows {
		if row.IsPublished {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *stubReviewRepo) ListAll(_ context.Context) ([]models.Review, error) {
	return s.rows, nil
}

func (s *stubReviewRepo) Create(_ context.Context, row *models.Review) (*models.Review, error) {
	row.ID = uuid.New()
	s.rows = append(s.rows, *row)
	return row, nil
}

func (s *stubReviewRepo) Update(_ context.Context, row *models.Review) (*models.Review, error) {
	for i := range s.rows {
		if s.rows[i].ID == row.ID {
			s.rows[i] = *row
		}
	}
	return row, nil
}

func (s *stubReviewRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i := range s.rows {
		if s.rows[i].ID == id {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestListPublishedHidesPending(t *testing.T) {
	repo := &stubReviewRepo{rows: []models.Review{
		{ID: uuid.New(), AuthorName: "Dilshod", Rating: 5, IsPublished: true},
		{ID: uuid.New(), AuthorName: "Anon", Rating: 1, IsPublished: false},
	}}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	out, err := svc.ListPublished(context.Background())
	if err != nil {
		t.Fatalf("list published: %v", err)
	}
	if len(out) != 1 || out[0].AuthorName != "Dilshod" {
		t.Fatalf("expected only the published review, got %+v", out)
	}
}

func TestSubmitStartsUnpublished(t *testing.T) {
	repo := &stubReviewRepo{}
	svc, _ := NewService(repo)

	created, err := svc.Submit(context.Background(), SubmitInput{
		AuthorName: "  Gulnora  ",
		Body:       "Divan juda yoqdi",
		Rating:     5,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if created.AuthorName != "Gulnora" {
		t.Fatalf("expected trimmed author, got %q", created.AuthorName)
	}
	if repo.rows[0].IsPublished {
		t.Fatal("new submissions must start unpublished")
	}
}

func TestSubmitValidation(t *testing.T) {
	svc, _ := NewService(&stubReviewRepo{})

	cases := []struct {
		name  string
		input SubmitInput
	}{
		{"short author", SubmitInput{AuthorName: "A", Rating: 4}},
		{"rating too low", SubmitInput{AuthorName: "Bek", Rating: 0}},
		{"rating too high", SubmitInput{AuthorName: "Bek", Rating: 6}},
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

func TestAdminSetPublished(t *testing.T) {
	id := uuid.New()
	repo := &stubReviewRepo{rows: []models.Review{
		{ID: id, AuthorName: "Dilshod", Rating: 5},
	}}
	svc, _ := NewService(repo)

	updated, err := svc.AdminSetPublished(context.Background(), id, true)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if !updated.IsPublished {
		t.Fatal("expected review to be published")
	}

	updated, err = svc.AdminSetPublished(context.Background(), id, false)
	if err != nil {
		t.Fatalf("unpublish: %v", err)
	}
	if updated.IsPublished {
		t.Fatal("expected review to be hidden again")
	}
}

func TestAdminDeleteMissingReview(t *testing.T) {
	svc, _ := NewService(&stubReviewRepo{})

	err := svc.AdminDelete(context.Background(), uuid.New())
	if pkgerrors.As(err).Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
