package products

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/begzodnazarov/mebelhub-backend/internal/currency"
	"github.com/begzodnazarov/mebelhub-backend/pkg/db/models"
	pkgerrors "github.com/begzodnazarov/mebelhub-backend/pkg/errors"
	"github.com/begzodnazarov/mebelhub-backend/pkg/pagination"
)

type stubRepo struct {
	rows    []models.Product
	created *models.Product
	updated *models.Product
	deleted []uuid.UUID
	err     error
}

func (s *stubRepo) FindByID(_ context.Context, id uuid.UUID) (*models.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.rows {
		if s.rows[i].ID == id {
			return &s.rows[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) FindVisibleBySlug(_ context.Context, slug string) (*models.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.rows {
		if s.rows[i].Slug == slug && s.rows[i].IsVisible {
			return &s.rows[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) ListVisible(_ context.Context, filters ListFilters, limit int, _ *pagination.SortCursor) ([]models.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.Product
	for _, row := range s.rows {
		if !row.IsVisible {
			continue
		}
		if filters.FeaturedOnly && !row.IsFeatured {
			continue
		}
		out = append(out, row)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *stubRepo) ListAll(_ context.Context, limit int, _ *pagination.Cursor) ([]models.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	if len(s.rows) > limit {
		return s.rows[:limit], nil
	}
	return s.rows, nil
}

func (s *stubRepo) Create(_ context.Context, product *models.Product) (*models.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	product.ID = uuid.New()
	s.created = product
	return product, nil
}

func (s *stubRepo) Update(_ context.Context, product *models.Product) (*models.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.updated = product
	return product, nil
}

func (s *stubRepo) Delete(_ context.Context, id uuid.UUID) error {
	s.deleted = append(s.deleted, id)
	return s.err
}

type fixedRate struct{ value string }

func (f fixedRate) Value(context.Context, string) (string, error) { return f.value, nil }

func newTestService(t *testing.T, repo *stubRepo) Service {
	t.Helper()
	rates := currency.NewResolver(fixedRate{value: "13000"}, time.Minute, nil)
	svc, err := NewService(repo, rates)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func visibleProduct(slug string) models.Product {
	return models.Product{
		ID:         uuid.New(),
		Slug:       slug,
		NameUz:     "Stul",
		NameRu:     "Стул",
		PriceCents: 10000,
		IsVisible:  true,
	}
}

func TestGetBySlugResolvesLocaleAndPrice(t *testing.T) {
	repo := &stubRepo{rows: []models.Product{visibleProduct("oak-chair")}}
	svc := newTestService(t, repo)

	uz, err := svc.GetBySlug(context.Background(), "uz", "oak-chair")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if uz.Name != "Stul" {
		t.Fatalf("expected uz name, got %q", uz.Name)
	}
	if uz.PriceUZS != "1,300,000" {
		t.Fatalf("expected price 1,300,000, got %q", uz.PriceUZS)
	}

	ru, err := svc.GetBySlug(context.Background(), "ru", "oak-chair")
	if err != nil {
		t.Fatalf("GetBySlug ru: %v", err)
	}
	if ru.Name != "Стул" {
		t.Fatalf("expected ru name, got %q", ru.Name)
	}
}

func TestGetBySlugHiddenProductIs404(t *testing.T) {
	hidden := visibleProduct("hidden")
	hidden.IsVisible = false
	repo := &stubRepo{rows: []models.Product{hidden}}
	svc := newTestService(t, repo)

	_, err := svc.GetBySlug(context.Background(), "uz", "hidden")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestListPaginatesWithNextCursor(t *testing.T) {
	repo := &stubRepo{}
	for i := 0; i < 5; i++ {
		p := visibleProduct(uuid.NewString())
		p.CreatedAt = time.Now().Add(-time.Duration(i) * time.Hour)
		repo.rows = append(repo.rows, p)
	}
	svc := newTestService(t, repo)

	result, err := svc.List(context.Background(), "uz", ListFilters{}, pagination.Params{Limit: 4})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(result.Products) != 4 {
		t.Fatalf("expected 4 products, got %d", len(result.Products))
	}
	if result.NextCursor == "" {
		t.Fatal("expected next cursor on a full page")
	}

	cursor, err := pagination.ParseSortCursor(result.NextCursor)
	if err != nil || cursor == nil {
		t.Fatalf("next cursor should parse, got %v", err)
	}
}

func TestAdminCreateValidatesInput(t *testing.T) {
	svc := newTestService(t, &stubRepo{})

	_, err := svc.AdminCreate(context.Background(), CreateProductInput{Slug: "", NameUz: ""})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}

	_, err = svc.AdminCreate(context.Background(), CreateProductInput{Slug: "x", NameUz: "X", PriceCents: -5})
	typed = pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected VALIDATION_ERROR for negative price, got %v", err)
	}
}

func TestAdminUpdateAppliesPartialInput(t *testing.T) {
	row := visibleProduct("sofa")
	repo := &stubRepo{rows: []models.Product{row}}
	svc := newTestService(t, repo)

	hidden := false
	price := 20000
	dto, err := svc.AdminUpdate(context.Background(), row.ID, UpdateProductInput{
		PriceCents: &price,
		IsVisible:  &hidden,
	})
	if err != nil {
		t.Fatalf("AdminUpdate: %v", err)
	}
	if dto.PriceCents != 20000 || dto.IsVisible {
		t.Fatalf("partial update not applied: %+v", dto)
	}
	if dto.NameUz != "Stul" {
		t.Fatalf("untouched field changed: %+v", dto)
	}
}

func TestAdminDeleteUnknownIs404(t *testing.T) {
	svc := newTestService(t, &stubRepo{})
	err := svc.AdminDelete(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestNewProductDTOFallsBackToUzbek(t *testing.T) {
	product := visibleProduct("table")
	product.NameRu = ""
	dto := NewProductDTO(&product, "ru", decimal.NewFromInt(13000))
	if dto.Name != "Stul" {
		t.Fatalf("expected uz fallback, got %q", dto.Name)
	}
}
