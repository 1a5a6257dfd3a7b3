package content

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/begzodnazarov/mebelhub-backend/pkg/db/models"
	pkgerrors "github.com/begzodnazarov/mebelhub-backend/pkg/errors"
)

type stubContentRepo struct {
	gallery []models.GalleryItem
	banners []models.Banner
	items   []models.ServiceItem
	stores  []models.StoreLocation
	err     error
}

func (s *stubContentRepo) ListVisibleGalleryItems(_ context.Context) ([]models.GalleryItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.GalleryItem
	for _, row := range s.gallery {
		if row.IsVisible {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *stubContentRepo) ListAllGalleryItems(_ context.Context) ([]models.GalleryItem, error) {
	return s.gallery, s.err
}

func (s *stubContentRepo) FindGalleryItemByID(_ context.Context, id uuid.UUID) (*models.GalleryItem, error) {
	for i := range s.gallery {
		if s.gallery[i].ID == id {
			return &s.gallery[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubContentRepo) CreateGalleryItem(_ context.Context, row *models.GalleryItem) (*models.GalleryItem, error) {
	row.ID = uuid.New()
	s.gallery = append(s.gallery, *row)
	return row, nil
}

func (s *stubContentRepo) UpdateGalleryItem(_ context.Context, row *models.GalleryItem) (*models.GalleryItem, error) {
	return row, nil
}

func (s *stubContentRepo) DeleteGalleryItem(_ context.Context, id uuid.UUID) error {
	for i := range s.gallery {
		if s.gallery[i].ID == id {
			s.gallery = append(s.gallery[:i], s.gallery[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *stubContentRepo) ListActiveBanners(_ context.Context) ([]models.Banner, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.Banner
	for _, row := range s.banners {
		if row.IsActive {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *stubContentRepo) ListAllBanners(_ context.Context) ([]models.Banner, error) {
	return s.banners, s.err
}

func (s *stubContentRepo) FindBannerByID(_ context.Context, id uuid.UUID) (*models.Banner, error) {
	for i := range s.banners {
		if s.banners[i].ID == id {
			return &s.banners[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubContentRepo) CreateBanner(_ context.Context, row *models.Banner) (*models.Banner, error) {
	row.ID = uuid.New()
	s.banners = append(s.banners, *row)
	return row, nil
}

func (s *stubContentRepo) UpdateBanner(_ context.Context, row *models.Banner) (*models.Banner, error) {
	return row, nil
}

func (s *stubContentRepo) DeleteBanner(_ context.Context, id uuid.UUID) error {
	return nil
}

func (s *stubContentRepo) ListVisibleServiceItems(_ context.Context) ([]models.ServiceItem, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.ServiceItem
	for _, row := range s.items {
		if row.IsVisible {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *stubContentRepo) ListAllServiceItems(_ context.Context) ([]models.ServiceItem, error) {
	return s.items, s.err
}

func (s *stubContentRepo) FindServiceItemByID(_ context.Context, id uuid.UUID) (*models.ServiceItem, error) {
	for i := range s.items {
		if s.items[i].ID == id {
			return &s.items[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubContentRepo) CreateServiceItem(_ context.Context, row *models.ServiceItem) (*models.ServiceItem, error) {
	row.ID = uuid.New()
	s.items = append(s.items, *row)
	return row, nil
}

func (s *stubContentRepo) UpdateServiceItem(_ context.Context, row *models.ServiceItem) (*models.ServiceItem, error) {
	return row, nil
}

func (s *stubContentRepo) DeleteServiceItem(_ context.Context, id uuid.UUID) error {
	return nil
}

func (s *stubContentRepo) ListVisibleStoreLocations(_ context.Context) ([]models.StoreLocation, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.StoreLocation
	for _, row := range s.stores {
		if row.IsVisible {
			out = append(out, row)
		}
	}
	return out, nil
}

func (s *stubContentRepo) ListAllStoreLocations(_ context.Context) ([]models.StoreLocation, error) {
	return s.stores, s.err
}

func (s *stubContentRepo) FindStoreLocationByID(_ context.Context, id uuid.UUID) (*models.StoreLocation, error) {
	for i := range s.stores {
		if s.stores[i].ID == id {
			return &s.stores[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubContentRepo) CreateStoreLocation(_ context.Context, row *models.StoreLocation) (*models.StoreLocation, error) {
	row.ID = uuid.New()
	s.stores = append(s.stores, *row)
	return row, nil
}

func (s *stubContentRepo) UpdateStoreLocation(_ context.Context, row *models.StoreLocation) (*models.StoreLocation, error) {
	return row, nil
}

func (s *stubContentRepo) DeleteStoreLocation(_ context.Context, id uuid.UUID) error {
	return nil
}

func strPtr(v string) *string { return &v }

func TestListGalleryFiltersHidden(t *testing.T) {
	repo := &stubContentRepo{gallery: []models.GalleryItem{
		{ID: uuid.New(), TitleUz: "Zal", TitleRu: "Зал", ImageURL: "https://cdn/one.jpg", IsVisible: true},
		{ID: uuid.New(), TitleUz: "Ombor", ImageURL: "https://cdn/two.jpg", IsVisible: false},
	}}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	out, err := svc.ListGallery(context.Background(), "ru")
	if err != nil {
		t.Fatalf("list gallery: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 visible item, got %d", len(out))
	}
	if out[0].Title != "Зал" {
		t.Fatalf("expected russian title, got %q", out[0].Title)
	}
}

func TestListBannersResolvesSubtitleWithFallback(t *testing.T) {
	repo := &stubContentRepo{banners: []models.Banner{
		{
			ID:         uuid.New(),
			TitleUz:    "Yangi kolleksiya",
			SubtitleUz: strPtr("Chegirmalar"),
			ImageURL:   "https://cdn/banner.jpg",
			IsActive:   true,
		},
	}}
	svc, _ := NewService(repo)

	out, err := svc.ListBanners(context.Background(), "ru")
	if err != nil {
		t.Fatalf("list banners: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 banner, got %d", len(out))
	}
	// No russian variants stored, uzbek text is the fallback.
	if out[0].Title != "Yangi kolleksiya" || out[0].Subtitle != "Chegirmalar" {
		t.Fatalf("unexpected resolution: %+v", out[0])
	}
}

func TestAdminCreateGalleryItemRequiresImage(t *testing.T) {
	svc, _ := NewService(&stubContentRepo{})

	_, err := svc.AdminCreateGalleryItem(context.Background(), GalleryInput{TitleUz: "Zal"})
	if pkgerrors.As(err).Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAdminUpdateBannerNotFound(t *testing.T) {
	svc, _ := NewService(&stubContentRepo{})

	_, err := svc.AdminUpdateBanner(context.Background(), uuid.New(), BannerInput{ImageURL: "https://cdn/x.jpg"})
	if pkgerrors.As(err).Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAdminCreateStoreLocationTrimsNames(t *testing.T) {
	repo := &stubContentRepo{}
	svc, _ := NewService(repo)

	created, err := svc.AdminCreateStoreLocation(context.Background(), StoreLocationInput{
		NameUz:    "  MebelHub Chilonzor  ",
		AddressUz: " Chilonzor 9 ",
		IsVisible: true,
	})
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	if created.NameUz != "MebelHub Chilonzor" || created.AddressUz != "Chilonzor 9" {
		t.Fatalf("expected trimmed fields, got %+v", created)
	}
}

func TestListServicesDependencyFailure(t *testing.T) {
	svc, _ := NewService(&stubContentRepo{err: errors.New("connection reset")})

	_, err := svc.ListServices(context.Background(), "uz")
	if pkgerrors.As(err).Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}
