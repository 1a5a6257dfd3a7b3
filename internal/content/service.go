package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/begzodnazarov/mebelhub-backend/pkg/db"
	"github.com/begzodnazarov/mebelhub-backend/pkg/db/models"
	pkgerrors "github.com/begzodnazarov/mebelhub-backend/pkg/errors"
)

// GalleryInput is the admin gallery create/update payload.
type GalleryInput struct {
	TitleUz   string
	TitleRu   string
	ImageURL  string
	IsVisible bool
	SortOrder int
}

// BannerInput is the admin banner create/update payload.
type BannerInput struct {
	TitleUz    string
	TitleRu    string
	SubtitleUz *string
	SubtitleRu *string
	ImageURL   string
	LinkURL    *string
	IsActive   bool
	SortOrder  int
}

// ServiceItemInput is the admin service create/update payload.
type ServiceItemInput struct {
	NameUz        string
	NameRu        string
	DescriptionUz *string
	DescriptionRu *string
	IconURL       *string
	IsVisible     bool
	SortOrder     int
}

// StoreLocationInput is the admin store location create/update payload.
type StoreLocationInput struct {
	NameUz       string
	NameRu       string
	AddressUz    string
	AddressRu    string
	Phone        *string
	WorkingHours *string
	MapURL       *string
	IsVisible    bool
}

// Service exposes storefront content reads and admin management for the
// gallery, banners, services, and store locations.
type Service interface {
	ListGallery(ctx context.Context, locale string) ([]GalleryItemDTO, error)
	ListBanners(ctx context.Context, locale string) ([]BannerDTO, error)
	ListServices(ctx context.Context, locale string) ([]ServiceItemDTO, error)
	ListStores(ctx context.Context, locale string) ([]StoreLocationDTO, error)

	AdminListGallery(ctx context.Context) ([]AdminGalleryItemDTO, error)
	AdminCreateGalleryItem(ctx context.Context, input GalleryInput) (*AdminGalleryItemDTO, error)
	AdminUpdateGalleryItem(ctx context.Context, id uuid.UUID, input GalleryInput) (*AdminGalleryItemDTO, error)
	AdminDeleteGalleryItem(ctx context.Context, id uuid.UUID) error

	AdminListBanners(ctx context.Context) ([]AdminBannerDTO, error)
	AdminCreateBanner(ctx context.Context, input BannerInput) (*AdminBannerDTO, error)
	AdminUpdateBanner(ctx context.Context, id uuid.UUID, input BannerInput) (*AdminBannerDTO, error)
	AdminDeleteBanner(ctx context.Context, id uuid.UUID) error

	AdminListServices(ctx context.Context) ([]AdminServiceItemDTO, error)
	AdminCreateServiceItem(ctx context.Context, input ServiceItemInput) (*AdminServiceItemDTO, error)
	AdminUpdateServiceItem(ctx context.Context, id uuid.UUID, input ServiceItemInput) (*AdminServiceItemDTO, error)
	AdminDeleteServiceItem(ctx context.Context, id uuid.UUID) error

	AdminListStores(ctx context.Context) ([]AdminStoreLocationDTO, error)
	AdminCreateStoreLocation(ctx context.Context, input StoreLocationInput) (*AdminStoreLocationDTO, error)
	AdminUpdateStoreLocation(ctx context.Context, id uuid.UUID, input StoreLocationInput) (*AdminStoreLocationDTO, error)
	AdminDeleteStoreLocation(ctx context.Context, id uuid.UUID) error
}

type contentRepo interface {
	ListVisibleGalleryItems(ctx context.Context) ([]models.GalleryItem, error)
	ListAllGalleryItems(ctx context.Context) ([]models.GalleryItem, error)
	FindGalleryItemByID(ctx context.Context, id uuid.UUID) (*models.GalleryItem, error)
	CreateGalleryItem(ctx context.Context, row *models.GalleryItem) (*models.GalleryItem, error)
	UpdateGalleryItem(ctx context.Context, row *models.GalleryItem) (*models.GalleryItem, error)
	DeleteGalleryItem(ctx context.Context, id uuid.UUID) error

	ListActiveBanners(ctx context.Context) ([]models.Banner, error)
	ListAllBanners(ctx context.Context) ([]models.Banner, error)
	FindBannerByID(ctx context.Context, id uuid.UUID) (*models.Banner, error)
	CreateBanner(ctx context.Context, row *models.Banner) (*models.Banner, error)
	UpdateBanner(ctx context.Context, row *models.Banner) (*models.Banner, error)
	DeleteBanner(ctx context.Context, id uuid.UUID) error

	ListVisibleServiceItems(ctx context.Context) ([]models.ServiceItem, error)
	ListAllServiceItems(ctx context.Context) ([]models.ServiceItem, error)
	FindServiceItemByID(ctx context.Context, id uuid.UUID) (*models.ServiceItem, error)
	CreateServiceItem(ctx context.Context, row *models.ServiceItem) (*models.ServiceItem, error)
	UpdateServiceItem(ctx context.Context, row *models.ServiceItem) (*models.ServiceItem, error)
	DeleteServiceItem(ctx context.Context, id uuid.UUID) error

	ListVisibleStoreLocations(ctx context.Context) ([]models.StoreLocation, error)
	ListAllStoreLocations(ctx context.Context) ([]models.StoreLocation, error)
	FindStoreLocationByID(ctx context.Context, id uuid.UUID) (*models.StoreLocation, error)
	CreateStoreLocation(ctx context.Context, row *models.StoreLocation) (*models.StoreLocation, error)
	UpdateStoreLocation(ctx context.Context, row *models.StoreLocation) (*models.StoreLocation, error)
	DeleteStoreLocation(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo contentRepo
}

// NewService constructs a content service instance.
func NewService(repo contentRepo) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("content repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListGallery(ctx context.Context, locale string) ([]GalleryItemDTO, error) {
	rows, err := s.repo.ListVisibleGalleryItems(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list gallery items")
	}
	out := make([]GalleryItemDTO, 0, len(rows))
	for i := range rows {
		out = append(out, newGalleryItemDTO(&rows[i], locale))
	}
	return out, nil
}

func (s *service) ListBanners(ctx context.Context, locale string) ([]BannerDTO, error) {
	rows, err := s.repo.ListActiveBanners(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list banners")
	}
	out := make([]BannerDTO, 0, len(rows))
	for i := range rows {
		out = append(out, newBannerDTO(&rows[i], locale))
	}
	return out, nil
}

func (s *service) ListServices(ctx context.Context, locale string) ([]ServiceItemDTO, error) {
	rows, err := s.repo.ListVisibleServiceItems(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list services")
	}
	out := make([]ServiceItemDTO, 0, len(rows))
	for i := range rows {
		out = append(out, newServiceItemDTO(&rows[i], locale))
	}
	return out, nil
}

func (s *service) ListStores(ctx context.Context, locale string) ([]StoreLocationDTO, error) {
	rows, err := s.repo.ListVisibleStoreLocations(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list store locations")
	}
	out := make([]StoreLocationDTO, 0, len(rows))
	for i := range rows {
		out = append(out, newStoreLocationDTO(&rows[i], locale))
	}
	return out, nil
}

func (s *service) AdminListGallery(ctx context.Context) ([]AdminGalleryItemDTO, error) {
	rows, err := s.repo.ListAllGalleryItems(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list gallery items")
	}
	out := make([]AdminGalleryItemDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *newAdminGalleryItemDTO(&rows[i]))
	}
	return out, nil
}

func (s *service) AdminCreateGalleryItem(ctx context.Context, input GalleryInput) (*AdminGalleryItemDTO, error) {
	if strings.TrimSpace(input.ImageURL) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "image_url is required")
	}
	row := &models.GalleryItem{
		TitleUz:   strings.TrimSpace(input.TitleUz),
		TitleRu:   strings.TrimSpace(input.TitleRu),
		ImageURL:  strings.TrimSpace(input.ImageURL),
		IsVisible: input.IsVisible,
		SortOrder: input.SortOrder,
	}
	created, err := s.repo.CreateGalleryItem(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert gallery item")
	}
	return newAdminGalleryItemDTO(created), nil
}

func (s *service) AdminUpdateGalleryItem(ctx context.Context, id uuid.UUID, input GalleryInput) (*AdminGalleryItemDTO, error) {
	if strings.TrimSpace(input.ImageURL) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "image_url is required")
	}
	row, err := s.repo.FindGalleryItemByID(ctx, id)
	if err != nil {
		return nil, wrapLookup(err, "gallery item")
	}
	row.TitleUz = strings.TrimSpace(input.TitleUz)
	row.TitleRu = strings.TrimSpace(input.TitleRu)
	row.ImageURL = strings.TrimSpace(input.ImageURL)
	row.IsVisible = input.IsVisible
	row.SortOrder = input.SortOrder

	updated, err := s.repo.UpdateGalleryItem(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update gallery item")
	}
	return newAdminGalleryItemDTO(updated), nil
}

func (s *service) AdminDeleteGalleryItem(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindGalleryItemByID(ctx, id); err != nil {
		return wrapLookup(err, "gallery item")
	}
	if err := s.repo.DeleteGalleryItem(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete gallery item")
	}
	return nil
}

func (s *service) AdminListBanners(ctx context.Context) ([]AdminBannerDTO, error) {
	rows, err := s.repo.ListAllBanners(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list banners")
	}
	out := make([]AdminBannerDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *newAdminBannerDTO(&rows[i]))
	}
	return out, nil
}

func (s *service) AdminCreateBanner(ctx context.Context, input BannerInput) (*AdminBannerDTO, error) {
	if strings.TrimSpace(input.ImageURL) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "image_url is required")
	}
	row := &models.Banner{
		TitleUz:    strings.TrimSpace(input.TitleUz),
		TitleRu:    strings.TrimSpace(input.TitleRu),
		SubtitleUz: input.SubtitleUz,
		SubtitleRu: input.SubtitleRu,
		ImageURL:   strings.TrimSpace(input.ImageURL),
		LinkURL:    input.LinkURL,
		IsActive:   input.IsActive,
		SortOrder:  input.SortOrder,
	}
	created, err := s.repo.CreateBanner(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert banner")
	}
	return newAdminBannerDTO(created), nil
}

func (s *service) AdminUpdateBanner(ctx context.Context, id uuid.UUID, input BannerInput) (*AdminBannerDTO, error) {
	if strings.TrimSpace(input.ImageURL) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "image_url is required")
	}
	row, err := s.repo.FindBannerByID(ctx, id)
	if err != nil {
		return nil, wrapLookup(err, "banner")
	}
	row.TitleUz = strings.TrimSpace(input.TitleUz)
	row.TitleRu = strings.TrimSpace(input.TitleRu)
	row.SubtitleUz = input.SubtitleUz
	row.SubtitleRu = input.SubtitleRu
	row.ImageURL = strings.TrimSpace(input.ImageURL)
	row.LinkURL = input.LinkURL
	row.IsActive = input.IsActive
	row.SortOrder = input.SortOrder

	updated, err := s.repo.UpdateBanner(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update banner")
	}
	return newAdminBannerDTO(updated), nil
}

func (s *service) AdminDeleteBanner(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindBannerByID(ctx, id); err != nil {
		return wrapLookup(err, "banner")
	}
	if err := s.repo.DeleteBanner(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete banner")
	}
	return nil
}

func (s *service) AdminListServices(ctx context.Context) ([]AdminServiceItemDTO, error) {
	rows, err := s.repo.ListAllServiceItems(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list services")
	}
	out := make([]AdminServiceItemDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *newAdminServiceItemDTO(&rows[i]))
	}
	return out, nil
}

func (s *service) AdminCreateServiceItem(ctx context.Context, input ServiceItemInput) (*AdminServiceItemDTO, error) {
	if strings.TrimSpace(input.NameUz) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name_uz is required")
	}
	row := &models.ServiceItem{
		NameUz:        strings.TrimSpace(input.NameUz),
		NameRu:        strings.TrimSpace(input.NameRu),
		DescriptionUz: input.DescriptionUz,
		DescriptionRu: input.DescriptionRu,
		IconURL:       input.IconURL,
		IsVisible:     input.IsVisible,
		SortOrder:     input.SortOrder,
	}
	created, err := s.repo.CreateServiceItem(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert service item")
	}
	return newAdminServiceItemDTO(created), nil
}

func (s *service) AdminUpdateServiceItem(ctx context.Context, id uuid.UUID, input ServiceItemInput) (*AdminServiceItemDTO, error) {
	if strings.TrimSpace(input.NameUz) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name_uz is required")
	}
	row, err := s.repo.FindServiceItemByID(ctx, id)
	if err != nil {
		return nil, wrapLookup(err, "service item")
	}
	row.NameUz = strings.TrimSpace(input.NameUz)
	row.NameRu = strings.TrimSpace(input.NameRu)
	row.DescriptionUz = input.DescriptionUz
	row.DescriptionRu = input.DescriptionRu
	row.IconURL = input.IconURL
	row.IsVisible = input.IsVisible
	row.SortOrder = input.SortOrder

	updated, err := s.repo.UpdateServiceItem(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update service item")
	}
	return newAdminServiceItemDTO(updated), nil
}

func (s *service) AdminDeleteServiceItem(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindServiceItemByID(ctx, id); err != nil {
		return wrapLookup(err, "service item")
	}
	if err := s.repo.DeleteServiceItem(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete service item")
	}
	return nil
}

func (s *service) AdminListStores(ctx context.Context) ([]AdminStoreLocationDTO, error) {
	rows, err := s.repo.ListAllStoreLocations(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list store locations")
	}
	out := make([]AdminStoreLocationDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *newAdminStoreLocationDTO(&rows[i]))
	}
	return out, nil
}

func (s *service) AdminCreateStoreLocation(ctx context.Context, input StoreLocationInput) (*AdminStoreLocationDTO, error) {
	if strings.TrimSpace(input.NameUz) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name_uz is required")
	}
	row := &models.StoreLocation{
		NameUz:       strings.TrimSpace(input.NameUz),
		NameRu:       strings.TrimSpace(input.NameRu),
		AddressUz:    strings.TrimSpace(input.AddressUz),
		AddressRu:    strings.TrimSpace(input.AddressRu),
		Phone:        input.Phone,
		WorkingHours: input.WorkingHours,
		MapURL:       input.MapURL,
		IsVisible:    input.IsVisible,
	}
	created, err := s.repo.CreateStoreLocation(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert store location")
	}
	return newAdminStoreLocationDTO(created), nil
}

func (s *service) AdminUpdateStoreLocation(ctx context.Context, id uuid.UUID, input StoreLocationInput) (*AdminStoreLocationDTO, error) {
	if strings.TrimSpace(input.NameUz) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name_uz is required")
	}
	row, err := s.repo.FindStoreLocationByID(ctx, id)
	if err != nil {
		return nil, wrapLookup(err, "store location")
	}
	row.NameUz = strings.TrimSpace(input.NameUz)
	row.NameRu = strings.TrimSpace(input.NameRu)
	row.AddressUz = strings.TrimSpace(input.AddressUz)
	row.AddressRu = strings.TrimSpace(input.AddressRu)
	row.Phone = input.Phone
	row.WorkingHours = input.WorkingHours
	row.MapURL = input.MapURL
	row.IsVisible = input.IsVisible

	updated, err := s.repo.UpdateStoreLocation(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update store location")
	}
	return newAdminStoreLocationDTO(updated), nil
}

func (s *service) AdminDeleteStoreLocation(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindStoreLocationByID(ctx, id); err != nil {
		return wrapLookup(err, "store location")
	}
	if err := s.repo.DeleteStoreLocation(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete store location")
	}
	return nil
}

func wrapLookup(err error, entity string) error {
	if db.IsNotFound(err) {
		return pkgerrors.New(pkgerrors.CodeNotFound, entity+" not found")
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load "+entity)
}

func newAdminGalleryItemDTO(row *models.GalleryItem) *AdminGalleryItemDTO {
	return &AdminGalleryItemDTO{
		ID:        row.ID,
		TitleUz:   row.TitleUz,
		TitleRu:   row.TitleRu,
		ImageURL:  row.ImageURL,
		IsVisible: row.IsVisible,
		SortOrder: row.SortOrder,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func newAdminBannerDTO(row *models.Banner) *AdminBannerDTO {
	return &AdminBannerDTO{
		ID:         row.ID,
		TitleUz:    row.TitleUz,
		TitleRu:    row.TitleRu,
		SubtitleUz: row.SubtitleUz,
		SubtitleRu: row.SubtitleRu,
		ImageURL:   row.ImageURL,
		LinkURL:    row.LinkURL,
		IsActive:   row.IsActive,
		SortOrder:  row.SortOrder,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

func newAdminServiceItemDTO(row *models.ServiceItem) *AdminServiceItemDTO {
	return &AdminServiceItemDTO{
		ID:            row.ID,
		NameUz:        row.NameUz,
		NameRu:        row.NameRu,
		DescriptionUz: row.DescriptionUz,
		DescriptionRu: row.DescriptionRu,
		IconURL:       row.IconURL,
		IsVisible:     row.IsVisible,
		SortOrder:     row.SortOrder,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func newAdminStoreLocationDTO(row *models.StoreLocation) *AdminStoreLocationDTO {
	return &AdminStoreLocationDTO{
		ID:           row.ID,
		NameUz:       row.NameUz,
		NameRu:       row.NameRu,
		AddressUz:    row.AddressUz,
		AddressRu:    row.AddressRu,
		Phone:        row.Phone,
		WorkingHours: row.WorkingHours,
		MapURL:       row.MapURL,
		IsVisible:    row.IsVisible,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
