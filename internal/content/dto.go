package content

import (
	"time"

	"github.com/google/uuid"

	"github.com/begzodnazarov/mebelhub-backend/pkg/db/models"
	"github.com/begzodnazarov/mebelhub-backend/pkg/types"
)

// GalleryItemDTO is the public gallery payload.
type GalleryItemDTO struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title,omitempty"`
	ImageURL string    `json:"image_url"`
}

// BannerDTO is the public banner payload.
type BannerDTO struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title,omitempty"`
	Subtitle string    `json:"subtitle,omitempty"`
	ImageURL string    `json:"image_url"`
	LinkURL  *string   `json:"link_url,omitempty"`
}

// ServiceItemDTO is the public service payload.
type ServiceItemDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IconURL     *string   `json:"icon_url,omitempty"`
}

// StoreLocationDTO is the public store location payload.
type StoreLocationDTO struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address,omitempty"`
	Phone        *string   `json:"phone,omitempty"`
	WorkingHours *string   `json:"working_hours,omitempty"`
	MapURL       *string   `json:"map_url,omitempty"`
}

// AdminGalleryItemDTO, AdminBannerDTO, AdminServiceItemDTO, and
// AdminStoreLocationDTO expose both language variants for the dashboard.
type AdminGalleryItemDTO struct {
	ID        uuid.UUID `json:"id"`
	TitleUz   string    `json:"title_uz"`
	TitleRu   string    `json:"title_ru"`
	ImageURL  string    `json:"image_url"`
	IsVisible bool      `json:"is_visible"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AdminBannerDTO struct {
	ID         uuid.UUID `json:"id"`
	TitleUz    string    `json:"title_uz"`
	TitleRu    string    `json:"title_ru"`
	SubtitleUz *string   `json:"subtitle_uz,omitempty"`
	SubtitleRu *string   `json:"subtitle_ru,omitempty"`
	ImageURL   string    `json:"image_url"`
	LinkURL    *string   `json:"link_url,omitempty"`
	IsActive   bool      `json:"is_active"`
	SortOrder  int       `json:"sort_order"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type AdminServiceItemDTO struct {
	ID            uuid.UUID `json:"id"`
	NameUz        string    `json:"name_uz"`
	NameRu        string    `json:"name_ru"`
	DescriptionUz *string   `json:"description_uz,omitempty"`
	DescriptionRu *string   `json:"description_ru,omitempty"`
	IconURL       *string   `json:"icon_url,omitempty"`
	IsVisible     bool      `json:"is_visible"`
	SortOrder     int       `json:"sort_order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type AdminStoreLocationDTO struct {
	ID           uuid.UUID `json:"id"`
	NameUz       string    `json:"name_uz"`
	NameRu       string    `json:"name_ru"`
	AddressUz    string    `json:"address_uz"`
	AddressRu    string    `json:"address_ru"`
	Phone        *string   `json:"phone,omitempty"`
	WorkingHours *string   `json:"working_hours,omitempty"`
	MapURL       *string   `json:"map_url,omitempty"`
	IsVisible    bool      `json:"is_visible"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func newGalleryItemDTO(row *models.GalleryItem, locale string) GalleryItemDTO {
	title := types.BilingualText{Uz: row.TitleUz, Ru: row.TitleRu}
	return GalleryItemDTO{
		ID:       row.ID,
		Title:    title.Resolve(locale),
		ImageURL: row.ImageURL,
	}
}

func newBannerDTO(row *models.Banner, locale string) BannerDTO {
	title := types.BilingualText{Uz: row.TitleUz, Ru: row.TitleRu}
	subtitle := types.BilingualText{}
	if row.SubtitleUz != nil {
		subtitle.Uz = *row.SubtitleUz
	}
	if row.SubtitleRu != nil {
		subtitle.Ru = *row.SubtitleRu
	}
	return BannerDTO{
		ID:       row.ID,
		Title:    title.Resolve(locale),
		Subtitle: subtitle.Resolve(locale),
		ImageURL: row.ImageURL,
		LinkURL:  row.LinkURL,
	}
}

func newServiceItemDTO(row *models.ServiceItem, locale string) ServiceItemDTO {
	name := types.BilingualText{Uz: row.NameUz, Ru: row.NameRu}
	desc := types.BilingualText{}
	if row.DescriptionUz != nil {
		desc.Uz = *row.DescriptionUz
	}
	if row.DescriptionRu != nil {
		desc.Ru = *row.DescriptionRu
	}
	return ServiceItemDTO{
		ID:          row.ID,
		Name:        name.Resolve(locale),
		Description: desc.Resolve(locale),
		IconURL:     row.IconURL,
	}
}

func newStoreLocationDTO(row *models.StoreLocation, locale string) StoreLocationDTO {
	name := types.BilingualText{Uz: row.NameUz, Ru: row.NameRu}
	address := types.BilingualText{Uz: row.AddressUz, Ru: row.AddressRu}
	return StoreLocationDTO{
		ID:           row.ID,
		Name:         name.Resolve(locale),
		Address:      address.Resolve(locale),
		Phone:        row.Phone,
		WorkingHours: row.WorkingHours,
		MapURL:       row.MapURL,
	}
}
