package controllers

import (
	"net/http"

	"github.com/begzodnazarov/mebelhub-backend/api/responses"
	"github.com/begzodnazarov/mebelhub-backend/api/validators"
	contentsvc "github.com/begzodnazarov/mebelhub-backend/internal/content"
	pkgerrors "github.com/begzodnazarov/mebelhub-backend/pkg/errors"
	"github.com/begzodnazarov/mebelhub-backend/pkg/logger"
)

func contentUnavailable(w http.ResponseWriter, r *http.Request, logg *logger.Logger) {
	responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "content service unavailable"))
}

type galleryItemRequest struct {
	TitleUz   string `json:"title_uz,omitempty"`
	TitleRu   string `json:"title_ru,omitempty"`
	ImageURL  string `json:"image_url" validate:"required,url"`
	IsVisible bool   `json:"is_visible,omitempty"`
	SortOrder int    `json:"sort_order,omitempty"`
}

func (req galleryItemRequest) toInput() contentsvc.GalleryInput {
	return contentsvc.GalleryInput{
		TitleUz:   req.TitleUz,
		TitleRu:   req.TitleRu,
		ImageURL:  req.ImageURL,
		IsVisible: req.IsVisible,
		SortOrder: req.SortOrder,
	}
}

func AdminListGallery(svc contentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			contentUnavailable(w, r, logg)
			return
		}
		items, err := svc.AdminListGallery(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}

func AdminCreateGalleryItem(svc contentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			contentUnavailable(w, r, logg)
			return
		}
		var payload galleryItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		item, err := svc.AdminCreateGalleryItem(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

func AdminUpdateGalleryItem(svc contentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			contentUnavailable(w, r, logg)
			return
		}
		id, err := idParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload galleryItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		item, err := svc.AdminUpdateGalleryItem(r.Context(), id, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

func AdminDeleteGalleryItem(svc contentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			contentUnavailable(w, r, logg)
			return
		}
		id, err := idParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.AdminDeleteGalleryItem(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

type bannerRequest struct {
	TitleUz    string  `json:"title_uz,omitempty"`
	TitleRu    string  `json:"title_ru,omitempty"`
	SubtitleUz *string `json:"subtitle_uz,omitempty"`
	SubtitleRu *string `json:"subtitle_ru,omitempty"`
	ImageURL   string  `json:"image_url" validate:"required,url"`
	LinkURL    *string `json:"link_url,omitempty" validate:"omitempty,url"`
	IsActive   bool    `json:"is_active,omitempty"`
	SortOrder  int     `json:"sort_order,omitempty"`
}

func (req bannerRequest) toInput() contentsvc.BannerInput {
	return contentsvc.BannerInput{
		TitleUz:    req.TitleUz,
		TitleRu:    req.TitleRu,
		SubtitleUz: req.SubtitleUz,
		SubtitleRu: req.SubtitleRu,
		ImageURL:   req.ImageURL,
		LinkURL:    req.LinkURL,
		IsActive:   req.IsActive,
		SortOrder:  req.SortOrder,
	}
}

func AdminListBanners(svc contentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			contentUnavailable(w, r, logg)
			return
		}
		banners, err := svc.AdminListBanners(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, banners)
	}
}

func AdminCreateBanner(svc contentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			contentUnavailable(w, r, logg)
			return
		}
		var payload bannerRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		banner, err := svc.AdminCreateBanner(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, banner)
	}
}

func AdminUpdateBanner(svc contentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			contentUnavailable(w, r, logg)
			return
		}
		id, err := idParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload bannerRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		banner, err := svc.AdminUpdateBanner(r.Context(), id, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, banner)
	}
}

func AdminDeleteBanner(svc contentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			contentUnavailable(w, r, logg)
			return
		}
		id, err := idParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.AdminDeleteBanner(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

type serviceItemRequest struct {
	NameUz        string  `json:"name_uz" validate:"required,min=1"`
	NameRu        string  `json:"name_ru,omitempty"`
	DescriptionUz *string `json:"description_uz,omitempty"`
	DescriptionRu *string `json:"description_ru,omitempty"`
	IconURL       *string `json:"icon_url,omitempty" validate:"omitempty,url"`
	IsVisible     bool    `json:"is_visible,omitempty"`
	SortOrder     int     `json:"sort_order,omitempty"`
}

func (req serviceItemRequest) toInput() contentsvc.ServiceItemInput {
	return contentsvc.ServiceItemInput{
		NameUz:        req.NameUz,
		NameRu:        req.NameRu,
		DescriptionUz: req.DescriptionUz,
		DescriptionRu: req.DescriptionRu,
		IconURL:       req.IconURL,
		IsVisible:     req.IsVisible,
		SortOrder:     req.SortOrder,
	}
}

func AdminListServices(svc contentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			contentUnavailable(w, r, logg)
			return
		}
		services, err := svc.AdminListServices(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, services)
	}
}

func AdminCreateServiceItem(svc contentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			contentUnavailable(w, r, logg)
			return
		}
		var payload serviceItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		item, err := svc.AdminCreateServiceItem(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

func AdminUpdateServiceItem(svc contentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			contentUnavailable(w, r, logg)
			return
		}
		id, err := idParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload serviceItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		item, err := svc.AdminUpdateServiceItem(r.Context(), id, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

func AdminDeleteServiceItem(svc contentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			contentUnavailable(w, r, logg)
			return
		}
		id, err := idParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.AdminDeleteServiceItem(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

type storeLocationRequest struct {
	NameUz       string  `json:"name_uz" validate:"required,min=1"`
	NameRu       string  `json:"name_ru,omitempty"`
	AddressUz    string  `json:"address_uz,omitempty"`
	AddressRu    string  `json:"address_ru,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	WorkingHours *string `json:"working_hours,omitempty"`
	MapURL       *string `json:"map_url,omitempty" validate:"omitempty,url"`
	IsVisible    bool    `json:"is_visible,omitempty"`
}

func (req storeLocationRequest) toInput() contentsvc.StoreLocationInput {
	return contentsvc.StoreLocationInput{
		NameUz:       req.NameUz,
		NameRu:       req.NameRu,
		AddressUz:    req.AddressUz,
		AddressRu:    req.AddressRu,
		Phone:        req.Phone,
		WorkingHours: req.WorkingHours,
		MapURL:       req.MapURL,
		IsVisible:    req.IsVisible,
	}
}

func AdminListStores(svc contentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			contentUnavailable(w, r, logg)
			return
		}
		stores, err := svc.AdminListStores(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, stores)
	}
}

func AdminCreateStoreLocation(svc contentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			contentUnavailable(w, r, logg)
			return
		}
		var payload storeLocationRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		store, err := svc.AdminCreateStoreLocation(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, store)
	}
}

func AdminUpdateStoreLocation(svc contentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			contentUnavailable(w, r, logg)
			return
		}
		id, err := idParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload storeLocationRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		store, err := svc.AdminUpdateStoreLocation(r.Context(), id, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, store)
	}
}

func AdminDeleteStoreLocation(svc contentsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			contentUnavailable(w, r, logg)
			return
		}
		id, err := idParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.AdminDeleteStoreLocation(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
