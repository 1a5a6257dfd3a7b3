package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/begzodnazarov/mebelhub-backend/api/responses"
	"github.com/begzodnazarov/mebelhub-backend/api/validators"
	productsvc "github.com/begzodnazarov/mebelhub-backend/internal/products"
	pkgerrors "github.com/begzodnazarov/mebelhub-backend/pkg/errors"
	"github.com/begzodnazarov/mebelhub-backend/pkg/logger"
	"github.com/begzodnazarov/mebelhub-backend/pkg/pagination"
)

func idParam(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid id")
	}
	return id, nil
}

// AdminListProducts serves the dashboard product table.
func AdminListProducts(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.AdminList(r.Context(), pagination.Params{
			Limit:  limit,
			Cursor: r.URL.Query().Get("cursor"),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// AdminGetProduct serves one product with both language variants.
func AdminGetProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		id, err := idParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.AdminGet(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

type createProductRequest struct {
	Slug          string     `json:"slug" validate:"required,min=1"`
	NameUz        string     `json:"name_uz" validate:"required,min=1"`
	NameRu        string     `json:"name_ru,omitempty"`
	DescriptionUz *string    `json:"description_uz,omitempty"`
	DescriptionRu *string    `json:"description_ru,omitempty"`
	CategoryID    *uuid.UUID `json:"category_id,omitempty"`
	PriceCents    int        `json:"price_cents" validate:"min=0"`
	ImageURLs     []string   `json:"image_urls,omitempty" validate:"omitempty,dive,url"`
	IsVisible     *bool      `json:"is_visible,omitempty"`
	IsFeatured    bool       `json:"is_featured,omitempty"`
	SortOrder     int        `json:"sort_order,omitempty"`
}

// AdminCreateProduct inserts a catalog product.
func AdminCreateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		var payload createProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		visible := true
		if payload.IsVisible != nil {
			visible = *payload.IsVisible
		}

		product, err := svc.AdminCreate(r.Context(), productsvc.CreateProductInput{
			Slug:          payload.Slug,
			NameUz:        payload.NameUz,
			NameRu:        payload.NameRu,
			DescriptionUz: payload.DescriptionUz,
			DescriptionRu: payload.DescriptionRu,
			CategoryID:    payload.CategoryID,
			PriceCents:    payload.PriceCents,
			ImageURLs:     payload.ImageURLs,
			IsVisible:     visible,
			IsFeatured:    payload.IsFeatured,
			SortOrder:     payload.SortOrder,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, product)
	}
}

type updateProductRequest struct {
	Slug          *string    `json:"slug,omitempty" validate:"omitempty,min=1"`
	NameUz        *string    `json:"name_uz,omitempty" validate:"omitempty,min=1"`
	NameRu        *string    `json:"name_ru,omitempty"`
	DescriptionUz *string    `json:"description_uz,omitempty"`
	DescriptionRu *string    `json:"description_ru,omitempty"`
	CategoryID    *uuid.UUID `json:"category_id,omitempty"`
	ClearCategory bool       `json:"clear_category,omitempty"`
	PriceCents    *int       `json:"price_cents,omitempty" validate:"omitempty,min=0"`
	ImageURLs     *[]string  `json:"image_urls,omitempty"`
	IsVisible     *bool      `json:"is_visible,omitempty"`
	IsFeatured    *bool      `json:"is_featured,omitempty"`
	SortOrder     *int       `json:"sort_order,omitempty"`
}

// AdminUpdateProduct applies a partial product update.
func AdminUpdateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		id, err := idParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := svc.AdminUpdate(r.Context(), id, productsvc.UpdateProductInput{
			Slug:          payload.Slug,
			NameUz:        payload.NameUz,
			NameRu:        payload.NameRu,
			DescriptionUz: payload.DescriptionUz,
			DescriptionRu: payload.DescriptionRu,
			CategoryID:    payload.CategoryID,
			ClearCategory: payload.ClearCategory,
			PriceCents:    payload.PriceCents,
			ImageURLs:     payload.ImageURLs,
			IsVisible:     payload.IsVisible,
			IsFeatured:    payload.IsFeatured,
			SortOrder:     payload.SortOrder,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, product)
	}
}

// AdminDeleteProduct removes a product.
func AdminDeleteProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		id, err := idParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.AdminDelete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
