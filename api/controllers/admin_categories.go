package controllers

import (
	"net/http"

	"github.com/begzodnazarov/mebelhub-backend/api/responses"
	"github.com/begzodnazarov/mebelhub-backend/api/validators"
	categorysvc "github.com/begzodnazarov/mebelhub-backend/internal/categories"
	pkgerrors "github.com/begzodnazarov/mebelhub-backend/pkg/errors"
	"github.com/begzodnazarov/mebelhub-backend/pkg/logger"
)

// AdminListCategories serves the dashboard category table.
func AdminListCategories(svc categorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "category service unavailable"))
			return
		}

		categories, err := svc.AdminList(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, categories)
	}
}

type categoryRequest struct {
	Slug      string  `json:"slug" validate:"required,min=1"`
	NameUz    string  `json:"name_uz" validate:"required,min=1"`
	NameRu    string  `json:"name_ru,omitempty"`
	ImageURL  *string `json:"image_url,omitempty" validate:"omitempty,url"`
	IsVisible bool    `json:"is_visible,omitempty"`
	SortOrder int     `json:"sort_order,omitempty"`
}

func (req categoryRequest) toInput() categorysvc.CategoryInput {
	return categorysvc.CategoryInput{
		Slug:      req.Slug,
		NameUz:    req.NameUz,
		NameRu:    req.NameRu,
		ImageURL:  req.ImageURL,
		IsVisible: req.IsVisible,
		SortOrder: req.SortOrder,
	}
}

// AdminCreateCategory inserts a category.
func AdminCreateCategory(svc categorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "category service unavailable"))
			return
		}

		var payload categoryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		category, err := svc.AdminCreate(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, category)
	}
}

// AdminUpdateCategory replaces a category's fields.
func AdminUpdateCategory(svc categorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "category service unavailable"))
			return
		}

		id, err := idParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload categoryRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		category, err := svc.AdminUpdate(r.Context(), id, payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, category)
	}
}

// AdminDeleteCategory removes a category; its products go uncategorized.
func AdminDeleteCategory(svc categorysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "category service unavailable"))
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
