package controllers

import (
	"net/http"

	"github.com/begzodnazarov/mebelhub-backend/api/responses"
	"github.com/begzodnazarov/mebelhub-backend/api/validators"
	ordersvc "github.com/begzodnazarov/mebelhub-backend/internal/orders"
	pkgerrors "github.com/begzodnazarov/mebelhub-backend/pkg/errors"
	"github.com/begzodnazarov/mebelhub-backend/pkg/logger"
)

type createOrderRequest struct {
	CustomerName string   `json:"customer_name" validate:"required,min=2"`
	Email        string   `json:"email" validate:"required,email"`
	Phone        string   `json:"phone" validate:"required,min=9"`
	Address      string   `json:"address,omitempty"`
	ProductName  string   `json:"product_name" validate:"required"`
	Description  string   `json:"description,omitempty"`
	DesignFiles  []string `json:"design_files,omitempty" validate:"omitempty,dive,url"`
}

// CreateOrder accepts a direct order for a named or custom product.
func CreateOrder(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		var payload createOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Create(r.Context(), ordersvc.CreateInput{
			CustomerName: payload.CustomerName,
			Email:        payload.Email,
			Phone:        payload.Phone,
			Address:      payload.Address,
			ProductName:  payload.ProductName,
			Description:  payload.Description,
			DesignFiles:  payload.DesignFiles,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}
