package controllers

import (
	"net/http"

	"github.com/begzodnazarov/mebelhub-backend/api/responses"
	"github.com/begzodnazarov/mebelhub-backend/api/validators"
	checkoutsvc "github.com/begzodnazarov/mebelhub-backend/internal/checkout"
	"github.com/begzodnazarov/mebelhub-backend/pkg/enums"
	pkgerrors "github.com/begzodnazarov/mebelhub-backend/pkg/errors"
	"github.com/begzodnazarov/mebelhub-backend/pkg/logger"
)

type checkoutRequest struct {
	CustomerName  string `json:"customer_name" validate:"required,min=2"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required,min=9"`
	Address       string `json:"address" validate:"required,min=5"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=cash card"`
	Comment       string `json:"comment,omitempty"`
}

// Checkout turns the cart behind the token header into an order.
func Checkout(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Checkout(r.Context(), cartToken(r), localeFromRequest(r), checkoutsvc.Input{
			CustomerName:  payload.CustomerName,
			Email:         payload.Email,
			Phone:         payload.Phone,
			Address:       payload.Address,
			PaymentMethod: enums.PaymentMethod(payload.PaymentMethod),
			Comment:       payload.Comment,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}
