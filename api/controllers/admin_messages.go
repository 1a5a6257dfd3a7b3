package controllers

import (
	"net/http"

	"github.com/begzodnazarov/mebelhub-backend/api/responses"
	"github.com/begzodnazarov/mebelhub-backend/api/validators"
	messagesvc "github.com/begzodnazarov/mebelhub-backend/internal/messages"
	pkgerrors "github.com/begzodnazarov/mebelhub-backend/pkg/errors"
	"github.com/begzodnazarov/mebelhub-backend/pkg/logger"
)

// AdminListMessages serves the contact inbox, newest first.
func AdminListMessages(svc messagesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "message service unavailable"))
			return
		}
		messages, err := svc.AdminList(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, messages)
	}
}

type markMessageReadRequest struct {
	IsRead *bool `json:"is_read" validate:"required"`
}

// AdminMarkMessageRead flips the read flag on an inbox message.
func AdminMarkMessageRead(svc messagesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "message service unavailable"))
			return
		}

		id, err := idParam(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload markMessageReadRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		message, err := svc.AdminMarkRead(r.Context(), id, *payload.IsRead)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, message)
	}
}

// AdminDeleteMessage removes an inbox message.
func AdminDeleteMessage(svc messagesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "message service unavailable"))
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
