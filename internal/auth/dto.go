package auth

import (
	"github.com/google/uuid"

	"github.com/begzodnazarov/mebelhub-backend/pkg/db/models"
)

// AdminDTO is the dashboard account payload.
type AdminDTO struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name,omitempty"`
}

// LoginRequest carries the dashboard sign-in credentials.
type LoginRequest struct {
	Email    string
	Password string
}

// LoginResponse returns the token pair plus the signed-in account.
type LoginResponse struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	Admin        AdminDTO `json:"admin"`
}

// RefreshRequest rotates the token pair. The access token may be expired;
// only its signature has to check out.
type RefreshRequest struct {
	AccessToken  string
	RefreshToken string
}

// RefreshResponse returns the rotated token pair.
type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func newAdminDTO(row *models.AdminUser) AdminDTO {
	return AdminDTO{
		ID:       row.ID,
		Email:    row.Email,
		FullName: row.FullName,
	}
}
