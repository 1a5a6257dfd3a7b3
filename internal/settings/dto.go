package settings

import (
	"time"

	"github.com/begzodnazarov/mebelhub-backend/pkg/db/models"
)

// SettingDTO is the wire representation of one setting.
type SettingDTO struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSettingDTO maps the persisted row to its wire shape.
func NewSettingDTO(setting *models.Setting) *SettingDTO {
	return &SettingDTO{
		Key:       setting.Key,
		Value:     setting.Value,
		UpdatedAt: setting.UpdatedAt,
	}
}
