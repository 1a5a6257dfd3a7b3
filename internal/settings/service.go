package settings

import (
	"context"
	"fmt"
	"strings"

	"github.com/begzodnazarov/mebelhub-backend/pkg/db"
	"github.com/begzodnazarov/mebelhub-backend/pkg/db/models"
	pkgerrors "github.com/begzodnazarov/mebelhub-backend/pkg/errors"
)

// Service exposes setting lookups and admin mutations.
type Service interface {
	Get(ctx context.Context, key string) (*SettingDTO, error)
	Put(ctx context.Context, key, value string) (*SettingDTO, error)
	List(ctx context.Context) ([]SettingDTO, error)
	// Value returns the raw stored value, used by internal consumers.
	Value(ctx context.Context, key string) (string, error)
}

type settingsRepo interface {
	FindByKey(ctx context.Context, key string) (*models.Setting, error)
	Upsert(ctx context.Context, setting *models.Setting) (*models.Setting, error)
	List(ctx context.Context) ([]models.Setting, error)
}

type service struct {
	repo settingsRepo
}

// NewService constructs a settings service instance.
func NewService(repo settingsRepo) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("settings repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Get(ctx context.Context, key string) (*SettingDTO, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "setting key required")
	}
	row, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "setting not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load setting")
	}
	return NewSettingDTO(row), nil
}

func (s *service) Put(ctx context.Context, key, value string) (*SettingDTO, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "setting key required")
	}
	row, err := s.repo.Upsert(ctx, &models.Setting{Key: key, Value: strings.TrimSpace(value)})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: upsert setting")
	}
	return NewSettingDTO(row), nil
}

func (s *service) List(ctx context.Context) ([]SettingDTO, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list settings")
	}
	out := make([]SettingDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewSettingDTO(&rows[i]))
	}
	return out, nil
}

func (s *service) Value(ctx context.Context, key string) (string, error) {
	row, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		return "", err
	}
	return row.Value, nil
}
