package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	settingsvc "github.com/begzodnazarov/mebelhub-backend/internal/settings"
	pkgerrors "github.com/begzodnazarov/mebelhub-backend/pkg/errors"
)

type fixedSettingsService struct {
	values map[string]string
}

func (s *fixedSettingsService) Get(_ context.Context, key string) (*settingsvc.SettingDTO, error) {
	value, ok := s.values[key]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "setting not found")
	}
	return &settingsvc.SettingDTO{Key: key, Value: value}, nil
}

func (s *fixedSettingsService) Put(_ context.Context, key, value string) (*settingsvc.SettingDTO, error) {
	return &settingsvc.SettingDTO{Key: key, Value: value}, nil
}

func (s *fixedSettingsService) List(context.Context) ([]settingsvc.SettingDTO, error) {
	return nil, nil
}

func (s *fixedSettingsService) Value(_ context.Context, key string) (string, error) {
	return s.values[key], nil
}

func TestGetPublicSettingReturnsValue(t *testing.T) {
	svc := &fixedSettingsService{values: map[string]string{"currencyRate": "13000"}}
	handler := GetPublicSetting(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/settings?key=currencyRate", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data settingsvc.SettingDTO `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Key != "currencyRate" || envelope.Data.Value != "13000" {
		t.Fatalf("unexpected setting %+v", envelope.Data)
	}
}

func TestGetPublicSettingRequiresKey(t *testing.T) {
	handler := GetPublicSetting(&fixedSettingsService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/settings", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestGetPublicSettingUnknownKeyIs404(t *testing.T) {
	handler := GetPublicSetting(&fixedSettingsService{values: map[string]string{}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/settings?key=deliveryFee", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}
