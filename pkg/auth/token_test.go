package auth_test

import (
	"testing"
	"time"

	"github.com/begzodnazarov/mebelhub-backend/pkg/auth"
	"github.com/begzodnazarov/mebelhub-backend/pkg/config"
	"github.com/google/uuid"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "mebelhub-test",
		ExpirationMinutes: 15,
	}
}

func TestMintAndParseAccessToken(t *testing.T) {
	cfg := testJWTConfig()
	adminID := uuid.New()

	token, err := auth.MintAccessToken(cfg, time.Now(), auth.AccessTokenPayload{
		AdminID: adminID,
		Email:   "admin@mebelhub.uz",
	})
	if err != nil {
		t.Fatalf("MintAccessToken returned error: %v", err)
	}

	claims, err := auth.ParseAccessToken(cfg, token)
	if err != nil {
		t.Fatalf("ParseAccessToken returned error: %v", err)
	}
	if claims.AdminID != adminID {
		t.Fatalf("expected admin id %s, got %s", adminID, claims.AdminID)
	}
	if claims.Email != "admin@mebelhub.uz" {
		t.Fatalf("unexpected email claim %q", claims.Email)
	}
	if claims.ID == "" {
		t.Fatal("expected a generated jti")
	}
}

func TestMintAccessTokenRequiresAdminID(t *testing.T) {
	if _, err := auth.MintAccessToken(testJWTConfig(), time.Now(), auth.AccessTokenPayload{}); err == nil {
		t.Fatal("expected error for missing admin id")
	}
}

func TestParseAccessTokenRejectsWrongSecret(t *testing.T) {
	cfg := testJWTConfig()
	token, err := auth.MintAccessToken(cfg, time.Now(), auth.AccessTokenPayload{AdminID: uuid.New()})
	if err != nil {
		t.Fatalf("MintAccessToken returned error: %v", err)
	}

	bad := cfg
	bad.Secret = "other-secret"
	if _, err := auth.ParseAccessToken(bad, token); err == nil {
		t.Fatal("expected signature validation to fail")
	}
}

func TestParseAccessTokenRejectsExpired(t *testing.T) {
	cfg := testJWTConfig()
	token, err := auth.MintAccessToken(cfg, time.Now().Add(-time.Hour), auth.AccessTokenPayload{AdminID: uuid.New()})
	if err != nil {
		t.Fatalf("MintAccessToken returned error: %v", err)
	}
	if _, err := auth.ParseAccessToken(cfg, token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}
