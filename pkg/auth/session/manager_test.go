package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	redislib "github.com/redis/go-redis/v9"
)

type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]string
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]string)}
}

func (f *fakeSessionStore) Set(_ context.Context, key string, value any, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[key] = value.(string)
	return nil
}

func (f *fakeSessionStore) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	val, ok := f.sessions[key]
	if !ok {
		return "", redislib.Nil
	}
	return val, nil
}

func (f *fakeSessionStore) Del(_ context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, key := range keys {
		delete(f.sessions, key)
	}
	return nil
}

func (f *fakeSessionStore) AccessSessionKey(accessID string) string {
	return "mh:admin:session:" + accessID
}

func newTestManager() (*Manager, *fakeSessionStore) {
	store := newFakeSessionStore()
	return &Manager{store: store, keyer: store, ttl: 30 * time.Minute}, store
}

func TestRotateSwapsSessionKeys(t *testing.T) {
	manager, store := newTestManager()
	ctx := context.Background()

	jti := NewAccessID()
	refresh, err := manager.Generate(ctx, jti)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if stored := store.sessions[store.AccessSessionKey(jti)]; stored != refresh {
		t.Fatalf("stored refresh token %q does not match issued %q", stored, refresh)
	}

	nextJTI, nextRefresh, err := manager.Rotate(ctx, jti, refresh)
	if err != nil {
		t.Fatalf("rotate: %v", err)
	}
	if nextJTI == jti || nextRefresh == refresh {
		t.Fatal("rotation must mint a fresh access id and refresh token")
	}
	if _, stale := store.sessions[store.AccessSessionKey(jti)]; stale {
		t.Fatal("rotated-away session key must be deleted")
	}
	if stored := store.sessions[store.AccessSessionKey(nextJTI)]; stored != nextRefresh {
		t.Fatalf("new session key holds %q, want %q", stored, nextRefresh)
	}
}

func TestRotateRejectsMismatchedRefreshToken(t *testing.T) {
	manager, _ := newTestManager()
	ctx := context.Background()

	jti := NewAccessID()
	if _, err := manager.Generate(ctx, jti); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, _, err := manager.Rotate(ctx, jti, "stolen-token"); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
	if _, _, err := manager.Rotate(ctx, "never-issued", "anything"); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken for unknown access id, got %v", err)
	}
}

func TestRevokeEndsSession(t *testing.T) {
	manager, _ := newTestManager()
	ctx := context.Background()

	jti := NewAccessID()
	if _, err := manager.Generate(ctx, jti); err != nil {
		t.Fatalf("generate: %v", err)
	}

	active, err := manager.HasSession(ctx, jti)
	if err != nil || !active {
		t.Fatalf("expected live session, got active=%v err=%v", active, err)
	}

	if err := manager.Revoke(ctx, jti); err != nil {
		t.Fatalf("revoke: %v", err)
	}

	active, err = manager.HasSession(ctx, jti)
	if err != nil {
		t.Fatalf("has session after revoke: %v", err)
	}
	if active {
		t.Fatal("revoked session still reported active")
	}
}
