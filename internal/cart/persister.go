package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	pkgredis "github.com/begzodnazarov/mebelhub-backend/pkg/redis"
)

// Persister stores cart lines keyed by the opaque client token.
type Persister interface {
	Save(ctx context.Context, token string, items *Items) error
	Load(ctx context.Context, token string) (*Items, error)
	Delete(ctx context.Context, token string) error
}

type cartStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
	CartKey(token string) string
}

// RedisPersister keeps carts in Redis as JSON with a sliding TTL.
type RedisPersister struct {
	store cartStore
	ttl   time.Duration
}

// NewRedisPersister builds a persister over the shared Redis client.
func NewRedisPersister(store cartStore, ttl time.Duration) (*RedisPersister, error) {
	if store == nil {
		return nil, fmt.Errorf("redis store required")
	}
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &RedisPersister{store: store, ttl: ttl}, nil
}

func (p *RedisPersister) Save(ctx context.Context, token string, items *Items) error {
	payload, err := json.Marshal(items.Lines())
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	return p.store.Set(ctx, p.store.CartKey(token), string(payload), p.ttl)
}

func (p *RedisPersister) Load(ctx context.Context, token string) (*Items, error) {
	raw, err := p.store.Get(ctx, p.store.CartKey(token))
	if err != nil {
		if pkgredis.IsNil(err) {
			return NewItems(nil), nil
		}
		return nil, err
	}
	var lines []Item
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	return NewItems(lines), nil
}

func (p *RedisPersister) Delete(ctx context.Context, token string) error {
	return p.store.Del(ctx, p.store.CartKey(token))
}

// MemoryPersister keeps carts in process memory. Used in tests and as a
// degraded mode when Redis is unavailable.
type MemoryPersister struct {
	mu    sync.RWMutex
	carts map[string][]Item
}

// NewMemoryPersister builds an empty in-memory persister.
func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{carts: make(map[string][]Item)}
}

func (p *MemoryPersister) Save(_ context.Context, token string, items *Items) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.carts[token] = items.Lines()
	return nil
}

func (p *MemoryPersister) Load(_ context.Context, token string) (*Items, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return NewItems(p.carts[token]), nil
}

func (p *MemoryPersister) Delete(_ context.Context, token string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.carts, token)
	return nil
}
