package redis

import (
	"testing"

	"github.com/begzodnazarov/mebelhub-backend/pkg/config"
)

func TestOptionsFromConfigRequiresTarget(t *testing.T) {
	if _, err := optionsFromConfig(config.RedisConfig{}); err == nil {
		t.Fatal("expected error without url or address")
	}
}

func TestOptionsFromConfigParsesURL(t *testing.T) {
	opts, err := optionsFromConfig(config.RedisConfig{URL: "redis://:pw@localhost:6380/2"})
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	if opts.Addr != "localhost:6380" {
		t.Fatalf("expected addr localhost:6380, got %s", opts.Addr)
	}
	if opts.DB != 2 {
		t.Fatalf("expected db 2, got %d", opts.DB)
	}
}

func TestOptionsFromConfigAddressFallback(t *testing.T) {
	opts, err := optionsFromConfig(config.RedisConfig{Address: "10.0.0.5:6379", Password: "pw", DB: 1, PoolSize: 4})
	if err != nil {
		t.Fatalf("build options: %v", err)
	}
	if opts.Addr != "10.0.0.5:6379" || opts.Password != "pw" || opts.DB != 1 {
		t.Fatalf("options not applied: %+v", opts)
	}
	if opts.PoolSize != 4 {
		t.Fatalf("expected pool size 4, got %d", opts.PoolSize)
	}
}

func TestKeyBuilders(t *testing.T) {
	c := &Client{}
	if got := c.CartKey("tok-1"); got != "mh:cart:tok-1" {
		t.Fatalf("cart key mismatch: %s", got)
	}
	if got := c.IdempotencyKey("orders", "abc"); got != "mh:idempotency:orders:abc" {
		t.Fatalf("idempotency key mismatch: %s", got)
	}
	if got := c.AccessSessionKey("jti"); got != "mh:session:access:jti" {
		t.Fatalf("session key mismatch: %s", got)
	}
	if got := c.RateLimitKey("login:ip:1.2.3.4"); got != "mh:rate_limit:login:ip:1.2.3.4" {
		t.Fatalf("rate limit key mismatch: %s", got)
	}
}
