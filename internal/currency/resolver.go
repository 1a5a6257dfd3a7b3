package currency

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/begzodnazarov/mebelhub-backend/pkg/enums"
	"github.com/begzodnazarov/mebelhub-backend/pkg/logger"
)

type settingsReader interface {
	Value(ctx context.Context, key string) (string, error)
}

// Resolver reads the configured exchange rate with a short-lived cache.
// Lookup failures never surface; the caller always gets a usable rate.
type Resolver struct {
	settings settingsReader
	logg     *logger.Logger
	ttl      time.Duration

	mu        sync.Mutex
	cached    decimal.Decimal
	expiresAt time.Time
}

// NewResolver builds a resolver over the settings store.
func NewResolver(settings settingsReader, ttl time.Duration, logg *logger.Logger) *Resolver {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Resolver{
		settings: settings,
		logg:     logg,
		ttl:      ttl,
	}
}

// Rate returns the current USD to UZS rate.
func (r *Resolver) Rate(ctx context.Context) decimal.Decimal {
	if r == nil {
		return DefaultRate
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if !r.expiresAt.IsZero() && now.Before(r.expiresAt) {
		return r.cached
	}

	rate := r.lookup(ctx)
	r.cached = rate
	r.expiresAt = now.Add(r.ttl)
	return rate
}

// Invalidate drops the cached rate so the next read hits the store.
func (r *Resolver) Invalidate() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.expiresAt = time.Time{}
	r.mu.Unlock()
}

func (r *Resolver) lookup(ctx context.Context) decimal.Decimal {
	if r.settings == nil {
		return DefaultRate
	}
	raw, err := r.settings.Value(ctx, string(enums.SettingCurrencyRate))
	if err != nil {
		if r.logg != nil {
			r.logg.Warn(r.logg.WithField(ctx, "fallback_rate", DefaultRate.String()), "currency.rate.lookup_failed")
		}
		return DefaultRate
	}

	parsed, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || !parsed.IsPositive() {
		if r.logg != nil {
			r.logg.Warn(r.logg.WithField(ctx, "raw_value", raw), "currency.rate.invalid_value")
		}
		return DefaultRate
	}
	return parsed
}
