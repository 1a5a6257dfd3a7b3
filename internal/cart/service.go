package cart

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/begzodnazarov/mebelhub-backend/internal/currency"
	"github.com/begzodnazarov/mebelhub-backend/pkg/db"
	"github.com/begzodnazarov/mebelhub-backend/pkg/db/models"
	pkgerrors "github.com/begzodnazarov/mebelhub-backend/pkg/errors"
	"github.com/begzodnazarov/mebelhub-backend/pkg/logger"
	"github.com/begzodnazarov/mebelhub-backend/pkg/types"
)

type productLoader interface {
	FindVisibleByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

// Service exposes cart operations keyed by the opaque client token.
type Service interface {
	Fetch(ctx context.Context, token, locale string) (*CartDTO, error)
	AddItem(ctx context.Context, token, locale string, productID uuid.UUID, qty int) (*CartDTO, error)
	UpdateQuantity(ctx context.Context, token, locale string, productID uuid.UUID, qty int) (*CartDTO, error)
	RemoveItem(ctx context.Context, token, locale string, productID uuid.UUID) (*CartDTO, error)
	Clear(ctx context.Context, token string) error
	// Snapshot loads the raw aggregate for checkout.
	Snapshot(ctx context.Context, token string) (*Items, error)
}

type service struct {
	persister Persister
	products  productLoader
	rates     *currency.Resolver
	logg      *logger.Logger
}

// NewService constructs a cart service instance.
func NewService(persister Persister, products productLoader, rates *currency.Resolver, logg *logger.Logger) (Service, error) {
	if persister == nil {
		return nil, fmt.Errorf("cart persister required")
	}
	if products == nil {
		return nil, fmt.Errorf("product loader required")
	}
	return &service{
		persister: persister,
		products:  products,
		rates:     rates,
		logg:      logg,
	}, nil
}

func (s *service) Fetch(ctx context.Context, token, locale string) (*CartDTO, error) {
	if strings.TrimSpace(token) == "" {
		return NewCartDTO(NewItems(nil), locale, s.rates.Rate(ctx)), nil
	}
	items, err := s.load(ctx, token)
	if err != nil {
		return nil, err
	}
	return NewCartDTO(items, locale, s.rates.Rate(ctx)), nil
}

func (s *service) AddItem(ctx context.Context, token, locale string, productID uuid.UUID, qty int) (*CartDTO, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}

	product, err := s.products.FindVisibleByID(ctx, productID)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not available")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load product")
	}

	items, err := s.load(ctx, token)
	if err != nil {
		return nil, err
	}

	line := Item{
		ProductID:  product.ID.String(),
		Slug:       product.Slug,
		Name:       types.BilingualText{Uz: product.NameUz, Ru: product.NameRu},
		PriceCents: product.PriceCents,
	}
	if len(product.ImageURLs) > 0 {
		line.ImageURL = product.ImageURLs[0]
	}
	items.Add(line, qty)

	s.persist(ctx, token, items)
	return NewCartDTO(items, locale, s.rates.Rate(ctx)), nil
}

func (s *service) UpdateQuantity(ctx context.Context, token, locale string, productID uuid.UUID, qty int) (*CartDTO, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}
	items, err := s.load(ctx, token)
	if err != nil {
		return nil, err
	}
	items.SetQuantity(productID.String(), qty)
	s.persist(ctx, token, items)
	return NewCartDTO(items, locale, s.rates.Rate(ctx)), nil
}

func (s *service) RemoveItem(ctx context.Context, token, locale string, productID uuid.UUID) (*CartDTO, error) {
	if err := requireToken(token); err != nil {
		return nil, err
	}
	items, err := s.load(ctx, token)
	if err != nil {
		return nil, err
	}
	items.Remove(productID.String())
	s.persist(ctx, token, items)
	return NewCartDTO(items, locale, s.rates.Rate(ctx)), nil
}

func (s *service) Clear(ctx context.Context, token string) error {
	if err := requireToken(token); err != nil {
		return err
	}
	if err := s.persister.Delete(ctx, token); err != nil {
		s.logSaveFailure(ctx, token, err)
	}
	return nil
}

func (s *service) Snapshot(ctx context.Context, token string) (*Items, error) {
	if strings.TrimSpace(token) == "" {
		return NewItems(nil), nil
	}
	return s.load(ctx, token)
}

func (s *service) load(ctx context.Context, token string) (*Items, error) {
	items, err := s.persister.Load(ctx, token)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	return items, nil
}

// persist is best-effort: a failed save is logged and the in-memory state
// still drives the response.
func (s *service) persist(ctx context.Context, token string, items *Items) {
	if err := s.persister.Save(ctx, token, items); err != nil {
		s.logSaveFailure(ctx, token, err)
	}
}

func (s *service) logSaveFailure(ctx context.Context, token string, err error) {
	if s.logg == nil {
		return
	}
	s.logg.Error(s.logg.WithCartToken(ctx, token), "cart.persist.failed", err)
}

func requireToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart token required")
	}
	return nil
}
