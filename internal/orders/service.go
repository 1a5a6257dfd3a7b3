package orders

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/begzodnazarov/mebelhub-backend/internal/currency"
	"github.com/begzodnazarov/mebelhub-backend/pkg/db"
	"github.com/begzodnazarov/mebelhub-backend/pkg/db/models"
	"github.com/begzodnazarov/mebelhub-backend/pkg/enums"
	pkgerrors "github.com/begzodnazarov/mebelhub-backend/pkg/errors"
	"github.com/begzodnazarov/mebelhub-backend/pkg/logger"
	"github.com/begzodnazarov/mebelhub-backend/pkg/pagination"
)

// CreateInput is a direct order request: the customer names a product
// (often a custom build) instead of going through the cart.
type CreateInput struct {
	CustomerName string
	Email        string
	Phone        string
	Address      string
	ProductName  string
	Description  string
	DesignFiles  []string
}

// Service exposes order submission plus admin order management.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*OrderDTO, error)
	// Submit persists a pre-built order row. Checkout uses it after
	// snapshotting the cart.
	Submit(ctx context.Context, row *models.Order) (*OrderDTO, error)

	AdminList(ctx context.Context, filters ListFilters, params pagination.Params) (*OrderListResult, error)
	AdminGet(ctx context.Context, id uuid.UUID) (*OrderDTO, error)
	AdminUpdateStatus(ctx context.Context, id uuid.UUID, target enums.OrderStatus) (*OrderDTO, error)
	AdminDelete(ctx context.Context, id uuid.UUID) error
}

type orderRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	List(ctx context.Context, filters ListFilters, limit int, cursor *pagination.Cursor) ([]models.Order, error)
	Create(ctx context.Context, row *models.Order) (*models.Order, error)
	Update(ctx context.Context, row *models.Order) (*models.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo  orderRepo
	rates *currency.Resolver
	logg  *logger.Logger
}

// NewService constructs an order service instance.
func NewService(repo orderRepo, rates *currency.Resolver, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("order repository required")
	}
	if rates == nil {
		return nil, fmt.Errorf("currency resolver required")
	}
	return &service{repo: repo, rates: rates, logg: logg}, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*OrderDTO, error) {
	if err := validateCreate(input); err != nil {
		return nil, err
	}
	row := &models.Order{
		CustomerName: strings.TrimSpace(input.CustomerName),
		Email:        strings.TrimSpace(input.Email),
		Phone:        strings.TrimSpace(input.Phone),
		Address:      strings.TrimSpace(input.Address),
		ProductName:  strings.TrimSpace(input.ProductName),
		Description:  strings.TrimSpace(input.Description),
		DesignFiles:  pq.StringArray(input.DesignFiles),
		Status:       enums.OrderStatusNew,
	}
	created, err := s.repo.Create(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert order")
	}
	s.logOrder(ctx, created.ID, "order.submitted", nil)
	return NewOrderDTO(created, s.rates.Rate(ctx)), nil
}

func (s *service) Submit(ctx context.Context, row *models.Order) (*OrderDTO, error) {
	if row.Status == "" {
		row.Status = enums.OrderStatusNew
	}
	created, err := s.repo.Create(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert order")
	}
	s.logOrder(ctx, created.ID, "order.submitted", map[string]any{
		"total_cents": created.TotalCents,
	})
	return NewOrderDTO(created, s.rates.Rate(ctx)), nil
}

func (s *service) AdminList(ctx context.Context, filters ListFilters, params pagination.Params) (*OrderListResult, error) {
	limit := pagination.NormalizeLimit(params.Limit)
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid cursor")
	}

	rows, err := s.repo.List(ctx, filters, limit+1, cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list orders")
	}

	next := ""
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[limit-1]
		next = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}

	rate := s.rates.Rate(ctx)
	out := make([]OrderDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *NewOrderDTO(&rows[i], rate))
	}
	return &OrderListResult{Orders: out, NextCursor: next}, nil
}

func (s *service) AdminGet(ctx context.Context, id uuid.UUID) (*OrderDTO, error) {
	row, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewOrderDTO(row, s.rates.Rate(ctx)), nil
}

func (s *service) AdminUpdateStatus(ctx context.Context, id uuid.UUID, target enums.OrderStatus) (*OrderDTO, error) {
	if !target.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown order status")
	}
	row, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if row.Status == target {
		return NewOrderDTO(row, s.rates.Rate(ctx)), nil
	}
	if !row.Status.CanTransitionTo(target) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("cannot move order from %s to %s", row.Status, target))
	}
	row.Status = target

	updated, err := s.repo.Update(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update order")
	}
	s.logOrder(ctx, updated.ID, "order.status.changed", map[string]any{
		"status": updated.Status.String(),
	})
	return NewOrderDTO(updated, s.rates.Rate(ctx)), nil
}

func (s *service) AdminDelete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.load(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete order")
	}
	return nil
}

func (s *service) load(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load order")
	}
	return row, nil
}

func (s *service) logOrder(ctx context.Context, id uuid.UUID, msg string, fields map[string]any) {
	if s.logg == nil {
		return
	}
	logCtx := s.logg.WithOrderID(ctx, id.String())
	if len(fields) > 0 {
		logCtx = s.logg.WithFields(logCtx, fields)
	}
	s.logg.Info(logCtx, msg)
}

func validateCreate(input CreateInput) error {
	if len(strings.TrimSpace(input.CustomerName)) < 2 {
		return pkgerrors.New(pkgerrors.CodeValidation, "customer_name must be at least 2 characters")
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(input.Email)); err != nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "email is invalid")
	}
	if len(strings.TrimSpace(input.Phone)) < 9 {
		return pkgerrors.New(pkgerrors.CodeValidation, "phone must be at least 9 characters")
	}
	if strings.TrimSpace(input.ProductName) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product_name is required")
	}
	return nil
}
