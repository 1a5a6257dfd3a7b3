package checkout

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/begzodnazarov/mebelhub-backend/internal/cart"
	"github.com/begzodnazarov/mebelhub-backend/internal/orders"
	"github.com/begzodnazarov/mebelhub-backend/pkg/db/models"
	"github.com/begzodnazarov/mebelhub-backend/pkg/enums"
	pkgerrors "github.com/begzodnazarov/mebelhub-backend/pkg/errors"
	"github.com/begzodnazarov/mebelhub-backend/pkg/logger"
)

// Input is the checkout submission payload. Both payment methods settle
// offline; the choice is recorded on the order for the manager who calls
// back.
type Input struct {
	CustomerName  string
	Email         string
	Phone         string
	Address       string
	PaymentMethod enums.PaymentMethod
	Comment       string
}

// Service turns a cart into a submitted order.
type Service interface {
	Checkout(ctx context.Context, token, locale string, input Input) (*orders.OrderDTO, error)
}

type cartAccessor interface {
	Snapshot(ctx context.Context, token string) (*cart.Items, error)
	Clear(ctx context.Context, token string) error
}

type orderSubmitter interface {
	Submit(ctx context.Context, row *models.Order) (*orders.OrderDTO, error)
}

type service struct {
	carts  cartAccessor
	orders orderSubmitter
	logg   *logger.Logger
}

// NewService constructs a checkout service instance.
func NewService(carts cartAccessor, submitter orderSubmitter, logg *logger.Logger) (Service, error) {
	if carts == nil {
		return nil, fmt.Errorf("cart accessor required")
	}
	if submitter == nil {
		return nil, fmt.Errorf("order submitter required")
	}
	return &service{carts: carts, orders: submitter, logg: logg}, nil
}

func (s *service) Checkout(ctx context.Context, token, locale string, input Input) (*orders.OrderDTO, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if strings.TrimSpace(token) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart token required")
	}

	items, err := s.carts.Snapshot(ctx, token)
	if err != nil {
		return nil, err
	}
	if items.Len() == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	lines := items.Lines()
	orderItems := make([]models.OrderItem, 0, len(lines))
	summaries := make([]string, 0, len(lines))
	for _, line := range lines {
		name := line.Name.Resolve(locale)
		orderItems = append(orderItems, models.OrderItem{
			ProductID:  line.ProductID,
			Name:       name,
			PriceCents: line.PriceCents,
			Quantity:   line.Quantity,
		})
		summaries = append(summaries, fmt.Sprintf("%s x%d", name, line.Quantity))
	}

	description := input.PaymentMethod.Label()
	if comment := strings.TrimSpace(input.Comment); comment != "" {
		description += ". " + comment
	}

	row := &models.Order{
		CustomerName: strings.TrimSpace(input.CustomerName),
		Email:        strings.TrimSpace(input.Email),
		Phone:        strings.TrimSpace(input.Phone),
		Address:      strings.TrimSpace(input.Address),
		ProductName:  strings.Join(summaries, ", "),
		Description:  description,
		Items:        orderItems,
		TotalCents:   items.TotalCents(),
		Status:       enums.OrderStatusNew,
	}

	dto, err := s.orders.Submit(ctx, row)
	if err != nil {
		return nil, err
	}

	// The cart clears only after the order is safely stored. A failed
	// clear leaves a stale cart, which beats losing the order.
	if err := s.carts.Clear(ctx, token); err != nil && s.logg != nil {
		s.logg.Error(s.logg.WithCartToken(ctx, token), "checkout.cart_clear.failed", err)
	}
	return dto, nil
}

func validateInput(input Input) error {
	if len(strings.TrimSpace(input.CustomerName)) < 2 {
		return pkgerrors.New(pkgerrors.CodeValidation, "customer_name must be at least 2 characters")
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(input.Email)); err != nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "email is invalid")
	}
	if len(strings.TrimSpace(input.Phone)) < 9 {
		return pkgerrors.New(pkgerrors.CodeValidation, "phone must be at least 9 characters")
	}
	if len(strings.TrimSpace(input.Address)) < 5 {
		return pkgerrors.New(pkgerrors.CodeValidation, "address must be at least 5 characters")
	}
	if !input.PaymentMethod.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "payment_method must be cash or card")
	}
	return nil
}
