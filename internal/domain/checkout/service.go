// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/catalog"
	"github.com/your-org/storefront/internal/domain/pricing"
)

// ErrEmptyCart is returned when checkout is attempted with no line items.
var ErrEmptyCart = errors.New("cart is empty")

// ShippingDetails is the address form submitted at checkout. Nothing is
// validated beyond presence at the HTTP layer; no order is ever persisted.
type ShippingDetails struct {
	FullName string `json:"full_name" binding:"required"`
	Address  string `json:"address" binding:"required"`
	City     string `json:"city" binding:"required"`
	ZipCode  string `json:"zip_code" binding:"required"`
	Country  string `json:"country" binding:"required"`
}

// Order is the ephemeral result of a successful checkout. It exists only in
// the response; server-side order persistence is out of scope.
type Order struct {
	Number   string              `json:"number"`
	Lines    []cart.Line         `json:"lines"`
	Totals   pricing.OrderTotals `json:"totals"`
	Shipping ShippingDetails     `json:"shipping"`
	PlacedAt time.Time           `json:"placed_at"`
}

// Service runs the mocked checkout flow against the session cart.
type Service struct {
	catalog *catalog.Source
	cart    *cart.Store
	log     *logrus.Logger
	delay   time.Duration
}

// NewService creates a checkout service.
func NewService(src *catalog.Source, cartStore *cart.Store, log *logrus.Logger, delay time.Duration) *Service {
	return &Service{
		catalog: src,
		cart:    cartStore,
		log:     log,
		delay:   delay,
	}
}

// PlaceOrder simulates payment processing and, on success, clears the cart.
// The artificial delay honors context cancellation: an abandoned checkout
// leaves the cart untouched.
func (s *Service) PlaceOrder(ctx context.Context, details ShippingDetails) (*Order, error) {
	lines := s.cart.Lines()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	totals := pricing.ComputeTotals(lines, s.catalog)

	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	order := &Order{
		Number:   uuid.NewString(),
		Lines:    lines,
		Totals:   totals,
		Shipping: details,
		PlacedAt: time.Now().UTC(),
	}

	if _, err := s.cart.Clear(); err != nil {
		s.log.WithError(err).Warn("Order placed but cart persistence failed")
	}

	s.log.WithFields(logrus.Fields{
		"order_number": order.Number,
		"line_count":   len(order.Lines),
		"total":        order.Totals.Total.StringFixed(2),
	}).Info("Order placed")

	return order, nil
}
