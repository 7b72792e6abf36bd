// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/pkg/notify"
)

// ErrEmptyCart is returned when checking out with no line items.
var ErrEmptyCart = errors.New("cart is empty")

// Request carries the checkout form. Field presence is enforced by the
// binding tags at the HTTP boundary.
type Request struct {
	Email           string        `json:"email" binding:"required,email"`
	Phone           string        `json:"phone"`
	ShippingAddress order.Address `json:"shipping_address" binding:"required"`
}

// Service turns a cart into an order. Shipping is priced with the
// checkout free shipping threshold, which differs from the cart
// banner's; both come from config. Payment is simulated and always
// succeeds after the configured delay.
type Service struct {
	carts    *cart.Service
	orders   *order.Service
	notifier notify.Notifier
	config   *config.Config

	// Sleep stands in for the payment round trip. Defaults to
	// time.Sleep; tests stub it.
	Sleep func(time.Duration)
}

// NewService creates a new checkout service.
func NewService(carts *cart.Service, orders *order.Service, notifier notify.Notifier, cfg *config.Config) *Service {
	return &Service{
		carts:    carts,
		orders:   orders,
		notifier: notifier,
		config:   cfg,
		Sleep:    time.Sleep,
	}
}

// Process places an order from the owner's cart, then clears the cart.
func (s *Service) Process(ctx context.Context, owner string, req *Request) (*order.Order, error) {
	snapshot, err := s.carts.Snapshot(ctx, owner)
	if err != nil {
		return nil, err
	}
	if len(snapshot.Items) == 0 {
		return nil, ErrEmptyCart
	}

	var subtotal int64
	for i := range snapshot.Items {
		subtotal += snapshot.Items[i].LineTotal()
	}

	totals := cart.Quote(subtotal, snapshot.PromoCode, s.config.Store.CheckoutFreeShipThreshold, s.config.Store.FlatShippingFee)

	// Simulated payment round trip
	if d := s.config.Store.SimulatedLatency; d > 0 {
		s.Sleep(d)
	}

	now := time.Now().UTC()
	o := &order.Order{
		OrderNumber:     order.GenerateOrderNumber(now),
		Owner:           owner,
		Email:           req.Email,
		Status:          order.OrderStatusConfirmed,
		PaymentStatus:   order.PaymentStatusPaid,
		Items:           order.ItemsFromCart(snapshot.Items),
		SubtotalAmount:  totals.SubTotal,
		ShippingAmount:  totals.ShippingCost,
		DiscountAmount:  totals.DiscountAmount,
		TotalAmount:     totals.TotalAmount,
		Currency:        s.config.Store.Currency,
		PromoCode:       snapshot.PromoCode,
		ShippingAddress: req.ShippingAddress,
		CreatedAt:       now,
	}

	if err := s.orders.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("failed to record order: %w", err)
	}

	if err := s.carts.Clear(ctx, owner); err != nil {
		s.notifier.Error(fmt.Sprintf("failed to clear cart after checkout for %s: %v", owner, err))
	}

	s.notifier.Success(fmt.Sprintf("Order %s placed successfully", o.OrderNumber))
	return o, nil
}
