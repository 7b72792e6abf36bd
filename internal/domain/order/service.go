// internal/domain/order/service.go
package order

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/storefront-backend/internal/infrastructure/storage"
	"github.com/your-org/storefront-backend/internal/pkg/notify"
)

// ErrOrderNotFound is returned when an order number has no order for
// the owner.
var ErrOrderNotFound = errors.New("order not found")

// Service stores placed orders per owner, in memory, mirrored to the
// repository on every mutation.
type Service struct {
	mu       sync.Mutex
	orders   map[string][]*Order
	repo     storage.Repository
	notifier notify.Notifier
}

// NewService creates a new order service.
func NewService(repo storage.Repository, notifier notify.Notifier) *Service {
	return &Service{
		orders:   make(map[string][]*Order),
		repo:     repo,
		notifier: notifier,
	}
}

// Create records a placed order at the front of the owner's history.
func (s *Service) Create(ctx context.Context, o *Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx, o.Owner)
	if err != nil {
		return err
	}

	s.orders[o.Owner] = append([]*Order{o}, list...)
	s.persist(ctx, o.Owner)
	return nil
}

// List returns the owner's orders, most recent first.
func (s *Service) List(ctx context.Context, owner string) ([]*Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx, owner)
	if err != nil {
		return nil, err
	}

	s.orders[owner] = list
	return append([]*Order(nil), list...), nil
}

// Get returns one of the owner's orders by order number.
func (s *Service) Get(ctx context.Context, owner, orderNumber string) (*Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx, owner)
	if err != nil {
		return nil, err
	}
	s.orders[owner] = list

	for _, o := range list {
		if o.OrderNumber == orderNumber {
			return o, nil
		}
	}
	return nil, ErrOrderNotFound
}

// GenerateOrderNumber builds a human-readable unique order number,
// e.g. ORD-20260901-3F2A1B9C.
func GenerateOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return fmt.Sprintf("ORD-%s-%s", now.UTC().Format("20060102"), suffix)
}

// load must be called with the lock held.
func (s *Service) load(ctx context.Context, owner string) ([]*Order, error) {
	if owner == "" {
		return nil, fmt.Errorf("order owner is required")
	}

	if list, ok := s.orders[owner]; ok {
		return list, nil
	}

	var stored []*Order
	err := s.repo.Load(ctx, storage.OrdersKey(owner), &stored)
	switch {
	case err == nil:
		return stored, nil
	case errors.Is(err, storage.ErrNotFound):
		return nil, nil
	default:
		return nil, err
	}
}

// persist mirrors the owner's order history, best-effort. Must be
// called with the lock held.
func (s *Service) persist(ctx context.Context, owner string) {
	if err := s.repo.Save(ctx, storage.OrdersKey(owner), s.orders[owner]); err != nil {
		s.notifier.Error(fmt.Sprintf("failed to persist orders for %s: %v", owner, err))
	}
}
