// internal/domain/history/service.go
package history

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/infrastructure/storage"
	"github.com/your-org/storefront-backend/internal/pkg/notify"
)

// MaxEntries caps how many recently viewed products are kept per owner.
const MaxEntries = 8

// Entry is one viewed product snapshot.
type Entry struct {
	ProductID uint      `json:"product_id"`
	Name      string    `json:"name"`
	Brand     string    `json:"brand,omitempty"`
	Price     int64     `json:"price"` // cents
	Image     string    `json:"image,omitempty"`
	ViewedAt  time.Time `json:"viewed_at"`
}

// Service tracks each owner's recently viewed products as a capped,
// most-recent-first list, de-duplicated by product ID: viewing a
// product already in the list moves it to the front.
type Service struct {
	mu       sync.Mutex
	lists    map[string][]Entry
	repo     storage.Repository
	notifier notify.Notifier
}

// NewService creates a new viewing history service.
func NewService(repo storage.Repository, notifier notify.Notifier) *Service {
	return &Service{
		lists:    make(map[string][]Entry),
		repo:     repo,
		notifier: notifier,
	}
}

// Record notes that the owner viewed the product.
func (s *Service) Record(ctx context.Context, owner string, product *catalog.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx, owner)
	if err != nil {
		return err
	}

	// Drop an existing entry for the same product so re-viewing moves
	// it to the front instead of duplicating it.
	for i := range list {
		if list[i].ProductID == product.ID {
			list = append(list[:i], list[i+1:]...)
			break
		}
	}

	entry := Entry{
		ProductID: product.ID,
		Name:      product.Name,
		Brand:     product.Brand,
		Price:     product.Price,
		Image:     product.Image,
		ViewedAt:  time.Now().UTC(),
	}
	list = append([]Entry{entry}, list...)

	if len(list) > MaxEntries {
		list = list[:MaxEntries]
	}

	s.lists[owner] = list
	if err := s.repo.Save(ctx, storage.RecentlyViewedKey(owner), list); err != nil {
		s.notifier.Error(fmt.Sprintf("failed to persist viewing history for %s: %v", owner, err))
	}

	return nil
}

// List returns the owner's recently viewed products, most recent first.
func (s *Service) List(ctx context.Context, owner string) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.load(ctx, owner)
	if err != nil {
		return nil, err
	}

	s.lists[owner] = list
	return append([]Entry(nil), list...), nil
}

// load must be called with the lock held.
func (s *Service) load(ctx context.Context, owner string) ([]Entry, error) {
	if owner == "" {
		return nil, fmt.Errorf("history owner is required")
	}

	if list, ok := s.lists[owner]; ok {
		return list, nil
	}

	var stored []Entry
	err := s.repo.Load(ctx, storage.RecentlyViewedKey(owner), &stored)
	switch {
	case err == nil:
		return stored, nil
	case errors.Is(err, storage.ErrNotFound):
		return nil, nil
	default:
		return nil, err
	}
}
