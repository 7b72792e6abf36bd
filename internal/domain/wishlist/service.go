// internal/domain/wishlist/service.go
package wishlist

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

// ErrEntryNotFound is returned when removing a product that is not in
// the wishlist.
var ErrEntryNotFound = errors.New("item not found in wishlist")

// set is one owner's wishlist, indexed by product ID for O(1)
// membership checks, with insertion order kept for display.
type set struct {
	entries map[uint]*Entry
	order   []uint
}

// Service handles wishlist business logic. Wishlists are held in
// memory keyed by owner and mirrored to the repository on every
// mutation.
type Service struct {
	mu       sync.Mutex
	sets     map[string]*set
	repo     storage.Repository
	notifier notify.Notifier
}

// NewService creates a new wishlist service.
func NewService(repo storage.Repository, notifier notify.Notifier) *Service {
	return &Service{
		sets:     make(map[string]*set),
		repo:     repo,
		notifier: notifier,
	}
}

// Toggle inserts the product when absent and removes it when present,
// so two toggles return membership to its original state. Returns true
// when the product is in the wishlist after the call.
func (s *Service) Toggle(ctx context.Context, owner string, product *catalog.Product) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.load(ctx, owner)
	if err != nil {
		return false, err
	}

	if _, present := w.entries[product.ID]; present {
		w.remove(product.ID)
		s.persist(ctx, owner, w)
		s.notifier.Success(fmt.Sprintf("%s removed from wishlist", product.Name))
		return false, nil
	}

	w.entries[product.ID] = &Entry{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Image:     product.Image,
		Category:  product.Category,
		InStock:   product.InStock,
		AddedAt:   time.Now().UTC(),
	}
	w.order = append(w.order, product.ID)
	s.persist(ctx, owner, w)
	s.notifier.Success(fmt.Sprintf("%s added to wishlist", product.Name))
	return true, nil
}

// Contains reports whether a product is in the owner's wishlist.
func (s *Service) Contains(ctx context.Context, owner string, productID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.load(ctx, owner)
	if err != nil {
		return false, err
	}

	_, present := w.entries[productID]
	return present, nil
}

// Remove deletes a product from the wishlist.
func (s *Service) Remove(ctx context.Context, owner string, productID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.load(ctx, owner)
	if err != nil {
		return err
	}

	if _, present := w.entries[productID]; !present {
		return ErrEntryNotFound
	}

	w.remove(productID)
	s.persist(ctx, owner, w)
	return nil
}

// Clear removes all entries from the owner's wishlist.
func (s *Service) Clear(ctx context.Context, owner string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.load(ctx, owner)
	if err != nil {
		return err
	}

	w.entries = make(map[uint]*Entry)
	w.order = nil
	s.persist(ctx, owner, w)
	return nil
}

// List returns the owner's wishlist entries in insertion order.
func (s *Service) List(ctx context.Context, owner string) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.load(ctx, owner)
	if err != nil {
		return nil, err
	}

	out := make([]Entry, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, *w.entries[id])
	}
	return out, nil
}

// Count returns the number of entries in the owner's wishlist.
func (s *Service) Count(ctx context.Context, owner string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, err := s.load(ctx, owner)
	if err != nil {
		return 0, err
	}
	return len(w.entries), nil
}

func (w *set) remove(productID uint) {
	delete(w.entries, productID)
	for i, id := range w.order {
		if id == productID {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// load returns the in-memory wishlist for an owner, hydrating it from
// the persisted entry list on first access. Must be called with the
// lock held.
func (s *Service) load(ctx context.Context, owner string) (*set, error) {
	if owner == "" {
		return nil, fmt.Errorf("wishlist owner is required")
	}

	if w, ok := s.sets[owner]; ok {
		return w, nil
	}

	w := &set{entries: make(map[uint]*Entry)}

	var stored []Entry
	err := s.repo.Load(ctx, storage.WishlistKey(owner), &stored)
	switch {
	case err == nil:
		for i := range stored {
			e := stored[i]
			w.entries[e.ProductID] = &e
			w.order = append(w.order, e.ProductID)
		}
	case errors.Is(err, storage.ErrNotFound):
		// First access, empty wishlist
	default:
		return nil, err
	}

	s.sets[owner] = w
	return w, nil
}

// persist mirrors the wishlist to storage as an ordered entry list,
// best-effort. Must be called with the lock held.
func (s *Service) persist(ctx context.Context, owner string, w *set) {
	entries := make([]Entry, 0, len(w.order))
	for _, id := range w.order {
		entries = append(entries, *w.entries[id])
	}

	if err := s.repo.Save(ctx, storage.WishlistKey(owner), entries); err != nil {
		s.notifier.Error(fmt.Sprintf("failed to persist wishlist for %s: %v", owner, err))
	}
}
