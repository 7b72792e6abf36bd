// internal/domain/catalog/store.go
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/your-org/storefront-backend/internal/infrastructure/storage"
	"github.com/your-org/storefront-backend/internal/pkg/notify"
)

var (
	// ErrProductNotFound is returned when no product exists for an ID.
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidCategory is returned when a product names a category
	// outside the closed set.
	ErrInvalidCategory = errors.New("invalid product category")

	// ErrAlreadyInStock is returned for stock alert requests on
	// products that are currently available.
	ErrAlreadyInStock = errors.New("product is already in stock")

	// ErrDuplicateAlert is returned when the same email already has an
	// alert registered for a product.
	ErrDuplicateAlert = errors.New("stock alert already registered")
)

// Store is the sole owner of product records. State lives in memory in
// catalog insertion order and is mirrored to the repository on every
// mutation; a failed mirror write is surfaced through the notifier and
// the log, never by failing the mutation.
type Store struct {
	mu       sync.RWMutex
	products []Product
	alerts   []StockAlert
	repo     storage.Repository
	notifier notify.Notifier
}

// NewStore creates a catalog store backed by the given repository.
func NewStore(repo storage.Repository, notifier notify.Notifier) *Store {
	return &Store{
		repo:     repo,
		notifier: notifier,
	}
}

// Hydrate loads the persisted catalog, falling back to seed when no
// blob exists yet. Decode failures are returned so a corrupt blob is
// never silently replaced.
func (s *Store) Hydrate(ctx context.Context, seed []Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stored []Product
	err := s.repo.Load(ctx, storage.CatalogKey(), &stored)
	switch {
	case err == nil:
		s.products = stored
	case errors.Is(err, storage.ErrNotFound):
		s.products = append([]Product(nil), seed...)
		if err := s.repo.Save(ctx, storage.CatalogKey(), s.products); err != nil {
			return fmt.Errorf("failed to persist seeded catalog: %w", err)
		}
	default:
		return fmt.Errorf("failed to hydrate catalog: %w", err)
	}

	var alerts []StockAlert
	if err := s.repo.Load(ctx, storage.StockAlertsKey(), &alerts); err == nil {
		s.alerts = alerts
	} else if !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("failed to hydrate stock alerts: %w", err)
	}

	return nil
}

// List returns all products in catalog order.
func (s *Store) List() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Product(nil), s.products...)
}

// Get retrieves a single product by ID.
func (s *Store) Get(id uint) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

// ListByCategory returns the products in the given category, in
// catalog order.
func (s *Store) ListByCategory(category string) []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Product
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Search applies the selection's filters and sort to the catalog.
func (s *Store) Search(sel Selection) []Product {
	s.mu.RLock()
	snapshot := append([]Product(nil), s.products...)
	s.mu.RUnlock()

	return FilterAndSort(snapshot, sel)
}

// ProductPatch holds the fields an admin edit may change. Nil fields
// are left untouched.
type ProductPatch struct {
	Name          *string   `json:"name"`
	Brand         *string   `json:"brand"`
	Category      *string   `json:"category"`
	Price         *int64    `json:"price"`
	Image         *string   `json:"image"`
	Notes         *[]string `json:"notes"`
	InStock       *bool     `json:"in_stock"`
	IsPopular     *bool     `json:"is_popular"`
	Popularity    *int      `json:"popularity"`
	Description   *string   `json:"description"`
	Size          *string   `json:"size"`
	Concentration *string   `json:"concentration"`
}

// Add appends a new product, assigning the next ID as
// max(existing IDs, 0) + 1. That policy determines "newest" sort order
// and is relied on by tests.
func (s *Store) Add(ctx context.Context, p Product) (*Product, error) {
	if !ValidCategory(p.Category) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, p.Category)
	}
	if p.Price < 0 {
		return nil, fmt.Errorf("product price cannot be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var maxID uint
	for _, existing := range s.products {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	p.ID = maxID + 1

	s.products = append(s.products, p)
	s.persist(ctx)

	return &p, nil
}

// Update mutates a product in place. Existing cart and wishlist
// snapshots are deliberately unaffected.
func (s *Store) Update(ctx context.Context, id uint, patch ProductPatch) (*Product, error) {
	if patch.Category != nil && !ValidCategory(*patch.Category) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, *patch.Category)
	}
	if patch.Price != nil && *patch.Price < 0 {
		return nil, fmt.Errorf("product price cannot be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}

		p := &s.products[i]
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Brand != nil {
			p.Brand = *patch.Brand
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.Image != nil {
			p.Image = *patch.Image
		}
		if patch.Notes != nil {
			p.Notes = *patch.Notes
		}
		if patch.InStock != nil {
			p.InStock = *patch.InStock
		}
		if patch.IsPopular != nil {
			p.IsPopular = *patch.IsPopular
		}
		if patch.Popularity != nil {
			p.Popularity = *patch.Popularity
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Size != nil {
			p.Size = *patch.Size
		}
		if patch.Concentration != nil {
			p.Concentration = *patch.Concentration
		}

		s.persist(ctx)

		updated := *p
		return &updated, nil
	}

	return nil, ErrProductNotFound
}

// Delete removes a product. Cart and wishlist entries referencing it
// become orphans rendered from their snapshots; they are not touched
// here.
func (s *Store) Delete(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.persist(ctx)
			return nil
		}
	}
	return ErrProductNotFound
}

// RequestStockAlert registers a back-in-stock notification request for
// an out-of-stock product, de-duplicated by (product, email).
func (s *Store) RequestStockAlert(ctx context.Context, productID uint, email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("a valid email address is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var found *Product
	for i := range s.products {
		if s.products[i].ID == productID {
			found = &s.products[i]
			break
		}
	}
	if found == nil {
		return ErrProductNotFound
	}
	if found.InStock {
		return ErrAlreadyInStock
	}

	for _, a := range s.alerts {
		if a.ProductID == productID && a.Email == email {
			return ErrDuplicateAlert
		}
	}

	s.alerts = append(s.alerts, StockAlert{ProductID: productID, Email: email})
	if err := s.repo.Save(ctx, storage.StockAlertsKey(), s.alerts); err != nil {
		s.notifier.Error(fmt.Sprintf("failed to persist stock alerts: %v", err))
	}

	s.notifier.Success(fmt.Sprintf("We'll notify %s when %s is back in stock", email, found.Name))
	return nil
}

// StockAlerts returns the registered alert requests for a product.
func (s *Store) StockAlerts(productID uint) []StockAlert {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []StockAlert
	for _, a := range s.alerts {
		if a.ProductID == productID {
			out = append(out, a)
		}
	}
	return out
}

// persist mirrors the catalog to storage. Must be called with the lock
// held. Durability is best-effort: the in-memory mutation has already
// succeeded, so a failed write is reported, not returned.
func (s *Store) persist(ctx context.Context) {
	if err := s.repo.Save(ctx, storage.CatalogKey(), s.products); err != nil {
		s.notifier.Error(fmt.Sprintf("failed to persist catalog: %v", err))
	}
}
