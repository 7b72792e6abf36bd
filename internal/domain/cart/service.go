// internal/domain/cart/service.go
package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/infrastructure/storage"
	"github.com/your-org/storefront-backend/internal/pkg/notify"
)

var (
	// ErrItemNotFound is returned when an operation targets a product
	// ID with no line item in the cart.
	ErrItemNotFound = errors.New("item not found in cart")

	// ErrInvalidQuantity is returned when an add request carries a
	// non-positive quantity.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// Service handles cart business logic. Carts are held in memory keyed
// by owner and mirrored to the repository on every mutation; a failed
// mirror write is reported through the notifier without undoing the
// mutation.
type Service struct {
	mu       sync.Mutex
	carts    map[string]*Cart
	catalog  *catalog.Store
	repo     storage.Repository
	notifier notify.Notifier
	config   *config.Config
}

// NewService creates a new cart service.
func NewService(cat *catalog.Store, repo storage.Repository, notifier notify.Notifier, cfg *config.Config) *Service {
	return &Service{
		carts:    make(map[string]*Cart),
		catalog:  cat,
		repo:     repo,
		notifier: notifier,
		config:   cfg,
	}
}

// CartResponse represents a cart with its calculated totals.
type CartResponse struct {
	Owner     string     `json:"owner"`
	Items     []LineItem `json:"items"`
	PromoCode string     `json:"promo_code,omitempty"`
	Totals    Totals     `json:"totals"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// AddItemRequest represents an add to cart request.
type AddItemRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
}

// Get retrieves the cart for an owner, creating an empty one on first
// access.
func (s *Service) Get(ctx context.Context, owner string) (*CartResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.cart(ctx, owner)
	if err != nil {
		return nil, err
	}
	return s.response(c), nil
}

// AddItem adds a product to the cart. Adding a product already present
// increments the existing line's quantity rather than creating a
// duplicate line. A zero quantity defaults to 1; negative quantities
// are rejected.
func (s *Service) AddItem(ctx context.Context, owner string, req *AddItemRequest) (*CartResponse, error) {
	qty := req.Quantity
	if qty == 0 {
		qty = 1
	}
	if qty < 0 {
		return nil, ErrInvalidQuantity
	}

	prod, err := s.catalog.Get(req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("cannot add to cart: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.cart(ctx, owner)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range c.Items {
		if c.Items[i].ProductID == req.ProductID {
			c.Items[i].Quantity += qty
			merged = true
			break
		}
	}

	if !merged {
		size := req.Size
		if size == "" {
			size = prod.Size
		}
		c.Items = append(c.Items, LineItem{
			ProductID: prod.ID,
			Name:      prod.Name,
			Brand:     prod.Brand,
			Size:      size,
			Image:     prod.Image,
			Price:     prod.Price,
			Quantity:  qty,
			AddedAt:   time.Now().UTC(),
		})
	}

	c.UpdatedAt = time.Now().UTC()
	s.persist(ctx, c)

	s.notifier.Success(fmt.Sprintf("%s added to cart", prod.Name))
	return s.response(c), nil
}

// UpdateQuantity sets a line item's quantity. Quantities below 1 clamp
// to 1; removal requires the explicit RemoveItem action. The clamp
// mirrors the cart page control, whose decrement button disables at 1.
func (s *Service) UpdateQuantity(ctx context.Context, owner string, productID uint, quantity int) (*CartResponse, error) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.cart(ctx, owner)
	if err != nil {
		return nil, err
	}

	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			c.UpdatedAt = time.Now().UTC()
			s.persist(ctx, c)
			return s.response(c), nil
		}
	}

	return nil, ErrItemNotFound
}

// RemoveItem deletes a line item outright regardless of quantity.
func (s *Service) RemoveItem(ctx context.Context, owner string, productID uint) (*CartResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.cart(ctx, owner)
	if err != nil {
		return nil, err
	}

	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.UpdatedAt = time.Now().UTC()
			s.persist(ctx, c)
			return s.response(c), nil
		}
	}

	return nil, ErrItemNotFound
}

// Clear empties all line items unconditionally and drops any applied
// promo code.
func (s *Service) Clear(ctx context.Context, owner string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.cart(ctx, owner)
	if err != nil {
		return err
	}

	c.Items = nil
	c.PromoCode = ""
	c.UpdatedAt = time.Now().UTC()
	s.persist(ctx, c)

	return nil
}

// ApplyPromoCode validates and stores a promo code on the cart. An
// unrecognized code is rejected and the cart is unchanged.
func (s *Service) ApplyPromoCode(ctx context.Context, owner, code string) (*CartResponse, error) {
	normalized, err := NormalizePromoCode(code)
	if err != nil {
		s.notifier.Error(fmt.Sprintf("Invalid promo code %q", code))
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.cart(ctx, owner)
	if err != nil {
		return nil, err
	}

	c.PromoCode = normalized
	c.UpdatedAt = time.Now().UTC()
	s.persist(ctx, c)

	switch normalized {
	case PromoWelcome10:
		s.notifier.Success("Promo code applied! 10% discount on your order.")
	case PromoFreeShip:
		s.notifier.Success("Free shipping applied!")
	}

	return s.response(c), nil
}

// TotalItems returns the sum of quantities across line items.
func (s *Service) TotalItems(ctx context.Context, owner string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.cart(ctx, owner)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total, nil
}

// Snapshot returns a copy of the raw cart for checkout. Orphaned lines
// (product since deleted from the catalog) are included as-is; they
// price from their snapshots.
func (s *Service) Snapshot(ctx context.Context, owner string) (*Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.cart(ctx, owner)
	if err != nil {
		return nil, err
	}

	copied := *c
	copied.Items = append([]LineItem(nil), c.Items...)
	return &copied, nil
}

// MergeGuestCart folds a guest session's cart into a user's cart when
// they sign in, then clears the guest cart.
func (s *Service) MergeGuestCart(ctx context.Context, userOwner, guestOwner string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	guest, err := s.cart(ctx, guestOwner)
	if err != nil {
		return err
	}
	if len(guest.Items) == 0 {
		return nil
	}

	user, err := s.cart(ctx, userOwner)
	if err != nil {
		return err
	}

	for _, item := range guest.Items {
		merged := false
		for i := range user.Items {
			if user.Items[i].ProductID == item.ProductID {
				user.Items[i].Quantity += item.Quantity
				merged = true
				break
			}
		}
		if !merged {
			user.Items = append(user.Items, item)
		}
	}

	guest.Items = nil
	guest.PromoCode = ""
	now := time.Now().UTC()
	user.UpdatedAt = now
	guest.UpdatedAt = now

	s.persist(ctx, user)
	s.persist(ctx, guest)

	return nil
}

// cart returns the in-memory cart for an owner, hydrating it from
// storage on first access. Must be called with the lock held.
func (s *Service) cart(ctx context.Context, owner string) (*Cart, error) {
	if owner == "" {
		return nil, fmt.Errorf("cart owner is required")
	}

	if c, ok := s.carts[owner]; ok {
		return c, nil
	}

	var stored Cart
	err := s.repo.Load(ctx, storage.CartKey(owner), &stored)
	switch {
	case err == nil:
		s.carts[owner] = &stored
		return &stored, nil
	case errors.Is(err, storage.ErrNotFound):
		now := time.Now().UTC()
		c := &Cart{Owner: owner, CreatedAt: now, UpdatedAt: now}
		s.carts[owner] = c
		return c, nil
	default:
		return nil, err
	}
}

// persist mirrors a cart to storage, best-effort. Must be called with
// the lock held.
func (s *Service) persist(ctx context.Context, c *Cart) {
	if err := s.repo.Save(ctx, storage.CartKey(c.Owner), c); err != nil {
		s.notifier.Error(fmt.Sprintf("failed to persist cart for %s: %v", c.Owner, err))
	}
}

// response builds the API view of a cart with totals calculated under
// the cart page's free shipping threshold.
func (s *Service) response(c *Cart) *CartResponse {
	var subtotal int64
	quantity := 0
	for i := range c.Items {
		subtotal += c.Items[i].LineTotal()
		quantity += c.Items[i].Quantity
	}

	totals := Quote(subtotal, c.PromoCode, s.config.Store.CartFreeShippingThreshold, s.config.Store.FlatShippingFee)
	totals.ItemCount = len(c.Items)
	totals.TotalQuantity = quantity

	return &CartResponse{
		Owner:     c.Owner,
		Items:     append([]LineItem(nil), c.Items...),
		PromoCode: c.PromoCode,
		Totals:    totals,
		UpdatedAt: c.UpdatedAt,
	}
}
