// internal/infrastructure/storage/repository.go
package storage

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Load when no value exists for a key.
var ErrNotFound = errors.New("storage: key not found")

// Repository is the persistence boundary for domain state. Values are
// stored as JSON blobs under string keys; a failed Save never corrupts
// the in-memory state that triggered it, callers treat durability as
// best-effort.
type Repository interface {
	// Load decodes the value stored under key into dest. Returns
	// ErrNotFound when the key is absent and a decode error when the
	// stored blob does not match dest.
	Load(ctx context.Context, key string, dest interface{}) error

	// Save encodes value as JSON and stores it under key, replacing
	// any previous value.
	Save(ctx context.Context, key string, value interface{}) error

	// Clear removes the value stored under key. Clearing an absent
	// key is not an error.
	Clear(ctx context.Context, key string) error
}

// Well-known key builders. Per-owner state (carts, wishlists, viewing
// history, orders) is namespaced by the owner key so a guest session and
// an authenticated user never collide.

// CatalogKey returns the key holding the full product catalog.
func CatalogKey() string {
	return "catalog:products"
}

// CartKey returns the key holding a single owner's cart.
func CartKey(owner string) string {
	return fmt.Sprintf("cart:%s", owner)
}

// WishlistKey returns the key holding a single owner's wishlist.
func WishlistKey(owner string) string {
	return fmt.Sprintf("wishlist:%s", owner)
}

// RecentlyViewedKey returns the key holding a single owner's viewing history.
func RecentlyViewedKey(owner string) string {
	return fmt.Sprintf("recently_viewed:%s", owner)
}

// OrdersKey returns the key holding a single owner's placed orders.
func OrdersKey(owner string) string {
	return fmt.Sprintf("orders:%s", owner)
}

// UsersKey returns the key holding all registered accounts.
func UsersKey() string {
	return "users:accounts"
}

// StockAlertsKey returns the key holding back-in-stock alert requests.
func StockAlertsKey() string {
	return "catalog:stock_alerts"
}

// ContactMessagesKey returns the key holding submitted contact messages.
func ContactMessagesKey() string {
	return "engagement:contact_messages"
}

// NewsletterKey returns the key holding newsletter subscriptions.
func NewsletterKey() string {
	return "engagement:newsletter"
}
