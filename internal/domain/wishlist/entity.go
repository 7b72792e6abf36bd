// internal/domain/wishlist/entity.go
package wishlist

import (
	"time"
)

// Entry is one wishlisted product. The descriptive fields are a
// snapshot captured when the product was added, deliberately decoupled
// from later catalog edits. There are no quantities; membership is a
// set keyed by product ID.
type Entry struct {
	ProductID uint      `json:"product_id"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"` // cents, at time of adding
	Image     string    `json:"image,omitempty"`
	Category  string    `json:"category,omitempty"`
	InStock   bool      `json:"in_stock"`
	AddedAt   time.Time `json:"added_at"`
}
