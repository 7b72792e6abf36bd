// internal/domain/cart/entity.go
package cart

import (
	"time"
)

// LineItem is one product in a cart. The descriptive fields are a
// snapshot captured when the item was added; later catalog edits or
// deletions do not rewrite what is already in the cart.
type LineItem struct {
	ProductID uint      `json:"product_id"`
	Name      string    `json:"name"`
	Brand     string    `json:"brand,omitempty"`
	Size      string    `json:"size,omitempty"`
	Image     string    `json:"image,omitempty"`
	Price     int64     `json:"price"` // Price in cents at time of adding
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

// LineTotal returns price times quantity for this line.
func (l *LineItem) LineTotal() int64 {
	return l.Price * int64(l.Quantity)
}

// Cart holds one owner's line items. The owner key is either an
// authenticated user ID or a guest session ID.
type Cart struct {
	Owner     string     `json:"owner"`
	Items     []LineItem `json:"items"`
	PromoCode string     `json:"promo_code,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Totals is the calculated pricing summary for a cart.
type Totals struct {
	ItemCount      int   `json:"item_count"`     // Number of distinct lines
	TotalQuantity  int   `json:"total_quantity"` // Sum of all quantities
	SubTotal       int64 `json:"sub_total"`      // Sum of price * quantity
	ShippingCost   int64 `json:"shipping_cost"`
	DiscountAmount int64 `json:"discount_amount"`
	TotalAmount    int64 `json:"total_amount"` // SubTotal + shipping - discount
	FreeShipping   bool  `json:"free_shipping"`

	// AmountToFreeShipping backs the cart page's "add $X more" banner;
	// zero once the threshold is met.
	AmountToFreeShipping int64 `json:"amount_to_free_shipping"`
}
