// internal/domain/order/entity.go
package order

import (
	"time"

	"github.com/your-org/storefront-backend/internal/domain/cart"
)

// OrderStatus represents the order status
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// PaymentStatus represents payment status
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Address is the shipping destination captured at checkout.
type Address struct {
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	Line1      string `json:"line1" binding:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code" binding:"required"`
	Country    string `json:"country" binding:"required"`
}

// Item is one purchased line, snapshotted from the cart at checkout.
type Item struct {
	ProductID  uint   `json:"product_id"`
	Name       string `json:"name"`
	Brand      string `json:"brand,omitempty"`
	Size       string `json:"size,omitempty"`
	Image      string `json:"image,omitempty"`
	Price      int64  `json:"price"` // per unit, cents
	Quantity   int    `json:"quantity"`
	TotalPrice int64  `json:"total_price"`
}

// Order represents a placed order.
type Order struct {
	OrderNumber   string        `json:"order_number"`
	Owner         string        `json:"owner"`
	Email         string        `json:"email"`
	Status        OrderStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`

	Items []Item `json:"items"`

	// Pricing breakdown, in cents
	SubtotalAmount int64 `json:"subtotal_amount"`
	ShippingAmount int64 `json:"shipping_amount"`
	DiscountAmount int64 `json:"discount_amount"`
	TotalAmount    int64 `json:"total_amount"`

	Currency        string  `json:"currency"`
	PromoCode       string  `json:"promo_code,omitempty"`
	ShippingAddress Address `json:"shipping_address"`

	CreatedAt time.Time `json:"created_at"`
}

// ItemsFromCart snapshots cart lines into order lines.
func ItemsFromCart(lines []cart.LineItem) []Item {
	items := make([]Item, 0, len(lines))
	for _, l := range lines {
		items = append(items, Item{
			ProductID:  l.ProductID,
			Name:       l.Name,
			Brand:      l.Brand,
			Size:       l.Size,
			Image:      l.Image,
			Price:      l.Price,
			Quantity:   l.Quantity,
			TotalPrice: l.LineTotal(),
		})
	}
	return items
}
