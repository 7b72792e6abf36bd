// internal/domain/cart/pricing.go
package cart

import (
	"errors"
	"strings"
)

// Recognized promo codes.
const (
	PromoWelcome10 = "WELCOME10" // 10% off the subtotal
	PromoFreeShip  = "FREESHIP"  // waives shipping cost
)

// ErrInvalidPromoCode is returned for unrecognized promo codes; cart
// state is left unchanged.
var ErrInvalidPromoCode = errors.New("invalid promo code")

// NormalizePromoCode canonicalizes and validates a promo code. The
// empty string means "no code" and is valid.
func NormalizePromoCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	switch code {
	case "", PromoWelcome10, PromoFreeShip:
		return code, nil
	default:
		return "", ErrInvalidPromoCode
	}
}

// Quote prices a subtotal under the shipping and promo rules:
//
//   - discount is 10% of the subtotal for WELCOME10, applied to the
//     subtotal only, never to the shipping-inclusive total;
//   - shipping is zero when the subtotal meets freeShipThreshold or
//     FREESHIP is applied, else flatFee;
//   - total = subtotal + shipping - discount.
//
// The promo code must already be normalized.
func Quote(subtotal int64, promoCode string, freeShipThreshold, flatFee int64) Totals {
	t := Totals{SubTotal: subtotal}

	if promoCode == PromoWelcome10 {
		t.DiscountAmount = subtotal / 10
	}

	t.FreeShipping = subtotal >= freeShipThreshold || promoCode == PromoFreeShip
	if !t.FreeShipping {
		t.ShippingCost = flatFee
	}

	if subtotal < freeShipThreshold {
		t.AmountToFreeShipping = freeShipThreshold - subtotal
	}

	t.TotalAmount = t.SubTotal + t.ShippingCost - t.DiscountAmount
	return t
}
