// internal/domain/cart/pricing_test.go
package cart

import (
	"errors"
	"testing"
)

const (
	testFreeShipThreshold = 10000 // $100
	testFlatFee           = 1000  // $10
)

func TestNormalizePromoCode(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"WELCOME10", PromoWelcome10, false},
		{"welcome10", PromoWelcome10, false},
		{"  FreeShip  ", PromoFreeShip, false},
		{"", "", false},
		{"SAVE50", "", true},
	}

	for _, tt := range tests {
		got, err := NormalizePromoCode(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidPromoCode) {
				t.Errorf("NormalizePromoCode(%q): expected ErrInvalidPromoCode, got %v", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("NormalizePromoCode(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestQuoteShippingThreshold(t *testing.T) {
	tests := []struct {
		name         string
		subtotal     int64
		wantShipping int64
		wantFree     bool
		wantToFree   int64
	}{
		{"below threshold pays flat fee", 9999, testFlatFee, false, 1},
		{"at threshold ships free", 10000, 0, true, 0},
		{"above threshold ships free", 25000, 0, true, 0},
		{"empty cart pays flat fee", 0, testFlatFee, false, 10000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Quote(tt.subtotal, "", testFreeShipThreshold, testFlatFee)
			if got.ShippingCost != tt.wantShipping {
				t.Errorf("shipping = %d, want %d", got.ShippingCost, tt.wantShipping)
			}
			if got.FreeShipping != tt.wantFree {
				t.Errorf("free shipping = %v, want %v", got.FreeShipping, tt.wantFree)
			}
			if got.AmountToFreeShipping != tt.wantToFree {
				t.Errorf("amount to free shipping = %d, want %d", got.AmountToFreeShipping, tt.wantToFree)
			}
		})
	}
}

func TestQuoteWelcome10(t *testing.T) {
	// $200 subtotal: 10% discount on the subtotal only, free shipping
	// from the threshold.
	got := Quote(20000, PromoWelcome10, testFreeShipThreshold, testFlatFee)

	if got.DiscountAmount != 2000 {
		t.Errorf("discount = %d, want 2000", got.DiscountAmount)
	}
	if got.TotalAmount != 18000 {
		t.Errorf("total = %d, want 18000", got.TotalAmount)
	}

	// Below the threshold the discount never touches shipping.
	got = Quote(5000, PromoWelcome10, testFreeShipThreshold, testFlatFee)
	if got.DiscountAmount != 500 {
		t.Errorf("discount = %d, want 500", got.DiscountAmount)
	}
	if got.ShippingCost != testFlatFee {
		t.Errorf("shipping = %d, want %d", got.ShippingCost, testFlatFee)
	}
	if got.TotalAmount != 5000+testFlatFee-500 {
		t.Errorf("total = %d, want %d", got.TotalAmount, 5000+testFlatFee-500)
	}
}

func TestQuoteFreeShip(t *testing.T) {
	got := Quote(5000, PromoFreeShip, testFreeShipThreshold, testFlatFee)

	if got.ShippingCost != 0 {
		t.Errorf("shipping = %d, want 0", got.ShippingCost)
	}
	if got.DiscountAmount != 0 {
		t.Errorf("FREESHIP should not discount the subtotal, got %d", got.DiscountAmount)
	}
	if got.TotalAmount != 5000 {
		t.Errorf("total = %d, want 5000", got.TotalAmount)
	}
}

func TestQuoteTotalsInvariant(t *testing.T) {
	subtotals := []int64{0, 1, 999, 9999, 10000, 14999, 15000, 100000}
	codes := []string{"", PromoWelcome10, PromoFreeShip}

	for _, sub := range subtotals {
		for _, code := range codes {
			got := Quote(sub, code, testFreeShipThreshold, testFlatFee)
			want := got.SubTotal + got.ShippingCost - got.DiscountAmount
			if got.TotalAmount != want {
				t.Errorf("subtotal %d code %q: total %d != %d", sub, code, got.TotalAmount, want)
			}
			if got.TotalAmount < 0 {
				t.Errorf("subtotal %d code %q: negative total %d", sub, code, got.TotalAmount)
			}
		}
	}
}
