// internal/domain/cart/service_test.go
package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/infrastructure/storage"
	"github.com/your-org/storefront-backend/internal/pkg/notify"
)

func testConfig() *config.Config {
	return &config.Config{
		Store: config.StoreConfig{
			Currency:                  "USD",
			FlatShippingFee:           1000,
			CartFreeShippingThreshold: 10000,
			CheckoutFreeShipThreshold: 15000,
		},
	}
}

func newTestCartService(t *testing.T) (*Service, *catalog.Store, *storage.MemoryRepository) {
	t.Helper()

	repo := storage.NewMemoryRepository()
	store := catalog.NewStore(repo, notify.NopNotifier{})
	if err := store.Hydrate(context.Background(), catalog.SeedProducts()); err != nil {
		t.Fatalf("hydrate: %v", err)
	}

	svc := NewService(store, repo, notify.NopNotifier{}, testConfig())
	return svc, store, repo
}

func TestAddItemSnapshotsProduct(t *testing.T) {
	svc, _, _ := newTestCartService(t)
	ctx := context.Background()

	resp, err := svc.AddItem(ctx, "guest:a", &AddItemRequest{ProductID: 1, Quantity: 2})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if len(resp.Items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(resp.Items))
	}
	item := resp.Items[0]
	if item.Name != "Oud Royale" || item.Price != 18500 || item.Quantity != 2 {
		t.Errorf("unexpected line: %+v", item)
	}
}

func TestAddItemMergesExistingLine(t *testing.T) {
	svc, _, _ := newTestCartService(t)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "guest:a", &AddItemRequest{ProductID: 1, Quantity: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}
	resp, err := svc.AddItem(ctx, "guest:a", &AddItemRequest{ProductID: 1, Quantity: 3})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if len(resp.Items) != 1 {
		t.Fatalf("expected merged line, got %d lines", len(resp.Items))
	}
	if resp.Items[0].Quantity != 4 {
		t.Errorf("quantity = %d, want 4", resp.Items[0].Quantity)
	}
}

func TestAddItemQuantityDefaultsAndRejects(t *testing.T) {
	svc, _, _ := newTestCartService(t)
	ctx := context.Background()

	resp, err := svc.AddItem(ctx, "guest:a", &AddItemRequest{ProductID: 2})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if resp.Items[0].Quantity != 1 {
		t.Errorf("zero quantity should default to 1, got %d", resp.Items[0].Quantity)
	}

	if _, err := svc.AddItem(ctx, "guest:a", &AddItemRequest{ProductID: 2, Quantity: -1}); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc, _, _ := newTestCartService(t)

	_, err := svc.AddItem(context.Background(), "guest:a", &AddItemRequest{ProductID: 999})
	if !errors.Is(err, catalog.ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestUpdateQuantityClampsToOne(t *testing.T) {
	svc, _, _ := newTestCartService(t)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "guest:a", &AddItemRequest{ProductID: 1, Quantity: 5}); err != nil {
		t.Fatalf("add: %v", err)
	}

	// Quantities below 1 clamp rather than remove the line.
	for _, q := range []int{0, -3} {
		resp, err := svc.UpdateQuantity(ctx, "guest:a", 1, q)
		if err != nil {
			t.Fatalf("update(%d): %v", q, err)
		}
		if len(resp.Items) != 1 || resp.Items[0].Quantity != 1 {
			t.Errorf("update(%d): expected line kept at quantity 1, got %+v", q, resp.Items)
		}
	}
}

func TestUpdateQuantityUnknownItem(t *testing.T) {
	svc, _, _ := newTestCartService(t)

	_, err := svc.UpdateQuantity(context.Background(), "guest:a", 1, 2)
	if !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestRemoveItemDropsWholeLine(t *testing.T) {
	svc, _, _ := newTestCartService(t)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "guest:a", &AddItemRequest{ProductID: 1, Quantity: 5}); err != nil {
		t.Fatalf("add: %v", err)
	}

	resp, err := svc.RemoveItem(ctx, "guest:a", 1)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(resp.Items) != 0 {
		t.Errorf("expected empty cart, got %d lines", len(resp.Items))
	}

	if _, err := svc.RemoveItem(ctx, "guest:a", 1); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestClearDropsItemsAndPromo(t *testing.T) {
	svc, _, _ := newTestCartService(t)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "guest:a", &AddItemRequest{ProductID: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.ApplyPromoCode(ctx, "guest:a", "WELCOME10"); err != nil {
		t.Fatalf("promo: %v", err)
	}

	if err := svc.Clear(ctx, "guest:a"); err != nil {
		t.Fatalf("clear: %v", err)
	}

	resp, err := svc.Get(ctx, "guest:a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(resp.Items) != 0 || resp.PromoCode != "" {
		t.Errorf("expected empty cart without promo, got %+v", resp)
	}
}

func TestApplyPromoCodeRejectsUnknown(t *testing.T) {
	svc, _, _ := newTestCartService(t)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "guest:a", &AddItemRequest{ProductID: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}

	if _, err := svc.ApplyPromoCode(ctx, "guest:a", "SAVE50"); !errors.Is(err, ErrInvalidPromoCode) {
		t.Errorf("expected ErrInvalidPromoCode, got %v", err)
	}

	resp, err := svc.Get(ctx, "guest:a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if resp.PromoCode != "" {
		t.Errorf("rejected code should leave cart unchanged, got %q", resp.PromoCode)
	}
}

func TestCartTotalsUseCartThreshold(t *testing.T) {
	svc, _, _ := newTestCartService(t)
	ctx := context.Background()

	// Product 4 is 9500 cents, below the 10000 cart threshold.
	resp, err := svc.AddItem(ctx, "guest:a", &AddItemRequest{ProductID: 4})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if resp.Totals.ShippingCost != 1000 {
		t.Errorf("shipping = %d, want 1000", resp.Totals.ShippingCost)
	}
	if resp.Totals.AmountToFreeShipping != 500 {
		t.Errorf("amount to free shipping = %d, want 500", resp.Totals.AmountToFreeShipping)
	}

	// One more unit crosses the threshold.
	resp, err = svc.UpdateQuantity(ctx, "guest:a", 4, 2)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !resp.Totals.FreeShipping || resp.Totals.ShippingCost != 0 {
		t.Errorf("expected free shipping at 19000, got %+v", resp.Totals)
	}
	if resp.Totals.TotalAmount != 19000 {
		t.Errorf("total = %d, want 19000", resp.Totals.TotalAmount)
	}
}

func TestOrphanedLinePricesFromSnapshot(t *testing.T) {
	svc, store, _ := newTestCartService(t)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "guest:a", &AddItemRequest{ProductID: 1, Quantity: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := store.Delete(ctx, 1); err != nil {
		t.Fatalf("delete product: %v", err)
	}

	resp, err := svc.Get(ctx, "guest:a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].Price != 18500 {
		t.Errorf("orphaned line should keep its snapshot, got %+v", resp.Items)
	}
	if resp.Totals.SubTotal != 18500 {
		t.Errorf("subtotal = %d, want 18500", resp.Totals.SubTotal)
	}
}

func TestMergeGuestCart(t *testing.T) {
	svc, _, _ := newTestCartService(t)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "guest:a", &AddItemRequest{ProductID: 1, Quantity: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.AddItem(ctx, "guest:a", &AddItemRequest{ProductID: 2, Quantity: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.AddItem(ctx, "user:7", &AddItemRequest{ProductID: 1, Quantity: 1}); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := svc.MergeGuestCart(ctx, "user:7", "guest:a"); err != nil {
		t.Fatalf("merge: %v", err)
	}

	userCart, err := svc.Get(ctx, "user:7")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(userCart.Items) != 2 {
		t.Fatalf("expected 2 lines after merge, got %d", len(userCart.Items))
	}
	for _, item := range userCart.Items {
		switch item.ProductID {
		case 1:
			if item.Quantity != 3 {
				t.Errorf("product 1 quantity = %d, want 3", item.Quantity)
			}
		case 2:
			if item.Quantity != 1 {
				t.Errorf("product 2 quantity = %d, want 1", item.Quantity)
			}
		}
	}

	guestCart, err := svc.Get(ctx, "guest:a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(guestCart.Items) != 0 {
		t.Errorf("guest cart should be emptied, got %d lines", len(guestCart.Items))
	}
}

func TestCartSurvivesServiceRestart(t *testing.T) {
	svc, store, repo := newTestCartService(t)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "guest:a", &AddItemRequest{ProductID: 1, Quantity: 2}); err != nil {
		t.Fatalf("add: %v", err)
	}

	// A fresh service over the same repository hydrates the cart.
	fresh := NewService(store, repo, notify.NopNotifier{}, testConfig())
	resp, err := fresh.Get(ctx, "guest:a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].Quantity != 2 {
		t.Errorf("expected hydrated cart, got %+v", resp.Items)
	}
}

func TestFailedCartPersistKeepsMutation(t *testing.T) {
	svc, _, repo := newTestCartService(t)
	ctx := context.Background()
	repo.FailSaves = true

	resp, err := svc.AddItem(ctx, "guest:a", &AddItemRequest{ProductID: 1})
	if err != nil {
		t.Fatalf("add should succeed despite persistence failure: %v", err)
	}
	if len(resp.Items) != 1 {
		t.Errorf("expected line in memory, got %d", len(resp.Items))
	}
}
