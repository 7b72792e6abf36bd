// internal/domain/wishlist/service_test.go
package wishlist

import (
	"context"
	"errors"
	"testing"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/infrastructure/storage"
	"github.com/your-org/storefront-backend/internal/pkg/notify"
)

func testProduct(id uint, name string) *catalog.Product {
	return &catalog.Product{
		ID:       id,
		Name:     name,
		Brand:    "Brand",
		Category: catalog.CategoryUnisex,
		Price:    9900,
		InStock:  true,
	}
}

func TestToggleTwiceRestoresMembership(t *testing.T) {
	svc := NewService(storage.NewMemoryRepository(), notify.NopNotifier{})
	ctx := context.Background()
	p := testProduct(1, "Oud Royale")

	in, err := svc.Toggle(ctx, "user:1", p)
	if err != nil || !in {
		t.Fatalf("first toggle: in=%v err=%v", in, err)
	}
	if present, _ := svc.Contains(ctx, "user:1", 1); !present {
		t.Error("product should be in wishlist after first toggle")
	}

	in, err = svc.Toggle(ctx, "user:1", p)
	if err != nil || in {
		t.Fatalf("second toggle: in=%v err=%v", in, err)
	}
	if present, _ := svc.Contains(ctx, "user:1", 1); present {
		t.Error("product should be gone after second toggle")
	}

	if count, _ := svc.Count(ctx, "user:1"); count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}

func TestListKeepsInsertionOrder(t *testing.T) {
	svc := NewService(storage.NewMemoryRepository(), notify.NopNotifier{})
	ctx := context.Background()

	for i, name := range []string{"First", "Second", "Third"} {
		if _, err := svc.Toggle(ctx, "user:1", testProduct(uint(i+1), name)); err != nil {
			t.Fatalf("toggle: %v", err)
		}
	}

	entries, err := svc.List(ctx, "user:1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i, want := range []string{"First", "Second", "Third"} {
		if entries[i].Name != want {
			t.Errorf("entries[%d].Name = %q, want %q", i, entries[i].Name, want)
		}
	}
}

func TestRemoveUnknownEntry(t *testing.T) {
	svc := NewService(storage.NewMemoryRepository(), notify.NopNotifier{})

	err := svc.Remove(context.Background(), "user:1", 42)
	if !errors.Is(err, ErrEntryNotFound) {
		t.Errorf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestClearEmptiesWishlist(t *testing.T) {
	svc := NewService(storage.NewMemoryRepository(), notify.NopNotifier{})
	ctx := context.Background()

	if _, err := svc.Toggle(ctx, "user:1", testProduct(1, "A")); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if err := svc.Clear(ctx, "user:1"); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if count, _ := svc.Count(ctx, "user:1"); count != 0 {
		t.Errorf("count = %d after clear, want 0", count)
	}
}

func TestEntrySnapshotsSurviveCatalogEdits(t *testing.T) {
	svc := NewService(storage.NewMemoryRepository(), notify.NopNotifier{})
	ctx := context.Background()

	p := testProduct(1, "Original")
	if _, err := svc.Toggle(ctx, "user:1", p); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	// Mutating the product after adding must not rewrite the entry.
	p.Name = "Renamed"
	p.Price = 1

	entries, err := svc.List(ctx, "user:1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if entries[0].Name != "Original" || entries[0].Price != 9900 {
		t.Errorf("entry should keep its snapshot, got %+v", entries[0])
	}
}

func TestWishlistSurvivesServiceRestart(t *testing.T) {
	repo := storage.NewMemoryRepository()
	svc := NewService(repo, notify.NopNotifier{})
	ctx := context.Background()

	if _, err := svc.Toggle(ctx, "user:1", testProduct(1, "Kept")); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	fresh := NewService(repo, notify.NopNotifier{})
	if present, err := fresh.Contains(ctx, "user:1", 1); err != nil || !present {
		t.Errorf("expected hydrated wishlist to contain product 1: present=%v err=%v", present, err)
	}
}

func TestOwnersAreIsolated(t *testing.T) {
	svc := NewService(storage.NewMemoryRepository(), notify.NopNotifier{})
	ctx := context.Background()

	if _, err := svc.Toggle(ctx, "user:1", testProduct(1, "A")); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	if present, _ := svc.Contains(ctx, "user:2", 1); present {
		t.Error("other owner's wishlist should be empty")
	}
}
