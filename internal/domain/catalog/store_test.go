// internal/domain/catalog/store_test.go
package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/your-org/storefront-backend/internal/infrastructure/storage"
	"github.com/your-org/storefront-backend/internal/pkg/notify"
)

func newTestStore(t *testing.T) (*Store, *storage.MemoryRepository) {
	t.Helper()

	repo := storage.NewMemoryRepository()
	store := NewStore(repo, notify.NopNotifier{})
	if err := store.Hydrate(context.Background(), SeedProducts()); err != nil {
		t.Fatalf("hydrate: %v", err)
	}
	return store, repo
}

func TestHydrateSeedsWhenEmpty(t *testing.T) {
	store, _ := newTestStore(t)

	products := store.List()
	if len(products) != 9 {
		t.Fatalf("expected 9 seeded products, got %d", len(products))
	}
	if products[0].Name != "Oud Royale" || products[0].Price != 18500 {
		t.Errorf("unexpected first product: %+v", products[0])
	}
}

func TestHydratePrefersPersistedCatalog(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewMemoryRepository()

	persisted := []Product{{ID: 42, Name: "Solo", Brand: "B", Category: CategoryUnisex, Price: 100}}
	if err := repo.Save(ctx, storage.CatalogKey(), persisted); err != nil {
		t.Fatalf("save: %v", err)
	}

	store := NewStore(repo, notify.NopNotifier{})
	if err := store.Hydrate(ctx, SeedProducts()); err != nil {
		t.Fatalf("hydrate: %v", err)
	}

	products := store.List()
	if len(products) != 1 || products[0].ID != 42 {
		t.Errorf("expected persisted catalog to win over seed, got %v", products)
	}
}

func TestAddAssignsNextID(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	created, err := store.Add(ctx, Product{Name: "New", Brand: "B", Category: CategoryUnisex, Price: 1000})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if created.ID != 10 {
		t.Errorf("expected ID 10 after seed, got %d", created.ID)
	}

	// Deleting the highest ID frees it for reuse: IDs are max+1, not
	// a counter.
	if err := store.Delete(ctx, 10); err != nil {
		t.Fatalf("delete: %v", err)
	}
	again, err := store.Add(ctx, Product{Name: "Again", Brand: "B", Category: CategoryUnisex, Price: 1000})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if again.ID != 10 {
		t.Errorf("expected ID 10 to be reused, got %d", again.ID)
	}
}

func TestAddToEmptyCatalogStartsAtOne(t *testing.T) {
	repo := storage.NewMemoryRepository()
	store := NewStore(repo, notify.NopNotifier{})
	if err := store.Hydrate(context.Background(), nil); err != nil {
		t.Fatalf("hydrate: %v", err)
	}

	created, err := store.Add(context.Background(), Product{Name: "First", Brand: "B", Category: CategoryMens, Price: 500})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected first ID to be 1, got %d", created.ID)
	}
}

func TestAddRejectsInvalidCategory(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Add(context.Background(), Product{Name: "X", Brand: "B", Category: "Candles", Price: 100})
	if !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("expected ErrInvalidCategory, got %v", err)
	}
}

func TestUpdateAppliesOnlyPatchedFields(t *testing.T) {
	store, _ := newTestStore(t)

	newPrice := int64(19999)
	inStock := false
	updated, err := store.Update(context.Background(), 1, ProductPatch{Price: &newPrice, InStock: &inStock})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Price != 19999 || updated.InStock {
		t.Errorf("patch not applied: %+v", updated)
	}
	if updated.Name != "Oud Royale" || updated.Brand != "Royal Oud" {
		t.Errorf("unpatched fields changed: %+v", updated)
	}
}

func TestUpdateUnknownProduct(t *testing.T) {
	store, _ := newTestStore(t)

	name := "ghost"
	_, err := store.Update(context.Background(), 999, ProductPatch{Name: &name})
	if !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestDeleteRemovesProduct(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.Delete(ctx, 3); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(3); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected deleted product to be gone, got %v", err)
	}
	if err := store.Delete(ctx, 3); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected second delete to fail, got %v", err)
	}
}

func TestMutationsPersistAcrossRestart(t *testing.T) {
	ctx := context.Background()
	store, repo := newTestStore(t)

	if _, err := store.Add(ctx, Product{Name: "Kept", Brand: "B", Category: CategoryGiftSets, Price: 4200}); err != nil {
		t.Fatalf("add: %v", err)
	}

	// A second store over the same repository sees the mutation.
	reloaded := NewStore(repo, notify.NopNotifier{})
	if err := reloaded.Hydrate(ctx, nil); err != nil {
		t.Fatalf("hydrate: %v", err)
	}
	if len(reloaded.List()) != 10 {
		t.Errorf("expected 10 products after reload, got %d", len(reloaded.List()))
	}
}

func TestFailedPersistDoesNotFailMutation(t *testing.T) {
	store, repo := newTestStore(t)
	repo.FailSaves = true

	created, err := store.Add(context.Background(), Product{Name: "Volatile", Brand: "B", Category: CategoryUnisex, Price: 100})
	if err != nil {
		t.Fatalf("add should succeed despite persistence failure: %v", err)
	}
	if _, err := store.Get(created.ID); err != nil {
		t.Errorf("product should be in memory: %v", err)
	}
}

func TestRequestStockAlert(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	// Product 5 is seeded out of stock.
	if err := store.RequestStockAlert(ctx, 5, "a@example.com"); err != nil {
		t.Fatalf("alert: %v", err)
	}

	if err := store.RequestStockAlert(ctx, 5, "a@example.com"); !errors.Is(err, ErrDuplicateAlert) {
		t.Errorf("expected ErrDuplicateAlert, got %v", err)
	}

	if err := store.RequestStockAlert(ctx, 1, "a@example.com"); !errors.Is(err, ErrAlreadyInStock) {
		t.Errorf("expected ErrAlreadyInStock, got %v", err)
	}

	if err := store.RequestStockAlert(ctx, 999, "a@example.com"); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}

	alerts := store.StockAlerts(5)
	if len(alerts) != 1 || alerts[0].Email != "a@example.com" {
		t.Errorf("unexpected alerts: %v", alerts)
	}
}
