// internal/domain/history/service_test.go
package history

import (
	"context"
	"fmt"
	"testing"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/infrastructure/storage"
	"github.com/your-org/storefront-backend/internal/pkg/notify"
)

func viewProduct(id uint) *catalog.Product {
	return &catalog.Product{
		ID:    id,
		Name:  fmt.Sprintf("Product %d", id),
		Price: int64(id) * 100,
	}
}

func TestRecordMostRecentFirst(t *testing.T) {
	svc := NewService(storage.NewMemoryRepository(), notify.NopNotifier{})
	ctx := context.Background()

	for id := uint(1); id <= 3; id++ {
		if err := svc.Record(ctx, "user:1", viewProduct(id)); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	list, err := svc.List(ctx, "user:1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for i, want := range []uint{3, 2, 1} {
		if list[i].ProductID != want {
			t.Errorf("list[%d] = %d, want %d", i, list[i].ProductID, want)
		}
	}
}

func TestRecordDeduplicatesAndMovesToFront(t *testing.T) {
	svc := NewService(storage.NewMemoryRepository(), notify.NopNotifier{})
	ctx := context.Background()

	for _, id := range []uint{1, 2, 3, 1} {
		if err := svc.Record(ctx, "user:1", viewProduct(id)); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	list, err := svc.List(ctx, "user:1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 entries after re-view, got %d", len(list))
	}
	for i, want := range []uint{1, 3, 2} {
		if list[i].ProductID != want {
			t.Errorf("list[%d] = %d, want %d", i, list[i].ProductID, want)
		}
	}
}

func TestRecordCapsAtMaxEntries(t *testing.T) {
	svc := NewService(storage.NewMemoryRepository(), notify.NopNotifier{})
	ctx := context.Background()

	for id := uint(1); id <= 12; id++ {
		if err := svc.Record(ctx, "user:1", viewProduct(id)); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	list, err := svc.List(ctx, "user:1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != MaxEntries {
		t.Fatalf("expected %d entries, got %d", MaxEntries, len(list))
	}

	// Oldest views (1..4) fell off; 12 is freshest.
	if list[0].ProductID != 12 {
		t.Errorf("freshest = %d, want 12", list[0].ProductID)
	}
	if list[MaxEntries-1].ProductID != 5 {
		t.Errorf("oldest kept = %d, want 5", list[MaxEntries-1].ProductID)
	}
}

func TestHistorySurvivesServiceRestart(t *testing.T) {
	repo := storage.NewMemoryRepository()
	svc := NewService(repo, notify.NopNotifier{})
	ctx := context.Background()

	if err := svc.Record(ctx, "user:1", viewProduct(7)); err != nil {
		t.Fatalf("record: %v", err)
	}

	fresh := NewService(repo, notify.NopNotifier{})
	list, err := fresh.List(ctx, "user:1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].ProductID != 7 {
		t.Errorf("expected hydrated history, got %+v", list)
	}
}
