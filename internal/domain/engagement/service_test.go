// internal/domain/engagement/service_test.go
package engagement

import (
	"context"
	"errors"
	"testing"

	"github.com/your-org/storefront-backend/internal/infrastructure/storage"
	"github.com/your-org/storefront-backend/internal/pkg/notify"
)

func TestSubmitContact(t *testing.T) {
	svc := NewService(storage.NewMemoryRepository(), notify.NopNotifier{})
	ctx := context.Background()

	msg, err := svc.SubmitContact(ctx, &ContactRequest{
		Name:    "  Jamie Lee  ",
		Email:   "Jamie@Example.com",
		Message: "Do you ship internationally?",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if msg.ID != 1 {
		t.Errorf("first message ID = %d, want 1", msg.ID)
	}
	if msg.Name != "Jamie Lee" || msg.Email != "jamie@example.com" {
		t.Errorf("fields not normalized: %+v", msg)
	}

	messages, err := svc.Messages(ctx)
	if err != nil {
		t.Fatalf("messages: %v", err)
	}
	if len(messages) != 1 {
		t.Errorf("expected 1 message, got %d", len(messages))
	}
}

func TestSubscribeDeduplicates(t *testing.T) {
	svc := NewService(storage.NewMemoryRepository(), notify.NopNotifier{})
	ctx := context.Background()

	if err := svc.Subscribe(ctx, "jamie@example.com"); err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	// Same address with different case is a duplicate.
	if err := svc.Subscribe(ctx, "JAMIE@example.com"); !errors.Is(err, ErrAlreadySubscribed) {
		t.Errorf("expected ErrAlreadySubscribed, got %v", err)
	}

	subscribers, err := svc.Subscribers(ctx)
	if err != nil {
		t.Fatalf("subscribers: %v", err)
	}
	if len(subscribers) != 1 {
		t.Errorf("expected 1 subscriber, got %d", len(subscribers))
	}
}

func TestSubscribeRejectsInvalidEmail(t *testing.T) {
	svc := NewService(storage.NewMemoryRepository(), notify.NopNotifier{})

	for _, email := range []string{"", "   ", "not-an-email"} {
		if err := svc.Subscribe(context.Background(), email); err == nil {
			t.Errorf("expected %q to be rejected", email)
		}
	}
}

func TestEngagementSurvivesServiceRestart(t *testing.T) {
	repo := storage.NewMemoryRepository()
	svc := NewService(repo, notify.NopNotifier{})
	ctx := context.Background()

	if err := svc.Subscribe(ctx, "jamie@example.com"); err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	fresh := NewService(repo, notify.NopNotifier{})
	if err := fresh.Subscribe(ctx, "jamie@example.com"); !errors.Is(err, ErrAlreadySubscribed) {
		t.Errorf("expected hydrated subscriber list, got %v", err)
	}
}
