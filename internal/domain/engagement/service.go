// internal/domain/engagement/service.go
package engagement

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/your-org/storefront-backend/internal/infrastructure/storage"
	"github.com/your-org/storefront-backend/internal/pkg/notify"
)

// ErrAlreadySubscribed is returned when an email is already on the
// newsletter list.
var ErrAlreadySubscribed = errors.New("email is already subscribed")

// Service records contact messages and newsletter subscriptions.
type Service struct {
	mu          sync.Mutex
	messages    []ContactMessage
	subscribers []Subscription
	hydrated    bool
	repo        storage.Repository
	notifier    notify.Notifier
}

// NewService creates a new engagement service.
func NewService(repo storage.Repository, notifier notify.Notifier) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
	}
}

// SubmitContact records a contact form submission.
func (s *Service) SubmitContact(ctx context.Context, req *ContactRequest) (*ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.hydrate(ctx); err != nil {
		return nil, err
	}

	msg := ContactMessage{
		ID:          uint(len(s.messages)) + 1,
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Subject:     strings.TrimSpace(req.Subject),
		Message:     strings.TrimSpace(req.Message),
		SubmittedAt: time.Now().UTC(),
	}
	s.messages = append(s.messages, msg)

	if err := s.repo.Save(ctx, storage.ContactMessagesKey(), s.messages); err != nil {
		s.notifier.Error(fmt.Sprintf("failed to persist contact messages: %v", err))
	}

	s.notifier.Success("Thank you for your message! We'll get back to you soon.")
	return &msg, nil
}

// Subscribe adds an email to the newsletter list, de-duplicated
// case-insensitively.
func (s *Service) Subscribe(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("a valid email address is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.hydrate(ctx); err != nil {
		return err
	}

	for _, sub := range s.subscribers {
		if sub.Email == email {
			return ErrAlreadySubscribed
		}
	}

	s.subscribers = append(s.subscribers, Subscription{
		Email:        email,
		SubscribedAt: time.Now().UTC(),
	})

	if err := s.repo.Save(ctx, storage.NewsletterKey(), s.subscribers); err != nil {
		s.notifier.Error(fmt.Sprintf("failed to persist newsletter subscribers: %v", err))
	}

	s.notifier.Success("You're subscribed! Welcome to the list.")
	return nil
}

// Messages returns all recorded contact messages.
func (s *Service) Messages(ctx context.Context) ([]ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.hydrate(ctx); err != nil {
		return nil, err
	}
	return append([]ContactMessage(nil), s.messages...), nil
}

// Subscribers returns all newsletter subscriptions.
func (s *Service) Subscribers(ctx context.Context) ([]Subscription, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.hydrate(ctx); err != nil {
		return nil, err
	}
	return append([]Subscription(nil), s.subscribers...), nil
}

// hydrate loads both persisted lists on first access. Must be called
// with the lock held.
func (s *Service) hydrate(ctx context.Context) error {
	if s.hydrated {
		return nil
	}

	if err := s.repo.Load(ctx, storage.ContactMessagesKey(), &s.messages); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("failed to load contact messages: %w", err)
	}
	if err := s.repo.Load(ctx, storage.NewsletterKey(), &s.subscribers); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("failed to load newsletter subscribers: %w", err)
	}

	s.hydrated = true
	return nil
}
