// internal/domain/user/service.go
package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/infrastructure/storage"
	"github.com/your-org/storefront-backend/internal/pkg/auth"
	"github.com/your-org/storefront-backend/internal/pkg/notify"
)

var (
	// ErrEmailExists is returned when registering an email that
	// already has an account.
	ErrEmailExists = errors.New("an account with this email already exists")

	// ErrInvalidCredentials is returned on login failure. It does not
	// distinguish unknown email from wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserNotFound is returned when a user ID has no account.
	ErrUserNotFound = errors.New("user not found")
)

// Service handles account business logic over an in-memory user store
// mirrored to the repository. Authentication calls sleep for the
// configured simulated latency before responding; the sleep function
// is a field so tests can stub it out.
type Service struct {
	mu        sync.Mutex
	byEmail   map[string]*User
	byID      map[uint]*User
	hydrated  bool
	repo      storage.Repository
	notifier  notify.Notifier
	passwords *auth.PasswordManager
	tokens    *auth.JWTManager
	config    *config.Config

	// Sleep is called with the simulated latency before each
	// register/login responds. Defaults to time.Sleep.
	Sleep func(time.Duration)
}

// NewService creates a new user service.
func NewService(repo storage.Repository, notifier notify.Notifier, passwords *auth.PasswordManager, tokens *auth.JWTManager, cfg *config.Config) *Service {
	return &Service{
		byEmail:   make(map[string]*User),
		byID:      make(map[uint]*User),
		repo:      repo,
		notifier:  notifier,
		passwords: passwords,
		tokens:    tokens,
		config:    cfg,
		Sleep:     time.Sleep,
	}
}

// Register creates a new account and signs it in.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	s.simulateLatency()

	email := strings.ToLower(strings.TrimSpace(req.Email))

	hash, err := s.passwords.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.hydrate(ctx); err != nil {
		return nil, err
	}

	if _, exists := s.byEmail[email]; exists {
		return nil, ErrEmailExists
	}

	now := time.Now().UTC()
	u := &User{
		ID:           s.nextID(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		LastLoginAt:  &now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	s.byEmail[email] = u
	s.byID[u.ID] = u
	s.persist(ctx)

	s.notifier.Success(fmt.Sprintf("Welcome, %s!", u.GetFullName()))
	return s.authResponse(u)
}

// Login verifies credentials and issues tokens.
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	s.simulateLatency()

	email := strings.ToLower(strings.TrimSpace(req.Email))

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.hydrate(ctx); err != nil {
		return nil, err
	}

	u, exists := s.byEmail[email]
	if !exists {
		return nil, ErrInvalidCredentials
	}

	if err := s.passwords.VerifyPassword(req.Password, u.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	u.LastLoginAt = &now
	u.UpdatedAt = now
	s.persist(ctx)

	s.notifier.Success(fmt.Sprintf("Welcome back, %s!", u.GetFullName()))
	return s.authResponse(u)
}

// Refresh exchanges a valid refresh token for a new token pair. Admin
// status is re-read from the user record rather than trusted from the
// old token.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	claims, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.hydrate(ctx); err != nil {
		return nil, err
	}

	u, exists := s.byID[claims.UserID]
	if !exists {
		return nil, ErrUserNotFound
	}

	return s.authResponse(u)
}

// GetProfile returns the API view of a user by ID.
func (s *Service) GetProfile(ctx context.Context, userID uint) (*Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.hydrate(ctx); err != nil {
		return nil, err
	}

	u, exists := s.byID[userID]
	if !exists {
		return nil, ErrUserNotFound
	}
	return u.Profile(), nil
}

// Count returns the number of registered accounts.
func (s *Service) Count(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.hydrate(ctx); err != nil {
		return 0, err
	}
	return len(s.byID), nil
}

// SeedAdmin ensures an admin account exists for the given email,
// creating it with the given password when absent. Used at startup in
// development so the admin dashboard is reachable out of the box.
func (s *Service) SeedAdmin(ctx context.Context, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.hydrate(ctx); err != nil {
		return err
	}

	if u, exists := s.byEmail[email]; exists {
		if !u.IsAdmin {
			u.IsAdmin = true
			u.UpdatedAt = time.Now().UTC()
			s.persist(ctx)
		}
		return nil
	}

	hash, err := s.passwords.HashPassword(password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	u := &User{
		ID:           s.nextID(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    "Store",
		LastName:     "Admin",
		IsAdmin:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	s.byEmail[email] = u
	s.byID[u.ID] = u
	s.persist(ctx)
	return nil
}

func (s *Service) simulateLatency() {
	if d := s.config.Store.SimulatedLatency; d > 0 {
		s.Sleep(d)
	}
}

func (s *Service) authResponse(u *User) (*AuthResponse, error) {
	accessToken, err := s.tokens.GenerateAccessToken(u.ID, u.Email, u.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.tokens.GenerateRefreshToken(u.ID, u.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &AuthResponse{
		User:         u.Profile(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.config.JWT.AccessTokenExpiry.Seconds()),
	}, nil
}

// nextID returns one past the highest existing ID, starting at 1. Must
// be called with the lock held.
func (s *Service) nextID() uint {
	var max uint
	for id := range s.byID {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// hydrate loads the persisted user list on first access. Must be
// called with the lock held.
func (s *Service) hydrate(ctx context.Context) error {
	if s.hydrated {
		return nil
	}

	var stored []User
	err := s.repo.Load(ctx, storage.UsersKey(), &stored)
	switch {
	case err == nil:
		for i := range stored {
			u := stored[i]
			s.byEmail[u.Email] = &u
			s.byID[u.ID] = &u
		}
	case errors.Is(err, storage.ErrNotFound):
		// First boot, no accounts yet
	default:
		return fmt.Errorf("failed to load users: %w", err)
	}

	s.hydrated = true
	return nil
}

// persist mirrors the user store, best-effort. Must be called with the
// lock held.
func (s *Service) persist(ctx context.Context) {
	users := make([]User, 0, len(s.byID))
	for _, u := range s.byID {
		users = append(users, *u)
	}

	if err := s.repo.Save(ctx, storage.UsersKey(), users); err != nil {
		s.notifier.Error(fmt.Sprintf("failed to persist users: %v", err))
	}
}
