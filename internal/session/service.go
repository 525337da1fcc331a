package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Repository persists the role flag and user profile. The two values are
// written whenever either changes and cleared together on logout; entity data
// is never persisted.
type Repository interface {
	Load(ctx context.Context) (Role, *User, error)
	Save(ctx context.Context, role Role, user *User) error
	Clear(ctx context.Context) error
}

// Service holds the current sign-in state. The persisted pair is read once at
// startup; afterwards the in-memory copy is authoritative and writes go
// through on every change.
type Service struct {
	repo   Repository
	secret []byte

	mu   sync.Mutex
	role Role
	user *User
}

func NewService(ctx context.Context, repo Repository, secret string) (*Service, error) {
	role, user, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}

	return &Service{
		repo:   repo,
		secret: []byte(secret),
		role:   role,
		user:   user,
	}, nil
}

// SignUp records the chosen role and profile and returns a demo token. There
// is no credential handling; signing up and signing in are the same operation
// with different entry points.
func (s *Service) SignUp(ctx context.Context, role Role, user User) (string, error) {
	return s.signIn(ctx, role, user)
}

// SignIn records the role and profile of a returning user.
func (s *Service) SignIn(ctx context.Context, role Role, user User) (string, error) {
	return s.signIn(ctx, role, user)
}

func (s *Service) signIn(ctx context.Context, role Role, user User) (string, error) {
	switch role {
	case RoleTenant, RoleLandlord:
	default:
		return "", ErrUnknownRole
	}

	if err := s.repo.Save(ctx, role, &user); err != nil {
		return "", fmt.Errorf("saving session: %w", err)
	}

	s.mu.Lock()
	s.role = role
	s.user = &user
	s.mu.Unlock()

	return s.issueToken(role, user)
}

// Current returns the signed-in role and user, or ErrNotSignedIn.
func (s *Service) Current() (Role, *User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.role == "" || s.user == nil {
		return "", nil, ErrNotSignedIn
	}

	user := *s.user

	return s.role, &user, nil
}

// Logout clears both persisted keys together and resets the in-memory state.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}

	s.mu.Lock()
	s.role = ""
	s.user = nil
	s.mu.Unlock()

	return nil
}

// issueToken signs a demo HS256 token carrying the session claims. Nothing
// verifies it; it exists so the frontend has the usual token-shaped ack.
func (s *Service) issueToken(role Role, user User) (string, error) {
	claims := jwt.MapClaims{
		"role":  string(role),
		"name":  user.Name,
		"email": user.Email,
		"iat":   time.Now().Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return token, nil
}
