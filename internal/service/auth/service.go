// Package auth handles credential management and JWT issuance.
// The service is framework-agnostic; HTTP concerns live in the handler layer.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/2003aryan/crisp-ai/internal/domain/entity"
	"github.com/2003aryan/crisp-ai/internal/repository"
)

var (
	// ErrDuplicateUser is returned when the username is already registered.
	ErrDuplicateUser = errors.New("username already taken")

	// ErrInvalidCredentials is returned when the username is unknown or the
	// password does not match. Callers must not distinguish the two cases.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// bcryptCost balances hashing latency against brute-force resistance.
const bcryptCost = 10

// Service handles registration and credential verification.
type Service struct {
	users  repository.UserRepository
	tokens *TokenManager
}

// NewService creates a new authentication service.
func NewService(users repository.UserRepository, tokens *TokenManager) *Service {
	return &Service{users: users, tokens: tokens}
}

// Register creates a new account and returns a signed token for it.
// The password is stored only as a bcrypt hash.
func (s *Service) Register(ctx context.Context, username, password, displayName string) (string, error) {
	if err := entity.ValidateUsername(username); err != nil {
		return "", err
	}
	if err := entity.ValidatePassword(password); err != nil {
		return "", err
	}
	if err := entity.ValidateDisplayName(displayName); err != nil {
		return "", err
	}

	// Check uniqueness before paying the hashing cost.
	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("Register: %w", err)
	}
	if existing != nil {
		return "", ErrDuplicateUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("Register: hash: %w", err)
	}

	user := &entity.User{
		Username:     username,
		PasswordHash: string(hash),
		DisplayName:  displayName,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// A concurrent registration can slip past the uniqueness check
		// above; the unique constraint is the backstop.
		if errors.Is(err, entity.ErrDuplicateUsername) {
			return "", ErrDuplicateUser
		}
		return "", fmt.Errorf("Register: %w", err)
	}

	slog.InfoContext(ctx, "user registered",
		slog.Int64("user_id", user.ID),
		slog.String("username", username))

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("Register: %w", err)
	}
	return token, nil
}

// Login verifies the credentials and returns a signed token.
// Unknown usernames and wrong passwords both map to ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("Login: %w", err)
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	slog.InfoContext(ctx, "user logged in",
		slog.Int64("user_id", user.ID),
		slog.String("username", username))

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("Login: %w", err)
	}
	return token, nil
}
