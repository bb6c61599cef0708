package app

import (
	"context"
	"errors"

	"quizhub-service/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles signup and login over a credential store.
type AuthService struct {
	users UserRepository
	cost  int
}

func NewAuthService(users UserRepository) *AuthService {
	return &AuthService{users: users, cost: bcrypt.DefaultCost}
}

// Register hashes the password and stores the new account. The plaintext
// password is never persisted.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return domain.ErrMissingField
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return err
	}

	return s.users.Insert(ctx, domain.User{
		Username:     username,
		PasswordHash: string(hash),
	})
}

// Verify checks the password against the stored hash. Unknown usernames and
// hash mismatches are indistinguishable to the caller.
func (s *AuthService) Verify(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return domain.ErrMissingField
	}

	user, err := s.users.Get(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrInvalidCredentials
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.ErrInvalidCredentials
	}
	return nil
}
