package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"carbon_backend/internal/feature/auth/domain/entity"
)

// UserRepository abstracts the persistence layer for account entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new account to storage.
	// It returns ErrUsernameAlreadyExists if the username is already taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername retrieves the account matching the given username.
	// It returns ErrUserNotFound if no such account exists.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByID retrieves the account matching the given ID.
	// It returns ErrUserNotFound if no such account exists.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// TokenGenerator abstracts JWT token generation.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (platform/jwt).
type TokenGenerator interface {
	// GenerateToken creates a signed JWT token for the given account.
	GenerateToken(accountID uint, username string) (string, error)
}

// authUsecase implements the signup and login business logic.
type authUsecase struct {
	users  UserRepository
	tokens TokenGenerator
}

// NewAuthUsecase creates a new authUsecase instance.
func NewAuthUsecase(users UserRepository, tokens TokenGenerator) *authUsecase {
	return &authUsecase{users: users, tokens: tokens}
}

// Signup registers a new account with a bcrypt-hashed password.
// The username is checked for existence before the insert; the unique
// index on username closes the remaining race at the storage layer.
// No password strength or format rules are applied.
func (u *authUsecase) Signup(ctx context.Context, username, password string) error {
	if _, err := u.users.FindByUsername(ctx, username); err == nil {
		return ErrUsernameAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{Username: username, Password: string(hashed)}
	return u.users.Create(ctx, user)
}

// Login authenticates an account and returns a signed JWT on success.
// A bcrypt comparison runs even when the account does not exist, so the
// response time does not reveal whether a username is registered.
func (u *authUsecase) Login(ctx context.Context, username, password string) (string, error) {
	user, err := u.users.FindByUsername(ctx, username)

	// Dummy hash keeps bcrypt.CompareHashAndPassword on the path when the lookup fails.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	token, tokenErr := u.tokens.GenerateToken(user.ID, user.Username)
	if tokenErr != nil {
		return "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return token, nil
}
