package usecase

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"carbon_backend/internal/feature/auth/domain/entity"
)

// mockUserRepository is a mock implementation of the UserRepository interface.
// It simulates database operations during testing.
type mockUserRepository struct {
	// CreateFunc is called when the Create method is invoked.
	CreateFunc func(ctx context.Context, user *entity.User) error
	// FindByUsernameFunc is called when the FindByUsername method is invoked.
	FindByUsernameFunc func(ctx context.Context, username string) (*entity.User, error)
	// FindByIDFunc is called when the FindByID method is invoked.
	FindByIDFunc func(ctx context.Context, id uint) (*entity.User, error)
}

// mockTokenGenerator is a mock implementation of the TokenGenerator interface.
type mockTokenGenerator struct {
	// GenerateTokenFunc is called when the GenerateToken method is invoked.
	GenerateTokenFunc func(accountID uint, username string) (string, error)
}

// GenerateToken is the mock implementation of the GenerateToken method.
func (m *mockTokenGenerator) GenerateToken(accountID uint, username string) (string, error) {
	if m.GenerateTokenFunc != nil {
		return m.GenerateTokenFunc(accountID, username)
	}
	// Default: return a dummy token
	return "mock-jwt-token", nil
}

// Create is the mock implementation of the Create method.
func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil // Default: success
}

// FindByUsername is the mock implementation of the FindByUsername method.
func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	// Default: account not found
	return nil, ErrUserNotFound
}

// FindByID is the mock implementation of the FindByID method.
func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrUserNotFound
}

func TestAuthUsecase_Signup(t *testing.T) {
	t.Run("successful signup", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				// Verify that the password is hashed
				if len(user.Password) == 0 || user.Password == "password123" {
					t.Errorf("password is not hashed")
				}
				// Verify that it's a valid bcrypt hash
				if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")); err != nil {
					t.Errorf("invalid bcrypt hash: %v", err)
				}
				return nil
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenGenerator{})
		err := uc.Signup(context.Background(), "alice", "password123")

		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("username already taken", func(t *testing.T) {
		existing := &entity.User{ID: 1, Username: "alice", Password: "hash"}
		mockRepo := &mockUserRepository{
			FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
				return existing, nil
			},
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				t.Error("Create should not be called for an existing username")
				return nil
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenGenerator{})
		err := uc.Signup(context.Background(), "alice", "password123")

		if !errors.Is(err, ErrUsernameAlreadyExists) {
			t.Errorf("expected ErrUsernameAlreadyExists, got: %v", err)
		}
	})

	t.Run("no password rules are applied", func(t *testing.T) {
		mockRepo := &mockUserRepository{}

		uc := NewAuthUsecase(mockRepo, &mockTokenGenerator{})
		if err := uc.Signup(context.Background(), "bob", "x"); err != nil {
			t.Errorf("unexpected error for short password: %v", err)
		}
	})

	t.Run("repository create failure", func(t *testing.T) {
		expectedErr := errors.New("database error")
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				return expectedErr
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenGenerator{})
		err := uc.Signup(context.Background(), "alice", "password123")

		if !errors.Is(err, expectedErr) {
			t.Errorf("expected error '%v', got: %v", expectedErr, err)
		}
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	// Hashed password for testing
	password := "password123"
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	testUser := &entity.User{
		ID:       1,
		Username: "alice",
		Password: string(hashedPassword),
	}

	t.Run("successful login", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
				if username == testUser.Username {
					return testUser, nil
				}
				return nil, ErrUserNotFound
			},
		}
		mockTokens := &mockTokenGenerator{
			GenerateTokenFunc: func(accountID uint, username string) (string, error) {
				if accountID != testUser.ID || username != testUser.Username {
					t.Errorf("unexpected accountID or username: got accountID=%d, username=%s", accountID, username)
				}
				return "mock-jwt-token", nil
			},
		}

		uc := NewAuthUsecase(mockRepo, mockTokens)
		token, err := uc.Login(context.Background(), "alice", "password123")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "mock-jwt-token" {
			t.Errorf("expected token 'mock-jwt-token', got: '%s'", token)
		}
	})

	t.Run("account not found", func(t *testing.T) {
		mockRepo := &mockUserRepository{}

		uc := NewAuthUsecase(mockRepo, &mockTokenGenerator{})
		_, err := uc.Login(context.Background(), "nobody", "password123")

		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got: %v", err)
		}
	})

	t.Run("incorrect password", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
				return testUser, nil
			},
		}

		uc := NewAuthUsecase(mockRepo, &mockTokenGenerator{})
		_, err := uc.Login(context.Background(), "alice", "wrong-password")

		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got: %v", err)
		}
	})

	t.Run("token generation failure", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
				return testUser, nil
			},
		}
		mockTokens := &mockTokenGenerator{
			GenerateTokenFunc: func(accountID uint, username string) (string, error) {
				return "", errors.New("failed to sign token")
			},
		}

		uc := NewAuthUsecase(mockRepo, mockTokens)
		_, err := uc.Login(context.Background(), "alice", "password123")

		if err == nil {
			t.Fatal("expected error but got nil")
		}
		expectedErrMsg := "failed to generate token: failed to sign token"
		if err.Error() != expectedErrMsg {
			t.Errorf("expected error message '%s', got: '%s'", expectedErrMsg, err.Error())
		}
	})
}
