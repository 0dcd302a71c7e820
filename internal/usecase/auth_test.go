//go:build unit

package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront-rules/internal/domain/user"
	"storefront-rules/internal/pkg/jwt"
	"storefront-rules/internal/pkg/password"
	"storefront-rules/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserReadStore struct {
	mock.Mock
}

func (m *MockUserReadStore) FindAuthByEmail(ctx context.Context, email user.Email) (*queries.AuthorizedUserView, string, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*queries.AuthorizedUserView), args.String(1), args.Error(2)
}

func (m *MockUserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*queries.AuthorizedUserView), args.Error(1)
}

func TestAuthLogin(t *testing.T) {
	jwtService := jwt.NewService("test-secret", time.Hour)

	email, err := user.NewEmail("shopper@example.com")
	require.NoError(t, err)

	hash, err := password.HashPassword("secret123")
	require.NoError(t, err)

	view := &queries.AuthorizedUserView{
		ID:           uuid.New(),
		Email:        "shopper@example.com",
		Role:         "shopper",
		RewardPoints: 120,
		IsActive:     true,
	}

	t.Run("success: returns a verifiable token", func(t *testing.T) {
		store := new(MockUserReadStore)
		uc := NewAuthUseCase(store, jwtService)

		store.On("FindAuthByEmail", mock.Anything, email).Return(view, hash, nil)

		result, err := uc.Login(context.Background(), email, "secret123")
		require.NoError(t, err)
		assert.Equal(t, view, result.User)

		claims, err := jwtService.ValidateToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, view.ID, claims.UserID)
		assert.Equal(t, "shopper", claims.Role)
	})

	t.Run("error: wrong password", func(t *testing.T) {
		store := new(MockUserReadStore)
		uc := NewAuthUseCase(store, jwtService)

		store.On("FindAuthByEmail", mock.Anything, email).Return(view, hash, nil)

		_, err := uc.Login(context.Background(), email, "wrong-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("error: unknown email", func(t *testing.T) {
		store := new(MockUserReadStore)
		uc := NewAuthUseCase(store, jwtService)

		store.On("FindAuthByEmail", mock.Anything, email).Return(nil, "", errors.New("no rows"))

		_, err := uc.Login(context.Background(), email, "secret123")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("error: inactive account", func(t *testing.T) {
		store := new(MockUserReadStore)
		uc := NewAuthUseCase(store, jwtService)

		inactive := *view
		inactive.IsActive = false
		store.On("FindAuthByEmail", mock.Anything, email).Return(&inactive, hash, nil)

		_, err := uc.Login(context.Background(), email, "secret123")
		assert.ErrorIs(t, err, ErrUserInactive)
	})
}

func TestAuthGetCurrentUser(t *testing.T) {
	jwtService := jwt.NewService("test-secret", time.Hour)

	view := &queries.AuthorizedUserView{
		ID:           uuid.New(),
		Email:        "shopper@example.com",
		Role:         "shopper",
		RewardPoints: 45,
		IsActive:     true,
	}

	t.Run("success", func(t *testing.T) {
		store := new(MockUserReadStore)
		uc := NewAuthUseCase(store, jwtService)

		store.On("FindByID", mock.Anything, view.ID).Return(view, nil)

		got, err := uc.GetCurrentUser(context.Background(), view.ID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("error: missing user", func(t *testing.T) {
		store := new(MockUserReadStore)
		uc := NewAuthUseCase(store, jwtService)

		id := uuid.New()
		store.On("FindByID", mock.Anything, id).Return(nil, errors.New("no rows"))

		_, err := uc.GetCurrentUser(context.Background(), id)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("error: inactive user", func(t *testing.T) {
		store := new(MockUserReadStore)
		uc := NewAuthUseCase(store, jwtService)

		inactive := *view
		inactive.IsActive = false
		store.On("FindByID", mock.Anything, view.ID).Return(&inactive, nil)

		_, err := uc.GetCurrentUser(context.Background(), view.ID)
		assert.ErrorIs(t, err, ErrUserInactive)
	})
}
