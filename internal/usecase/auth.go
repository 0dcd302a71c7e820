package usecase

import (
	"context"
	"errors"

	"storefront-rules/internal/domain/user"
	"storefront-rules/internal/pkg/jwt"
	"storefront-rules/internal/pkg/password"
	"storefront-rules/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrUserInactive         = errors.New("user account is inactive")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrTokenGeneration      = errors.New("token generation failed")
)

type UserReadStore interface {
	// FindAuthByEmail returns the user view together with the stored
	// password hash; the hash never leaves the usecase layer.
	FindAuthByEmail(ctx context.Context, email user.Email) (*queries.AuthorizedUserView, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error)
}

type LoginResult struct {
	Token string
	User  *queries.AuthorizedUserView
}

type AuthUseCase interface {
	Login(ctx context.Context, email user.Email, plainPassword string) (*LoginResult, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error)
}

type authUseCaseImpl struct {
	users      UserReadStore
	jwtService *jwt.Service
}

func NewAuthUseCase(users UserReadStore, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		users:      users,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, email user.Email, plainPassword string) (*LoginResult, error) {
	view, hash, err := a.users.FindAuthByEmail(ctx, email)
	if err != nil || view == nil {
		return nil, ErrUserNotFound
	}

	if !view.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hash, plainPassword); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}

	token, err := a.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return nil, ErrTokenGeneration
	}

	return &LoginResult{Token: token, User: view}, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*queries.AuthorizedUserView, error) {
	view, err := a.users.FindByID(ctx, userID)
	if err != nil || view == nil {
		return nil, ErrUserNotFound
	}

	if !view.IsActive {
		return nil, ErrUserInactive
	}

	return view, nil
}
