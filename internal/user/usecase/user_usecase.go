// Package usecase implements the user business logic. Users come from the
// operator CLI only; there is no signup, login or password surface.
package usecase

import (
	"context"
	"strings"
	"time"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	"github.com/allisson/posts/internal/user/domain"
	appValidation "github.com/allisson/posts/internal/validation"
)

// UseCase defines the interface for user business logic operations
type UseCase interface {
	CreateUser(ctx context.Context, email string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserRepository interface defines user repository operations
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserUseCase handles user-related business logic
type UserUseCase struct {
	userRepo UserRepository
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(userRepo UserRepository) UseCase {
	return &UserUseCase{userRepo: userRepo}
}

// CreateUser creates a new account with the given email.
func (u *UserUseCase) CreateUser(ctx context.Context, email string) (*domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	if err := validation.Validate(email, validation.Required, appValidation.Email); err != nil {
		return nil, appValidation.WrapValidationError(err)
	}

	user := &domain.User{
		ID:        uuid.Must(uuid.NewV7()),
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetUserByEmail retrieves a user by email.
func (u *UserUseCase) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	return u.userRepo.GetByEmail(ctx, email)
}
