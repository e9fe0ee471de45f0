package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	authService "github.com/allisson/posts/internal/auth/service"
	userUsecase "github.com/allisson/posts/internal/user/usecase"
)

// RunCreateUser creates a new user account and prints its id and email.
// When withToken is true it also signs a bearer token for the new user so an
// operator can hand out working credentials in one step.
//
// Requirements: Database must be migrated and accessible.
func RunCreateUser(
	ctx context.Context,
	userUseCase userUsecase.UseCase,
	tokenService authService.TokenService,
	logger *slog.Logger,
	email string,
	tokenTTL time.Duration,
	withToken bool,
	io IOTuple,
) error {
	user, err := userUseCase.CreateUser(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	logger.Info("user created",
		slog.String("user_id", user.ID.String()),
		slog.String("email", user.Email),
	)

	fmt.Fprintf(io.Writer, "User ID: %s\n", user.ID)
	fmt.Fprintf(io.Writer, "Email: %s\n", user.Email)

	if withToken {
		token, err := tokenService.Sign(user.ID.String(), tokenTTL)
		if err != nil {
			return fmt.Errorf("failed to sign token: %w", err)
		}
		fmt.Fprintf(io.Writer, "Token: %s\n", token)
	}

	return nil
}
