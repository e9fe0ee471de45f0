package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authService "github.com/allisson/posts/internal/auth/service"
	apperrors "github.com/allisson/posts/internal/errors"
	"github.com/allisson/posts/internal/httputil"
)

// AuthenticationMiddleware verifies the bearer token in the Authorization
// header and attaches the resulting identity to the request context.
//
// Header format: "<scheme> <credential>" with a single space separator.
//
// Error handling:
//   - Missing header or empty credential → 401, no verification attempted
//   - Credential fails verification → 403, reason logged but never returned
//
// Both failures abort the request before any downstream handler runs, so no
// store call can happen for an unauthenticated request.
func AuthenticationMiddleware(
	tokenService authService.TokenService,
	logger *slog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Debug("authentication failed: missing authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, "", logger)
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[1] == "" {
			logger.Debug("authentication failed: malformed authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, "", logger)
			c.Abort()
			return
		}
		credential := parts[1]

		identity, err := tokenService.Verify(credential)
		if err != nil {
			logger.Debug("authentication failed",
				slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, "", logger)
			c.Abort()
			return
		}

		ctx := WithIdentity(c.Request.Context(), identity)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful",
			slog.String("user_id", identity.UserID))

		c.Next()
	}
}
