package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/allisson/posts/internal/auth/http"
	authService "github.com/allisson/posts/internal/auth/service"
)

// TokenService returns the bearer token service instance.
// Construction fails when no JWT secret is configured.
func (c *Container) TokenService() (authService.TokenService, error) {
	c.tokenServiceInit.Do(func() {
		tokenService, err := authService.NewTokenService(c.config.JWTSecretKey)
		if err != nil {
			c.initErrors["tokenService"] = fmt.Errorf("failed to create token service: %w", err)
			return
		}
		c.tokenService = tokenService
	})
	if storedErr, exists := c.initErrors["tokenService"]; exists {
		return nil, storedErr
	}
	return c.tokenService, nil
}

// AuthenticationMiddleware returns the gin middleware that guards the API
// routes.
func (c *Container) AuthenticationMiddleware() (gin.HandlerFunc, error) {
	tokenService, err := c.TokenService()
	if err != nil {
		return nil, fmt.Errorf("failed to get token service for authentication middleware: %w", err)
	}
	return authHTTP.AuthenticationMiddleware(tokenService, c.Logger()), nil
}
