// Package http provides the HTTP handler for the grammar check passthrough.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/allisson/posts/internal/auth/http"
	apperrors "github.com/allisson/posts/internal/errors"
	"github.com/allisson/posts/internal/grammar/http/dto"
	grammarUseCase "github.com/allisson/posts/internal/grammar/usecase"
	"github.com/allisson/posts/internal/httputil"
	customValidation "github.com/allisson/posts/internal/validation"
)

// GrammarHandler handles HTTP requests for grammar correction.
type GrammarHandler struct {
	grammarUseCase grammarUseCase.GrammarUseCase
	logger         *slog.Logger
}

// NewGrammarHandler creates a new grammar handler with required dependencies.
func NewGrammarHandler(useCase grammarUseCase.GrammarUseCase, logger *slog.Logger) *GrammarHandler {
	return &GrammarHandler{
		grammarUseCase: useCase,
		logger:         logger,
	}
}

// CheckHandler sends the request content to the collaborator and returns the
// corrected text. The identity only gates access; nothing about the caller is
// forwarded.
// POST /v1/grammar/check
func (h *GrammarHandler) CheckHandler(c *gin.Context) {
	if _, ok := authHTTP.GetIdentity(c.Request.Context()); !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, "", h.logger)
		return
	}

	var req dto.CheckGrammarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	corrected, err := h.grammarUseCase.Check(c.Request.Context(), req.Content)
	if err != nil {
		httputil.HandleErrorGin(c, err, "failed to check grammar", h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.CheckGrammarEnvelope{
		Success:   true,
		Message:   "grammar corrected",
		Corrected: corrected,
	})
}
