// Package httputil provides the response envelope and error translation
// shared by all HTTP handlers.
package httputil

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/posts/internal/errors"
)

// FailureResponse represents a failed operation envelope.
// Every response carries a success flag; failures add a human-readable
// message and, for resource mutations, an error label with a short detail.
type FailureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Details string `json:"details,omitempty"`
}

// HandleErrorGin maps domain errors to HTTP status codes and writes a failure
// envelope. Internal error details are logged, never sent to the caller.
func HandleErrorGin(c *gin.Context, err error, fallbackMessage string, logger *slog.Logger) {
	if err == nil {
		return
	}

	var statusCode int
	var response FailureResponse

	switch {
	case apperrors.Is(err, apperrors.ErrUnauthorized):
		statusCode = http.StatusUnauthorized
		response = FailureResponse{
			Message: "unauthorized, please login first",
		}

	case apperrors.Is(err, apperrors.ErrInvalidCredential):
		statusCode = http.StatusForbidden
		response = FailureResponse{
			Message: "invalid credential, please login",
		}

	case apperrors.Is(err, apperrors.ErrInvalidInput):
		statusCode = http.StatusUnprocessableEntity
		response = FailureResponse{
			Message: err.Error(),
		}

	default:
		// Store and collaborator failures surface as the operation's
		// generic message only.
		statusCode = http.StatusInternalServerError
		response = FailureResponse{
			Message: fallbackMessage,
		}
	}

	if logger != nil {
		logger.Error("request failed",
			slog.Int("status_code", statusCode),
			slog.String("path", c.Request.URL.Path),
			slog.Any("error", err),
		)
	}

	c.JSON(statusCode, response)
}

// HandleMutationFailureGin writes a 400 failure envelope for update/delete
// operations. The label names the failed operation; the detail stays generic
// so a caller cannot distinguish a missing post from a post owned by someone
// else, and never carries raw store errors.
func HandleMutationFailureGin(c *gin.Context, err error, label string, logger *slog.Logger) {
	details := "internal error"
	if apperrors.Is(err, apperrors.ErrNotFound) {
		details = "post not found"
	}

	if logger != nil {
		logger.Error("mutation failed",
			slog.String("operation", label),
			slog.String("path", c.Request.URL.Path),
			slog.Any("error", err),
		)
	}

	c.JSON(http.StatusBadRequest, FailureResponse{
		Error:   label,
		Details: details,
	})
}

// HandleValidationErrorGin writes a 422 failure envelope for validation errors.
func HandleValidationErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("validation failed", slog.Any("error", err))
	}

	c.JSON(http.StatusUnprocessableEntity, FailureResponse{
		Message: err.Error(),
	})
}

// MakeJSONResponse writes a JSON response with the given status code using
// the standard library. Used by handlers that run outside the Gin engine.
func MakeJSONResponse(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}
