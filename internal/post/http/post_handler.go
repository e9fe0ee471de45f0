// Package http provides HTTP handlers for post operations.
// Every operation runs behind the authentication middleware and scopes its
// store access by the verified caller's identity.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/allisson/posts/internal/auth/http"
	apperrors "github.com/allisson/posts/internal/errors"
	"github.com/allisson/posts/internal/httputil"
	"github.com/allisson/posts/internal/post/http/dto"
	postUseCase "github.com/allisson/posts/internal/post/usecase"
	customValidation "github.com/allisson/posts/internal/validation"
)

// PostHandler handles HTTP requests for post operations.
type PostHandler struct {
	postUseCase postUseCase.PostUseCase
	logger      *slog.Logger
}

// NewPostHandler creates a new post handler with required dependencies.
func NewPostHandler(useCase postUseCase.PostUseCase, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: useCase,
		logger:      logger,
	}
}

// callerID extracts the verified caller's user id from the request context.
// A missing identity means the route was mounted without the authentication
// middleware; an unparseable one means the token carried a bogus subject.
// Both abort the request.
func (h *PostHandler) callerID(c *gin.Context) (uuid.UUID, bool) {
	identity, ok := authHTTP.GetIdentity(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, "", h.logger)
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(identity.UserID)
	if err != nil {
		httputil.HandleErrorGin(
			c,
			apperrors.Wrap(apperrors.ErrInvalidCredential, "malformed user id in token"),
			"",
			h.logger,
		)
		return uuid.Nil, false
	}

	return userID, true
}

// CreateHandler creates a new post owned by the caller.
// POST /v1/posts
// Returns 200 OK with the stored post.
func (h *PostHandler) CreateHandler(c *gin.Context) {
	ownerID, ok := h.callerID(c)
	if !ok {
		return
	}

	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	post, err := h.postUseCase.Create(c.Request.Context(), ownerID, req.Content)
	if err != nil {
		httputil.HandleErrorGin(c, err, "failed to add post", h.logger)
		return
	}

	response := dto.MapPostToResponse(post)
	c.JSON(http.StatusOK, dto.PostEnvelope{Success: true, Post: &response})
}

// ListHandler returns the caller's own posts, newest first.
// GET /v1/posts
func (h *PostHandler) ListHandler(c *gin.Context) {
	ownerID, ok := h.callerID(c)
	if !ok {
		return
	}

	posts, err := h.postUseCase.ListOwn(c.Request.Context(), ownerID)
	if err != nil {
		httputil.HandleErrorGin(c, err, "failed to fetch posts", h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.PostListEnvelope{
		Success: true,
		Posts:   dto.MapPostsToResponse(posts),
	})
}

// GetHandler returns one of the caller's posts by id.
// GET /v1/posts/:id
// A post that does not exist or belongs to someone else yields the same
// 200 response with post:null.
func (h *PostHandler) GetHandler(c *gin.Context) {
	ownerID, ok := h.callerID(c)
	if !ok {
		return
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(
			c,
			apperrors.Wrap(apperrors.ErrInvalidInput, "invalid post id"),
			h.logger,
		)
		return
	}

	post, err := h.postUseCase.Get(c.Request.Context(), postID, ownerID)
	if err != nil {
		httputil.HandleErrorGin(c, err, "failed to fetch posts", h.logger)
		return
	}

	envelope := dto.PostEnvelope{Success: true}
	if post != nil {
		response := dto.MapPostToResponse(post)
		envelope.Post = &response
	}
	c.JSON(http.StatusOK, envelope)
}

// UpdateHandler replaces the content of one of the caller's posts.
// PUT /v1/posts/:id
// Returns 200 OK with a confirmation; the caller cannot tell a missing post
// from one owned by someone else.
func (h *PostHandler) UpdateHandler(c *gin.Context) {
	ownerID, ok := h.callerID(c)
	if !ok {
		return
	}

	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// An unparseable id matches nothing, same as a nonexistent one.
		httputil.HandleMutationFailureGin(c, apperrors.ErrNotFound, "post update failed", h.logger)
		return
	}

	if err := h.postUseCase.Update(c.Request.Context(), postID, ownerID, req.Content); err != nil {
		httputil.HandleMutationFailureGin(c, err, "post update failed", h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ConfirmationEnvelope{
		Success: true,
		Message: "post updated successfully",
	})
}

// DeleteHandler removes one of the caller's posts.
// DELETE /v1/posts/:id
func (h *PostHandler) DeleteHandler(c *gin.Context) {
	ownerID, ok := h.callerID(c)
	if !ok {
		return
	}

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleMutationFailureGin(c, apperrors.ErrNotFound, "post deletion failed", h.logger)
		return
	}

	if err := h.postUseCase.Delete(c.Request.Context(), postID, ownerID); err != nil {
		httputil.HandleMutationFailureGin(c, err, "post deletion failed", h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ConfirmationEnvelope{
		Success: true,
		Message: "post deleted successfully",
	})
}

// FeedHandler returns every post not owned by the caller, newest first,
// each with its author's email.
// GET /v1/posts/feed
func (h *PostHandler) FeedHandler(c *gin.Context) {
	ownerID, ok := h.callerID(c)
	if !ok {
		return
	}

	entries, err := h.postUseCase.ListOthers(c.Request.Context(), ownerID)
	if err != nil {
		httputil.HandleErrorGin(c, err, "failed to fetch posts", h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.FeedEnvelope{
		Success: true,
		Posts:   dto.MapFeedEntriesToResponse(entries),
	})
}
