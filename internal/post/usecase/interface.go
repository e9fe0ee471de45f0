// Package usecase implements business logic for post operations.
// Every operation requires a verified caller identity and scopes its single
// store call by the caller's owner id.
package usecase

import (
	"context"

	"github.com/google/uuid"

	postDomain "github.com/allisson/posts/internal/post/domain"
)

// PostRepository is the abstract store contract for posts.
// Single-post operations receive both the post id and the owner id and must
// bind them in one predicate; they report zero matches as ErrPostNotFound.
type PostRepository interface {
	Create(ctx context.Context, post *postDomain.Post) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*postDomain.Post, error)
	GetByIDAndOwner(ctx context.Context, id, ownerID uuid.UUID) (*postDomain.Post, error)
	UpdateContent(ctx context.Context, id, ownerID uuid.UUID, content string) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
	ListByOtherOwners(ctx context.Context, ownerID uuid.UUID) ([]*postDomain.FeedEntry, error)
}

// PostUseCase defines the owner-scoped post operations.
type PostUseCase interface {
	// Create inserts a new post owned by the caller.
	Create(ctx context.Context, ownerID uuid.UUID, content string) (*postDomain.Post, error)

	// ListOwn returns the caller's posts, newest first.
	ListOwn(ctx context.Context, ownerID uuid.UUID) ([]*postDomain.Post, error)

	// Get returns the post with the given id if the caller owns it, or
	// (nil, nil) when it does not exist or belongs to someone else.
	Get(ctx context.Context, id, ownerID uuid.UUID) (*postDomain.Post, error)

	// Update replaces the content of a post the caller owns.
	Update(ctx context.Context, id, ownerID uuid.UUID, content string) error

	// Delete removes a post the caller owns.
	Delete(ctx context.Context, id, ownerID uuid.UUID) error

	// ListOthers returns all posts not owned by the caller, newest first,
	// each joined with the author's email.
	ListOthers(ctx context.Context, ownerID uuid.UUID) ([]*postDomain.FeedEntry, error)
}
