// Package domain defines the core post domain entities and types.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/posts/internal/errors"
)

// Post represents a user-owned piece of content.
// Every post has exactly one owner, assigned at creation and immutable
// afterwards. Owner-scoped operations are visible only to the owner; the
// feed is visible only to non-owners.
type Post struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Content   string
	CreatedAt time.Time
}

// FeedEntry is a post joined with its author's public contact handle,
// as returned by the cross-tenant feed listing.
type FeedEntry struct {
	Post
	AuthorEmail string
}

// Domain-specific errors for post operations.
var (
	// ErrPostNotFound indicates the scoped query matched no post. A post
	// that exists but belongs to another owner produces the same error,
	// so callers cannot probe for other users' resources.
	ErrPostNotFound = errors.Wrap(errors.ErrNotFound, "post not found")
)
