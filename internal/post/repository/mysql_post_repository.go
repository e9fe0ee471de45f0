package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	apperrors "github.com/allisson/posts/internal/errors"
	postDomain "github.com/allisson/posts/internal/post/domain"
)

// MySQLPostRepository implements post persistence for MySQL databases.
type MySQLPostRepository struct {
	db *sql.DB
}

// NewMySQLPostRepository creates a new MySQL post repository instance.
func NewMySQLPostRepository(db *sql.DB) *MySQLPostRepository {
	return &MySQLPostRepository{db: db}
}

// Create inserts a new post.
func (r *MySQLPostRepository) Create(ctx context.Context, post *postDomain.Post) error {
	query := `INSERT INTO posts (id, user_id, content, created_at)
			  VALUES (?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, post.ID, post.UserID, post.Content, post.CreatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to create post")
	}
	return nil
}

// ListByOwner retrieves all posts owned by the given user, newest first.
func (r *MySQLPostRepository) ListByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]*postDomain.Post, error) {
	query := `SELECT id, user_id, content, created_at
			  FROM posts
			  WHERE user_id = ?
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list posts by owner")
	}
	defer rows.Close()

	return scanPosts(rows)
}

// GetByIDAndOwner retrieves a single post scoped by id and owner.
func (r *MySQLPostRepository) GetByIDAndOwner(
	ctx context.Context,
	id uuid.UUID,
	ownerID uuid.UUID,
) (*postDomain.Post, error) {
	query := `SELECT id, user_id, content, created_at
			  FROM posts
			  WHERE id = ? AND user_id = ?`

	var post postDomain.Post
	err := r.db.QueryRowContext(ctx, query, id, ownerID).Scan(
		&post.ID,
		&post.UserID,
		&post.Content,
		&post.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, postDomain.ErrPostNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get post by id and owner")
	}

	return &post, nil
}

// UpdateContent replaces a post's content, scoped by id and owner.
// Returns ErrPostNotFound when no row was affected.
func (r *MySQLPostRepository) UpdateContent(
	ctx context.Context,
	id uuid.UUID,
	ownerID uuid.UUID,
	content string,
) error {
	query := `UPDATE posts
			  SET content = ?
			  WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, content, id, ownerID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update post")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read update result")
	}
	if affected == 0 {
		return postDomain.ErrPostNotFound
	}

	return nil
}

// Delete removes a post, scoped by id and owner.
// Returns ErrPostNotFound when no row was affected.
func (r *MySQLPostRepository) Delete(
	ctx context.Context,
	id uuid.UUID,
	ownerID uuid.UUID,
) error {
	query := `DELETE FROM posts
			  WHERE id = ? AND user_id = ?`

	result, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete post")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read delete result")
	}
	if affected == 0 {
		return postDomain.ErrPostNotFound
	}

	return nil
}

// ListByOtherOwners retrieves all posts not owned by the given user, joined
// with the author's email, newest first.
func (r *MySQLPostRepository) ListByOtherOwners(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]*postDomain.FeedEntry, error) {
	query := `SELECT p.id, p.user_id, p.content, p.created_at, u.email
			  FROM posts p
			  INNER JOIN users u ON u.id = p.user_id
			  WHERE p.user_id <> ?
			  ORDER BY p.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list posts by other owners")
	}
	defer rows.Close()

	return scanFeedEntries(rows)
}
