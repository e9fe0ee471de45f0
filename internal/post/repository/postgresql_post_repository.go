// Package repository implements post persistence for PostgreSQL and MySQL.
// Every single-post query binds the post id and the owner id in one
// predicate, so a missing post and a post owned by someone else are
// indistinguishable from the result.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	apperrors "github.com/allisson/posts/internal/errors"
	postDomain "github.com/allisson/posts/internal/post/domain"
)

// PostgreSQLPostRepository implements post persistence for PostgreSQL databases.
type PostgreSQLPostRepository struct {
	db *sql.DB
}

// NewPostgreSQLPostRepository creates a new PostgreSQL post repository instance.
func NewPostgreSQLPostRepository(db *sql.DB) *PostgreSQLPostRepository {
	return &PostgreSQLPostRepository{db: db}
}

// Create inserts a new post.
func (r *PostgreSQLPostRepository) Create(ctx context.Context, post *postDomain.Post) error {
	query := `INSERT INTO posts (id, user_id, content, created_at)
			  VALUES ($1, $2, $3, $4)`

	_, err := r.db.ExecContext(ctx, query, post.ID, post.UserID, post.Content, post.CreatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to create post")
	}
	return nil
}

// ListByOwner retrieves all posts owned by the given user, newest first.
func (r *PostgreSQLPostRepository) ListByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]*postDomain.Post, error) {
	query := `SELECT id, user_id, content, created_at
			  FROM posts
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list posts by owner")
	}
	defer rows.Close()

	return scanPosts(rows)
}

// GetByIDAndOwner retrieves a single post scoped by id and owner.
func (r *PostgreSQLPostRepository) GetByIDAndOwner(
	ctx context.Context,
	id uuid.UUID,
	ownerID uuid.UUID,
) (*postDomain.Post, error) {
	query := `SELECT id, user_id, content, created_at
			  FROM posts
			  WHERE id = $1 AND user_id = $2`

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
func (r *PostgreSQLPostRepository) UpdateContent(
	ctx context.Context,
	id uuid.UUID,
	ownerID uuid.UUID,
	content string,
) error {
	query := `UPDATE posts
			  SET content = $1
			  WHERE id = $2 AND user_id = $3`

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
func (r *PostgreSQLPostRepository) Delete(
	ctx context.Context,
	id uuid.UUID,
	ownerID uuid.UUID,
) error {
	query := `DELETE FROM posts
			  WHERE id = $1 AND user_id = $2`

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
// with the author's email, newest first. This is the one intentionally
// cross-tenant query.
func (r *PostgreSQLPostRepository) ListByOtherOwners(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]*postDomain.FeedEntry, error) {
	query := `SELECT p.id, p.user_id, p.content, p.created_at, u.email
			  FROM posts p
			  INNER JOIN users u ON u.id = p.user_id
			  WHERE p.user_id <> $1
			  ORDER BY p.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list posts by other owners")
	}
	defer rows.Close()

	return scanFeedEntries(rows)
}

// scanPosts reads all post rows from a result set.
func scanPosts(rows *sql.Rows) ([]*postDomain.Post, error) {
	posts := []*postDomain.Post{}
	for rows.Next() {
		var post postDomain.Post
		if err := rows.Scan(&post.ID, &post.UserID, &post.Content, &post.CreatedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan post row")
		}
		posts = append(posts, &post)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate post rows")
	}
	return posts, nil
}

// scanFeedEntries reads all feed rows from a result set.
func scanFeedEntries(rows *sql.Rows) ([]*postDomain.FeedEntry, error) {
	entries := []*postDomain.FeedEntry{}
	for rows.Next() {
		var entry postDomain.FeedEntry
		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Content,
			&entry.CreatedAt,
			&entry.AuthorEmail,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan feed row")
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate feed rows")
	}
	return entries, nil
}
