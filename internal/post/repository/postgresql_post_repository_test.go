package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/posts/internal/errors"
	postDomain "github.com/allisson/posts/internal/post/domain"
)

var postColumns = []string{"id", "user_id", "content", "created_at"}

func newPostgreSQLMock(t *testing.T) (*PostgreSQLPostRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewPostgreSQLPostRepository(db), mock
}

func TestPostgreSQLPostRepository_Create(t *testing.T) {
	repo, mock := newPostgreSQLMock(t)

	post := &postDomain.Post{
		ID:        uuid.Must(uuid.NewV7()),
		UserID:    uuid.Must(uuid.NewV7()),
		Content:   "hello",
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec(`INSERT INTO posts \(id, user_id, content, created_at\)`).
		WithArgs(post.ID, post.UserID, post.Content, post.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), post)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLPostRepository_Create_StoreError(t *testing.T) {
	repo, mock := newPostgreSQLMock(t)

	post := &postDomain.Post{
		ID:        uuid.Must(uuid.NewV7()),
		UserID:    uuid.Must(uuid.NewV7()),
		Content:   "hello",
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec(`INSERT INTO posts`).
		WithArgs(post.ID, post.UserID, post.Content, post.CreatedAt).
		WillReturnError(apperrors.New("connection refused"))

	err := repo.Create(context.Background(), post)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPostgreSQLPostRepository_ListByOwner(t *testing.T) {
	repo, mock := newPostgreSQLMock(t)

	ownerID := uuid.Must(uuid.NewV7())
	newer := uuid.Must(uuid.NewV7())
	older := uuid.Must(uuid.NewV7())
	now := time.Now().UTC()

	rows := sqlmock.NewRows(postColumns).
		AddRow(newer.String(), ownerID.String(), "second", now).
		AddRow(older.String(), ownerID.String(), "first", now.Add(-time.Hour))

	mock.ExpectQuery(`SELECT id, user_id, content, created_at FROM posts WHERE user_id = \$1 ORDER BY created_at DESC`).
		WithArgs(ownerID).
		WillReturnRows(rows)

	posts, err := repo.ListByOwner(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "second", posts[0].Content)
	assert.Equal(t, "first", posts[1].Content)
	for _, post := range posts {
		assert.Equal(t, ownerID, post.UserID)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLPostRepository_ListByOwner_Empty(t *testing.T) {
	repo, mock := newPostgreSQLMock(t)

	ownerID := uuid.Must(uuid.NewV7())

	mock.ExpectQuery(`FROM posts WHERE user_id = \$1`).
		WithArgs(ownerID).
		WillReturnRows(sqlmock.NewRows(postColumns))

	posts, err := repo.ListByOwner(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.NotNil(t, posts)
}

func TestPostgreSQLPostRepository_GetByIDAndOwner(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newPostgreSQLMock(t)

		postID := uuid.Must(uuid.NewV7())
		ownerID := uuid.Must(uuid.NewV7())
		now := time.Now().UTC()

		rows := sqlmock.NewRows(postColumns).
			AddRow(postID.String(), ownerID.String(), "hello", now)

		mock.ExpectQuery(`WHERE id = \$1 AND user_id = \$2`).
			WithArgs(postID, ownerID).
			WillReturnRows(rows)

		post, err := repo.GetByIDAndOwner(context.Background(), postID, ownerID)
		require.NoError(t, err)
		assert.Equal(t, postID, post.ID)
		assert.Equal(t, ownerID, post.UserID)
		assert.Equal(t, "hello", post.Content)
	})

	t.Run("zero rows yields not found", func(t *testing.T) {
		repo, mock := newPostgreSQLMock(t)

		postID := uuid.Must(uuid.NewV7())
		ownerID := uuid.Must(uuid.NewV7())

		mock.ExpectQuery(`WHERE id = \$1 AND user_id = \$2`).
			WithArgs(postID, ownerID).
			WillReturnRows(sqlmock.NewRows(postColumns))

		post, err := repo.GetByIDAndOwner(context.Background(), postID, ownerID)
		assert.Nil(t, post)
		assert.ErrorIs(t, err, postDomain.ErrPostNotFound)
	})
}

func TestPostgreSQLPostRepository_UpdateContent(t *testing.T) {
	t.Run("one row affected", func(t *testing.T) {
		repo, mock := newPostgreSQLMock(t)

		postID := uuid.Must(uuid.NewV7())
		ownerID := uuid.Must(uuid.NewV7())

		mock.ExpectExec(`UPDATE posts SET content = \$1 WHERE id = \$2 AND user_id = \$3`).
			WithArgs("updated", postID, ownerID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateContent(context.Background(), postID, ownerID, "updated")
		assert.NoError(t, err)
	})

	t.Run("zero rows affected yields not found", func(t *testing.T) {
		repo, mock := newPostgreSQLMock(t)

		postID := uuid.Must(uuid.NewV7())
		ownerID := uuid.Must(uuid.NewV7())

		mock.ExpectExec(`UPDATE posts SET content = \$1 WHERE id = \$2 AND user_id = \$3`).
			WithArgs("updated", postID, ownerID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateContent(context.Background(), postID, ownerID, "updated")
		assert.ErrorIs(t, err, postDomain.ErrPostNotFound)
	})
}

func TestPostgreSQLPostRepository_Delete(t *testing.T) {
	t.Run("one row affected", func(t *testing.T) {
		repo, mock := newPostgreSQLMock(t)

		postID := uuid.Must(uuid.NewV7())
		ownerID := uuid.Must(uuid.NewV7())

		mock.ExpectExec(`DELETE FROM posts WHERE id = \$1 AND user_id = \$2`).
			WithArgs(postID, ownerID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), postID, ownerID)
		assert.NoError(t, err)
	})

	t.Run("zero rows affected yields not found", func(t *testing.T) {
		repo, mock := newPostgreSQLMock(t)

		postID := uuid.Must(uuid.NewV7())
		ownerID := uuid.Must(uuid.NewV7())

		mock.ExpectExec(`DELETE FROM posts WHERE id = \$1 AND user_id = \$2`).
			WithArgs(postID, ownerID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), postID, ownerID)
		assert.ErrorIs(t, err, postDomain.ErrPostNotFound)
	})
}

func TestPostgreSQLPostRepository_ListByOtherOwners(t *testing.T) {
	repo, mock := newPostgreSQLMock(t)

	callerID := uuid.Must(uuid.NewV7())
	otherID := uuid.Must(uuid.NewV7())
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "user_id", "content", "created_at", "email"}).
		AddRow(uuid.Must(uuid.NewV7()).String(), otherID.String(), "their post", now, "other@example.com")

	mock.ExpectQuery(`INNER JOIN users u ON u.id = p.user_id WHERE p.user_id <> \$1 ORDER BY p.created_at DESC`).
		WithArgs(callerID).
		WillReturnRows(rows)

	entries, err := repo.ListByOtherOwners(context.Background(), callerID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, otherID, entries[0].UserID)
	assert.Equal(t, "their post", entries[0].Content)
	assert.Equal(t, "other@example.com", entries[0].AuthorEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLPostRepository_ListByOtherOwners_StoreError(t *testing.T) {
	repo, mock := newPostgreSQLMock(t)

	callerID := uuid.Must(uuid.NewV7())

	mock.ExpectQuery(`WHERE p.user_id <> \$1`).
		WithArgs(callerID).
		WillReturnError(apperrors.New("connection refused"))

	entries, err := repo.ListByOtherOwners(context.Background(), callerID)
	assert.Nil(t, entries)
	assert.Error(t, err)
}
