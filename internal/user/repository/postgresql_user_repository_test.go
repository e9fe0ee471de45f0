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
	"github.com/allisson/posts/internal/user/domain"
)

var userColumns = []string{"id", "email", "created_at"}

func newPostgreSQLMock(t *testing.T) (*PostgreSQLUserRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewPostgreSQLUserRepository(db), mock
}

func TestPostgreSQLUserRepository_Create(t *testing.T) {
	t.Run("inserts user", func(t *testing.T) {
		repo, mock := newPostgreSQLMock(t)

		user := &domain.User{
			ID:        uuid.Must(uuid.NewV7()),
			Email:     "alice@example.com",
			CreatedAt: time.Now().UTC(),
		}

		mock.ExpectExec(`INSERT INTO users \(id, email, created_at\)`).
			WithArgs(user.ID, user.Email, user.CreatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(context.Background(), user)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email maps to conflict", func(t *testing.T) {
		repo, mock := newPostgreSQLMock(t)

		user := &domain.User{
			ID:        uuid.Must(uuid.NewV7()),
			Email:     "alice@example.com",
			CreatedAt: time.Now().UTC(),
		}

		mock.ExpectExec(`INSERT INTO users`).
			WithArgs(user.ID, user.Email, user.CreatedAt).
			WillReturnError(apperrors.New(`pq: duplicate key value violates unique constraint "users_email_key"`))

		err := repo.Create(context.Background(), user)
		assert.ErrorIs(t, err, domain.ErrUserAlreadyExists)
	})
}

func TestPostgreSQLUserRepository_GetByEmail(t *testing.T) {
	t.Run("returns user", func(t *testing.T) {
		repo, mock := newPostgreSQLMock(t)

		userID := uuid.Must(uuid.NewV7())
		createdAt := time.Now().UTC()

		mock.ExpectQuery(`SELECT id, email, created_at FROM users WHERE email = \$1`).
			WithArgs("alice@example.com").
			WillReturnRows(sqlmock.NewRows(userColumns).AddRow(userID, "alice@example.com", createdAt))

		user, err := repo.GetByEmail(context.Background(), "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
		assert.Equal(t, "alice@example.com", user.Email)
	})

	t.Run("missing user maps to not found", func(t *testing.T) {
		repo, mock := newPostgreSQLMock(t)

		mock.ExpectQuery(`SELECT id, email, created_at FROM users WHERE email = \$1`).
			WithArgs("ghost@example.com").
			WillReturnRows(sqlmock.NewRows(userColumns))

		user, err := repo.GetByEmail(context.Background(), "ghost@example.com")
		assert.Nil(t, user)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
