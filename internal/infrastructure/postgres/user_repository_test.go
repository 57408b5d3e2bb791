package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storelab/ecommerce-api/internal/domain/entity"
	"github.com/storelab/ecommerce-api/internal/domain/repository"
)

func TestUserRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Jane Doe", "jane@example.com", "hashed").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("user-1", now, now))

	r := NewUserRepository(mock)
	u := &entity.User{FullName: "Jane Doe", Email: "jane@example.com", Password: "hashed"}
	require.NoError(t, r.Create(context.Background(), u))

	assert.Equal(t, "user-1", u.ID)
	assert.Equal(t, now, u.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT id, full_name, email, password, created_at, updated_at`).
		WithArgs("jane@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "full_name", "email", "password", "created_at", "updated_at"}).
			AddRow("user-1", "Jane Doe", "jane@example.com", "hashed", now, now))

	r := NewUserRepository(mock)
	u, err := r.GetByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", u.FullName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(`SELECT id, full_name, email, password, created_at, updated_at`).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	r := NewUserRepository(mock)
	_, err = r.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT id, full_name, email, password, created_at, updated_at`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "full_name", "email", "password", "created_at", "updated_at"}).
			AddRow("u1", "A", "a@example.com", "h1", now, now).
			AddRow("u2", "B", "b@example.com", "h2", now, now))

	r := NewUserRepository(mock)
	users, err := r.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Update_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`UPDATE users`).
		WithArgs("Jane Doe", "jane@example.com", "hashed", pgxmock.AnyArg(), "missing").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	r := NewUserRepository(mock)
	u := &entity.User{ID: "missing", FullName: "Jane Doe", Email: "jane@example.com", Password: "hashed"}
	assert.ErrorIs(t, r.Update(context.Background(), u), repository.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`DELETE FROM users`).
		WithArgs("user-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec(`DELETE FROM users`).
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	r := NewUserRepository(mock)
	require.NoError(t, r.Delete(context.Background(), "user-1"))
	assert.ErrorIs(t, r.Delete(context.Background(), "missing"), repository.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
