package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/avdeev/domainpro/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByUsername(t *testing.T) {
	repo, mock := NewMock(t)

	createdAt := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(`
        SELECT id, username, email, password_hash, role, created_at
        FROM users
        WHERE username = $1
    `)

	tests := []struct {
		name      string
		username  string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:     "User found",
			username: "alice",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "username", "email", "password_hash", "role", "created_at"}).
					AddRow("u-1", "alice", "alice@example.com", "hashed_password", "user", createdAt)
				mock.ExpectQuery(query).
					WithArgs("alice").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.User{
				ID:           "u-1",
				Username:     "alice",
				Email:        "alice@example.com",
				PasswordHash: "hashed_password",
				Role:         "user",
				CreatedAt:    createdAt,
			},
		},
		{
			name:     "User not found",
			username: "nobody",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("nobody").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:     "Database error",
			username: "alice",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("alice").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByUsername(context.Background(), tt.username)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT id, username, email, password_hash, role, created_at
        FROM users
        WHERE email = $1
    `)

	t.Run("User found", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "username", "email", "password_hash", "role", "created_at"}).
			AddRow("u-1", "alice", "alice@example.com", "hashed_password", "user", time.Now())
		mock.ExpectQuery(query).
			WithArgs("alice@example.com").
			WillReturnRows(rows)

		result, err := repo.FindByEmail(context.Background(), "alice@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, "alice", result.Username)
	})

	t.Run("User not found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("nobody@example.com").
			WillReturnError(pgx.ErrNoRows)

		result, err := repo.FindByEmail(context.Background(), "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, result)
	})
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT id, username, email, password_hash, role, created_at
        FROM users
        WHERE id = $1
    `)

	t.Run("User found", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"id", "username", "email", "password_hash", "role", "created_at"}).
			AddRow("u-1", "alice", "alice@example.com", "hashed_password", "user", time.Now())
		mock.ExpectQuery(query).
			WithArgs("u-1").
			WillReturnRows(rows)

		result, err := repo.FindByID(context.Background(), "u-1")
		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, "u-1", result.ID)
	})

	t.Run("User not found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs("missing").
			WillReturnError(pgx.ErrNoRows)

		result, err := repo.FindByID(context.Background(), "missing")
		assert.NoError(t, err)
		assert.Nil(t, result)
	})
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        INSERT INTO users (id, username, email, password_hash, role, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `)

	tests := []struct {
		name      string
		user      *domain.User
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create user successfully",
			user: &domain.User{
				Username:     "alice",
				Email:        "alice@example.com",
				PasswordHash: "hashed_password",
			},
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(pgxmock.AnyArg(), "alice", "alice@example.com", "hashed_password", "user", pgxmock.AnyArg()).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			user: &domain.User{
				Username:     "bob",
				Email:        "bob@example.com",
				PasswordHash: "hashed_password",
			},
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(pgxmock.AnyArg(), "bob", "bob@example.com", "hashed_password", "user", pgxmock.AnyArg()).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.user)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, result.ID)
				assert.Equal(t, "user", result.Role)
			}
		})
	}
}
