package userrepo

import (
	"context"
	"errors"
	"time"

	"github.com/avdeev/domainpro/internal/domain"
	"github.com/avdeev/domainpro/internal/pg"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
        SELECT id, username, email, password_hash, role, created_at
        FROM users
        WHERE username = $1
    `
	return r.findOne(ctx, query, username)
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
        SELECT id, username, email, password_hash, role, created_at
        FROM users
        WHERE email = $1
    `
	return r.findOne(ctx, query, email)
}

func (r *Repository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
        SELECT id, username, email, password_hash, role, created_at
        FROM users
        WHERE id = $1
    `
	return r.findOne(ctx, query, id)
}

func (r *Repository) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	row := r.db.QueryRow(ctx, query, arg)

	var user domain.User
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (id, username, email, password_hash, role, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	if user.Role == "" {
		user.Role = "user"
	}

	_, err := r.db.Exec(ctx, query, user.ID, user.Username, user.Email, user.PasswordHash, user.Role, user.CreatedAt)
	if err != nil {
		zap.L().Error("can't create user", zap.Error(err))
		return nil, err
	}
	return user, nil
}
