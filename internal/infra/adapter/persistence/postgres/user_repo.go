// Package postgres implements the repository interfaces against PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/2003aryan/crisp-ai/internal/domain/entity"
	"github.com/2003aryan/crisp-ai/internal/repository"
)

// uniqueViolation is the Postgres error code for a unique constraint breach.
const uniqueViolation = "23505"

type UserRepo struct{ db *sql.DB }

func NewUserRepo(db *sql.DB) repository.UserRepository {
	return &UserRepo{db: db}
}

func (repo *UserRepo) Create(ctx context.Context, user *entity.User) error {
	const query = `
INSERT INTO users (username, password_hash, display_name)
VALUES ($1, $2, $3)
RETURNING id, created_at`
	err := repo.db.QueryRowContext(ctx, query,
		user.Username, user.PasswordHash, user.DisplayName,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("Create: %w", entity.ErrDuplicateUsername)
		}
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	const query = `
SELECT id, username, password_hash, display_name, created_at
FROM users
WHERE username = $1
LIMIT 1`
	var user entity.User
	err := repo.db.QueryRowContext(ctx, query, username).Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.DisplayName, &user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByUsername: %w", err)
	}
	return &user, nil
}
