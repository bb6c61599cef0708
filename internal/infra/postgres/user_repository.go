package postgres

import (
	"context"
	"errors"

	"quizhub-service/internal/domain"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// UserRepository stores credentials in Postgres.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Insert(ctx context.Context, user domain.User) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO users (username, password_hash) VALUES ($1, $2)`,
		user.Username, user.PasswordHash)
	if err != nil {
		return mapWriteErr(err, domain.ErrDuplicateUsername)
	}
	return nil
}

func (r *UserRepository) Get(ctx context.Context, username string) (domain.User, error) {
	var user domain.User
	err := r.pool.QueryRow(ctx,
		`SELECT username, password_hash FROM users WHERE username = $1`,
		username).Scan(&user.Username, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, storeErr(err)
	}
	return user, nil
}
