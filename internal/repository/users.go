package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/octobees/futsal-booking/api/internal/entity"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup criteria.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailDuplicate is returned when the email is already registered.
	ErrEmailDuplicate = errors.New("email already exists")
)

// UsersRepository declares the user operations the auth flow needs.
type UsersRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, email, passwordHash, role string) (*entity.User, error)
}

// PGXUsersRepository implements UsersRepository with pgx.
type PGXUsersRepository struct {
	pool pgxPool
}

// NewPGXUsersRepository instantiates a users repository.
func NewPGXUsersRepository(pool *pgxpool.Pool) *PGXUsersRepository {
	return &PGXUsersRepository{pool: pool}
}

// FindByEmail fetches a user by email if present.
func (r *PGXUsersRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT id, email, password_hash, role, created_at, updated_at FROM users WHERE email = $1`, email)

	var user entity.User
	if err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt, &user.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("query user by email: %w", err)
	}

	return &user, nil
}

// Create inserts a new user row.
func (r *PGXUsersRepository) Create(ctx context.Context, email, passwordHash, role string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
        INSERT INTO users (email, password_hash, role)
        VALUES ($1, $2, $3)
        RETURNING id, email, password_hash, role, created_at, updated_at
    `, email, passwordHash, role)

	var user entity.User
	if err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt, &user.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && strings.Contains(pgErr.Message, "users_email_key") {
			return nil, fmt.Errorf("%w: %v", ErrEmailDuplicate, pgErr)
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return &user, nil
}
