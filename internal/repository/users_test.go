package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type stubRow struct {
	scan func(dest ...any) error
}

func (r stubRow) Scan(dest ...any) error {
	return r.scan(dest...)
}

type stubPool struct {
	queryRow func(ctx context.Context, sql string, args ...any) pgx.Row
	query    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	exec     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	beginTx  func(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

func (p *stubPool) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if p.queryRow != nil {
		return p.queryRow(ctx, sql, args...)
	}
	return stubRow{scan: func(dest ...any) error { return errors.New("not implemented") }}
}

func (p *stubPool) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if p.query != nil {
		return p.query(ctx, sql, args...)
	}
	return nil, errors.New("not implemented")
}

func (p *stubPool) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if p.exec != nil {
		return p.exec(ctx, sql, args...)
	}
	return pgconn.CommandTag{}, errors.New("not implemented")
}

func (p *stubPool) BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
	if p.beginTx != nil {
		return p.beginTx(ctx, txOptions)
	}
	return nil, errors.New("not implemented")
}

func TestPGXUsersRepository_FindByEmailNotFound(t *testing.T) {
	pool := &stubPool{
		queryRow: func(ctx context.Context, sql string, args ...any) pgx.Row {
			return stubRow{scan: func(dest ...any) error { return pgx.ErrNoRows }}
		},
	}
	repo := &PGXUsersRepository{pool: pool}

	_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestPGXUsersRepository_CreateDuplicateEmail(t *testing.T) {
	pool := &stubPool{
		queryRow: func(ctx context.Context, sql string, args ...any) pgx.Row {
			return stubRow{scan: func(dest ...any) error {
				return &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint \"users_email_key\""}
			}}
		},
	}
	repo := &PGXUsersRepository{pool: pool}

	_, err := repo.Create(context.Background(), "taken@example.com", "hash", "owner")
	if !errors.Is(err, ErrEmailDuplicate) {
		t.Fatalf("expected ErrEmailDuplicate, got %v", err)
	}
}

func TestPGXUsersRepository_CreatePassesThroughOtherErrors(t *testing.T) {
	boom := errors.New("connection reset")
	pool := &stubPool{
		queryRow: func(ctx context.Context, sql string, args ...any) pgx.Row {
			return stubRow{scan: func(dest ...any) error { return boom }}
		},
	}
	repo := &PGXUsersRepository{pool: pool}

	_, err := repo.Create(context.Background(), "new@example.com", "hash", "owner")
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}
