package accounts

import (
	"context"
	"embed"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/qauto/garage/pkg/pg"
)

// Migrations holds the goose migrations for PostgresStorage.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory inside Migrations.
const MigrationsDir = "migrations"

// DB is the subset of *pgxpool.Pool used by PostgresStorage.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStorage stores accounts in the accounts table.
type PostgresStorage struct {
	db DB
}

func NewPostgresStorage(db DB) *PostgresStorage {
	return &PostgresStorage{db: db}
}

const (
	insertAccountSQL = `INSERT INTO accounts (id, name, last_name, email, password_hash, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`
	selectAccountSQL = `SELECT id, name, last_name, email, password_hash, created_at FROM accounts`
)

func (s *PostgresStorage) CreateAccount(ctx context.Context, acc *Account) error {
	_, err := s.db.Exec(ctx, insertAccountSQL,
		acc.ID, acc.Name, acc.LastName, acc.Email, acc.PasswordHash, acc.CreatedAt,
	)
	if pg.IsDuplicateKeyError(err) {
		return ErrEmailAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

func (s *PostgresStorage) GetAccountByEmail(ctx context.Context, email string) (*Account, error) {
	return s.scan(s.db.QueryRow(ctx, selectAccountSQL+` WHERE email = $1`, email))
}

func (s *PostgresStorage) GetAccountByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	return s.scan(s.db.QueryRow(ctx, selectAccountSQL+` WHERE id = $1`, id))
}

func (s *PostgresStorage) scan(row pgx.Row) (*Account, error) {
	var acc Account
	err := row.Scan(&acc.ID, &acc.Name, &acc.LastName, &acc.Email, &acc.PasswordHash, &acc.CreatedAt)
	if pg.IsNotFoundError(err) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select account: %w", err)
	}
	return &acc, nil
}
