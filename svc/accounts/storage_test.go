package accounts_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/qauto/garage/svc/accounts"
)

func newAccount(email string) *accounts.Account {
	return &accounts.Account{
		ID:           uuid.New(),
		Name:         "Li",
		LastName:     "Wu",
		Email:        email,
		PasswordHash: []byte("hash"),
		CreatedAt:    time.Now().UTC(),
	}
}

func TestMemoryStorage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := accounts.NewMemoryStorage()
	acc := newAccount("li@gmail.com")

	require.NoError(t, store.CreateAccount(ctx, acc))
	assert.ErrorIs(t, store.CreateAccount(ctx, newAccount("li@gmail.com")), accounts.ErrEmailAlreadyExists)

	byEmail, err := store.GetAccountByEmail(ctx, "li@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, acc.ID, byEmail.ID)

	byEmail.Name = "mutated"
	byID, err := store.GetAccountByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, "Li", byID.Name, "returned accounts are copies")

	_, err = store.GetAccountByEmail(ctx, "nobody@gmail.com")
	assert.ErrorIs(t, err, accounts.ErrAccountNotFound)
	_, err = store.GetAccountByID(ctx, uuid.New())
	assert.ErrorIs(t, err, accounts.ErrAccountNotFound)
}

type MockDB struct {
	mock.Mock
}

func (m *MockDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	called := m.Called(ctx, sql, args)
	return pgconn.NewCommandTag("INSERT 0 1"), called.Error(0)
}

func (m *MockDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	called := m.Called(ctx, sql, args)
	return called.Get(0).(pgx.Row)
}

type rowFunc func(dest ...any) error

func (f rowFunc) Scan(dest ...any) error { return f(dest...) }

func TestPostgresStorage_CreateAccount(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	acc := newAccount("li@gmail.com")

	t.Run("inserts", func(t *testing.T) {
		t.Parallel()
		db := &MockDB{}
		db.On("Exec", ctx, mock.MatchedBy(func(sql string) bool { return len(sql) > 0 }), mock.Anything).
			Return(nil).Once()
		require.NoError(t, accounts.NewPostgresStorage(db).CreateAccount(ctx, acc))
		db.AssertExpectations(t)
	})

	t.Run("unique violation maps to duplicate", func(t *testing.T) {
		t.Parallel()
		db := &MockDB{}
		db.On("Exec", ctx, mock.Anything, mock.Anything).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "accounts_email_key"}).Once()
		err := accounts.NewPostgresStorage(db).CreateAccount(ctx, acc)
		assert.ErrorIs(t, err, accounts.ErrEmailAlreadyExists)
	})

	t.Run("other errors are wrapped", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("connection reset")
		db := &MockDB{}
		db.On("Exec", ctx, mock.Anything, mock.Anything).Return(boom).Once()
		err := accounts.NewPostgresStorage(db).CreateAccount(ctx, acc)
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, accounts.ErrEmailAlreadyExists)
	})
}

func TestPostgresStorage_Get(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	want := newAccount("li@gmail.com")

	found := rowFunc(func(dest ...any) error {
		*dest[0].(*uuid.UUID) = want.ID
		*dest[1].(*string) = want.Name
		*dest[2].(*string) = want.LastName
		*dest[3].(*string) = want.Email
		*dest[4].(*[]byte) = want.PasswordHash
		*dest[5].(*time.Time) = want.CreatedAt
		return nil
	})
	missing := rowFunc(func(...any) error { return pgx.ErrNoRows })

	db := &MockDB{}
	db.On("QueryRow", ctx, mock.Anything, []any{"li@gmail.com"}).Return(found)
	db.On("QueryRow", ctx, mock.Anything, []any{"nobody@gmail.com"}).Return(missing)
	db.On("QueryRow", ctx, mock.Anything, []any{want.ID}).Return(found)
	store := accounts.NewPostgresStorage(db)

	got, err := store.GetAccountByEmail(ctx, "li@gmail.com")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = store.GetAccountByID(ctx, want.ID)
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)

	_, err = store.GetAccountByEmail(ctx, "nobody@gmail.com")
	assert.ErrorIs(t, err, accounts.ErrAccountNotFound)
}

func TestMigrationsEmbedded(t *testing.T) {
	t.Parallel()

	entries, err := accounts.Migrations.ReadDir(accounts.MigrationsDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	data, err := accounts.Migrations.ReadFile(accounts.MigrationsDir + "/" + entries[0].Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), "-- +goose Up")
	assert.Contains(t, string(data), "UNIQUE (email)")
}
