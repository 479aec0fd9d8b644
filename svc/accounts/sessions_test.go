package accounts_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qauto/garage/svc/accounts"
)

func newSession(ttl time.Duration) *accounts.Session {
	now := time.Now().UTC().Truncate(time.Second)
	return &accounts.Session{
		Token:     uuid.NewString(),
		AccountID: uuid.New(),
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func TestSessionStores(t *testing.T) {
	t.Parallel()

	stores := map[string]func(t *testing.T) accounts.SessionStore{
		"memory": func(*testing.T) accounts.SessionStore { return accounts.NewMemorySessionStore() },
		"redis": func(t *testing.T) accounts.SessionStore {
			srv := miniredis.RunT(t)
			client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
			t.Cleanup(func() { _ = client.Close() })
			return accounts.NewRedisSessionStore(client, "test:session:")
		},
	}

	for name, build := range stores {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			store := build(t)

			sess := newSession(time.Hour)
			require.NoError(t, store.Create(ctx, sess))

			got, err := store.Get(ctx, sess.Token)
			require.NoError(t, err)
			assert.Equal(t, sess.AccountID, got.AccountID)
			assert.True(t, sess.ExpiresAt.Equal(got.ExpiresAt))

			require.NoError(t, store.Delete(ctx, sess.Token))
			_, err = store.Get(ctx, sess.Token)
			assert.ErrorIs(t, err, accounts.ErrSessionNotFound)

			_, err = store.Get(ctx, "missing")
			assert.ErrorIs(t, err, accounts.ErrSessionNotFound)
			assert.NoError(t, store.Delete(ctx, "missing"))
		})
	}
}

func TestMemorySessionStore_DropsExpired(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := accounts.NewMemorySessionStore()
	sess := newSession(-time.Second)
	require.NoError(t, store.Create(ctx, sess))

	_, err := store.Get(ctx, sess.Token)
	assert.ErrorIs(t, err, accounts.ErrSessionNotFound)
}

func TestRedisSessionStore_TTL(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	store := accounts.NewRedisSessionStore(client, "garage:session:")

	sess := newSession(time.Hour)
	require.NoError(t, store.Create(ctx, sess))
	assert.True(t, srv.Exists("garage:session:"+sess.Token))
	ttl := srv.TTL("garage:session:" + sess.Token)
	assert.InDelta(t, time.Hour.Seconds(), ttl.Seconds(), 5)

	srv.FastForward(2 * time.Hour)
	_, err := store.Get(ctx, sess.Token)
	assert.ErrorIs(t, err, accounts.ErrSessionNotFound)

	assert.ErrorIs(t, store.Create(ctx, newSession(-time.Minute)), accounts.ErrSessionExpired)

	require.NoError(t, srv.Set("garage:session:broken", "{not json"))
	_, err = store.Get(ctx, "broken")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, accounts.ErrSessionNotFound)
}
