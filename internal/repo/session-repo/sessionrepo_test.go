package sessionrepo

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/likhilliki/ATM-Simulator/internal/domain"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	got, err := store.Get(ctx, "missing")
	assert.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, store.Save(ctx, &domain.Session{ID: "old", LastActive: now.Add(-3 * time.Minute)}))
	require.NoError(t, store.Save(ctx, &domain.Session{ID: "fresh", UserID: 1, Authenticated: true, LastActive: now}))

	got, err = store.Get(ctx, "fresh")
	require.NoError(t, err)
	assert.Equal(t, 1, got.UserID)

	got.UserID = 5
	again, _ := store.Get(ctx, "fresh")
	assert.Equal(t, 1, again.UserID)

	removed, err := store.DeleteExpired(ctx, now.Add(-2*time.Minute))
	assert.NoError(t, err)
	assert.Equal(t, 1, removed)

	got, _ = store.Get(ctx, "old")
	assert.Nil(t, got)

	require.NoError(t, store.Delete(ctx, "fresh"))
	require.NoError(t, store.Delete(ctx, "fresh"))
	got, _ = store.Get(ctx, "fresh")
	assert.Nil(t, got)
}

func TestMemoryStore_Touch(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	ok, err := store.Touch(ctx, &domain.Session{ID: "gone", Authenticated: true, LastActive: now})
	require.NoError(t, err)
	assert.False(t, ok)
	got, _ := store.Get(ctx, "gone")
	assert.Nil(t, got, "touch must not create a session")

	require.NoError(t, store.Save(ctx, &domain.Session{ID: "live", Authenticated: true, LastActive: now}))
	ok, err = store.Touch(ctx, &domain.Session{ID: "live", Authenticated: true, LastActive: now.Add(time.Minute)})
	require.NoError(t, err)
	assert.True(t, ok)
	got, _ = store.Get(ctx, "live")
	assert.True(t, got.LastActive.Equal(now.Add(time.Minute)))
}

func setupRedis(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, ttl), mr
}

func TestRedisStore_SaveGet(t *testing.T) {
	ctx := context.Background()
	store, mr := setupRedis(t, 2*time.Minute)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	session := &domain.Session{ID: "abc", CardNumber: "4111111111111234", UserID: 1, Authenticated: true, LastActive: now}
	require.NoError(t, store.Save(ctx, session))

	assert.True(t, mr.Exists("atm:session:abc"))
	assert.Equal(t, 2*time.Minute+time.Second, mr.TTL("atm:session:abc"))

	got, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, session.CardNumber, got.CardNumber)
	assert.True(t, got.Authenticated)
	assert.True(t, got.LastActive.Equal(now))
}

func TestRedisStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store, mr := setupRedis(t, 2*time.Minute)

	require.NoError(t, store.Save(ctx, &domain.Session{ID: "abc", LastActive: time.Now()}))
	mr.FastForward(2*time.Minute + time.Second)

	got, err := store.Get(ctx, "abc")
	assert.NoError(t, err)
	assert.Nil(t, got)

	removed, err := store.DeleteExpired(ctx, time.Now())
	assert.NoError(t, err)
	assert.Zero(t, removed)
}

func TestRedisStore_Delete(t *testing.T) {
	ctx := context.Background()
	store, mr := setupRedis(t, time.Minute)

	require.NoError(t, store.Save(ctx, &domain.Session{ID: "abc"}))
	require.NoError(t, store.Delete(ctx, "abc"))
	assert.False(t, mr.Exists("atm:session:abc"))

	got, err := store.Get(ctx, "")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStore_Touch(t *testing.T) {
	ctx := context.Background()
	store, mr := setupRedis(t, 2*time.Minute)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	ok, err := store.Touch(ctx, &domain.Session{ID: "gone", Authenticated: true, LastActive: now})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, mr.Exists("atm:session:gone"))

	require.NoError(t, store.Save(ctx, &domain.Session{ID: "abc", Authenticated: true, LastActive: now}))
	mr.FastForward(time.Minute)

	ok, err = store.Touch(ctx, &domain.Session{ID: "abc", Authenticated: true, LastActive: now.Add(time.Minute)})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2*time.Minute+time.Second, mr.TTL("atm:session:abc"))

	got, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, got.LastActive.Equal(now.Add(time.Minute)))
}

func TestRedisStore_Corrupt(t *testing.T) {
	ctx := context.Background()
	store, mr := setupRedis(t, time.Minute)

	require.NoError(t, mr.Set("atm:session:bad", "{not json"))
	_, err := store.Get(ctx, "bad")
	assert.Error(t, err)
}

func TestRedisStore_Unavailable(t *testing.T) {
	ctx := context.Background()
	store, mr := setupRedis(t, time.Minute)
	mr.Close()

	_, err := store.Get(ctx, "abc")
	assert.Error(t, err)
	assert.Error(t, store.Save(ctx, &domain.Session{ID: "abc"}))
	_, err = store.Touch(ctx, &domain.Session{ID: "abc"})
	assert.Error(t, err)
}
