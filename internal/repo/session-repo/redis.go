package sessionrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/likhilliki/ATM-Simulator/internal/domain"
)

const (
	keyPrefix = "atm:session:"
	keyGrace  = time.Second
)

// RedisStore keeps sessions as JSON values whose Redis TTL is the inactivity
// window plus keyGrace, so abandoned sessions vanish without a sweeper while
// the idle check in the service still decides the exact boundary.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl + keyGrace,
	}
}

func key(id string) string {
	return keyPrefix + id
}

func (s *RedisStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	if id == "" {
		return nil, nil
	}
	raw, err := s.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		zap.L().Error("failed to read session", zap.String("sessionID", id), zap.Error(err))
		return nil, err
	}

	var session domain.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("corrupt session %s: %w", id, err)
	}
	return &session, nil
}

func (s *RedisStore) Save(ctx context.Context, session *domain.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, key(session.ID), raw, s.ttl).Err(); err != nil {
		zap.L().Error("failed to save session", zap.String("sessionID", session.ID), zap.Error(err))
		return err
	}
	return nil
}

// Touch rewrites the session with SET XX so a concurrent delete is never undone.
func (s *RedisStore) Touch(ctx context.Context, session *domain.Session) (bool, error) {
	raw, err := json.Marshal(session)
	if err != nil {
		return false, err
	}
	ok, err := s.client.SetXX(ctx, key(session.ID), raw, s.ttl).Result()
	if err != nil {
		zap.L().Error("failed to refresh session", zap.String("sessionID", session.ID), zap.Error(err))
		return false, err
	}
	return ok, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, key(id)).Err(); err != nil {
		zap.L().Error("failed to delete session", zap.String("sessionID", id), zap.Error(err))
		return err
	}
	return nil
}

// DeleteExpired is a no-op: Redis expires keys on its own.
func (s *RedisStore) DeleteExpired(context.Context, time.Time) (int, error) {
	return 0, nil
}
