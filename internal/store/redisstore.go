package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"jungle/internal/config"
	"jungle/internal/room"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const opTimeout = 3 * time.Second

// RedisStore keeps every room as a JSON record in one hash, keyed by code.
type RedisStore struct {
	client *redis.Client
	key    string
	log    *zap.SugaredLogger
}

func NewRedisStore(cfg config.Redis, log *zap.SugaredLogger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("[RedisStore] - failed to connect to Redis at %s: %w", cfg.Addr, err)
	}
	return &RedisStore{client: client, key: cfg.Key, log: log}, nil
}

func (s *RedisStore) GetRoom(code string) (*room.Room, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	data, err := s.client.HGet(ctx, s.key, code).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Errorw("failed to get room", "code", code, "error", err)
		}
		return nil, false
	}

	var rec room.Record
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		s.log.Errorw("failed to deserialize room", "code", code, "error", err)
		return nil, false
	}
	r, err := room.FromRecord(rec)
	if err != nil {
		s.log.Errorw("stored room is invalid", "code", code, "error", err)
		return nil, false
	}
	return r, true
}

func (s *RedisStore) SaveRoom(r *room.Room) error {
	data, err := json.Marshal(r.Record())
	if err != nil {
		return fmt.Errorf("[RedisStore] - failed to serialize room: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	if err := s.client.HSet(ctx, s.key, r.Code, data).Err(); err != nil {
		return fmt.Errorf("[RedisStore] - failed to save room %s: %w", r.Code, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
