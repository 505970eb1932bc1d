// Package redisstore keeps the task list under a single Redis key.
package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const DefaultKey = "todos"

type Slot struct {
	client *redis.Client
	key    string
}

// New wraps an existing client. The slot owns the client and closes it on Close.
func New(client *redis.Client, key string) *Slot {
	if client == nil {
		panic("redisstore.New: client is nil")
	}
	if key == "" {
		key = DefaultKey
	}
	return &Slot{client: client, key: key}
}

// Dial connects to addr and checks the connection.
func Dial(ctx context.Context, addr string, db int, key string) (*Slot, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return New(client, key), nil
}

func (s *Slot) Load(ctx context.Context) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get %s: %w", s.key, err)
	}
	return data, true, nil
}

func (s *Slot) Save(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.key, err)
	}
	return nil
}

func (s *Slot) Close() error { return s.client.Close() }
