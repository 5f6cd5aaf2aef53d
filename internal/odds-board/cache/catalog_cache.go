package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/radieske/bet-compare/internal/odds-board/board"
	"github.com/radieske/bet-compare/internal/odds-board/catalog"
)

// KeyCatalog é a chave do snapshot do catálogo no Redis
const KeyCatalog = "board:catalog"

// Store é o mínimo de key/value que o cache precisa
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
}

// RedisStore implementa Store sobre o cliente go-redis
type RedisStore struct{ R *redis.Client }

func NewRedisStore(r *redis.Client) *RedisStore { return &RedisStore{R: r} }

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := s.R.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	return s.R.Set(ctx, key, val, ttl).Err()
}

// CachedSource é uma catalog.Source read-through: tenta o cache e,
// na falta, lê da fonte e grava o snapshot com TTL.
// Falha do cache nunca falha a leitura.
type CachedSource struct {
	Source catalog.Source
	Store  Store
	TTL    time.Duration
	Log    *zap.Logger

	OnHit  func() // métricas
	OnMiss func() // métricas
}

func (c *CachedSource) Games(ctx context.Context) ([]board.Game, error) {
	b, ok, err := c.Store.Get(ctx, KeyCatalog)
	if err != nil {
		c.warn("catalog cache get failed", err)
	}
	if ok {
		var games []board.Game
		err := json.Unmarshal(b, &games)
		if err == nil {
			if c.OnHit != nil {
				c.OnHit()
			}
			return games, nil
		}
		c.warn("catalog cache decode failed", err)
	}

	if c.OnMiss != nil {
		c.OnMiss()
	}
	games, err := c.Source.Games(ctx)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(games); err == nil {
		if err := c.Store.Set(ctx, KeyCatalog, b, c.TTL); err != nil {
			c.warn("catalog cache set failed", err)
		}
	}
	return games, nil
}

func (c *CachedSource) warn(msg string, err error) {
	if c.Log != nil {
		c.Log.Warn(msg, zap.Error(err))
	}
}
