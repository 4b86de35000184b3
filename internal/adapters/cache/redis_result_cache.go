package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"tour-planner-service/internal/domain"
	"tour-planner-service/internal/platform/obs"
	"tour-planner-service/internal/ports"
)

const keyPrefix = "tour:run:"

// RedisResultCache stores finished runs as JSON under a caller-built key.
// Entries expire after TTL; a zero TTL keeps them forever.
type RedisResultCache struct {
	Client *redis.Client
	TTL    time.Duration
}

type cachedRun struct {
	RunID      int64         `json:"run_id"`
	Dataset    string        `json:"dataset"`
	Iterations int           `json:"iterations"`
	Neighbors  int           `json:"neighbors"`
	Seed       int64         `json:"seed"`
	Tour       []domain.City `json:"tour"`
	Distance   float64       `json:"distance"`
	CreatedAt  time.Time     `json:"created_at"`
}

func NewRedisResultCache(client *redis.Client, ttl time.Duration) *RedisResultCache {
	return &RedisResultCache{Client: client, TTL: ttl}
}

// Fetch a cached run. Unknown keys return ports.ErrCacheMiss.
func (c *RedisResultCache) Get(ctx context.Context, key string) (_ *domain.Run, err error) {
	defer obs.Time(ctx, "result.cache.Get")(&err)

	if c.Client == nil {
		return nil, errors.New("result cache: client is nil")
	}
	if strings.TrimSpace(key) == "" {
		return nil, errors.New("get result cache: key must not be empty")
	}

	raw, err := c.Client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ports.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("get result cache: key=%q: %w", key, err)
	}

	var cr cachedRun
	if err := json.Unmarshal(raw, &cr); err != nil {
		return nil, fmt.Errorf("get result cache: decode key=%q: %w", key, err)
	}

	return &domain.Run{
		RunID:      cr.RunID,
		Dataset:    cr.Dataset,
		Iterations: cr.Iterations,
		Neighbors:  cr.Neighbors,
		Seed:       cr.Seed,
		Tour:       domain.Tour(cr.Tour),
		Distance:   cr.Distance,
		CreatedAt:  cr.CreatedAt,
	}, nil
}

// Store a run under key, replacing any previous entry.
func (c *RedisResultCache) Put(ctx context.Context, key string, run *domain.Run) (err error) {
	defer obs.Time(ctx, "result.cache.Put")(&err)

	if c.Client == nil {
		return errors.New("result cache: client is nil")
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("put result cache: key must not be empty")
	}
	if run == nil {
		return errors.New("put result cache: run must be non-nil")
	}

	raw, err := json.Marshal(cachedRun{
		RunID:      run.RunID,
		Dataset:    run.Dataset,
		Iterations: run.Iterations,
		Neighbors:  run.Neighbors,
		Seed:       run.Seed,
		Tour:       run.Tour,
		Distance:   run.Distance,
		CreatedAt:  run.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("put result cache: encode key=%q: %w", key, err)
	}

	if err := c.Client.Set(ctx, keyPrefix+key, raw, c.TTL).Err(); err != nil {
		return fmt.Errorf("put result cache: key=%q: %w", key, err)
	}

	return nil
}
