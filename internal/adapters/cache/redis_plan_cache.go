package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"dayplan-service/internal/domain"
	"dayplan-service/internal/platform/obs"
)

const planKeyPrefix = "plan:"

// RedisPlanCache memoizes generated plans in Redis. Plan generation is
// deterministic, so entries stay valid until the content pack changes; the
// TTL bounds staleness across content updates.
type RedisPlanCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPlanCache(client *redis.Client, ttl time.Duration) *RedisPlanCache {
	return &RedisPlanCache{client: client, ttl: ttl}
}

// Get returns the cached plan for key, reporting whether one was found.
func (c *RedisPlanCache) Get(ctx context.Context, key string) (_ *domain.Plan, _ bool, err error) {
	defer obs.Time(ctx, "plan.cache.Get")(&err)

	if c.client == nil {
		return nil, false, errors.New("plan cache: client is nil")
	}
	if key == "" {
		return nil, false, errors.New("get plan cache: key must not be empty")
	}

	raw, err := c.client.Get(ctx, planKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get plan cache: redis get: %w", err)
	}

	var plan domain.Plan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return nil, false, fmt.Errorf("get plan cache: decode plan: %w", err)
	}

	return &plan, true, nil
}

// Put stores a plan under key with the configured TTL.
func (c *RedisPlanCache) Put(ctx context.Context, key string, plan *domain.Plan) (err error) {
	defer obs.Time(ctx, "plan.cache.Put")(&err)

	if c.client == nil {
		return errors.New("plan cache: client is nil")
	}
	if key == "" {
		return errors.New("insert plan cache: key must not be empty")
	}
	if plan == nil {
		return errors.New("insert plan cache: plan must not be nil")
	}

	raw, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("insert plan cache: encode plan: %w", err)
	}

	if err := c.client.Set(ctx, planKeyPrefix+key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("insert plan cache: redis set: %w", err)
	}

	return nil
}
