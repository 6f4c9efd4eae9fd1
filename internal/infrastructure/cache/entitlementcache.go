package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"upkeep/internal/application/company/usecases"
)

const (
	entitlementPrefix = "entitlement:"
	entitlementTTL    = 5 * time.Minute
)

// EntitlementCache stores subscription access snapshots in Redis keyed by
// company SID. Entries are advisory with a short TTL; a miss or a Redis
// failure just means the caller reads the database instead. Every
// subscription transition invalidates the entry, so the TTL only bounds
// staleness for writes that bypass the usecases.
type EntitlementCache struct {
	client *redis.Client
}

func NewEntitlementCache(client *redis.Client) *EntitlementCache {
	return &EntitlementCache{client: client}
}

func (c *EntitlementCache) Get(ctx context.Context, companySID string) (*usecases.Entitlement, error) {
	val, err := c.client.Get(ctx, entitlementPrefix+companySID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get entitlement from cache: %w", err)
	}

	var ent usecases.Entitlement
	if err := json.Unmarshal([]byte(val), &ent); err != nil {
		return nil, fmt.Errorf("failed to decode cached entitlement: %w", err)
	}
	return &ent, nil
}

func (c *EntitlementCache) Set(ctx context.Context, companySID string, entitlement *usecases.Entitlement) error {
	data, err := json.Marshal(entitlement)
	if err != nil {
		return fmt.Errorf("failed to encode entitlement: %w", err)
	}

	if err := c.client.Set(ctx, entitlementPrefix+companySID, data, entitlementTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache entitlement: %w", err)
	}
	return nil
}

func (c *EntitlementCache) Invalidate(ctx context.Context, companySID string) error {
	if err := c.client.Del(ctx, entitlementPrefix+companySID).Err(); err != nil {
		return fmt.Errorf("failed to invalidate entitlement: %w", err)
	}
	return nil
}
