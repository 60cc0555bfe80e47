package replies

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const dedupKeyPrefix = "workouts-inbound||"

// Deduplicator makes the webhook idempotent on the provider message id.
type Deduplicator struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewDeduplicator(redisClient *redis.Client, ttl time.Duration) *Deduplicator {
	return &Deduplicator{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// Claim returns true only for the first caller with this message id within the ttl.
func (d *Deduplicator) Claim(ctx context.Context, messageID string) (bool, error) {
	cmd := d.redisClient.SetNX(ctx, dedupKeyPrefix+messageID, "1", d.ttl)
	if err := cmd.Err(); err != nil {
		return false, fmt.Errorf("claim message %s: %w", messageID, err)
	}
	return cmd.Val(), nil
}

// Release forgets the claim so the provider's redelivery gets processed.
func (d *Deduplicator) Release(ctx context.Context, messageID string) error {
	if err := d.redisClient.Del(ctx, dedupKeyPrefix+messageID).Err(); err != nil {
		return fmt.Errorf("release message %s: %w", messageID, err)
	}
	return nil
}
