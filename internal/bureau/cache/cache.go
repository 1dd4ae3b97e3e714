// Package cache keeps normalized context payloads in Redis so repeat
// consultations inside the retention window skip the bureau round trip.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"spc-gateway/internal/bureau/normalizer"
	id "spc-gateway/pkg/domain"
	dErrors "spc-gateway/pkg/domain-errors"
)

// ErrNotCached is returned when no payload exists for the document.
var ErrNotCached = dErrors.New(dErrors.CodeNotFound, "context not cached")

// ContextCache is a Redis-backed cache of AiContextPayload values keyed by
// document hash. Raw CPFs never appear in Redis keys.
type ContextCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a cache with the given TTL. The client must not be nil.
func New(client *redis.Client, ttl time.Duration) *ContextCache {
	return &ContextCache{client: client, ttl: ttl}
}

func key(document id.Document) string {
	return "bureau:context:" + document.Hash()
}

// Find returns the cached payload for a document, or ErrNotCached.
func (c *ContextCache) Find(ctx context.Context, document id.Document) (*normalizer.AiContextPayload, error) {
	raw, err := c.client.Get(ctx, key(document)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotCached
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var payload normalizer.AiContextPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		// A corrupt entry reads as a miss; the next Save overwrites it.
		return nil, ErrNotCached
	}
	return &payload, nil
}

// Save stores the payload under the document's hash for the configured TTL.
func (c *ContextCache) Save(ctx context.Context, document id.Document, payload *normalizer.AiContextPayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("cache marshal: %w", err)
	}
	if err := c.client.Set(ctx, key(document), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}
