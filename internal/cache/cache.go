// Package cache provides the memoization collaborator injected into the
// collector. The analysis core never caches; TTL policy lives out here.
package cache

import (
	"context"
	"time"
)

// Cache stores serialized payloads with a TTL. A miss is (nil, false, nil);
// errors are reserved for backend failures.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Close() error
}
