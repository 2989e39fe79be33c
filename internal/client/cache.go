package client

import "context"

// Store is the cache backend used by Client.Read. Entries have no TTL;
// staleness is driven exclusively by Invalidate calls after mutations.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
	DeletePrefix(ctx context.Context, prefix string) error
}
