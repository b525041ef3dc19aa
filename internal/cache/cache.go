package cache

import (
	"context"
	"time"
)

type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	// Generation returns the current generation counter of a namespace.
	// Keys built from an older generation are never read again.
	Generation(ctx context.Context, namespace string) (int64, error)
	// Bump advances the namespace generation, invalidating its keys.
	Bump(ctx context.Context, namespace string) error
}

// Noop is used when no Redis is configured. Every read misses.
type Noop struct{}

var _ Cache = Noop{}

func (Noop) GetJSON(context.Context, string, any) (bool, error) { return false, nil }
func (Noop) SetJSON(context.Context, string, any, time.Duration) error { return nil }
func (Noop) Del(context.Context, ...string) error { return nil }
func (Noop) Generation(context.Context, string) (int64, error) { return 0, nil }
func (Noop) Bump(context.Context, string) error { return nil }
