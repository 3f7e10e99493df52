package repository

import (
	"strconv"
	"time"
)

// rowCache is a short-lived read-through cache over a fully decoded table.
// Writers from this process invalidate it immediately after every successful
// write, so a writer never reads back its own stale view. It does nothing for
// writers in other processes, which the medium offers no way to observe.
type rowCache[T any] struct {
	items   []T
	filled  bool
	expires time.Time
	ttl     time.Duration
	clone   func(T) T
}

// newRowCache builds a cache whose get and set copy the slice they cross.
// clone, when non-nil, additionally deep-copies each item; pass it for types
// that carry nested slices, nil for flat value types.
func newRowCache[T any](ttl time.Duration, clone func(T) T) *rowCache[T] {
	return &rowCache[T]{ttl: ttl, clone: clone}
}

// get hands out a copy of the cached slice. Callers own the result and may
// mutate it without corrupting later cached reads.
func (c *rowCache[T]) get(now time.Time) ([]T, bool) {
	if !c.filled || now.After(c.expires) {
		return nil, false
	}
	return c.copyItems(c.items), true
}

func (c *rowCache[T]) set(items []T, now time.Time) {
	c.items = c.copyItems(items)
	c.filled = true
	c.expires = now.Add(c.ttl)
}

func (c *rowCache[T]) copyItems(items []T) []T {
	out := append([]T(nil), items...)
	if c.clone != nil {
		for i := range out {
			out[i] = c.clone(out[i])
		}
	}
	return out
}

func (c *rowCache[T]) invalidate() {
	c.items = nil
	c.filled = false
}

func cacheTTLFromEnv() time.Duration {
	if n, err := strconv.Atoi(getenvDefault("RECORD_CACHE_TTL_SECONDS", "30")); err == nil && n >= 0 {
		return time.Duration(n) * time.Second
	}
	return 30 * time.Second
}
