// Package cache provides a small key-value cache abstraction with in-memory
// and Redis implementations. The portal uses it as a session-token denylist
// so logout works with stateless JWTs.
package cache

import "time"

// Cache defines the interface for caching services.
type Cache interface {
	Get(key string) (string, error)
	Set(key string, value string, expiration time.Duration) error
	Delete(key string) error
}
