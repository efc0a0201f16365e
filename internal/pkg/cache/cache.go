// Package cache stores raw provider responses for a short TTL.
package cache

import (
	"context"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache: miss")

// Cache is a byte-value TTL cache.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Close() error
}

var keyJSON = jsoniter.Config{SortMapKeys: true}.Froze()

// Key builds "url?{params as sorted compact JSON}". Parameter values are strings
// so the same query always yields the same key.
func Key(url string, params map[string]string) string {
	if len(params) == 0 {
		return url + "?{}"
	}
	// a map[string]string always encodes
	data, _ := keyJSON.Marshal(params)
	return url + "?" + string(data)
}
