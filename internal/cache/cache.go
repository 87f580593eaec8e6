package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is the cache surface the application depends on. Implementations
// fail open: a miss and an outage look the same to callers, so cached
// lookups always degrade to the backing store.
type Store interface {
	// GetJSON loads the entry under key into dest and reports whether a
	// usable entry was found.
	GetJSON(ctx context.Context, key string, dest interface{}) bool
	// SetJSON stores value under key for ttl. Failures are dropped.
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration)
	// Delete removes a key. Failures are dropped.
	Delete(ctx context.Context, key string)
}

// Client is the redis-backed Store used by the session cache. A nil Client
// behaves like an always-empty cache.
type Client struct {
	rdb *redis.Client
}

// New creates a redis-backed cache client.
func New(addr, password string, db int) *Client {
	return &Client{rdb: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

func (c *Client) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		// redis.Nil and connectivity errors are both misses
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

func (c *Client) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if c == nil || c.rdb == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, key, payload, ttl)
}

func (c *Client) Delete(ctx context.Context, key string) {
	if c == nil || c.rdb == nil {
		return
	}
	c.rdb.Del(ctx, key)
}
