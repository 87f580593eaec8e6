package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/harshG775/voting-poll-server/internal/cache"
	"github.com/harshG775/voting-poll-server/internal/model"
)

const (
	sessionKeyPrefix = "session:"
	sessionCacheTTL  = 5 * time.Minute
)

// SessionCache memoizes token-to-user resolutions. Tokens are long, so keys
// carry a sha256 digest instead of the raw token. The store fails open, so
// an outage (or a nil store) degrades every call to a miss and the auth gate
// falls back to the user repository.
type SessionCache struct {
	store cache.Store
}

// NewSessionCache creates a session cache over a store. A nil store is valid
// and disables caching.
func NewSessionCache(store cache.Store) *SessionCache {
	return &SessionCache{store: store}
}

func sessionKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return sessionKeyPrefix + hex.EncodeToString(sum[:])
}

// Get returns the cached user for a token, or nil on miss.
func (s *SessionCache) Get(ctx context.Context, token string) *model.User {
	if s.store == nil {
		return nil
	}
	var user model.User
	if !s.store.GetJSON(ctx, sessionKey(token), &user) {
		return nil
	}
	return &user
}

// Set caches the resolved user for a token.
func (s *SessionCache) Set(ctx context.Context, token string, user *model.User) {
	if s.store == nil {
		return
	}
	s.store.SetJSON(ctx, sessionKey(token), user, sessionCacheTTL)
}

// Invalidate drops a cached token resolution.
func (s *SessionCache) Invalidate(ctx context.Context, token string) {
	if s.store == nil {
		return
	}
	s.store.Delete(ctx, sessionKey(token))
}
