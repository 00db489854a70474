package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -destination=mocks/mock_session_store.go -package=mocks bizsuite/internal/cache SessionStore

// SessionStore keeps the business each user has selected as current.
type SessionStore interface {
	// SetCurrentBusiness records businessID as the user's current business.
	SetCurrentBusiness(ctx context.Context, userID, businessID primitive.ObjectID) error
	// GetCurrentBusiness returns the user's selection, false when none is stored.
	GetCurrentBusiness(ctx context.Context, userID primitive.ObjectID) (primitive.ObjectID, bool, error)
	// ClearCurrentBusiness removes the user's selection.
	ClearCurrentBusiness(ctx context.Context, userID primitive.ObjectID) error
	// ClearIfCurrent removes the user's selection only when it equals businessID.
	ClearIfCurrent(ctx context.Context, userID, businessID primitive.ObjectID) error
}

// RedisClientProvider provides access to the underlying Redis client.
type RedisClientProvider interface {
	Client() *redis.Client
}

type sessionStore struct {
	cache  Cache
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a SessionStore. When cache is backed by Redis the
// conditional clear runs atomically.
func NewSessionStore(cache Cache, ttl time.Duration) SessionStore {
	store := &sessionStore{cache: cache, ttl: ttl}
	if provider, ok := cache.(RedisClientProvider); ok {
		store.client = provider.Client()
	}
	return store
}

// SetCurrentBusiness records the selection, refreshing its TTL.
func (s *sessionStore) SetCurrentBusiness(ctx context.Context, userID, businessID primitive.ObjectID) error {
	return s.cache.Set(ctx, CurrentBusinessCacheKey(userID.Hex()), businessID.Hex(), s.ttl)
}

// GetCurrentBusiness returns the stored selection.
func (s *sessionStore) GetCurrentBusiness(ctx context.Context, userID primitive.ObjectID) (primitive.ObjectID, bool, error) {
	var hex string
	found, err := s.cache.Get(ctx, CurrentBusinessCacheKey(userID.Hex()), &hex)
	if err != nil {
		return primitive.NilObjectID, false, err
	}
	if !found {
		return primitive.NilObjectID, false, nil
	}

	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		// Stale or corrupt entry; treat as no selection.
		_ = s.cache.Delete(ctx, CurrentBusinessCacheKey(userID.Hex()))
		return primitive.NilObjectID, false, nil
	}
	return id, true, nil
}

// ClearCurrentBusiness removes the selection.
func (s *sessionStore) ClearCurrentBusiness(ctx context.Context, userID primitive.ObjectID) error {
	return s.cache.Delete(ctx, CurrentBusinessCacheKey(userID.Hex()))
}

// clearIfCurrentScript deletes KEYS[1] only when it holds ARGV[1].
var clearIfCurrentScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
    return redis.call('DEL', KEYS[1])
end
return 0
`)

// ClearIfCurrent removes the selection when it points at businessID. Used when
// a member leaves or is removed so other selections survive.
func (s *sessionStore) ClearIfCurrent(ctx context.Context, userID, businessID primitive.ObjectID) error {
	if s.client != nil {
		key := CurrentBusinessCacheKey(userID.Hex())
		// Values are stored JSON-encoded by Set.
		encoded := fmt.Sprintf("%q", businessID.Hex())
		if err := clearIfCurrentScript.Run(ctx, s.client, []string{key}, encoded).Err(); err != nil {
			return fmt.Errorf("clear session script failed: %w", err)
		}
		return nil
	}

	return s.clearIfCurrentFallback(ctx, userID, businessID)
}

// clearIfCurrentFallback is the non-atomic variant for non-Redis caches.
func (s *sessionStore) clearIfCurrentFallback(ctx context.Context, userID, businessID primitive.ObjectID) error {
	current, ok, err := s.GetCurrentBusiness(ctx, userID)
	if err != nil {
		return err
	}
	if !ok || current != businessID {
		return nil
	}
	return s.ClearCurrentBusiness(ctx, userID)
}
