// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"user_backend/internal/feature/users/domain/entity"
	"user_backend/internal/feature/users/usecase"
)

// CachingUserRepository decorates a UserRepository with a Redis read-through
// cache for single-record lookups, keyed per user id. Writes keep the cache
// coherent: create and update refresh the snapshot, delete removes it.
// List, search and uniqueness queries always go to the underlying store.
type CachingUserRepository struct {
	inner     usecase.UserRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.UserRepository = (*CachingUserRepository)(nil)

// NewCachingUserRepository decorates a UserRepository with Redis caching.
// If ttl is 0, it defaults to 15 minutes. If namespace is empty, it uses
// "users". A nil client disables caching entirely.
func NewCachingUserRepository(rdb *redis.Client, ttl time.Duration, inner usecase.UserRepository, namespace string) *CachingUserRepository {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	if namespace == "" {
		namespace = "users"
	}
	return &CachingUserRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// FindByID retrieves a user, checking the cache first then falling back to
// the store. Within the TTL the cached snapshot is returned as-is, even if
// the store has changed behind the API's back.
func (c *CachingUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.cacheKey(id)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var u entity.User
		if err := json.Unmarshal(b, &u); err == nil {
			return &u, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	u, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	c.put(ctx, u)
	return u, nil
}

// Create inserts a user and primes the cache with the new record.
func (c *CachingUserRepository) Create(ctx context.Context, u *entity.User) error {
	if err := c.inner.Create(ctx, u); err != nil {
		return err
	}
	c.put(ctx, u)
	return nil
}

// Update persists a user and refreshes its cached snapshot.
func (c *CachingUserRepository) Update(ctx context.Context, u *entity.User) error {
	if err := c.inner.Update(ctx, u); err != nil {
		return err
	}
	c.put(ctx, u)
	return nil
}

// Delete removes a user and invalidates its cached snapshot.
func (c *CachingUserRepository) Delete(ctx context.Context, id uint) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	if c.rdb != nil {
		_ = c.rdb.Del(ctx, c.cacheKey(id)).Err() // Best effort
	}
	return nil
}

// ListAll always queries the underlying store.
func (c *CachingUserRepository) ListAll(ctx context.Context) ([]entity.User, error) {
	return c.inner.ListAll(ctx)
}

// FindByAttrs always queries the underlying store.
func (c *CachingUserRepository) FindByAttrs(ctx context.Context, u *entity.User) (*entity.User, error) {
	return c.inner.FindByAttrs(ctx, u)
}

// EmailExists always queries the underlying store.
func (c *CachingUserRepository) EmailExists(ctx context.Context, email string, excludeID uint) (bool, error) {
	return c.inner.EmailExists(ctx, email, excludeID)
}

// PhoneExists always queries the underlying store.
func (c *CachingUserRepository) PhoneExists(ctx context.Context, phone string, excludeID uint) (bool, error) {
	return c.inner.PhoneExists(ctx, phone, excludeID)
}

// Search always queries the underlying store.
func (c *CachingUserRepository) Search(ctx context.Context, q usecase.SearchQuery) ([]entity.User, bool, error) {
	return c.inner.Search(ctx, q)
}

// put stores a snapshot of the user with the configured TTL (best effort).
func (c *CachingUserRepository) put(ctx context.Context, u *entity.User) {
	if c.rdb == nil {
		return
	}
	if b, err := json.Marshal(u); err == nil {
		_ = c.rdb.Set(ctx, c.cacheKey(u.ID), b, c.ttl).Err()
	}
}

// cacheKey generates the cache key for a user id.
func (c *CachingUserRepository) cacheKey(id uint) string {
	return fmt.Sprintf("%s:%d", c.namespace, id)
}
