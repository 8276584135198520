package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/purplemerit/account-service/internal/api/metrics"
	"github.com/purplemerit/account-service/internal/core/domain"
)

const profileTTL = 5 * time.Minute

// ProfileCache is a best-effort read cache for public profile reads.
// Key format: profile:<user_id>. Entries never carry the password hash, so a
// cached user is only suitable for read paths. Every failure is logged and
// treated as a miss; the store remains the source of truth.
type ProfileCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewProfileCache creates a ProfileCache wrapping the given Redis client.
func NewProfileCache(client *redis.Client, log zerolog.Logger) *ProfileCache {
	return &ProfileCache{client: client, log: log}
}

// cachedProfile is the stored value. It deliberately has no password field.
type cachedProfile struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Get returns the cached user, or a miss when absent or unreadable.
func (c *ProfileCache) Get(ctx context.Context, id string) (*domain.User, bool) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Str("user_id", id).Msg("profile cache read failed")
		}
		metrics.ProfileCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	var p cachedProfile
	if err := json.Unmarshal(raw, &p); err != nil {
		c.log.Warn().Err(err).Str("user_id", id).Msg("profile cache entry corrupt")
		metrics.ProfileCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	metrics.ProfileCacheTotal.WithLabelValues("hit").Inc()
	return &domain.User{
		ID:          p.ID,
		Email:       p.Email,
		Name:        p.Name,
		Role:        domain.Role(p.Role),
		Status:      domain.Status(p.Status),
		LastLoginAt: p.LastLoginAt,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}, true
}

// Set stores the user's public fields with a short TTL.
func (c *ProfileCache) Set(ctx context.Context, user *domain.User) {
	raw, err := json.Marshal(cachedProfile{
		ID:          user.ID,
		Email:       user.Email,
		Name:        user.Name,
		Role:        string(user.Role),
		Status:      string(user.Status),
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	})
	if err != nil {
		c.log.Warn().Err(err).Str("user_id", user.ID).Msg("profile cache encode failed")
		return
	}
	if err := c.client.Set(ctx, c.key(user.ID), raw, profileTTL).Err(); err != nil {
		c.log.Warn().Err(err).Str("user_id", user.ID).Msg("profile cache write failed")
	}
}

// Invalidate drops the entry after any write to the underlying record.
func (c *ProfileCache) Invalidate(ctx context.Context, id string) {
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		c.log.Warn().Err(err).Str("user_id", id).Msg("profile cache invalidation failed")
	}
}

func (c *ProfileCache) key(id string) string {
	return "profile:" + id
}
