package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/xavierca1/postcard-ads/internal/entity"
)

const (
	landingPageKeyPrefix = "landing_page:"
	DefaultTTL           = 5 * time.Minute
)

// LandingPageCache is a read-through cache in front of a
// LandingPageRepository. Only found pages are cached, so a page created by
// the backfill becomes visible on the next lookup.
type LandingPageCache struct {
	entity.LandingPageRepository

	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewLandingPageCache(repo entity.LandingPageRepository, client *redis.Client, ttl time.Duration, log *zap.Logger) *LandingPageCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &LandingPageCache{
		LandingPageRepository: repo,
		client:                client,
		ttl:                   ttl,
		log:                   log,
	}
}

func (c *LandingPageCache) FindBySlug(ctx context.Context, slug string) (*entity.LandingPage, error) {
	key := landingPageKeyPrefix + slug

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var page entity.LandingPage
		if jsonErr := json.Unmarshal(raw, &page); jsonErr == nil {
			return &page, nil
		}
		c.log.Warn("discarding corrupt cached landing page", zap.String("slug", slug))
	case !errors.Is(err, redis.Nil):
		// cache down: fall through to the database
		c.log.Warn("landing page cache read failed", zap.String("slug", slug), zap.Error(err))
	}

	page, err := c.LandingPageRepository.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(page); err == nil {
		if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.log.Warn("landing page cache write failed", zap.String("slug", slug), zap.Error(err))
		}
	}

	return page, nil
}

func (c *LandingPageCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
