package usecase

import (
	"context"
	"time"

	"github.com/na2na-p/atelier/internal/domain"
)

type CacheKeyGenerator interface {
	SlugIDKey(resourceType domain.ResourceType, slug string) string
	SlugIDKeyPrefix() string
}

type CacheConfig interface {
	SlugIDTTL() time.Duration
}

type CacheClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPrefix(ctx context.Context, prefix string) (int64, error)
}
