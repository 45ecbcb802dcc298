package redis

import (
	"time"

	"github.com/na2na-p/atelier/internal/domain"
	"github.com/na2na-p/atelier/internal/usecase"
)

var (
	_ usecase.CacheKeyGenerator = (*CacheKeyGeneratorImpl)(nil)
	_ usecase.CacheConfig       = (*CacheConfigImpl)(nil)
)

type CacheKeyGeneratorImpl struct{}

func NewCacheKeyGenerator() *CacheKeyGeneratorImpl {
	return &CacheKeyGeneratorImpl{}
}

func (g *CacheKeyGeneratorImpl) SlugIDKey(resourceType domain.ResourceType, slug string) string {
	return SlugIDKey(resourceType, slug)
}

func (g *CacheKeyGeneratorImpl) SlugIDKeyPrefix() string {
	return SlugIDKeyPrefix
}

type CacheConfigImpl struct {
	slugIDTTL time.Duration
}

// NewCacheConfig はttlが0以下の場合SlugIDTTLを使う
func NewCacheConfig(slugIDTTL time.Duration) *CacheConfigImpl {
	if slugIDTTL <= 0 {
		slugIDTTL = SlugIDTTL
	}
	return &CacheConfigImpl{slugIDTTL: slugIDTTL}
}

func (c *CacheConfigImpl) SlugIDTTL() time.Duration {
	return c.slugIDTTL
}
