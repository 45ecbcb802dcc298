package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/na2na-p/atelier/internal/domain"
	"github.com/na2na-p/atelier/internal/infrastructure/redis"
	"github.com/na2na-p/atelier/internal/usecase"
)

// slugキャッシュのどの層で解決したか
const (
	SlugTierLocal    = "local"
	SlugTierRedis    = "redis"
	SlugTierDatabase = "database"
	SlugTierMiss     = "miss"
)

type SlugLookupObserver interface {
	ObserveSlugLookup(tier string)
}

var (
	_ domain.ResourceIdentifierRepository = (*CachingResourceIdentifierRepository)(nil)
	_ usecase.SlugCache                   = (*CachingResourceIdentifierRepository)(nil)
)

// CachingResourceIdentifierRepository はプロセス内キャッシュ、Redis、PostgreSQLの順にslugを解決する。
// 見つからなかった結果はどの層にも保存しない。
type CachingResourceIdentifierRepository struct {
	repo         domain.ResourceIdentifierRepository
	local        *SlugIDCache
	cacheClient  usecase.CacheClient
	keyGenerator usecase.CacheKeyGenerator
	cacheConfig  usecase.CacheConfig
	observer     SlugLookupObserver
}

func NewCachingResourceIdentifierRepository(
	repo domain.ResourceIdentifierRepository,
	local *SlugIDCache,
	cacheClient usecase.CacheClient,
	keyGenerator usecase.CacheKeyGenerator,
	cacheConfig usecase.CacheConfig,
	observer SlugLookupObserver,
) *CachingResourceIdentifierRepository {
	if local == nil {
		local = NewSlugIDCache()
	}
	return &CachingResourceIdentifierRepository{
		repo:         repo,
		local:        local,
		cacheClient:  cacheClient,
		keyGenerator: keyGenerator,
		cacheConfig:  cacheConfig,
		observer:     observer,
	}
}

func (r *CachingResourceIdentifierRepository) FindIDBySlug(ctx context.Context, resourceType domain.ResourceType, slug string) (string, error) {
	if id, ok := r.local.Get(resourceType, slug); ok {
		r.observe(SlugTierLocal)
		return id, nil
	}

	cacheKey := r.keyGenerator.SlugIDKey(resourceType, slug)

	id, err := r.cacheClient.Get(ctx, cacheKey)
	switch {
	case err == nil && id != "":
		r.local.Set(resourceType, slug, id)
		r.observe(SlugTierRedis)
		return id, nil
	case err != nil && !errors.Is(err, redis.ErrCacheMiss):
		slog.WarnContext(ctx, "slugキャッシュの読み込みに失敗したためDBを参照します", "key", cacheKey, "error", err)
	}

	id, err = r.repo.FindIDBySlug(ctx, resourceType, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			r.observe(SlugTierMiss)
			return "", err
		}
		return "", fmt.Errorf("slugからのID解決に失敗しました: %w", err)
	}

	r.local.Set(resourceType, slug, id)
	if err := r.cacheClient.Set(ctx, cacheKey, id, r.cacheConfig.SlugIDTTL()); err != nil {
		slog.WarnContext(ctx, "slugキャッシュの書き込みに失敗しました", "key", cacheKey, "error", err)
	}
	r.observe(SlugTierDatabase)

	return id, nil
}

// ClearSlugCache はプロセス内キャッシュを空にし、Redis上のslugキーをすべて削除する
func (r *CachingResourceIdentifierRepository) ClearSlugCache(ctx context.Context) error {
	r.local.Clear()

	deleted, err := r.cacheClient.DeleteByPrefix(ctx, r.keyGenerator.SlugIDKeyPrefix())
	if err != nil {
		return fmt.Errorf("slugキャッシュの削除に失敗しました: %w", err)
	}

	slog.InfoContext(ctx, "slugキャッシュをクリアしました", "deleted_keys", deleted)
	return nil
}

func (r *CachingResourceIdentifierRepository) observe(tier string) {
	if r.observer != nil {
		r.observer.ObserveSlugLookup(tier)
	}
}
