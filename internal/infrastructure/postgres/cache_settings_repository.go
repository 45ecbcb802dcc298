package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/na2na-p/atelier/internal/domain"
)

type CacheSettingsRepositoryImpl struct {
	dao *CacheSettingsDAO
}

func NewCacheSettingsRepository(pool Querier) domain.CacheSettingsRepository {
	return &CacheSettingsRepositoryImpl{
		dao: NewCacheSettingsDAO(pool),
	}
}

func (r *CacheSettingsRepositoryImpl) FindByKey(ctx context.Context, key string) (*domain.CacheSettings, error) {
	row, err := r.dao.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return domain.ReconstructCacheSettings(row.Key, row.CacheTTLSeconds, row.LastClearedAt, row.UpdatedAt)
}

func (r *CacheSettingsRepositoryImpl) Upsert(ctx context.Context, settings *domain.CacheSettings) error {
	return r.dao.UpsertTTL(ctx, cacheSettingsToRow(settings))
}

func (r *CacheSettingsRepositoryImpl) SaveClearedAt(ctx context.Context, settings *domain.CacheSettings) error {
	return r.dao.UpsertClearedAt(ctx, cacheSettingsToRow(settings))
}

func cacheSettingsToRow(settings *domain.CacheSettings) *CacheSettingsRow {
	return &CacheSettingsRow{
		Key:             settings.Key(),
		CacheTTLSeconds: settings.TTL().Seconds(),
		LastClearedAt:   settings.LastClearedAt(),
		UpdatedAt:       settings.UpdatedAt(),
	}
}
