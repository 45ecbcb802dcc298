package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

// CacheSettingsDAO はsite_settingsテーブルへのデータアクセスを提供する
type CacheSettingsDAO struct {
	pool Querier
}

// CacheSettingsRow はsite_settingsテーブルの1行を表す
type CacheSettingsRow struct {
	Key             string
	CacheTTLSeconds int
	LastClearedAt   *time.Time
	UpdatedAt       time.Time
}

func NewCacheSettingsDAO(pool Querier) *CacheSettingsDAO {
	return &CacheSettingsDAO{
		pool: pool,
	}
}

func (dao *CacheSettingsDAO) FindByKey(ctx context.Context, key string) (*CacheSettingsRow, error) {
	query := `
		SELECT key, cache_ttl_seconds, last_cleared_at, updated_at
		FROM site_settings
		WHERE key = $1
	`

	var result CacheSettingsRow
	err := dao.pool.QueryRow(ctx, query, key).Scan(
		&result.Key,
		&result.CacheTTLSeconds,
		&result.LastClearedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, err
	}

	return &result, nil
}

// UpsertTTL はTTLを書き込む。既存行のlast_cleared_atは変更しない。
func (dao *CacheSettingsDAO) UpsertTTL(ctx context.Context, row *CacheSettingsRow) error {
	query := `
		INSERT INTO site_settings (key, cache_ttl_seconds, last_cleared_at, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (key)
		DO UPDATE SET cache_ttl_seconds = EXCLUDED.cache_ttl_seconds, updated_at = EXCLUDED.updated_at
	`

	_, err := dao.pool.Exec(ctx, query,
		row.Key,
		row.CacheTTLSeconds,
		row.LastClearedAt,
		row.UpdatedAt,
	)

	return err
}

// UpsertClearedAt はクリア日時を書き込む。既存行のcache_ttl_secondsは変更しない。
func (dao *CacheSettingsDAO) UpsertClearedAt(ctx context.Context, row *CacheSettingsRow) error {
	query := `
		INSERT INTO site_settings (key, cache_ttl_seconds, last_cleared_at, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (key)
		DO UPDATE SET last_cleared_at = EXCLUDED.last_cleared_at, updated_at = EXCLUDED.updated_at
	`

	_, err := dao.pool.Exec(ctx, query,
		row.Key,
		row.CacheTTLSeconds,
		row.LastClearedAt,
		row.UpdatedAt,
	)

	return err
}
