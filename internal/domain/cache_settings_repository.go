//go:generate mockgen -source=$GOFILE -destination=../../tests/domain/mock_cache_settings_repository.go -package=domain
package domain

import "context"

type CacheSettingsRepository interface {
	// FindByKey は設定行を取得する。存在しない場合はErrNotFoundを返す。
	FindByKey(ctx context.Context, key string) (*CacheSettings, error)
	// Upsert はキーを基準にTTLとupdatedAtを書き込む
	Upsert(ctx context.Context, settings *CacheSettings) error
	// SaveClearedAt はlastClearedAtとupdatedAtのみを書き込む。行が無い場合は設定値ごと作成する。
	SaveClearedAt(ctx context.Context, settings *CacheSettings) error
}
