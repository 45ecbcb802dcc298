//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_cache_settings_usecase.go -package=usecase
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/na2na-p/atelier/internal/domain"
)

// TTLSource はTTLをどこから得たかを表す
type TTLSource string

const (
	TTLSourceMemo    TTLSource = "memo"
	TTLSourceStore   TTLSource = "store"
	TTLSourceDefault TTLSource = "default"
)

type TTLLookupObserver interface {
	ObserveTTLLookup(source TTLSource)
}

type CacheTTLProvider interface {
	CacheTTL(ctx context.Context) domain.CacheTTL
}

type CacheSettingsUseCase interface {
	CacheTTLProvider
	GetSettings(ctx context.Context) (*domain.CacheSettings, error)
	SaveTTLDays(ctx context.Context, days float64) (*domain.CacheSettings, error)
	ClearCache(ctx context.Context) (*domain.CacheSettings, error)
}

type cacheSettingsUseCaseImpl struct {
	repo     domain.CacheSettingsRepository
	memo     *TTLMemo
	observer TTLLookupObserver
}

func NewCacheSettingsUseCase(repo domain.CacheSettingsRepository, memo *TTLMemo, observer TTLLookupObserver) CacheSettingsUseCase {
	if memo == nil {
		memo = NewTTLMemo(DefaultTTLMemoWindow)
	}
	return &cacheSettingsUseCaseImpl{
		repo:     repo,
		memo:     memo,
		observer: observer,
	}
}

// CacheTTL は現在有効なTTLを返す。
// 読み込みに失敗した場合や設定行が無い場合はデフォルト値を使い、それもメモする（行は作成しない）。
func (u *cacheSettingsUseCaseImpl) CacheTTL(ctx context.Context) domain.CacheTTL {
	if ttl, ok := u.memo.Get(ctx); ok {
		u.observe(TTLSourceMemo)
		return ttl
	}

	settings, err := u.repo.FindByKey(ctx, domain.CacheSettingsKey)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			slog.WarnContext(ctx, "キャッシュ設定の読み込みに失敗したためデフォルトTTLを使用します", "error", err)
		}
		ttl := domain.DefaultCacheTTL()
		u.memo.Set(ctx, ttl)
		u.observe(TTLSourceDefault)
		return ttl
	}

	u.memo.Set(ctx, settings.TTL())
	u.observe(TTLSourceStore)
	return settings.TTL()
}

// GetSettings は設定行を返す。行が無い場合は未保存のデフォルト設定を返す。
func (u *cacheSettingsUseCaseImpl) GetSettings(ctx context.Context) (*domain.CacheSettings, error) {
	settings, err := u.repo.FindByKey(ctx, domain.CacheSettingsKey)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return defaultSettings()
		}
		return nil, fmt.Errorf("%w: %w", ErrSettingsStore, err)
	}
	return settings, nil
}

func (u *cacheSettingsUseCaseImpl) SaveTTLDays(ctx context.Context, days float64) (*domain.CacheSettings, error) {
	ttl, err := domain.NewCacheTTLFromDays(days)
	if err != nil {
		return nil, err
	}

	settings, err := u.repo.FindByKey(ctx, domain.CacheSettingsKey)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		settings = domain.NewCacheSettings(ctx, ttl)
	case errors.Is(err, domain.ErrInvalidCacheTTL):
		// 読めない行は保存で上書きして直せるようにする
		slog.WarnContext(ctx, "保存済みのキャッシュ設定が不正なため上書きします", "error", err)
		settings = domain.NewCacheSettings(ctx, ttl)
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrSettingsStore, err)
	default:
		settings.ChangeTTL(ctx, ttl)
	}

	if err := u.repo.Upsert(ctx, settings); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSettingsStore, err)
	}

	u.memo.Set(ctx, settings.TTL())
	slog.InfoContext(ctx, "キャッシュTTLを更新しました", "ttl_seconds", settings.TTL().Seconds())

	return settings, nil
}

// ClearCache はクリア日時を記録する。ブラウザやCDNに保持されたレスポンスには影響しない。
func (u *cacheSettingsUseCaseImpl) ClearCache(ctx context.Context) (*domain.CacheSettings, error) {
	settings, err := u.repo.FindByKey(ctx, domain.CacheSettingsKey)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		settings = domain.NewCacheSettings(ctx, domain.DefaultCacheTTL())
	case errors.Is(err, domain.ErrInvalidCacheTTL):
		slog.WarnContext(ctx, "保存済みのキャッシュ設定が不正なためデフォルトTTLでクリアを記録します", "error", err)
		settings = domain.NewCacheSettings(ctx, domain.DefaultCacheTTL())
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrSettingsStore, err)
	}

	settings.MarkCleared(ctx)

	if err := u.repo.SaveClearedAt(ctx, settings); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSettingsStore, err)
	}

	slog.InfoContext(ctx, "キャッシュのクリアを記録しました", "cleared_at", settings.LastClearedAt())

	return settings, nil
}

func (u *cacheSettingsUseCaseImpl) observe(source TTLSource) {
	if u.observer != nil {
		u.observer.ObserveTTLLookup(source)
	}
}

func defaultSettings() (*domain.CacheSettings, error) {
	return domain.ReconstructCacheSettings(domain.CacheSettingsKey, domain.DefaultCacheTTLSeconds, nil, time.Time{})
}
