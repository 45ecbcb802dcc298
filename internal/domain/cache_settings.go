package domain

import (
	"context"
	"errors"
	"time"

	"github.com/newmo-oss/ctxtime"
)

// CacheSettingsKey は画像キャッシュ設定行のキー
const CacheSettingsKey = "image_cache"

var ErrEmptySettingsKey = errors.New("settings key must not be empty")

type CacheSettings struct {
	key           string
	ttl           CacheTTL
	lastClearedAt *time.Time
	updatedAt     time.Time
}

func NewCacheSettings(ctx context.Context, ttl CacheTTL) *CacheSettings {
	return &CacheSettings{
		key:       CacheSettingsKey,
		ttl:       ttl,
		updatedAt: ctxtime.Now(ctx),
	}
}

func ReconstructCacheSettings(key string, ttlSeconds int, lastClearedAt *time.Time, updatedAt time.Time) (*CacheSettings, error) {
	if key == "" {
		return nil, ErrEmptySettingsKey
	}

	ttl, err := NewCacheTTL(ttlSeconds)
	if err != nil {
		return nil, err
	}

	return &CacheSettings{
		key:           key,
		ttl:           ttl,
		lastClearedAt: lastClearedAt,
		updatedAt:     updatedAt,
	}, nil
}

func (s *CacheSettings) Key() string {
	return s.key
}

func (s *CacheSettings) TTL() CacheTTL {
	return s.ttl
}

func (s *CacheSettings) LastClearedAt() *time.Time {
	return s.lastClearedAt
}

func (s *CacheSettings) UpdatedAt() time.Time {
	return s.updatedAt
}

func (s *CacheSettings) ChangeTTL(ctx context.Context, ttl CacheTTL) {
	s.ttl = ttl
	s.updatedAt = ctxtime.Now(ctx)
}

// MarkCleared はクリア操作を記録する。外部（ブラウザ・CDN）にキャッシュ済みのレスポンスは無効化されない。
func (s *CacheSettings) MarkCleared(ctx context.Context) {
	now := ctxtime.Now(ctx)
	s.lastClearedAt = &now
	s.updatedAt = now
}
