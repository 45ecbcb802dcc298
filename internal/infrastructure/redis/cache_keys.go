// Package redis はslug->IDキャッシュ層のRedisアクセスを提供する。
// キャッシュキーとTTLはすべてこのファイルで定義する。
package redis

import (
	"time"

	"github.com/na2na-p/atelier/internal/domain"
)

const (
	// KeyNamespace は本サービスが使う全キーの先頭
	KeyNamespace = "atelier:"

	// SlugIDKeyPrefix は旧形式slugからリソースIDへの対応のキー
	// Format: atelier:slug:{resourceType}:{slug}
	SlugIDKeyPrefix = KeyNamespace + "slug:"
)

const (
	// SlugIDTTL はslug->IDキャッシュのTTL（24時間）
	SlugIDTTL = 24 * time.Hour
)

func SlugIDKey(resourceType domain.ResourceType, slug string) string {
	return SlugIDKeyPrefix + resourceType.String() + ":" + slug
}
