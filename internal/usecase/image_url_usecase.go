//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_image_url_usecase.go -package=usecase
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/na2na-p/atelier/internal/domain"
)

type ImageURLUseCase interface {
	URLFromID(ctx context.Context, id, filename string, resourceType domain.ResourceType, variant domain.ImageVariant) domain.ImageURLResult
	URLFromSlugCompat(ctx context.Context, slug string, resourceType domain.ResourceType, variant domain.ImageVariant) domain.ImageURLResult
	ClearSlugCache(ctx context.Context) error
}

type imageURLUseCaseImpl struct {
	storage     ObjectStorage
	identifiers domain.ResourceIdentifierRepository
	slugCache   SlugCache
}

func NewImageURLUseCase(storage ObjectStorage, identifiers domain.ResourceIdentifierRepository, slugCache SlugCache) ImageURLUseCase {
	return &imageURLUseCaseImpl{
		storage:     storage,
		identifiers: identifiers,
		slugCache:   slugCache,
	}
}

// URLFromID はID方式のパスから公開URLを得る。失敗はログに残し、結果の状態で返す。
func (u *imageURLUseCaseImpl) URLFromID(ctx context.Context, id, filename string, resourceType domain.ResourceType, variant domain.ImageVariant) domain.ImageURLResult {
	if id == "" || filename == "" {
		return domain.NotFoundImageURL()
	}

	paths := domain.GenerateImagePaths(resourceType.String(), id, filename, true)
	key := paths.PathFor(variant)

	publicURL, err := u.storage.PublicURL(ctx, key)
	if err != nil {
		slog.ErrorContext(ctx, "公開URLの生成に失敗しました",
			"resource_type", resourceType.String(),
			"key", key,
			"error", err,
		)
		return domain.FailedImageURL(fmt.Errorf("%w: %w", ErrStorage, err))
	}

	return domain.ResolvedImageURL(publicURL)
}

// URLFromSlugCompat は旧形式のslugからIDを引き、規約に従ったファイル名でURLFromIDに委譲する
func (u *imageURLUseCaseImpl) URLFromSlugCompat(ctx context.Context, slug string, resourceType domain.ResourceType, variant domain.ImageVariant) domain.ImageURLResult {
	if slug == "" {
		return domain.NotFoundImageURL()
	}
	if !resourceType.SupportsSlugLookup() {
		slog.WarnContext(ctx, "slugによる解決に対応していないリソース種別です", "resource_type", resourceType.String())
		return domain.NotFoundImageURL()
	}

	id, err := u.identifiers.FindIDBySlug(ctx, resourceType, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			slog.WarnContext(ctx, "slugに対応するIDが見つかりません", "resource_type", resourceType.String(), "slug", slug)
			return domain.NotFoundImageURL()
		}
		slog.ErrorContext(ctx, "slugからのID解決に失敗しました", "resource_type", resourceType.String(), "slug", slug, "error", err)
		return domain.FailedImageURL(err)
	}
	if id == "" {
		return domain.NotFoundImageURL()
	}

	return u.URLFromID(ctx, id, variant.LegacyFilename(slug), resourceType, variant)
}

func (u *imageURLUseCaseImpl) ClearSlugCache(ctx context.Context) error {
	if err := u.slugCache.ClearSlugCache(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrSlugCacheClear, err)
	}
	return nil
}
