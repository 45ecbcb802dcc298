//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_image_upload_usecase.go -package=usecase
package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/na2na-p/atelier/internal/domain"
)

type UploadImageInput struct {
	ResourceType  domain.ResourceType
	ID            string
	Filename      string
	Variant       domain.ImageVariant
	ContentType   string
	ContentLength int64
	Body          io.Reader
}

type UploadImageOutput struct {
	Path string
	URL  string
}

type ImageUploadUseCase interface {
	Execute(ctx context.Context, input UploadImageInput) (*UploadImageOutput, error)
}

type imageUploadUseCaseImpl struct {
	storage ObjectStorage
}

func NewImageUploadUseCase(storage ObjectStorage) ImageUploadUseCase {
	return &imageUploadUseCaseImpl{
		storage: storage,
	}
}

func (u *imageUploadUseCaseImpl) Execute(ctx context.Context, input UploadImageInput) (*UploadImageOutput, error) {
	if strings.TrimSpace(input.ID) == "" || strings.TrimSpace(input.Filename) == "" {
		return nil, ErrInvalidUploadTarget
	}
	if input.Variant == domain.ImageVariantOptimized && input.ResourceType.SkipsOptimization() {
		return nil, ErrOptimizationUnsupported
	}
	if _, ok := imageMediaType(input.ContentType); !ok {
		return nil, fmt.Errorf("%w: content-type=%q", ErrNotAnImage, input.ContentType)
	}

	paths := domain.GenerateImagePaths(input.ResourceType.String(), input.ID, input.Filename, true)
	key := paths.PathFor(input.Variant)

	if err := u.storage.PutObject(ctx, key, input.Body, input.ContentLength, input.ContentType); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	slog.InfoContext(ctx, "画像をアップロードしました", "key", key, "size", input.ContentLength)

	publicURL, err := u.storage.PublicURL(ctx, key)
	if err != nil {
		slog.WarnContext(ctx, "アップロード後の公開URL生成に失敗しました", "key", key, "error", err)
		publicURL = ""
	}

	return &UploadImageOutput{
		Path: key,
		URL:  publicURL,
	}, nil
}
