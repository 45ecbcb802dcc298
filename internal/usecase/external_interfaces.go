//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_external_interfaces.go -package=usecase
package usecase

import (
	"context"
	"io"

	"github.com/na2na-p/atelier/internal/domain"
)

type ObjectStorage interface {
	PutObject(ctx context.Context, key string, body io.Reader, contentLength int64, contentType string) error
	PublicURL(ctx context.Context, key string) (string, error)
}

// UpstreamImage は上流へのGETの結果。Bodyは呼び出し側がCloseする。
type UpstreamImage struct {
	StatusCode    int
	ContentType   string
	ContentLength int64
	Body          io.ReadCloser
}

type ImageFetcher interface {
	Fetch(ctx context.Context, target string) (*UpstreamImage, error)
}

type ProcessedImage struct {
	Data        []byte
	ContentType string
	Width       int
	Height      int
}

type ImageProcessor interface {
	Process(ctx context.Context, data []byte, transform domain.ImageTransform) (*ProcessedImage, error)
}

type VerifiedToken struct {
	Subject string
	Email   string
}

type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*VerifiedToken, error)
}

type SlugCache interface {
	ClearSlugCache(ctx context.Context) error
}
