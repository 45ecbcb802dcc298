//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_image_proxy_usecase.go -package=usecase
package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/url"
	"strings"

	"github.com/na2na-p/atelier/internal/domain"
)

// DefaultMaxImageBytes は上流から受け取る画像の上限サイズ
const DefaultMaxImageBytes int64 = 20 << 20

type ProxiedImage struct {
	Data         []byte
	ContentType  string
	CacheControl string
}

type ImageProxyUseCase interface {
	Execute(ctx context.Context, rawURL string, transform domain.ImageTransform) (*ProxiedImage, error)
}

type imageProxyUseCaseImpl struct {
	fetcher     ImageFetcher
	processor   ImageProcessor
	ttlProvider CacheTTLProvider
	maxBytes    int64
}

func NewImageProxyUseCase(fetcher ImageFetcher, processor ImageProcessor, ttlProvider CacheTTLProvider, maxBytes int64) ImageProxyUseCase {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxImageBytes
	}
	return &imageProxyUseCaseImpl{
		fetcher:     fetcher,
		processor:   processor,
		ttlProvider: ttlProvider,
		maxBytes:    maxBytes,
	}
}

func (u *imageProxyUseCaseImpl) Execute(ctx context.Context, rawURL string, transform domain.ImageTransform) (*ProxiedImage, error) {
	target, err := ValidateImageURL(rawURL)
	if err != nil {
		return nil, err
	}

	ttl := u.ttlProvider.CacheTTL(ctx)

	upstream, err := u.fetcher.Fetch(ctx, target.String())
	if err != nil {
		return nil, classifyFetchError(err)
	}
	defer func() { _ = upstream.Body.Close() }()

	if upstream.StatusCode < 200 || upstream.StatusCode > 299 {
		return nil, &UpstreamStatusError{StatusCode: upstream.StatusCode}
	}

	contentType, ok := imageMediaType(upstream.ContentType)
	if !ok {
		return nil, fmt.Errorf("%w: content-type=%q", ErrNotAnImage, upstream.ContentType)
	}

	if upstream.ContentLength > u.maxBytes {
		return nil, fmt.Errorf("%w: content-length=%d", ErrUpstreamTooLarge, upstream.ContentLength)
	}

	data, err := io.ReadAll(io.LimitReader(upstream.Body, u.maxBytes+1))
	if err != nil {
		return nil, classifyFetchError(err)
	}
	if int64(len(data)) > u.maxBytes {
		return nil, fmt.Errorf("%w: limit=%d", ErrUpstreamTooLarge, u.maxBytes)
	}

	result := &ProxiedImage{
		Data:         data,
		ContentType:  contentType,
		CacheControl: ttl.CacheControl(),
	}

	if transform.IsIdentity() {
		return result, nil
	}

	processed, err := u.processor.Process(ctx, data, transform)
	if err != nil {
		return nil, err
	}
	result.Data = processed.Data
	result.ContentType = processed.ContentType
	slog.DebugContext(ctx, "画像を変換しました",
		"source_bytes", len(data),
		"output_bytes", len(processed.Data),
		"width", processed.Width,
		"height", processed.Height,
	)

	return result, nil
}

// ValidateImageURL はプロキシ対象のURLが絶対URLかつhttp(s)であることを検証する
func ValidateImageURL(rawURL string) (*url.URL, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, ErrInvalidImageURL
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImageURL, err)
	}

	if !parsed.IsAbs() || parsed.Host == "" {
		return nil, ErrInvalidImageURL
	}

	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
		return parsed, nil
	default:
		return nil, ErrInvalidImageURL
	}
}

// imageMediaType はContent-Typeがimage/*の場合にそのまま返す
func imageMediaType(contentType string) (string, bool) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", false
	}
	if !strings.HasPrefix(mediaType, "image/") {
		return "", false
	}
	return contentType, true
}

func classifyFetchError(err error) error {
	switch {
	case errors.Is(err, ErrUpstreamTimeout), errors.Is(err, ErrUpstreamTooLarge), errors.Is(err, ErrUpstreamFetch):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrUpstreamTimeout, err)
	default:
		return fmt.Errorf("%w: %w", ErrUpstreamFetch, err)
	}
}
