package httpfetch

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/na2na-p/atelier/internal/usecase"
	"github.com/prometheus/client_golang/prometheus"
)

const DefaultUserAgent = "atelier-image-proxy/1.0"

var _ usecase.ImageFetcher = (*Fetcher)(nil)

type FetcherConfig struct {
	UserAgent string
}

// Fetcher は上流の画像をGETする。タイムアウトは呼び出し側のcontextで決まる。
type Fetcher struct {
	client    *http.Client
	userAgent string
	limiter   *HostRateLimiter
	duration  prometheus.Observer
}

func NewFetcher(client *http.Client, cfg FetcherConfig, limiter *HostRateLimiter, duration prometheus.Observer) *Fetcher {
	if client == nil {
		client = &http.Client{}
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Fetcher{
		client:    client,
		userAgent: userAgent,
		limiter:   limiter,
		duration:  duration,
	}
}

// Fetch はステータスコードに関わらずレスポンスを返す。Bodyは呼び出し側がCloseする。
func (f *Fetcher) Fetch(ctx context.Context, target string) (*usecase.UpstreamImage, error) {
	if err := f.limiter.WaitForHost(ctx, target); err != nil {
		// rate.Limiterは待ちが期限を超える時点で諦めるため、期限付きなら全てタイムアウト扱い
		if _, ok := ctx.Deadline(); ok {
			return nil, fmt.Errorf("%w: %w", usecase.ErrUpstreamTimeout, err)
		}
		return nil, classifyTransportError(ctx, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", usecase.ErrUpstreamFetch, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "image/*")

	start := time.Now()
	resp, err := f.client.Do(req)
	if f.duration != nil {
		f.duration.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}

	return &usecase.UpstreamImage{
		StatusCode:    resp.StatusCode,
		ContentType:   resp.Header.Get("Content-Type"),
		ContentLength: resp.ContentLength,
		Body:          resp.Body,
	}, nil
}

func classifyTransportError(ctx context.Context, err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(ctx.Err(), context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", usecase.ErrUpstreamTimeout, err)
	case errors.As(err, &netErr) && netErr.Timeout():
		return fmt.Errorf("%w: %w", usecase.ErrUpstreamTimeout, err)
	default:
		return fmt.Errorf("%w: %w", usecase.ErrUpstreamFetch, err)
	}
}
