//go:generate mockgen -source=$GOFILE -destination=../../tests/handler/mock_image_proxy_handler.go -package=handler
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/na2na-p/atelier/internal/handler/dto"
	"github.com/na2na-p/atelier/internal/handler/response"
	"github.com/na2na-p/atelier/internal/usecase"
)

// プロキシ結果のメトリクスラベル
const (
	OutcomeOK             = "ok"
	OutcomeInvalidURL     = "invalid_url"
	OutcomeInvalidParams  = "invalid_params"
	OutcomeUpstreamStatus = "upstream_status"
	OutcomeNotImage       = "not_image"
	OutcomeTimeout        = "timeout"
	OutcomeTooLarge       = "too_large"
	OutcomeError          = "error"
)

type ProxyOutcomeRecorder interface {
	RecordProxyOutcome(outcome string)
}

type ImageProxyHandler struct {
	useCase         usecase.ImageProxyUseCase
	recorder        ProxyOutcomeRecorder
	upstreamTimeout time.Duration
}

func NewImageProxyHandler(uc usecase.ImageProxyUseCase, recorder ProxyOutcomeRecorder, upstreamTimeout time.Duration) *ImageProxyHandler {
	return &ImageProxyHandler{
		useCase:         uc,
		recorder:        recorder,
		upstreamTimeout: upstreamTimeout,
	}
}

func (h *ImageProxyHandler) Handle(c echo.Context) error {
	var query dto.ImageProxyQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		h.recorder.RecordProxyOutcome(OutcomeInvalidParams)
		return response.SendError(c, http.StatusBadRequest, "invalid query parameters")
	}

	transform, err := query.Transform()
	if err != nil {
		h.recorder.RecordProxyOutcome(OutcomeInvalidParams)
		return response.SendError(c, http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	if h.upstreamTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.upstreamTimeout)
		defer cancel()
	}

	image, err := h.useCase.Execute(ctx, query.URL, transform)
	if err != nil {
		return h.handleError(c, err)
	}

	h.recorder.RecordProxyOutcome(OutcomeOK)

	header := c.Response().Header()
	header.Set(echo.HeaderCacheControl, image.CacheControl)
	header.Set(echo.HeaderAccessControlAllowOrigin, "*")
	header.Set(echo.HeaderVary, "Accept")

	return c.Blob(http.StatusOK, image.ContentType, image.Data)
}

func (h *ImageProxyHandler) handleError(c echo.Context, err error) error {
	var statusErr *usecase.UpstreamStatusError
	switch {
	case errors.Is(err, usecase.ErrInvalidImageURL):
		h.recorder.RecordProxyOutcome(OutcomeInvalidURL)
		return response.SendError(c, http.StatusBadRequest, usecase.ErrInvalidImageURL.Error())
	case errors.Is(err, usecase.ErrUpstreamAddressForbidden):
		h.recorder.RecordProxyOutcome(OutcomeInvalidURL)
		slog.WarnContext(c.Request().Context(), "公開アドレス以外への取得を拒否しました", "error", err)
		return response.SendError(c, http.StatusBadRequest, usecase.ErrUpstreamAddressForbidden.Error())
	case errors.As(err, &statusErr):
		h.recorder.RecordProxyOutcome(OutcomeUpstreamStatus)
		return response.SendError(c, statusErr.StatusCode, fmt.Sprintf("upstream responded with status %d", statusErr.StatusCode))
	case errors.Is(err, usecase.ErrNotAnImage):
		h.recorder.RecordProxyOutcome(OutcomeNotImage)
		return response.SendError(c, http.StatusBadRequest, usecase.ErrNotAnImage.Error())
	case errors.Is(err, usecase.ErrUpstreamTimeout), errors.Is(err, context.DeadlineExceeded):
		h.recorder.RecordProxyOutcome(OutcomeTimeout)
		slog.WarnContext(c.Request().Context(), "上流画像の取得がタイムアウトしました", "error", err)
		return response.SendError(c, http.StatusGatewayTimeout, usecase.ErrUpstreamTimeout.Error())
	case errors.Is(err, usecase.ErrUpstreamTooLarge):
		h.recorder.RecordProxyOutcome(OutcomeTooLarge)
		return response.SendError(c, http.StatusBadGateway, usecase.ErrUpstreamTooLarge.Error())
	case errors.Is(err, usecase.ErrImageTooManyPixels):
		h.recorder.RecordProxyOutcome(OutcomeTooLarge)
		return response.SendError(c, http.StatusBadGateway, usecase.ErrImageTooManyPixels.Error())
	default:
		h.recorder.RecordProxyOutcome(OutcomeError)
		slog.ErrorContext(c.Request().Context(), "画像プロキシに失敗しました", "error", err)
		return response.SendError(c, http.StatusInternalServerError, "failed to proxy image")
	}
}
