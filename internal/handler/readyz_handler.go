//go:generate mockgen -source=$GOFILE -destination=../../tests/handler/mock_readyz_handler.go -package=handler
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/na2na-p/atelier/internal/handler/response"
	"github.com/na2na-p/atelier/internal/usecase"
)

type ReadinessProber interface {
	ExecuteDetails(ctx context.Context) ([]usecase.HealthCheckResult, error)
}

type ReadyzHandler struct {
	prober ReadinessProber
}

func NewReadyzHandler(prober ReadinessProber) *ReadyzHandler {
	return &ReadyzHandler{
		prober: prober,
	}
}

// Handle は依存先のいずれかが応答しない間は503を返し、ロードバランサーから外させる
func (h *ReadyzHandler) Handle(c echo.Context) error {
	ctx := c.Request().Context()

	results, err := h.prober.ExecuteDetails(ctx)
	if err != nil {
		slog.WarnContext(ctx, "readinessチェックに失敗しました", "error", err)
		return c.JSON(http.StatusServiceUnavailable, response.NewReadinessResponse(results, false))
	}

	return c.JSON(http.StatusOK, response.NewReadinessResponse(results, true))
}
