package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/na2na-p/atelier/internal/domain"
	"github.com/na2na-p/atelier/internal/handler/dto"
	"github.com/na2na-p/atelier/internal/handler/middleware"
	"github.com/na2na-p/atelier/internal/handler/response"
	"github.com/na2na-p/atelier/internal/usecase"
)

type CacheSettingsHandler struct {
	useCase usecase.CacheSettingsUseCase
}

func NewCacheSettingsHandler(uc usecase.CacheSettingsUseCase) *CacheSettingsHandler {
	return &CacheSettingsHandler{
		useCase: uc,
	}
}

func (h *CacheSettingsHandler) Get(c echo.Context) error {
	settings, err := h.useCase.GetSettings(c.Request().Context())
	if err != nil {
		return middleware.NewAppError(http.StatusInternalServerError, "failed to load cache settings", err)
	}
	return c.JSON(http.StatusOK, response.NewCacheSettingsResponse(settings))
}

func (h *CacheSettingsHandler) Save(c echo.Context) error {
	var req dto.SaveCacheSettingsRequest
	if err := c.Bind(&req); err != nil {
		return middleware.NewAppError(http.StatusBadRequest, "cacheTtlDays must be a number", err)
	}
	if err := c.Validate(&req); err != nil {
		return middleware.NewAppError(http.StatusBadRequest, err.Error(), err)
	}

	settings, err := h.useCase.SaveTTLDays(c.Request().Context(), *req.CacheTTLDays)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCacheTTL) {
			return middleware.NewAppError(http.StatusBadRequest, domain.ErrInvalidCacheTTL.Error(), err)
		}
		return middleware.NewAppError(http.StatusInternalServerError, "failed to save cache settings", err)
	}

	if userInfo, ok := middleware.UserInfoFromContext(c); ok {
		slog.InfoContext(c.Request().Context(), "管理者がキャッシュTTLを変更しました",
			"user", userInfo.Sub(),
			"ttl_seconds", settings.TTL().Seconds(),
		)
	}
	return c.JSON(http.StatusOK, response.NewCacheSettingsResponse(settings))
}

// Clear は最終クリア日時を記録する。配信済みのキャッシュは消えない。
func (h *CacheSettingsHandler) Clear(c echo.Context) error {
	settings, err := h.useCase.ClearCache(c.Request().Context())
	if err != nil {
		return middleware.NewAppError(http.StatusInternalServerError, "failed to clear cache", err)
	}
	return c.JSON(http.StatusOK, response.NewCacheSettingsResponse(settings))
}
