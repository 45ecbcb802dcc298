package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/na2na-p/atelier/internal/domain"
	"github.com/na2na-p/atelier/internal/handler/dto"
	"github.com/na2na-p/atelier/internal/handler/middleware"
	"github.com/na2na-p/atelier/internal/handler/response"
	"github.com/na2na-p/atelier/internal/usecase"
)

// 表示用途のため、imageType未指定時はoptimizedを返す
const defaultServedVariant = domain.ImageVariantOptimized

type ImageURLHandler struct {
	useCase usecase.ImageURLUseCase
}

func NewImageURLHandler(uc usecase.ImageURLUseCase) *ImageURLHandler {
	return &ImageURLHandler{
		useCase: uc,
	}
}

// ByID は解決できなかった場合も200で status を返す
func (h *ImageURLHandler) ByID(c echo.Context) error {
	var query dto.ImageURLQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return middleware.NewAppError(http.StatusBadRequest, "invalid query parameters", err)
	}

	resourceType, variant, err := parseImageTarget(query.ResourceType, query.ImageType)
	if err != nil {
		return middleware.NewAppError(http.StatusBadRequest, err.Error(), err)
	}

	result := h.useCase.URLFromID(c.Request().Context(), query.ID, query.Filename, resourceType, variant)
	return c.JSON(http.StatusOK, response.NewImageURLResponse(result))
}

func (h *ImageURLHandler) Legacy(c echo.Context) error {
	var params dto.LegacyImageURLParams
	if err := c.Bind(&params); err != nil {
		return middleware.NewAppError(http.StatusBadRequest, "invalid parameters", err)
	}

	resourceType, variant, err := parseImageTarget(params.ResourceType, params.ImageType)
	if err != nil {
		return middleware.NewAppError(http.StatusBadRequest, err.Error(), err)
	}

	result := h.useCase.URLFromSlugCompat(c.Request().Context(), params.Slug, resourceType, variant)
	return c.JSON(http.StatusOK, response.NewImageURLResponse(result))
}

func (h *ImageURLHandler) ClearSlugCache(c echo.Context) error {
	if err := h.useCase.ClearSlugCache(c.Request().Context()); err != nil {
		return middleware.NewAppError(http.StatusInternalServerError, "failed to clear slug cache", err)
	}
	return c.JSON(http.StatusOK, response.SlugCacheClearResponse{Status: "cleared"})
}

func parseImageTarget(rawResourceType, rawImageType string) (domain.ResourceType, domain.ImageVariant, error) {
	resourceType, err := domain.ParseResourceType(rawResourceType)
	if err != nil {
		return "", "", err
	}
	variant, err := domain.ParseImageVariant(rawImageType, defaultServedVariant)
	if err != nil {
		return "", "", err
	}
	return resourceType, variant, nil
}
