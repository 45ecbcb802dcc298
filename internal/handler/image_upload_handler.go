package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/na2na-p/atelier/internal/domain"
	"github.com/na2na-p/atelier/internal/handler/response"
	"github.com/na2na-p/atelier/internal/usecase"
)

const (
	// MaxUploadBytes はアップロード1件あたりの上限
	MaxUploadBytes int64 = 20 << 20

	uploadFileField      = "file"
	uploadImageTypeField = "imageType"

	sniffLength = 512
)

type ImageUploadHandler struct {
	useCase       usecase.ImageUploadUseCase
	uploadTimeout time.Duration
}

func NewImageUploadHandler(uc usecase.ImageUploadUseCase, uploadTimeout time.Duration) *ImageUploadHandler {
	return &ImageUploadHandler{
		useCase:       uc,
		uploadTimeout: uploadTimeout,
	}
}

func (h *ImageUploadHandler) Handle(c echo.Context) error {
	resourceType, err := domain.ParseResourceType(c.Param("resourceType"))
	if err != nil {
		return response.SendError(c, http.StatusBadRequest, err.Error())
	}
	variant, err := domain.ParseImageVariant(c.FormValue(uploadImageTypeField), domain.ImageVariantRaw)
	if err != nil {
		return response.SendError(c, http.StatusBadRequest, err.Error())
	}

	fileHeader, err := c.FormFile(uploadFileField)
	if err != nil {
		return response.SendError(c, http.StatusBadRequest, "multipart field 'file' is required")
	}
	if fileHeader.Size > MaxUploadBytes {
		return response.SendError(c, http.StatusRequestEntityTooLarge, "file exceeds 20 MiB limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		slog.ErrorContext(c.Request().Context(), "アップロードファイルを開けませんでした", "error", err)
		return response.SendError(c, http.StatusBadRequest, "failed to read uploaded file")
	}
	defer func() { _ = file.Close() }()

	contentType := fileHeader.Header.Get(echo.HeaderContentType)
	if contentType == "" || contentType == echo.MIMEOctetStream {
		if contentType, err = sniffContentType(file); err != nil {
			slog.ErrorContext(c.Request().Context(), "アップロードファイルの判定に失敗しました", "error", err)
			return response.SendError(c, http.StatusBadRequest, "failed to read uploaded file")
		}
	}

	ctx := c.Request().Context()
	if h.uploadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.uploadTimeout)
		defer cancel()
	}

	output, err := h.useCase.Execute(ctx, usecase.UploadImageInput{
		ResourceType:  resourceType,
		ID:            c.Param("id"),
		Filename:      fileHeader.Filename,
		Variant:       variant,
		ContentType:   contentType,
		ContentLength: fileHeader.Size,
		Body:          file,
	})
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, response.NewUploadImageResponse(output))
}

func (h *ImageUploadHandler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidUploadTarget):
		return response.SendError(c, http.StatusBadRequest, usecase.ErrInvalidUploadTarget.Error())
	case errors.Is(err, usecase.ErrOptimizationUnsupported):
		return response.SendError(c, http.StatusBadRequest, usecase.ErrOptimizationUnsupported.Error())
	case errors.Is(err, usecase.ErrNotAnImage):
		return response.SendError(c, http.StatusBadRequest, "uploaded file is not an image")
	case errors.Is(err, context.DeadlineExceeded):
		return response.SendError(c, http.StatusGatewayTimeout, "upload timed out")
	default:
		slog.ErrorContext(c.Request().Context(), "画像のアップロードに失敗しました", "error", err)
		return response.SendError(c, http.StatusInternalServerError, "failed to upload image")
	}
}

// sniffContentType はContent-Typeが申告されていないファイルの先頭から種類を推定し、読み取り位置を戻す
func sniffContentType(file io.ReadSeeker) (string, error) {
	head := make([]byte, sniffLength)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return http.DetectContentType(head[:n]), nil
}
