package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/na2na-p/atelier/internal/handler/response"
)

const (
	defaultErrorMessage = "サーバー内部エラーが発生しました"

	// StatusClientClosedRequest はクライアントが応答を待たずに切断した場合に記録するステータス
	StatusClientClosedRequest = 499
)

type AppError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(statusCode int, message string, err error) *AppError {
	return &AppError{
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}

// CustomHTTPErrorHandler はハンドラから返ったエラーを {"error": message} のJSONに変換する
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	requestID := c.Response().Header().Get(echo.HeaderXRequestID)

	statusCode, message, originalErr := resolveError(err)

	logAttrs := []any{
		"request_id", requestID,
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"status", statusCode,
	}
	if originalErr != nil {
		logAttrs = append(logAttrs, "error", originalErr)
	}

	switch {
	case statusCode == StatusClientClosedRequest:
		slog.Info("クライアントが切断しました", logAttrs...)
	case statusCode >= 500:
		slog.Error("サーバーエラー", logAttrs...)
	case statusCode >= 400:
		slog.Warn("クライアントエラー", logAttrs...)
	}

	// エラー応答をCDNやブラウザに残さない
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	if c.Request().Method == http.MethodHead {
		if noContentErr := c.NoContent(statusCode); noContentErr != nil {
			slog.Error("レスポンスの送信に失敗しました",
				"request_id", requestID,
				"status_code", statusCode,
				"error", noContentErr,
			)
		}
		return
	}

	if jsonErr := response.SendError(c, statusCode, message); jsonErr != nil {
		slog.Error("レスポンスの送信に失敗しました",
			"request_id", requestID,
			"status_code", statusCode,
			"message", message,
			"error", jsonErr,
		)
	}
}

func resolveError(err error) (statusCode int, message string, originalErr error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode, appErr.Message, appErr.Err
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return httpErr.Code, msg, err
		}
		return httpErr.Code, defaultErrorMessage, err
	}

	switch {
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest, "client closed request", err
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "request timed out", err
	}
	return http.StatusInternalServerError, defaultErrorMessage, err
}
