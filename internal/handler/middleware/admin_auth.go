//go:generate mockgen -source=$GOFILE -destination=../../../tests/handler/middleware/mock_admin_auth.go -package=middleware
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/na2na-p/atelier/internal/domain"
	"github.com/na2na-p/atelier/internal/handler/response"
	"github.com/na2na-p/atelier/internal/usecase"
)

const (
	UserInfoContextKey = "user_info"
	bearerPrefix       = "Bearer "
)

type AdminAuthenticator interface {
	AuthenticateAdmin(ctx context.Context, token string) (*domain.UserInfo, error)
}

// AdminAuth はBearerトークンの持ち主がadminの場合のみ後続に進める
func AdminAuth(authenticator AdminAuthenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return response.SendError(c, http.StatusUnauthorized, "Unauthorized")
			}

			userInfo, err := authenticator.AuthenticateAdmin(c.Request().Context(), token)
			if err != nil {
				switch {
				case errors.Is(err, usecase.ErrForbidden):
					return response.SendError(c, http.StatusForbidden, "Forbidden")
				case errors.Is(err, usecase.ErrUnauthorized):
					return response.SendError(c, http.StatusUnauthorized, "Unauthorized")
				default:
					slog.ErrorContext(c.Request().Context(), "管理者認証に失敗しました", "error", err)
					return response.SendError(c, http.StatusInternalServerError, "Internal Server Error")
				}
			}

			c.Set(UserInfoContextKey, userInfo)
			return next(c)
		}
	}
}

// UserInfoFromContext はAdminAuthが保存したユーザーを取り出す
func UserInfoFromContext(c echo.Context) (*domain.UserInfo, bool) {
	userInfo, ok := c.Get(UserInfoContextKey).(*domain.UserInfo)
	return userInfo, ok
}

func bearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" {
		return "", false
	}
	return token, true
}
