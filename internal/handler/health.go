package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// NewHealthHandler はプロセスが応答できることだけを返す。依存先の確認は/readyzが行う。
func NewHealthHandler(version string) echo.HandlerFunc {
	body := HealthResponse{
		Status:  "healthy",
		Service: "atelier",
		Version: version,
	}
	return func(c echo.Context) error {
		if c.Request().Method == http.MethodHead {
			return c.NoContent(http.StatusOK)
		}
		return c.JSON(http.StatusOK, body)
	}
}
