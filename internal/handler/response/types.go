package response

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/na2na-p/atelier/internal/domain"
	"github.com/na2na-p/atelier/internal/usecase"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func SendError(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, ErrorResponse{Error: message})
}

type CacheSettingsResponse struct {
	CacheTTLSeconds int        `json:"cacheTtlSeconds"`
	CacheTTLDays    float64    `json:"cacheTtlDays"`
	LastClearedAt   *time.Time `json:"lastClearedAt"`
	UpdatedAt       *time.Time `json:"updatedAt"`
}

// NewCacheSettingsResponse は未保存の設定のupdatedAtをnullにする
func NewCacheSettingsResponse(settings *domain.CacheSettings) CacheSettingsResponse {
	res := CacheSettingsResponse{
		CacheTTLSeconds: settings.TTL().Seconds(),
		CacheTTLDays:    settings.TTL().Days(),
		LastClearedAt:   settings.LastClearedAt(),
	}
	if updatedAt := settings.UpdatedAt(); !updatedAt.IsZero() {
		res.UpdatedAt = &updatedAt
	}
	return res
}

type ImageURLResponse struct {
	URL    string `json:"url"`
	Status string `json:"status"`
}

func NewImageURLResponse(result domain.ImageURLResult) ImageURLResponse {
	return ImageURLResponse{
		URL:    result.OrEmpty(),
		Status: string(result.Status()),
	}
}

type UploadImageResponse struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}

func NewUploadImageResponse(output *usecase.UploadImageOutput) UploadImageResponse {
	return UploadImageResponse{
		Path: output.Path,
		URL:  output.URL,
	}
}

type SlugCacheClearResponse struct {
	Status string `json:"status"`
}

const (
	ReadinessStatusReady    = "ready"
	ReadinessStatusNotReady = "not ready"
)

type HealthCheckDetail struct {
	Name      string `json:"name"`
	Healthy   bool   `json:"healthy"`
	Error     string `json:"error,omitempty"`
	LatencyMs int64  `json:"latencyMs"`
}

type ReadinessResponse struct {
	Status  string              `json:"status"`
	Details []HealthCheckDetail `json:"details"`
}

func NewReadinessResponse(results []usecase.HealthCheckResult, ready bool) ReadinessResponse {
	status := ReadinessStatusReady
	if !ready {
		status = ReadinessStatusNotReady
	}

	details := make([]HealthCheckDetail, 0, len(results))
	for _, r := range results {
		detail := HealthCheckDetail{
			Name:      r.Name,
			Healthy:   r.Healthy,
			LatencyMs: r.Latency.Milliseconds(),
		}
		if r.Error != nil {
			detail.Error = r.Error.Error()
		}
		details = append(details, detail)
	}

	return ReadinessResponse{Status: status, Details: details}
}
