package dto

// SaveCacheSettingsRequest の日数は小数を許す
type SaveCacheSettingsRequest struct {
	CacheTTLDays *float64 `json:"cacheTtlDays" validate:"required,gte=0"`
}
