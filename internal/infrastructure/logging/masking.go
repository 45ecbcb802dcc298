package logging

import (
	"io"
	"log/slog"
	"strings"
)

const redacted = "[REDACTED]"

var defaultSensitiveKeys = []string{
	"token",
	"access_token",
	"refresh_token",
	"authorization",
	"cookie",
	"password",
	"secret",
	"jwt_secret",
	"jwtsecret",
	"secret_access_key",
	"secretaccesskey",
	"access_key_id",
	"accesskeyid",
	"api_key",
	"apikey",
	"credential",
	"private_key",
	"email",
}

type SensitiveMasker struct {
	sensitiveKeys map[string]bool
}

func NewSensitiveMasker(keys []string) *SensitiveMasker {
	m := make(map[string]bool, len(keys))
	for _, key := range keys {
		m[strings.ToLower(key)] = true
	}
	return &SensitiveMasker{sensitiveKeys: m}
}

// IsSensitive はキーが機密キーに完全一致または部分一致するかを返す
func (sm *SensitiveMasker) IsSensitive(key string) bool {
	key = strings.ToLower(key)
	if sm.sensitiveKeys[key] {
		return true
	}
	for sensitiveKey := range sm.sensitiveKeys {
		if strings.Contains(key, sensitiveKey) {
			return true
		}
	}
	return false
}

func (sm *SensitiveMasker) MaskAttrs(_ []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		maskedAttrs := make([]any, 0, len(attrs))
		for _, attr := range attrs {
			maskedAttrs = append(maskedAttrs, sm.MaskAttrs(nil, attr))
		}
		return slog.Group(a.Key, maskedAttrs...)
	}

	if sm.IsSensitive(a.Key) {
		return slog.String(a.Key, redacted)
	}

	return a
}

var defaultMasker = NewSensitiveMasker(defaultSensitiveKeys)

func MaskSensitiveAttrs(groups []string, a slog.Attr) slog.Attr {
	return defaultMasker.MaskAttrs(groups, a)
}

// ParseLevel は未知の値をInfoとして扱う
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger は機密値をマスクするJSONロガーを返す
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: MaskSensitiveAttrs,
	}))
}
