package domain

import (
	"errors"
	"strings"
)

type ImageVariant string

const (
	ImageVariantRaw       ImageVariant = "raw"
	ImageVariantOptimized ImageVariant = "optimized"
)

var ErrInvalidImageVariant = errors.New("image type must be 'raw' or 'optimized'")

// ParseImageVariant は文字列をImageVariantに変換する。空文字の場合はfallbackを返す。
func ParseImageVariant(value string, fallback ImageVariant) (ImageVariant, error) {
	switch ImageVariant(strings.ToLower(strings.TrimSpace(value))) {
	case "":
		return fallback, nil
	case ImageVariantRaw:
		return ImageVariantRaw, nil
	case ImageVariantOptimized:
		return ImageVariantOptimized, nil
	default:
		return "", ErrInvalidImageVariant
	}
}

func (v ImageVariant) String() string {
	return string(v)
}

// LegacyFilename は旧形式のslugからファイル名を組み立てる
// 形式: optimized -> {slug}.webp / raw -> {slug}.jpg
func (v ImageVariant) LegacyFilename(slug string) string {
	if v == ImageVariantOptimized {
		return slug + ".webp"
	}
	return slug + ".jpg"
}
