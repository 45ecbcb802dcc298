package dto

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/na2na-p/atelier/internal/domain"
)

type ImageProxyQuery struct {
	URL     string `query:"url"`
	Width   string `query:"width"`
	Height  string `query:"height"`
	Quality string `query:"quality"`
	Format  string `query:"format"`
}

// Transform はクエリを変換指定に変換する。明示的な0は範囲外として扱う。
func (q ImageProxyQuery) Transform() (domain.ImageTransform, error) {
	width, err := parsePositive(q.Width, "width", domain.ErrInvalidDimension)
	if err != nil {
		return domain.ImageTransform{}, err
	}
	height, err := parsePositive(q.Height, "height", domain.ErrInvalidDimension)
	if err != nil {
		return domain.ImageTransform{}, err
	}
	quality, err := parsePositive(q.Quality, "quality", domain.ErrInvalidQuality)
	if err != nil {
		return domain.ImageTransform{}, err
	}
	format, err := domain.ParseImageFormat(q.Format)
	if err != nil {
		return domain.ImageTransform{}, err
	}

	return domain.NewImageTransform(width, height, quality, format)
}

func parsePositive(value, name string, rangeErr error) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", rangeErr, name, value)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: %s=%d", rangeErr, name, n)
	}
	return n, nil
}
