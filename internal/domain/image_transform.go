package domain

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MaxTransformDimension = 4096
	DefaultImageQuality   = 80
)

var (
	ErrInvalidDimension   = errors.New("width and height must be between 1 and 4096")
	ErrInvalidQuality     = errors.New("quality must be between 1 and 100")
	ErrInvalidImageFormat = errors.New("format must be one of jpeg, png, webp, auto")
)

type ImageFormat string

const (
	ImageFormatAuto ImageFormat = "auto"
	ImageFormatJPEG ImageFormat = "jpeg"
	ImageFormatPNG  ImageFormat = "png"
	ImageFormatWebP ImageFormat = "webp"
)

func ParseImageFormat(value string) (ImageFormat, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "auto":
		return ImageFormatAuto, nil
	case "jpeg", "jpg":
		return ImageFormatJPEG, nil
	case "png":
		return ImageFormatPNG, nil
	case "webp":
		return ImageFormatWebP, nil
	default:
		return "", ErrInvalidImageFormat
	}
}

// ImageTransform はプロキシに渡されたリサイズ・再エンコード指定。0は未指定を表す。
type ImageTransform struct {
	width   int
	height  int
	quality int
	format  ImageFormat
}

func NewImageTransform(width, height, quality int, format ImageFormat) (ImageTransform, error) {
	if width < 0 || width > MaxTransformDimension {
		return ImageTransform{}, fmt.Errorf("%w: width=%d", ErrInvalidDimension, width)
	}
	if height < 0 || height > MaxTransformDimension {
		return ImageTransform{}, fmt.Errorf("%w: height=%d", ErrInvalidDimension, height)
	}
	if quality < 0 || quality > 100 {
		return ImageTransform{}, fmt.Errorf("%w: quality=%d", ErrInvalidQuality, quality)
	}
	if format == "" {
		format = ImageFormatAuto
	}

	return ImageTransform{
		width:   width,
		height:  height,
		quality: quality,
		format:  format,
	}, nil
}

func (t ImageTransform) Width() int {
	return t.width
}

func (t ImageTransform) Height() int {
	return t.height
}

// Quality は指定が無い場合DefaultImageQualityを返す
func (t ImageTransform) Quality() int {
	if t.quality == 0 {
		return DefaultImageQuality
	}
	return t.quality
}

func (t ImageTransform) Format() ImageFormat {
	if t.format == "" {
		return ImageFormatAuto
	}
	return t.format
}

// IsIdentity は変換指定が無く、上流のバイト列をそのまま返せるかどうかを返す
func (t ImageTransform) IsIdentity() bool {
	return t.width == 0 && t.height == 0 && t.quality == 0 && t.Format() == ImageFormatAuto
}

// FitWithin は元画像のサイズから、アスペクト比を保ったまま指定の枠に収まるサイズを返す。拡大はしない。
func (t ImageTransform) FitWithin(srcWidth, srcHeight int) (int, int) {
	if srcWidth <= 0 || srcHeight <= 0 {
		return srcWidth, srcHeight
	}

	scale := 1.0
	if t.width > 0 && t.width < srcWidth {
		scale = float64(t.width) / float64(srcWidth)
	}
	if t.height > 0 && t.height < srcHeight {
		if s := float64(t.height) / float64(srcHeight); s < scale {
			scale = s
		}
	}
	if scale >= 1.0 {
		return srcWidth, srcHeight
	}

	w := max(int(float64(srcWidth)*scale+0.5), 1)
	h := max(int(float64(srcHeight)*scale+0.5), 1)
	return w, h
}
