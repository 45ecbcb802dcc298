package imaging

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"

	"github.com/na2na-p/atelier/internal/domain"
	"github.com/na2na-p/atelier/internal/usecase"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

var _ usecase.ImageProcessor = (*Processor)(nil)

// DefaultMaxPixels はデコードを許す元画像の画素数の上限（40MP）
const DefaultMaxPixels = 40_000_000

// Processor は画像を枠内に縮小してjpegかpngで再エンコードする。cgoに依存しない。
type Processor struct {
	maxPixels int
}

// NewProcessor はmaxPixelsが0以下ならDefaultMaxPixelsを使う
func NewProcessor(maxPixels int) *Processor {
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}
	return &Processor{maxPixels: maxPixels}
}

func (p *Processor) Process(ctx context.Context, data []byte, transform domain.ImageTransform) (*usecase.ProcessedImage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty body", usecase.ErrNotAnImage)
	}

	// ヘッダだけ読んで寸法を確かめてから全体をデコードする
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", usecase.ErrNotAnImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", usecase.ErrNotAnImage, cfg.Width, cfg.Height)
	}
	if cfg.Width > p.maxPixels/cfg.Height {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", usecase.ErrImageTooManyPixels, cfg.Width, cfg.Height, p.maxPixels)
	}

	src, sourceFormat, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", usecase.ErrNotAnImage, err)
	}

	bounds := src.Bounds()
	width, height := transform.FitWithin(bounds.Dx(), bounds.Dy())

	resized := src
	if width != bounds.Dx() || height != bounds.Dy() {
		dst := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		resized = dst
	}

	format := outputFormat(transform.Format(), sourceFormat)

	var buf bytes.Buffer
	switch format {
	case domain.ImageFormatPNG:
		if err := png.Encode(&buf, resized); err != nil {
			return nil, fmt.Errorf("%w: encode png: %w", usecase.ErrImageProcessing, err)
		}
	default:
		if err := jpeg.Encode(&buf, flatten(resized), &jpeg.Options{Quality: transform.Quality()}); err != nil {
			return nil, fmt.Errorf("%w: encode jpeg: %w", usecase.ErrImageProcessing, err)
		}
	}

	return &usecase.ProcessedImage{
		Data:        buf.Bytes(),
		ContentType: "image/" + string(format),
		Width:       width,
		Height:      height,
	}, nil
}

// outputFormat はwebpとautoの場合、元がjpegかpngならそれを保ち、それ以外はjpegにする
func outputFormat(requested domain.ImageFormat, sourceFormat string) domain.ImageFormat {
	switch requested {
	case domain.ImageFormatJPEG, domain.ImageFormatPNG:
		return requested
	}
	switch sourceFormat {
	case "png":
		return domain.ImageFormatPNG
	default:
		return domain.ImageFormatJPEG
	}
}

// flatten は透過部分を白で塗りつぶす。jpegはアルファを持てない。
func flatten(img image.Image) image.Image {
	if opaque, ok := img.(interface{ Opaque() bool }); ok && opaque.Opaque() {
		return img
	}
	bounds := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Over)
	return dst
}
