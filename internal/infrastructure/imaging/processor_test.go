package imaging_test

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/na2na-p/atelier/internal/domain"
	"github.com/na2na-p/atelier/internal/infrastructure/imaging"
	"github.com/na2na-p/atelier/internal/usecase"
)

func solidImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, solidImage(w, h, color.RGBA{R: 200, G: 40, B: 40, A: 255})); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, solidImage(w, h, color.RGBA{R: 40, G: 200, B: 40, A: 255}), nil); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}
	return buf.Bytes()
}

func encodeGIF(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := gif.Encode(&buf, solidImage(w, h, color.RGBA{R: 40, G: 40, B: 200, A: 255}), nil); err != nil {
		t.Fatalf("encode gif: %v", err)
	}
	return buf.Bytes()
}

// pngWithDeclaredSize は1x1のpngのIHDRだけを書き換え、巨大な寸法を名乗る小さなpngを作る
func pngWithDeclaredSize(t *testing.T, width, height uint32) []byte {
	t.Helper()
	data := encodePNG(t, 1, 1)
	// 8バイトのシグネチャの後にIHDRチャンク（長さ4, 型4, データ13, CRC4）が続く
	binary.BigEndian.PutUint32(data[16:20], width)
	binary.BigEndian.PutUint32(data[20:24], height)
	binary.BigEndian.PutUint32(data[29:33], crc32.ChecksumIEEE(data[12:29]))
	return data
}

func mustTransform(t *testing.T, width, height, quality int, format domain.ImageFormat) domain.ImageTransform {
	t.Helper()
	tr, err := domain.NewImageTransform(width, height, quality, format)
	if err != nil {
		t.Fatalf("NewImageTransform() error: %v", err)
	}
	return tr
}

type processed struct {
	ContentType string
	Width       int
	Height      int
}

func TestProcessor_Process(t *testing.T) {
	tests := []struct {
		name       string
		data       func(t *testing.T) []byte
		transform  func(t *testing.T) domain.ImageTransform
		want       processed
		wantFormat string
	}{
		{
			name: "正常系: 幅指定でアスペクト比を保って縮小しpngを保つ",
			data: func(t *testing.T) []byte { return encodePNG(t, 400, 200) },
			transform: func(t *testing.T) domain.ImageTransform {
				return mustTransform(t, 100, 0, 0, domain.ImageFormatAuto)
			},
			want:       processed{ContentType: "image/png", Width: 100, Height: 50},
			wantFormat: "png",
		},
		{
			name: "正常系: 幅と高さの枠に収める",
			data: func(t *testing.T) []byte { return encodeJPEG(t, 300, 600) },
			transform: func(t *testing.T) domain.ImageTransform {
				return mustTransform(t, 300, 150, 0, domain.ImageFormatAuto)
			},
			want:       processed{ContentType: "image/jpeg", Width: 75, Height: 150},
			wantFormat: "jpeg",
		},
		{
			name: "正常系: 拡大はしない",
			data: func(t *testing.T) []byte { return encodePNG(t, 50, 40) },
			transform: func(t *testing.T) domain.ImageTransform {
				return mustTransform(t, 500, 0, 0, domain.ImageFormatPNG)
			},
			want:       processed{ContentType: "image/png", Width: 50, Height: 40},
			wantFormat: "png",
		},
		{
			name: "正常系: png指定でjpegをpngに変換する",
			data: func(t *testing.T) []byte { return encodeJPEG(t, 20, 20) },
			transform: func(t *testing.T) domain.ImageTransform {
				return mustTransform(t, 0, 0, 0, domain.ImageFormatPNG)
			},
			want:       processed{ContentType: "image/png", Width: 20, Height: 20},
			wantFormat: "png",
		},
		{
			name: "正常系: jpeg指定と品質指定でpngをjpegに変換する",
			data: func(t *testing.T) []byte { return encodePNG(t, 20, 20) },
			transform: func(t *testing.T) domain.ImageTransform {
				return mustTransform(t, 0, 0, 50, domain.ImageFormatJPEG)
			},
			want:       processed{ContentType: "image/jpeg", Width: 20, Height: 20},
			wantFormat: "jpeg",
		},
		{
			name: "正常系: webp指定はpngの元形式を保つ",
			data: func(t *testing.T) []byte { return encodePNG(t, 20, 20) },
			transform: func(t *testing.T) domain.ImageTransform {
				return mustTransform(t, 10, 0, 0, domain.ImageFormatWebP)
			},
			want:       processed{ContentType: "image/png", Width: 10, Height: 10},
			wantFormat: "png",
		},
		{
			name: "正常系: gifはjpegにフォールバックする",
			data: func(t *testing.T) []byte { return encodeGIF(t, 40, 20) },
			transform: func(t *testing.T) domain.ImageTransform {
				return mustTransform(t, 20, 0, 0, domain.ImageFormatAuto)
			},
			want:       processed{ContentType: "image/jpeg", Width: 20, Height: 10},
			wantFormat: "jpeg",
		},
	}

	processor := imaging.NewProcessor(0)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := processor.Process(context.Background(), tt.data(t), tt.transform(t))
			if err != nil {
				t.Fatalf("Process() unexpected error: %v", err)
			}

			got := processed{ContentType: result.ContentType, Width: result.Width, Height: result.Height}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Process() mismatch (-want +got):\n%s", diff)
			}

			cfg, format, err := image.DecodeConfig(bytes.NewReader(result.Data))
			if err != nil {
				t.Fatalf("output is not decodable: %v", err)
			}
			if format != tt.wantFormat {
				t.Errorf("encoded format = %q, want %q", format, tt.wantFormat)
			}
			if cfg.Width != tt.want.Width || cfg.Height != tt.want.Height {
				t.Errorf("encoded size = %dx%d, want %dx%d", cfg.Width, cfg.Height, tt.want.Width, tt.want.Height)
			}
		})
	}
}

func TestProcessor_Process_Errors(t *testing.T) {
	tests := []struct {
		name      string
		maxPixels int
		ctx       func() context.Context
		data      func(t *testing.T) []byte
		wantErr   error
	}{
		{
			name:    "異常系: 画像として読めないデータはErrNotAnImage",
			ctx:     context.Background,
			data:    func(t *testing.T) []byte { return []byte("<svg xmlns=\"http://www.w3.org/2000/svg\"></svg>") },
			wantErr: usecase.ErrNotAnImage,
		},
		{
			name:    "異常系: 空データはErrNotAnImage",
			ctx:     context.Background,
			data:    func(t *testing.T) []byte { return nil },
			wantErr: usecase.ErrNotAnImage,
		},
		{
			name:    "異常系: ヘッダが巨大な寸法を名乗るpngはデコード前に拒否される",
			ctx:     context.Background,
			data:    func(t *testing.T) []byte { return pngWithDeclaredSize(t, 65535, 65535) },
			wantErr: usecase.ErrImageTooManyPixels,
		},
		{
			name:      "異常系: 画素数の上限を1超える画像は拒否される",
			maxPixels: 20*20 - 1,
			ctx:       context.Background,
			data:      func(t *testing.T) []byte { return encodePNG(t, 20, 20) },
			wantErr:   usecase.ErrImageTooManyPixels,
		},
		{
			name: "異常系: キャンセル済みのcontext",
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			data:    func(t *testing.T) []byte { return []byte("irrelevant") },
			wantErr: context.Canceled,
		},
	}

	transform, err := domain.NewImageTransform(100, 0, 0, domain.ImageFormatAuto)
	if err != nil {
		t.Fatalf("NewImageTransform() error: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			processor := imaging.NewProcessor(tt.maxPixels)
			_, err := processor.Process(tt.ctx(), tt.data(t), transform)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Process() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestProcessor_Process_AtPixelLimit(t *testing.T) {
	processor := imaging.NewProcessor(20 * 20)
	transform, err := domain.NewImageTransform(10, 0, 0, domain.ImageFormatAuto)
	if err != nil {
		t.Fatalf("NewImageTransform() error: %v", err)
	}

	got, err := processor.Process(context.Background(), encodePNG(t, 20, 20), transform)
	if err != nil {
		t.Fatalf("Process() unexpected error: %v", err)
	}
	if diff := cmp.Diff(processed{ContentType: "image/png", Width: 10, Height: 10}, processed{ContentType: got.ContentType, Width: got.Width, Height: got.Height}); diff != "" {
		t.Errorf("Process() mismatch (-want +got):\n%s", diff)
	}
}
