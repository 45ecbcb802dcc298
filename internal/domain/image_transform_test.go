package domain_test

import (
	"errors"
	"testing"

	"github.com/na2na-p/atelier/internal/domain"
)

func TestNewImageTransform(t *testing.T) {
	tests := []struct {
		name         string
		width        int
		height       int
		quality      int
		format       domain.ImageFormat
		wantIdentity bool
		wantQuality  int
		wantErr      error
	}{
		{
			name:         "正常系: 指定なしは無変換",
			wantIdentity: true,
			wantQuality:  domain.DefaultImageQuality,
		},
		{
			name:         "正常系: autoのみの指定は無変換",
			format:       domain.ImageFormatAuto,
			wantIdentity: true,
			wantQuality:  domain.DefaultImageQuality,
		},
		{
			name:         "正常系: 幅の指定がある場合は変換あり",
			width:        640,
			wantIdentity: false,
			wantQuality:  domain.DefaultImageQuality,
		},
		{
			name:         "正常系: 品質の指定が反映される",
			quality:      55,
			wantIdentity: false,
			wantQuality:  55,
		},
		{
			name:         "正常系: フォーマット指定は変換あり",
			format:       domain.ImageFormatPNG,
			wantIdentity: false,
			wantQuality:  domain.DefaultImageQuality,
		},
		{
			name:    "異常系: 幅が上限超過",
			width:   domain.MaxTransformDimension + 1,
			wantErr: domain.ErrInvalidDimension,
		},
		{
			name:    "異常系: 高さが負",
			height:  -1,
			wantErr: domain.ErrInvalidDimension,
		},
		{
			name:    "異常系: 品質が100超過",
			quality: 101,
			wantErr: domain.ErrInvalidQuality,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.NewImageTransform(tt.width, tt.height, tt.quality, tt.format)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewImageTransform() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewImageTransform() unexpected error = %v", err)
			}
			if got.IsIdentity() != tt.wantIdentity {
				t.Errorf("IsIdentity() = %v, want %v", got.IsIdentity(), tt.wantIdentity)
			}
			if got.Quality() != tt.wantQuality {
				t.Errorf("Quality() = %d, want %d", got.Quality(), tt.wantQuality)
			}
		})
	}
}

func TestImageTransform_FitWithin(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		height     int
		srcWidth   int
		srcHeight  int
		wantWidth  int
		wantHeight int
	}{
		{
			name:       "正常系: 幅指定でアスペクト比を保って縮小",
			width:      400,
			srcWidth:   800,
			srcHeight:  600,
			wantWidth:  400,
			wantHeight: 300,
		},
		{
			name:       "正常系: 高さ指定でアスペクト比を保って縮小",
			height:     150,
			srcWidth:   800,
			srcHeight:  600,
			wantWidth:  200,
			wantHeight: 150,
		},
		{
			name:       "正常系: 両方指定では枠に収まる方に合わせる",
			width:      400,
			height:     100,
			srcWidth:   800,
			srcHeight:  600,
			wantWidth:  133,
			wantHeight: 100,
		},
		{
			name:       "正常系: 元画像より大きい指定では拡大しない",
			width:      2000,
			srcWidth:   800,
			srcHeight:  600,
			wantWidth:  800,
			wantHeight: 600,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transform, err := domain.NewImageTransform(tt.width, tt.height, 0, domain.ImageFormatAuto)
			if err != nil {
				t.Fatalf("NewImageTransform() failed: %v", err)
			}
			gotW, gotH := transform.FitWithin(tt.srcWidth, tt.srcHeight)
			if gotW != tt.wantWidth || gotH != tt.wantHeight {
				t.Errorf("FitWithin() = (%d, %d), want (%d, %d)", gotW, gotH, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestParseImageFormat(t *testing.T) {
	tests := []struct {
		value   string
		want    domain.ImageFormat
		wantErr error
	}{
		{value: "", want: domain.ImageFormatAuto},
		{value: "JPG", want: domain.ImageFormatJPEG},
		{value: "jpeg", want: domain.ImageFormatJPEG},
		{value: "png", want: domain.ImageFormatPNG},
		{value: "webp", want: domain.ImageFormatWebP},
		{value: "avif", wantErr: domain.ErrInvalidImageFormat},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := domain.ParseImageFormat(tt.value)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseImageFormat() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseImageFormat() = %q, want %q", got, tt.want)
			}
		})
	}
}
