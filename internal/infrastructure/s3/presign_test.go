package s3

import (
	"context"
	"errors"
	"testing"
	"time"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/go-cmp/cmp"
)

func TestS3Client_PublicURL(t *testing.T) {
	tests := []struct {
		name        string
		cfg         S3Config
		key         string
		want        string
		wantExpires time.Duration
		wantPresign bool
		wantErr     bool
	}{
		{
			name: "正常系: 公開ベースURLと連結される",
			cfg: S3Config{
				Bucket:        "atelier-images",
				PublicBaseURL: "https://cdn.example.com/images",
			},
			key:  "artworks/101/raw/sunset.jpg",
			want: "https://cdn.example.com/images/artworks/101/raw/sunset.jpg",
		},
		{
			name: "正常系: 末尾スラッシュ付きのベースURLでも二重にならない",
			cfg: S3Config{
				Bucket:        "atelier-images",
				PublicBaseURL: "https://cdn.example.com/",
			},
			key:  "series/202/optimized/cover.webp",
			want: "https://cdn.example.com/series/202/optimized/cover.webp",
		},
		{
			name:        "正常系: ベースURLがなければ既定TTLで署名付きURLを発行する",
			cfg:         S3Config{Bucket: "atelier-images"},
			key:         "artworks/101/raw/sunset.jpg",
			want:        "https://s3.example.com/atelier-images/artworks/101/raw/sunset.jpg?X-Amz-Signature=sig",
			wantExpires: DefaultPresignTTL,
			wantPresign: true,
		},
		{
			name:        "正常系: 設定したTTLで署名付きURLを発行する",
			cfg:         S3Config{Bucket: "atelier-images", PresignTTL: time.Hour},
			key:         "artifacts/303/raw/token.png",
			want:        "https://s3.example.com/atelier-images/artifacts/303/raw/token.png?X-Amz-Signature=sig",
			wantExpires: time.Hour,
			wantPresign: true,
		},
		{
			name:        "正常系: 上限を超えるTTLは7日に丸められる",
			cfg:         S3Config{Bucket: "atelier-images", PresignTTL: 30 * 24 * time.Hour},
			key:         "artworks/101/raw/sunset.jpg",
			want:        "https://s3.example.com/atelier-images/artworks/101/raw/sunset.jpg?X-Amz-Signature=sig",
			wantExpires: MaxPresignTTL,
			wantPresign: true,
		},
		{
			name:    "異常系: 空のキー",
			cfg:     S3Config{Bucket: "atelier-images"},
			key:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := &presignRecorder{}
			client := NewMockS3Client(&MockS3API{}, tt.cfg, recorder.client())

			got, err := client.PublicURL(context.Background(), tt.key)
			if (err != nil) != tt.wantErr {
				t.Fatalf("PublicURL() error = %v, wantErr %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("PublicURL() mismatch (-want +got):\n%s", diff)
			}
			if !tt.wantPresign {
				if recorder.key != "" {
					t.Errorf("presign was called with key %q", recorder.key)
				}
				return
			}
			if diff := cmp.Diff(tt.key, recorder.key); diff != "" {
				t.Errorf("presigned key mismatch (-want +got):\n%s", diff)
			}
			if recorder.expires != tt.wantExpires {
				t.Errorf("presign expires = %v, want %v", recorder.expires, tt.wantExpires)
			}
		})
	}
}

func TestS3Client_GenerateGetURL_Error(t *testing.T) {
	presign := &mockPresignClient{
		presignGetObjectFunc: func(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
			return nil, errors.New("presign failed")
		},
	}
	client := NewMockS3Client(&MockS3API{}, S3Config{Bucket: "atelier-images"}, presign)

	got, err := client.GenerateGetURL(context.Background(), "artworks/101/raw/sunset.jpg", 0)
	if err == nil {
		t.Fatal("GenerateGetURL() expected error")
	}
	if !errors.Is(err, &StorageError{Operation: OperationPresign}) {
		t.Errorf("GenerateGetURL() error = %v, want StorageError(presign)", err)
	}
	if got != "" {
		t.Errorf("GenerateGetURL() = %q, want empty", got)
	}
}
