package domain_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/na2na-p/atelier/internal/domain"
)

func TestImageURLResult(t *testing.T) {
	errStorage := errors.New("storage down")

	type want struct {
		status     domain.ImageURLStatus
		orEmpty    string
		isResolved bool
		err        error
	}
	tests := []struct {
		name   string
		result domain.ImageURLResult
		want   want
	}{
		{
			name:   "正常系: 解決済みの場合URLを返す",
			result: domain.ResolvedImageURL("https://cdn.example.com/artworks/1/raw/a.jpg"),
			want: want{
				status:     domain.ImageURLResolved,
				orEmpty:    "https://cdn.example.com/artworks/1/raw/a.jpg",
				isResolved: true,
			},
		},
		{
			name:   "正常系: 見つからない場合は空文字に縮退する",
			result: domain.NotFoundImageURL(),
			want:   want{status: domain.ImageURLNotFound},
		},
		{
			name:   "異常系: 失敗した場合は空文字に縮退し原因を保持する",
			result: domain.FailedImageURL(errStorage),
			want:   want{status: domain.ImageURLFailed, err: errStorage},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want.status, tt.result.Status()); diff != "" {
				t.Errorf("Status() mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.want.orEmpty, tt.result.OrEmpty()); diff != "" {
				t.Errorf("OrEmpty() mismatch (-want +got):\n%s", diff)
			}
			if tt.result.IsResolved() != tt.want.isResolved {
				t.Errorf("IsResolved() = %v, want %v", tt.result.IsResolved(), tt.want.isResolved)
			}
			if !errors.Is(tt.result.Err(), tt.want.err) {
				t.Errorf("Err() = %v, want %v", tt.result.Err(), tt.want.err)
			}
		})
	}
}
