package s3_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/google/go-cmp/cmp"
	"github.com/na2na-p/atelier/internal/infrastructure/s3"
)

func TestStorageError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *s3.StorageError
		want string
	}{
		{
			name: "正常系: Put操作のエラーメッセージが正しく生成される",
			err:  s3.NewStorageError(s3.OperationPut, errors.New("connection refused")),
			want: "storage put error: connection refused",
		},
		{
			name: "正常系: Presign操作のエラーメッセージが正しく生成される",
			err:  s3.NewStorageError(s3.OperationPresign, errors.New("missing credentials")),
			want: "storage presign error: missing credentials",
		},
		{
			name: "正常系: HeadBucket操作のエラーメッセージが正しく生成される",
			err:  s3.NewStorageError(s3.OperationHeadBucket, errors.New("access denied")),
			want: "storage head_bucket error: access denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.err.Error()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStorageError_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	storageErr := s3.NewStorageError(s3.OperationPut, originalErr)

	if got := storageErr.Unwrap(); got != originalErr {
		t.Errorf("Unwrap() = %v, want %v", got, originalErr)
	}
	if !errors.Is(storageErr, originalErr) {
		t.Error("errors.Is(storageErr, originalErr) = false, want true")
	}
}

func TestStorageError_Is(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{
			name:   "正常系: 同じ操作タイプのStorageErrorはtrueを返す",
			err:    s3.NewStorageError(s3.OperationPut, errors.New("some error")),
			target: &s3.StorageError{Operation: s3.OperationPut},
			want:   true,
		},
		{
			name:   "正常系: 異なる操作タイプのStorageErrorはfalseを返す",
			err:    s3.NewStorageError(s3.OperationPut, errors.New("some error")),
			target: &s3.StorageError{Operation: s3.OperationPresign},
			want:   false,
		},
		{
			name:   "正常系: wrapされたStorageErrorもerrors.Isで検出可能",
			err:    fmt.Errorf("wrapper: %w", s3.NewStorageError(s3.OperationHeadBucket, errors.New("nested"))),
			target: &s3.StorageError{Operation: s3.OperationHeadBucket},
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.want {
				t.Errorf("errors.Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStorageError_APIErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  *s3.StorageError
		want string
	}{
		{
			name: "正常系: APIエラーのコードを返す",
			err: s3.NewStorageError(s3.OperationPut, &smithy.GenericAPIError{
				Code:    "AccessDenied",
				Message: "access denied",
			}),
			want: "AccessDenied",
		},
		{
			name: "正常系: wrapされたAPIエラーのコードも返す",
			err: s3.NewStorageError(s3.OperationPut, fmt.Errorf("operation error: %w", &smithy.GenericAPIError{
				Code: "SlowDown",
			})),
			want: "SlowDown",
		},
		{
			name: "正常系: API以外のエラーは空文字",
			err:  s3.NewStorageError(s3.OperationPut, errors.New("dial tcp: refused")),
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.err.APIErrorCode()); diff != "" {
				t.Errorf("APIErrorCode() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStorageError_LogValue(t *testing.T) {
	tests := []struct {
		name string
		err  *s3.StorageError
		want map[string]string
	}{
		{
			name: "正常系: S3のエラーコードを含む",
			err: s3.NewStorageError(s3.OperationPut, &smithy.GenericAPIError{
				Code:    "AccessDenied",
				Message: "denied",
			}),
			want: map[string]string{"operation": "put", "code": "AccessDenied", "error": "api error AccessDenied: denied"},
		},
		{
			name: "正常系: API由来でなければcodeを含まない",
			err:  s3.NewStorageError(s3.OperationHeadBucket, errors.New("dial tcp: refused")),
			want: map[string]string{"operation": "head_bucket", "error": "dial tcp: refused"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := map[string]string{}
			for _, a := range tt.err.LogValue().Group() {
				got[a.Key] = a.Value.String()
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("LogValue() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
