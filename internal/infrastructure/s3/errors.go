package s3

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/smithy-go"
)

type StorageOperation string

const (
	OperationPut        StorageOperation = "put"
	OperationPresign    StorageOperation = "presign"
	OperationHeadBucket StorageOperation = "head_bucket"
)

type StorageError struct {
	Operation StorageOperation
	Err       error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s error: %v", e.Operation, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	var t *StorageError
	if errors.As(target, &t) {
		return e.Operation == t.Operation
	}
	return false
}

// APIErrorCode はS3が返したエラーコードを返す。API由来でなければ空文字
func (e *StorageError) APIErrorCode() string {
	var apiErr smithy.APIError
	if errors.As(e.Err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

func NewStorageError(operation StorageOperation, err error) *StorageError {
	return &StorageError{
		Operation: operation,
		Err:       err,
	}
}

// LogValue はログに操作名とS3のエラーコードを構造化して出す
func (e *StorageError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("operation", string(e.Operation)),
		slog.String("error", e.Err.Error()),
	}
	if code := e.APIErrorCode(); code != "" {
		attrs = append(attrs, slog.String("code", code))
	}
	return slog.GroupValue(attrs...)
}

// failStorage はStorageErrorを組み立て、呼び出し元に返す前に記録する
func failStorage(ctx context.Context, operation StorageOperation, err error) *StorageError {
	storageErr := NewStorageError(operation, err)
	slog.WarnContext(ctx, "S3操作に失敗しました", "storage_error", storageErr)
	return storageErr
}
