package s3

import (
	"context"
	"time"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// MockS3API はS3APIのモック実装
type MockS3API struct {
	PutObjectFunc  func(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadBucketFunc func(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

func (m *MockS3API) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if m.PutObjectFunc != nil {
		return m.PutObjectFunc(ctx, params, optFns...)
	}
	return &s3.PutObjectOutput{}, nil
}

func (m *MockS3API) HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	if m.HeadBucketFunc != nil {
		return m.HeadBucketFunc(ctx, params, optFns...)
	}
	return &s3.HeadBucketOutput{}, nil
}

type mockPresignClient struct {
	presignGetObjectFunc func(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

func (m *mockPresignClient) PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	if m.presignGetObjectFunc != nil {
		return m.presignGetObjectFunc(ctx, params, optFns...)
	}
	return &v4.PresignedHTTPRequest{URL: "https://example.com/default"}, nil
}

// presignRecorder は渡されたキーと有効期限を記録し、それを埋め込んだURLを返す
type presignRecorder struct {
	key     string
	expires time.Duration
}

func (r *presignRecorder) client() *mockPresignClient {
	return &mockPresignClient{
		presignGetObjectFunc: func(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
			opts := &s3.PresignOptions{}
			for _, fn := range optFns {
				fn(opts)
			}
			r.key = *params.Key
			r.expires = opts.Expires
			return &v4.PresignedHTTPRequest{URL: "https://s3.example.com/" + *params.Bucket + "/" + *params.Key + "?X-Amz-Signature=sig"}, nil
		},
	}
}

func presignFactory(client PresignClientInterface) PresignClientFactory {
	return func(_ *s3.Client) PresignClientInterface {
		return client
	}
}

type mockAPIError struct {
	code string
}

func (e *mockAPIError) Error() string                 { return "api error " + e.code }
func (e *mockAPIError) ErrorCode() string             { return e.code }
func (e *mockAPIError) ErrorMessage() string          { return e.code }
func (e *mockAPIError) ErrorFault() smithy.ErrorFault { return smithy.FaultClient }

// NewMockS3Client はテスト用のモックS3クライアントを作成します
func NewMockS3Client(mockAPI S3API, cfg S3Config, presign PresignClientInterface) *S3Client {
	var factory PresignClientFactory
	if presign != nil {
		factory = presignFactory(presign)
	}
	return NewS3ClientWithPresignFactory(mockAPI, nil, cfg, factory)
}
