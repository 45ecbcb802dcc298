package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/na2na-p/atelier/internal/usecase"
)

var _ usecase.ObjectStorage = (*S3Client)(nil)

var ErrBucketNotFound = errors.New("bucket not found")

type S3Config struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Bucket          string
	// PublicBaseURL が空の場合、公開URLは署名付きGET URLになる
	PublicBaseURL string
	PresignTTL    time.Duration
}

type S3API interface {
	PutObject(context.Context, *s3.PutObjectInput, ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadBucket(context.Context, *s3.HeadBucketInput, ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

type S3Client struct {
	client               S3API
	presignClient        *s3.Client
	presignClientFactory PresignClientFactory
	bucket               string
	publicBaseURL        string
	presignTTL           time.Duration
}

func NewS3Connection(cfg S3Config) (*s3.Client, error) {
	if cfg.Region == "" {
		return nil, errors.New("s3 region is required")
	}
	if cfg.Bucket == "" {
		return nil, errors.New("s3 bucket is required")
	}

	awsCfg := aws.Config{
		Region:      cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = true
	})

	return client, nil
}

func NewS3Client(client *s3.Client, cfg S3Config) *S3Client {
	return NewS3ClientWithPresignFactory(client, client, cfg, nil)
}

func NewS3ClientWithPresignFactory(client S3API, presignClient *s3.Client, cfg S3Config, factory PresignClientFactory) *S3Client {
	if factory == nil {
		factory = DefaultPresignClientFactory
	}
	return &S3Client{
		client:               client,
		presignClient:        presignClient,
		presignClientFactory: factory,
		bucket:               cfg.Bucket,
		publicBaseURL:        cfg.PublicBaseURL,
		presignTTL:           normalizePresignTTL(cfg.PresignTTL),
	}
}

func (c *S3Client) PutObject(ctx context.Context, key string, body io.Reader, contentLength int64, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(contentLength),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	var err error
	if realClient, ok := c.client.(*s3.Client); ok {
		_, err = realClient.PutObject(ctx, input,
			s3.WithAPIOptions(v4.SwapComputePayloadSHA256ForUnsignedPayloadMiddleware),
		)
	} else {
		_, err = c.client.PutObject(ctx, input)
	}
	if err != nil {
		return failStorage(ctx, OperationPut, err)
	}

	return nil
}

func (c *S3Client) HeadBucket(ctx context.Context) error {
	_, err := c.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(c.bucket),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			switch apiErr.ErrorCode() {
			case "NotFound", "NoSuchBucket":
				return fmt.Errorf("%w: %s", ErrBucketNotFound, c.bucket)
			}
		}
		return failStorage(ctx, OperationHeadBucket, err)
	}
	return nil
}
