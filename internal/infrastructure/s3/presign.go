package s3

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type PresignClientInterface interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

type PresignClientFactory func(client *s3.Client) PresignClientInterface

func DefaultPresignClientFactory(client *s3.Client) PresignClientInterface {
	return s3.NewPresignClient(client)
}

const (
	DefaultPresignTTL = 7 * 24 * time.Hour
	// SigV4の署名付きURLは7日を超えられない
	MaxPresignTTL = 7 * 24 * time.Hour
)

func normalizePresignTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return DefaultPresignTTL
	}
	if ttl > MaxPresignTTL {
		return MaxPresignTTL
	}
	return ttl
}

// PublicURL はkeyに対する公開URLを返す。
// PublicBaseURLが設定されていればそれと連結し、なければ署名付きGET URLを発行する。
func (c *S3Client) PublicURL(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", errors.New("object key is required")
	}

	if c.publicBaseURL != "" {
		u, err := url.JoinPath(c.publicBaseURL, key)
		if err != nil {
			return "", NewStorageError(OperationPresign, fmt.Errorf("invalid public base url: %w", err))
		}
		return u, nil
	}

	return c.GenerateGetURL(ctx, key, c.presignTTL)
}

func (c *S3Client) GenerateGetURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	ttl = normalizePresignTTL(ttl)

	presignClient := c.presignClientFactory(c.presignClient)
	presignResult, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = ttl
	})
	if err != nil {
		return "", failStorage(ctx, OperationPresign, err)
	}

	return presignResult.URL, nil
}
