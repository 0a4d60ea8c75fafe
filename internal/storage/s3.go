package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/octobees/futsal-booking/api/internal/config"
)

// ObjectStore persists binary assets and returns stable public URLs.
type ObjectStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// S3Store implements ObjectStore on top of an S3-compatible bucket.
type S3Store struct {
	client    *s3.Client
	bucket    string
	region    string
	cdnDomain string
	basePath  string
}

// NewS3Store builds an S3 backed store from the storage configuration.
func NewS3Store(cfg config.StorageConfig) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage bucket must not be empty")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &S3Store{
		client:    s3.NewFromConfig(awsCfg),
		bucket:    cfg.Bucket,
		region:    cfg.Region,
		cdnDomain: cfg.CDNDomain,
		basePath:  strings.Trim(cfg.BasePath, "/"),
	}, nil
}

// Upload writes the object and returns its public URL. The key is relative to
// the configured base path. Overwrites of an existing object are rejected by
// the conditional put, so callers must generate unique keys.
func (s *S3Store) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("object key must not be empty")
	}
	if contentType == "" {
		return "", fmt.Errorf("content type must not be empty")
	}

	fullKey := s.objectKey(key)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(fullKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		IfNoneMatch: aws.String("*"),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", fullKey, err)
	}

	return s.PublicURL(fullKey), nil
}

// PublicURL derives the stable retrieval URL for a stored object key.
func (s *S3Store) PublicURL(fullKey string) string {
	if s.cdnDomain != "" {
		return fmt.Sprintf("https://%s/%s", s.cdnDomain, fullKey)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, fullKey)
}

func (s *S3Store) objectKey(key string) string {
	key = strings.TrimPrefix(key, "/")
	if s.basePath == "" {
		return key
	}
	return s.basePath + "/" + key
}
