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
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"skilledup-backend/internal/domain"
)

// Space is the BlobStore backed by an S3-compatible object store
// (DigitalOcean Spaces in production). Objects are public-read and served
// through the CDN endpoint.
type Space struct {
	client      *s3.Client
	cdnEndpoint string
}

type Config struct {
	Endpoint    string
	CDNEndpoint string
	Region      string
	AccessKey   string
	SecretKey   string
}

// New builds the Spaces client. Path-style addressing is required by
// S3-compatible providers.
func New(ctx context.Context, cfg Config) (*Space, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})

	return &Space{client: client, cdnEndpoint: strings.TrimRight(cfg.CDNEndpoint, "/")}, nil
}

// bucketFor maps a file kind to its bucket, one bucket per media class.
func bucketFor(kind domain.FileKind) string {
	switch kind {
	case domain.FileKindImage:
		return "images"
	case domain.FileKindVideo:
		return "videos"
	default:
		return "files"
	}
}

func (s *Space) Put(ctx context.Context, kind domain.FileKind, data []byte, key, folder, contentType string) (*domain.UploadResult, error) {
	bucket := bucketFor(kind)
	objectKey := folder + "/" + key

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return nil, fmt.Errorf("put %s/%s: %w", bucket, objectKey, err)
	}

	return &domain.UploadResult{
		URL:     fmt.Sprintf("%s/%s/%s", s.cdnEndpoint, bucket, objectKey),
		Success: true,
	}, nil
}

func (s *Space) Delete(ctx context.Context, kind domain.FileKind, key, folder string) error {
	bucket := bucketFor(kind)
	objectKey := folder + "/" + key

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", bucket, objectKey, err)
	}
	return nil
}

// KeyFromURL recovers the object key (the final path segment) from a CDN
// URL previously returned by Put.
func (s *Space) KeyFromURL(url string) string {
	idx := strings.LastIndex(url, "/")
	if idx < 0 || idx == len(url)-1 {
		return ""
	}
	return url[idx+1:]
}
