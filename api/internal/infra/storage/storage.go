package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	appconfig "qrisgw/api/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Storage is the S3-compatible bucket where rendered QR images live. Works
// with any provider that takes a custom endpoint (R2, minio, plain S3).
type Storage struct {
	client    *s3.Client
	bucket    string
	publicUrl string
}

func Init(config *appconfig.Config) *Storage {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(config.Storage.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(config.Secrets.StorageKeyId, config.Secrets.StorageKeySecret, ""),
		),
	)
	if err != nil {
		panic("storage config: " + err.Error())
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if config.Storage.Endpoint != "" {
			o.BaseEndpoint = aws.String(config.Storage.Endpoint)
		}
	})

	return &Storage{
		client:    client,
		bucket:    config.Storage.Bucket,
		publicUrl: strings.TrimRight(config.Storage.Public_url, "/"),
	}
}

// PutObject uploads raw bytes and returns the durable https url the caller
// can hand out.
func (s *Storage) PutObject(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("storage put %s: %w", key, err)
	}

	return s.publicUrl + "/" + key, nil
}
