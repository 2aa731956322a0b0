package storage

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"github.com/projectsdatadna/test-series-api-sub001/application/ports"
)

// Presigner is the subset of the S3 presign client used here.
type Presigner interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3Storage implements ports.FileStorage by issuing presigned URLs against a
// single media bucket. The backend never touches file bytes.
type S3Storage struct {
	presigner      Presigner
	bucket         string
	uploadExpiry   time.Duration
	downloadExpiry time.Duration
	logger         *zap.Logger
}

// NewS3Storage creates storage over the given bucket.
func NewS3Storage(presigner Presigner, bucket string, uploadExpiry, downloadExpiry time.Duration, logger *zap.Logger) ports.FileStorage {
	return &S3Storage{
		presigner:      presigner,
		bucket:         bucket,
		uploadExpiry:   uploadExpiry,
		downloadExpiry: downloadExpiry,
		logger:         logger,
	}
}

// PresignUpload returns a time-limited PUT URL for the object key.
func (s *S3Storage) PresignUpload(ctx context.Context, key, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	req, err := s.presigner.PresignPutObject(ctx, input, func(o *s3.PresignOptions) {
		o.Expires = s.uploadExpiry
	})
	if err != nil {
		s.logger.Error("Failed to presign upload",
			zap.String("key", key),
			zap.Error(err),
		)
		return "", err
	}
	return req.URL, nil
}

// PresignDownload returns a time-limited GET URL for the object key.
func (s *S3Storage) PresignDownload(ctx context.Context, key string) (string, error) {
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, func(o *s3.PresignOptions) {
		o.Expires = s.downloadExpiry
	})
	if err != nil {
		s.logger.Error("Failed to presign download",
			zap.String("key", key),
			zap.Error(err),
		)
		return "", err
	}
	return req.URL, nil
}
