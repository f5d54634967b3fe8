// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/MKhiriev/go-flashcards/internal/config"
	"github.com/MKhiriev/go-flashcards/internal/logger"
	"github.com/MKhiriev/go-flashcards/models"
)

// s3API is the part of *s3.Client the image storage uses.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type s3ImageStorage struct {
	client s3API
	bucket string
	logger *logger.Logger
}

// NewS3ImageStorage stores images in cfg.S3Bucket. A non-empty S3Endpoint
// switches to path-style addressing so MinIO and similar services work.
func NewS3ImageStorage(ctx context.Context, cfg config.Images, log *logger.Logger) (ImageStorage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3Region),
	}
	if cfg.S3AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	log.Debug().Str("bucket", cfg.S3Bucket).Msg("creating s3 image storage")
	return newS3ImageStorage(client, cfg.S3Bucket, log), nil
}

func newS3ImageStorage(client s3API, bucket string, log *logger.Logger) *s3ImageStorage {
	return &s3ImageStorage{client: client, bucket: bucket, logger: log}
}

func (s *s3ImageStorage) SaveImage(ctx context.Context, image models.Image) error {
	if err := validateImageKey(image.Key); err != nil {
		return err
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(image.Key),
		Body:          bytes.NewReader(image.Data),
		ContentType:   aws.String(image.ContentType),
		ContentLength: aws.Int64(int64(len(image.Data))),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*s3ImageStorage.SaveImage").Str("key", image.Key).Msg("failed to put object")
		return fmt.Errorf("%w: %w", ErrStoringImage, err)
	}

	return nil
}

func (s *s3ImageStorage) GetImage(ctx context.Context, key string) (models.Image, error) {
	if err := validateImageKey(key); err != nil {
		return models.Image{}, ErrImageNotFound
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return models.Image{}, ErrImageNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*s3ImageStorage.GetImage").Str("key", key).Msg("failed to get object")
		return models.Image{}, fmt.Errorf("error getting image: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return models.Image{}, fmt.Errorf("error reading image: %w", err)
	}

	contentType := aws.ToString(out.ContentType)
	if contentType == "" {
		contentType = models.ImageContentType(key)
	}

	return models.Image{Key: key, ContentType: contentType, Data: data}, nil
}

// DeleteImage removes the object. S3 reports success for missing keys.
func (s *s3ImageStorage) DeleteImage(ctx context.Context, key string) error {
	if err := validateImageKey(key); err != nil {
		return ErrImageNotFound
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("error deleting image: %w", err)
	}

	return nil
}
