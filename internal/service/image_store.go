package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/fadilmartias/resume-builder/internal/config"
)

// ImageStore keeps uploaded personal photos.
type ImageStore interface {
	Save(ctx context.Context, name string, r io.Reader, contentType string) error
	Delete(ctx context.Context, name string) error
	URL(name string) string
}

// NewImageStore builds the store selected by STORAGE_DRIVER.
func NewImageStore(ctx context.Context, cfg *config.StorageConfig) (ImageStore, error) {
	switch cfg.Driver {
	case "local", "":
		return NewLocalImageStore(cfg.UploadDir, "/uploads/")
	case "s3":
		return NewS3ImageStore(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}

type LocalImageStore struct {
	Dir       string
	URLPrefix string
}

func NewLocalImageStore(dir, urlPrefix string) (*LocalImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create upload dir: %w", err)
	}
	return &LocalImageStore{Dir: dir, URLPrefix: urlPrefix}, nil
}

func (s *LocalImageStore) Save(_ context.Context, name string, r io.Reader, _ string) error {
	f, err := os.Create(filepath.Join(s.Dir, filepath.Base(name)))
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Delete removes a stored photo. A missing file is not an error.
func (s *LocalImageStore) Delete(_ context.Context, name string) error {
	err := os.Remove(filepath.Join(s.Dir, filepath.Base(name)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *LocalImageStore) URL(name string) string {
	return s.URLPrefix + name
}

// S3ImageStore writes photos to an S3 compatible bucket such as R2.
type S3ImageStore struct {
	Client    *s3.Client
	Bucket    string
	PublicURL string
}

func NewS3ImageStore(ctx context.Context, cfg *config.StorageConfig) (*S3ImageStore, error) {
	if cfg.S3Bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET not set")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, "")),
		awsconfig.WithRegion(cfg.S3Region),
	)
	if err != nil {
		return nil, fmt.Errorf("error creating aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3ImageStore{
		Client:    client,
		Bucket:    cfg.S3Bucket,
		PublicURL: strings.TrimSuffix(cfg.S3PublicURL, "/"),
	}, nil
}

func (s *S3ImageStore) Save(ctx context.Context, name string, r io.Reader, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(name),
		Body:   r,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := s.Client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("failed to put object: %w", err)
	}
	return nil
}

func (s *S3ImageStore) Delete(ctx context.Context, name string) error {
	_, err := s.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(name),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

func (s *S3ImageStore) URL(name string) string {
	return s.PublicURL + "/" + name
}
