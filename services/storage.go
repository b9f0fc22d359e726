package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"bank_statement_gen_go/config"
)

// StatementArchive stores generated statement files under opaque keys.
type StatementArchive interface {
	Save(ctx context.Context, key, contentType string, data []byte) error
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)
	Delete(ctx context.Context, key string) error
	IsConfigured() bool
}

// Archive is the global archive instance, set during startup.
var Archive StatementArchive

// InitializeArchive selects the archive backend. R2 is used when fully
// configured and reachable; everything else falls back to the local output
// directory.
func InitializeArchive(cfg *config.Config) {
	if cfg.R2AccountID != "" && cfg.R2AccessKeyID != "" && cfg.R2SecretAccessKey != "" && cfg.R2BucketName != "" {
		r2, err := NewR2Archive(cfg)
		if err != nil {
			log.Printf("[WARNING] Failed to initialize R2 archive: %v. Falling back to local storage.", err)
			Archive = NewLocalArchive(cfg.OutputDir)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if _, err := r2.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: &cfg.R2BucketName}); err != nil {
			log.Printf("[WARNING] R2 bucket connection test failed: %v. Falling back to local storage.", err)
			Archive = NewLocalArchive(cfg.OutputDir)
			return
		}

		Archive = r2
		log.Printf("Statement archive established (Cloudflare R2 - bucket: %s)", cfg.R2BucketName)
		return
	}

	Archive = NewLocalArchive(cfg.OutputDir)
	log.Printf("Statement archive established (Local filesystem - path: %s)", cfg.OutputDir)
}

// R2Archive implements StatementArchive on a Cloudflare R2 bucket.
type R2Archive struct {
	client *s3.Client
	bucket string
}

// NewR2Archive builds an S3 client pointed at the account's R2 endpoint.
func NewR2Archive(cfg *config.Config) (*R2Archive, error) {
	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.R2AccountID)
	creds := credentials.NewStaticCredentialsProvider(cfg.R2AccessKeyID, cfg.R2SecretAccessKey, "")

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithCredentialsProvider(creds),
		awsconfig.WithRegion("auto"), // R2 uses "auto"
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})
	return &R2Archive{client: client, bucket: cfg.R2BucketName}, nil
}

func (r *R2Archive) IsConfigured() bool {
	return r.client != nil && r.bucket != ""
}

func (r *R2Archive) Save(ctx context.Context, key, contentType string, data []byte) error {
	_, err := r.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(r.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return fmt.Errorf("failed to upload to R2: %w", err)
	}
	return nil
}

func (r *R2Archive) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	result, err := r.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to get object from R2: %w", err)
	}
	contentType := "application/octet-stream"
	if result.ContentType != nil {
		contentType = *result.ContentType
	}
	return result.Body, contentType, nil
}

func (r *R2Archive) Delete(ctx context.Context, key string) error {
	_, err := r.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from R2: %w", err)
	}
	return nil
}

// LocalArchive implements StatementArchive on the local filesystem.
type LocalArchive struct {
	baseDir string
}

func NewLocalArchive(baseDir string) *LocalArchive {
	return &LocalArchive{baseDir: baseDir}
}

func (l *LocalArchive) IsConfigured() bool {
	return true
}

func (l *LocalArchive) Save(ctx context.Context, key, contentType string, data []byte) error {
	fullPath := filepath.Join(l.baseDir, key)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	return nil
}

func (l *LocalArchive) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	file, err := os.Open(filepath.Join(l.baseDir, key))
	if err != nil {
		return nil, "", fmt.Errorf("failed to open file: %w", err)
	}

	contentType := "application/octet-stream"
	switch strings.ToLower(filepath.Ext(key)) {
	case ".pdf":
		contentType = "application/pdf"
	case ".xlsx":
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case ".png":
		contentType = "image/png"
	}
	return file, contentType, nil
}

func (l *LocalArchive) Delete(ctx context.Context, key string) error {
	if err := os.Remove(filepath.Join(l.baseDir, key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
