package sink

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/specialistvlad/matexport/internal/ctxlog"
)

const s3Scheme = "s3://"

// S3Config holds connection settings for an S3-compatible endpoint.
type S3Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

// LogValue keeps credentials out of logs.
func (c S3Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("endpoint", c.Endpoint),
		slog.String("region", c.Region),
		slog.String("access_key", redact(c.AccessKey)),
		slog.String("secret_key", redact(c.SecretKey)),
		slog.Bool("use_ssl", c.UseSSL),
	)
}

func redact(secret string) string {
	if secret == "" {
		return ""
	}
	return "REDACTED"
}

// S3Sink uploads the document as a single object.
type S3Sink struct {
	client   *minio.Client
	bucket   string
	key      string
	region   string
	initOnce sync.Once
	initErr  error
}

// NewS3Sink validates the configuration and creates the client. No request
// is made until Write.
func NewS3Sink(cfg S3Config, bucket, key string) (*S3Sink, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("s3 endpoint is required")
	}
	access := strings.TrimSpace(cfg.AccessKey)
	secret := strings.TrimSpace(cfg.SecretKey)
	if access == "" || secret == "" {
		return nil, fmt.Errorf("s3 access key and secret key are required")
	}
	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = "us-east-1"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(access, secret, ""),
		Secure: cfg.UseSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("init s3 client: %w", err)
	}

	return &S3Sink{
		client: client,
		bucket: bucket,
		key:    key,
		region: region,
	}, nil
}

func (s *S3Sink) Location() string {
	return s3Scheme + s.bucket + "/" + s.key
}

func (s *S3Sink) ensureBucket(ctx context.Context) error {
	s.initOnce.Do(func() {
		exists, err := s.client.BucketExists(ctx, s.bucket)
		if err != nil {
			s.initErr = err
			return
		}
		if exists {
			return
		}
		s.initErr = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region})
	})
	return s.initErr
}

func (s *S3Sink) Write(ctx context.Context, data []byte) error {
	logger := ctxlog.FromContext(ctx)

	if err := s.ensureBucket(ctx); err != nil {
		return fmt.Errorf("ensure bucket %s: %w", s.bucket, err)
	}

	info, err := s.client.PutObject(ctx, s.bucket, s.key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("put %s: %w", s.Location(), err)
	}

	logger.Debug("Document uploaded.", "location", s.Location(), "etag", info.ETag, "bytes", info.Size)
	return nil
}

// ParseS3URL splits "s3://bucket/some/key" into bucket and key.
func ParseS3URL(raw string) (bucket, key string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("invalid s3 url %q: %w", raw, err)
	}
	if !strings.EqualFold(u.Scheme, "s3") {
		return "", "", fmt.Errorf("invalid s3 url %q: scheme must be s3", raw)
	}
	bucket = u.Host
	key = strings.TrimLeft(u.Path, "/")
	if bucket == "" {
		return "", "", fmt.Errorf("invalid s3 url %q: bucket is required", raw)
	}
	if key == "" {
		return "", "", fmt.Errorf("invalid s3 url %q: object key is required", raw)
	}
	return bucket, key, nil
}
