package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

var ErrNotConfigured = errors.New("report storage is not configured")

const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// R2Config describes an S3-compatible bucket (Cloudflare R2, MinIO, AWS).
type R2Config struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	Region        string
	PublicBaseURL string
	Prefix        string
}

func (c R2Config) configured() bool {
	return c.Endpoint != "" && c.AccessKey != "" && c.SecretKey != "" && c.Bucket != ""
}

type R2Client struct {
	client        *s3.Client
	bucket        string
	endpoint      string
	publicBaseURL string
	prefix        string
}

func NewR2Client(cfg R2Config) (*R2Client, error) {
	cfg.Endpoint = strings.TrimRight(strings.TrimSpace(cfg.Endpoint), "/")
	cfg.PublicBaseURL = strings.TrimRight(strings.TrimSpace(cfg.PublicBaseURL), "/")
	if !cfg.configured() {
		return nil, ErrNotConfigured
	}
	if cfg.Region == "" {
		cfg.Region = "auto"
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "visitor-reports"
	}

	awsCfg := aws.Config{
		Region:      cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})

	return &R2Client{
		client:        client,
		bucket:        cfg.Bucket,
		endpoint:      cfg.Endpoint,
		publicBaseURL: cfg.PublicBaseURL,
		prefix:        strings.Trim(cfg.Prefix, "/"),
	}, nil
}

// ReportKey places a generated report under prefix/YYYY/MM/DD/<id>/<file>.
func ReportKey(prefix string, id uuid.UUID, fileName string, at time.Time) string {
	return path.Join(prefix, at.Format("2006/01/02"), id.String(), fileName)
}

// PutReport uploads a generated workbook and returns its URL.
func (r *R2Client) PutReport(ctx context.Context, id uuid.UUID, fileName string, content []byte) (string, error) {
	if r == nil || r.client == nil {
		return "", ErrNotConfigured
	}
	if len(content) == 0 {
		return "", fmt.Errorf("empty report")
	}

	key := ReportKey(r.prefix, id, fileName, time.Now().UTC())
	input := &s3.PutObjectInput{
		Bucket:             aws.String(r.bucket),
		Key:                aws.String(key),
		Body:               bytes.NewReader(content),
		ContentType:        aws.String(XLSXContentType),
		ContentLength:      aws.Int64(int64(len(content))),
		ContentDisposition: aws.String(fmt.Sprintf("attachment; filename=%q", fileName)),
	}
	if _, err := r.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("r2 upload failed: %w", err)
	}
	return r.objectURL(key), nil
}

// Ping checks that the bucket is reachable with the configured credentials.
func (r *R2Client) Ping(ctx context.Context) error {
	if r == nil || r.client == nil {
		return ErrNotConfigured
	}
	if _, err := r.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(r.bucket)}); err != nil {
		return fmt.Errorf("r2 head bucket: %w", err)
	}
	return nil
}

func (r *R2Client) objectURL(key string) string {
	trimmedKey := strings.TrimLeft(key, "/")
	if r.publicBaseURL != "" {
		return fmt.Sprintf("%s/%s/%s", r.publicBaseURL, r.bucket, trimmedKey)
	}
	return fmt.Sprintf("%s/%s/%s", r.endpoint, r.bucket, trimmedKey)
}
