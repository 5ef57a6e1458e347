package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"lumina_site/internal/common"
	"lumina_site/internal/domain/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

const presignExpiry = 15 * time.Minute

// S3Store talks to any S3-compatible bucket. In production that is
// Cloudflare R2 via its S3 endpoint.
type S3Store struct {
	client       *s3.Client
	presign      *s3.PresignClient
	bucket       string
	publicDomain string
	endpoint     string
}

type S3Options struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicDomain    string
}

func NewS3Store(ctx context.Context, opts S3Options) (*S3Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(opts.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			opts.AccessKeyID,
			opts.SecretAccessKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("loading S3 config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(opts.Endpoint)
		o.UsePathStyle = true
	})

	return &S3Store{
		client:       client,
		presign:      s3.NewPresignClient(client),
		bucket:       opts.Bucket,
		publicDomain: opts.PublicDomain,
		endpoint:     strings.TrimSuffix(opts.Endpoint, "/"),
	}, nil
}

func (s *S3Store) publicURL(key string) string {
	if s.publicDomain != "" {
		return fmt.Sprintf("https://%s/%s", s.publicDomain, key)
	}
	return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key)
}

func (s *S3Store) List(ctx context.Context, prefix string, limit int) ([]model.File, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	input := &s3.ListObjectsV2Input{
		Bucket:  aws.String(s.bucket),
		MaxKeys: aws.Int32(int32(limit)),
	}
	if prefix != "" {
		input.Prefix = aws.String(prefix)
	}

	out, err := s.client.ListObjectsV2(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("s3Store.List: %w", err)
	}

	files := make([]model.File, 0, len(out.Contents))
	for _, obj := range out.Contents {
		key := aws.ToString(obj.Key)
		files = append(files, model.File{
			Key:          key,
			Name:         BaseName(key),
			Size:         aws.ToInt64(obj.Size),
			LastModified: aws.ToTime(obj.LastModified),
			URL:          s.publicURL(key),
		})
	}
	return files, nil
}

func (s *S3Store) Upload(ctx context.Context, key string, body []byte, contentType string) (*model.File, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("s3Store.Upload: %w", err)
	}
	return &model.File{
		Key:          key,
		Name:         BaseName(key),
		Size:         int64(len(body)),
		LastModified: time.Now(),
		ContentType:  contentType,
		URL:          s.publicURL(key),
	}, nil
}

// Delete reports true even when the key did not exist; S3 deletes are
// idempotent and do not distinguish the two.
func (s *S3Store) Delete(ctx context.Context, key string) (bool, error) {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return false, fmt.Errorf("s3Store.Delete: %w", err)
	}
	return true, nil
}

// Rename is copy-then-delete; S3 has no native move.
func (s *S3Store) Rename(ctx context.Context, oldKey, newKey string) (bool, error) {
	source := url.PathEscape(s.bucket + "/" + oldKey)
	_, err := s.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(s.bucket),
		Key:        aws.String(newKey),
		CopySource: aws.String(source),
	})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("s3Store.Rename: %w", err)
	}
	if _, err := s.Delete(ctx, oldKey); err != nil {
		return false, err
	}
	return true, nil
}

func (s *S3Store) Info(ctx context.Context, key string) (*model.File, error) {
	out, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("s3Store.Info: %w", err)
	}
	return &model.File{
		Key:          key,
		Name:         BaseName(key),
		Size:         aws.ToInt64(out.ContentLength),
		LastModified: aws.ToTime(out.LastModified),
		ContentType:  aws.ToString(out.ContentType),
		URL:          s.publicURL(key),
	}, nil
}

func (s *S3Store) PresignUpload(ctx context.Context, key, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	req, err := s.presign.PresignPutObject(ctx, input, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", fmt.Errorf("s3Store.PresignUpload: %w", err)
	}
	return req.URL, nil
}

func isNotFound(err error) bool {
	var notFound *types.NotFound
	var noSuchKey *types.NoSuchKey
	return errors.As(err, &notFound) || errors.As(err, &noSuchKey)
}
