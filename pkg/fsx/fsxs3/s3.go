package fsxs3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/roster-ats/roster/pkg/fsx"
)

// S3FileSystem implements fsx.FileSystem on an S3 bucket under a key prefix
type S3FileSystem struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3FileSystem creates a filesystem over bucket, scoping all keys
// under prefix.
func NewS3FileSystem(client *s3.Client, bucket, prefix string) *S3FileSystem {
	return &S3FileSystem{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

func (s *S3FileSystem) Join(parts ...string) string {
	return path.Join(parts...)
}

func (s *S3FileSystem) key(p string) string {
	return path.Join(s.prefix, p)
}

func (s *S3FileSystem) WriteFile(ctx context.Context, p string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(p)),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return fmt.Errorf("put s3://%s/%s: %w", s.bucket, s.key(p), err)
	}
	return nil
}

func (s *S3FileSystem) ReadFile(ctx context.Context, p string) ([]byte, error) {
	stream, err := s.ReadFileStream(ctx, p)
	if err != nil {
		return nil, err
	}
	defer stream.Close()
	return io.ReadAll(stream)
}

func (s *S3FileSystem) ReadFileStream(ctx context.Context, p string) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(p)),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, fsx.ErrNotFound
		}
		return nil, fmt.Errorf("get s3://%s/%s: %w", s.bucket, s.key(p), err)
	}
	return out.Body, nil
}

func (s *S3FileSystem) DeleteFile(ctx context.Context, p string) error {
	// S3 deletes are idempotent: deleting a missing key succeeds, so probe
	// first to preserve the ErrNotFound contract.
	exists, err := s.Exists(ctx, p)
	if err != nil {
		return err
	}
	if !exists {
		return fsx.ErrNotFound
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(p)),
	})
	if err != nil {
		return fmt.Errorf("delete s3://%s/%s: %w", s.bucket, s.key(p), err)
	}
	return nil
}

func (s *S3FileSystem) Exists(ctx context.Context, p string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(p)),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, fmt.Errorf("head s3://%s/%s: %w", s.bucket, s.key(p), err)
	}
	return true, nil
}
