// Package storage wraps the S3-compatible media host behind a MediaStore.
// The store is optional: when any of the three credentials is missing the
// upload relay falls back to inline data URLs instead.
package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Options configures the media host connection.
type Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicURL overrides the base URL used when constructing hosted object
	// URLs, for deployments serving the bucket through a CDN or proxy.
	PublicURL string
}

// MediaStore is a thin client over the media host. A nil or unconfigured
// store is valid; callers must check Configured before Put.
type MediaStore struct {
	client *minio.Client
	opts   Options
}

// NewMediaStore builds the client and ensures the bucket exists. When the
// credentials are incomplete it returns an unconfigured store and no error.
func NewMediaStore(ctx context.Context, opts Options) (*MediaStore, error) {
	if opts.Endpoint == "" || opts.AccessKey == "" || opts.SecretKey == "" {
		return &MediaStore{opts: opts}, nil
	}

	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("media host client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		return nil, fmt.Errorf("media host bucket check: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, opts.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("media host bucket create: %w", err)
		}
	}

	return &MediaStore{client: client, opts: opts}, nil
}

// Configured reports whether the media host is usable.
func (s *MediaStore) Configured() bool {
	return s != nil && s.client != nil
}

// PutFile uploads a local file to the bucket and returns the hosted URL.
func (s *MediaStore) PutFile(ctx context.Context, objectName, filePath, contentType string) (string, error) {
	_, err := s.client.FPutObject(ctx, s.opts.Bucket, objectName, filePath, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("media host put %s: %w", objectName, err)
	}
	return s.ObjectURL(objectName), nil
}

// Remove deletes an object from the bucket.
func (s *MediaStore) Remove(ctx context.Context, objectName string) error {
	return s.client.RemoveObject(ctx, s.opts.Bucket, objectName, minio.RemoveObjectOptions{})
}

// ObjectURL constructs the public URL of a hosted object.
func (s *MediaStore) ObjectURL(objectName string) string {
	base := s.opts.PublicURL
	if base == "" {
		scheme := "http"
		if s.opts.UseSSL {
			scheme = "https"
		}
		base = fmt.Sprintf("%s://%s", scheme, s.opts.Endpoint)
	}
	return fmt.Sprintf("%s/%s/%s",
		strings.TrimRight(base, "/"), s.opts.Bucket, url.PathEscape(objectName))
}
