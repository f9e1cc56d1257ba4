package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// bucket driver

	"github.com/bhojansetu/bhojan-setu-api/internal/domain"
	"github.com/bhojansetu/bhojan-setu-api/pkg/config"
)

// Accepted product-image MIME types and their extensions.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// ImageStore persists product images in a blob bucket opened by URL
// (file:// locally, s3:// or gs:// in hosted deployments).
type ImageStore struct {
	bucket   *blob.Bucket
	baseURL  string
	maxBytes int64
}

// OpenImageStore opens the bucket from configuration.
func OpenImageStore(ctx context.Context, cfg config.StorageConfig) (*ImageStore, error) {
	bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
	if err != nil {
		return nil, fmt.Errorf("open bucket %s: %w", cfg.BucketURL, err)
	}
	return &ImageStore{
		bucket:   bucket,
		baseURL:  strings.TrimRight(cfg.PublicBaseURL, "/"),
		maxBytes: int64(cfg.MaxUploadMB) << 20,
	}, nil
}

// Close releases the bucket.
func (s *ImageStore) Close() error {
	return s.bucket.Close()
}

// MaxBytes returns the configured upload size limit.
func (s *ImageStore) MaxBytes() int64 {
	return s.maxBytes
}

// SaveProductImage validates MIME type and size, writes the object under
// product-images/<supplier>/<uuid><ext> and returns its public URL.
func (s *ImageStore) SaveProductImage(ctx context.Context, supplierID, contentType string, r io.Reader, size int64) (string, error) {
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return "", domain.ErrInvalidInput
	}
	if size <= 0 || size > s.maxBytes {
		return "", domain.ErrInvalidInput
	}

	key := path.Join("product-images", supplierID, uuid.New().String()+ext)
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("open bucket writer: %w", err)
	}
	if _, err := io.Copy(w, io.LimitReader(r, s.maxBytes)); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("write image: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close bucket writer: %w", err)
	}
	return s.baseURL + "/" + key, nil
}
