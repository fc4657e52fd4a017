// Package storage implements the hosted-asset store on top of a MinIO
// (S3-compatible) bucket.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog"

	"github.com/litogalan/portfolio-cms/internal/core/domain"
	"github.com/litogalan/portfolio-cms/internal/core/ports"
)

// Config captures the settings for the object-storage connection.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicBaseURL, when set, prefixes returned object URLs (e.g. a CDN).
	PublicBaseURL string
}

// ObjectStore implements ports.MediaStore over a single bucket. The object
// key doubles as the asset's provider id.
type ObjectStore struct {
	client  *minio.Client
	bucket  string
	baseURL string
	logger  zerolog.Logger
}

// New creates the client, verifies the bucket exists and creates it when
// missing.
func New(ctx context.Context, cfg Config, logger zerolog.Logger) (*ObjectStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("storage client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("storage bucket check: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("storage bucket create: %w", err)
		}
	}

	baseURL := strings.TrimRight(cfg.PublicBaseURL, "/")
	if baseURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		baseURL = fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
	}

	return &ObjectStore{client: client, bucket: cfg.Bucket, baseURL: baseURL, logger: logger}, nil
}

// Upload stores the file under a fresh uuid-based key inside folder.
func (s *ObjectStore) Upload(ctx context.Context, folder string, file ports.FileUpload) (domain.HostedAsset, error) {
	key := fmt.Sprintf("%s/%s%s", folder, uuid.NewString(), path.Ext(file.Name))

	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(file.Data), int64(len(file.Data)),
		minio.PutObjectOptions{ContentType: file.ContentType})
	if err != nil {
		return domain.HostedAsset{}, fmt.Errorf("storage upload: %w", err)
	}

	return domain.HostedAsset{
		URL:      s.baseURL + "/" + key,
		PublicID: key,
	}, nil
}

// Delete removes the object identified by publicID.
func (s *ObjectStore) Delete(ctx context.Context, publicID string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, publicID, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("storage delete: %w", err)
	}
	return nil
}

// Replace uploads the new object first, then removes the old one. A failed
// removal after a successful upload is logged and the new reference is still
// returned.
func (s *ObjectStore) Replace(ctx context.Context, oldPublicID, folder string, file ports.FileUpload) (domain.HostedAsset, error) {
	asset, err := s.Upload(ctx, folder, file)
	if err != nil {
		return domain.HostedAsset{}, err
	}

	if oldPublicID != "" {
		if err := s.Delete(ctx, oldPublicID); err != nil {
			s.logger.Warn().Err(err).Str("public_id", oldPublicID).Msg("orphaned object: delete after replace failed")
		}
	}
	return asset, nil
}
