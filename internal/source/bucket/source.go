// Package bucket is the source adapter for S3-compatible file buckets.
// Each configured bucket is one sub-source; object keys are the
// source-local identifiers.
package bucket

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/toolforge/tool-spacemedia-sub000/internal/config"
	"github.com/toolforge/tool-spacemedia-sub000/internal/domain"
)

type Source struct {
	client   *minio.Client
	key      string
	name     string
	buckets  []string
	pageSize int
	logger   *slog.Logger
}

// New creates a bucket source from its configuration block.
func New(cfg config.SourceConfig, logger *slog.Logger) (*Source, error) {
	client, err := minio.New(cfg.Bucket.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Bucket.AccessKey, cfg.Bucket.SecretKey, ""),
		Secure: cfg.Bucket.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init bucket client: %w", err)
	}
	return &Source{
		client:   client,
		key:      cfg.Key,
		name:     cfg.Name,
		buckets:  cfg.Bucket.Buckets,
		pageSize: cfg.PageSize,
		logger:   logger.With("source", cfg.Key),
	}, nil
}

func (s *Source) Key() string { return s.key }

func (s *Source) Name() string { return s.name }

func (s *Source) SubSources() []string { return s.buckets }

// OrderedByRecency is false: listings come back in key order, so every
// bucket run is a complete sweep and the watermark early exit never
// applies.
func (s *Source) OrderedByRecency() bool { return false }

// NextPage lists up to pageSize objects after the token key.
func (s *Source) NextPage(ctx context.Context, sub, token string) (domain.Page, error) {
	listCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	objects := s.client.ListObjects(listCtx, sub, minio.ListObjectsOptions{
		Recursive:  true,
		StartAfter: token,
	})

	var page domain.Page
	for obj := range objects {
		if obj.Err != nil {
			return domain.Page{}, fmt.Errorf("list bucket %s: %w", sub, obj.Err)
		}
		if strings.HasSuffix(obj.Key, "/") {
			continue
		}
		page.Items = append(page.Items, domain.RawRecord{
			ID:   obj.Key,
			Date: obj.LastModified,
			URL:  s.assetURL(sub, obj.Key),
		})
		if len(page.Items) >= s.pageSize {
			page.HasMore = true
			page.NextToken = obj.Key
			break
		}
	}
	return page, nil
}

// FetchDetail stats one object. A vanished key yields (nil, nil).
func (s *Source) FetchDetail(ctx context.Context, sub, id string) (*domain.Media, error) {
	stat, err := s.client.StatObject(ctx, sub, id, minio.StatObjectOptions{})
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NoSuchBucket" {
			return nil, nil
		}
		return nil, fmt.Errorf("stat object %s/%s: %w", sub, id, err)
	}

	title := strings.TrimSuffix(path.Base(id), path.Ext(id))
	modified := stat.LastModified

	media := &domain.Media{
		SourceID:      s.key,
		ExternalID:    id,
		Title:         title,
		PublishedDate: &modified,
		Attributes:    map[string]string{"bucket": sub},
		Files: []domain.FileMetadata{
			{
				AssetURL:  s.assetURL(sub, id),
				Size:      stat.Size,
				Extension: strings.TrimPrefix(path.Ext(id), "."),
			},
		},
	}
	for k, v := range stat.UserMetadata {
		media.Attributes[strings.ToLower(k)] = v
	}
	return media, nil
}

func (s *Source) assetURL(bucket, key string) string {
	endpoint := s.client.EndpointURL()
	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(endpoint.String(), "/"), bucket, key)
}
