package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/toolforge/tool-spacemedia-sub000/internal/domain"
)

// CatalogStore persists media and their file metadata.
type CatalogStore struct {
	db *sqlx.DB
}

func NewCatalogStore(db *sqlx.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

const mediaColumns = `
	id, source_id, external_id, title, description, created_date,
	published_date, ignored, ignored_reason, attributes,
	first_seen_at, last_seen_at`

// GetByIdentity returns the media with the given composite identity, its
// files loaded, or nil when the catalog has no such media.
func (s *CatalogStore) GetByIdentity(ctx context.Context, sourceID, externalID string) (*domain.Media, error) {
	query := `SELECT` + mediaColumns + `
		FROM media
		WHERE source_id = $1 AND external_id = $2`

	row := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query, sourceID, externalID)
	media, err := scanMedia(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := s.loadFiles(ctx, media); err != nil {
		return nil, err
	}
	return media, nil
}

// GetByContentHash returns all media of a source owning a file with the
// given exact content hash. Used by the unicity precondition.
func (s *CatalogStore) GetByContentHash(ctx context.Context, sourceID, hash string) ([]domain.Media, error) {
	query := `SELECT DISTINCT m.id, m.source_id, m.external_id, m.title, m.description,
			m.created_date, m.published_date, m.ignored, m.ignored_reason,
			m.attributes, m.first_seen_at, m.last_seen_at
		FROM media m
		JOIN media_files f ON f.media_id = m.id
		WHERE m.source_id = $1 AND f.content_hash = $2
		ORDER BY m.id`

	rows, err := GetExecutor(ctx, s.db).QueryxContext(ctx, query, sourceID, hash)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Media
	for rows.Next() {
		media, err := scanMedia(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *media)
	}
	return result, rows.Err()
}

// Upsert writes a media and its files, keyed by (source_id, external_id)
// for the media and (media_id, asset_url) for each file. IDs are filled in
// on the passed structs.
func (s *CatalogStore) Upsert(ctx context.Context, media *domain.Media) error {
	attrs, err := json.Marshal(media.Attributes)
	if err != nil {
		return fmt.Errorf("marshal attributes: %w", err)
	}

	query := `
		INSERT INTO media (
			source_id, external_id, title, description, created_date,
			published_date, ignored, ignored_reason, attributes,
			first_seen_at, last_seen_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
		ON CONFLICT (source_id, external_id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			created_date = EXCLUDED.created_date,
			published_date = EXCLUDED.published_date,
			attributes = EXCLUDED.attributes,
			last_seen_at = now()
		RETURNING id`

	ex := GetExecutor(ctx, s.db)
	err = ex.QueryRowxContext(ctx, query,
		media.SourceID,
		media.ExternalID,
		media.Title,
		media.Description,
		media.CreatedDate,
		media.PublishedDate,
		media.Ignored,
		media.IgnoredReason,
		attrs,
	).Scan(&media.ID)
	if err != nil {
		return fmt.Errorf("upsert media: %w", err)
	}

	for i := range media.Files {
		file := &media.Files[i]
		file.MediaID = media.ID
		if err := s.upsertFile(ctx, file); err != nil {
			return fmt.Errorf("upsert file %s: %w", file.AssetURL, err)
		}
	}
	return nil
}

func (s *CatalogStore) upsertFile(ctx context.Context, file *domain.FileMetadata) error {
	query := `
		INSERT INTO media_files (
			media_id, asset_url, content_hash, perceptual_hash, size,
			extension, published_as, ignored
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (media_id, asset_url) DO UPDATE SET
			size = EXCLUDED.size,
			extension = EXCLUDED.extension
		RETURNING id, content_hash, perceptual_hash, published_as`

	var publishedAs pq.StringArray
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		file.MediaID,
		file.AssetURL,
		file.ContentHash,
		file.PerceptualHash,
		file.Size,
		file.Extension,
		pq.Array(file.PublishedAs),
		file.Ignored,
	).Scan(&file.ID, &file.ContentHash, &file.PerceptualHash, &publishedAs)
	if err != nil {
		return err
	}
	// Hashes and published identifiers already on the row win over the
	// freshly fetched (empty) ones.
	file.PublishedAs = publishedAs
	return nil
}

// UpdateFile persists a file's mutable state: hashes, published archive
// identifiers and the ignored flag.
func (s *CatalogStore) UpdateFile(ctx context.Context, file *domain.FileMetadata) error {
	query := `
		UPDATE media_files SET
			content_hash = $1,
			perceptual_hash = $2,
			size = $3,
			published_as = $4,
			ignored = $5
		WHERE id = $6`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		file.ContentHash,
		file.PerceptualHash,
		file.Size,
		pq.Array(file.PublishedAs),
		file.Ignored,
		file.ID,
	)
	return err
}

// MarkSeen refreshes last_seen_at for media re-observed during a run
// without a detail re-fetch.
func (s *CatalogStore) MarkSeen(ctx context.Context, sourceID string, externalIDs []string, at time.Time) error {
	if len(externalIDs) == 0 {
		return nil
	}
	query := `UPDATE media SET last_seen_at = $3 WHERE source_id = $1 AND external_id = ANY($2)`
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, sourceID, pq.Array(externalIDs), at)
	return err
}

// ListUnpublishedNotSeen returns media of a source that were not observed
// since the given time and have no published file. Used by end-of-run
// reconciliation after a complete sweep.
func (s *CatalogStore) ListUnpublishedNotSeen(ctx context.Context, sourceID string, since time.Time) ([]domain.Media, error) {
	query := `SELECT` + mediaColumns + `
		FROM media
		WHERE source_id = $1
		  AND last_seen_at < $2
		  AND NOT ignored
		  AND NOT EXISTS (
			SELECT 1 FROM media_files f
			WHERE f.media_id = media.id AND cardinality(f.published_as) > 0
		  )
		ORDER BY id`

	rows, err := GetExecutor(ctx, s.db).QueryxContext(ctx, query, sourceID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Media
	for rows.Next() {
		media, err := scanMedia(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *media)
	}
	return result, rows.Err()
}

// MarkIgnored flags a media so it is never considered for publication.
func (s *CatalogStore) MarkIgnored(ctx context.Context, mediaID int64, reason string) error {
	query := `UPDATE media SET ignored = true, ignored_reason = $2 WHERE id = $1`
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, mediaID, reason)
	return err
}

// Delete removes a media and, via cascade, its files.
func (s *CatalogStore) Delete(ctx context.Context, mediaID int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, `DELETE FROM media WHERE id = $1`, mediaID)
	return err
}

func (s *CatalogStore) loadFiles(ctx context.Context, media *domain.Media) error {
	query := `
		SELECT id, media_id, asset_url, content_hash, perceptual_hash,
			size, extension, published_as, ignored
		FROM media_files
		WHERE media_id = $1
		ORDER BY id`

	rows, err := GetExecutor(ctx, s.db).QueryxContext(ctx, query, media.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	media.Files = nil
	for rows.Next() {
		var f domain.FileMetadata
		var publishedAs pq.StringArray
		err := rows.Scan(
			&f.ID, &f.MediaID, &f.AssetURL, &f.ContentHash, &f.PerceptualHash,
			&f.Size, &f.Extension, &publishedAs, &f.Ignored,
		)
		if err != nil {
			return err
		}
		f.PublishedAs = publishedAs
		media.Files = append(media.Files, f)
	}
	return rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMedia(row rowScanner) (*domain.Media, error) {
	var m domain.Media
	var attrs []byte
	err := row.Scan(
		&m.ID, &m.SourceID, &m.ExternalID, &m.Title, &m.Description,
		&m.CreatedDate, &m.PublishedDate, &m.Ignored, &m.IgnoredReason,
		&attrs, &m.FirstSeenAt, &m.LastSeenAt,
	)
	if err != nil {
		return nil, err
	}
	if len(attrs) > 0 {
		if err := json.Unmarshal(attrs, &m.Attributes); err != nil {
			return nil, fmt.Errorf("unmarshal attributes: %w", err)
		}
	}
	return &m, nil
}
