package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/toolforge/tool-spacemedia-sub000/internal/domain"
)

// RunCursorStore persists the per-source run cursor. The harvest loop
// reads it at run start and writes it once at run end.
type RunCursorStore struct {
	db *sqlx.DB
}

func NewRunCursorStore(db *sqlx.DB) *RunCursorStore {
	return &RunCursorStore{db: db}
}

func (s *RunCursorStore) Get(ctx context.Context, sourceID string) (*domain.RunCursor, error) {
	query := `
		SELECT source_id, last_run_start, last_run_end, last_run_duration_ms, watermark
		FROM run_cursors
		WHERE source_id = $1`

	var (
		cursor     domain.RunCursor
		durationMS int64
	)
	err := s.db.QueryRowContext(ctx, query, sourceID).Scan(
		&cursor.SourceID,
		&cursor.LastRunStart,
		&cursor.LastRunEnd,
		&durationMS,
		&cursor.Watermark,
	)
	if err == sql.ErrNoRows {
		// Empty cursor for sources that never ran.
		return &domain.RunCursor{SourceID: sourceID}, nil
	}
	if err != nil {
		return nil, err
	}
	cursor.LastRunDuration = time.Duration(durationMS) * time.Millisecond
	return &cursor, nil
}

func (s *RunCursorStore) Update(ctx context.Context, cursor *domain.RunCursor) error {
	query := `
		INSERT INTO run_cursors (source_id, last_run_start, last_run_end, last_run_duration_ms, watermark)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (source_id) DO UPDATE SET
			last_run_start = EXCLUDED.last_run_start,
			last_run_end = EXCLUDED.last_run_end,
			last_run_duration_ms = EXCLUDED.last_run_duration_ms,
			watermark = EXCLUDED.watermark`

	_, err := s.db.ExecContext(ctx, query,
		cursor.SourceID,
		cursor.LastRunStart,
		cursor.LastRunEnd,
		cursor.LastRunDuration.Milliseconds(),
		cursor.Watermark,
	)
	return err
}
