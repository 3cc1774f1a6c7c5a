package domain

import "time"

// RunCursor is the per-source persisted state of the last harvest run. The
// watermark bounds future incremental runs: items older than it are not
// fetched again. It only ever moves forward.
type RunCursor struct {
	SourceID        string        `db:"source_id"`
	LastRunStart    time.Time     `db:"last_run_start"`
	LastRunEnd      time.Time     `db:"last_run_end"`
	LastRunDuration time.Duration `db:"-"`
	Watermark       *time.Time    `db:"watermark"`
}

// Problem is one known-bad item, unique per (source, URL). Re-occurrence
// updates the row instead of duplicating it.
type Problem struct {
	ID         int64     `db:"id"`
	SourceID   string    `db:"source_id"`
	URL        string    `db:"url"`
	Message    string    `db:"message"`
	OccurredAt time.Time `db:"occurred_at"`
}

// PublishedRef identifies one asset published during a run, for the
// end-of-run batch notification.
type PublishedRef struct {
	SourceID   string   `json:"source_id"`
	ExternalID string   `json:"external_id"`
	Title      string   `json:"title"`
	AssetURL   string   `json:"asset_url"`
	ArchiveIDs []string `json:"archive_ids"`
}

// RunSummary holds statistics about one harvest run of one source.
type RunSummary struct {
	RunID     string
	SourceID  string
	Processed int
	New       int
	Published int
	Skipped   int
	Problems  int
	Items     []PublishedRef
	Duration  time.Duration
}
