package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/toolforge/tool-spacemedia-sub000/internal/domain"
)

// ProblemStore is the problem ledger: at most one open row per
// (source, URL), re-occurrence updates in place.
type ProblemStore struct {
	db *sqlx.DB
}

func NewProblemStore(db *sqlx.DB) *ProblemStore {
	return &ProblemStore{db: db}
}

func (s *ProblemStore) Upsert(ctx context.Context, problem *domain.Problem) error {
	query := `
		INSERT INTO problems (source_id, url, message, occurred_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (source_id, url) DO UPDATE SET
			message = EXCLUDED.message,
			occurred_at = EXCLUDED.occurred_at
		RETURNING id`

	return s.db.QueryRowContext(ctx, query,
		problem.SourceID,
		problem.URL,
		problem.Message,
		problem.OccurredAt,
	).Scan(&problem.ID)
}

// Reset clears all open problems for a source. Operator action.
func (s *ProblemStore) Reset(ctx context.Context, sourceID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM problems WHERE source_id = $1`, sourceID)
	return err
}

func (s *ProblemStore) ListBySource(ctx context.Context, sourceID string) ([]domain.Problem, error) {
	query := `
		SELECT id, source_id, url, message, occurred_at
		FROM problems
		WHERE source_id = $1
		ORDER BY occurred_at DESC`

	var problems []domain.Problem
	if err := s.db.SelectContext(ctx, &problems, query, sourceID); err != nil {
		return nil, err
	}
	return problems, nil
}

func (s *ProblemStore) CountBySource(ctx context.Context, sourceID string) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, `SELECT count(*) FROM problems WHERE source_id = $1`, sourceID)
	return count, err
}
