// Package engine is the generic harvest-synchronize-deduplicate-publish
// core. Source adapters, the archive API, the fingerprint service and the
// notification channel are all narrow interfaces; the engine owns the run
// loop, identity resolution, deduplication policy, the publish gate and
// the publish executor.
package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/toolforge/tool-spacemedia-sub000/internal/config"
	"github.com/toolforge/tool-spacemedia-sub000/internal/domain"
)

type Engine struct {
	source       Source
	catalog      CatalogStore
	cursors      CursorStore
	problems     ProblemStore
	txManager    TransactionManager
	archive      Archive
	fingerprints Fingerprinter
	assets       AssetFetcher
	describer    Describer
	notifier     Notifier
	logger       *slog.Logger
	cfg          config.SourceConfig
	harvestCfg   config.HarvestConfig
}

func New(
	source Source,
	catalog CatalogStore,
	cursors CursorStore,
	problems ProblemStore,
	txManager TransactionManager,
	archive Archive,
	fingerprints Fingerprinter,
	assets AssetFetcher,
	describer Describer,
	notifier Notifier,
	logger *slog.Logger,
	cfg config.SourceConfig,
	harvestCfg config.HarvestConfig,
) *Engine {
	return &Engine{
		source:       source,
		catalog:      catalog,
		cursors:      cursors,
		problems:     problems,
		txManager:    txManager,
		archive:      archive,
		fingerprints: fingerprints,
		assets:       assets,
		describer:    describer,
		notifier:     notifier,
		logger:       logger.With("source", source.Key()),
		cfg:          cfg,
		harvestCfg:   harvestCfg,
	}
}

// recordProblem upserts a ledger entry for the offending URL. Ledger
// failures are logged and swallowed: the ledger must never take down the
// run it exists to protect.
func (e *Engine) recordProblem(ctx context.Context, url string, cause error) {
	problem := &domain.Problem{
		SourceID:   e.source.Key(),
		URL:        url,
		Message:    cause.Error(),
		OccurredAt: time.Now().UTC(),
	}
	if err := e.problems.Upsert(ctx, problem); err != nil {
		e.logger.Error("failed to record problem", "url", url, "error", err)
	}
}

// subFor returns the sub-source a media was first discovered in, for
// operations that need to re-fetch its detail later.
func (e *Engine) subFor(media *domain.Media) string {
	return media.Attributes["sub_source"]
}
