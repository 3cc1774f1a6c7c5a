package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/toolforge/tool-spacemedia-sub000/internal/domain"
)

// RunOptions restricts or modifies one harvest run.
type RunOptions struct {
	// SubSources limits the run to the named sub-sources. Empty means all.
	SubSources []string
	// Manual marks the run as operator-triggered, which unlocks
	// manual-only publication and bypasses the minimum-year check.
	Manual bool
}

// Run executes one harvest run over the source. Per-item errors are
// caught, recorded in the problem ledger and never abort the loop; only
// run-setup errors and cancellation do.
func (e *Engine) Run(ctx context.Context, opts RunOptions) (*domain.RunSummary, error) {
	start := time.Now()

	cursor, err := e.cursors.Get(ctx, e.source.Key())
	if err != nil {
		return nil, fmt.Errorf("load run cursor: %w", err)
	}

	summary := &domain.RunSummary{
		RunID:    uuid.NewString(),
		SourceID: e.source.Key(),
	}

	watermark := cursor.Watermark
	bounded := watermark != nil && e.source.OrderedByRecency()

	e.logger.Info("starting run",
		"run_id", summary.RunID,
		"source_name", e.source.Name(),
		"bounded", bounded,
	)

	structural := false
	observed := 0
	for _, sub := range e.selectSubSources(opts.SubSources) {
		n, err := e.harvestSub(ctx, sub, watermark, bounded, opts.Manual, summary)
		observed += n
		if errors.Is(err, errStructural) {
			structural = true
			continue
		}
		if err != nil {
			return summary, err
		}
	}

	// A source that previously had content and now reports nothing at all
	// is suspect; the watermark must not advance past items the broken
	// result set may have hidden.
	if observed == 0 && !cursor.LastRunEnd.IsZero() && !structural {
		e.logger.Warn("run observed no items, treating result set as incomplete")
		structural = true
	}

	if !bounded && !structural {
		e.reconcile(ctx, start, summary)
	}

	now := time.Now()
	cursor.SourceID = e.source.Key()
	cursor.LastRunStart = start
	cursor.LastRunEnd = now
	cursor.LastRunDuration = now.Sub(start)
	if !structural {
		// The watermark trails now by the grace period so sources that
		// backdate late-arriving items are re-checked within that window.
		candidate := now.Add(-e.cfg.GracePeriod)
		if cursor.Watermark == nil || candidate.After(*cursor.Watermark) {
			cursor.Watermark = &candidate
		}
	}
	if err := e.cursors.Update(ctx, cursor); err != nil {
		return summary, fmt.Errorf("update run cursor: %w", err)
	}

	summary.Duration = time.Since(start)

	if e.notifier != nil && summary.Published > 0 {
		if err := e.notifier.Notify(ctx, summary); err != nil {
			e.logger.Error("batch notification failed", "error", err)
		}
	}

	e.logger.Info("run completed",
		"run_id", summary.RunID,
		"processed", summary.Processed,
		"new", summary.New,
		"published", summary.Published,
		"skipped", summary.Skipped,
		"problems", summary.Problems,
		"duration", summary.Duration,
	)

	return summary, nil
}

func (e *Engine) selectSubSources(requested []string) []string {
	all := e.source.SubSources()
	if len(requested) == 0 {
		return all
	}
	allowed := make(map[string]bool, len(requested))
	for _, s := range requested {
		allowed[s] = true
	}
	var out []string
	for _, s := range all {
		if allowed[s] {
			out = append(out, s)
		}
	}
	return out
}

func (e *Engine) harvestSub(ctx context.Context, sub string, watermark *time.Time, bounded, manual bool, summary *domain.RunSummary) (int, error) {
	token := ""
	retries := 0
	observed := 0

	for {
		if err := ctx.Err(); err != nil {
			return observed, err
		}

		page, err := e.source.NextPage(ctx, sub, token)
		if err != nil {
			retries++
			e.recordProblem(ctx, pageURL(e.source.Key(), sub, token), err)
			summary.Problems++
			if retries >= e.harvestCfg.PageRetryBudget {
				e.logger.Error("page fetch retry budget exhausted",
					"sub_source", sub,
					"retries", retries,
					"error", err,
				)
				return observed, fmt.Errorf("fetch page %q token %q: %v: %w", sub, token, err, errStructural)
			}
			continue
		}
		retries = 0

		if len(page.Items) == 0 {
			return observed, nil
		}
		observed += len(page.Items)

		var seen []string
		for _, item := range page.Items {
			if err := ctx.Err(); err != nil {
				return observed, err
			}
			if bounded && !item.Date.IsZero() && item.Date.Before(*watermark) {
				continue
			}
			e.processRecord(ctx, sub, item, manual, summary)
			seen = append(seen, item.ID)
		}
		if err := e.catalog.MarkSeen(ctx, e.source.Key(), seen, time.Now()); err != nil {
			e.logger.Error("failed to mark media seen", "error", err)
		}

		// The early-exit decision is only taken once the whole page's
		// dates are known.
		if bounded {
			if min, ok := page.MinDate(); ok && min.Before(*watermark) {
				e.logger.Info("reached watermark, stopping pagination", "sub_source", sub)
				return observed, nil
			}
		}
		if !page.HasMore {
			return observed, nil
		}
		token = page.NextToken
	}
}

func (e *Engine) processRecord(ctx context.Context, sub string, record domain.RawRecord, manual bool, summary *domain.RunSummary) {
	media, isNew, err := e.resolveInTx(ctx, sub, record)
	if err != nil {
		// One bad item must never lose progress on the rest of the run.
		e.logger.Warn("record failed", "id", record.ID, "error", err)
		e.recordProblem(ctx, recordURL(record, e.source.Key()), err)
		summary.Problems++
		return
	}
	if media == nil {
		return
	}

	summary.Processed++
	if isNew {
		summary.New++
	}
	if media.Ignored {
		summary.Skipped++
		return
	}

	e.enrich(ctx, media, summary)

	if !e.anyEligible(media, manual) {
		summary.Skipped++
		return
	}

	published, failed, err := e.Publish(ctx, media, e.cfg.Publish.CheckUnicity, manual)
	summary.Problems += failed
	if err != nil {
		e.logger.Warn("publish refused", "id", record.ID, "error", err)
		e.recordProblem(ctx, recordURL(record, e.source.Key()), err)
		summary.Problems++
		return
	}
	if published == 0 {
		summary.Skipped++
		return
	}

	summary.Published += published
	for _, f := range media.Files {
		if f.IsPublished() {
			summary.Items = append(summary.Items, domain.PublishedRef{
				SourceID:   media.SourceID,
				ExternalID: media.ExternalID,
				Title:      media.Title,
				AssetURL:   f.AssetURL,
				ArchiveIDs: f.PublishedAs,
			})
		}
	}
}

func (e *Engine) resolveInTx(ctx context.Context, sub string, record domain.RawRecord) (*domain.Media, bool, error) {
	var (
		media *domain.Media
		isNew bool
	)
	err := e.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		media, isNew, err = e.resolve(txCtx, sub, record)
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return media, isNew, nil
}

func (e *Engine) anyEligible(media *domain.Media, manual bool) bool {
	for i := range media.Files {
		file := &media.Files[i]
		if file.IsPublished() {
			continue
		}
		if ShouldPublish(media, file, e.cfg.Publish, manual) {
			return true
		}
	}
	return false
}

// enrich computes missing hashes for a media's files. Failures are
// recorded per file and leave the other files untouched.
func (e *Engine) enrich(ctx context.Context, media *domain.Media, summary *domain.RunSummary) {
	for i := range media.Files {
		file := &media.Files[i]
		if file.Ignored || file.IsPublished() {
			continue
		}
		if file.ContentHash != nil && (file.PerceptualHash != nil || !isImage(file.Extension)) {
			continue
		}
		if err := e.fingerprintFile(ctx, file); err != nil {
			e.logger.Warn("fingerprint failed", "asset", file.AssetURL, "error", err)
			e.recordProblem(ctx, file.AssetURL, err)
			summary.Problems++
			continue
		}
		if err := e.catalog.UpdateFile(ctx, file); err != nil {
			e.logger.Error("failed to persist fingerprints", "asset", file.AssetURL, "error", err)
			e.recordProblem(ctx, file.AssetURL, err)
			summary.Problems++
		}
	}
}

func (e *Engine) fingerprintFile(ctx context.Context, file *domain.FileMetadata) error {
	fctx, cancel := context.WithTimeout(ctx, e.harvestCfg.AssetTimeout)
	defer cancel()

	data, err := e.assets.Fetch(fctx, file.AssetURL)
	if err != nil {
		return fmt.Errorf("fetch asset: %w", err)
	}
	if file.Size == 0 {
		file.Size = int64(len(data))
	}

	if file.ContentHash == nil {
		hash, err := e.fingerprints.Hash(fctx, bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("compute content hash: %w", err)
		}
		file.ContentHash = &hash
	}
	if file.PerceptualHash == nil && isImage(file.Extension) {
		fp, err := e.fingerprints.Fingerprint(fctx, bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("compute perceptual hash: %w", err)
		}
		file.PerceptualHash = &fp
	}
	return nil
}

// reconcile handles deletions after a complete sweep: catalog media the
// source no longer reports are taken out of circulation, but only when
// nothing was ever published for them.
func (e *Engine) reconcile(ctx context.Context, runStart time.Time, summary *domain.RunSummary) {
	gone, err := e.catalog.ListUnpublishedNotSeen(ctx, e.source.Key(), runStart)
	if err != nil {
		e.logger.Error("reconciliation query failed", "error", err)
		return
	}
	for i := range gone {
		if err := e.catalog.MarkIgnored(ctx, gone[i].ID, "no longer reported by source"); err != nil {
			e.logger.Error("failed to ignore vanished media", "id", gone[i].ID, "error", err)
		}
	}
	if len(gone) > 0 {
		e.logger.Info("reconciled vanished media", "count", len(gone))
	}
}

func isImage(ext string) bool {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "jpg", "jpeg", "png", "gif", "webp", "tif", "tiff", "bmp":
		return true
	}
	return false
}

func pageURL(sourceKey, sub, token string) string {
	url := "page://" + sourceKey
	if sub != "" {
		url += "/" + sub
	}
	if token != "" {
		url += "?token=" + token
	}
	return url
}

func recordURL(record domain.RawRecord, sourceKey string) string {
	if record.URL != "" {
		return record.URL
	}
	return "record://" + sourceKey + "/" + record.ID
}
