package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/toolforge/tool-spacemedia-sub000/internal/description"
	"github.com/toolforge/tool-spacemedia-sub000/internal/domain"
)

// Publish attempts to publish every eligible file of the media. Media-level
// preconditions fail with PublishForbiddenError and publish nothing.
// Per-file failures are recorded in the problem ledger and counted in
// failed; they never prevent the remaining files of the same media from
// being attempted. Successful publishes are persisted immediately, so a
// crash cannot lose already-published state.
func (e *Engine) Publish(ctx context.Context, media *domain.Media, checkUnicity, isManual bool) (published, failed int, err error) {
	if domain.PublishMode(e.cfg.Publish.Mode) == domain.PublishDisabled {
		return 0, 0, &PublishForbiddenError{Reason: "publish mode disabled"}
	}
	if media.Ignored {
		return 0, 0, &PublishForbiddenError{Reason: "media is ignored"}
	}
	if checkUnicity {
		if err := e.checkUnicity(ctx, media); err != nil {
			return 0, 0, err
		}
	}

	for i := range media.Files {
		file := &media.Files[i]
		if file.IsPublished() {
			// Terminal: only an explicit supersede may clear the
			// published-identifier set.
			continue
		}
		if !ShouldPublish(media, file, e.cfg.Publish, isManual) {
			continue
		}
		if err := e.publishFile(ctx, media, file); err != nil {
			e.logger.Warn("publish file failed", "asset", file.AssetURL, "error", err)
			e.recordProblem(ctx, file.AssetURL, err)
			failed++
			continue
		}
		if file.IsPublished() {
			published++
		}
	}
	return published, failed, nil
}

// checkUnicity refuses to publish when more than one media of the source
// shares a file's exact content hash: with two candidate descriptions the
// executor will not guess which one is correct.
func (e *Engine) checkUnicity(ctx context.Context, media *domain.Media) error {
	for i := range media.Files {
		file := &media.Files[i]
		if file.ContentHash == nil || *file.ContentHash == "" {
			continue
		}
		twins, err := e.catalog.GetByContentHash(ctx, e.source.Key(), *file.ContentHash)
		if err != nil {
			return fmt.Errorf("unicity lookup: %w", err)
		}
		if len(twins) > 1 {
			ids := make([]string, len(twins))
			for j := range twins {
				ids[j] = twins[j].SourceID + "/" + twins[j].ExternalID
			}
			return &PublishForbiddenError{
				Reason:   fmt.Sprintf("content hash %s is shared by %d media", *file.ContentHash, len(twins)),
				MediaIDs: ids,
			}
		}
	}
	return nil
}

func (e *Engine) publishFile(ctx context.Context, media *domain.Media, file *domain.FileMetadata) error {
	if file.ContentHash == nil || *file.ContentHash == "" {
		return &PublishForbiddenError{Reason: "file has no content hash"}
	}

	decision, remote, err := e.dedupeWithRemote(ctx, media, file)
	if err != nil {
		return err
	}

	switch decision.Kind {
	case domain.DedupeSkip:
		e.logger.Info("archive already has an equal or better copy",
			"asset", file.AssetURL,
			"token", media.IdentifierToken(),
		)
		return nil

	case domain.DedupeSupersede:
		for _, id := range decision.ExistingIDs {
			if err := e.archive.ReplaceEntry(ctx, id, file.AssetURL); err != nil {
				return fmt.Errorf("replace entry %s: %w", id, err)
			}
		}
		file.PublishedAs = decision.ExistingIDs

	case domain.DedupeProceed:
		if foreign := tokenHeldByOthers(media, remote); len(foreign) > 0 {
			return &PublishForbiddenError{
				Reason:   fmt.Sprintf("identifier token %s already in the archive under different content", media.IdentifierToken()),
				MediaIDs: foreign,
			}
		}
		desc, err := e.describer.Build(media, file)
		if err != nil {
			if errors.Is(err, description.ErrNoLicence) {
				return &PublishForbiddenError{Reason: err.Error()}
			}
			return fmt.Errorf("build description: %w", err)
		}
		id, err := e.archive.CreateEntry(ctx, desc.Title, desc.Body, file.AssetURL)
		if err != nil {
			return fmt.Errorf("create entry: %w", err)
		}
		file.PublishedAs = []string{id}
		if err := e.archive.EditMetadata(ctx, id, desc.StructuredFields()); err != nil {
			// The entry exists; losing the structured edit is recoverable
			// by an operator, losing the published state is not.
			e.logger.Error("metadata edit failed after create", "id", id, "error", err)
			e.recordProblem(ctx, file.AssetURL, err)
		}
	}

	if err := e.catalog.UpdateFile(ctx, file); err != nil {
		return fmt.Errorf("persist published file: %w", err)
	}
	return nil
}
