package engine

import (
	"context"
	"fmt"

	"github.com/toolforge/tool-spacemedia-sub000/internal/domain"
)

// RefreshByID re-fetches one media's detail from the source and merges it
// into the catalog. A source that no longer reports the id leads to
// deletion when nothing was ever published for the media, and to ignoring
// it otherwise.
func (e *Engine) RefreshByID(ctx context.Context, externalID string) (*domain.Media, error) {
	existing, err := e.catalog.GetByIdentity(ctx, e.source.Key(), externalID)
	if err != nil {
		return nil, fmt.Errorf("catalog lookup: %w", err)
	}

	sub := ""
	if existing != nil {
		sub = e.subFor(existing)
	}

	media, err := e.source.FetchDetail(ctx, sub, externalID)
	if err != nil {
		return nil, fmt.Errorf("fetch detail: %w", err)
	}

	if media == nil {
		if existing == nil {
			return nil, nil
		}
		if anyPublished(existing) {
			if err := e.catalog.MarkIgnored(ctx, existing.ID, "removed at source"); err != nil {
				return nil, err
			}
			e.logger.Info("media removed at source, kept as ignored", "id", externalID)
			return existing, nil
		}
		if err := e.catalog.Delete(ctx, existing.ID); err != nil {
			return nil, err
		}
		e.logger.Info("media removed at source, deleted", "id", externalID)
		return nil, nil
	}

	media.SourceID = e.source.Key()
	if media.ExternalID == "" {
		media.ExternalID = externalID
	}
	err = e.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		return e.catalog.Upsert(txCtx, media)
	})
	if err != nil {
		return nil, fmt.Errorf("save media: %w", err)
	}
	return media, nil
}

// RefreshByHash refreshes every media of the source owning a file with
// the given exact content hash.
func (e *Engine) RefreshByHash(ctx context.Context, hash string) ([]domain.Media, error) {
	owners, err := e.catalog.GetByContentHash(ctx, e.source.Key(), hash)
	if err != nil {
		return nil, fmt.Errorf("catalog lookup: %w", err)
	}

	var refreshed []domain.Media
	for i := range owners {
		media, err := e.RefreshByID(ctx, owners[i].ExternalID)
		if err != nil {
			return refreshed, fmt.Errorf("refresh %s: %w", owners[i].ExternalID, err)
		}
		if media != nil {
			refreshed = append(refreshed, *media)
		}
	}
	return refreshed, nil
}

func anyPublished(media *domain.Media) bool {
	for i := range media.Files {
		if media.Files[i].IsPublished() {
			return true
		}
	}
	return false
}
