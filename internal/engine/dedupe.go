package engine

import (
	"context"
	"fmt"

	"github.com/toolforge/tool-spacemedia-sub000/internal/domain"
	"github.com/toolforge/tool-spacemedia-sub000/internal/fingerprint"
)

// Dedupe decides whether the archive already represents the candidate
// asset. It searches the archive by the media's identifier token and
// compares perceptual fingerprints within the similarity threshold.
//
// A match that is not smaller than the candidate means the archive
// already holds an equal-or-better copy: skip. Matches that are all
// smaller are superseded in place, reusing their identifiers, so storage
// quality only ever increases and never duplicates.
func (e *Engine) Dedupe(ctx context.Context, media *domain.Media, file *domain.FileMetadata) (domain.DedupeDecision, error) {
	decision, _, err := e.dedupeWithRemote(ctx, media, file)
	return decision, err
}

// dedupeWithRemote also returns the raw archive search results, which the
// executor reuses for the identifier-token precondition.
func (e *Engine) dedupeWithRemote(ctx context.Context, media *domain.Media, file *domain.FileMetadata) (domain.DedupeDecision, []domain.ArchiveFile, error) {
	remote, err := e.archive.Search(ctx, media.IdentifierToken())
	if err != nil {
		return domain.DedupeDecision{}, nil, fmt.Errorf("search archive: %w", err)
	}

	if file.PerceptualHash == nil || *file.PerceptualHash == "" {
		// Without a fingerprint the only dedupe signals are the terminal
		// published-identifier set and the token check, both handled by
		// the executor.
		return domain.DedupeDecision{Kind: domain.DedupeProceed}, remote, nil
	}

	return decide(file, remote, e.cfg.SimilarityThreshold), remote, nil
}

func decide(file *domain.FileMetadata, remote []domain.ArchiveFile, threshold int) domain.DedupeDecision {
	var smaller []string
	for _, rf := range remote {
		if rf.Fingerprint == "" {
			continue
		}
		if fingerprint.Distance(*file.PerceptualHash, rf.Fingerprint) > threshold {
			continue
		}
		if rf.Size >= file.Size {
			return domain.DedupeDecision{Kind: domain.DedupeSkip}
		}
		smaller = append(smaller, rf.ID)
	}

	if len(smaller) > 0 {
		return domain.DedupeDecision{Kind: domain.DedupeSupersede, ExistingIDs: smaller}
	}
	return domain.DedupeDecision{Kind: domain.DedupeProceed}
}

// tokenHeldByOthers returns archive identifiers that carry the media's
// token but are not known to belong to the media's own assets. Such
// entries hold the source-facing id under different content, which the
// executor refuses to duplicate.
func tokenHeldByOthers(media *domain.Media, remote []domain.ArchiveFile) []string {
	owned := make(map[string]bool)
	for _, f := range media.Files {
		for _, id := range f.PublishedAs {
			owned[id] = true
		}
	}
	var foreign []string
	for _, rf := range remote {
		if !owned[rf.ID] {
			foreign = append(foreign, rf.ID)
		}
	}
	return foreign
}
