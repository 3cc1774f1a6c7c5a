package engine

import (
	"context"
	"fmt"

	"github.com/toolforge/tool-spacemedia-sub000/internal/domain"
)

// resolve maps a raw source record to a catalog media. An identity hit
// returns the stored media as-is: seeing an item again is not a reason to
// re-fetch its detail, which bounds request volume on large sources. A
// miss fetches the detail and creates the media. A nil detail (id listed
// but no usable content) yields (nil, false, nil) and the record is
// skipped for this run.
func (e *Engine) resolve(ctx context.Context, sub string, record domain.RawRecord) (*domain.Media, bool, error) {
	existing, err := e.catalog.GetByIdentity(ctx, e.source.Key(), record.ID)
	if err != nil {
		return nil, false, fmt.Errorf("catalog lookup %s: %w", record.ID, err)
	}
	if existing != nil {
		return existing, false, nil
	}

	media, err := e.source.FetchDetail(ctx, sub, record.ID)
	if err != nil {
		return nil, false, fmt.Errorf("fetch detail %s: %w", record.ID, err)
	}
	if media == nil {
		e.logger.Debug("detail fetch returned no content", "id", record.ID)
		return nil, false, nil
	}

	media.SourceID = e.source.Key()
	if media.ExternalID == "" {
		media.ExternalID = record.ID
	}
	if sub != "" {
		if media.Attributes == nil {
			media.Attributes = make(map[string]string)
		}
		media.Attributes["sub_source"] = sub
	}

	if err := e.catalog.Upsert(ctx, media); err != nil {
		return nil, false, fmt.Errorf("save media %s: %w", record.ID, err)
	}

	return media, true, nil
}
