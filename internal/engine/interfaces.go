package engine

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"io"
	"time"

	"github.com/toolforge/tool-spacemedia-sub000/internal/domain"
)

// Source is one harvestable origin. A source may fan out into several
// sub-sources (buckets, accounts, years); each is paged independently.
type Source interface {
	Key() string
	Name() string
	SubSources() []string
	// OrderedByRecency reports whether NextPage yields items newest first,
	// which enables the watermark early exit.
	OrderedByRecency() bool
	NextPage(ctx context.Context, sub, token string) (domain.Page, error)
	// FetchDetail materializes a full media with its files. A nil media
	// with nil error means the source reported the id but returned no
	// usable content; the record is skipped without error.
	FetchDetail(ctx context.Context, sub, id string) (*domain.Media, error)
}

type CatalogStore interface {
	GetByIdentity(ctx context.Context, sourceID, externalID string) (*domain.Media, error)
	GetByContentHash(ctx context.Context, sourceID, hash string) ([]domain.Media, error)
	Upsert(ctx context.Context, media *domain.Media) error
	UpdateFile(ctx context.Context, file *domain.FileMetadata) error
	MarkSeen(ctx context.Context, sourceID string, externalIDs []string, at time.Time) error
	ListUnpublishedNotSeen(ctx context.Context, sourceID string, since time.Time) ([]domain.Media, error)
	MarkIgnored(ctx context.Context, mediaID int64, reason string) error
	Delete(ctx context.Context, mediaID int64) error
}

type CursorStore interface {
	Get(ctx context.Context, sourceID string) (*domain.RunCursor, error)
	Update(ctx context.Context, cursor *domain.RunCursor) error
}

type ProblemStore interface {
	Upsert(ctx context.Context, problem *domain.Problem) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Archive is the external publish API. Create and replace may fail with a
// transient-vs-permanent distinction the executor honors.
type Archive interface {
	CreateEntry(ctx context.Context, title, description, assetURL string) (string, error)
	ReplaceEntry(ctx context.Context, id, assetURL string) error
	EditMetadata(ctx context.Context, id string, fields map[string]string) error
	Search(ctx context.Context, token string) ([]domain.ArchiveFile, error)
}

// Fingerprinter is the external fingerprint service.
type Fingerprinter interface {
	Hash(ctx context.Context, r io.Reader) (string, error)
	Fingerprint(ctx context.Context, r io.Reader) (string, error)
}

// AssetFetcher downloads asset bytes for fingerprinting.
type AssetFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Describer builds the description payload for a new archive entry.
type Describer interface {
	Build(media *domain.Media, file *domain.FileMetadata) (*domain.Description, error)
}

// Notifier delivers the end-of-run batch notification.
type Notifier interface {
	Notify(ctx context.Context, summary *domain.RunSummary) error
	Close() error
}
