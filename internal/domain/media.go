package domain

import (
	"strconv"
	"time"
)

// Media is one item harvested from a source, identified by the pair
// (SourceID, ExternalID). Identity never changes once the row exists.
type Media struct {
	ID            int64
	SourceID      string // source key, e.g. "nasa-images"
	ExternalID    string // source-local identifier
	Title         string
	Description   *string
	CreatedDate   *time.Time // creation date reported by the source
	PublishedDate *time.Time // publication date reported by the source
	Ignored       bool
	IgnoredReason *string
	Attributes    map[string]string // source-specific, opaque to the engine
	Files         []FileMetadata
	FirstSeenAt   time.Time
	LastSeenAt    time.Time
}

// Year returns the effective year of the media: the creation date when
// known, otherwise the publication date, otherwise 0.
func (m *Media) Year() int {
	if m.CreatedDate != nil {
		return m.CreatedDate.Year()
	}
	if m.PublishedDate != nil {
		return m.PublishedDate.Year()
	}
	return 0
}

// IdentifierToken is the external-facing identifier used to look the media
// up in the archive. Sources that expose a catalog number set it as an
// attribute; the source-local id is the fallback.
func (m *Media) IdentifierToken() string {
	if tok, ok := m.Attributes["identifier_token"]; ok && tok != "" {
		return tok
	}
	return m.SourceID + ":" + m.ExternalID
}

// FileMetadata is one addressable asset belonging to a Media. A media may
// carry several assets (e.g. multiple resolutions of the same image).
type FileMetadata struct {
	ID             int64
	MediaID        int64
	AssetURL       string
	ContentHash    *string // exact hash, nil until computed
	PerceptualHash *string // similarity fingerprint, nil until computed
	Size           int64
	Extension      string
	PublishedAs    []string // archive identifiers this asset was published as
	Ignored        bool
}

// IsPublished reports whether the asset already carries archive
// identifiers. A published asset is terminal: it must never be published
// again unless an explicit supersede clears it first.
func (f *FileMetadata) IsPublished() bool {
	return len(f.PublishedAs) > 0
}

// ArchiveFile is an already-published file as reported by the archive's
// search interface.
type ArchiveFile struct {
	ID          string
	Size        int64
	Fingerprint string
}

// Description is the payload handed to the archive when creating an entry.
type Description struct {
	Title       string
	Body        string
	Licence     string
	Attribution string
	Categories  []string
}

// StructuredFields flattens the description for the archive's metadata
// edit call.
func (d *Description) StructuredFields() map[string]string {
	fields := map[string]string{
		"licence":     d.Licence,
		"attribution": d.Attribution,
	}
	for i, c := range d.Categories {
		fields["category_"+strconv.Itoa(i)] = c
	}
	return fields
}
