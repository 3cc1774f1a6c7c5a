// Package description builds the payload sent to the archive when a new
// entry is created: title, attribution, licence template and categories.
package description

import (
	"errors"
	"fmt"
	"strings"

	"github.com/toolforge/tool-spacemedia-sub000/internal/config"
	"github.com/toolforge/tool-spacemedia-sub000/internal/domain"
)

// ErrNoLicence means no licence template could be derived for the media.
// Publishing content whose licence cannot be proven is forbidden, so this
// is a publish precondition failure, never retried.
var ErrNoLicence = errors.New("no licence template derivable")

// Builder derives descriptions from per-source configuration.
type Builder struct {
	cfg config.DescriptionConfig
}

// NewBuilder creates a description builder for one source.
func NewBuilder(cfg config.DescriptionConfig) *Builder {
	return &Builder{cfg: cfg}
}

// Build assembles the description payload for one asset. The media's
// "licence" attribute selects the template; sources without per-item
// licences fall back to the configured default.
func (b *Builder) Build(media *domain.Media, file *domain.FileMetadata) (*domain.Description, error) {
	licence := b.licenceFor(media)
	if licence == "" {
		return nil, fmt.Errorf("media %s/%s: %w", media.SourceID, media.ExternalID, ErrNoLicence)
	}

	var body strings.Builder
	if media.Description != nil {
		body.WriteString(*media.Description)
		body.WriteString("\n\n")
	}
	body.WriteString("Source: ")
	body.WriteString(file.AssetURL)

	return &domain.Description{
		Title:       media.Title,
		Body:        body.String(),
		Licence:     licence,
		Attribution: b.cfg.Attribution,
		Categories:  append([]string(nil), b.cfg.Categories...),
	}, nil
}

func (b *Builder) licenceFor(media *domain.Media) string {
	if key, ok := media.Attributes["licence"]; ok {
		if tpl, ok := b.cfg.LicenceTemplates[key]; ok {
			return tpl
		}
		// Unknown per-item licence: do not guess.
		return ""
	}
	return b.cfg.DefaultLicence
}
