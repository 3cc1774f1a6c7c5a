package domain

import (
	"fmt"
	"time"
)

// PublishMode governs whether publication may happen automatically, only
// on explicit manual request, or never.
type PublishMode string

const (
	PublishDisabled PublishMode = "disabled"
	PublishManual   PublishMode = "manual"
	PublishAuto     PublishMode = "auto"
)

// ParsePublishMode converts a configuration string to a PublishMode.
func ParsePublishMode(s string) (PublishMode, error) {
	switch PublishMode(s) {
	case PublishDisabled, PublishManual, PublishAuto:
		return PublishMode(s), nil
	case "":
		return PublishDisabled, nil
	default:
		return "", fmt.Errorf("unknown publish mode %q", s)
	}
}

// DedupeKind is the outcome of a deduplication check.
type DedupeKind int

const (
	// DedupeProceed means the archive has no equivalent copy.
	DedupeProceed DedupeKind = iota
	// DedupeSkip means the archive already has an equal-or-better copy.
	DedupeSkip
	// DedupeSupersede means the archive holds only smaller copies, which
	// must be replaced in place, reusing their identifiers.
	DedupeSupersede
)

// DedupeDecision is the result of matching a candidate asset against the
// archive. ExistingIDs is populated for DedupeSupersede only.
type DedupeDecision struct {
	Kind        DedupeKind
	ExistingIDs []string
}

// RawRecord is one item of a source listing page: just enough to resolve
// identity and apply the watermark, detail comes from FetchDetail.
type RawRecord struct {
	ID   string
	Date time.Time
	URL  string
}

// Page is one listing page returned by a source adapter.
type Page struct {
	Items     []RawRecord
	NextToken string
	HasMore   bool
}

// MinDate returns the oldest item date on the page and whether the page
// had any dated item at all.
func (p Page) MinDate() (time.Time, bool) {
	var min time.Time
	found := false
	for _, it := range p.Items {
		if it.Date.IsZero() {
			continue
		}
		if !found || it.Date.Before(min) {
			min = it.Date
			found = true
		}
	}
	return min, found
}
