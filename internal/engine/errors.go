package engine

import (
	"errors"
	"fmt"
	"strings"
)

// PublishForbiddenError is a publish precondition failure. It is never
// retried automatically: clearing it requires a policy or data change.
type PublishForbiddenError struct {
	Reason string
	// MediaIDs names the conflicting media for ambiguous-duplicate
	// failures, so an operator can disambiguate manually.
	MediaIDs []string
}

func (e *PublishForbiddenError) Error() string {
	if len(e.MediaIDs) > 0 {
		return fmt.Sprintf("publish forbidden: %s (%s)", e.Reason, strings.Join(e.MediaIDs, ", "))
	}
	return "publish forbidden: " + e.Reason
}

// IsPublishForbidden reports whether err is (or wraps) a publish
// precondition failure.
func IsPublishForbidden(err error) bool {
	var pf *PublishForbiddenError
	return errors.As(err, &pf)
}

// errStructural aborts the current sub-source without advancing the
// watermark: the page stream is broken beyond the retry budget.
var errStructural = errors.New("structural source failure")
