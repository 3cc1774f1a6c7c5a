package engine

import (
	"strings"

	"github.com/toolforge/tool-spacemedia-sub000/internal/config"
	"github.com/toolforge/tool-spacemedia-sub000/internal/domain"
)

// ShouldPublish decides whether an asset is eligible for publication. It
// is pure: callers act on the result, the gate never mutates state.
//
// Eligibility requires the media and file not to be ignored, the file
// type to be on the allow-list, and a computed content hash. Automatic
// publication additionally requires the media's effective year to reach
// the configured minimum, so bulk imports cannot drag in very old content
// without an explicit manual request.
func ShouldPublish(media *domain.Media, file *domain.FileMetadata, policy config.PublishPolicy, isManual bool) bool {
	mode := domain.PublishMode(policy.Mode)

	switch mode {
	case domain.PublishDisabled:
		return false
	case domain.PublishManual:
		if !isManual {
			return false
		}
	case domain.PublishAuto:
	default:
		return false
	}

	if media.Ignored || file.Ignored {
		return false
	}
	if !allowedType(file, policy) {
		return false
	}
	if file.ContentHash == nil || *file.ContentHash == "" {
		return false
	}
	if mode == domain.PublishAuto && !isManual && policy.MinYear > 0 {
		if media.Year() < policy.MinYear {
			return false
		}
	}
	return true
}

func allowedType(file *domain.FileMetadata, policy config.PublishPolicy) bool {
	if len(policy.AllowedExtensions) == 0 && policy.AllowedURLPattern == "" {
		return true
	}
	ext := strings.ToLower(strings.TrimPrefix(file.Extension, "."))
	for _, allowed := range policy.AllowedExtensions {
		if ext == strings.ToLower(strings.TrimPrefix(allowed, ".")) {
			return true
		}
	}
	if policy.AllowedURLPattern != "" && strings.Contains(file.AssetURL, policy.AllowedURLPattern) {
		return true
	}
	return false
}
