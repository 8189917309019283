package services

import (
	"path/filepath"
	"strings"

	"media-gallery/pkg/models"
)

// Supported extensions, lower-cased and without the leading dot.
// The sets are fixed; classification is by extension only, never by
// file contents.
var (
	imageExtensions = map[string]struct{}{
		"jpg": {}, "jpeg": {}, "png": {}, "gif": {},
		"webp": {}, "avif": {}, "bmp": {}, "svg": {},
	}
	videoExtensions = map[string]struct{}{
		"mp4": {}, "webm": {}, "ogv": {}, "mov": {}, "m4v": {},
	}
)

func normalizedExt(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// IsImage reports whether path has an image extension
func IsImage(path string) bool {
	_, ok := imageExtensions[normalizedExt(path)]
	return ok
}

// IsVideo reports whether path has a video extension
func IsVideo(path string) bool {
	_, ok := videoExtensions[normalizedExt(path)]
	return ok
}

// IsMediaFile reports whether path has a supported media extension.
// Callers are responsible for making sure path names a regular file.
func IsMediaFile(path string) bool {
	return IsImage(path) || IsVideo(path)
}

// KindOf classifies path as image, video or other
func KindOf(path string) string {
	switch {
	case IsImage(path):
		return models.KindImage
	case IsVideo(path):
		return models.KindVideo
	default:
		return models.KindOther
	}
}
