package models

import (
	"html/template"
	"path/filepath"
	"strings"
)

// Media kinds. KindOther is reserved for extensions that are neither
// image nor video; such files never become items today, but a renderer
// must still tolerate the value without emitting a tile.
const (
	KindImage = "image"
	KindVideo = "video"
	KindOther = "other"
)

// MaxCaptionLen is the caption budget for video tiles.
const MaxCaptionLen = 22

// Item represents one media file within a tab
type Item struct {
	Url  string `json:"url"`
	Name string `json:"name"`
	Kind string `json:"kind"`
}

// IsImage reports whether the item is an image
func (i Item) IsImage() bool {
	return i.Kind == KindImage
}

// IsVideo reports whether the item is a video
func (i Item) IsVideo() bool {
	return i.Kind == KindVideo
}

// ShortName returns the truncated caption shown on video tiles.
// Alt text and URLs always carry the full name.
func (i Item) ShortName() string {
	return ShortenName(i.Name, MaxCaptionLen)
}

// Tab represents one media folder presented as a selectable panel
type Tab struct {
	Name        string        `json:"name"`
	Slug        string        `json:"slug"`
	Description template.HTML `json:"description,omitempty"`
	Items       []Item        `json:"items"`
}

// Count returns the number of items in the tab
func (t Tab) Count() int {
	return len(t.Items)
}

// ShortenName shortens name to at most maxLen runes, keeping as much of
// the extension as possible. Extensions longer than 6 runes are cut to 6
// and marked with an ellipsis; the stem keeps at least 3 runes.
func ShortenName(name string, maxLen int) string {
	runes := []rune(name)
	if len(runes) <= maxLen {
		return name
	}
	ext := filepath.Ext(name)
	stem := []rune(strings.TrimSuffix(name, ext))
	extRunes := []rune(ext)
	if len(extRunes) > 6 {
		ext = string(extRunes[:6]) + "…"
		extRunes = []rune(ext)
	}
	keep := maxLen - len(extRunes) - 1
	if keep < 3 {
		keep = 3
	}
	if keep > len(stem) {
		keep = len(stem)
	}
	return string(stem[:keep]) + "…" + ext
}
