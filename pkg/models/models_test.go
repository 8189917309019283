package models

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestShortenName(t *testing.T) {
	t.Run("short name unchanged", func(t *testing.T) {
		if got := ShortenName("short.png", 22); got != "short.png" {
			t.Errorf("ShortenName(short.png) = %q, want unchanged", got)
		}
	})

	t.Run("long name truncated", func(t *testing.T) {
		got := ShortenName("a_very_long_filename_example.jpeg", 22)
		if got != "a_very_long_file….jpeg" {
			t.Errorf("ShortenName() = %q, want %q", got, "a_very_long_file….jpeg")
		}
		if n := utf8.RuneCountInString(got); n > 22 {
			t.Errorf("ShortenName() length = %d runes, want <= 22", n)
		}
		if !strings.HasSuffix(got, ".jpeg") {
			t.Errorf("ShortenName() = %q, want .jpeg suffix", got)
		}
		if !strings.HasPrefix("a_very_long_filename_example", strings.TrimSuffix(got, "….jpeg")) {
			t.Errorf("ShortenName() = %q, stem is not a prefix of the original", got)
		}
	})

	t.Run("oversized extension truncated", func(t *testing.T) {
		got := ShortenName("movie.superduperextension", 22)
		if got != "movie….super…" {
			t.Errorf("ShortenName() = %q, want %q", got, "movie….super…")
		}
	})

	t.Run("stem floor of three runes", func(t *testing.T) {
		got := ShortenName("abcdefghij.superlongext", 10)
		if !strings.HasPrefix(got, "abc…") {
			t.Errorf("ShortenName() = %q, want at least 3 stem runes", got)
		}
	})

	t.Run("tight budget still keeps extension", func(t *testing.T) {
		if got := ShortenName("abcdefghij.png", 8); got != "abc….png" {
			t.Errorf("ShortenName() = %q, want %q", got, "abc….png")
		}
	})
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"artist1":     "artist1",
		"Artist One":  "artist-one",
		"Mixed_CASE":  "mixed_case",
		"dots.are.ok": "dots.are.ok",
		`a<b>&"c`:     "a-b---c",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestShortHash(t *testing.T) {
	a := ShortHash("my-art")
	b := ShortHash("My Art")
	if len(a) != 4 || len(b) != 4 {
		t.Fatalf("ShortHash lengths = %d, %d, want 4", len(a), len(b))
	}
	if a == b {
		t.Error("ShortHash produced the same value for different names")
	}
	if a != ShortHash("my-art") {
		t.Error("ShortHash is not deterministic")
	}
}

func TestItemKindHelpers(t *testing.T) {
	img := Item{Name: "cat.jpg", Kind: KindImage}
	vid := Item{Name: "clip.mp4", Kind: KindVideo}
	other := Item{Name: "notes.txt", Kind: KindOther}

	if !img.IsImage() || img.IsVideo() {
		t.Error("image item misclassified")
	}
	if !vid.IsVideo() || vid.IsImage() {
		t.Error("video item misclassified")
	}
	if other.IsImage() || other.IsVideo() {
		t.Error("other item misclassified")
	}

	long := Item{Name: "a_very_long_filename_example_for_tiles.mp4", Kind: KindVideo}
	if n := utf8.RuneCountInString(long.ShortName()); n > MaxCaptionLen {
		t.Errorf("ShortName() length = %d runes, want <= %d", n, MaxCaptionLen)
	}
}

func TestTabCount(t *testing.T) {
	tab := Tab{Items: []Item{{Name: "a.jpg"}, {Name: "b.mp4"}}}
	if tab.Count() != 2 {
		t.Errorf("Count() = %d, want 2", tab.Count())
	}
}
