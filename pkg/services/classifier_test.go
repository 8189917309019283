package services

import (
	"testing"

	"media-gallery/pkg/models"
)

func TestClassifier_ImageExtensions(t *testing.T) {
	names := []string{
		"a.jpg", "b.JPEG", "c.Png", "d.GIF",
		"e.webp", "f.AVIF", "g.bmp", "h.SVG",
	}
	for _, name := range names {
		if !IsImage(name) {
			t.Errorf("IsImage(%q) = false, want true", name)
		}
		if IsVideo(name) {
			t.Errorf("IsVideo(%q) = true, want false", name)
		}
		if !IsMediaFile(name) {
			t.Errorf("IsMediaFile(%q) = false, want true", name)
		}
		if kind := KindOf(name); kind != models.KindImage {
			t.Errorf("KindOf(%q) = %q, want %q", name, kind, models.KindImage)
		}
	}
}

func TestClassifier_VideoExtensions(t *testing.T) {
	names := []string{"a.mp4", "b.WebM", "c.OGV", "d.MOV", "e.m4v"}
	for _, name := range names {
		if !IsVideo(name) {
			t.Errorf("IsVideo(%q) = false, want true", name)
		}
		if IsImage(name) {
			t.Errorf("IsImage(%q) = true, want false", name)
		}
		if !IsMediaFile(name) {
			t.Errorf("IsMediaFile(%q) = false, want true", name)
		}
		if kind := KindOf(name); kind != models.KindVideo {
			t.Errorf("KindOf(%q) = %q, want %q", name, kind, models.KindVideo)
		}
	}
}

func TestClassifier_UnknownExtensions(t *testing.T) {
	names := []string{
		"notes.txt", "README.md", "archive.tar.gz",
		"noextension", "trailingdot.", "image.svg.bak",
	}
	for _, name := range names {
		if IsImage(name) {
			t.Errorf("IsImage(%q) = true, want false", name)
		}
		if IsVideo(name) {
			t.Errorf("IsVideo(%q) = true, want false", name)
		}
		if IsMediaFile(name) {
			t.Errorf("IsMediaFile(%q) = true, want false", name)
		}
		if kind := KindOf(name); kind != models.KindOther {
			t.Errorf("KindOf(%q) = %q, want %q", name, kind, models.KindOther)
		}
	}
}
