package config

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultTitle is the page title used when GALLERY_TITLE is not set.
const DefaultTitle = "Local Media Gallery"

// Config holds all configuration for the application
type Config struct {
	// RootDir is the project root the other paths default relative to.
	RootDir string
	// MediaDir is the directory whose subfolders become gallery tabs.
	MediaDir string
	// OutputFile is the path the gallery document is written to.
	OutputFile string
	// Title is the gallery page title.
	Title string
	// Excludes are glob patterns for files to leave out of the gallery.
	Excludes []string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	rootDir := os.Getenv("GALLERY_ROOT")
	if rootDir == "" {
		rootDir = "."
	}

	mediaDir := os.Getenv("MEDIA_DIR")
	if mediaDir == "" {
		mediaDir = filepath.Join(rootDir, "media")
	}

	outputFile := os.Getenv("OUTPUT_HTML")
	if outputFile == "" {
		outputFile = filepath.Join(rootDir, "index.html")
	}

	title := os.Getenv("GALLERY_TITLE")
	if title == "" {
		title = DefaultTitle
	}

	var excludes []string
	for _, pattern := range strings.Split(os.Getenv("GALLERY_EXCLUDE"), ",") {
		pattern = strings.TrimSpace(pattern)
		if pattern != "" {
			excludes = append(excludes, pattern)
		}
	}

	return &Config{
		RootDir:    rootDir,
		MediaDir:   mediaDir,
		OutputFile: outputFile,
		Title:      title,
		Excludes:   excludes,
	}, nil
}

// OutputDir returns the directory the output document lives in.
// Item URLs are rendered relative to this directory.
func (c *Config) OutputDir() string {
	return filepath.Dir(c.OutputFile)
}
