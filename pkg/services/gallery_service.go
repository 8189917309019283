package services

import (
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/patrickmn/go-cache"

	"media-gallery/pkg/config"
	"media-gallery/pkg/models"
)

// Service handles scanning the media tree into gallery tabs
type Service struct {
	config   *config.Config
	tabCache *cache.Cache
	mu       sync.RWMutex
}

var (
	// defaultService is the singleton instance of Service
	defaultService *Service
	once           sync.Once
)

// NewService creates a service for the given configuration
func NewService(cfg *config.Config) *Service {
	return &Service{
		config:   cfg,
		tabCache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

// InitService initializes the package-level service with the given configuration
func InitService(cfg *config.Config) {
	once.Do(func() {
		defaultService = NewService(cfg)
	})
}

// GetTabs returns all gallery tabs
func GetTabs() ([]models.Tab, error) {
	return defaultService.GetTabs()
}

// GetTab returns the tab with the given folder name or slug
func GetTab(name string) (models.Tab, error) {
	return defaultService.GetTab(name)
}

// GetTab returns the tab with the given folder name or slug
func (s *Service) GetTab(name string) (models.Tab, error) {
	tabs, err := s.GetTabs()
	if err != nil {
		return models.Tab{}, err
	}
	for _, tab := range tabs {
		if tab.Name == name || tab.Slug == name {
			return tab, nil
		}
	}
	return models.Tab{}, fmt.Errorf("tab not found: %s", name)
}

// GetTabs returns all gallery tabs, scanning the media directory on the
// first call and serving the cached result afterwards.
func (s *Service) GetTabs() ([]models.Tab, error) {
	s.mu.RLock()
	if cached, found := s.tabCache.Get("tabs"); found {
		s.mu.RUnlock()
		log.Println("Using Cached Tabs")
		return cached.([]models.Tab), nil
	}
	s.mu.RUnlock()

	log.Println("Scanning Media Directory")

	tabs, err := s.scanTabs()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.tabCache.Set("tabs", tabs, cache.DefaultExpiration)
	s.mu.Unlock()

	return tabs, nil
}

// scanTabs enumerates the direct subdirectories of the media root, one
// tab per folder that holds at least one qualifying file. Tabs are
// ordered case-insensitively by folder name.
func (s *Service) scanTabs() ([]models.Tab, error) {
	mediaRoot := s.config.MediaDir

	info, err := os.Stat(mediaRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("media directory does not exist: %s", mediaRoot)
		}
		return nil, fmt.Errorf("checking media directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("media path is not a directory: %s", mediaRoot)
	}

	entries, err := os.ReadDir(mediaRoot)
	if err != nil {
		return nil, fmt.Errorf("reading media directory: %w", err)
	}
	sortEntries(entries)

	tabs := []models.Tab{}
	seen := map[string]bool{}
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		tab, ok := s.scanTab(entry.Name())
		if !ok {
			continue
		}
		if seen[tab.Slug] {
			tab.Slug = tab.Slug + "-" + models.ShortHash(tab.Name)
		}
		seen[tab.Slug] = true
		tabs = append(tabs, tab)
	}

	return tabs, nil
}

// scanTab builds one tab from a single folder under the media root.
// A folder with no qualifying files yields no tab at all; a folder that
// cannot be listed is skipped with a warning.
func (s *Service) scanTab(folder string) (models.Tab, bool) {
	dir := filepath.Join(s.config.MediaDir, folder)

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("Skipping unreadable folder %s: %v", folder, err)
		return models.Tab{}, false
	}
	sortEntries(entries)

	var items []models.Item
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if !IsMediaFile(name) {
			continue
		}
		if !isRegular(entry, filepath.Join(dir, name)) {
			continue
		}
		if s.excluded(folder + "/" + name) {
			continue
		}
		url, err := s.relativeURL(filepath.Join(dir, name))
		if err != nil {
			log.Printf("Skipping %s/%s: %v", folder, name, err)
			continue
		}
		items = append(items, models.Item{
			Url:  url,
			Name: name,
			Kind: KindOf(name),
		})
	}
	if len(items) == 0 {
		return models.Tab{}, false
	}

	return models.Tab{
		Name:        folder,
		Slug:        models.Slugify(folder),
		Description: s.description(dir),
		Items:       items,
	}, true
}

// excluded reports whether the folder/file path matches any configured
// exclude pattern. Patterns are also tried against the bare file name.
func (s *Service) excluded(relPath string) bool {
	for _, pattern := range s.config.Excludes {
		pattern = filepath.ToSlash(pattern)
		if matched, err := doublestar.PathMatch(pattern, relPath); err == nil && matched {
			return true
		}
		if matched, err := doublestar.PathMatch(pattern, path.Base(relPath)); err == nil && matched {
			return true
		}
	}
	return false
}

// relativeURL renders an absolute media path as a URL relative to the
// output document, with forward slash separators on every platform.
func (s *Service) relativeURL(target string) (string, error) {
	rel, err := filepath.Rel(s.config.OutputDir(), target)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// isRegular reports whether the entry names a regular file, following
// symlinks so a link to a real file qualifies while a link to a
// directory does not.
func isRegular(entry os.DirEntry, path string) bool {
	if entry.Type().IsRegular() {
		return true
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// sortEntries orders directory entries case-insensitively by name.
func sortEntries(entries []os.DirEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})
}
