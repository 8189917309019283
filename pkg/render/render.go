package render

import (
	_ "embed"
	"strings"

	"github.com/eknkc/pug"

	"media-gallery/pkg/config"
	"media-gallery/pkg/models"
)

// The gallery view ships inside the binary; the generated document has
// no asset files of its own.
//
//go:embed views/index.pug
var indexView string

// Page is the data the gallery view is executed against.
type Page struct {
	Title      string
	Tabs       []TabView
	ActiveSlug string
}

// TabView wraps a tab with its presentation state.
type TabView struct {
	models.Tab
	Active bool
}

// ButtonClass returns the class attribute for the tab's button
func (t TabView) ButtonClass() string {
	if t.Active {
		return "tab-btn active"
	}
	return "tab-btn"
}

// PanelClass returns the class attribute for the tab's panel
func (t TabView) PanelClass() string {
	if t.Active {
		return "panel active"
	}
	return "panel"
}

// NewPage assembles the view data for the given tabs. The first tab is
// initially active; an empty gallery has no active slug and renders a
// valid page with no buttons or panels.
func NewPage(cfg *config.Config, tabs []models.Tab) Page {
	page := Page{Title: cfg.Title}
	for i, tab := range tabs {
		page.Tabs = append(page.Tabs, TabView{Tab: tab, Active: i == 0})
	}
	if len(tabs) > 0 {
		page.ActiveSlug = tabs[0].Slug
	}
	return page
}

// Index renders the complete gallery document. The view compiles down
// to an html/template, so every interpolated value is escaped for the
// context it lands in.
func Index(page Page) (string, error) {
	template, err := pug.CompileString(indexView, pug.Options{})
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if err := template.Execute(&out, page); err != nil {
		return "", err
	}
	return out.String(), nil
}
