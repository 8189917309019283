package services

import (
	"bytes"
	"html/template"
	"log"
	"os"
	"path/filepath"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// descriptionFile is the optional markdown file inside a tab folder
// whose rendered content is shown above that tab's grid.
const descriptionFile = "README.md"

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// description renders the folder's README.md, if present, to HTML.
// goldmark runs without raw-HTML passthrough, so markup inside a README
// cannot reach the page unescaped.
func (s *Service) description(dir string) template.HTML {
	source, err := os.ReadFile(filepath.Join(dir, descriptionFile))
	if err != nil {
		return ""
	}

	var buf bytes.Buffer
	if err := markdown.Convert(source, &buf); err != nil {
		log.Printf("Skipping description in %s: %v", dir, err)
		return ""
	}
	return template.HTML(buf.String())
}
