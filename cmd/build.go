package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"media-gallery/pkg/render"
	"media-gallery/pkg/services"
)

// newBuildCmd creates a new command for building the gallery document
func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build the gallery page",
		Long:  `Scan the media directory and write the gallery as a single self-contained index.html.`,
		Run:   runBuild,
	}
}

// runBuild scans the media tree, renders the document and writes it out.
// Nothing is written when the scan fails, so a prior output file survives
// a failed run untouched.
func runBuild(cmd *cobra.Command, args []string) {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	services.InitService(cfg)

	tabs, err := services.GetTabs()
	if err != nil {
		log.Fatalf("Failed to scan media directory: %v", err)
	}

	html, err := render.Index(render.NewPage(cfg, tabs))
	if err != nil {
		log.Fatalf("Failed to render gallery: %v", err)
	}

	if err := os.WriteFile(cfg.OutputFile, []byte(html), 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", cfg.OutputFile, err)
	}

	fmt.Printf("Gallery written to %s (%d tabs)\n", cfg.OutputFile, len(tabs))
}
