package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"media-gallery/pkg/config"
)

// Configuration flags
var (
	rootDir      string
	mediaDir     string
	outputFile   string
	galleryTitle string
	excludes     []string
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "media-gallery",
		Short: "Media Gallery turns a local media tree into a static HTML gallery",
		Long: `Media Gallery scans the folders under a local media directory and writes a
single self-contained index.html: one tab per folder, a thumbnail grid per
tab, and a built-in lightbox viewer. Running it without a subcommand builds
the gallery.`,
		Run: runBuild,
	}

	// Define persistent flags that will be available for all commands
	rootCmd.PersistentFlags().StringVarP(&rootDir, "root", "r", "", "Set the GALLERY_ROOT (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&mediaDir, "media", "m", "", "Set the MEDIA_DIR (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Set the OUTPUT_HTML (overrides environment variable)")
	rootCmd.PersistentFlags().StringVarP(&galleryTitle, "title", "t", "", "Set the GALLERY_TITLE (overrides environment variable)")
	rootCmd.PersistentFlags().StringArrayVarP(&excludes, "exclude", "x", nil, "Glob pattern of files to leave out, may be repeated (sets GALLERY_EXCLUDE)")

	// Add commands to root
	rootCmd.AddCommand(newBuildCmd())
	rootCmd.AddCommand(newListTabsCmd())
	rootCmd.AddCommand(newShowTabCmd())
	rootCmd.AddCommand(newExportCmd())

	return rootCmd
}

// LoadConfig loads configuration with respect to command line flags
func LoadConfig() (*config.Config, error) {
	// Set environment variables from flags if provided
	if rootDir != "" {
		os.Setenv("GALLERY_ROOT", rootDir)
	}

	if mediaDir != "" {
		os.Setenv("MEDIA_DIR", mediaDir)
	}

	if outputFile != "" {
		os.Setenv("OUTPUT_HTML", outputFile)
	}

	if galleryTitle != "" {
		os.Setenv("GALLERY_TITLE", galleryTitle)
	}

	if len(excludes) > 0 {
		os.Setenv("GALLERY_EXCLUDE", strings.Join(excludes, ","))
	}

	// Load configuration from environment variables (potentially set above)
	return config.Load()
}
