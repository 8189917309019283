package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"media-gallery/pkg/services"
)

// newListTabsCmd creates a new command for listing gallery tabs
func newListTabsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-tabs",
		Short: "List all gallery tabs",
		Long:  `List all tabs the scan would produce, with the number of items in each.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := LoadConfig()
			if err != nil {
				log.Fatalf("Failed to load configuration: %v", err)
			}
			services.InitService(cfg)
			listTabs()
		},
	}
}

// listTabs displays all tabs and their item counts
func listTabs() {
	tabs, err := services.GetTabs()
	if err != nil {
		log.Fatalf("Failed to scan media directory: %v", err)
	}

	totalItems := 0

	fmt.Println("Gallery Tabs:")
	fmt.Println("=============")

	for _, tab := range tabs {
		fmt.Printf("  - %s (items: %d)\n", tab.Name, len(tab.Items))
		fmt.Printf("    Slug: %s\n", tab.Slug)
		totalItems += len(tab.Items)
	}

	fmt.Println()
	fmt.Printf("Total: %d items across %d tabs\n", totalItems, len(tabs))
}
