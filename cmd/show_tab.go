package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"media-gallery/pkg/services"
)

// newShowTabCmd creates a new command for showing tab details
func newShowTabCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show-tab [name]",
		Short: "Show items in a specific tab",
		Long:  `Show detailed information about the items in one tab, identified by its folder name or slug.`,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := LoadConfig()
			if err != nil {
				log.Fatalf("Failed to load configuration: %v", err)
			}
			services.InitService(cfg)
			showTab(args[0])
		},
	}
}

// showTab displays details about a specific tab
func showTab(name string) {
	tab, err := services.GetTab(name)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Tab: %s\n", tab.Name)
	fmt.Printf("Slug: %s\n", tab.Slug)
	fmt.Printf("Items: %d\n", len(tab.Items))
	fmt.Println("================")

	for i, item := range tab.Items {
		fmt.Printf("%d. %s\n", i+1, item.Name)
		fmt.Printf("   Kind: %s\n", item.Kind)
		fmt.Printf("   URL: %s\n", item.Url)
		fmt.Println()
	}
}
