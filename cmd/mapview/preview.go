package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tilemap.dev/internal/preview"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Explore the viewport in the terminal",
	Long: `Runs the viewer's pan/zoom logic against a terminal surface. Each
terminal cell stands for a block of screen pixels; visible tiles are drawn
with their zoom/x_y address.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return preview.Run(cmd.Context(), cfg.Viewer, cfg.Theme)
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
