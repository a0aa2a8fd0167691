package main

import (
	"github.com/spf13/cobra"

	"tilemap.dev/internal/config"
)

var (
	cfgFile string
	envFile string
)

var rootCmd = &cobra.Command{
	Use:   "mapview",
	Short: "Pannable, zoomable tile map viewer",
	Long: `mapview serves a browser tile map viewer, generates the tile pyramid
it displays and previews the viewport in a terminal.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "mapview.yml", "config file path")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with MAPVIEW_* overrides")
}

func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile, envFile)
}
