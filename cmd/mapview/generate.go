package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tilemap.dev/internal/logging"
	"tilemap.dev/internal/progress"
	"tilemap.dev/internal/tiles"
)

var (
	genOutput string
	genLevels int
	genSeed   int64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the tile pyramid into the tile directory",
	Long: `Generates a procedural terrain region and cuts it into the tile pyramid
{dir}/{zoom}/{x}_{y}.jpg for every zoom level the viewer can show.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		logger := logging.New(cfg.Log)

		out := cfg.Tiles.Dir
		if genOutput != "" {
			out = genOutput
		}
		levels := cfg.Levels()
		if genLevels > 0 {
			levels = genLevels
		}
		seed := cfg.Tiles.Seed
		if cmd.Flags().Changed("seed") {
			seed = genSeed
		}

		start := time.Now()
		region, err := tiles.GenerateRegion(cfg.Tiles.RegionSize, seed)
		if err != nil {
			return fmt.Errorf("generating region: %w", err)
		}
		renderer := tiles.NewRenderer(region, tiles.DefaultPalette())

		n, err := tiles.WritePyramid(cmd.Context(), renderer, out, levels, progress.NewReporter("Generating tiles"))
		if err != nil {
			return fmt.Errorf("writing tiles: %w", err)
		}

		logger.Info("Generated tiles", "dir", out, "levels", levels, "tiles", n, "seed", seed, "elapsed", time.Since(start).Round(time.Millisecond))
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "output directory (overrides tiles.dir)")
	generateCmd.Flags().IntVar(&genLevels, "levels", 0, "number of zoom levels (default viewer.max_zoom+1)")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "terrain seed (overrides tiles.seed)")
	rootCmd.AddCommand(generateCmd)
}
