package cmd

import (
	"fmt"

	"github.com/intelligrit/geodis/internal/config"
	"github.com/intelligrit/geodis/internal/engine"
	"github.com/intelligrit/geodis/internal/logx"
	"github.com/spf13/cobra"
)

var (
	gazetteerPath string
	cachePath     string
	verbose       bool
	configPath    string
	cfg           *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "geodis",
	Short: "Disambiguate geographic entity mentions against a hierarchical gazetteer",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		if !cmd.Flags().Changed("gazetteer") {
			gazetteerPath = cfg.Data.GazetteerPath
		}
		if !cmd.Flags().Changed("cache") {
			cachePath = cfg.Data.CachePath
		}

		logx.SetVerbose(verbose)
		engine.Configure(engine.Tunables{
			AmbiguityDampingFactor: cfg.Engine.AmbiguityDampingFactor,
			ParentRateFactor:       cfg.Engine.ParentRateFactor,
			ChildRateFactor:        cfg.Engine.ChildRateFactor,
			ParentLabelRateFactor:  cfg.Engine.ParentLabelRateFactor,
			BrotherRateFactor:      cfg.Engine.BrotherRateFactor,
			CoordBrotherRateFactor: cfg.Engine.CoordBrotherRateFactor,
		})

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.toml", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&gazetteerPath, "gazetteer", "data/gazetteer.ndjson", "Path to the newline-delimited JSON gazetteer source")
	rootCmd.PersistentFlags().StringVar(&cachePath, "cache", "data/gazetteer.duckdb", "Path to the DuckDB gazetteer snapshot cache")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

func Execute() error {
	return rootCmd.Execute()
}
