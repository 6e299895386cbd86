package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/agroclim/climate-cli/internal/config"
	"github.com/agroclim/climate-cli/internal/dataset"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "agroclim",
	Short: "Agroclimatic dashboard for daily station data",
	Long:  "Loads a daily temperature/precipitation series with automatic column inference and serves the interactive climate-trend dashboard.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return eris.Wrap(err, "load config")
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return eris.Wrap(err, "init logger")
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// loadOptions maps the configuration onto the dataset loader.
func loadOptions(cfg *config.Config) dataset.LoadOptions {
	return dataset.LoadOptions{
		Path:      cfg.Data.Path,
		Delimiter: cfg.Data.DelimiterRune(),
		Overrides: dataset.Overrides{
			Date:          cfg.Columns.Date,
			TempMean:      cfg.Columns.TempMean,
			TempMax:       cfg.Columns.TempMax,
			TempMin:       cfg.Columns.TempMin,
			Precipitation: cfg.Columns.Precipitation,
		},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
