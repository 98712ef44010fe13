// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/cgspace-agent/internal/dataset"
	"github.com/pdiddy/cgspace-agent/internal/search"
)

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Manage the local dataset index (import, stats)",
	Long: `Dataset manages the SQLite index of the local CGSpace metadata subset.
Import reads the demo CSV and replaces the index contents; stats reports
what the index holds.`,
}

var datasetImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import the demo CSV into the SQLite index",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := appConfig().Local
		if csvPath, _ := cmd.Flags().GetString("csv"); csvPath != "" {
			cfg.CSVPath = csvPath
		}

		records, err := dataset.LoadCSV(cfg.CSVPath)
		if err != nil {
			return err
		}

		store, err := dataset.NewStore(cfg.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		_, err = store.Import(cmd.Context(), records, os.Stdout)
		return err
	},
}

var datasetStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Report totals, per-year counts, and countries in the index",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := appConfig().Local

		store, err := dataset.NewStore(cfg.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		stats, err := store.Stats(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("records:   %d\n", stats.Total)
		fmt.Printf("countries: %d\n", len(stats.Countries))
		search.FormatYearChart(stats.Years, os.Stdout)
		return nil
	},
}

func init() {
	datasetImportCmd.Flags().String("csv", "", "CSV file to import (default from config)")

	datasetCmd.AddCommand(datasetImportCmd)
	datasetCmd.AddCommand(datasetStatsCmd)
	rootCmd.AddCommand(datasetCmd)
}
