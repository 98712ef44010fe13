// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/cgspace-agent/internal/search"
	"github.com/pdiddy/cgspace-agent/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Run a one-shot query against the local dataset or the CGSpace API",
	Long: `Search runs a single free-text query and prints a summary, the matching
documents, and a per-year breakdown. The local backend matches by substring
over title, country, and keywords; the remote backend queries the CGSpace
discover endpoint sorted by issue date.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	backendName, _ := cmd.Flags().GetString("backend")

	cfg := appConfig()
	if max, _ := cmd.Flags().GetInt("max-results"); max > 0 {
		cfg.Local.MaxResults = max
	}
	if size, _ := cmd.Flags().GetInt("size"); size > 0 {
		cfg.Remote.PageSize = size
	}

	local, remote, err := buildBackends(cfg)
	if err != nil {
		return err
	}

	var backend search.Backend
	var label string
	switch backendName {
	case "local", "":
		backend, label = local, "the local CGSpace subset"
	case "remote":
		page, _ := cmd.Flags().GetInt("page")
		remote.Page = page
		backend, label = remote, "the CGSpace repository"
	default:
		return fmt.Errorf("unknown backend %q: use local or remote", backendName)
	}

	results, err := backend.Search(cmd.Context(), query)
	if err != nil {
		return fmt.Errorf("%s search: %w", backend.Name(), err)
	}

	results, err = applyFilterFlags(cmd, results)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return search.FormatJSON(results, os.Stdout)
	}

	fmt.Println(search.Summarize(results, label))
	fmt.Println()
	search.FormatTable(results, os.Stdout)
	search.FormatYearChart(search.CountByYear(results), os.Stdout)

	if savePath, _ := cmd.Flags().GetString("save"); savePath != "" {
		if err := search.WriteResultFile(savePath, query, backend.Name(), results); err != nil {
			return err
		}
		fmt.Printf("Saved results to %s\n", savePath)
	}
	return nil
}

// applyFilterFlags narrows results by the optional year and country flags.
func applyFilterFlags(cmd *cobra.Command, results []types.Record) ([]types.Record, error) {
	minYear, _ := cmd.Flags().GetInt("min-year")
	maxYear, _ := cmd.Flags().GetInt("max-year")
	if minYear > 0 || maxYear > 0 {
		if minYear == 0 {
			minYear = 1
		}
		if maxYear == 0 {
			maxYear = 9999
		}
		if minYear > maxYear {
			return nil, fmt.Errorf("min-year %d exceeds max-year %d", minYear, maxYear)
		}
		results = search.FilterByYearRange(results, minYear, maxYear)
	}

	countries, _ := cmd.Flags().GetStringSlice("countries")
	results = search.FilterByCountries(results, countries)
	return results, nil
}

func init() {
	searchCmd.Flags().String("backend", "local", "search backend: local or remote")
	searchCmd.Flags().Int("max-results", 0, "local result cap (default from config, 200)")
	searchCmd.Flags().Int("page", 0, "remote page number")
	searchCmd.Flags().Int("size", 0, "remote page size (default from config, 50)")
	searchCmd.Flags().Int("min-year", 0, "keep only documents from this year on")
	searchCmd.Flags().Int("max-year", 0, "keep only documents up to this year")
	searchCmd.Flags().StringSlice("countries", nil, "keep only documents from these countries")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.Flags().String("save", "", "save query and results to a YAML file")

	rootCmd.AddCommand(searchCmd)
}
