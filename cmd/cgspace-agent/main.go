// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the cgspace-agent CLI.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/cgspace-agent/internal/dataset"
	"github.com/pdiddy/cgspace-agent/internal/search"
	"github.com/pdiddy/cgspace-agent/internal/secrets"
	"github.com/pdiddy/cgspace-agent/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the cgspace-agent CLI.
var rootCmd = &cobra.Command{
	Use:   "cgspace-agent",
	Short: "Query CGSpace agricultural-research documents from a chat-style CLI",
	Long: `cgspace-agent searches bibliographic records of agricultural-research
documents, either in a local metadata subset or through the CGSpace REST API,
and presents the matches as a summarized, filterable table.

Use "search" for a one-shot query, "chat" for an interactive session, and
"dataset" to manage the local SQLite index.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./cgspace-agent.yaml or ~/.config/cgspace-agent/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("cgspace-agent")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "cgspace-agent"))
		}
	}

	viper.SetEnvPrefix("CGSPACE_AGENT")
	viper.AutomaticEnv()

	viper.SetDefault("local.csv_path", "data/cgspace_demo.csv")
	viper.SetDefault("local.db_path", "data/cgspace.db")
	viper.SetDefault("local.max_results", 200)
	viper.SetDefault("remote.api_base", "https://cgspace.cgiar.org/server")
	viper.SetDefault("remote.site_base", "https://cgspace.cgiar.org")
	viper.SetDefault("remote.page_size", 50)
	viper.SetDefault("remote.cache_ttl", "10m")
	viper.SetDefault("remote.timeout", "30s")
	viper.SetDefault("remote.user_agent", "cgspace-agent/"+version)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// appConfig assembles the typed configuration from viper.
func appConfig() types.AppConfig {
	cfg := types.AppConfig{
		Local: types.LocalSearchConfig{
			CSVPath:    viper.GetString("local.csv_path"),
			DBPath:     viper.GetString("local.db_path"),
			MaxResults: viper.GetInt("local.max_results"),
		},
		Remote: types.RemoteSearchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   viper.GetDuration("remote.timeout"),
				UserAgent: viper.GetString("remote.user_agent"),
			},
			APIBase:  viper.GetString("remote.api_base"),
			SiteBase: viper.GetString("remote.site_base"),
			PageSize: viper.GetInt("remote.page_size"),
			CacheTTL: viper.GetDuration("remote.cache_ttl"),
			APIToken: viper.GetString("remote.api_token"),
		},
	}
	if cfg.Remote.APIToken == "" {
		cfg.Remote.APIToken = loadedSecrets["cgspace-api-token"]
	}
	if cfg.Remote.Timeout <= 0 {
		cfg.Remote.Timeout = 30 * time.Second
	}
	return cfg
}

// loadLocalRecords loads the local dataset, preferring the SQLite index
// built by `dataset import` and falling back to the CSV.
func loadLocalRecords(cfg types.LocalSearchConfig) ([]types.Record, error) {
	if _, err := os.Stat(cfg.DBPath); err == nil {
		store, err := dataset.NewStore(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		return store.List(context.Background())
	}
	return dataset.LoadCSV(cfg.CSVPath)
}

// buildBackends constructs the two search backends from configuration.
func buildBackends(cfg types.AppConfig) (*search.LocalBackend, *search.DSpaceBackend, error) {
	records, err := loadLocalRecords(cfg.Local)
	if err != nil {
		return nil, nil, fmt.Errorf("loading local dataset: %w", err)
	}

	local := &search.LocalBackend{Records: records, MaxResults: cfg.Local.MaxResults}
	remote := search.NewDSpaceBackend(&http.Client{Timeout: cfg.Remote.Timeout}, cfg.Remote)
	return local, remote, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
