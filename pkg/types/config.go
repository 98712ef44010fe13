// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "cgspace-agent/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// LocalSearchConfig holds settings for the local dataset backend.
type LocalSearchConfig struct {
	// CSVPath is the demo dataset CSV file.
	CSVPath string `json:"csv_path" yaml:"csv_path"`

	// DBPath is the SQLite index built by `dataset import`. When the file
	// exists the local backend loads records from it instead of the CSV.
	DBPath string `json:"db_path" yaml:"db_path"`

	// MaxResults caps local search results (default 200). Demo deployments
	// run this anywhere between 50 and 200.
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// RemoteSearchConfig holds settings for the DSpace REST backend.
type RemoteSearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIBase is the DSpace server root, e.g. "https://cgspace.cgiar.org/server".
	// The discover endpoint lives under APIBase/api/discover/search/objects.
	APIBase string `json:"api_base" yaml:"api_base"`

	// SiteBase is the public site root used to build handle links,
	// e.g. "https://cgspace.cgiar.org".
	SiteBase string `json:"site_base" yaml:"site_base"`

	// PageSize is the requested page size (default 50).
	PageSize int `json:"page_size" yaml:"page_size"`

	// CacheTTL is how long a (query, page, size) response stays cached
	// (default 10 minutes).
	CacheTTL time.Duration `json:"cache_ttl" yaml:"cache_ttl"`

	// APIToken is an optional bearer token for authenticated instances.
	APIToken string `json:"api_token,omitempty" yaml:"api_token,omitempty"`
}

// AppConfig groups all stage configurations.
type AppConfig struct {
	Local  LocalSearchConfig  `json:"local" yaml:"local"`
	Remote RemoteSearchConfig `json:"remote" yaml:"remote"`
}
