package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests.
	// The default imitates a browser; govinfo.gov rejects obvious
	// script user agents.
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for the fetch stage.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// NoticeURL is the Federal Register notice PDF to download.
	NoticeURL string `json:"notice_url" yaml:"notice_url"`

	// DataDir is the base directory for pipeline artifacts
	// (contains raw/, text/, metadata/).
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// SeedConfig holds settings for the end-to-end seed run.
type SeedConfig struct {
	// DataDir is the base directory for pipeline artifacts.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// OutputPath is where the generated SQL file is written.
	OutputPath string `json:"output_path" yaml:"output_path"`
}

// StoreConfig holds settings for the local SQLite apply stage.
type StoreConfig struct {
	// DBPath is the SQLite database file path.
	DBPath string `json:"db_path" yaml:"db_path"`
}
