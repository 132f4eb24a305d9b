package types

import "time"

// HTTPConfig holds shared HTTP settings used by the publishing clients.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "publish-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SiteConfig describes the blog the tool publishes from.
type SiteConfig struct {
	// BaseURL is the site root used to build canonical links
	// (e.g. "https://punitmishra.github.io"). No trailing slash.
	BaseURL string `json:"base_url" yaml:"base_url"`

	// ContentDir is the directory holding markdown articles, one
	// <slug>.md file per article.
	ContentDir string `json:"content_dir" yaml:"content_dir"`
}

// PublishConfig groups everything the publishing commands need.
type PublishConfig struct {
	HTTPConfig `yaml:",inline"`

	Site SiteConfig `json:"site" yaml:"site"`

	// LedgerPath is the SQLite publish-log location. The file is created
	// on first use.
	LedgerPath string `json:"ledger_path" yaml:"ledger_path"`
}

// ResumeConfig holds settings for the resume export command.
type ResumeConfig struct {
	// DataFile is the YAML file holding the resume data.
	DataFile string `json:"data_file" yaml:"data_file"`

	// OutputDir is where generated HTML/PDF files land.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// PublishStatus selects the Medium post visibility.
type PublishStatus string

const (
	StatusDraft  PublishStatus = "draft"
	StatusPublic PublishStatus = "public"
)
