// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the configuration structs shared across pipeline stages.
package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that talk to the
// Pocket API.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pocket-export/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// AuthConfig holds settings for the Pocket authorization handshake.
type AuthConfig struct {
	HTTPConfig `yaml:",inline"`

	// PollInterval is the delay between access-token polls while we wait
	// for the user to authorize the application in their browser
	// (default 2s).
	PollInterval time.Duration `json:"poll_interval" yaml:"poll_interval"`

	// MaxPollAttempts bounds the access-token polling loop. Zero means
	// poll until the context is cancelled, which matches the historical
	// "wait as long as the user takes" behavior.
	MaxPollAttempts int `json:"max_poll_attempts" yaml:"max_poll_attempts"`
}

// FetchConfig holds settings for the saved-item bulk fetch.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxItems is the maximum number of saved items requested from the
	// Pocket API in the single bulk call (default 5000).
	MaxItems int `json:"max_items" yaml:"max_items"`
}

// ExportConfig groups everything the export pipeline needs. It is built
// once by the CLI from flags, config file, and secrets, then threaded
// through the stages; no stage reads global state.
type ExportConfig struct {
	Auth  AuthConfig  `json:"auth" yaml:"auth"`
	Fetch FetchConfig `json:"fetch" yaml:"fetch"`

	// Browser selects the target browser ("edge", "chrome", "firefox").
	// Empty means detect from the operating system and confirm
	// interactively.
	Browser string `json:"browser" yaml:"browser"`

	// BookmarksPath overrides the resolved bookmark file location.
	// Empty means resolve from the selected browser and OS.
	BookmarksPath string `json:"bookmarks_path" yaml:"bookmarks_path"`

	// HistoryDB is the path of the SQLite export-run ledger. Empty
	// disables history recording.
	HistoryDB string `json:"history_db" yaml:"history_db"`

	// ReportPath is where the YAML run report is written after a
	// successful export. Empty disables the report.
	ReportPath string `json:"report_path" yaml:"report_path"`
}
