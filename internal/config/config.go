// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-campus-login application. It aggregates all sub-configurations and is
// populated by merging values from command-line flags, environment variables,
// an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string and
	// the client log file location.
	App App `envPrefix:"APP_"`

	// Portal holds everything needed to talk to the campus captive portal:
	// address, protocol constants, timeout, TLS policy, and the response
	// markers that signal a rejected login.
	Portal Portal `envPrefix:"PORTAL_"`

	// Storage holds configuration for all local persistence: the journal
	// database and the vault key/blob files.
	Storage Storage `envPrefix:"STORAGE_"`

	// Journal holds retention settings for the login-attempt journal.
	Journal Journal `envPrefix:"JOURNAL_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from flags and environment variables.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Shown in the TUI about view and -version output.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogFile is the path of the client log file. The TUI owns the
	// terminal, so client logs go to a file instead of stdout.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Portal holds the captive-portal endpoint and protocol settings.
//
// The five request fields the portal accepts are mode, username, password,
// a (millisecond timestamp) and producttype; Mode and ProductType below are
// the two constant ones.
type Portal struct {
	// Host is the portal gateway host, an IP address or DNS name
	// (e.g. "10.100.1.1").
	// Env: PORTAL_HOST
	Host string `env:"HOST"`

	// Port is the portal gateway TCP port (e.g. 8090).
	// Env: PORTAL_PORT
	Port int `env:"PORT"`

	// Path is the login endpoint path (e.g. "/httpclient.html").
	// Env: PORTAL_ENDPOINT_PATH
	Path string `env:"ENDPOINT_PATH"`

	// Mode is the constant sent in the "mode" form field; the campus
	// gateway uses "191" for client login.
	// Env: PORTAL_MODE
	Mode string `env:"MODE"`

	// ProductType is the constant sent in the "producttype" form field.
	// Env: PORTAL_PRODUCT_TYPE
	ProductType string `env:"PRODUCT_TYPE"`

	// RequestTimeout bounds one login round trip (e.g. "10s"). A captive
	// network with no internet path must never block the client forever.
	// Env: PORTAL_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// InsecureSkipVerify disables TLS certificate validation for the
	// portal endpoint. Campus gateways often present self-signed
	// certificates on private addresses; enabling this is an explicit,
	// security-reducing opt-out and is off by default.
	// Env: PORTAL_INSECURE_SKIP_VERIFY
	InsecureSkipVerify bool `env:"INSECURE_SKIP_VERIFY"`

	// FailureMarkers are substrings that mark an HTTP 200 response body as
	// a rejected login. Matching is case-insensitive. The exact wording is
	// deployment-specific, so it is configuration, not code.
	// Env: PORTAL_FAILURE_MARKERS (comma-separated)
	FailureMarkers []string `env:"FAILURE_MARKERS" envSeparator:","`
}

// Storage groups the configuration for all local persistence backends.
type Storage struct {
	// DB holds the journal database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the vault key and blob file locations.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the local journal database.
type DB struct {
	// DSN is the SQLite data source name, normally a plain file path
	// (e.g. "/home/user/.campus-login/journal.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Files holds file-system locations of the vault material.
type Files struct {
	// KeyFile is where the symmetric vault key lives. Losing this file
	// makes the stored blob permanently unrecoverable.
	// Env: STORAGE_FILES_KEY_FILE
	KeyFile string `env:"KEY_FILE"`

	// BlobFile is where the single encrypted credential blob lives.
	// Env: STORAGE_FILES_BLOB_FILE
	BlobFile string `env:"BLOB_FILE"`
}

// Journal holds retention settings for the login-attempt journal.
type Journal struct {
	// Retention is how long journaled attempts are kept before the prune
	// job removes them (e.g. "720h" for 30 days).
	// Env: JOURNAL_RETENTION
	Retention time.Duration `env:"RETENTION"`

	// PruneInterval is how often the background prune job runs.
	// Env: JOURNAL_PRUNE_INTERVAL
	PruneInterval time.Duration `env:"PRUNE_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags().
		withEnv().
		withJSON().
		withDefaults().
		build()
}
