// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

// Default portal protocol values. They match the campus gateway this client
// was written against; any of them can be overridden per deployment.
const (
	DefaultPortalHost     = "10.100.1.1"
	DefaultPortalPort     = 8090
	DefaultPortalPath     = "/httpclient.html"
	DefaultLoginMode      = "191"
	DefaultProductType    = "0"
	DefaultRequestTimeout = 10 * time.Second

	defaultJournalRetention     = 30 * 24 * time.Hour
	defaultJournalPruneInterval = 6 * time.Hour

	defaultStateDirName = ".campus-login"
)

// defaultFailureMarkers flag a rejected login in an HTTP 200 body. The
// wording is the one campus deployment's; other portals override it.
var defaultFailureMarkers = []string{"invalid user name", "login failed"}

// defaultConfig returns the built-in configuration merged in last, so it
// fills only what flags, environment, and the JSON file left unset.
func defaultConfig() *StructuredConfig {
	stateDir := defaultStateDir()

	return &StructuredConfig{
		App: App{
			LogFile: filepath.Join(stateDir, "client.log"),
		},
		Portal: Portal{
			Host:           DefaultPortalHost,
			Port:           DefaultPortalPort,
			Path:           DefaultPortalPath,
			Mode:           DefaultLoginMode,
			ProductType:    DefaultProductType,
			RequestTimeout: DefaultRequestTimeout,
			FailureMarkers: defaultFailureMarkers,
		},
		Storage: Storage{
			DB: DB{
				DSN: filepath.Join(stateDir, "journal.db"),
			},
			Files: Files{
				KeyFile:  filepath.Join(stateDir, "storage.key"),
				BlobFile: filepath.Join(stateDir, "credentials.dat"),
			},
		},
		Journal: Journal{
			Retention:     defaultJournalRetention,
			PruneInterval: defaultJournalPruneInterval,
		},
	}
}

// defaultStateDir places all client state in a dot directory under the user
// home, falling back to the working directory when the home is unknown.
func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultStateDirName
	}

	return filepath.Join(home, defaultStateDirName)
}
