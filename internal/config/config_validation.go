// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. Defaults are merged
// in before validation, so empty fields here mean a deliberately blanked
// value, not an omitted one.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Portal.Host == "" || cfg.Portal.Port < 1 || cfg.Portal.Port > 65535 {
		return ErrInvalidPortalConfigs
	}

	if !strings.HasPrefix(cfg.Portal.Path, "/") {
		return ErrInvalidPortalConfigs
	}

	if cfg.Portal.Mode == "" || cfg.Portal.ProductType == "" {
		return ErrInvalidPortalConfigs
	}

	if cfg.Portal.RequestTimeout <= 0 {
		return ErrInvalidPortalConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.KeyFile == "" || cfg.Storage.BlobFile == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Portal.Host == "" || cfg.Portal.RequestTimeout == 0 {
		return ErrInvalidPortalConfigs
	}

	if cfg.Journal.Retention <= 0 || cfg.Journal.PruneInterval <= 0 {
		return ErrInvalidJournalConfigs
	}

	return nil
}
