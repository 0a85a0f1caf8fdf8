package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and
// [ClientConfig.validate] when required configuration groups are incomplete
// or invalid.
var (
	// ErrInvalidPortalConfigs indicates invalid portal endpoint settings
	// (for example, missing host, out-of-range port, or zero timeout).
	ErrInvalidPortalConfigs = errors.New("invalid portal configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN, unsupported in-memory DSN, or missing vault
	// file paths).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidJournalConfigs indicates invalid journal housekeeping
	// settings (for example, zero retention or prune interval).
	ErrInvalidJournalConfigs = errors.New("invalid journal configuration")
)
