// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// BuildInfo carries immutable build-time metadata embedded into binaries.
//
// Values are injected by linker flags during the release build and surface
// in version output and the TUI about view for release traceability.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewBuildInfo constructs [BuildInfo], substituting "N/A" for any value the
// build did not inject.
func NewBuildInfo(version, date, commit string) BuildInfo {
	if version == "" {
		version = "N/A"
	}
	if date == "" {
		date = "N/A"
	}
	if commit == "" {
		commit = "N/A"
	}
	return BuildInfo{Version: version, Date: date, Commit: commit}
}

// String renders the build info as a single printable line.
func (b BuildInfo) String() string {
	return "version " + b.Version + " (built " + b.Date + ", commit " + b.Commit + ")"
}
