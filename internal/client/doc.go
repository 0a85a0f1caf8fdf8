// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the login and vault services, and background
// journal housekeeping into a single process lifecycle.
package client
