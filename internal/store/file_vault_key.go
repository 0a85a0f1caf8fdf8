// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/MKhiriev/go-campus-login/internal/crypto"
	"github.com/MKhiriev/go-campus-login/internal/logger"
)

const vaultKeyLen = 32

// vaultKeyFile is the default implementation of [VaultKeyProvider]. On first
// use it derives a fresh vault key from a machine-local seed and a random
// salt, persists the key in a 0600-permission file, and returns the same key
// on every later call. Losing the key file makes all existing credential
// blobs permanently unreadable; there is no recovery path.
type vaultKeyFile struct {
	path     string
	keychain crypto.KeyChainService
	logger   *logger.Logger
}

// NewVaultKeyFile constructs a [VaultKeyProvider] keeping the key at the
// given file path.
func NewVaultKeyFile(path string, keychain crypto.KeyChainService, logger *logger.Logger) VaultKeyProvider {
	return &vaultKeyFile{
		path:     path,
		keychain: keychain,
		logger:   logger,
	}
}

// GetVaultKey returns the persisted vault key, creating it on first use.
//
// A key file of the wrong size reports [ErrVaultKeyCorrupted] instead of
// silently regenerating the key, because a regenerated key would make every
// previously stored blob unreadable.
func (v *vaultKeyFile) GetVaultKey(ctx context.Context) ([]byte, error) {
	log := logger.FromContext(ctx)

	key, err := os.ReadFile(v.path)
	if err == nil {
		if len(key) != vaultKeyLen {
			log.Error().
				Str("func", "vaultKeyFile.GetVaultKey").
				Str("path", v.path).
				Int("key_len", len(key)).
				Msg("vault key file has unexpected size")
			return nil, ErrVaultKeyCorrupted
		}
		return key, nil
	}
	if !os.IsNotExist(err) {
		log.Err(err).
			Str("func", "vaultKeyFile.GetVaultKey").
			Str("path", v.path).
			Msg("failed to read vault key file")
		return nil, fmt.Errorf("read vault key file: %w", err)
	}

	return v.createVaultKey(ctx)
}

// createVaultKey derives a new vault key and persists it.
func (v *vaultKeyFile) createVaultKey(ctx context.Context) ([]byte, error) {
	log := logger.FromContext(ctx)

	salt, err := v.keychain.GenerateKeySalt()
	if err != nil {
		log.Err(err).
			Str("func", "vaultKeyFile.createVaultKey").
			Msg("failed to generate key salt")
		return nil, fmt.Errorf("generate key salt: %w", err)
	}

	key := v.keychain.DeriveVaultKey(machineSeed(), salt)

	dir := filepath.Dir(v.path)
	if dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			log.Err(err).
				Str("func", "vaultKeyFile.createVaultKey").
				Str("path", v.path).
				Msg("failed to create vault key dir")
			return nil, fmt.Errorf("create vault key dir: %w", err)
		}
	}

	if err = os.WriteFile(v.path, key, 0o600); err != nil {
		log.Err(err).
			Str("func", "vaultKeyFile.createVaultKey").
			Str("path", v.path).
			Msg("failed to write vault key file")
		return nil, fmt.Errorf("write vault key file: %w", err)
	}

	log.Info().
		Str("func", "vaultKeyFile.createVaultKey").
		Str("path", v.path).
		Msg("created new vault key")

	return key, nil
}

// machineSeed builds a machine-local seed string for initial key derivation.
// The seed does not have to be secret, only stable enough to tie the first
// derivation to this machine; the derived key is what gets protected.
func machineSeed() string {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown-host"
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = "unknown-home"
	}

	return strings.Join([]string{"go-campus-login", hostname, runtime.GOOS, home}, "|")
}
