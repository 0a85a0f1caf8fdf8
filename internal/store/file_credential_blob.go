// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-campus-login/internal/logger"
)

// credentialBlobStorage is the default implementation of [BlobStorage].
// It keeps the encrypted credential blob in a single local file and never
// looks inside it: sealing and opening belong to the crypto layer.
type credentialBlobStorage struct {
	path   string
	logger *logger.Logger
}

// NewCredentialBlobStorage constructs a [BlobStorage] persisting the blob
// at the given file path.
func NewCredentialBlobStorage(path string, logger *logger.Logger) BlobStorage {
	return &credentialBlobStorage{
		path:   path,
		logger: logger,
	}
}

// SaveBlob writes the blob to the storage file, creating the parent directory
// on demand. The file is written with 0600 permissions so that only the
// owning user can read the (encrypted) credential.
func (s *credentialBlobStorage) SaveBlob(ctx context.Context, blob []byte) error {
	log := logger.FromContext(ctx)

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Err(err).
				Str("func", "credentialBlobStorage.SaveBlob").
				Str("path", s.path).
				Msg("failed to create blob storage dir")
			return fmt.Errorf("create blob storage dir: %w", err)
		}
	}

	if err := os.WriteFile(s.path, blob, 0o600); err != nil {
		log.Err(err).
			Str("func", "credentialBlobStorage.SaveBlob").
			Str("path", s.path).
			Msg("failed to write blob storage file")
		return fmt.Errorf("write blob storage file: %w", err)
	}

	return nil
}

// LoadBlob reads the stored blob. A missing or empty storage file reports
// [ErrBlobNotFound]: an empty file carries no usable ciphertext and is
// treated the same as no file at all.
func (s *credentialBlobStorage) LoadBlob(ctx context.Context) ([]byte, error) {
	log := logger.FromContext(ctx)

	blob, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrBlobNotFound
		}
		log.Err(err).
			Str("func", "credentialBlobStorage.LoadBlob").
			Str("path", s.path).
			Msg("failed to read blob storage file")
		return nil, fmt.Errorf("read blob storage file: %w", err)
	}

	if len(blob) == 0 {
		return nil, ErrBlobNotFound
	}

	return blob, nil
}

// DeleteBlob removes the storage file. Removing an absent file is a no-op.
func (s *credentialBlobStorage) DeleteBlob(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		log.Err(err).
			Str("func", "credentialBlobStorage.DeleteBlob").
			Str("path", s.path).
			Msg("failed to remove blob storage file")
		return fmt.Errorf("remove blob storage file: %w", err)
	}

	return nil
}
