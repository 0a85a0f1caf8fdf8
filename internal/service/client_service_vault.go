// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-campus-login/internal/crypto"
	"github.com/MKhiriev/go-campus-login/internal/logger"
	"github.com/MKhiriev/go-campus-login/internal/store"
	"github.com/MKhiriev/go-campus-login/models"
)

type vaultService struct {
	cipher crypto.CredentialCipher
	blobs  store.BlobStorage
	keys   store.VaultKeyProvider

	logger *logger.Logger
}

// NewVaultService wires the credential cipher to the blob file and the vault
// key provider. The key is fetched per operation, never cached in the
// service, so key rotation on disk takes effect immediately.
func NewVaultService(cipher crypto.CredentialCipher, blobs store.BlobStorage, keys store.VaultKeyProvider, logger *logger.Logger) VaultService {
	return &vaultService{cipher: cipher, blobs: blobs, keys: keys, logger: logger}
}

func (v *vaultService) RememberCredential(ctx context.Context, credential models.Credential) error {
	log := logger.FromContext(ctx)

	key, err := v.keys.GetVaultKey(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrVaultKey, err)
	}

	blob, err := v.cipher.EncryptCredential(credential, key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncryptCredential, err)
	}

	if err := v.blobs.SaveBlob(ctx, blob); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreCredential, err)
	}

	log.Debug().Str("func", "vaultService.RememberCredential").Str("username", credential.Username).Msg("credential sealed and saved")

	return nil
}

func (v *vaultService) SavedCredential(ctx context.Context) (models.Credential, error) {
	blob, err := v.blobs.LoadBlob(ctx)
	if err != nil {
		// An empty vault is absence, not failure.
		if errors.Is(err, store.ErrBlobNotFound) {
			return models.Credential{}, ErrNoSavedCredential
		}
		return models.Credential{}, fmt.Errorf("%w: %w", ErrDecryptCredential, err)
	}

	key, err := v.keys.GetVaultKey(ctx)
	if err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrVaultKey, err)
	}

	credential, err := v.cipher.DecryptCredential(blob, key)
	if err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrDecryptCredential, err)
	}

	return credential, nil
}

func (v *vaultService) ClearCredential(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if err := v.blobs.DeleteBlob(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrClearCredential, err)
	}

	log.Debug().Str("func", "vaultService.ClearCredential").Msg("saved credential cleared")

	return nil
}
