// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/go-campus-login/models"
)

// credentialCipher is the private implementation of [CredentialCipher].
type credentialCipher struct{}

// NewCredentialCipher constructs a [CredentialCipher] sealing credentials
// with AES-256-GCM.
func NewCredentialCipher() CredentialCipher {
	return &credentialCipher{}
}

// EncryptCredential implements [CredentialCipher]. The credential is
// serialized as JSON (struct field order is fixed, so the layout is
// deterministic and round-trips byte-for-byte) and sealed with key using
// AES-GCM. A random 12-byte nonce is prepended to the ciphertext so the
// decryption side can locate it: blob = nonce ‖ ciphertext.
// Returns an error if the key material is invalid or nonce generation fails.
func (c *credentialCipher) EncryptCredential(credential models.Credential, key []byte) ([]byte, error) {
	plaintext, err := json.Marshal(credential)
	if err != nil {
		return nil, fmt.Errorf("marshal credential: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	// Prepend the nonce so DecryptCredential can split it out.
	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)
	return append(nonce, ciphertext...), nil
}

// DecryptCredential implements [CredentialCipher]. It unwraps a blob
// produced by [credentialCipher.EncryptCredential] with the same key. The
// blob must be at least as long as the GCM nonce (12 bytes). Returns the
// plaintext credential, or an error if the blob is too short, the key is
// wrong, or the ciphertext is corrupted (authentication-tag mismatch), so
// tampering never yields silently wrong credential fields.
func (c *credentialCipher) DecryptCredential(blob, key []byte) (models.Credential, error) {
	var credential models.Credential

	block, err := aes.NewCipher(key)
	if err != nil {
		return credential, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return credential, fmt.Errorf("create gcm: %w", err)
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return credential, fmt.Errorf("ciphertext too short")
	}

	// Split the blob into nonce and actual ciphertext.
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	// Decrypt and verify auth tag. An error here means a corrupt blob or
	// a key that does not match the one the blob was sealed with.
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return credential, fmt.Errorf("decryption failed: %w", err)
	}

	if err := json.Unmarshal(plaintext, &credential); err != nil {
		return credential, fmt.Errorf("unmarshal credential: %w", err)
	}

	return credential, nil
}
