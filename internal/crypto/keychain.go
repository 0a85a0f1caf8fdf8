// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"io"

	"golang.org/x/crypto/argon2"
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. laptop vs. single-board box).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeyChainService constructs a [KeyChainService] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeyChainService() KeyChainService {
	return &keyChainService{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// GenerateKeySalt implements [KeyChainService]. It reads 16 random bytes
// from the OS CSPRNG and returns them as the key-derivation salt. Returns
// an error if the random read fails.
func (k *keyChainService) GenerateKeySalt() ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// GenerateVaultKey implements [KeyChainService]. It reads 32 random bytes
// from the OS CSPRNG and returns them as the vault key. Returns an error if
// the random read fails.
func (k *keyChainService) GenerateVaultKey() ([]byte, error) {
	key := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return key, nil
}

// DeriveVaultKey implements [KeyChainService]. It derives a 256-bit vault
// key from seed and salt using Argon2id with the parameters stored in the
// receiver. The seed is machine-local (hostname, OS, user), so the derived
// key never has to leave the device it was created on.
func (k *keyChainService) DeriveVaultKey(seed string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(seed),
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}
