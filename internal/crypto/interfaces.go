package crypto

import "github.com/MKhiriev/go-campus-login/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyChainService owns vault key material. It knows nothing about the
// network, the file system, or the portal; its single job is producing and
// deriving symmetric keys.
//
// Key scheme:
//
//	salt = GenerateKeySalt()                (once, on first run)
//	key  = DeriveVaultKey(machineSeed, salt) or GenerateVaultKey()
//
// Losing the key makes every blob sealed with it permanently unrecoverable;
// the vault has no recovery path, so the caller must persist the key it
// obtains here.
type KeyChainService interface {
	// GenerateKeySalt generates a random salt (16 bytes / 128 bits) for
	// key derivation. The salt is not a secret; it only makes identical
	// seeds produce different keys on different installations.
	GenerateKeySalt() ([]byte, error)

	// GenerateVaultKey generates a random symmetric vault key
	// (32 bytes / 256 bits) straight from the OS CSPRNG.
	GenerateVaultKey() ([]byte, error)

	// DeriveVaultKey derives a 256-bit vault key from a machine-local
	// seed string and salt using Argon2id. Deterministic for the same
	// inputs.
	DeriveVaultKey(seed string, salt []byte) []byte
}

// CredentialCipher seals a credential pair into an opaque blob and opens it
// back. The blob layout is nonce ‖ ciphertext produced by AES-256-GCM, so
// any tampering, truncation, or wrong key is detected by the authentication
// tag instead of surfacing as garbage field values.
type CredentialCipher interface {
	// EncryptCredential serializes the credential deterministically and
	// seals it with key. Fails when the key material is invalid (empty or
	// not a legal AES key length).
	EncryptCredential(credential models.Credential, key []byte) ([]byte, error)

	// DecryptCredential opens a blob produced by EncryptCredential with
	// the same key. Fails when the blob is corrupt, truncated, or the key
	// does not match.
	DecryptCredential(blob, key []byte) (models.Credential, error)
}
