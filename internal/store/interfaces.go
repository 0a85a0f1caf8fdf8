package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-campus-login/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// BlobStorage persists the single encrypted credential blob on the local
// filesystem. Implementations must never interpret the blob contents.
type BlobStorage interface {
	// SaveBlob writes the blob to local storage, creating the parent
	// directory on demand. The file is created with 0600 permissions.
	SaveBlob(ctx context.Context, blob []byte) error

	// LoadBlob reads the stored blob. Returns [ErrBlobNotFound] when no
	// credential has been saved yet.
	LoadBlob(ctx context.Context) ([]byte, error)

	// DeleteBlob removes the stored blob. Deleting an absent blob is not
	// an error.
	DeleteBlob(ctx context.Context) error
}

// VaultKeyProvider supplies the symmetric key used to seal and open
// credential blobs.
type VaultKeyProvider interface {
	// GetVaultKey returns the 32-byte vault key, creating and persisting
	// it on first use.
	GetVaultKey(ctx context.Context) ([]byte, error)
}

// AttemptJournalRepository is the local journal of completed login attempts.
type AttemptJournalRepository interface {
	SaveAttempt(ctx context.Context, attempt models.LoginAttempt) error
	GetRecentAttempts(ctx context.Context, limit int) ([]models.LoginAttempt, error)
	DeleteAttemptsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
