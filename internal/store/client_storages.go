package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-campus-login/internal/config"
	"github.com/MKhiriev/go-campus-login/internal/crypto"
	"github.com/MKhiriev/go-campus-login/internal/logger"
)

// ClientStorages groups all client-side storage components into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// AttemptJournal is the SQLite-backed repository for the local history
	// of login attempts.
	AttemptJournal AttemptJournalRepository

	// CredentialBlobs persists the encrypted credential blob in a local file.
	CredentialBlobs BlobStorage

	// VaultKeys supplies the vault key, creating it on first use.
	VaultKeys VaultKeyProvider
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to the journal
//     repository, the blob file storage and the vault key file.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, keychain crypto.KeyChainService, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		AttemptJournal:  NewAttemptJournalRepository(db, logger),
		CredentialBlobs: NewCredentialBlobStorage(cfg.BlobFile, logger),
		VaultKeys:       NewVaultKeyFile(cfg.KeyFile, keychain, logger),
	}, nil
}
