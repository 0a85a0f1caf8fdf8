package service

import (
	"context"

	"github.com/MKhiriev/go-campus-login/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/service_mock.go -package=mock

// VaultService defines the contract for the local credential vault: one
// username/password pair, sealed with the machine's vault key and persisted
// as a single blob file. The vault never touches the network.
type VaultService interface {
	// RememberCredential encrypts the credential with the vault key and
	// persists the resulting blob, replacing any previously saved one.
	// Returns an error wrapping ErrEncryptCredential or ErrStoreCredential
	// if sealing or persistence fails.
	RememberCredential(ctx context.Context, credential models.Credential) error

	// SavedCredential loads and decrypts the stored credential.
	// Returns ErrNoSavedCredential when the vault is empty and an error
	// wrapping ErrDecryptCredential when the blob exists but cannot be
	// opened (corrupt file, rotated key). The two cases are never
	// conflated: absence is a fresh vault, not a failure.
	SavedCredential(ctx context.Context) (models.Credential, error)

	// ClearCredential removes the stored blob. Clearing an empty vault is
	// not an error.
	ClearCredential(ctx context.Context) error
}

// LoginService sequences one portal login attempt end to end for the UI.
type LoginService interface {
	// Login validates the credential, performs exactly one authentication
	// round trip against the portal, and records the classified outcome in
	// the attempt journal (best effort: journal failures are logged and
	// swallowed). When the outcome is a success and remember is set, the
	// credential is sealed into the vault; on any failure nothing is saved.
	//
	// A rejected password, a timeout, or an unreachable portal are all
	// ordinary outcomes, not errors. The returned error is non-nil only
	// when the credential fails validation, in which case no network
	// request is made and nothing is journaled.
	Login(ctx context.Context, credential models.Credential, remember bool) (models.LoginOutcome, error)

	// SavedCredential exposes the vault's saved credential for form
	// prefill. See VaultService.SavedCredential for the error contract.
	SavedCredential(ctx context.Context) (models.Credential, error)

	// ClearCredential removes the saved credential from the vault.
	ClearCredential(ctx context.Context) error
}

// JournalService reads the local history of login attempts.
type JournalService interface {
	// RecentAttempts returns up to limit journaled attempts, newest first.
	// A non-positive limit falls back to a small default.
	RecentAttempts(ctx context.Context, limit int) ([]models.LoginAttempt, error)
}

// JournalPruneJob defines the contract for the background worker that
// deletes journal entries older than the configured retention window.
type JournalPruneJob interface {
	// Start launches the background prune goroutine: one prune pass
	// immediately, then one per interval. Any previously running job is
	// stopped before the new one begins. The goroutine exits when ctx is
	// cancelled or Stop is called.
	Start(ctx context.Context)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()
}
