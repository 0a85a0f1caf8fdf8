package store

import "errors"

// Sentinel errors returned by storage methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrBlobNotFound is returned by [BlobStorage.LoadBlob] when no credential
	// blob has been saved yet. It is a normal condition on first run, distinct
	// from read failures and from decryption failures.
	ErrBlobNotFound = errors.New("credential blob not found")

	// ErrVaultKeyCorrupted is returned when the vault key file exists but does
	// not contain a valid 32-byte key. The file is left untouched so that the
	// user can decide whether to recover or remove it; silently regenerating
	// the key would make every existing blob unreadable.
	ErrVaultKeyCorrupted = errors.New("vault key file is corrupted")

	// ErrAttemptNotSaved is returned when an INSERT of a journal row completes
	// without error but the number of affected rows is zero, indicating that
	// no data was actually persisted.
	ErrAttemptNotSaved = errors.New("login attempt was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan login attempt row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan login attempt rows")
)
