package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-campus-login/internal/logger"
	"github.com/MKhiriev/go-campus-login/models"
)

// defaultRecentAttemptsLimit bounds journal listings when the caller passes
// a non-positive limit.
const defaultRecentAttemptsLimit = 50

// attemptJournalRepository is the SQLite-backed implementation of
// [AttemptJournalRepository]. It executes all journal operations directly
// against the "login_attempts" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced
// with structured fields (attempt id, username, limit, cutoff).
type attemptJournalRepository struct {
	*DB
	logger *logger.Logger
}

// NewAttemptJournalRepository constructs an [AttemptJournalRepository] backed
// by the provided database connection and logger.
func NewAttemptJournalRepository(db *DB, logger *logger.Logger) AttemptJournalRepository {
	logger.Debug().Msg("creating attempt journal repository")
	return &attemptJournalRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveAttempt inserts a single journal row. The caller is responsible for
// assigning the attempt ID and CreatedAt before saving.
//
// Returns [ErrAttemptNotSaved] when the INSERT affects zero rows.
func (r *attemptJournalRepository) SaveAttempt(ctx context.Context, attempt models.LoginAttempt) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAttemptQuery(ctx, attempt)
	if err != nil {
		return err
	}

	result, execErr := r.DB.ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "attemptJournalRepository.SaveAttempt").
			Str("id", attempt.ID).
			Str("username", attempt.Username).
			Msg("failed to execute insert for login attempt")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		log.Error().
			Str("func", "attemptJournalRepository.SaveAttempt").
			Str("id", attempt.ID).
			Msg("login attempt was not saved")
		return ErrAttemptNotSaved
	}

	return nil
}

// GetRecentAttempts returns up to limit journal rows, newest first. A
// non-positive limit falls back to [defaultRecentAttemptsLimit].
func (r *attemptJournalRepository) GetRecentAttempts(ctx context.Context, limit int) ([]models.LoginAttempt, error) {
	log := logger.FromContext(ctx)

	if limit <= 0 {
		limit = defaultRecentAttemptsLimit
	}

	query, args, err := buildSelectRecentAttemptsQuery(ctx, limit)
	if err != nil {
		return nil, err
	}

	rows, queryErr := r.DB.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "attemptJournalRepository.GetRecentAttempts").
			Int("limit", limit).
			Msg("failed to execute query for recent login attempts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	attempts := make([]models.LoginAttempt, 0, limit)

	for rows.Next() {
		var attempt models.LoginAttempt

		scanErr := rows.Scan(
			&attempt.ID,
			&attempt.Username,
			&attempt.Result,
			&attempt.Reason,
			&attempt.StatusCode,
			&attempt.ElapsedMS,
			&attempt.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "attemptJournalRepository.GetRecentAttempts").
				Msg("failed to scan login attempt row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		attempts = append(attempts, attempt)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "attemptJournalRepository.GetRecentAttempts").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return attempts, nil
}

// DeleteAttemptsBefore removes every journal row recorded strictly before
// cutoff and returns the number of deleted rows.
func (r *attemptJournalRepository) DeleteAttemptsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAttemptsBeforeQuery(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	result, execErr := r.DB.ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "attemptJournalRepository.DeleteAttemptsBefore").
			Time("cutoff", cutoff).
			Msg("failed to execute prune for login attempts")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	rowsAffected, raErr := result.RowsAffected()
	if raErr != nil {
		log.Err(raErr).
			Str("func", "attemptJournalRepository.DeleteAttemptsBefore").
			Time("cutoff", cutoff).
			Msg("failed to get rows affected after prune")
		return 0, fmt.Errorf("failed to get rows affected: %w", raErr)
	}

	if rowsAffected > 0 {
		log.Info().
			Str("func", "attemptJournalRepository.DeleteAttemptsBefore").
			Time("cutoff", cutoff).
			Int64("pruned", rowsAffected).
			Msg("pruned old login attempts")
	}

	return rowsAffected, nil
}
