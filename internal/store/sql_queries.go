// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-campus-login/internal/logger"
	"github.com/MKhiriev/go-campus-login/models"
)

// attemptColumns lists the journal columns in the fixed scan order shared by
// every query below and by [attemptJournalRepository] scan loops.
var attemptColumns = []string{
	"id",
	"username",
	"result",
	"reason",
	"status_code",
	"elapsed_ms",
	"created_at",
}

// statementBuilder produces $N placeholders, the format used by every raw
// query in this package and understood by the sqlite3 driver.
var statementBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildInsertAttemptQuery builds the INSERT for a single journal row.
func buildInsertAttemptQuery(ctx context.Context, attempt models.LoginAttempt) (string, []any, error) {
	log := logger.FromContext(ctx)

	query, args, err := statementBuilder.
		Insert(attempt.TableName()).
		Columns(attemptColumns...).
		Values(
			attempt.ID,
			attempt.Username,
			attempt.Result,
			attempt.Reason,
			attempt.StatusCode,
			attempt.ElapsedMS,
			attempt.CreatedAt,
		).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "buildInsertAttemptQuery").
			Str("id", attempt.ID).
			Msg("failed to build insert query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectRecentAttemptsQuery builds the newest-first listing query with a
// bounded limit.
func buildSelectRecentAttemptsQuery(ctx context.Context, limit int) (string, []any, error) {
	log := logger.FromContext(ctx)

	query, args, err := statementBuilder.
		Select(attemptColumns...).
		From(models.LoginAttempt{}.TableName()).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "buildSelectRecentAttemptsQuery").
			Int("limit", limit).
			Msg("failed to build select query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildDeleteAttemptsBeforeQuery builds the retention prune query removing
// every row recorded strictly before cutoff.
func buildDeleteAttemptsBeforeQuery(ctx context.Context, cutoff time.Time) (string, []any, error) {
	log := logger.FromContext(ctx)

	query, args, err := statementBuilder.
		Delete(models.LoginAttempt{}.TableName()).
		Where(sq.Lt{"created_at": cutoff}).
		ToSql()
	if err != nil {
		log.Err(err).
			Str("func", "buildDeleteAttemptsBeforeQuery").
			Time("cutoff", cutoff).
			Msg("failed to build delete query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
