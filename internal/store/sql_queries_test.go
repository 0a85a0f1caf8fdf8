// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-campus-login/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildInsertAttemptQuery_SQLContainsParts(t *testing.T) {
	ctx := context.Background()
	attempt := models.LoginAttempt{
		ID:         "0190a6e2-1111-7000-8000-000000000001",
		Username:   "081bel052",
		Result:     models.OutcomeSuccess,
		StatusCode: 200,
		ElapsedMS:  134,
		CreatedAt:  time.Now(),
	}

	query, args, err := buildInsertAttemptQuery(ctx, attempt)
	require.NoError(t, err)

	// args checks: all 7 columns bound in order
	require.Len(t, args, 7)
	require.Equal(t, attempt.ID, args[0])
	require.Equal(t, attempt.Username, args[1])
	require.Equal(t, attempt.Result, args[2])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "insert into login_attempts")
	require.Contains(t, query, "$1")
	require.Contains(t, query, "$7")

	// columns presence
	for _, col := range attemptColumns {
		require.Contains(t, q, col)
	}
}

func Test_buildSelectRecentAttemptsQuery(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:  "success: small limit",
			limit: 10,
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)

				// Check that all expected columns are present in the SELECT section.
				for _, col := range attemptColumns {
					assert.True(t, strings.Contains(q, col),
						"query should contain column %q", col)
				}

				// Check query structure.
				assert.True(t, strings.Contains(strings.ToUpper(query), "SELECT"))
				assert.True(t, strings.Contains(q, "from login_attempts"))
				assert.True(t, strings.Contains(strings.ToUpper(query), "ORDER BY"))
				assert.True(t, strings.Contains(q, "created_at desc"))
				assert.True(t, strings.Contains(q, "id desc"))

				// squirrel renders LIMIT inline, not as a placeholder.
				assert.True(t, strings.Contains(strings.ToUpper(query), "LIMIT 10"))
				assert.Empty(t, args)
			},
		},
		{
			name:  "success: single row",
			limit: 1,
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.True(t, strings.Contains(strings.ToUpper(query), "LIMIT 1"))
				assert.Empty(t, args)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectRecentAttemptsQuery(context.Background(), tt.limit)
			require.NoError(t, err)
			tt.checkQuery(t, query, args)
		})
	}
}

func Test_buildDeleteAttemptsBeforeQuery(t *testing.T) {
	ctx := context.Background()
	cutoff := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := buildDeleteAttemptsBeforeQuery(ctx, cutoff)
	require.NoError(t, err)

	q := strings.ToLower(query)

	require.Contains(t, q, "delete from login_attempts")
	require.Contains(t, q, "created_at")
	require.Contains(t, query, "<")

	// placeholder format should be $1
	require.Contains(t, query, "$1")

	require.Len(t, args, 1)
	require.Equal(t, cutoff, args[0])
}
