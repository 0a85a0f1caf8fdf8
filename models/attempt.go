package models

import "time"

// LoginAttempt is one journaled portal login attempt.
// It records what happened and when, never the password.
type LoginAttempt struct {
	// ID is the unique identifier of the attempt (UUID).
	ID string `json:"id"`

	// Username the attempt was made with.
	Username string `json:"username"`

	// Result is the top-level outcome classification.
	Result OutcomeResult `json:"result"`

	// Reason is empty for successful attempts.
	Reason FailureReason `json:"reason,omitempty"`

	// StatusCode is the portal's HTTP status, zero when the request never
	// produced a response.
	StatusCode int `json:"status_code,omitempty"`

	// ElapsedMS is the round-trip duration in milliseconds.
	ElapsedMS int64 `json:"elapsed_ms"`

	// CreatedAt is when the attempt finished.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the LoginAttempt model.
func (a LoginAttempt) TableName() string {
	return "login_attempts"
}
