package models

import "time"

// OutcomeResult is the top-level classification of one login attempt.
type OutcomeResult string

const (
	// OutcomeSuccess means the portal accepted the credentials.
	OutcomeSuccess OutcomeResult = "success"

	// OutcomeFailure means the attempt did not authenticate, for the
	// reason carried alongside.
	OutcomeFailure OutcomeResult = "failure"
)

// FailureReason distinguishes why a login attempt failed.
// The four values are deliberately coarse: they are what a user (or the
// host UI) can act on, not a transport-level diagnosis.
type FailureReason string

const (
	// ReasonNetworkUnreachable covers connection refused, DNS and TLS
	// errors: the portal could not be reached at all.
	ReasonNetworkUnreachable FailureReason = "network-unreachable"

	// ReasonTimeout means the portal did not answer within the configured
	// request timeout.
	ReasonTimeout FailureReason = "timeout"

	// ReasonInvalidCredentials means the portal answered and rejected the
	// username/password pair. Never conflated with network failures.
	ReasonInvalidCredentials FailureReason = "invalid-credentials"

	// ReasonServerError covers any non-200 portal response other than a
	// credential rejection; the HTTP status travels with the outcome.
	ReasonServerError FailureReason = "server-error"
)

// LoginOutcome is the classified result of exactly one portal round trip.
type LoginOutcome struct {
	// Result is Success or Failure.
	Result OutcomeResult

	// Reason is set only when Result is OutcomeFailure.
	Reason FailureReason

	// StatusCode is the HTTP status of the portal response, zero when the
	// request never produced one (transport error, timeout).
	StatusCode int

	// Message is a short human-readable detail safe to display and log.
	// It never contains the password.
	Message string

	// Elapsed is the wall-clock duration of the round trip.
	Elapsed time.Duration
}

// Succeeded reports whether the portal accepted the credentials.
func (o LoginOutcome) Succeeded() bool {
	return o.Result == OutcomeSuccess
}
