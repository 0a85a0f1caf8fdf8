// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the campus
// captive portal.
//
// The primary abstraction is [PortalAuthenticator], which decouples the login
// workflow from the wire protocol. The package ships an HTTP implementation
// ([NewPortalAuthenticator]) speaking the portal's form-encoded dialect: one
// POST of exactly five fields (mode, username, password, a, producttype) per
// attempt.
//
// A rejected password is not a Go error. Rejection, timeout and an
// unreachable network are all legitimate results of an attempt, classified
// into [models.LoginOutcome] so callers switch on [models.FailureReason]
// instead of unwrapping error chains. The portal itself answers HTTP 200 for
// bad credentials and flags the rejection only in the body, which is why
// classification is driven by configured failure markers rather than status
// codes alone.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-campus-login/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/portal_authenticator_mock.go -package=mock

// PortalAuthenticator defines transport-agnostic authentication against the
// campus captive portal. Implementations are responsible for payload
// encoding, TLS policy, and classifying every possible response (transport
// failures included) into a [models.LoginOutcome].
type PortalAuthenticator interface {
	// Login performs exactly one login round trip with the given credential
	// and classifies the result. It never retries and never returns an error:
	// an unreachable portal and a rejected password are both ordinary
	// outcomes. The call blocks for at most the configured request timeout,
	// or less if ctx is cancelled first.
	Login(ctx context.Context, credential models.Credential) models.LoginOutcome
}
