// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-campus-login TUI, the portal simulator, and middleware.
//
// All Msg* constants are human-readable message strings that are shown in the
// terminal UI, written into simulator response bodies, or logged to describe
// the outcome of an operation. Keeping them in one place ensures consistent
// wording throughout the application.
package app

const (
	// MsgEnterBothFields is shown when the login form is submitted with an
	// empty username or password.
	MsgEnterBothFields = "Please enter both username and password."

	// MsgLoggingIn is shown while the login request is in flight.
	MsgLoggingIn = "Logging in ..."

	// MsgLoginGranted is shown once the portal confirms the session.
	MsgLoginGranted = "Successfully logged in to CITPC Internet!"

	// MsgLoginFailed is shown when the portal rejects the credentials.
	MsgLoginFailed = "Login failed. Check credentials or connection."

	// MsgRequestTimedOut is shown when the portal does not answer within
	// the configured timeout.
	MsgRequestTimedOut = "Request timed out. Check your network."

	// MsgNetworkUnreachable is shown when the portal cannot be reached at
	// all (connection refused, DNS or TLS failure).
	MsgNetworkUnreachable = "Could not reach the portal. Check your network."

	// MsgServerError is shown when the portal answers with an unexpected
	// HTTP status.
	MsgServerError = "The portal returned an unexpected error."

	// MsgPortalSignedIn is the body text the campus portal (and its
	// simulator) answers with on a successful login; the %s verb carries
	// the username.
	MsgPortalSignedIn = "You are signed in as %s"

	// MsgPortalInvalidCredentials is the body text the campus portal (and
	// its simulator) answers with when the credential pair is rejected.
	// The client's default failure markers must match it.
	MsgPortalInvalidCredentials = "Invalid user name or password. Please try again"

	// MsgPortalBadRequest is the simulator's body text for a request that
	// does not carry the expected five form fields.
	MsgPortalBadRequest = "Malformed login request"
)
