// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-campus-login/models"
)

// classifyResponse maps one portal HTTP response to a [models.LoginOutcome].
//
// The portal answers HTTP 200 for rejected credentials too, flagging the
// rejection only inside the body, so a 200 counts as success only when the
// body carries none of the configured failure markers. 401 and 403 are
// credential rejections as well; every other non-200 status is a portal-side
// fault carried in the outcome as server-error.
//
// Outcome messages are built from the status code and classification only,
// never from body text, so they can always be displayed and logged.
func (p *portalAuthenticator) classifyResponse(statusCode int, body []byte, elapsed time.Duration) models.LoginOutcome {
	outcome := models.LoginOutcome{
		Result:     models.OutcomeFailure,
		StatusCode: statusCode,
		Elapsed:    elapsed,
	}

	switch statusCode {
	case http.StatusOK:
		if p.matchesFailureMarker(body) {
			outcome.Reason = models.ReasonInvalidCredentials
			outcome.Message = "portal rejected the credentials"
			return outcome
		}
		outcome.Result = models.OutcomeSuccess
		outcome.Reason = ""
		outcome.Message = "portal accepted the login"

	case http.StatusUnauthorized, http.StatusForbidden:
		outcome.Reason = models.ReasonInvalidCredentials
		outcome.Message = fmt.Sprintf("portal rejected the credentials (http %d)", statusCode)

	default:
		outcome.Reason = models.ReasonServerError
		if text := http.StatusText(statusCode); text != "" {
			outcome.Message = fmt.Sprintf("portal returned http %d: %s", statusCode, text)
		} else {
			outcome.Message = fmt.Sprintf("portal returned http %d", statusCode)
		}
	}

	return outcome
}

// classifyTransportError maps a round trip that produced no HTTP response at
// all to a timeout or network-unreachable outcome. Transport errors never
// echo the request body, so including their text in the message cannot leak
// the password: it travels only in the POST form.
func (p *portalAuthenticator) classifyTransportError(err error, elapsed time.Duration) models.LoginOutcome {
	outcome := models.LoginOutcome{
		Result:  models.OutcomeFailure,
		Elapsed: elapsed,
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		outcome.Reason = models.ReasonTimeout
		outcome.Message = fmt.Sprintf("no response from the portal within %s", p.timeout)
		return outcome
	}

	outcome.Reason = models.ReasonNetworkUnreachable
	outcome.Message = fmt.Sprintf("portal is unreachable: %v", err)

	return outcome
}

// matchesFailureMarker reports whether the response body contains any of the
// configured failure markers. Matching is a case-insensitive substring test;
// markers were lowercased at construction.
func (p *portalAuthenticator) matchesFailureMarker(body []byte) bool {
	lowered := strings.ToLower(string(body))
	for _, marker := range p.failureMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}

	return false
}
