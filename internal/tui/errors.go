// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-campus-login/internal/app"
	"github.com/MKhiriev/go-campus-login/internal/service"
	"github.com/MKhiriev/go-campus-login/models"
)

// outcomeMessage maps a classified login outcome to the line shown under the
// login form. Wording matches the app.Msg* constants so the TUI and the logs
// tell the same story.
func outcomeMessage(o models.LoginOutcome) string {
	if o.Succeeded() {
		return app.MsgLoginGranted
	}

	switch o.Reason {
	case models.ReasonTimeout:
		return app.MsgRequestTimedOut
	case models.ReasonNetworkUnreachable:
		return app.MsgNetworkUnreachable
	case models.ReasonServerError:
		return app.MsgServerError
	default:
		return app.MsgLoginFailed
	}
}

func humanizeVaultError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, service.ErrDecryptCredential) {
		return "Saved credential could not be read. Clear it and log in again."
	}

	return err.Error()
}
