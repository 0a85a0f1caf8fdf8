package tui

import (
	"github.com/MKhiriev/go-campus-login/models"
)

type savedCredentialMsg struct {
	credential models.Credential
	err        error
}

type loginDoneMsg struct {
	outcome models.LoginOutcome
	err     error
}

type historyLoadedMsg struct {
	attempts []models.LoginAttempt
	err      error
}

type credentialClearedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
