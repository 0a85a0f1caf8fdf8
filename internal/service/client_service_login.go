// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-campus-login/internal/adapter"
	"github.com/MKhiriev/go-campus-login/internal/logger"
	"github.com/MKhiriev/go-campus-login/internal/store"
	"github.com/MKhiriev/go-campus-login/internal/utils"
	"github.com/MKhiriev/go-campus-login/internal/validators"
	"github.com/MKhiriev/go-campus-login/models"
)

type loginService struct {
	authenticator adapter.PortalAuthenticator
	vault         VaultService
	journal       store.AttemptJournalRepository
	validator     validators.Validator
	uuid          *utils.UUIDGenerator

	logger *logger.Logger
}

func NewLoginService(authenticator adapter.PortalAuthenticator, vault VaultService, journal store.AttemptJournalRepository, validator validators.Validator, logger *logger.Logger) LoginService {
	return &loginService{
		authenticator: authenticator,
		vault:         vault,
		journal:       journal,
		validator:     validator,
		uuid:          utils.NewUUIDGenerator(),
		logger:        logger,
	}
}

// Login implements LoginService. The sequence is fixed: validate, one portal
// round trip, journal the outcome, then remember the credential only when the
// portal accepted it.
func (s *loginService) Login(ctx context.Context, credential models.Credential, remember bool) (models.LoginOutcome, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, credential); err != nil {
		return models.LoginOutcome{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	outcome := s.authenticator.Login(ctx, credential)

	log.Info().
		Str("func", "loginService.Login").
		Str("username", credential.Username).
		Str("result", string(outcome.Result)).
		Str("reason", string(outcome.Reason)).
		Int("status_code", outcome.StatusCode).
		Dur("elapsed", outcome.Elapsed).
		Msg("login attempt finished")

	s.journalAttempt(ctx, credential.Username, outcome)

	// The vault is written only after the portal accepted the credentials;
	// a rejected pair must never overwrite a working one.
	if outcome.Succeeded() && remember {
		if err := s.vault.RememberCredential(ctx, credential); err != nil {
			log.Err(err).
				Str("func", "loginService.Login").
				Str("username", credential.Username).
				Msg("failed to remember credential after successful login")
		}
	}

	return outcome, nil
}

func (s *loginService) SavedCredential(ctx context.Context) (models.Credential, error) {
	return s.vault.SavedCredential(ctx)
}

func (s *loginService) ClearCredential(ctx context.Context) error {
	return s.vault.ClearCredential(ctx)
}

// journalAttempt records the outcome best effort. The journal is history, not
// state the workflow depends on, so a failed insert is logged and swallowed.
func (s *loginService) journalAttempt(ctx context.Context, username string, outcome models.LoginOutcome) {
	log := logger.FromContext(ctx)

	attempt := models.LoginAttempt{
		ID:         s.uuid.Generate(),
		Username:   username,
		Result:     outcome.Result,
		Reason:     outcome.Reason,
		StatusCode: outcome.StatusCode,
		ElapsedMS:  outcome.Elapsed.Milliseconds(),
		CreatedAt:  time.Now(),
	}

	if err := s.journal.SaveAttempt(ctx, attempt); err != nil {
		log.Err(err).
			Str("func", "loginService.journalAttempt").
			Str("id", attempt.ID).
			Str("username", username).
			Msg("failed to journal login attempt")
	}
}
