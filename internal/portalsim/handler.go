// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package portalsim implements a development stand-in for the campus captive
// portal: one chi-routed HTTP endpoint speaking the portal's form-encoded
// login dialect. It exists so the client can be exercised end to end without
// the real gateway; it never forwards credentials anywhere.
package portalsim

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-campus-login/internal/app"
	"github.com/MKhiriev/go-campus-login/internal/logger"
	"github.com/MKhiriev/go-campus-login/internal/utils"
	"github.com/MKhiriev/go-campus-login/models"
)

type Handler struct {
	cfg Config

	logger *logger.Logger
}

func NewHandler(cfg Config, logger *logger.Logger) *Handler {
	logger.Info().Msg("portal simulator handler created")
	return &Handler{
		cfg:    cfg,
		logger: logger,
	}
}

// login answers POST /httpclient.html the way the campus gateway does:
// HTTP 200 with a signed-in XML message on credential match, HTTP 200 with
// the invalid-credentials marker text on mismatch. Note the portal never
// signals a rejected password through the status code.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if !h.waitResponseDelay(r) {
		return
	}

	if h.cfg.FailStatus != 0 {
		log.Info().Int("status", h.cfg.FailStatus).Msg("answering with configured failure status")
		http.Error(w, http.StatusText(h.cfg.FailStatus), h.cfg.FailStatus)
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("cannot parse login form")
		http.Error(w, app.MsgPortalBadRequest, http.StatusBadRequest)
		return
	}

	request, err := loginRequestFromForm(r)
	if err != nil {
		log.Err(err).Msg("malformed login request")
		http.Error(w, app.MsgPortalBadRequest, http.StatusBadRequest)
		return
	}

	if request.Username != h.cfg.Username || request.Password != h.cfg.Password {
		log.Info().Str("username", request.Username).Msg("credentials rejected")
		utils.WriteXML(w, models.PortalResponse{
			Status:  models.PortalStatusFailed,
			Message: app.MsgPortalInvalidCredentials,
		}, http.StatusOK)
		return
	}

	log.Info().Str("username", request.Username).Msg("login granted")
	utils.WriteXML(w, models.PortalResponse{
		Status:  models.PortalStatusLive,
		Message: fmt.Sprintf(app.MsgPortalSignedIn, request.Username),
	}, http.StatusOK)
}

// loginRequestFromForm verifies the five-field shape of the portal protocol.
// Every field must be present and non-empty, and "a" must be numeric; the
// gateway silently assumes well-formed clients, but the simulator is stricter
// so protocol regressions surface as 400s instead of false rejections.
func loginRequestFromForm(r *http.Request) (models.LoginRequest, error) {
	for _, field := range []string{
		models.PortalFieldMode,
		models.PortalFieldUsername,
		models.PortalFieldPassword,
		models.PortalFieldTimestamp,
		models.PortalFieldProductType,
	} {
		if r.PostFormValue(field) == "" {
			return models.LoginRequest{}, fmt.Errorf("missing form field %q", field)
		}
	}

	timestamp, err := strconv.ParseInt(r.PostFormValue(models.PortalFieldTimestamp), 10, 64)
	if err != nil {
		return models.LoginRequest{}, fmt.Errorf("form field %q is not numeric: %w", models.PortalFieldTimestamp, err)
	}

	return models.LoginRequest{
		Mode:        r.PostFormValue(models.PortalFieldMode),
		Username:    r.PostFormValue(models.PortalFieldUsername),
		Password:    r.PostFormValue(models.PortalFieldPassword),
		Timestamp:   timestamp,
		ProductType: r.PostFormValue(models.PortalFieldProductType),
	}, nil
}

// waitResponseDelay sleeps for the configured artificial delay. Returns false
// when the client gave up first, in which case nothing should be written.
func (h *Handler) waitResponseDelay(r *http.Request) bool {
	if h.cfg.ResponseDelay <= 0 {
		return true
	}

	select {
	case <-time.After(h.cfg.ResponseDelay):
		return true
	case <-r.Context().Done():
		return false
	}
}
