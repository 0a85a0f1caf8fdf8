// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package portalsim

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-campus-login/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, cfg Config) *chi.Mux {
	t.Helper()
	if cfg.Username == "" {
		cfg.Username = DefaultUsername
	}
	if cfg.Password == "" {
		cfg.Password = DefaultPassword
	}

	return NewHandler(cfg, logger.Nop()).Init()
}

// loginForm builds the five-field portal payload.
func loginForm(username, password string) url.Values {
	return url.Values{
		"mode":        {"191"},
		"username":    {username},
		"password":    {password},
		"a":           {"1755859200000"},
		"producttype": {"0"},
	}
}

func postLogin(t *testing.T, router *chi.Mux, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/httpclient.html", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// ── Login route ──────────────────────────────────────────────────────────────

func TestLogin_AcceptedCredentials(t *testing.T) {
	router := newTestRouter(t, Config{})

	rec := postLogin(t, router, loginForm("081bel052", "campus-secret"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/xml; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "<status>LIVE</status>")
	assert.Contains(t, body, "You are signed in as 081bel052")
}

func TestLogin_RejectedCredentials_Still200(t *testing.T) {
	router := newTestRouter(t, Config{})

	rec := postLogin(t, router, loginForm("081bel052", "wrong-pass"))

	// The gateway flags rejection in the body only, never the status code.
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "<status>FAILED</status>")
	assert.Contains(t, body, "Invalid user name or password. Please try again")
	assert.NotContains(t, body, "signed in")
}

func TestLogin_UnknownUsername_Rejected(t *testing.T) {
	router := newTestRouter(t, Config{})

	rec := postLogin(t, router, loginForm("someone-else", "campus-secret"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid user name or password")
}

func TestLogin_CustomCredentialPair(t *testing.T) {
	router := newTestRouter(t, Config{Username: "j.doe", Password: "letmein42"})

	rec := postLogin(t, router, loginForm("j.doe", "letmein42"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "You are signed in as j.doe")
}

// ── Five-field shape ─────────────────────────────────────────────────────────

func TestLogin_MissingField_BadRequest(t *testing.T) {
	for _, field := range []string{"mode", "username", "password", "a", "producttype"} {
		t.Run(field, func(t *testing.T) {
			router := newTestRouter(t, Config{})

			form := loginForm("081bel052", "campus-secret")
			form.Del(field)

			rec := postLogin(t, router, form)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "Malformed login request")
		})
	}
}

func TestLogin_NonNumericTimestamp_BadRequest(t *testing.T) {
	router := newTestRouter(t, Config{})

	form := loginForm("081bel052", "campus-secret")
	form.Set("a", "not-a-timestamp")

	rec := postLogin(t, router, form)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ── Failure status mode ──────────────────────────────────────────────────────

func TestLogin_FailStatusMode(t *testing.T) {
	router := newTestRouter(t, Config{FailStatus: http.StatusServiceUnavailable})

	rec := postLogin(t, router, loginForm("081bel052", "campus-secret"))

	// Even valid credentials get the configured status: the mode simulates
	// a broken gateway.
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

// ── Response delay ───────────────────────────────────────────────────────────

func TestLogin_ResponseDelay(t *testing.T) {
	router := newTestRouter(t, Config{ResponseDelay: 30 * time.Millisecond})

	start := time.Now()
	rec := postLogin(t, router, loginForm("081bel052", "campus-secret"))
	elapsed := time.Since(start)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.GreaterOrEqual(t, elapsed, 30*time.Millisecond)
}

// ── Routing ──────────────────────────────────────────────────────────────────

func TestRouting_GetLoginRoute_NotFound(t *testing.T) {
	router := newTestRouter(t, Config{})

	req := httptest.NewRequest(http.MethodGet, "/httpclient.html", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// Wrong method answers 404, not 405, hiding the endpoint from probing.
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouting_UnknownPath_NotFound(t *testing.T) {
	router := newTestRouter(t, Config{})

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ── Request ID middleware ────────────────────────────────────────────────────

func TestRequestID_AssignedWhenAbsent(t *testing.T) {
	router := newTestRouter(t, Config{})

	rec := postLogin(t, router, loginForm("081bel052", "campus-secret"))

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRequestID_EchoedWhenProvided(t *testing.T) {
	router := newTestRouter(t, Config{})

	req := httptest.NewRequest(http.MethodPost, "/httpclient.html", strings.NewReader(loginForm("081bel052", "campus-secret").Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Request-ID", "attempt-42")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "attempt-42", rec.Header().Get("X-Request-ID"))
}
