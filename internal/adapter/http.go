// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-campus-login/internal/config"
	"github.com/MKhiriev/go-campus-login/internal/logger"
	"github.com/MKhiriev/go-campus-login/internal/utils"
	"github.com/MKhiriev/go-campus-login/models"
)

type portalAuthenticator struct {
	client *utils.HTTPClient

	path           string
	mode           string
	productType    string
	timeout        time.Duration
	failureMarkers []string

	// lastTimestamp is the most recent "a" value issued; guarded so the
	// field never decreases even when the wall clock steps backwards.
	mu            sync.Mutex
	lastTimestamp int64

	logger *logger.Logger
}

// NewPortalAuthenticator constructs the HTTP implementation of
// [PortalAuthenticator]. It normalises and validates the portal address from
// portalCfg (a bare host defaults to the https scheme, since campus gateways
// sit behind TLS), configures the underlying HTTP client with the resolved
// base URL and request timeout, and pre-lowercases the configured failure
// markers for case-insensitive body matching.
//
// When portalCfg.InsecureSkipVerify is set, TLS certificate validation is
// disabled. This is an explicit, security-reducing opt-out for portals that
// serve self-signed certificates on private addresses; the default enforces
// validation.
//
// Returns an error if the portal address is empty or cannot be parsed as a
// valid URL.
func NewPortalAuthenticator(portalCfg config.ClientPortal, logger *logger.Logger) (PortalAuthenticator, error) {
	baseURL, err := normalizeBaseURL(portalAddress(portalCfg.Host, portalCfg.Port))
	if err != nil {
		return nil, fmt.Errorf("invalid portal address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(portalCfg.RequestTimeout)

	if portalCfg.InsecureSkipVerify {
		client.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}) //nolint:gosec
	}

	return &portalAuthenticator{
		client:         client,
		path:           portalCfg.Path,
		mode:           portalCfg.Mode,
		productType:    portalCfg.ProductType,
		timeout:        portalCfg.RequestTimeout,
		failureMarkers: normalizeMarkers(portalCfg.FailureMarkers),
		logger:         logger,
	}, nil
}

// Login implements [PortalAuthenticator]. It POSTs the five-field form
// payload to the portal login path and classifies the response into a
// [models.LoginOutcome]. Exactly one request is sent per call; retrying is
// the caller's decision.
//
// The outcome message and the log entry never include the password.
func (p *portalAuthenticator) Login(ctx context.Context, credential models.Credential) models.LoginOutcome {
	log := logger.FromContext(ctx)

	payload := models.LoginRequest{
		Mode:        p.mode,
		Username:    credential.Username,
		Password:    credential.Password,
		Timestamp:   p.nextTimestamp(),
		ProductType: p.productType,
	}

	start := time.Now()
	resp, err := p.client.R().
		SetContext(ctx).
		SetFormData(payload.FormData()).
		Post(p.path)
	elapsed := time.Since(start)

	var outcome models.LoginOutcome
	if err != nil {
		outcome = p.classifyTransportError(err, elapsed)
	} else {
		outcome = p.classifyResponse(resp.StatusCode(), resp.Body(), elapsed)
	}

	log.Info().
		Str("func", "portalAuthenticator.Login").
		Str("username", credential.Username).
		Str("result", string(outcome.Result)).
		Str("reason", string(outcome.Reason)).
		Int("status_code", outcome.StatusCode).
		Dur("elapsed", elapsed).
		Msg("portal login attempt finished")

	return outcome
}

// nextTimestamp returns the millisecond Unix timestamp for the "a" form
// field. Values never decrease across calls within one authenticator: the
// portal's own login page sends a fresh timestamp per request to defeat
// caching, and a stepped-back clock must not produce a stale-looking value.
func (p *portalAuthenticator) nextTimestamp() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now().UnixMilli()
	if now <= p.lastTimestamp {
		now = p.lastTimestamp + 1
	}
	p.lastTimestamp = now

	return now
}

// portalAddress joins the configured host and port into one address string.
// A non-positive port means the host already carries everything needed
// (useful when the host value embeds a port, as test servers do).
func portalAddress(host string, port int) string {
	host = strings.TrimRight(strings.TrimSpace(host), "/")
	if port <= 0 {
		return host
	}

	return fmt.Sprintf("%s:%d", host, port)
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func normalizeMarkers(markers []string) []string {
	normalized := make([]string, 0, len(markers))
	for _, marker := range markers {
		marker = strings.ToLower(strings.TrimSpace(marker))
		if marker != "" {
			normalized = append(normalized, marker)
		}
	}

	return normalized
}
