// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/xml"
	"strconv"
)

// Form field names of the captive portal login request. The portal accepts
// exactly these five fields; nothing else is ever sent.
const (
	PortalFieldMode        = "mode"
	PortalFieldUsername    = "username"
	PortalFieldPassword    = "password"
	PortalFieldTimestamp   = "a"
	PortalFieldProductType = "producttype"
)

// LoginRequest is the fixed-shape payload of one portal login POST.
type LoginRequest struct {
	// Mode identifies the portal operation; the campus gateway uses "191"
	// for client login.
	Mode string

	// Username and Password are sent in plaintext form fields; transport
	// security is the portal's TLS endpoint, not this payload.
	Username string
	Password string

	// Timestamp is a millisecond Unix timestamp for the "a" field. The
	// portal uses it to defeat replay/caching, so successive requests must
	// carry non-decreasing values.
	Timestamp int64

	// ProductType is a protocol constant; the campus gateway expects "0".
	ProductType string
}

// FormData renders the payload as the form-encoded field map the portal
// expects. The map contains exactly the five protocol fields.
func (r LoginRequest) FormData() map[string]string {
	return map[string]string{
		PortalFieldMode:        r.Mode,
		PortalFieldUsername:    r.Username,
		PortalFieldPassword:    r.Password,
		PortalFieldTimestamp:   strconv.FormatInt(r.Timestamp, 10),
		PortalFieldProductType: r.ProductType,
	}
}

// Portal response status values.
const (
	PortalStatusLive   = "LIVE"
	PortalStatusFailed = "FAILED"
)

// PortalResponse is the XML body the captive portal answers a login POST
// with. The client never parses it structurally; outcome classification
// works on the raw body text, so this type exists for the portal simulator.
type PortalResponse struct {
	XMLName xml.Name `xml:"requestresponse"`

	// Status is PortalStatusLive when the session was granted.
	Status string `xml:"status"`

	// Message is the human-readable portal text, e.g. the signed-in
	// confirmation or the invalid-credentials marker.
	Message string `xml:"message"`
}
