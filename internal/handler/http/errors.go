// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authorization gate when inspecting the
// "Authorization" HTTP header. They never leave the server: the gate logs
// them and answers with a single generic 403 body regardless of the cause.
var (
	// ErrEmptyAuthorizationHeader is returned when the incoming request
	// does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNotAnAccessToken is returned when a syntactically valid token
	// carries a "type" claim other than "access" (e.g. a refresh token
	// presented to a resource endpoint).
	ErrNotAnAccessToken = errors.New("token is not an access token")
)
