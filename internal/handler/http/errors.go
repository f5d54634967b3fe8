// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading a request, before any service is
// called. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrBodyTooLarge is returned when a JSON body exceeds its size cap.
	ErrBodyTooLarge = errors.New("request body too large")

	// ErrInvalidID is returned when a path parameter is not a positive integer.
	ErrInvalidID = errors.New("invalid id")

	// ErrDigestMismatch is returned when an upload does not match the
	// X-Content-SHA256 header it was sent with.
	ErrDigestMismatch = errors.New("content digest mismatch")
)
