// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiclient

import "errors"

// Construction errors returned by [New].
var (
	// ErrEmptyBaseURL is returned when the configured base URL is empty or
	// blank. It is a fatal configuration error.
	ErrEmptyBaseURL = errors.New("api base url is empty")
	// ErrInvalidBaseURL is returned when the base URL cannot be parsed as an
	// absolute http(s) URL.
	ErrInvalidBaseURL = errors.New("api base url is invalid")
)

// Status errors wrapped into a [ServerResponded] failure so that callers can
// branch with errors.Is without inspecting status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	// ErrUnexpectedStatus wraps any other non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected status")
)
