// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"

	"github.com/go-resty/resty/v2"
)

// User-facing messages attached to classified failures.
const (
	// MsgServerError is formatted with the response status code.
	MsgServerError = "Error del servidor: %d"
	// MsgNoResponse is used when the request was sent but nothing came back.
	MsgNoResponse = "No se pudo conectar al servidor. Verifica tu conexión a internet."
	// MsgConnectionError is the fallback when a setup error carries no text.
	MsgConnectionError = "Error de conexión"
)

// Transport error codes reported in [NoResponse.Code].
const (
	CodeTimeout           = "ECONNABORTED"
	CodeConnectionRefused = "ECONNREFUSED"
	CodeConnectionReset   = "ECONNRESET"
	CodeHostNotFound      = "ENOTFOUND"
	CodeNetwork           = "ERR_NETWORK"
)

// FailureKind names the category of a [Failure].
type FailureKind int

const (
	KindServerResponded FailureKind = iota + 1
	KindNoResponse
	KindRequestSetup
)

func (k FailureKind) String() string {
	switch k {
	case KindServerResponded:
		return "server_responded"
	case KindNoResponse:
		return "no_response"
	case KindRequestSetup:
		return "request_setup"
	default:
		return "unknown"
	}
}

// Failure is the closed set of failure categories a call can end with.
// The only implementations are [ServerResponded], [NoResponse] and
// [RequestSetupError].
type Failure interface {
	Kind() FailureKind
	FriendlyMessage() string
	failure()
}

// ServerResponded means the remote side answered, but not with a 2xx.
type ServerResponded struct {
	Status int
	URL    string
}

func (ServerResponded) Kind() FailureKind { return KindServerResponded }

func (f ServerResponded) FriendlyMessage() string {
	return fmt.Sprintf(MsgServerError, f.Status)
}

func (ServerResponded) failure() {}

// NoResponse means the request was handed to the network but no response
// arrived: refused or reset connections, DNS failures and timeouts.
type NoResponse struct {
	URL     string
	Message string
	// Code is a short transport error code such as [CodeTimeout]; it may be
	// empty.
	Code string
}

func (NoResponse) Kind() FailureKind { return KindNoResponse }

func (NoResponse) FriendlyMessage() string { return MsgNoResponse }

func (NoResponse) failure() {}

// RequestSetupError means the request never left the client.
type RequestSetupError struct {
	Message string
}

func (RequestSetupError) Kind() FailureKind { return KindRequestSetup }

func (f RequestSetupError) FriendlyMessage() string {
	if f.Message == "" {
		return MsgConnectionError
	}
	return f.Message
}

func (RequestSetupError) failure() {}

// Outcome is everything known about a finished call.
type Outcome struct {
	// URL is the absolute URL the call was issued against.
	URL string
	// Response is what the transport returned; it may be nil or hold a nil
	// RawResponse when nothing was received.
	Response *resty.Response
	// Err is the transport error, if any.
	Err error
	// Sent reports whether the request reached the network round trip.
	Sent bool
}

// Classify maps an outcome onto exactly one failure variant, or returns nil
// for a successful 2xx call. A received response takes precedence over the
// Sent flag, and Sent over a setup error. The result depends only on o.
func Classify(o Outcome) Failure {
	if o.Response != nil && o.Response.RawResponse != nil {
		if o.Err == nil && o.Response.IsSuccess() {
			return nil
		}
		return ServerResponded{Status: o.Response.StatusCode(), URL: o.responseURL()}
	}

	if o.Err == nil {
		return nil
	}

	if o.Sent {
		return NoResponse{URL: o.URL, Message: o.Err.Error(), Code: errorCode(o.Err)}
	}

	return RequestSetupError{Message: o.Err.Error()}
}

// FriendlyMessage returns the user-facing message for f. A nil failure yields
// the generic connection message so that callers never display an empty
// string.
func FriendlyMessage(f Failure) string {
	if f == nil {
		return MsgConnectionError
	}
	return f.FriendlyMessage()
}

func (o Outcome) responseURL() string {
	if o.URL != "" {
		return o.URL
	}
	if o.Response.RawResponse.Request != nil && o.Response.RawResponse.Request.URL != nil {
		return o.Response.RawResponse.Request.URL.String()
	}
	if o.Response.Request != nil {
		return o.Response.Request.URL
	}
	return ""
}

func errorCode(err error) string {
	var netErr net.Error
	var dnsErr *net.DNSError

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return CodeTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		return CodeTimeout
	case errors.Is(err, syscall.ECONNREFUSED):
		return CodeConnectionRefused
	case errors.Is(err, syscall.ECONNRESET):
		return CodeConnectionReset
	case errors.As(err, &dnsErr):
		return CodeHostNotFound
	default:
		return CodeNetwork
	}
}
