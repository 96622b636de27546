package apiclient

import (
	"errors"

	"github.com/go-resty/resty/v2"
)

// Error is returned for every failed call. It composes the original failure
// with the classification and the user-facing message; the original error is
// reachable through Unwrap, so errors.Is and errors.As keep working on it.
type Error struct {
	// Failure is the classified category of the failure.
	Failure Failure
	// FriendlyMessage is a short message suitable for showing to users.
	// It is never empty.
	FriendlyMessage string
	// Method is the HTTP method of the failed call.
	Method string
	// RequestID correlates the error with the recorded events.
	RequestID string
	// Response is the raw transport response for [ServerResponded] failures
	// and nil otherwise.
	Response *resty.Response

	err error
}

func newError(f Failure, method, requestID string, resp *resty.Response, cause error) *Error {
	e := &Error{
		Failure:         f,
		FriendlyMessage: FriendlyMessage(f),
		Method:          method,
		RequestID:       requestID,
		err:             cause,
	}
	if f.Kind() == KindServerResponded {
		e.Response = resp
	}
	return e
}

// Error returns the original failure text, not the friendly message.
func (e *Error) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return e.FriendlyMessage
}

// Unwrap returns the original transport error, or for status failures an
// error wrapping one of the status sentinels (e.g. [ErrNotFound]).
func (e *Error) Unwrap() error {
	return e.err
}

// Kind is shorthand for e.Failure.Kind().
func (e *Error) Kind() FailureKind {
	if e.Failure == nil {
		return 0
	}
	return e.Failure.Kind()
}

// FriendlyMessageOf extracts the friendly message from err or anything it
// wraps. The boolean is false when err carries no [*Error].
func FriendlyMessageOf(err error) (string, bool) {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return "", false
	}
	return apiErr.FriendlyMessage, true
}
