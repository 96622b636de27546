// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP client initialization, and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// RequestIDCtxKey is the key used to store the per-call request identifier
// in the context. Used together with GetRequestIDFromContext for type-safe
// retrieval.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.RequestIDCtxKey, uuid.NewString())
var RequestIDCtxKey = contextKey("requestID")

// GetRequestIDFromContext retrieves the request identifier from the context.
//
// Returns the request ID and an ok flag:
//   - ok == true: value is found and is a non-empty string
//   - ok == false: value is missing or has an unexpected type
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	requestID, ok := ctx.Value(RequestIDCtxKey).(string)
	return requestID, ok && requestID != ""
}
