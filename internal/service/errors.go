package service

import "errors"

var (
	// ErrInvalidID is returned for non-positive resource identifiers; no
	// request is sent.
	ErrInvalidID = errors.New("invalid id")
	// ErrInvalidPage is returned for a non-positive page or limit; no
	// request is sent.
	ErrInvalidPage = errors.New("invalid page")
)
