package services

import "errors"

// Outcome sentinels crossing the core↔boundary seam. Handlers map these
// to user-visible replies; anything else is a storage fault and gets a
// generic failure message plus a logged detail record.
var (
	ErrNotFound     = errors.New("record not found")
	ErrForbidden    = errors.New("actor does not own this record")
	ErrInvalidState = errors.New("record is not in the required state")
	ErrValidation   = errors.New("invalid input")
)

// ErrInvalidCredentials is returned by the ops login when the username
// or password does not match.
var ErrInvalidCredentials = errors.New("invalid credentials")
