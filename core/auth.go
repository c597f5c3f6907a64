package core

import (
	"errors"
)

// Principal is the authenticated identity attached to a request after
// token verification. It lives only for the request; nothing persists it.
type Principal struct {
	ID      string
	IsAdmin bool
}

var (
	// ErrInvalidCredentials is returned when email/password is wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken is returned for any token that cannot be trusted:
	// bad signature, malformed payload, or past expiry.
	ErrInvalidToken = errors.New("invalid token")

	// ErrEmailTaken is returned when registering with an email that already exists.
	ErrEmailTaken = errors.New("user already exists")

	// ErrMissingFields is returned when a required request field is absent.
	ErrMissingFields = errors.New("please provide all fields")

	// ErrInvalidFields is returned when registration input fails validation.
	ErrInvalidFields = errors.New("please enter correct fields")

	// ErrNotFound is returned by repositories when no record matches.
	ErrNotFound = errors.New("record not found")
)
