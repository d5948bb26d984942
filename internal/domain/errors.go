package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned for empty or whitespace-only words
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingCredential means no user key is active and no fallback is configured
	ErrMissingCredential = errors.New("no API key available")

	// ErrMalformedResponse means the gateway reply did not carry the expected shape
	ErrMalformedResponse = errors.New("malformed gateway response")

	// ErrUnparsableResponse means the reply text lacked the Translation/Explanation lines
	ErrUnparsableResponse = errors.New("unparsable gateway response")

	// ErrDuplicateWord means a (user, word) record already exists
	ErrDuplicateWord = errors.New("word already exists")

	// ErrNotFound is returned when a record does not exist or is owned by someone else
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is returned on failed login or an expired session/token
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken is returned when registering an already-registered email
	ErrEmailTaken = errors.New("email already registered")
)

// GatewayError carries the transport status and message of a failed
// translation backend call
type GatewayError struct {
	Status  int
	Message string
}

func (e *GatewayError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("gateway error: status %d", e.Status)
	}
	return fmt.Sprintf("gateway error: status %d: %s", e.Status, e.Message)
}
