package v1

import (
	"errors"

	"github.com/fintrack/backend/internal/httperror"
)

type httpError struct {
	Error string `json:"error" example:"there is no category matching your query"`
}

// status returns the appropriate HTTP status for a storage error
func status(err error) int {
	return httperror.Status(err)
}

// Auth errors
var (
	errInvalidCredentials = errors.New("the email or password is incorrect")
	errNoToken            = errors.New("you must provide a bearer token in the Authorization header")
	errInvalidToken       = errors.New("the bearer token is invalid or expired")
	errPasswordTooShort   = errors.New("the password must be at least 8 characters long")
	errEmailNotSet        = errors.New("the email must be set")
)

// Cleanup errors
var (
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)
