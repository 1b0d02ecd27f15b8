package utils

import "errors"

var (
	ErrTripNotFound       = errors.New("trip not found")
	ErrDestinationMissing = errors.New("destination not found")
	ErrAccountNotFound    = errors.New("no account found with this email address")
	ErrInvalidCredentials = errors.New("incorrect password")
	ErrEmailAlreadyExists = errors.New("an account with this email already exists")
	ErrValidation         = errors.New("validation failed")
	ErrStorageError       = errors.New("storage error")
)
