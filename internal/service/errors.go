package service

import "errors"

// Sentinel errors returned by services. Handlers map them onto HTTP
// statuses and error codes with errors.Is.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrConflict           = errors.New("resource conflict")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
