package services

import "errors"

// ErrForbidden is returned when the caller fails the authorization rules
// for the requested operation.
var ErrForbidden = errors.New("operation not permitted")

// ErrInvalidInput wraps validation failures of client-supplied fields.
var ErrInvalidInput = errors.New("invalid input")
