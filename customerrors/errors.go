package customerrors

import "errors"

var (
	ErrUnknownBroker = errors.New("unknown broker")
	ErrAlertNotFound = errors.New("alert not found")
	ErrInvalidLogin  = errors.New("invalid email or password")
)
