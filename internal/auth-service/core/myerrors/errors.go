package myerrors

import "errors"

var (
	ErrFieldIsEmpty    = errors.New("field is empty")
	ErrUnknownEmail    = errors.New("unknown email")
	ErrPasswordUnknown = errors.New("unknown password")
	ErrEmailRegistered = errors.New("email already registered")
	ErrUnknownUser     = errors.New("unknown user")
	ErrUnknownRole     = errors.New("unknown role")
)
