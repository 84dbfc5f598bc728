package service

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrValidation    = errors.New("validation")
	ErrForbidden     = errors.New("forbidden")
	ErrBadTransition = errors.New("invalid status transition")
)
