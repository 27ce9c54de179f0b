package domain

import "errors"

var (
	ErrValidation   = errors.New("validation failed")
	ErrPermission   = errors.New("insufficient permissions")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
)
