package services

import "errors"

// Sentinel errors separating caller mistakes from store trouble. Handlers map
// these onto HTTP statuses with errors.Is; everything else is treated as a
// store-level failure.
var (
	ErrValidation        = errors.New("validation failed")
	ErrProjectNotFound   = errors.New("project not found")
	ErrRequestNotFound   = errors.New("request not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)
