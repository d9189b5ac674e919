package services

import "errors"

// Common service-level errors
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
	ErrInvalidDate   = errors.New("invalid date")
)
