package services

import "errors"

// Sentinel errors shared by the service layer. Handlers map these onto
// HTTP status codes; anything else is treated as a store failure.
var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrNotTaskOwner       = errors.New("not authorized to access this task")
	ErrTitleRequired      = errors.New("please provide a task title")
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrMissingSecret      = errors.New("JWT signing secret is not configured")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token has expired")
)
