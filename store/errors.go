package store

import "errors"

// Sentinel errors returned by the stores. Handlers map these onto HTTP
// status codes; anything else is treated as a server error.
var (
	ErrNotFound      = errors.New("not found")
	ErrValidation    = errors.New("invalid input")
	ErrUserExists    = errors.New("user with that email or username already exists")
	ErrPollInactive  = errors.New("poll is not active")
	ErrInvalidOption = errors.New("option index out of range")
	ErrAlreadyVoted  = errors.New("user has already voted on this poll")
	ErrConflict      = errors.New("concurrent update conflict")
)
