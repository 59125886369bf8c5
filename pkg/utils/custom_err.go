package utils

import "errors"

var (
	ErrMoodRequired       = errors.New("mood is required")
	ErrInvalidMood        = errors.New("unknown mood")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidLocation    = errors.New("invalid location")
	ErrPlaceNotFound      = errors.New("place not found")
	ErrInvalidPage        = errors.New("invalid page parameter")
	ErrInvalidPageSize    = errors.New("invalid page size parameter")
	ErrDatabaseError      = errors.New("database error")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidOtp         = errors.New("invalid or expired OTP code")
)
