package user

import "errors"

var (
	ErrInvalidPhone   = errors.New("phone must be 10 to 15 digits")
	ErrEmptyName      = errors.New("name cannot be empty")
	ErrNameTooLong    = errors.New("name exceeds maximum length")
	ErrInvalidEmail   = errors.New("invalid email address")
	ErrProfileMissing = errors.New("profile is not completed")
)
