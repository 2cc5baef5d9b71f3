package rating

import "errors"

var (
	ErrInvalidScore   = errors.New("score must be between 1 and 5")
	ErrCommentTooLong = errors.New("comment exceeds maximum length")
)
