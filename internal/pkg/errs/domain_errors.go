package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Auth errors
	ErrInvalidChallenge          = errors.New("invalid or expired verification code")
	ErrChallengeAttemptsExceeded = errors.New("verification attempts exceeded")
	ErrRateLimited               = errors.New("too many code requests")

	// User errors
	ErrUserNotFound = errors.New("user not found")

	// Listing errors
	ErrListingNotFound     = errors.New("listing not found")
	ErrListingNotAvailable = errors.New("listing is no longer available")
	ErrNotListingOwner     = errors.New("actor is not the listing owner")
	ErrInvalidListingState = errors.New("listing state does not permit this transition")

	// Claim errors
	ErrClaimNotFound     = errors.New("claim not found")
	ErrSelfClaim         = errors.New("cannot claim own listing")
	ErrDuplicateClaim    = errors.New("claim already exists for this listing")
	ErrNotClaimant       = errors.New("actor is not the claimant")
	ErrInvalidClaimState = errors.New("claim state does not permit this transition")

	// Rating errors
	ErrAlreadyRated    = errors.New("rating already exists for this listing")
	ErrClaimNotRatable = errors.New("claim has not been picked up")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
