package httperr

import (
	"errors"
	"net/http"

	domclaim "eatyaar/internal/domain/claim"
	domlisting "eatyaar/internal/domain/listing"
	domrating "eatyaar/internal/domain/rating"
	domuser "eatyaar/internal/domain/user"
	"eatyaar/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithDomainError maps usecase sentinels to HTTP statuses so every
// handler reports the same status for the same domain condition.
func AbortWithDomainError(c *gin.Context, err error) {
	status, msg := statusFor(err)
	AbortWithError(c, status, err, msg, nil)
}

type errorMapping struct {
	sentinel error
	status   int
	message  string
}

var errorMappings = []errorMapping{
	{errs.ErrInvalidChallenge, http.StatusUnauthorized, "Invalid or expired verification code"},
	{errs.ErrChallengeAttemptsExceeded, http.StatusTooManyRequests, "Too many verification attempts, request a new code"},
	{errs.ErrRateLimited, http.StatusTooManyRequests, "Too many code requests, try again later"},

	{errs.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{errs.ErrListingNotFound, http.StatusNotFound, "Listing not found"},
	{errs.ErrClaimNotFound, http.StatusNotFound, "Claim not found"},

	{errs.ErrNotListingOwner, http.StatusForbidden, "Only the listing owner may do this"},
	{errs.ErrNotClaimant, http.StatusForbidden, "Only the claimant may do this"},
	{errs.ErrSelfClaim, http.StatusForbidden, "Cannot claim your own listing"},

	{errs.ErrListingNotAvailable, http.StatusGone, "Listing is no longer available"},

	{errs.ErrDuplicateClaim, http.StatusConflict, "You already claimed this listing"},
	{errs.ErrAlreadyRated, http.StatusConflict, "You already rated this listing"},
	{errs.ErrInvalidListingState, http.StatusConflict, "Listing state does not permit this"},
	{errs.ErrInvalidClaimState, http.StatusConflict, "Claim state does not permit this"},
	{errs.ErrClaimNotRatable, http.StatusConflict, "Claim must be picked up before rating"},

	{domclaim.ErrInvalidTransition, http.StatusConflict, "Claim state does not permit this"},
	{domlisting.ErrInvalidTransition, http.StatusConflict, "Listing state does not permit this"},
}

// Domain value-object violations all read as malformed input.
var validationErrors = []error{
	domuser.ErrInvalidPhone,
	domuser.ErrEmptyName,
	domuser.ErrNameTooLong,
	domuser.ErrInvalidEmail,
	domlisting.ErrEmptyTitle,
	domlisting.ErrTitleTooLong,
	domlisting.ErrInvalidServings,
	domlisting.ErrInvalidFoodType,
	domlisting.ErrEmptyAddress,
	domlisting.ErrInvalidTimeWindow,
	domlisting.ErrInvalidStatus,
	domclaim.ErrInvalidStatus,
	domrating.ErrInvalidScore,
	domrating.ErrCommentTooLong,
}

func statusFor(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.sentinel) {
			return m.status, m.message
		}
	}
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return http.StatusBadRequest, v.Error()
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}
