package commands

import (
	"context"

	domclaim "eatyaar/internal/domain/claim"
	domrating "eatyaar/internal/domain/rating"
	"eatyaar/internal/infra"
	"eatyaar/internal/pkg/clock"
	"eatyaar/internal/pkg/errs"
	"eatyaar/internal/usecase/shared"

	"github.com/google/uuid"
)

type SubmitRatingRequest struct {
	ClaimID uuid.UUID
	Score   int
	Comment string
}

type SubmitRatingResult struct {
	RatingID   uuid.UUID
	TrustScore float64
}

type RatingCommands interface {
	SubmitRating(ctx context.Context, req SubmitRatingRequest, raterID uuid.UUID) (*SubmitRatingResult, error)
}

type ratingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRatingCommands(uow shared.UnitOfWork, clk clock.Clock) RatingCommands {
	return &ratingCommandsImpl{uow: uow, clock: clk}
}

// SubmitRating persists the rating and recomputes the ratee's trust score in
// the same transaction. The ratee's row lock is taken first so two concurrent
// ratings for the same poster serialize and neither recomputation is lost.
func (uc *ratingCommandsImpl) SubmitRating(ctx context.Context, req SubmitRatingRequest, raterID uuid.UUID) (*SubmitRatingResult, error) {
	score, err := domrating.NewScore(req.Score)
	if err != nil {
		return nil, err
	}
	comment, err := domrating.NewComment(req.Comment)
	if err != nil {
		return nil, err
	}

	var result SubmitRatingResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, derr := loadClaim(ctx, tx, req.ClaimID)
		if derr != nil {
			return derr
		}
		if c.ClaimantID != raterID {
			return errs.ErrNotClaimant
		}
		if c.Status != domclaim.StatusPickedUp {
			return errs.ErrClaimNotRatable
		}

		listing, derr := loadListing(ctx, tx, c.ListingID)
		if derr != nil {
			return derr
		}
		rateeID := listing.OwnerID

		if derr = tx.Users().LockByID(ctx, tx.DB(), rateeID); derr != nil {
			return derr
		}

		exists, derr := tx.Reads().RatingExists(ctx, c.ListingID, raterID)
		if derr != nil {
			return derr
		}
		if exists {
			return errs.ErrAlreadyRated
		}

		r := domrating.NewRating(raterID, rateeID, c.ListingID, score, comment, uc.clock.Now())
		id, derr := tx.Ratings().Create(ctx, tx.DB(), r)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, errs.ErrAlreadyRated)
			}
			return derr
		}

		mean, _, derr := tx.Ratings().AverageScoreFor(ctx, tx.DB(), rateeID)
		if derr != nil {
			return derr
		}
		trustScore := domrating.RoundTrustScore(mean)
		if derr = tx.Users().UpdateTrustScore(ctx, tx.DB(), rateeID, trustScore); derr != nil {
			return derr
		}

		result.RatingID = id
		result.TrustScore = trustScore
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
