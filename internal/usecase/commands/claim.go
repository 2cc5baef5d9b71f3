package commands

import (
	"context"

	domclaim "eatyaar/internal/domain/claim"
	domlisting "eatyaar/internal/domain/listing"
	"eatyaar/internal/infra"
	"eatyaar/internal/pkg/clock"
	"eatyaar/internal/pkg/errs"
	"eatyaar/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateClaimResult struct {
	ClaimID uuid.UUID
}

type ClaimCommands interface {
	CreateClaim(ctx context.Context, listingID, claimantID uuid.UUID) (*CreateClaimResult, error)
	Approve(ctx context.Context, claimID, actorID uuid.UUID) error
	Reject(ctx context.Context, claimID, actorID uuid.UUID) error
	MarkPickedUp(ctx context.Context, claimID, actorID uuid.UUID) error
}

type claimCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewClaimCommands(uow shared.UnitOfWork, clk clock.Clock) ClaimCommands {
	return &claimCommandsImpl{uow: uow, clock: clk}
}

// CreateClaim inserts a PENDING claim for a non-owner on an AVAILABLE listing.
// The listing itself is untouched; many claimants may hold PENDING claims on
// the same listing until the owner approves one.
func (uc *claimCommandsImpl) CreateClaim(ctx context.Context, listingID, claimantID uuid.UUID) (*CreateClaimResult, error) {
	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := loadListing(ctx, tx, listingID)
		if err != nil {
			return err
		}
		if snap.OwnerID == claimantID {
			return errs.ErrSelfClaim
		}
		if snap.Status != domlisting.StatusAvailable {
			return errs.ErrListingNotAvailable
		}

		exists, err := tx.Reads().ClaimExists(ctx, listingID, claimantID)
		if err != nil {
			return err
		}
		if exists {
			return errs.ErrDuplicateClaim
		}

		c := domclaim.NewClaim(listingID, claimantID, uc.clock.Now())
		id, err := tx.Claims().Create(ctx, tx.DB(), c)
		if err != nil {
			// Losing the race past the existence check surfaces as a unique
			// violation and is still a duplicate claim to the caller.
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errs.ErrDuplicateClaim)
			}
			return err
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateClaimResult{ClaimID: createdID}, nil
}

// Approve moves the claim to APPROVED and the listing to CLAIMED in one
// transaction; no reader may observe one without the other.
func (uc *claimCommandsImpl) Approve(ctx context.Context, claimID, actorID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := uc.loadClaimForOwner(ctx, tx, claimID, actorID)
		if err != nil {
			return err
		}

		moved, err := tx.Claims().TransitionStatus(ctx, tx.DB(), claimID,
			domclaim.StatusPending, domclaim.StatusApproved)
		if err != nil {
			return err
		}
		if !moved {
			return errs.ErrInvalidClaimState
		}

		moved, err = tx.Listings().TransitionStatus(ctx, tx.DB(), c.ListingID,
			domlisting.StatusAvailable, domlisting.StatusClaimed)
		if err != nil {
			return err
		}
		if !moved {
			// Rolls back the claim transition above.
			return errs.ErrInvalidListingState
		}
		return nil
	})
}

// Reject is terminal for the claim but leaves the listing AVAILABLE so other
// pending or future claims stay possible.
func (uc *claimCommandsImpl) Reject(ctx context.Context, claimID, actorID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := uc.loadClaimForOwner(ctx, tx, claimID, actorID); err != nil {
			return err
		}

		moved, err := tx.Claims().TransitionStatus(ctx, tx.DB(), claimID,
			domclaim.StatusPending, domclaim.StatusRejected)
		if err != nil {
			return err
		}
		if !moved {
			return errs.ErrInvalidClaimState
		}
		return nil
	})
}

// MarkPickedUp completes the exchange: claim PICKED_UP, listing COMPLETED,
// and both parties' counters bumped as one unit.
func (uc *claimCommandsImpl) MarkPickedUp(ctx context.Context, claimID, actorID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := loadClaim(ctx, tx, claimID)
		if err != nil {
			return err
		}
		if c.ClaimantID != actorID {
			return errs.ErrNotClaimant
		}

		moved, err := tx.Claims().TransitionStatus(ctx, tx.DB(), claimID,
			domclaim.StatusApproved, domclaim.StatusPickedUp)
		if err != nil {
			return err
		}
		if !moved {
			return errs.ErrInvalidClaimState
		}

		moved, err = tx.Listings().TransitionStatus(ctx, tx.DB(), c.ListingID,
			domlisting.StatusClaimed, domlisting.StatusCompleted)
		if err != nil {
			return err
		}
		if !moved {
			return errs.ErrInvalidListingState
		}

		snap, err := loadListing(ctx, tx, c.ListingID)
		if err != nil {
			return err
		}
		if err := tx.Users().IncrementCounters(ctx, tx.DB(), snap.OwnerID, 1, 0); err != nil {
			return err
		}
		return tx.Users().IncrementCounters(ctx, tx.DB(), actorID, 0, 1)
	})
}

func (uc *claimCommandsImpl) loadClaimForOwner(ctx context.Context, tx shared.Tx, claimID, actorID uuid.UUID) (*shared.ClaimSnapshot, error) {
	c, err := loadClaim(ctx, tx, claimID)
	if err != nil {
		return nil, err
	}
	snap, err := loadListing(ctx, tx, c.ListingID)
	if err != nil {
		return nil, err
	}
	if snap.OwnerID != actorID {
		return nil, errs.ErrNotListingOwner
	}
	return c, nil
}

func loadClaim(ctx context.Context, tx shared.Tx, id uuid.UUID) (*shared.ClaimSnapshot, error) {
	c, err := tx.Reads().ClaimByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrClaimNotFound)
		}
		return nil, err
	}
	return c, nil
}
