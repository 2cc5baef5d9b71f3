package commands

import (
	"context"
	"time"

	domlisting "eatyaar/internal/domain/listing"
	"eatyaar/internal/infra"
	"eatyaar/internal/pkg/clock"
	"eatyaar/internal/pkg/errs"
	"eatyaar/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateListingRequest struct {
	Title        string
	Description  string
	Servings     int
	FoodType     string
	CookedAt     time.Time
	PickupBy     time.Time
	AreaName     string
	ExactAddress string
	City         string
	State        string
	Pincode      string
}

type CreateListingResult struct {
	ListingID uuid.UUID
}

type ListingCommands interface {
	CreateListing(ctx context.Context, req CreateListingRequest, ownerID uuid.UUID) (*CreateListingResult, error)
	ExpireListing(ctx context.Context, listingID, actorID uuid.UUID) error
	DeleteListing(ctx context.Context, listingID, actorID uuid.UUID) error
}

type listingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewListingCommands(uow shared.UnitOfWork, clk clock.Clock) ListingCommands {
	return &listingCommandsImpl{uow: uow, clock: clk}
}

func (uc *listingCommandsImpl) CreateListing(ctx context.Context, req CreateListingRequest, ownerID uuid.UUID) (*CreateListingResult, error) {
	foodType, err := domlisting.NewFoodType(req.FoodType)
	if err != nil {
		return nil, err
	}

	l, err := domlisting.NewListing(
		ownerID,
		req.Title, req.Description,
		req.Servings, foodType,
		req.CookedAt, req.PickupBy,
		req.AreaName, req.ExactAddress, req.City, req.State, req.Pincode,
		uc.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Listings().Create(ctx, tx.DB(), l)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateListingResult{ListingID: createdID}, nil
}

// ExpireListing takes an AVAILABLE listing out of circulation. Owner only; the
// monotone lifecycle forbids expiring once a claim was approved.
func (uc *listingCommandsImpl) ExpireListing(ctx context.Context, listingID, actorID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := loadListing(ctx, tx, listingID)
		if err != nil {
			return err
		}
		if snap.OwnerID != actorID {
			return errs.ErrNotListingOwner
		}

		moved, err := tx.Listings().TransitionStatus(ctx, tx.DB(), listingID,
			domlisting.StatusAvailable, domlisting.StatusExpired)
		if err != nil {
			return err
		}
		if !moved {
			return errs.ErrInvalidListingState
		}
		return nil
	})
}

func (uc *listingCommandsImpl) DeleteListing(ctx context.Context, listingID, actorID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := loadListing(ctx, tx, listingID)
		if err != nil {
			return err
		}
		if snap.OwnerID != actorID {
			return errs.ErrNotListingOwner
		}
		if snap.Status != domlisting.StatusAvailable {
			return errs.ErrInvalidListingState
		}

		derr := tx.Listings().Delete(ctx, tx.DB(), listingID)
		if infra.IsKind(derr, infra.KindNotFound) {
			return errs.Mark(derr, errs.ErrListingNotFound)
		}
		return derr
	})
}

func loadListing(ctx context.Context, tx shared.Tx, id uuid.UUID) (*shared.ListingSnapshot, error) {
	snap, err := tx.Reads().ListingByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrListingNotFound)
		}
		return nil, err
	}
	return snap, nil
}
