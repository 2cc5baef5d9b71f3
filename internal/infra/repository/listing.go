package repository

import (
	"context"

	domlisting "eatyaar/internal/domain/listing"
	"eatyaar/internal/infra"
	"eatyaar/internal/infra/db"

	"github.com/google/uuid"
)

type ListingRepository struct{}

func NewListingRepository() *ListingRepository {
	return &ListingRepository{}
}

func (r *ListingRepository) Create(ctx context.Context, dbtx db.DBTX, l *domlisting.Listing) (uuid.UUID, error) {
	const query = `
		INSERT INTO listings (
			id, owner_id, title, description, servings, food_type,
			cooked_at, pickup_by, area_name, exact_address, city, state, pincode,
			status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := dbtx.Exec(ctx, query,
		l.ID(), l.OwnerID(), l.Title(), l.Description(), l.Servings(), l.FoodType().String(),
		l.CookedAt(), l.PickupBy(), l.AreaName(), l.ExactAddress(), l.City(), l.State(), l.Pincode(),
		l.Status().String(), l.CreatedAt(),
	)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create listing", err)
	}
	return l.ID(), nil
}

func (r *ListingRepository) TransitionStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, from, to domlisting.Status) (bool, error) {
	const query = `UPDATE listings SET status = $3 WHERE id = $1 AND status = $2`

	tag, err := dbtx.Exec(ctx, query, id, from.String(), to.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to transition listing status", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *ListingRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	const query = `DELETE FROM listings WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, id)
	if err != nil {
		return wrapWriteErr("failed to delete listing", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)
	}
	return nil
}
