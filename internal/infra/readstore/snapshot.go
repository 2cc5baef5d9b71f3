// Package readstore holds the read-side SQL: command-validation snapshots and
// the denormalized views served by the query layer.
package readstore

import (
	"context"
	"errors"

	domclaim "eatyaar/internal/domain/claim"
	domlisting "eatyaar/internal/domain/listing"
	"eatyaar/internal/infra"
	"eatyaar/internal/infra/db"
	"eatyaar/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SnapshotReadStore serves the minimal write-side snapshots commands validate
// against before transitioning entities.
type SnapshotReadStore struct{}

func NewSnapshotReadStore() *SnapshotReadStore {
	return &SnapshotReadStore{}
}

func (s *SnapshotReadStore) ListingByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.ListingSnapshot, error) {
	const query = `
		SELECT id, owner_id, title, servings, area_name, exact_address, status, pickup_by
		FROM listings
		WHERE id = $1`

	var snap shared.ListingSnapshot
	var status string
	err := dbtx.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.OwnerID, &snap.Title, &snap.Servings,
		&snap.AreaName, &snap.ExactAddress, &status, &snap.PickupBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find listing by id", err)
	}

	st, err := domlisting.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("unexpected listing status", err)
	}
	snap.Status = st
	return &snap, nil
}

func (s *SnapshotReadStore) ClaimByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.ClaimSnapshot, error) {
	const query = `
		SELECT id, listing_id, claimant_id, status, created_at
		FROM claims
		WHERE id = $1`

	var snap shared.ClaimSnapshot
	var status string
	err := dbtx.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.ListingID, &snap.ClaimantID, &status, &snap.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("claim not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find claim by id", err)
	}

	st, err := domclaim.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("unexpected claim status", err)
	}
	snap.Status = st
	return &snap, nil
}

func (s *SnapshotReadStore) UserByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shared.UserSnapshot, error) {
	const query = `
		SELECT id, phone, name, email, city, area,
		       trust_score, total_given, total_taken, is_verified, created_at
		FROM users
		WHERE id = $1`

	return scanUserSnapshot(dbtx.QueryRow(ctx, query, id))
}

func (s *SnapshotReadStore) UserByPhone(ctx context.Context, dbtx db.DBTX, phone string) (*shared.UserSnapshot, error) {
	const query = `
		SELECT id, phone, name, email, city, area,
		       trust_score, total_given, total_taken, is_verified, created_at
		FROM users
		WHERE phone = $1`

	return scanUserSnapshot(dbtx.QueryRow(ctx, query, phone))
}

func (s *SnapshotReadStore) ClaimExists(ctx context.Context, dbtx db.DBTX, listingID, claimantID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM claims WHERE listing_id = $1 AND claimant_id = $2)`

	var exists bool
	if err := dbtx.QueryRow(ctx, query, listingID, claimantID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check claim existence", err)
	}
	return exists, nil
}

func (s *SnapshotReadStore) RatingExists(ctx context.Context, dbtx db.DBTX, listingID, raterID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM ratings WHERE listing_id = $1 AND rater_id = $2)`

	var exists bool
	if err := dbtx.QueryRow(ctx, query, listingID, raterID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check rating existence", err)
	}
	return exists, nil
}

func scanUserSnapshot(row pgx.Row) (*shared.UserSnapshot, error) {
	var snap shared.UserSnapshot
	err := row.Scan(
		&snap.ID, &snap.Phone, &snap.Name, &snap.Email, &snap.City, &snap.Area,
		&snap.TrustScore, &snap.TotalGiven, &snap.TotalTaken, &snap.IsVerified, &snap.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &snap, nil
}
