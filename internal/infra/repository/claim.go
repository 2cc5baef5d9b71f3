package repository

import (
	"context"

	domclaim "eatyaar/internal/domain/claim"
	"eatyaar/internal/infra"
	"eatyaar/internal/infra/db"

	"github.com/google/uuid"
)

type ClaimRepository struct{}

func NewClaimRepository() *ClaimRepository {
	return &ClaimRepository{}
}

func (r *ClaimRepository) Create(ctx context.Context, dbtx db.DBTX, c *domclaim.Claim) (uuid.UUID, error) {
	// The unique index on (listing_id, claimant_id) backs the duplicate-claim
	// invariant even when two requests race past the existence check.
	const query = `
		INSERT INTO claims (id, listing_id, claimant_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := dbtx.Exec(ctx, query,
		c.ID(), c.ListingID(), c.ClaimantID(), c.Status().String(), c.CreatedAt(),
	)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create claim", err)
	}
	return c.ID(), nil
}

func (r *ClaimRepository) TransitionStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, from, to domclaim.Status) (bool, error) {
	const query = `UPDATE claims SET status = $3 WHERE id = $1 AND status = $2`

	tag, err := dbtx.Exec(ctx, query, id, from.String(), to.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to transition claim status", err)
	}
	return tag.RowsAffected() == 1, nil
}
