package readstore

import (
	"context"

	domclaim "eatyaar/internal/domain/claim"
	"eatyaar/internal/infra"
	"eatyaar/internal/infra/db"
	"eatyaar/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const claimViewColumns = `
	c.id, c.status, c.created_at,
	l.id, l.title, l.area_name, l.exact_address, l.owner_id,
	c.claimant_id, u.name`

type ClaimReadStore struct {
	dbtx db.DBTX
}

func NewClaimReadStore(dbtx db.DBTX) *ClaimReadStore {
	return &ClaimReadStore{dbtx: dbtx}
}

func (s *ClaimReadStore) ListByClaimant(ctx context.Context, claimantID uuid.UUID) ([]*queries.ClaimView, error) {
	query := `
		SELECT ` + claimViewColumns + `
		FROM claims c
		JOIN listings l ON l.id = c.listing_id
		JOIN users u ON u.id = c.claimant_id
		WHERE c.claimant_id = $1
		ORDER BY c.created_at DESC`

	rows, err := s.dbtx.Query(ctx, query, claimantID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list claims by claimant", err)
	}
	defer rows.Close()

	return collectClaimViews(rows)
}

func (s *ClaimReadStore) ListReceivedByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.ClaimView, error) {
	query := `
		SELECT ` + claimViewColumns + `
		FROM claims c
		JOIN listings l ON l.id = c.listing_id
		JOIN users u ON u.id = c.claimant_id
		WHERE l.owner_id = $1
		ORDER BY c.created_at DESC`

	rows, err := s.dbtx.Query(ctx, query, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list received claims", err)
	}
	defer rows.Close()

	return collectClaimViews(rows)
}

func collectClaimViews(rows pgx.Rows) ([]*queries.ClaimView, error) {
	views := []*queries.ClaimView{}
	for rows.Next() {
		var v queries.ClaimView
		var status string
		err := rows.Scan(
			&v.ID, &status, &v.CreatedAt,
			&v.ListingID, &v.ListingTitle, &v.ListingAreaName, &v.ListingAddress, &v.ListingOwnerID,
			&v.ClaimantID, &v.ClaimantName,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan claim row", err)
		}
		st, err := domclaim.NewStatus(status)
		if err != nil {
			return nil, infra.WrapRepoErr("unexpected claim status", err)
		}
		v.Status = st
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate claim rows", err)
	}
	return views, nil
}
