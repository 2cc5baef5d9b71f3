package readstore

import (
	"context"
	"errors"

	domlisting "eatyaar/internal/domain/listing"
	"eatyaar/internal/infra"
	"eatyaar/internal/infra/db"
	"eatyaar/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const listingViewColumns = `
	l.id, l.owner_id, u.name, u.trust_score,
	l.title, l.description, l.servings, l.food_type,
	l.cooked_at, l.pickup_by, l.area_name, l.exact_address,
	l.city, l.state, l.pincode, l.status, l.created_at`

type ListingReadStore struct {
	dbtx db.DBTX
}

func NewListingReadStore(dbtx db.DBTX) *ListingReadStore {
	return &ListingReadStore{dbtx: dbtx}
}

func (s *ListingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ListingView, error) {
	query := `
		SELECT ` + listingViewColumns + `
		FROM listings l
		JOIN users u ON u.id = l.owner_id
		WHERE l.id = $1`

	view, err := scanListingView(s.dbtx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("listing not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find listing by id", err)
	}
	return view, nil
}

func (s *ListingReadStore) ListAvailable(ctx context.Context, filter queries.ListingFilter) ([]*queries.ListingView, error) {
	query := `
		SELECT ` + listingViewColumns + `
		FROM listings l
		JOIN users u ON u.id = l.owner_id
		WHERE l.status = $1
		  AND ($2 = '' OR l.city = $2)
		  AND ($3 = '' OR l.area_name = $3)
		ORDER BY l.created_at DESC`

	rows, err := s.dbtx.Query(ctx, query, domlisting.StatusAvailable.String(), filter.City, filter.Area)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available listings", err)
	}
	defer rows.Close()

	return collectListingViews(rows)
}

func (s *ListingReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.ListingView, error) {
	query := `
		SELECT ` + listingViewColumns + `
		FROM listings l
		JOIN users u ON u.id = l.owner_id
		WHERE l.owner_id = $1
		ORDER BY l.created_at DESC`

	rows, err := s.dbtx.Query(ctx, query, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list listings by owner", err)
	}
	defer rows.Close()

	return collectListingViews(rows)
}

func (s *ListingReadStore) ViewerClaimStatus(ctx context.Context, listingID, viewerID uuid.UUID) (string, bool, error) {
	const query = `
		SELECT status FROM claims
		WHERE listing_id = $1 AND claimant_id = $2`

	var status string
	err := s.dbtx.QueryRow(ctx, query, listingID, viewerID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, infra.WrapRepoErr("failed to read viewer claim status", err)
	}
	return status, true, nil
}

func (s *ListingReadStore) GlobalStats(ctx context.Context) (*queries.GlobalStatsView, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM listings),
			(SELECT COUNT(*) FROM listings WHERE status = 'COMPLETED'),
			(SELECT COALESCE(SUM(servings), 0) FROM listings WHERE status = 'COMPLETED')`

	var view queries.GlobalStatsView
	err := s.dbtx.QueryRow(ctx, query).Scan(
		&view.TotalUsers, &view.TotalListings, &view.CompletedPickups, &view.ServingsShared,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read global stats", err)
	}
	return &view, nil
}

func scanListingView(row pgx.Row) (*queries.ListingView, error) {
	var v queries.ListingView
	var status string
	err := row.Scan(
		&v.ID, &v.OwnerID, &v.OwnerName, &v.OwnerTrustScore,
		&v.Title, &v.Description, &v.Servings, &v.FoodType,
		&v.CookedAt, &v.PickupBy, &v.AreaName, &v.ExactAddress,
		&v.City, &v.State, &v.Pincode, &status, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	st, err := domlisting.NewStatus(status)
	if err != nil {
		return nil, err
	}
	v.Status = st
	return &v, nil
}

func collectListingViews(rows pgx.Rows) ([]*queries.ListingView, error) {
	views := []*queries.ListingView{}
	for rows.Next() {
		v, err := scanListingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan listing row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate listing rows", err)
	}
	return views, nil
}
