package queries

import (
	"context"

	"eatyaar/internal/infra"
	"eatyaar/internal/pkg/errs"

	"github.com/google/uuid"
)

type ListingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
	ListAvailable(ctx context.Context, filter ListingFilter) ([]*ListingView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ListingView, error)
	// ViewerClaimStatus reports the viewer's claim status on the listing, if any.
	ViewerClaimStatus(ctx context.Context, listingID, viewerID uuid.UUID) (string, bool, error)
	GlobalStats(ctx context.Context) (*GlobalStatsView, error)
}

type ListingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ListingView, error)
	ListAvailable(ctx context.Context, filter ListingFilter) ([]*ListingView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ListingView, error)
	ViewerClaimStatus(ctx context.Context, listingID, viewerID uuid.UUID) (string, bool, error)
	GlobalStats(ctx context.Context) (*GlobalStatsView, error)
}

type listingQueriesImpl struct {
	store ListingReadStore
}

func NewListingQueries(store ListingReadStore) ListingQueries {
	return &listingQueriesImpl{store: store}
}

func (q *listingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ListingView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrListingNotFound)
		}
		return nil, err
	}
	return v, nil
}

func (q *listingQueriesImpl) ListAvailable(ctx context.Context, filter ListingFilter) ([]*ListingView, error) {
	return q.store.ListAvailable(ctx, filter)
}

func (q *listingQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ListingView, error) {
	return q.store.ListByOwner(ctx, ownerID)
}

func (q *listingQueriesImpl) ViewerClaimStatus(ctx context.Context, listingID, viewerID uuid.UUID) (string, bool, error) {
	return q.store.ViewerClaimStatus(ctx, listingID, viewerID)
}

func (q *listingQueriesImpl) GlobalStats(ctx context.Context) (*GlobalStatsView, error) {
	return q.store.GlobalStats(ctx)
}
