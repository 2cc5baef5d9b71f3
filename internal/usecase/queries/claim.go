package queries

import (
	"context"

	"github.com/google/uuid"
)

type ClaimReadStore interface {
	ListByClaimant(ctx context.Context, claimantID uuid.UUID) ([]*ClaimView, error)
	ListReceivedByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ClaimView, error)
}

type ClaimQueries interface {
	MyClaims(ctx context.Context, claimantID uuid.UUID) ([]*ClaimView, error)
	ReceivedClaims(ctx context.Context, ownerID uuid.UUID) ([]*ClaimView, error)
}

type claimQueriesImpl struct {
	store ClaimReadStore
}

func NewClaimQueries(store ClaimReadStore) ClaimQueries {
	return &claimQueriesImpl{store: store}
}

func (q *claimQueriesImpl) MyClaims(ctx context.Context, claimantID uuid.UUID) ([]*ClaimView, error) {
	return q.store.ListByClaimant(ctx, claimantID)
}

func (q *claimQueriesImpl) ReceivedClaims(ctx context.Context, ownerID uuid.UUID) ([]*ClaimView, error) {
	return q.store.ListReceivedByOwner(ctx, ownerID)
}
