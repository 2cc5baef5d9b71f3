package queries

import (
	"context"

	"eatyaar/internal/infra"
	"eatyaar/internal/pkg/errs"

	"github.com/google/uuid"
)

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserProfileView, error)
	RatingsFor(ctx context.Context, userID uuid.UUID) ([]*RatingView, error)
}

type UserQueries interface {
	Profile(ctx context.Context, id uuid.UUID) (*UserProfileView, error)
	Ratings(ctx context.Context, userID uuid.UUID) ([]*RatingView, error)
}

type userQueriesImpl struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueriesImpl{store: store}
}

func (q *userQueriesImpl) Profile(ctx context.Context, id uuid.UUID) (*UserProfileView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, err
	}
	return v, nil
}

func (q *userQueriesImpl) Ratings(ctx context.Context, userID uuid.UUID) ([]*RatingView, error) {
	return q.store.RatingsFor(ctx, userID)
}
