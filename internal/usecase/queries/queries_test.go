//go:build unit

package queries_test

import (
	"context"
	"testing"

	"eatyaar/internal/infra"
	"eatyaar/internal/pkg/errs"
	"eatyaar/internal/usecase/queries"
	"eatyaar/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubListingStore struct {
	view *queries.ListingView
	err  error
}

func (s *stubListingStore) FindByID(context.Context, uuid.UUID) (*queries.ListingView, error) {
	return s.view, s.err
}

func (s *stubListingStore) ListAvailable(context.Context, queries.ListingFilter) ([]*queries.ListingView, error) {
	return nil, nil
}

func (s *stubListingStore) ListByOwner(context.Context, uuid.UUID) ([]*queries.ListingView, error) {
	return nil, nil
}

func (s *stubListingStore) ViewerClaimStatus(context.Context, uuid.UUID, uuid.UUID) (string, bool, error) {
	return "", false, nil
}

func (s *stubListingStore) GlobalStats(context.Context) (*queries.GlobalStatsView, error) {
	return nil, nil
}

type stubUserStore struct {
	view *queries.UserProfileView
	err  error
}

func (s *stubUserStore) FindByID(context.Context, uuid.UUID) (*queries.UserProfileView, error) {
	return s.view, s.err
}

func (s *stubUserStore) RatingsFor(context.Context, uuid.UUID) ([]*queries.RatingView, error) {
	return nil, nil
}

func TestListingQueries_GetByID(t *testing.T) {
	t.Run("returns the view", func(t *testing.T) {
		view := builder.NewListingBuilder().BuildView()
		q := queries.NewListingQueries(&stubListingStore{view: view})

		got, err := q.GetByID(context.Background(), view.ID)
		require.NoError(t, err)
		assert.Equal(t, view.ID, got.ID)
	})

	t.Run("unknown id surfaces the listing sentinel", func(t *testing.T) {
		store := &stubListingStore{err: infra.WrapRepoErr("listing not found", nil, infra.KindNotFound)}
		q := queries.NewListingQueries(store)

		_, err := q.GetByID(context.Background(), uuid.New())
		require.ErrorIs(t, err, errs.ErrListingNotFound)
	})

	t.Run("other store failures pass through unmapped", func(t *testing.T) {
		store := &stubListingStore{err: infra.WrapRepoErr("connection reset", nil)}
		q := queries.NewListingQueries(store)

		_, err := q.GetByID(context.Background(), uuid.New())
		require.Error(t, err)
		assert.NotErrorIs(t, err, errs.ErrListingNotFound)
	})
}

func TestUserQueries_Profile(t *testing.T) {
	t.Run("returns the view", func(t *testing.T) {
		view := builder.NewUserBuilder().BuildProfileView()
		q := queries.NewUserQueries(&stubUserStore{view: view})

		got, err := q.Profile(context.Background(), view.ID)
		require.NoError(t, err)
		assert.Equal(t, view.ID, got.ID)
	})

	t.Run("unknown id surfaces the user sentinel", func(t *testing.T) {
		store := &stubUserStore{err: infra.WrapRepoErr("user not found", nil, infra.KindNotFound)}
		q := queries.NewUserQueries(store)

		_, err := q.Profile(context.Background(), uuid.New())
		require.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}
