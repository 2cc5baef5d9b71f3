//go:build unit

package listing_test

import (
	"strings"
	"testing"
	"time"

	"eatyaar/internal/domain/listing"
	"eatyaar/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ListingBuilder)
	errIs  error
}

func TestNewListing(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewListingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, listing.StatusAvailable, actual.Status())
		assert.Equal(t, "Home-cooked dal and rice", actual.Title())
		assert.Equal(t, 4, actual.Servings())
	})

	t.Run("title validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty title",
				mutate: func(b *builder.ListingBuilder) { b.WithTitle("") },
				errIs:  listing.ErrEmptyTitle,
			},
			{
				name:   "whitespace only title",
				mutate: func(b *builder.ListingBuilder) { b.WithTitle("   ") },
				errIs:  listing.ErrEmptyTitle,
			},
			{
				name:   "maximum length title",
				mutate: func(b *builder.ListingBuilder) { b.WithTitle(strings.Repeat("a", listing.MaxTitleLength)) },
			},
			{
				name:   "title exceeds maximum length",
				mutate: func(b *builder.ListingBuilder) { b.WithTitle(strings.Repeat("a", listing.MaxTitleLength+1)) },
				errIs:  listing.ErrTitleTooLong,
			},
		})
	})

	t.Run("servings validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero servings",
				mutate: func(b *builder.ListingBuilder) { b.WithServings(0) },
				errIs:  listing.ErrInvalidServings,
			},
			{
				name:   "negative servings",
				mutate: func(b *builder.ListingBuilder) { b.WithServings(-1) },
				errIs:  listing.ErrInvalidServings,
			},
			{
				name:   "single serving",
				mutate: func(b *builder.ListingBuilder) { b.WithServings(1) },
			},
		})
	})

	t.Run("address and time window validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty exact address",
				mutate: func(b *builder.ListingBuilder) { b.WithExactAddress("") },
				errIs:  listing.ErrEmptyAddress,
			},
			{
				name: "pickup before cooked",
				mutate: func(b *builder.ListingBuilder) {
					b.WithPickupBy(b.CookedAt.Add(-time.Hour))
				},
				errIs: listing.ErrInvalidTimeWindow,
			},
			{
				name: "pickup equals cooked",
				mutate: func(b *builder.ListingBuilder) {
					b.WithPickupBy(b.CookedAt)
				},
				errIs: listing.ErrInvalidTimeWindow,
			},
		})
	})
}

func TestNewStatus(t *testing.T) {
	st, err := listing.NewStatus("AVAILABLE")
	require.NoError(t, err)
	assert.Equal(t, listing.StatusAvailable, st)

	_, err = listing.NewStatus("PENDING")
	require.ErrorIs(t, err, listing.ErrInvalidStatus)
}

func TestStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from    listing.Status
		to      listing.Status
		allowed bool
	}{
		{listing.StatusAvailable, listing.StatusClaimed, true},
		{listing.StatusAvailable, listing.StatusExpired, true},
		{listing.StatusAvailable, listing.StatusCompleted, false},
		{listing.StatusClaimed, listing.StatusCompleted, true},
		{listing.StatusClaimed, listing.StatusAvailable, false},
		{listing.StatusClaimed, listing.StatusExpired, false},
		{listing.StatusCompleted, listing.StatusAvailable, false},
		{listing.StatusExpired, listing.StatusAvailable, false},
		{listing.StatusExpired, listing.StatusClaimed, false},
	}
	for _, c := range cases {
		t.Run(string(c.from)+"->"+string(c.to), func(t *testing.T) {
			assert.Equal(t, c.allowed, c.from.CanTransitionTo(c.to))
		})
	}
}

func TestVisibleAddress(t *testing.T) {
	assert.Equal(t, "12 MG Road, Flat 3B", listing.VisibleAddress("12 MG Road, Flat 3B", true))
	assert.Equal(t, listing.AddressPlaceholder, listing.VisibleAddress("12 MG Road, Flat 3B", false))
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewListingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
