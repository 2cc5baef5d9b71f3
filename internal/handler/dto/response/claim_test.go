//go:build unit

package response_test

import (
	"testing"

	domclaim "eatyaar/internal/domain/claim"
	domlisting "eatyaar/internal/domain/listing"
	"eatyaar/internal/handler/dto/response"
	"eatyaar/internal/usecase/queries"
	"eatyaar/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func claimView(status domclaim.Status) *queries.ClaimView {
	v := builder.NewClaimBuilder().WithStatus(status).BuildView()
	v.ListingAddress = "12 MG Road, Flat 3B"
	return v
}

func TestFromClaimView_AddressDisclosure(t *testing.T) {
	t.Run("owner always sees the address", func(t *testing.T) {
		for _, status := range []domclaim.Status{
			domclaim.StatusPending, domclaim.StatusApproved,
			domclaim.StatusRejected, domclaim.StatusPickedUp,
		} {
			v := claimView(status)
			resp := response.FromClaimView(v, v.ListingOwnerID)
			assert.Equal(t, "12 MG Road, Flat 3B", resp.ListingAddress, status)
		}
	})

	t.Run("claimant sees the address once approved", func(t *testing.T) {
		cases := map[domclaim.Status]string{
			domclaim.StatusPending:  domlisting.AddressPlaceholder,
			domclaim.StatusApproved: "12 MG Road, Flat 3B",
			domclaim.StatusRejected: domlisting.AddressPlaceholder,
			domclaim.StatusPickedUp: "12 MG Road, Flat 3B",
		}
		for status, expected := range cases {
			v := claimView(status)
			resp := response.FromClaimView(v, v.ClaimantID)
			assert.Equal(t, expected, resp.ListingAddress, status)
		}
	})

	t.Run("strangers never see the address", func(t *testing.T) {
		v := claimView(domclaim.StatusPickedUp)
		resp := response.FromClaimView(v, uuid.New())
		assert.Equal(t, domlisting.AddressPlaceholder, resp.ListingAddress)
	})
}

func TestFromListingView_AddressDisclosure(t *testing.T) {
	v := builder.NewListingBuilder().BuildView()

	t.Run("owner", func(t *testing.T) {
		resp := response.FromListingView(v, v.OwnerID, false)
		assert.Equal(t, v.ExactAddress, resp.Address)
	})

	t.Run("approved claimant", func(t *testing.T) {
		resp := response.FromListingView(v, uuid.New(), true)
		assert.Equal(t, v.ExactAddress, resp.Address)
	})

	t.Run("anyone else", func(t *testing.T) {
		resp := response.FromListingView(v, uuid.New(), false)
		assert.Equal(t, domlisting.AddressPlaceholder, resp.Address)
	})

	t.Run("anonymous", func(t *testing.T) {
		resp := response.FromListingView(v, uuid.Nil, false)
		assert.Equal(t, domlisting.AddressPlaceholder, resp.Address)
	})
}
