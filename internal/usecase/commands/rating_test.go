//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	domclaim "eatyaar/internal/domain/claim"
	"eatyaar/internal/pkg/clock"
	"eatyaar/internal/pkg/errs"
	"eatyaar/internal/usecase/commands"
	"eatyaar/internal/usecase/shared"
	"eatyaar/tests/common/builder"
	"eatyaar/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type RatingCommandsSuite struct {
	suite.Suite

	uow  *fake.UoW
	cmds commands.RatingCommands

	ownerID    uuid.UUID
	claimantID uuid.UUID
	listing    *shared.ListingSnapshot
	claim      *shared.ClaimSnapshot
}

func TestRatingCommandsSuite(t *testing.T) {
	suite.Run(t, new(RatingCommandsSuite))
}

func (s *RatingCommandsSuite) SetupTest() {
	s.uow = fake.NewUoW()
	s.cmds = commands.NewRatingCommands(s.uow, clock.NewFakeClock(time.Now()))

	s.ownerID = uuid.New()
	s.claimantID = uuid.New()
	s.uow.SeedUser(builder.NewUserBuilder().WithID(s.ownerID).BuildSnapshot())
	s.uow.SeedUser(builder.NewUserBuilder().WithID(s.claimantID).WithPhone("9123456780").BuildSnapshot())

	s.listing = builder.NewListingBuilder().WithOwnerID(s.ownerID).BuildSnapshot()
	s.uow.SeedListing(s.listing)

	s.claim = builder.NewClaimBuilder().
		WithListingID(s.listing.ID).
		WithClaimantID(s.claimantID).
		WithStatus(domclaim.StatusPickedUp).
		BuildSnapshot()
	s.uow.SeedClaim(s.claim)
}

func (s *RatingCommandsSuite) submit(claimID, raterID uuid.UUID, score int) (*commands.SubmitRatingResult, error) {
	return s.cmds.SubmitRating(context.Background(), commands.SubmitRatingRequest{
		ClaimID: claimID,
		Score:   score,
		Comment: "tasty and generous portions",
	}, raterID)
}

func (s *RatingCommandsSuite) TestSubmitRating() {
	s.Run("rating updates the poster's trust score", func() {
		s.SetupTest()
		result, err := s.submit(s.claim.ID, s.claimantID, 4)
		s.Require().NoError(err)
		s.InDelta(4.0, result.TrustScore, 1e-9)

		owner, _ := s.uow.User(s.ownerID)
		s.InDelta(4.0, owner.TrustScore, 1e-9)
	})

	s.Run("trust score is the rounded mean of all ratings", func() {
		s.SetupTest()
		_, err := s.submit(s.claim.ID, s.claimantID, 4)
		s.Require().NoError(err)

		// A second picked-up exchange on another listing by another claimant.
		other := uuid.New()
		s.uow.SeedUser(builder.NewUserBuilder().WithID(other).WithPhone("9000000002").BuildSnapshot())
		listing2 := builder.NewListingBuilder().WithOwnerID(s.ownerID).BuildSnapshot()
		s.uow.SeedListing(listing2)
		claim2 := builder.NewClaimBuilder().
			WithListingID(listing2.ID).
			WithClaimantID(other).
			WithStatus(domclaim.StatusPickedUp).
			BuildSnapshot()
		s.uow.SeedClaim(claim2)

		result, err := s.submit(claim2.ID, other, 5)
		s.Require().NoError(err)
		s.InDelta(4.5, result.TrustScore, 1e-9)

		owner, _ := s.uow.User(s.ownerID)
		s.InDelta(4.5, owner.TrustScore, 1e-9)
	})

	s.Run("mean is rounded to one decimal", func() {
		s.SetupTest()
		_, err := s.submit(s.claim.ID, s.claimantID, 4)
		s.Require().NoError(err)

		for i, score := range []int{3, 3} {
			other := uuid.New()
			phone := "900000001" + string(rune('0'+i))
			s.uow.SeedUser(builder.NewUserBuilder().WithID(other).WithPhone(phone).BuildSnapshot())
			l := builder.NewListingBuilder().WithOwnerID(s.ownerID).BuildSnapshot()
			s.uow.SeedListing(l)
			c := builder.NewClaimBuilder().
				WithListingID(l.ID).
				WithClaimantID(other).
				WithStatus(domclaim.StatusPickedUp).
				BuildSnapshot()
			s.uow.SeedClaim(c)

			_, err = s.submit(c.ID, other, score)
			s.Require().NoError(err)
		}

		// (4+3+3)/3 = 3.333... rounds to 3.3
		owner, _ := s.uow.User(s.ownerID)
		s.InDelta(3.3, owner.TrustScore, 1e-9)
	})

	s.Run("only the claimant may rate", func() {
		s.SetupTest()
		_, err := s.submit(s.claim.ID, s.ownerID, 5)
		s.Require().ErrorIs(err, errs.ErrNotClaimant)
	})

	s.Run("claim must be picked up", func() {
		s.SetupTest()
		pending := builder.NewClaimBuilder().
			WithListingID(s.listing.ID).
			WithClaimantID(s.claimantID).
			WithStatus(domclaim.StatusApproved).
			BuildSnapshot()
		s.uow.SeedClaim(pending)

		_, err := s.submit(pending.ID, s.claimantID, 5)
		s.Require().ErrorIs(err, errs.ErrClaimNotRatable)
	})

	s.Run("one rating per listing per rater", func() {
		s.SetupTest()
		_, err := s.submit(s.claim.ID, s.claimantID, 4)
		s.Require().NoError(err)

		_, err = s.submit(s.claim.ID, s.claimantID, 5)
		s.Require().ErrorIs(err, errs.ErrAlreadyRated)
		s.Equal(1, s.uow.RatingCount())
	})

	s.Run("invalid score refused before any write", func() {
		s.SetupTest()
		_, err := s.submit(s.claim.ID, s.claimantID, 6)
		s.Require().Error(err)
		s.Equal(0, s.uow.RatingCount())
	})

	s.Run("unknown claim", func() {
		s.SetupTest()
		_, err := s.submit(uuid.New(), s.claimantID, 4)
		s.Require().ErrorIs(err, errs.ErrClaimNotFound)
	})
}
