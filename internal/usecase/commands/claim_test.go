//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	domclaim "eatyaar/internal/domain/claim"
	domlisting "eatyaar/internal/domain/listing"
	"eatyaar/internal/pkg/clock"
	"eatyaar/internal/pkg/errs"
	"eatyaar/internal/usecase/commands"
	"eatyaar/internal/usecase/shared"
	"eatyaar/tests/common/builder"
	"eatyaar/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ClaimCommandsSuite struct {
	suite.Suite

	uow  *fake.UoW
	clk  *clock.FakeClock
	cmds commands.ClaimCommands

	ownerID    uuid.UUID
	claimantID uuid.UUID
	listing    *shared.ListingSnapshot
}

func TestClaimCommandsSuite(t *testing.T) {
	suite.Run(t, new(ClaimCommandsSuite))
}

func (s *ClaimCommandsSuite) SetupTest() {
	s.uow = fake.NewUoW()
	s.clk = clock.NewFakeClock(time.Now())
	s.cmds = commands.NewClaimCommands(s.uow, s.clk)

	s.ownerID = uuid.New()
	s.claimantID = uuid.New()

	owner := builder.NewUserBuilder().WithID(s.ownerID).BuildSnapshot()
	claimant := builder.NewUserBuilder().WithID(s.claimantID).WithPhone("9123456780").BuildSnapshot()
	s.uow.SeedUser(owner)
	s.uow.SeedUser(claimant)

	s.listing = builder.NewListingBuilder().WithOwnerID(s.ownerID).BuildSnapshot()
	s.uow.SeedListing(s.listing)
}

func (s *ClaimCommandsSuite) seedClaim(status domclaim.Status) *shared.ClaimSnapshot {
	c := builder.NewClaimBuilder().
		WithListingID(s.listing.ID).
		WithClaimantID(s.claimantID).
		WithStatus(status).
		BuildSnapshot()
	s.uow.SeedClaim(c)
	return c
}

func (s *ClaimCommandsSuite) TestCreateClaim() {
	s.Run("creates pending claim", func() {
		s.SetupTest()
		result, err := s.cmds.CreateClaim(context.Background(), s.listing.ID, s.claimantID)
		s.Require().NoError(err)

		c, ok := s.uow.Claim(result.ClaimID)
		s.Require().True(ok)
		s.Equal(domclaim.StatusPending, c.Status)

		// Listing stays AVAILABLE until the owner approves.
		l, _ := s.uow.Listing(s.listing.ID)
		s.Equal(domlisting.StatusAvailable, l.Status)
	})

	s.Run("unknown listing", func() {
		s.SetupTest()
		_, err := s.cmds.CreateClaim(context.Background(), uuid.New(), s.claimantID)
		s.Require().ErrorIs(err, errs.ErrListingNotFound)
	})

	s.Run("owner cannot claim own listing", func() {
		s.SetupTest()
		_, err := s.cmds.CreateClaim(context.Background(), s.listing.ID, s.ownerID)
		s.Require().ErrorIs(err, errs.ErrSelfClaim)
	})

	s.Run("listing no longer available", func() {
		s.SetupTest()
		expired := builder.NewListingBuilder().
			WithOwnerID(s.ownerID).
			WithStatus(domlisting.StatusExpired).
			BuildSnapshot()
		s.uow.SeedListing(expired)

		_, err := s.cmds.CreateClaim(context.Background(), expired.ID, s.claimantID)
		s.Require().ErrorIs(err, errs.ErrListingNotAvailable)
	})

	s.Run("duplicate claim", func() {
		s.SetupTest()
		_, err := s.cmds.CreateClaim(context.Background(), s.listing.ID, s.claimantID)
		s.Require().NoError(err)

		_, err = s.cmds.CreateClaim(context.Background(), s.listing.ID, s.claimantID)
		s.Require().ErrorIs(err, errs.ErrDuplicateClaim)
	})

	s.Run("second claimant may also claim", func() {
		s.SetupTest()
		_, err := s.cmds.CreateClaim(context.Background(), s.listing.ID, s.claimantID)
		s.Require().NoError(err)

		other := uuid.New()
		s.uow.SeedUser(builder.NewUserBuilder().WithID(other).WithPhone("9000000001").BuildSnapshot())
		_, err = s.cmds.CreateClaim(context.Background(), s.listing.ID, other)
		s.Require().NoError(err)
	})
}

func (s *ClaimCommandsSuite) TestApprove() {
	s.Run("moves claim and listing together", func() {
		s.SetupTest()
		c := s.seedClaim(domclaim.StatusPending)

		err := s.cmds.Approve(context.Background(), c.ID, s.ownerID)
		s.Require().NoError(err)

		got, _ := s.uow.Claim(c.ID)
		s.Equal(domclaim.StatusApproved, got.Status)
		l, _ := s.uow.Listing(s.listing.ID)
		s.Equal(domlisting.StatusClaimed, l.Status)
	})

	s.Run("only the owner may approve", func() {
		s.SetupTest()
		c := s.seedClaim(domclaim.StatusPending)

		err := s.cmds.Approve(context.Background(), c.ID, s.claimantID)
		s.Require().ErrorIs(err, errs.ErrNotListingOwner)

		got, _ := s.uow.Claim(c.ID)
		s.Equal(domclaim.StatusPending, got.Status)
	})

	s.Run("non-pending claim refused", func() {
		s.SetupTest()
		c := s.seedClaim(domclaim.StatusRejected)

		err := s.cmds.Approve(context.Background(), c.ID, s.ownerID)
		s.Require().ErrorIs(err, errs.ErrInvalidClaimState)
	})

	s.Run("listing already claimed rolls the claim back", func() {
		s.SetupTest()
		claimed := builder.NewListingBuilder().
			WithOwnerID(s.ownerID).
			WithStatus(domlisting.StatusClaimed).
			BuildSnapshot()
		s.uow.SeedListing(claimed)
		c := builder.NewClaimBuilder().
			WithListingID(claimed.ID).
			WithClaimantID(s.claimantID).
			WithStatus(domclaim.StatusPending).
			BuildSnapshot()
		s.uow.SeedClaim(c)

		err := s.cmds.Approve(context.Background(), c.ID, s.ownerID)
		s.Require().ErrorIs(err, errs.ErrInvalidListingState)

		// The claim transition was rolled back with the transaction.
		got, _ := s.uow.Claim(c.ID)
		s.Equal(domclaim.StatusPending, got.Status)
	})
}

func (s *ClaimCommandsSuite) TestReject() {
	s.Run("rejects pending claim, listing untouched", func() {
		s.SetupTest()
		c := s.seedClaim(domclaim.StatusPending)

		err := s.cmds.Reject(context.Background(), c.ID, s.ownerID)
		s.Require().NoError(err)

		got, _ := s.uow.Claim(c.ID)
		s.Equal(domclaim.StatusRejected, got.Status)
		l, _ := s.uow.Listing(s.listing.ID)
		s.Equal(domlisting.StatusAvailable, l.Status)
	})

	s.Run("only the owner may reject", func() {
		s.SetupTest()
		c := s.seedClaim(domclaim.StatusPending)

		err := s.cmds.Reject(context.Background(), c.ID, s.claimantID)
		s.Require().ErrorIs(err, errs.ErrNotListingOwner)
	})

	s.Run("approved claim cannot be rejected", func() {
		s.SetupTest()
		c := s.seedClaim(domclaim.StatusApproved)

		err := s.cmds.Reject(context.Background(), c.ID, s.ownerID)
		s.Require().ErrorIs(err, errs.ErrInvalidClaimState)
	})
}

func (s *ClaimCommandsSuite) TestMarkPickedUp() {
	approve := func() *shared.ClaimSnapshot {
		c := s.seedClaim(domclaim.StatusPending)
		s.Require().NoError(s.cmds.Approve(context.Background(), c.ID, s.ownerID))
		return c
	}

	s.Run("completes the exchange and bumps counters", func() {
		s.SetupTest()
		c := approve()

		err := s.cmds.MarkPickedUp(context.Background(), c.ID, s.claimantID)
		s.Require().NoError(err)

		got, _ := s.uow.Claim(c.ID)
		s.Equal(domclaim.StatusPickedUp, got.Status)
		l, _ := s.uow.Listing(s.listing.ID)
		s.Equal(domlisting.StatusCompleted, l.Status)

		owner, _ := s.uow.User(s.ownerID)
		s.Equal(1, owner.TotalGiven)
		s.Equal(0, owner.TotalTaken)
		claimant, _ := s.uow.User(s.claimantID)
		s.Equal(0, claimant.TotalGiven)
		s.Equal(1, claimant.TotalTaken)
	})

	s.Run("only the claimant may confirm pickup", func() {
		s.SetupTest()
		c := approve()

		err := s.cmds.MarkPickedUp(context.Background(), c.ID, s.ownerID)
		s.Require().ErrorIs(err, errs.ErrNotClaimant)
	})

	s.Run("pending claim cannot be picked up", func() {
		s.SetupTest()
		c := s.seedClaim(domclaim.StatusPending)

		err := s.cmds.MarkPickedUp(context.Background(), c.ID, s.claimantID)
		s.Require().ErrorIs(err, errs.ErrInvalidClaimState)
	})

	s.Run("unknown claim", func() {
		s.SetupTest()
		err := s.cmds.MarkPickedUp(context.Background(), uuid.New(), s.claimantID)
		s.Require().ErrorIs(err, errs.ErrClaimNotFound)
	})
}
