package claim

import (
	"time"

	"github.com/google/uuid"
)

type Claim struct {
	id         uuid.UUID
	listingID  uuid.UUID
	claimantID uuid.UUID
	status     Status
	createdAt  time.Time
}

func NewClaim(listingID, claimantID uuid.UUID, now time.Time) *Claim {
	return &Claim{
		id:         uuid.New(),
		listingID:  listingID,
		claimantID: claimantID,
		status:     StatusPending,
		createdAt:  now,
	}
}

func Reconstruct(id, listingID, claimantID uuid.UUID, status Status, createdAt time.Time) *Claim {
	return &Claim{
		id:         id,
		listingID:  listingID,
		claimantID: claimantID,
		status:     status,
		createdAt:  createdAt,
	}
}

func (c *Claim) ID() uuid.UUID         { return c.id }
func (c *Claim) ListingID() uuid.UUID  { return c.listingID }
func (c *Claim) ClaimantID() uuid.UUID { return c.claimantID }
func (c *Claim) Status() Status        { return c.status }
func (c *Claim) CreatedAt() time.Time  { return c.createdAt }

func (c *Claim) transitionTo(next Status) error {
	if !c.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	c.status = next
	return nil
}

func (c *Claim) Approve() error      { return c.transitionTo(StatusApproved) }
func (c *Claim) Reject() error       { return c.transitionTo(StatusRejected) }
func (c *Claim) MarkPickedUp() error { return c.transitionTo(StatusPickedUp) }
