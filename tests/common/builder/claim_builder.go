//go:build unit || e2e

package builder

import (
	"time"

	domclaim "eatyaar/internal/domain/claim"
	"eatyaar/internal/usecase/queries"
	"eatyaar/internal/usecase/shared"

	"github.com/google/uuid"
)

type ClaimBuilder struct {
	ID             uuid.UUID
	ListingID      uuid.UUID
	ListingTitle   string
	ListingOwnerID uuid.UUID
	ClaimantID     uuid.UUID
	ClaimantName   string
	Status         domclaim.Status
	CreatedAt      time.Time
}

func NewClaimBuilder() *ClaimBuilder {
	return &ClaimBuilder{
		ID:             uuid.New(),
		ListingID:      uuid.New(),
		ListingTitle:   "Home-cooked dal and rice",
		ListingOwnerID: uuid.New(),
		ClaimantID:     uuid.New(),
		ClaimantName:   "Ravi",
		Status:         domclaim.StatusPending,
		CreatedAt:      time.Now(),
	}
}

func (b *ClaimBuilder) With(mutate func(*ClaimBuilder)) *ClaimBuilder {
	mutate(b)
	return b
}

func (b *ClaimBuilder) BuildDomain() *domclaim.Claim {
	return domclaim.Reconstruct(b.ID, b.ListingID, b.ClaimantID, b.Status, b.CreatedAt)
}

func (b *ClaimBuilder) BuildSnapshot() *shared.ClaimSnapshot {
	return &shared.ClaimSnapshot{
		ID:         b.ID,
		ListingID:  b.ListingID,
		ClaimantID: b.ClaimantID,
		Status:     b.Status,
		CreatedAt:  b.CreatedAt,
	}
}

func (b *ClaimBuilder) BuildView() *queries.ClaimView {
	return &queries.ClaimView{
		ID:             b.ID,
		Status:         b.Status,
		CreatedAt:      b.CreatedAt,
		ListingID:      b.ListingID,
		ListingTitle:   b.ListingTitle,
		ListingOwnerID: b.ListingOwnerID,
		ClaimantID:     b.ClaimantID,
		ClaimantName:   b.ClaimantName,
	}
}

// Fluent builder methods
func (b *ClaimBuilder) WithListingID(id uuid.UUID) *ClaimBuilder {
	b.ListingID = id
	return b
}

func (b *ClaimBuilder) WithClaimantID(id uuid.UUID) *ClaimBuilder {
	b.ClaimantID = id
	return b
}

func (b *ClaimBuilder) WithStatus(status domclaim.Status) *ClaimBuilder {
	b.Status = status
	return b
}
