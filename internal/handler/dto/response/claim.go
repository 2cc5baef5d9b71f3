package response

import (
	"time"

	domlisting "eatyaar/internal/domain/listing"
	"eatyaar/internal/usecase/queries"

	"github.com/google/uuid"
)

type ClaimResponse struct {
	ID              uuid.UUID `json:"id"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	ListingID       uuid.UUID `json:"listing_id"`
	ListingTitle    string    `json:"listing_title"`
	ListingAreaName string    `json:"listing_area_name"`
	ListingAddress  string    `json:"listing_address"`
	ClaimantID      uuid.UUID `json:"claimant_id"`
	ClaimantName    string    `json:"claimant_name,omitempty"`
}

// FromClaimView discloses the pickup address to the listing owner always and
// to the claimant once the claim is approved.
func FromClaimView(v *queries.ClaimView, viewerID uuid.UUID) *ClaimResponse {
	disclosed := v.ListingOwnerID == viewerID ||
		(v.ClaimantID == viewerID && v.Status.AddressVisible())
	return &ClaimResponse{
		ID:              v.ID,
		Status:          v.Status.String(),
		CreatedAt:       v.CreatedAt,
		ListingID:       v.ListingID,
		ListingTitle:    v.ListingTitle,
		ListingAreaName: v.ListingAreaName,
		ListingAddress:  domlisting.VisibleAddress(v.ListingAddress, disclosed),
		ClaimantID:      v.ClaimantID,
		ClaimantName:    v.ClaimantName,
	}
}

func FromClaimList(items []*queries.ClaimView, viewerID uuid.UUID) []*ClaimResponse {
	out := make([]*ClaimResponse, 0, len(items))
	for _, v := range items {
		out = append(out, FromClaimView(v, viewerID))
	}
	return out
}
