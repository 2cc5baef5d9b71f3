package request

import "github.com/google/uuid"

type CreateClaimRequest struct {
	ListingID uuid.UUID `json:"listing_id" binding:"required"`
}
