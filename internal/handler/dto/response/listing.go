package response

import (
	"time"

	domlisting "eatyaar/internal/domain/listing"
	"eatyaar/internal/usecase/queries"

	"github.com/google/uuid"
)

type ListingResponse struct {
	ID              uuid.UUID `json:"id"`
	OwnerID         uuid.UUID `json:"owner_id"`
	OwnerName       string    `json:"owner_name"`
	OwnerTrustScore float64   `json:"owner_trust_score"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	Servings        int       `json:"servings"`
	FoodType        string    `json:"food_type"`
	CookedAt        time.Time `json:"cooked_at"`
	PickupBy        time.Time `json:"pickup_by"`
	AreaName        string    `json:"area_name"`
	Address         string    `json:"address"`
	City            string    `json:"city"`
	State           string    `json:"state,omitempty"`
	Pincode         string    `json:"pincode,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// FromListingView assembles the response under the disclosure rule: the exact
// address is shown to the owner and to a claimant whose claim has been
// approved; everyone else sees the placeholder.
func FromListingView(v *queries.ListingView, viewerID uuid.UUID, claimDisclosed bool) *ListingResponse {
	disclosed := v.OwnerID == viewerID || claimDisclosed
	return &ListingResponse{
		ID:              v.ID,
		OwnerID:         v.OwnerID,
		OwnerName:       v.OwnerName,
		OwnerTrustScore: v.OwnerTrustScore,
		Title:           v.Title,
		Description:     v.Description,
		Servings:        v.Servings,
		FoodType:        v.FoodType,
		CookedAt:        v.CookedAt,
		PickupBy:        v.PickupBy,
		AreaName:        v.AreaName,
		Address:         domlisting.VisibleAddress(v.ExactAddress, disclosed),
		City:            v.City,
		State:           v.State,
		Pincode:         v.Pincode,
		Status:          v.Status.String(),
		CreatedAt:       v.CreatedAt,
	}
}

func FromListingList(items []*queries.ListingView, viewerID uuid.UUID) []*ListingResponse {
	out := make([]*ListingResponse, 0, len(items))
	for _, v := range items {
		out = append(out, FromListingView(v, viewerID, false))
	}
	return out
}

type GlobalStatsResponse struct {
	TotalUsers       int64 `json:"total_users"`
	TotalListings    int64 `json:"total_listings"`
	CompletedPickups int64 `json:"completed_pickups"`
	ServingsShared   int64 `json:"servings_shared"`
}

func FromGlobalStats(s *queries.GlobalStatsView) *GlobalStatsResponse {
	return &GlobalStatsResponse{
		TotalUsers:       s.TotalUsers,
		TotalListings:    s.TotalListings,
		CompletedPickups: s.CompletedPickups,
		ServingsShared:   s.ServingsShared,
	}
}
