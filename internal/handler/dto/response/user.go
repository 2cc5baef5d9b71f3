package response

import (
	"time"

	"eatyaar/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserProfileResponse struct {
	ID         uuid.UUID `json:"id"`
	Phone      string    `json:"phone,omitempty"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	City       string    `json:"city"`
	Area       string    `json:"area"`
	TrustScore float64   `json:"trust_score"`
	TotalGiven int       `json:"total_given"`
	TotalTaken int       `json:"total_taken"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

// FromUserProfileView keeps phone and email private unless the viewer is
// looking at their own profile.
func FromUserProfileView(v *queries.UserProfileView, viewerID uuid.UUID) *UserProfileResponse {
	resp := &UserProfileResponse{
		ID:         v.ID,
		Name:       v.Name,
		City:       v.City,
		Area:       v.Area,
		TrustScore: v.TrustScore,
		TotalGiven: v.TotalGiven,
		TotalTaken: v.TotalTaken,
		IsVerified: v.IsVerified,
		CreatedAt:  v.CreatedAt,
	}
	if v.ID == viewerID {
		resp.Phone = v.Phone
		resp.Email = v.Email
	}
	return resp
}
