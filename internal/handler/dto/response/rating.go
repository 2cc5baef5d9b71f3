package response

import (
	"time"

	"eatyaar/internal/usecase/queries"

	"github.com/google/uuid"
)

type RatingResponse struct {
	ID           uuid.UUID `json:"id"`
	Score        int       `json:"score"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	RaterID      uuid.UUID `json:"rater_id"`
	RaterName    string    `json:"rater_name,omitempty"`
	ListingID    uuid.UUID `json:"listing_id"`
	ListingTitle string    `json:"listing_title"`
}

type SubmitRatingResponse struct {
	RatingID   uuid.UUID `json:"rating_id"`
	TrustScore float64   `json:"trust_score"`
}

func FromRatingView(v *queries.RatingView) *RatingResponse {
	return &RatingResponse{
		ID:           v.ID,
		Score:        v.Score,
		Comment:      v.Comment,
		CreatedAt:    v.CreatedAt,
		RaterID:      v.RaterID,
		RaterName:    v.RaterName,
		ListingID:    v.ListingID,
		ListingTitle: v.ListingTitle,
	}
}

func FromRatingList(items []*queries.RatingView) []*RatingResponse {
	out := make([]*RatingResponse, 0, len(items))
	for _, v := range items {
		out = append(out, FromRatingView(v))
	}
	return out
}
