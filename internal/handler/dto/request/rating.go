package request

import (
	"eatyaar/internal/usecase/commands"

	"github.com/google/uuid"
)

type SubmitRatingRequest struct {
	ClaimID uuid.UUID `json:"claim_id" binding:"required"`
	Score   int       `json:"score" binding:"required,min=1,max=5"`
	Comment string    `json:"comment" binding:"max=500"`
}

func (r *SubmitRatingRequest) ToCommand() commands.SubmitRatingRequest {
	return commands.SubmitRatingRequest{
		ClaimID: r.ClaimID,
		Score:   r.Score,
		Comment: r.Comment,
	}
}
