package rating

import (
	"time"

	"github.com/google/uuid"
)

type Rating struct {
	id        uuid.UUID
	raterID   uuid.UUID
	rateeID   uuid.UUID
	listingID uuid.UUID
	score     Score
	comment   Comment
	createdAt time.Time
}

func NewRating(raterID, rateeID, listingID uuid.UUID, score Score, comment Comment, now time.Time) *Rating {
	return &Rating{
		id:        uuid.New(),
		raterID:   raterID,
		rateeID:   rateeID,
		listingID: listingID,
		score:     score,
		comment:   comment,
		createdAt: now,
	}
}

func (r *Rating) ID() uuid.UUID        { return r.id }
func (r *Rating) RaterID() uuid.UUID   { return r.raterID }
func (r *Rating) RateeID() uuid.UUID   { return r.rateeID }
func (r *Rating) ListingID() uuid.UUID { return r.listingID }
func (r *Rating) Score() Score         { return r.score }
func (r *Rating) Comment() Comment     { return r.comment }
func (r *Rating) CreatedAt() time.Time { return r.createdAt }
