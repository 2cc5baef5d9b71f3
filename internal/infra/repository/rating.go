package repository

import (
	"context"

	domrating "eatyaar/internal/domain/rating"
	"eatyaar/internal/infra"
	"eatyaar/internal/infra/db"

	"github.com/google/uuid"
)

type RatingRepository struct{}

func NewRatingRepository() *RatingRepository {
	return &RatingRepository{}
}

func (r *RatingRepository) Create(ctx context.Context, dbtx db.DBTX, rt *domrating.Rating) (uuid.UUID, error) {
	// Unique index on (listing_id, rater_id) backs the one-rating-per-pair
	// invariant under racing submissions.
	const query = `
		INSERT INTO ratings (id, rater_id, ratee_id, listing_id, score, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := dbtx.Exec(ctx, query,
		rt.ID(), rt.RaterID(), rt.RateeID(), rt.ListingID(),
		rt.Score().Value(), rt.Comment().String(), rt.CreatedAt(),
	)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create rating", err)
	}
	return rt.ID(), nil
}

func (r *RatingRepository) AverageScoreFor(ctx context.Context, dbtx db.DBTX, rateeID uuid.UUID) (float64, int, error) {
	const query = `
		SELECT COALESCE(AVG(score), 0), COUNT(*)
		FROM ratings
		WHERE ratee_id = $1`

	var avg float64
	var count int
	if err := dbtx.QueryRow(ctx, query, rateeID).Scan(&avg, &count); err != nil {
		return 0, 0, infra.WrapRepoErr("failed to compute average score", err)
	}
	return avg, count, nil
}
