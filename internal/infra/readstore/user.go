package readstore

import (
	"context"
	"errors"

	"eatyaar/internal/infra"
	"eatyaar/internal/infra/db"
	"eatyaar/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserReadStore struct {
	dbtx db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{dbtx: dbtx}
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserProfileView, error) {
	const query = `
		SELECT id, phone, name, email, city, area,
		       trust_score, total_given, total_taken, is_verified, created_at
		FROM users
		WHERE id = $1`

	var v queries.UserProfileView
	err := s.dbtx.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Phone, &v.Name, &v.Email, &v.City, &v.Area,
		&v.TrustScore, &v.TotalGiven, &v.TotalTaken, &v.IsVerified, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	return &v, nil
}

func (s *UserReadStore) RatingsFor(ctx context.Context, userID uuid.UUID) ([]*queries.RatingView, error) {
	const query = `
		SELECT r.id, r.score, r.comment, r.created_at,
		       r.rater_id, rater.name, r.ratee_id, ratee.name,
		       r.listing_id, l.title
		FROM ratings r
		JOIN users rater ON rater.id = r.rater_id
		JOIN users ratee ON ratee.id = r.ratee_id
		JOIN listings l ON l.id = r.listing_id
		WHERE r.ratee_id = $1
		ORDER BY r.created_at DESC`

	rows, err := s.dbtx.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ratings for user", err)
	}
	defer rows.Close()

	views := []*queries.RatingView{}
	for rows.Next() {
		var v queries.RatingView
		err := rows.Scan(
			&v.ID, &v.Score, &v.Comment, &v.CreatedAt,
			&v.RaterID, &v.RaterName, &v.RateeID, &v.RateeName,
			&v.ListingID, &v.ListingTitle,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan rating row", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rating rows", err)
	}
	return views, nil
}
