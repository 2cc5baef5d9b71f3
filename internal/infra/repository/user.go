package repository

import (
	"context"

	domuser "eatyaar/internal/domain/user"
	"eatyaar/internal/infra"
	"eatyaar/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, dbtx db.DBTX, u *domuser.User) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (
			id, phone, name, email, city, area,
			trust_score, total_given, total_taken, is_verified, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := dbtx.Exec(ctx, query,
		u.ID(), u.Phone().Value(), u.Name(), u.Email(), u.City(), u.Area(),
		u.TrustScore(), u.TotalGiven(), u.TotalTaken(), u.IsVerified(), u.CreatedAt(),
	)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create user", err)
	}
	return u.ID(), nil
}

func (r *UserRepository) CompleteProfile(ctx context.Context, dbtx db.DBTX, id uuid.UUID, name, email, city, area string) error {
	const query = `
		UPDATE users SET name = $2, email = $3, city = $4, area = $5
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, id, name, email, city, area)
	if err != nil {
		return wrapWriteErr("failed to complete profile", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) LockByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	const query = `SELECT id FROM users WHERE id = $1 FOR UPDATE`

	var got uuid.UUID
	if err := dbtx.QueryRow(ctx, query, id).Scan(&got); err != nil {
		return infra.WrapRepoErr("failed to lock user row", err)
	}
	return nil
}

func (r *UserRepository) IncrementCounters(ctx context.Context, dbtx db.DBTX, id uuid.UUID, givenDelta, takenDelta int) error {
	const query = `
		UPDATE users SET total_given = total_given + $2, total_taken = total_taken + $3
		WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, id, givenDelta, takenDelta)
	if err != nil {
		return infra.WrapRepoErr("failed to increment user counters", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) UpdateTrustScore(ctx context.Context, dbtx db.DBTX, id uuid.UUID, score float64) error {
	const query = `UPDATE users SET trust_score = $2 WHERE id = $1`

	tag, err := dbtx.Exec(ctx, query, id, score)
	if err != nil {
		return infra.WrapRepoErr("failed to update trust score", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
