//go:build unit || e2e

package builder

import (
	"time"

	domuser "eatyaar/internal/domain/user"
	"eatyaar/internal/usecase/queries"
	"eatyaar/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID         uuid.UUID
	Phone      string
	Name       string
	Email      string
	City       string
	Area       string
	TrustScore float64
	TotalGiven int
	TotalTaken int
	CreatedAt  time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:        uuid.New(),
		Phone:     "9876543210",
		Name:      "Asha",
		Email:     "asha@example.com",
		City:      "Bengaluru",
		Area:      "Indiranagar",
		CreatedAt: time.Now(),
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) BuildDomain() (*domuser.User, error) {
	phone, err := domuser.NewPhone(b.Phone)
	if err != nil {
		return nil, err
	}
	return domuser.Reconstruct(
		b.ID, phone,
		b.Name, b.Email, b.City, b.Area,
		b.TrustScore, b.TotalGiven, b.TotalTaken,
		true, b.CreatedAt,
	), nil
}

func (b *UserBuilder) BuildSnapshot() *shared.UserSnapshot {
	return &shared.UserSnapshot{
		ID:         b.ID,
		Phone:      b.Phone,
		Name:       b.Name,
		Email:      b.Email,
		City:       b.City,
		Area:       b.Area,
		TrustScore: b.TrustScore,
		TotalGiven: b.TotalGiven,
		TotalTaken: b.TotalTaken,
		IsVerified: true,
		CreatedAt:  b.CreatedAt,
	}
}

func (b *UserBuilder) BuildProfileView() *queries.UserProfileView {
	return &queries.UserProfileView{
		ID:         b.ID,
		Phone:      b.Phone,
		Name:       b.Name,
		Email:      b.Email,
		City:       b.City,
		Area:       b.Area,
		TrustScore: b.TrustScore,
		TotalGiven: b.TotalGiven,
		TotalTaken: b.TotalTaken,
		IsVerified: true,
		CreatedAt:  b.CreatedAt,
	}
}

// Fluent builder methods
func (b *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	b.ID = id
	return b
}

func (b *UserBuilder) WithPhone(phone string) *UserBuilder {
	b.Phone = phone
	return b
}

func (b *UserBuilder) WithTrustScore(score float64) *UserBuilder {
	b.TrustScore = score
	return b
}
