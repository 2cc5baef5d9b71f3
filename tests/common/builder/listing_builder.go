//go:build unit || e2e

package builder

import (
	"time"

	domlisting "eatyaar/internal/domain/listing"
	"eatyaar/internal/usecase/queries"
	"eatyaar/internal/usecase/shared"

	"github.com/google/uuid"
)

type ListingBuilder struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	OwnerName    string
	Title        string
	Description  string
	Servings     int
	FoodType     string
	CookedAt     time.Time
	PickupBy     time.Time
	AreaName     string
	ExactAddress string
	City         string
	State        string
	Pincode      string
	Status       domlisting.Status
	CreatedAt    time.Time
}

func NewListingBuilder() *ListingBuilder {
	now := time.Now()
	return &ListingBuilder{
		ID:           uuid.New(),
		OwnerID:      uuid.New(),
		OwnerName:    "Asha",
		Title:        "Home-cooked dal and rice",
		Description:  "Freshly made this evening",
		Servings:     4,
		FoodType:     "VEG",
		CookedAt:     now.Add(-time.Hour),
		PickupBy:     now.Add(3 * time.Hour),
		AreaName:     "Indiranagar",
		ExactAddress: "12 MG Road, Flat 3B",
		City:         "Bengaluru",
		State:        "Karnataka",
		Pincode:      "560038",
		Status:       domlisting.StatusAvailable,
		CreatedAt:    now,
	}
}

func (b *ListingBuilder) With(mutate func(*ListingBuilder)) *ListingBuilder {
	mutate(b)
	return b
}

func (b *ListingBuilder) BuildDomain() (*domlisting.Listing, error) {
	foodType, err := domlisting.NewFoodType(b.FoodType)
	if err != nil {
		return nil, err
	}
	return domlisting.NewListing(
		b.OwnerID,
		b.Title, b.Description,
		b.Servings, foodType,
		b.CookedAt, b.PickupBy,
		b.AreaName, b.ExactAddress, b.City, b.State, b.Pincode,
		b.CreatedAt,
	)
}

func (b *ListingBuilder) BuildSnapshot() *shared.ListingSnapshot {
	return &shared.ListingSnapshot{
		ID:           b.ID,
		OwnerID:      b.OwnerID,
		Title:        b.Title,
		Servings:     b.Servings,
		AreaName:     b.AreaName,
		ExactAddress: b.ExactAddress,
		Status:       b.Status,
		PickupBy:     b.PickupBy,
	}
}

func (b *ListingBuilder) BuildView() *queries.ListingView {
	return &queries.ListingView{
		ID:           b.ID,
		OwnerID:      b.OwnerID,
		OwnerName:    b.OwnerName,
		Title:        b.Title,
		Description:  b.Description,
		Servings:     b.Servings,
		FoodType:     b.FoodType,
		CookedAt:     b.CookedAt,
		PickupBy:     b.PickupBy,
		AreaName:     b.AreaName,
		ExactAddress: b.ExactAddress,
		City:         b.City,
		State:        b.State,
		Pincode:      b.Pincode,
		Status:       b.Status,
		CreatedAt:    b.CreatedAt,
	}
}

// Fluent builder methods
func (b *ListingBuilder) WithOwnerID(id uuid.UUID) *ListingBuilder {
	b.OwnerID = id
	return b
}

func (b *ListingBuilder) WithTitle(title string) *ListingBuilder {
	b.Title = title
	return b
}

func (b *ListingBuilder) WithServings(servings int) *ListingBuilder {
	b.Servings = servings
	return b
}

func (b *ListingBuilder) WithFoodType(foodType string) *ListingBuilder {
	b.FoodType = foodType
	return b
}

func (b *ListingBuilder) WithPickupBy(t time.Time) *ListingBuilder {
	b.PickupBy = t
	return b
}

func (b *ListingBuilder) WithExactAddress(addr string) *ListingBuilder {
	b.ExactAddress = addr
	return b
}

func (b *ListingBuilder) WithStatus(status domlisting.Status) *ListingBuilder {
	b.Status = status
	return b
}
