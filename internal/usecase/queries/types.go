package queries

import (
	"time"

	domclaim "eatyaar/internal/domain/claim"
	domlisting "eatyaar/internal/domain/listing"

	"github.com/google/uuid"
)

// Views carry the raw exact address; disclosure is decided at response
// assembly against the viewer's relationship to the listing.
type ListingView struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	OwnerName       string
	OwnerTrustScore float64
	Title           string
	Description     string
	Servings        int
	FoodType        string
	CookedAt        time.Time
	PickupBy        time.Time
	AreaName        string
	ExactAddress    string
	City            string
	State           string
	Pincode         string
	Status          domlisting.Status
	CreatedAt       time.Time
}

type ClaimView struct {
	ID              uuid.UUID
	Status          domclaim.Status
	CreatedAt       time.Time
	ListingID       uuid.UUID
	ListingTitle    string
	ListingAreaName string
	ListingAddress  string
	ListingOwnerID  uuid.UUID
	ClaimantID      uuid.UUID
	ClaimantName    string
}

type RatingView struct {
	ID           uuid.UUID
	Score        int
	Comment      string
	CreatedAt    time.Time
	RaterID      uuid.UUID
	RaterName    string
	RateeID      uuid.UUID
	RateeName    string
	ListingID    uuid.UUID
	ListingTitle string
}

type UserProfileView struct {
	ID         uuid.UUID
	Phone      string
	Name       string
	Email      string
	City       string
	Area       string
	TrustScore float64
	TotalGiven int
	TotalTaken int
	IsVerified bool
	CreatedAt  time.Time
}

type GlobalStatsView struct {
	TotalUsers       int64
	TotalListings    int64
	CompletedPickups int64
	ServingsShared   int64
}

// ListingFilter narrows the available-listings feed.
type ListingFilter struct {
	City string
	Area string
}
