package shared

import (
	"context"
	"time"

	domclaim "eatyaar/internal/domain/claim"
	domlisting "eatyaar/internal/domain/listing"
	domrating "eatyaar/internal/domain/rating"
	domuser "eatyaar/internal/domain/user"
	"eatyaar/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for composite write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: direct access to command reads outside a transaction
	CommandReads() CommandReads
}

type Tx interface {
	Listings() ListingRepository
	Claims() ClaimRepository
	Ratings() RatingRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

// Write-side snapshots keep commands off the read-side query types.
type ListingSnapshot struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Title        string
	Servings     int
	AreaName     string
	ExactAddress string
	Status       domlisting.Status
	PickupBy     time.Time
}

type ClaimSnapshot struct {
	ID         uuid.UUID
	ListingID  uuid.UUID
	ClaimantID uuid.UUID
	Status     domclaim.Status
	CreatedAt  time.Time
}

type UserSnapshot struct {
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

type CommandReads interface {
	ListingByID(ctx context.Context, id uuid.UUID) (*ListingSnapshot, error)
	ClaimByID(ctx context.Context, id uuid.UUID) (*ClaimSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	UserByPhone(ctx context.Context, phone string) (*UserSnapshot, error)
	ClaimExists(ctx context.Context, listingID, claimantID uuid.UUID) (bool, error)
	RatingExists(ctx context.Context, listingID, raterID uuid.UUID) (bool, error)
}

type ListingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, l *domlisting.Listing) (uuid.UUID, error)
	// TransitionStatus applies from->to as a conditional update and reports
	// whether a row actually moved. A false result means another writer got
	// there first or the listing was never in `from`.
	TransitionStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, from, to domlisting.Status) (bool, error)
	Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
}

type ClaimRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, c *domclaim.Claim) (uuid.UUID, error)
	TransitionStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, from, to domclaim.Status) (bool, error)
}

type RatingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, r *domrating.Rating) (uuid.UUID, error)
	// AverageScoreFor returns the raw mean of all scores the user has received
	// and the number of ratings backing it.
	AverageScoreFor(ctx context.Context, dbtx db.DBTX, rateeID uuid.UUID) (float64, int, error)
}

type UserRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, u *domuser.User) (uuid.UUID, error)
	CompleteProfile(ctx context.Context, dbtx db.DBTX, id uuid.UUID, name, email, city, area string) error
	// LockByID takes the user's row lock so trust-score recomputation
	// serializes against concurrent ratings for the same ratee.
	LockByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error
	IncrementCounters(ctx context.Context, dbtx db.DBTX, id uuid.UUID, givenDelta, takenDelta int) error
	UpdateTrustScore(ctx context.Context, dbtx db.DBTX, id uuid.UUID, score float64) error
}
