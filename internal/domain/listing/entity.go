package listing

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const MaxTitleLength = 150

// AddressPlaceholder is substituted for the exact pickup address whenever the
// viewer has no approved claim on the listing and is not the owner.
const AddressPlaceholder = "Address revealed after approval"

type Listing struct {
	id           uuid.UUID
	ownerID      uuid.UUID
	title        string
	description  string
	servings     int
	foodType     FoodType
	cookedAt     time.Time
	pickupBy     time.Time
	areaName     string
	exactAddress string
	city         string
	state        string
	pincode      string
	status       Status
	createdAt    time.Time
}

func NewListing(
	ownerID uuid.UUID,
	title, description string,
	servings int,
	foodType FoodType,
	cookedAt, pickupBy time.Time,
	areaName, exactAddress, city, state, pincode string,
	now time.Time,
) (*Listing, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return nil, ErrTitleTooLong
	}
	if servings <= 0 {
		return nil, ErrInvalidServings
	}
	if strings.TrimSpace(exactAddress) == "" {
		return nil, ErrEmptyAddress
	}
	if !pickupBy.After(cookedAt) {
		return nil, ErrInvalidTimeWindow
	}

	return &Listing{
		id:           uuid.New(),
		ownerID:      ownerID,
		title:        title,
		description:  strings.TrimSpace(description),
		servings:     servings,
		foodType:     foodType,
		cookedAt:     cookedAt,
		pickupBy:     pickupBy,
		areaName:     areaName,
		exactAddress: exactAddress,
		city:         city,
		state:        state,
		pincode:      pincode,
		status:       StatusAvailable,
		createdAt:    now,
	}, nil
}

func (l *Listing) ID() uuid.UUID        { return l.id }
func (l *Listing) OwnerID() uuid.UUID   { return l.ownerID }
func (l *Listing) Title() string        { return l.title }
func (l *Listing) Description() string  { return l.description }
func (l *Listing) Servings() int        { return l.servings }
func (l *Listing) FoodType() FoodType   { return l.foodType }
func (l *Listing) CookedAt() time.Time  { return l.cookedAt }
func (l *Listing) PickupBy() time.Time  { return l.pickupBy }
func (l *Listing) AreaName() string     { return l.areaName }
func (l *Listing) ExactAddress() string { return l.exactAddress }
func (l *Listing) City() string         { return l.city }
func (l *Listing) State() string        { return l.state }
func (l *Listing) Pincode() string      { return l.pincode }
func (l *Listing) Status() Status       { return l.status }
func (l *Listing) CreatedAt() time.Time { return l.createdAt }

// VisibleAddress applies the disclosure rule: the stored address for the owner
// or an address-visible claim, the placeholder for everyone else.
func VisibleAddress(exactAddress string, disclosed bool) string {
	if disclosed {
		return exactAddress
	}
	return AddressPlaceholder
}
