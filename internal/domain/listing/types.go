package listing

import "errors"

var (
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrTitleTooLong      = errors.New("title exceeds maximum length")
	ErrInvalidServings   = errors.New("servings must be positive")
	ErrInvalidFoodType   = errors.New("invalid food type")
	ErrEmptyAddress      = errors.New("exact address cannot be empty")
	ErrInvalidTimeWindow = errors.New("pickup deadline must be after preparation time")
	ErrInvalidStatus     = errors.New("invalid listing status")
	ErrInvalidTransition = errors.New("listing status transition not permitted")
)

type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusClaimed   Status = "CLAIMED"
	StatusCompleted Status = "COMPLETED"
	StatusExpired   Status = "EXPIRED"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusAvailable, StatusClaimed, StatusCompleted, StatusExpired:
		return Status(s), nil
	}
	return "", ErrInvalidStatus
}

func (s Status) String() string { return string(s) }

// CanTransitionTo enforces the monotone lifecycle:
// AVAILABLE -> CLAIMED -> COMPLETED, or AVAILABLE -> EXPIRED. No reversals.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusAvailable:
		return next == StatusClaimed || next == StatusExpired
	case StatusClaimed:
		return next == StatusCompleted
	default:
		return false
	}
}

type FoodType string

const (
	FoodTypeVeg    FoodType = "VEG"
	FoodTypeNonVeg FoodType = "NON_VEG"
	FoodTypeBoth   FoodType = "BOTH"
)

func NewFoodType(s string) (FoodType, error) {
	switch FoodType(s) {
	case FoodTypeVeg, FoodTypeNonVeg, FoodTypeBoth:
		return FoodType(s), nil
	}
	return "", ErrInvalidFoodType
}

func (t FoodType) String() string { return string(t) }
