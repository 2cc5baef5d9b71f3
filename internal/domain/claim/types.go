package claim

import "errors"

var (
	ErrInvalidStatus     = errors.New("invalid claim status")
	ErrInvalidTransition = errors.New("claim status transition not permitted")
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	StatusPickedUp Status = "PICKED_UP"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusApproved, StatusRejected, StatusPickedUp:
		return Status(s), nil
	}
	return "", ErrInvalidStatus
}

func (s Status) String() string { return string(s) }

// CanTransitionTo encodes the claim lifecycle: PENDING may be approved or
// rejected by the owner, APPROVED may be picked up by the claimant. REJECTED
// and PICKED_UP are terminal.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusApproved || next == StatusRejected
	case StatusApproved:
		return next == StatusPickedUp
	default:
		return false
	}
}

// AddressVisible reports whether a claim at this status discloses the
// listing's exact pickup address to the claimant.
func (s Status) AddressVisible() bool {
	return s == StatusApproved || s == StatusPickedUp
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusPickedUp
}
