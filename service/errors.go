package service

import (
	"errors"
	"fmt"
	"time"
)

// Validation failures: the command was malformed and nothing was read
// or written.
var (
	ErrSelfTarget        = errors.New("target cannot be yourself")
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
)

// Precondition failures: the command was well-formed but the current
// state forbids it. No state change occurs.
var (
	ErrInsufficientFunds       = errors.New("insufficient funds")
	ErrTargetInsufficientFunds = errors.New("target does not have that much")
	ErrActorDead               = errors.New("dead users cannot act")
	ErrTargetDead              = errors.New("target is already dead")
	ErrTargetNotDead           = errors.New("target is not dead")
	ErrTargetProtected         = errors.New("target is protected")
	ErrReviveLimitReached      = errors.New("daily revive limit reached")
	ErrDailyAlreadyClaimed     = errors.New("daily reward already claimed today")
)

// AlreadyProtectedError is returned when buying protection while a
// window is still open. Until reports when the current window ends.
type AlreadyProtectedError struct {
	Until time.Time
}

func (e *AlreadyProtectedError) Error() string {
	return fmt.Sprintf("already protected until %s", e.Until.UTC().Format(time.RFC3339))
}

// AlreadyClaimedError is returned when claiming a group that has a
// claimant, surfacing who holds the claim and since when.
type AlreadyClaimedError struct {
	ClaimedBy int64
	ClaimedAt time.Time
}

func (e *AlreadyClaimedError) Error() string {
	return fmt.Sprintf("group already claimed by user %d", e.ClaimedBy)
}
