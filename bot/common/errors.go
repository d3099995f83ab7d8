package common

import (
	"errors"
	"fmt"

	"outlaw/service"
)

// UserMessage maps an engine error to a line fit for chat. The second
// return is false for unexpected errors, which callers should log and
// report generically instead.
func UserMessage(err error) (string, bool) {
	var protErr *service.AlreadyProtectedError
	if errors.As(err, &protErr) {
		return fmt.Sprintf("You are already protected until %s.", FormatDiscordTimestamp(protErr.Until, "f")), true
	}

	var claimErr *service.AlreadyClaimedError
	if errors.As(err, &claimErr) {
		return fmt.Sprintf("This group is already claimed by %s.", Mention(claimErr.ClaimedBy)), true
	}

	switch {
	case errors.Is(err, service.ErrSelfTarget):
		return "You cannot target yourself.", true
	case errors.Is(err, service.ErrNonPositiveAmount):
		return "Amount must be greater than zero.", true
	case errors.Is(err, service.ErrInsufficientFunds):
		return "You don't have enough coins for that.", true
	case errors.Is(err, service.ErrTargetInsufficientFunds):
		return "They don't have that much to take.", true
	case errors.Is(err, service.ErrActorDead):
		return "You are dead. Get revived first.", true
	case errors.Is(err, service.ErrTargetDead):
		return "They are already dead.", true
	case errors.Is(err, service.ErrTargetNotDead):
		return "They are not dead.", true
	case errors.Is(err, service.ErrTargetProtected):
		return "They are protected right now.", true
	case errors.Is(err, service.ErrReviveLimitReached):
		return "You have used all your revives for today.", true
	case errors.Is(err, service.ErrDailyAlreadyClaimed):
		return "You already claimed your daily reward today.", true
	}

	return "", false
}
