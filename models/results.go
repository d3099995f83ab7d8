package models

import (
	"time"
)

// TransferResult describes a completed give
type TransferResult struct {
	Amount           int64
	Tax              int64
	NetAmount        int64
	RecipientID      int64
	NewSenderBalance int64
}

// RobResult describes the outcome of a robbery attempt
type RobResult struct {
	Success   bool
	Amount    int64 // amount moved on success
	Penalized bool  // penalty charged on failure
	Penalty   int64
}

// KillResult describes a completed kill
type KillResult struct {
	Reward     int64
	TotalKills int64
	DeathUntil time.Time
}

// ProtectResult describes a completed protection purchase
type ProtectResult struct {
	Cost  int64
	Until time.Time
}

// ReviveResult describes a completed revive
type ReviveResult struct {
	TargetID    int64
	Cost        int64
	RevivesUsed int // actor's revive count for the day, after this revive
	ReviveLimit int
	SelfRevive  bool
}

// DailyClaimResult describes a completed daily claim
type DailyClaimResult struct {
	Reward     int64
	NewBalance int64
}

// ClaimResult describes a successful group claim
type ClaimResult struct {
	GroupID   int64
	Reward    int64
	ClaimedAt time.Time
}

// Profile is the read-only, human-renderable view of a user's state.
// It is derived from the raw account fields and never persisted.
type Profile struct {
	UserID           int64
	Balance          int64
	TotalKills       int64
	Dead             bool
	DeathRemaining   time.Duration
	Protected        bool
	ProtectRemaining time.Duration
	RevivesLeft      int
	ReviveLimit      int
	ClaimedToday     bool
}
