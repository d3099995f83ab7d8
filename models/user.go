package models

import (
	"time"
)

// Epoch is the zero point for the time-window fields. A death or
// protection timestamp at or before "now" means the window is inactive.
var Epoch = time.Unix(0, 0).UTC()

// User represents a chat user's economy state
type User struct {
	UserID          int64     `db:"user_id"`
	Balance         int64     `db:"balance"`
	DeathUntil      time.Time `db:"death_until"`
	ProtectUntil    time.Time `db:"protect_until"`
	ReviveCount     int       `db:"revive_count"`
	ReviveCountDate string    `db:"revive_count_date"` // UTC calendar day the count applies to, "" if never
	TotalKills      int64     `db:"total_kills"`
	DailyClaimedAt  time.Time `db:"daily_claimed_at"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

// IsDead reports whether the user's death window is still open at the given time.
func (u *User) IsDead(now time.Time) bool {
	return u.DeathUntil.After(now)
}

// IsProtected reports whether the user's protection window is still open at the given time.
func (u *User) IsProtected(now time.Time) bool {
	return u.ProtectUntil.After(now)
}

// UserUpdate is a closed field patch for a user row. Only non-nil fields
// are written. Unknown fields cannot be expressed, by construction.
type UserUpdate struct {
	Balance         *int64
	DeathUntil      *time.Time
	ProtectUntil    *time.Time
	ReviveCount     *int
	ReviveCountDate *string
	TotalKills      *int64
	DailyClaimedAt  *time.Time
}

// IsEmpty reports whether the patch names no fields.
func (p UserUpdate) IsEmpty() bool {
	return p.Balance == nil &&
		p.DeathUntil == nil &&
		p.ProtectUntil == nil &&
		p.ReviveCount == nil &&
		p.ReviveCountDate == nil &&
		p.TotalKills == nil &&
		p.DailyClaimedAt == nil
}

// LeaderboardField enumerates the user columns a leaderboard may rank by.
type LeaderboardField string

const (
	LeaderboardFieldBalance LeaderboardField = "balance"
	LeaderboardFieldKills   LeaderboardField = "total_kills"
)

// LeaderboardEntry represents one row of a ranking
type LeaderboardEntry struct {
	Rank   int
	UserID int64
	Value  int64
}
