package models

import (
	"time"
)

// Group represents a chat group the bot has seen. A group can be claimed
// by at most one user; the claim is permanent once set.
type Group struct {
	GroupID   int64      `db:"group_id"`
	AddedBy   int64      `db:"added_by"`
	AddedAt   time.Time  `db:"added_at"`
	ClaimedBy *int64     `db:"claimed_by"`
	ClaimedAt *time.Time `db:"claimed_at"`
}
