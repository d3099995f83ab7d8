package models

import (
	"time"
)

// IdentityKind distinguishes the two identity values tracked per user
type IdentityKind string

const (
	IdentityKindDisplayName IdentityKind = "display_name"
	IdentityKindHandle      IdentityKind = "handle"
)

// IdentityHistory is an append-only record of a user's display name or
// handle at a point in time. Consecutive repeats of the same value are
// deduplicated on write.
type IdentityHistory struct {
	ID        int64        `db:"id"`
	UserID    int64        `db:"user_id"`
	Kind      IdentityKind `db:"kind"`
	Value     string       `db:"value"`
	CreatedAt time.Time    `db:"created_at"`
}
