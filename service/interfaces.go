package service

import (
	"context"
	"time"

	"outlaw/events"
	"outlaw/models"
)

// UserRepository defines the interface for account data access
type UserRepository interface {
	// GetOrCreate retrieves a user's account, creating it with default
	// values (starting balance, no windows) on first access
	GetOrCreate(ctx context.Context, userID int64) (*models.User, error)

	// Update applies a closed field patch, inserting a default row first
	// if the user has never been seen
	Update(ctx context.Context, userID int64, patch models.UserUpdate) error

	// AdjustBalance adds delta to the user's balance, creating the row
	// if needed. No floor is enforced at this layer
	AdjustBalance(ctx context.Context, userID int64, delta int64) error

	// IncrementKills atomically increments the kill counter and returns
	// the new total
	IncrementKills(ctx context.Context, userID int64) (int64, error)

	// TopUsers returns the top users by the given field, descending
	TopUsers(ctx context.Context, field models.LeaderboardField, limit int) ([]*models.LeaderboardEntry, error)
}

// BalanceHistoryRepository defines the interface for the append-only ledger
type BalanceHistoryRepository interface {
	// Record appends a new ledger entry
	Record(ctx context.Context, entry *models.BalanceHistory) error

	// GetByUser returns ledger entries for a user, newest first
	GetByUser(ctx context.Context, userID int64, limit int) ([]*models.BalanceHistory, error)
}

// IdentityHistoryRepository defines the interface for identity tracking
type IdentityHistoryRepository interface {
	// RecordIfChanged appends an entry unless it repeats the latest
	// value of the same kind; returns true if an entry was written
	RecordIfChanged(ctx context.Context, userID int64, kind models.IdentityKind, value string) (bool, error)

	// GetByUser returns all identity entries for a user, newest first
	GetByUser(ctx context.Context, userID int64) ([]*models.IdentityHistory, error)
}

// GroupRepository defines the interface for group claim data access
type GroupRepository interface {
	// Ensure records a group the first time it is seen
	Ensure(ctx context.Context, groupID, addedBy int64) error

	// Get returns the group row, or nil if never seen
	Get(ctx context.Context, groupID int64) (*models.Group, error)

	// SetClaim writes the claim fields unconditionally; the engine is
	// responsible for rejecting a second claim
	SetClaim(ctx context.Context, groupID, userID int64, claimedAt time.Time) error
}

// UserService defines the interface for account and identity operations
type UserService interface {
	// GetOrCreateUser retrieves an account, creating it with defaults
	GetOrCreateUser(ctx context.Context, userID int64) (*models.User, error)

	// RecordIdentity captures the actor's current display name and
	// handle, deduplicated against the latest recorded values
	RecordIdentity(ctx context.Context, userID int64, displayName, handle string) error

	// GetIdentityHistory returns identity entries, newest first
	GetIdentityHistory(ctx context.Context, userID int64) ([]*models.IdentityHistory, error)

	// GetBalanceHistory returns ledger entries, newest first
	GetBalanceHistory(ctx context.Context, userID int64, limit int) ([]*models.BalanceHistory, error)
}

// EconomyService defines the interface for money operations
type EconomyService interface {
	// Give transfers amount from one user to another, taxing the
	// transfer and routing the tax to the owner account
	Give(ctx context.Context, fromID, toID, amount int64) (*models.TransferResult, error)

	// ClaimDaily grants the daily reward, at most once per UTC calendar day
	ClaimDaily(ctx context.Context, userID int64) (*models.DailyClaimResult, error)
}

// CombatService defines the interface for the PvP state machine
type CombatService interface {
	// Rob attempts to steal amount from the target on a fair coin flip
	Rob(ctx context.Context, actorID, targetID, amount int64) (*models.RobResult, error)

	// Kill opens a death window on the target and rewards the actor
	Kill(ctx context.Context, actorID, targetID int64) (*models.KillResult, error)

	// Protect buys the actor a protection window
	Protect(ctx context.Context, actorID int64) (*models.ProtectResult, error)

	// Revive clears the target's death window at the actor's expense,
	// subject to the actor's daily revive cap
	Revive(ctx context.Context, actorID, targetID int64) (*models.ReviveResult, error)
}

// GroupService defines the interface for group registration and claiming
type GroupService interface {
	// RegisterGroup records a group the first time the bot sees it
	RegisterGroup(ctx context.Context, groupID, addedBy int64) error

	// Claim assigns an unclaimed group to the user and credits the reward
	Claim(ctx context.Context, groupID, userID int64) (*models.ClaimResult, error)

	// GetOwnership returns the group row, or nil if never seen
	GetOwnership(ctx context.Context, groupID int64) (*models.Group, error)
}

// StatsService defines the interface for read-only reporting
type StatsService interface {
	// Leaderboard returns the top users by the given field
	Leaderboard(ctx context.Context, field models.LeaderboardField) ([]*models.LeaderboardEntry, error)

	// GetProfile derives the human-readable view of a user's state
	// without mutating anything beyond lazy row creation
	GetProfile(ctx context.Context, userID int64) (*models.Profile, error)
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(event events.Event)
}

// UnitOfWork defines the interface for transactional repository operations
type UnitOfWork interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) error

	// Commit commits the transaction and flushes pending events
	Commit() error

	// Rollback rolls back the transaction and discards pending events
	Rollback() error

	// Repository getters
	UserRepository() UserRepository
	BalanceHistoryRepository() BalanceHistoryRepository
	IdentityHistoryRepository() IdentityHistoryRepository
	GroupRepository() GroupRepository
	EventBus() EventPublisher
}

// UnitOfWorkFactory defines the interface for creating UnitOfWork instances
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}
