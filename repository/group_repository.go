package repository

import (
	"context"
	"fmt"
	"time"

	"outlaw/database"
	"outlaw/models"

	"github.com/jackc/pgx/v5"
)

// GroupRepository implements the service.GroupRepository interface
type GroupRepository struct {
	q queryable
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db *database.DB) *GroupRepository {
	return &GroupRepository{q: db.Pool}
}

// newGroupRepositoryWithTx creates a new group repository with a transaction
func newGroupRepositoryWithTx(tx queryable) *GroupRepository {
	return &GroupRepository{q: tx}
}

// Ensure records a group the first time it is seen. Subsequent calls
// are no-ops.
func (r *GroupRepository) Ensure(ctx context.Context, groupID, addedBy int64) error {
	query := `
		INSERT INTO groups (group_id, added_by)
		VALUES ($1, $2)
		ON CONFLICT (group_id) DO NOTHING
	`
	if _, err := r.q.Exec(ctx, query, groupID, addedBy); err != nil {
		return fmt.Errorf("failed to ensure group %d: %w", groupID, err)
	}
	return nil
}

// Get returns the group row, or nil if the group has never been seen.
func (r *GroupRepository) Get(ctx context.Context, groupID int64) (*models.Group, error) {
	query := `
		SELECT group_id, added_by, added_at, claimed_by, claimed_at
		FROM groups
		WHERE group_id = $1
	`

	var group models.Group
	err := r.q.QueryRow(ctx, query, groupID).Scan(
		&group.GroupID,
		&group.AddedBy,
		&group.AddedAt,
		&group.ClaimedBy,
		&group.ClaimedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group %d: %w", groupID, err)
	}

	return &group, nil
}

// SetClaim writes the claim fields, creating the group row if it was
// never registered. The overwrite is unconditional; rejecting a second
// claim is the engine's responsibility.
func (r *GroupRepository) SetClaim(ctx context.Context, groupID, userID int64, claimedAt time.Time) error {
	if err := r.Ensure(ctx, groupID, userID); err != nil {
		return err
	}

	query := `
		UPDATE groups
		SET claimed_by = $1, claimed_at = $2
		WHERE group_id = $3
	`
	if _, err := r.q.Exec(ctx, query, userID, claimedAt, groupID); err != nil {
		return fmt.Errorf("failed to set claim on group %d: %w", groupID, err)
	}

	return nil
}
