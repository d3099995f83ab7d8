package repository

import (
	"context"
	"fmt"

	"outlaw/database"
	"outlaw/models"

	"github.com/jackc/pgx/v5"
)

// IdentityHistoryRepository implements the service.IdentityHistoryRepository interface
type IdentityHistoryRepository struct {
	q queryable
}

// NewIdentityHistoryRepository creates a new identity history repository
func NewIdentityHistoryRepository(db *database.DB) *IdentityHistoryRepository {
	return &IdentityHistoryRepository{q: db.Pool}
}

// newIdentityHistoryRepositoryWithTx creates a new identity history repository with a transaction
func newIdentityHistoryRepositoryWithTx(tx queryable) *IdentityHistoryRepository {
	return &IdentityHistoryRepository{q: tx}
}

// RecordIfChanged appends an identity entry unless it repeats the most
// recently recorded value of the same kind for that user. Returns true
// if a new entry was written.
func (r *IdentityHistoryRepository) RecordIfChanged(ctx context.Context, userID int64, kind models.IdentityKind, value string) (bool, error) {
	query := `
		SELECT value
		FROM identity_history
		WHERE user_id = $1 AND kind = $2
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`

	var lastValue string
	err := r.q.QueryRow(ctx, query, userID, kind).Scan(&lastValue)
	if err != nil && err != pgx.ErrNoRows {
		return false, fmt.Errorf("failed to read last identity value for user %d: %w", userID, err)
	}
	if err == nil && lastValue == value {
		return false, nil
	}

	insert := `
		INSERT INTO identity_history (user_id, kind, value)
		VALUES ($1, $2, $3)
	`
	if _, err := r.q.Exec(ctx, insert, userID, kind, value); err != nil {
		return false, fmt.Errorf("failed to record identity change for user %d: %w", userID, err)
	}

	return true, nil
}

// GetByUser returns all identity entries for a user, newest first.
func (r *IdentityHistoryRepository) GetByUser(ctx context.Context, userID int64) ([]*models.IdentityHistory, error) {
	query := `
		SELECT id, user_id, kind, value, created_at
		FROM identity_history
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get identity history for user %d: %w", userID, err)
	}
	defer rows.Close()

	var entries []*models.IdentityHistory
	for rows.Next() {
		var entry models.IdentityHistory
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Kind, &entry.Value, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan identity history: %w", err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate identity history: %w", err)
	}

	return entries, nil
}
