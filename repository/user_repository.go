package repository

import (
	"context"
	"fmt"
	"strings"

	"outlaw/database"
	"outlaw/models"
)

const userColumns = `user_id, balance, death_until, protect_until, revive_count,
		revive_count_date, total_kills, daily_claimed_at, created_at, updated_at`

// UserRepository implements the service.UserRepository interface
type UserRepository struct {
	q               queryable
	startingBalance int64
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB, startingBalance int64) *UserRepository {
	return &UserRepository{q: db.Pool, startingBalance: startingBalance}
}

// newUserRepositoryWithTx creates a new user repository with a transaction
func newUserRepositoryWithTx(tx queryable, startingBalance int64) *UserRepository {
	return &UserRepository{q: tx, startingBalance: startingBalance}
}

// ensureExists inserts a default row for the user if none exists yet.
// All other columns take their schema defaults.
func (r *UserRepository) ensureExists(ctx context.Context, userID int64) error {
	query := `
		INSERT INTO accounts (user_id, balance)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING
	`
	if _, err := r.q.Exec(ctx, query, userID, r.startingBalance); err != nil {
		return fmt.Errorf("failed to ensure account row for user %d: %w", userID, err)
	}
	return nil
}

// GetOrCreate retrieves a user's account, creating it with default
// values on first access.
func (r *UserRepository) GetOrCreate(ctx context.Context, userID int64) (*models.User, error) {
	if err := r.ensureExists(ctx, userID); err != nil {
		return nil, err
	}

	query := `SELECT ` + userColumns + ` FROM accounts WHERE user_id = $1`

	var user models.User
	err := r.q.QueryRow(ctx, query, userID).Scan(
		&user.UserID,
		&user.Balance,
		&user.DeathUntil,
		&user.ProtectUntil,
		&user.ReviveCount,
		&user.ReviveCountDate,
		&user.TotalKills,
		&user.DailyClaimedAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get account for user %d: %w", userID, err)
	}

	return &user, nil
}

// Update applies a closed field patch to a user's row, inserting a
// default row first if the user has never been seen.
func (r *UserRepository) Update(ctx context.Context, userID int64, patch models.UserUpdate) error {
	if err := r.ensureExists(ctx, userID); err != nil {
		return err
	}
	if patch.IsEmpty() {
		return nil
	}

	sets := []string{"updated_at = NOW()"}
	args := []any{userID}
	next := 2

	addSet := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, next))
		args = append(args, value)
		next++
	}

	if patch.Balance != nil {
		addSet("balance", *patch.Balance)
	}
	if patch.DeathUntil != nil {
		addSet("death_until", *patch.DeathUntil)
	}
	if patch.ProtectUntil != nil {
		addSet("protect_until", *patch.ProtectUntil)
	}
	if patch.ReviveCount != nil {
		addSet("revive_count", *patch.ReviveCount)
	}
	if patch.ReviveCountDate != nil {
		addSet("revive_count_date", *patch.ReviveCountDate)
	}
	if patch.TotalKills != nil {
		addSet("total_kills", *patch.TotalKills)
	}
	if patch.DailyClaimedAt != nil {
		addSet("daily_claimed_at", *patch.DailyClaimedAt)
	}

	query := fmt.Sprintf("UPDATE accounts SET %s WHERE user_id = $1", strings.Join(sets, ", "))
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update account for user %d: %w", userID, err)
	}

	return nil
}

// AdjustBalance ensures the user's row exists, then adds delta to the
// balance. No floor or ceiling is enforced at this layer.
func (r *UserRepository) AdjustBalance(ctx context.Context, userID int64, delta int64) error {
	if err := r.ensureExists(ctx, userID); err != nil {
		return err
	}

	query := `
		UPDATE accounts
		SET balance = balance + $1, updated_at = NOW()
		WHERE user_id = $2
	`
	if _, err := r.q.Exec(ctx, query, delta, userID); err != nil {
		return fmt.Errorf("failed to adjust balance for user %d: %w", userID, err)
	}

	return nil
}

// IncrementKills atomically increments a user's kill counter and
// returns the new total.
func (r *UserRepository) IncrementKills(ctx context.Context, userID int64) (int64, error) {
	if err := r.ensureExists(ctx, userID); err != nil {
		return 0, err
	}

	query := `
		UPDATE accounts
		SET total_kills = total_kills + 1, updated_at = NOW()
		WHERE user_id = $1
		RETURNING total_kills
	`
	var totalKills int64
	if err := r.q.QueryRow(ctx, query, userID).Scan(&totalKills); err != nil {
		return 0, fmt.Errorf("failed to increment kills for user %d: %w", userID, err)
	}

	return totalKills, nil
}

// TopUsers returns the top users ranked by the given field, descending.
// The field is validated against the closed enumeration; ties fall back
// to storage order.
func (r *UserRepository) TopUsers(ctx context.Context, field models.LeaderboardField, limit int) ([]*models.LeaderboardEntry, error) {
	var column string
	switch field {
	case models.LeaderboardFieldBalance:
		column = "balance"
	case models.LeaderboardFieldKills:
		column = "total_kills"
	default:
		return nil, fmt.Errorf("unknown leaderboard field %q", field)
	}

	query := fmt.Sprintf(`SELECT user_id, %s FROM accounts ORDER BY %s DESC LIMIT $1`, column, column)

	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top users by %s: %w", column, err)
	}
	defer rows.Close()

	var entries []*models.LeaderboardEntry
	for rows.Next() {
		var entry models.LeaderboardEntry
		if err := rows.Scan(&entry.UserID, &entry.Value); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leaderboard entries: %w", err)
	}

	return entries, nil
}
