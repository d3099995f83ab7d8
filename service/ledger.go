package service

import (
	"context"
	"fmt"

	"outlaw/events"
	"outlaw/models"
)

// recordBalanceChange applies a balance delta and appends the matching
// ledger entry in one step. Every balance mutation in the engine goes
// through here so a change can never land without its ledger row.
func recordBalanceChange(ctx context.Context, uow UnitOfWork, userID int64, txType models.TransactionType, amount int64, details string) error {
	if err := uow.UserRepository().AdjustBalance(ctx, userID, amount); err != nil {
		return fmt.Errorf("failed to adjust balance for user %d: %w", userID, err)
	}

	entry := &models.BalanceHistory{
		UserID:          userID,
		TransactionType: txType,
		Amount:          amount,
		Details:         details,
	}
	if err := uow.BalanceHistoryRepository().Record(ctx, entry); err != nil {
		return fmt.Errorf("failed to record ledger entry for user %d: %w", userID, err)
	}

	uow.EventBus().Publish(events.BalanceChangeEvent{
		UserID:          userID,
		TransactionType: txType,
		Amount:          amount,
		Details:         details,
	})

	return nil
}
