package service

import (
	"context"
	"fmt"
	"math"

	"outlaw/config"
	"outlaw/dependencies/clock"
	"outlaw/events"
	"outlaw/models"

	log "github.com/sirupsen/logrus"
)

// economyService implements the EconomyService interface
type economyService struct {
	uowFactory UnitOfWorkFactory
	cfg        *config.Config
	clock      clock.Clock
}

// NewEconomyService creates a new economy service
func NewEconomyService(uowFactory UnitOfWorkFactory, cfg *config.Config, clk clock.Clock) EconomyService {
	return &economyService{
		uowFactory: uowFactory,
		cfg:        cfg,
		clock:      clk,
	}
}

// transferTax computes the tax on a transfer, rounded up so any nonzero
// rate taxes every transfer by at least one unit.
func transferTax(amount int64, rate float64) int64 {
	return int64(math.Ceil(float64(amount) * rate))
}

// Give transfers amount from one user to another. The sender pays the
// full amount; the recipient receives the amount net of tax and the tax
// is routed to the owner account. All three ledger entries land in one
// transaction.
func (s *economyService) Give(ctx context.Context, fromID, toID, amount int64) (*models.TransferResult, error) {
	if fromID == toID {
		return nil, ErrSelfTarget
	}
	if amount <= 0 {
		return nil, ErrNonPositiveAmount
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	sender, err := uow.UserRepository().GetOrCreate(ctx, fromID)
	if err != nil {
		return nil, err
	}
	if sender.Balance < amount {
		return nil, ErrInsufficientFunds
	}

	if _, err := uow.UserRepository().GetOrCreate(ctx, toID); err != nil {
		return nil, err
	}

	tax := transferTax(amount, s.cfg.TaxRate)
	net := amount - tax

	outDetails := fmt.Sprintf("Transfer to user %d", toID)
	if err := recordBalanceChange(ctx, uow, fromID, models.TransactionTypeGiveOut, -amount, outDetails); err != nil {
		return nil, err
	}

	inDetails := fmt.Sprintf("Transfer from user %d", fromID)
	if err := recordBalanceChange(ctx, uow, toID, models.TransactionTypeGiveIn, net, inDetails); err != nil {
		return nil, err
	}

	// The tax entry is written even at a zero rate, so every transfer
	// produces exactly three ledger rows.
	taxDetails := fmt.Sprintf("Tax on transfer from user %d to user %d", fromID, toID)
	if err := recordBalanceChange(ctx, uow, s.cfg.OwnerID, models.TransactionTypeTax, tax, taxDetails); err != nil {
		return nil, err
	}

	if tax > 0 {
		uow.EventBus().Publish(events.NotificationEvent{
			RecipientID: s.cfg.OwnerID,
			Message:     fmt.Sprintf("Collected %d tax on a transfer of %d.", tax, amount),
		})
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.WithFields(log.Fields{
		"fromID": fromID,
		"toID":   toID,
		"amount": amount,
		"tax":    tax,
	}).Info("Transfer completed")

	return &models.TransferResult{
		Amount:           amount,
		Tax:              tax,
		NetAmount:        net,
		RecipientID:      toID,
		NewSenderBalance: sender.Balance - amount,
	}, nil
}

// ClaimDaily grants the daily reward at most once per UTC calendar day.
func (s *economyService) ClaimDaily(ctx context.Context, userID int64) (*models.DailyClaimResult, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	user, err := uow.UserRepository().GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if SameCalendarDay(user.DailyClaimedAt, now) {
		return nil, ErrDailyAlreadyClaimed
	}

	reward := s.cfg.DailyReward
	if err := recordBalanceChange(ctx, uow, userID, models.TransactionTypeDaily, reward, "Daily reward"); err != nil {
		return nil, err
	}

	if err := uow.UserRepository().Update(ctx, userID, models.UserUpdate{DailyClaimedAt: &now}); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.WithFields(log.Fields{
		"userID": userID,
		"reward": reward,
	}).Info("Daily reward claimed")

	return &models.DailyClaimResult{
		Reward:     reward,
		NewBalance: user.Balance + reward,
	}, nil
}
