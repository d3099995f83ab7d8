package service

import (
	"context"
	"fmt"

	"outlaw/config"
	"outlaw/dependencies/clock"
	"outlaw/dependencies/random"
	"outlaw/events"
	"outlaw/models"

	log "github.com/sirupsen/logrus"
)

// combatService implements the CombatService interface
type combatService struct {
	uowFactory UnitOfWorkFactory
	cfg        *config.Config
	clock      clock.Clock
	rng        random.Random
}

// NewCombatService creates a new combat service
func NewCombatService(uowFactory UnitOfWorkFactory, cfg *config.Config, clk clock.Clock, rng random.Random) CombatService {
	return &combatService{
		uowFactory: uowFactory,
		cfg:        cfg,
		clock:      clk,
		rng:        rng,
	}
}

// Rob attempts to steal amount from the target. A fair coin decides the
// outcome. On success the full amount moves target to actor; on failure
// the actor is charged a fixed penalty, but only if their balance covers
// it in full.
func (s *combatService) Rob(ctx context.Context, actorID, targetID, amount int64) (*models.RobResult, error) {
	if actorID == targetID {
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

	actor, err := uow.UserRepository().GetOrCreate(ctx, actorID)
	if err != nil {
		return nil, err
	}
	target, err := uow.UserRepository().GetOrCreate(ctx, targetID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if actor.IsDead(now) {
		return nil, ErrActorDead
	}
	if target.IsDead(now) {
		return nil, ErrTargetDead
	}
	if target.IsProtected(now) {
		return nil, ErrTargetProtected
	}
	if target.Balance < amount {
		return nil, ErrTargetInsufficientFunds
	}

	success := s.rng.Intn(2) == 0

	result := &models.RobResult{Success: success}
	if success {
		lossDetails := fmt.Sprintf("Robbed by user %d", actorID)
		if err := recordBalanceChange(ctx, uow, targetID, models.TransactionTypeRobLoss, -amount, lossDetails); err != nil {
			return nil, err
		}
		gainDetails := fmt.Sprintf("Robbed user %d", targetID)
		if err := recordBalanceChange(ctx, uow, actorID, models.TransactionTypeRobGain, amount, gainDetails); err != nil {
			return nil, err
		}
		result.Amount = amount

		uow.EventBus().Publish(events.NotificationEvent{
			RecipientID: targetID,
			Message:     fmt.Sprintf("You were robbed of %d!", amount),
		})
	} else if actor.Balance >= s.cfg.RobPenalty {
		// No partial penalty: a broke robber walks away uncharged.
		if err := recordBalanceChange(ctx, uow, actorID, models.TransactionTypeRobLoss, -s.cfg.RobPenalty, "Failed robbery"); err != nil {
			return nil, err
		}
		result.Penalized = true
		result.Penalty = s.cfg.RobPenalty
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.WithFields(log.Fields{
		"actorID":  actorID,
		"targetID": targetID,
		"amount":   amount,
		"success":  success,
	}).Info("Robbery attempted")

	return result, nil
}

// Kill always succeeds once its preconditions pass; only the reward
// magnitude is random, uniform over the configured inclusive range.
func (s *combatService) Kill(ctx context.Context, actorID, targetID int64) (*models.KillResult, error) {
	if actorID == targetID {
		return nil, ErrSelfTarget
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	actor, err := uow.UserRepository().GetOrCreate(ctx, actorID)
	if err != nil {
		return nil, err
	}
	target, err := uow.UserRepository().GetOrCreate(ctx, targetID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if actor.IsDead(now) {
		return nil, ErrActorDead
	}
	if target.IsDead(now) {
		return nil, ErrTargetDead
	}
	if target.IsProtected(now) {
		return nil, ErrTargetProtected
	}

	reward := s.cfg.MinKillReward + int64(s.rng.Intn(int(s.cfg.MaxKillReward-s.cfg.MinKillReward)+1))

	rewardDetails := fmt.Sprintf("Killed user %d", targetID)
	if err := recordBalanceChange(ctx, uow, actorID, models.TransactionTypeKillGain, reward, rewardDetails); err != nil {
		return nil, err
	}

	totalKills, err := uow.UserRepository().IncrementKills(ctx, actorID)
	if err != nil {
		return nil, err
	}

	deathUntil := now.Add(s.cfg.DeathDuration)
	if err := uow.UserRepository().Update(ctx, targetID, models.UserUpdate{DeathUntil: &deathUntil}); err != nil {
		return nil, err
	}

	uow.EventBus().Publish(events.NotificationEvent{
		RecipientID: targetID,
		Message:     fmt.Sprintf("You were killed! You are dead for %s unless someone revives you.", s.cfg.DeathDuration),
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.WithFields(log.Fields{
		"actorID":    actorID,
		"targetID":   targetID,
		"reward":     reward,
		"totalKills": totalKills,
	}).Info("Kill completed")

	return &models.KillResult{
		Reward:     reward,
		TotalKills: totalKills,
		DeathUntil: deathUntil,
	}, nil
}

// Protect buys the actor a protection window. Re-purchase while a
// window is open is rejected and leaves the window unchanged.
func (s *combatService) Protect(ctx context.Context, actorID int64) (*models.ProtectResult, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	actor, err := uow.UserRepository().GetOrCreate(ctx, actorID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if actor.IsProtected(now) {
		return nil, &AlreadyProtectedError{Until: actor.ProtectUntil}
	}
	if actor.Balance < s.cfg.ProtectCost {
		return nil, ErrInsufficientFunds
	}

	if err := recordBalanceChange(ctx, uow, actorID, models.TransactionTypeProtectCost, -s.cfg.ProtectCost, "Protection purchase"); err != nil {
		return nil, err
	}

	until := now.Add(s.cfg.ProtectDuration)
	if err := uow.UserRepository().Update(ctx, actorID, models.UserUpdate{ProtectUntil: &until}); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.WithFields(log.Fields{
		"actorID": actorID,
		"cost":    s.cfg.ProtectCost,
		"until":   until,
	}).Info("Protection purchased")

	return &models.ProtectResult{
		Cost:  s.cfg.ProtectCost,
		Until: until,
	}, nil
}

// Revive clears the target's death window at the actor's expense. The
// actor's daily revive counter resets on the first use of a new UTC
// calendar day; at the limit further revives are rejected. The reset is
// only persisted alongside a successful revive, so a rejected command
// leaves no trace.
func (s *combatService) Revive(ctx context.Context, actorID, targetID int64) (*models.ReviveResult, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	actor, err := uow.UserRepository().GetOrCreate(ctx, actorID)
	if err != nil {
		return nil, err
	}

	target := actor
	if targetID != actorID {
		target, err = uow.UserRepository().GetOrCreate(ctx, targetID)
		if err != nil {
			return nil, err
		}
	}

	now := s.clock.Now()
	if !target.IsDead(now) {
		return nil, ErrTargetNotDead
	}

	used := revivesUsedToday(actor.ReviveCount, actor.ReviveCountDate, now)
	if used >= s.cfg.ReviveDailyLimit {
		return nil, ErrReviveLimitReached
	}
	if actor.Balance < s.cfg.ReviveCost {
		return nil, ErrInsufficientFunds
	}

	var details string
	if targetID == actorID {
		details = "Self revive"
	} else {
		details = fmt.Sprintf("Revived user %d", targetID)
	}
	if err := recordBalanceChange(ctx, uow, actorID, models.TransactionTypeReviveCost, -s.cfg.ReviveCost, details); err != nil {
		return nil, err
	}

	newCount := used + 1
	today := CalendarDay(now)
	if err := uow.UserRepository().Update(ctx, actorID, models.UserUpdate{
		ReviveCount:     &newCount,
		ReviveCountDate: &today,
	}); err != nil {
		return nil, err
	}

	epoch := models.Epoch
	if err := uow.UserRepository().Update(ctx, targetID, models.UserUpdate{DeathUntil: &epoch}); err != nil {
		return nil, err
	}

	if targetID != actorID {
		uow.EventBus().Publish(events.NotificationEvent{
			RecipientID: targetID,
			Message:     fmt.Sprintf("User %d revived you. You are alive again!", actorID),
		})
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.WithFields(log.Fields{
		"actorID":  actorID,
		"targetID": targetID,
		"used":     newCount,
	}).Info("Revive completed")

	return &models.ReviveResult{
		TargetID:    targetID,
		Cost:        s.cfg.ReviveCost,
		RevivesUsed: newCount,
		ReviveLimit: s.cfg.ReviveDailyLimit,
		SelfRevive:  targetID == actorID,
	}, nil
}
