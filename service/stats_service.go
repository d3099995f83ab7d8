package service

import (
	"context"
	"fmt"

	"outlaw/config"
	"outlaw/dependencies/clock"
	"outlaw/models"
)

// statsService implements the StatsService interface
type statsService struct {
	uowFactory UnitOfWorkFactory
	cfg        *config.Config
	clock      clock.Clock
}

// NewStatsService creates a new stats service
func NewStatsService(uowFactory UnitOfWorkFactory, cfg *config.Config, clk clock.Clock) StatsService {
	return &statsService{
		uowFactory: uowFactory,
		cfg:        cfg,
		clock:      clk,
	}
}

func (s *statsService) Leaderboard(ctx context.Context, field models.LeaderboardField) ([]*models.LeaderboardEntry, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	entries, err := uow.UserRepository().TopUsers(ctx, field, s.cfg.LeaderboardLimit)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	for i, entry := range entries {
		entry.Rank = i + 1
	}

	return entries, nil
}

// GetProfile derives the renderable view of a user's state. The revive
// counter is recomputed with the same daily-reset rule Revive applies,
// without persisting the reset.
func (s *statsService) GetProfile(ctx context.Context, userID int64) (*models.Profile, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	user, err := uow.UserRepository().GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	now := s.clock.Now()

	profile := &models.Profile{
		UserID:       user.UserID,
		Balance:      user.Balance,
		TotalKills:   user.TotalKills,
		ReviveLimit:  s.cfg.ReviveDailyLimit,
		ClaimedToday: SameCalendarDay(user.DailyClaimedAt, now),
	}

	if user.IsDead(now) {
		profile.Dead = true
		profile.DeathRemaining = user.DeathUntil.Sub(now)
	}
	if user.IsProtected(now) {
		profile.Protected = true
		profile.ProtectRemaining = user.ProtectUntil.Sub(now)
	}

	used := revivesUsedToday(user.ReviveCount, user.ReviveCountDate, now)
	profile.RevivesLeft = s.cfg.ReviveDailyLimit - used
	if profile.RevivesLeft < 0 {
		profile.RevivesLeft = 0
	}

	return profile, nil
}
