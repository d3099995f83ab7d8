package service

import (
	"context"
	"fmt"

	"outlaw/config"
	"outlaw/dependencies/clock"
	"outlaw/models"

	log "github.com/sirupsen/logrus"
)

// groupService implements the GroupService interface
type groupService struct {
	uowFactory UnitOfWorkFactory
	cfg        *config.Config
	clock      clock.Clock
}

// NewGroupService creates a new group service
func NewGroupService(uowFactory UnitOfWorkFactory, cfg *config.Config, clk clock.Clock) GroupService {
	return &groupService{
		uowFactory: uowFactory,
		cfg:        cfg,
		clock:      clk,
	}
}

func (s *groupService) RegisterGroup(ctx context.Context, groupID, addedBy int64) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	if err := uow.GroupRepository().Ensure(ctx, groupID, addedBy); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.WithFields(log.Fields{
		"groupID": groupID,
		"addedBy": addedBy,
	}).Info("Group registered")

	return nil
}

// Claim assigns an unclaimed group to the user and credits the claim
// reward. A claim is permanent; a second claim is rejected with the
// existing claimant surfaced for display.
func (s *groupService) Claim(ctx context.Context, groupID, userID int64) (*models.ClaimResult, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	group, err := uow.GroupRepository().Get(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group != nil && group.ClaimedBy != nil {
		claimErr := &AlreadyClaimedError{ClaimedBy: *group.ClaimedBy}
		if group.ClaimedAt != nil {
			claimErr.ClaimedAt = *group.ClaimedAt
		}
		return nil, claimErr
	}

	now := s.clock.Now()
	if err := uow.GroupRepository().SetClaim(ctx, groupID, userID, now); err != nil {
		return nil, err
	}

	if _, err := uow.UserRepository().GetOrCreate(ctx, userID); err != nil {
		return nil, err
	}

	reward := s.cfg.GroupClaimReward
	details := fmt.Sprintf("Claimed group %d", groupID)
	if err := recordBalanceChange(ctx, uow, userID, models.TransactionTypeGroupClaim, reward, details); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.WithFields(log.Fields{
		"groupID": groupID,
		"userID":  userID,
		"reward":  reward,
	}).Info("Group claimed")

	return &models.ClaimResult{
		GroupID:   groupID,
		Reward:    reward,
		ClaimedAt: now,
	}, nil
}

func (s *groupService) GetOwnership(ctx context.Context, groupID int64) (*models.Group, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	group, err := uow.GroupRepository().Get(ctx, groupID)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return group, nil
}
