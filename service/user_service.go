package service

import (
	"context"
	"fmt"

	"outlaw/models"

	log "github.com/sirupsen/logrus"
)

// userService implements the UserService interface
type userService struct {
	uowFactory UnitOfWorkFactory
}

// NewUserService creates a new user service
func NewUserService(uowFactory UnitOfWorkFactory) UserService {
	return &userService{uowFactory: uowFactory}
}

func (s *userService) GetOrCreateUser(ctx context.Context, userID int64) (*models.User, error) {
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

	return user, nil
}

// RecordIdentity captures the actor's current display name and handle.
// Repeats of the latest recorded value are skipped, so the history only
// grows on actual changes.
func (s *userService) RecordIdentity(ctx context.Context, userID int64, displayName, handle string) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	repo := uow.IdentityHistoryRepository()

	changed := false
	if displayName != "" {
		written, err := repo.RecordIfChanged(ctx, userID, models.IdentityKindDisplayName, displayName)
		if err != nil {
			return err
		}
		changed = changed || written
	}
	if handle != "" {
		written, err := repo.RecordIfChanged(ctx, userID, models.IdentityKindHandle, handle)
		if err != nil {
			return err
		}
		changed = changed || written
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	if changed {
		log.WithFields(log.Fields{
			"userID":      userID,
			"displayName": displayName,
			"handle":      handle,
		}).Debug("Recorded identity change")
	}

	return nil
}

func (s *userService) GetIdentityHistory(ctx context.Context, userID int64) ([]*models.IdentityHistory, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	entries, err := uow.IdentityHistoryRepository().GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return entries, nil
}

func (s *userService) GetBalanceHistory(ctx context.Context, userID int64, limit int) ([]*models.BalanceHistory, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	entries, err := uow.BalanceHistoryRepository().GetByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return entries, nil
}
