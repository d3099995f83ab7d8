package repository

import (
	"context"
	"fmt"

	"outlaw/database"
	"outlaw/events"
	"outlaw/service"

	"github.com/jackc/pgx/v5"
)

// unitOfWork implements the service.UnitOfWork interface
type unitOfWork struct {
	db               *database.DB
	tx               pgx.Tx
	ctx              context.Context
	startingBalance  int64
	transactionalBus *events.TransactionalBus
	userRepo         service.UserRepository
	balanceRepo      service.BalanceHistoryRepository
	identityRepo     service.IdentityHistoryRepository
	groupRepo        service.GroupRepository
}

type unitOfWorkFactory struct {
	db              *database.DB
	eventBus        *events.Bus
	startingBalance int64
}

// NewUnitOfWorkFactory creates a new UnitOfWork factory
func NewUnitOfWorkFactory(db *database.DB, eventBus *events.Bus, startingBalance int64) service.UnitOfWorkFactory {
	return &unitOfWorkFactory{
		db:              db,
		eventBus:        eventBus,
		startingBalance: startingBalance,
	}
}

func (f *unitOfWorkFactory) Create() service.UnitOfWork {
	return &unitOfWork{
		db:               f.db,
		startingBalance:  f.startingBalance,
		transactionalBus: events.NewTransactionalBus(f.eventBus),
	}
}

// Begin starts a new transaction
func (u *unitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	u.tx = tx
	u.ctx = ctx

	u.userRepo = newUserRepositoryWithTx(tx, u.startingBalance)
	u.balanceRepo = newBalanceHistoryRepositoryWithTx(tx)
	u.identityRepo = newIdentityHistoryRepositoryWithTx(tx)
	u.groupRepo = newGroupRepositoryWithTx(tx)

	return nil
}

// Commit commits the transaction and flushes pending events
func (u *unitOfWork) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}

	if err := u.tx.Commit(u.ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	u.tx = nil

	if u.transactionalBus != nil {
		u.transactionalBus.Flush()
	}

	return nil
}

// Rollback rolls back the transaction and discards pending events
func (u *unitOfWork) Rollback() error {
	if u.tx == nil {
		return nil // Nothing to rollback
	}

	err := u.tx.Rollback(u.ctx)
	if err != nil && err != pgx.ErrTxClosed {
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}

	u.tx = nil

	if u.transactionalBus != nil {
		u.transactionalBus.Discard()
	}

	return nil
}

// UserRepository returns the user repository for this unit of work
func (u *unitOfWork) UserRepository() service.UserRepository {
	if u.userRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.userRepo
}

// BalanceHistoryRepository returns the balance history repository for this unit of work
func (u *unitOfWork) BalanceHistoryRepository() service.BalanceHistoryRepository {
	if u.balanceRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.balanceRepo
}

// IdentityHistoryRepository returns the identity history repository for this unit of work
func (u *unitOfWork) IdentityHistoryRepository() service.IdentityHistoryRepository {
	if u.identityRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.identityRepo
}

// GroupRepository returns the group repository for this unit of work
func (u *unitOfWork) GroupRepository() service.GroupRepository {
	if u.groupRepo == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.groupRepo
}

// EventBus returns the transactional event bus for this unit of work
func (u *unitOfWork) EventBus() service.EventPublisher {
	if u.transactionalBus == nil {
		panic("unit of work not started - call Begin() first")
	}
	return u.transactionalBus
}
