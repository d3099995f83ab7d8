package service

import (
	"context"
	"time"

	"outlaw/events"
	"outlaw/models"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetOrCreate(ctx context.Context, userID int64) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, userID int64, patch models.UserUpdate) error {
	args := m.Called(ctx, userID, patch)
	return args.Error(0)
}

func (m *MockUserRepository) AdjustBalance(ctx context.Context, userID int64, delta int64) error {
	args := m.Called(ctx, userID, delta)
	return args.Error(0)
}

func (m *MockUserRepository) IncrementKills(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) TopUsers(ctx context.Context, field models.LeaderboardField, limit int) ([]*models.LeaderboardEntry, error) {
	args := m.Called(ctx, field, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.LeaderboardEntry), args.Error(1)
}

// MockBalanceHistoryRepository is a mock implementation of BalanceHistoryRepository
type MockBalanceHistoryRepository struct {
	mock.Mock
}

func (m *MockBalanceHistoryRepository) Record(ctx context.Context, entry *models.BalanceHistory) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockBalanceHistoryRepository) GetByUser(ctx context.Context, userID int64, limit int) ([]*models.BalanceHistory, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.BalanceHistory), args.Error(1)
}

// MockIdentityHistoryRepository is a mock implementation of IdentityHistoryRepository
type MockIdentityHistoryRepository struct {
	mock.Mock
}

func (m *MockIdentityHistoryRepository) RecordIfChanged(ctx context.Context, userID int64, kind models.IdentityKind, value string) (bool, error) {
	args := m.Called(ctx, userID, kind, value)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdentityHistoryRepository) GetByUser(ctx context.Context, userID int64) ([]*models.IdentityHistory, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.IdentityHistory), args.Error(1)
}

// MockGroupRepository is a mock implementation of GroupRepository
type MockGroupRepository struct {
	mock.Mock
}

func (m *MockGroupRepository) Ensure(ctx context.Context, groupID, addedBy int64) error {
	args := m.Called(ctx, groupID, addedBy)
	return args.Error(0)
}

func (m *MockGroupRepository) Get(ctx context.Context, groupID int64) (*models.Group, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Group), args.Error(1)
}

func (m *MockGroupRepository) SetClaim(ctx context.Context, groupID, userID int64, claimedAt time.Time) error {
	args := m.Called(ctx, groupID, userID, claimedAt)
	return args.Error(0)
}

// recordingPublisher collects published events for assertions
type recordingPublisher struct {
	published []events.Event
}

func (p *recordingPublisher) Publish(e events.Event) {
	p.published = append(p.published, e)
}

// MockUnitOfWork is a mock implementation of UnitOfWork. Repository
// getters return whatever SetRepositories installed rather than going
// through testify expectations, so tests only declare expectations for
// the lifecycle calls.
type MockUnitOfWork struct {
	mock.Mock
	userRepo     UserRepository
	balanceRepo  BalanceHistoryRepository
	identityRepo IdentityHistoryRepository
	groupRepo    GroupRepository
	bus          *recordingPublisher
}

// SetRepositories installs the repositories the getters will return
func (m *MockUnitOfWork) SetRepositories(userRepo UserRepository, balanceRepo BalanceHistoryRepository, identityRepo IdentityHistoryRepository, groupRepo GroupRepository) {
	m.userRepo = userRepo
	m.balanceRepo = balanceRepo
	m.identityRepo = identityRepo
	m.groupRepo = groupRepo
	m.bus = &recordingPublisher{}
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) UserRepository() UserRepository {
	return m.userRepo
}

func (m *MockUnitOfWork) BalanceHistoryRepository() BalanceHistoryRepository {
	return m.balanceRepo
}

func (m *MockUnitOfWork) IdentityHistoryRepository() IdentityHistoryRepository {
	return m.identityRepo
}

func (m *MockUnitOfWork) GroupRepository() GroupRepository {
	return m.groupRepo
}

func (m *MockUnitOfWork) EventBus() EventPublisher {
	return m.bus
}

// PublishedEvents returns the events published during the unit of work
func (m *MockUnitOfWork) PublishedEvents() []events.Event {
	if m.bus == nil {
		return nil
	}
	return m.bus.published
}

// MockUnitOfWorkFactory is a mock implementation of UnitOfWorkFactory
type MockUnitOfWorkFactory struct {
	mock.Mock
}

func (m *MockUnitOfWorkFactory) Create() UnitOfWork {
	args := m.Called()
	return args.Get(0).(UnitOfWork)
}
