package service

import (
	"context"
	"testing"
	"time"

	"outlaw/dependencies/mocks"
	"outlaw/events"
	"outlaw/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func TestEconomyService_Give_Success(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockUserRepo := new(MockUserRepository)
	mockBalanceRepo := new(MockBalanceHistoryRepository)

	mockUoW.SetRepositories(mockUserRepo, mockBalanceRepo, nil, nil)

	cfg := testConfig()
	svc := NewEconomyService(mockFactory, cfg, mocks.NewMockClock(testNow))

	sender := &models.User{UserID: 1, Balance: 100}
	receiver := &models.User{UserID: 2, Balance: 100}

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockUserRepo.On("GetOrCreate", ctx, int64(1)).Return(sender, nil)
	mockUserRepo.On("GetOrCreate", ctx, int64(2)).Return(receiver, nil)

	// give 50 at 5% tax: sender -50, receiver +47, owner +3
	mockUserRepo.On("AdjustBalance", ctx, int64(1), int64(-50)).Return(nil)
	mockUserRepo.On("AdjustBalance", ctx, int64(2), int64(47)).Return(nil)
	mockUserRepo.On("AdjustBalance", ctx, cfg.OwnerID, int64(3)).Return(nil)

	mockBalanceRepo.On("Record", ctx, mock.MatchedBy(func(h *models.BalanceHistory) bool {
		return h.UserID == 1 && h.TransactionType == models.TransactionTypeGiveOut && h.Amount == -50
	})).Return(nil)
	mockBalanceRepo.On("Record", ctx, mock.MatchedBy(func(h *models.BalanceHistory) bool {
		return h.UserID == 2 && h.TransactionType == models.TransactionTypeGiveIn && h.Amount == 47
	})).Return(nil)
	mockBalanceRepo.On("Record", ctx, mock.MatchedBy(func(h *models.BalanceHistory) bool {
		return h.UserID == cfg.OwnerID && h.TransactionType == models.TransactionTypeTax && h.Amount == 3
	})).Return(nil)

	result, err := svc.Give(ctx, 1, 2, 50)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, int64(50), result.Amount)
	assert.Equal(t, int64(3), result.Tax)
	assert.Equal(t, int64(47), result.NetAmount)
	assert.Equal(t, int64(50), result.NewSenderBalance)

	// three ledgered changes plus the owner notification
	published := mockUoW.PublishedEvents()
	assert.Len(t, published, 4)
	notification, ok := published[3].(events.NotificationEvent)
	assert.True(t, ok)
	assert.Equal(t, cfg.OwnerID, notification.RecipientID)

	mockUserRepo.AssertExpectations(t)
	mockBalanceRepo.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
}

func TestEconomyService_Give_ZeroTaxRate(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockUserRepo := new(MockUserRepository)
	mockBalanceRepo := new(MockBalanceHistoryRepository)

	mockUoW.SetRepositories(mockUserRepo, mockBalanceRepo, nil, nil)

	cfg := testConfig()
	cfg.TaxRate = 0
	svc := NewEconomyService(mockFactory, cfg, mocks.NewMockClock(testNow))

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockUserRepo.On("GetOrCreate", ctx, int64(1)).Return(&models.User{UserID: 1, Balance: 100}, nil)
	mockUserRepo.On("GetOrCreate", ctx, int64(2)).Return(&models.User{UserID: 2, Balance: 100}, nil)

	mockUserRepo.On("AdjustBalance", ctx, int64(1), int64(-50)).Return(nil)
	mockUserRepo.On("AdjustBalance", ctx, int64(2), int64(50)).Return(nil)
	mockUserRepo.On("AdjustBalance", ctx, cfg.OwnerID, int64(0)).Return(nil)

	mockBalanceRepo.On("Record", ctx, mock.MatchedBy(func(h *models.BalanceHistory) bool {
		return h.UserID == 1 && h.TransactionType == models.TransactionTypeGiveOut && h.Amount == -50
	})).Return(nil)
	mockBalanceRepo.On("Record", ctx, mock.MatchedBy(func(h *models.BalanceHistory) bool {
		return h.UserID == 2 && h.TransactionType == models.TransactionTypeGiveIn && h.Amount == 50
	})).Return(nil)
	// the zero-amount tax entry is still ledgered to the owner
	mockBalanceRepo.On("Record", ctx, mock.MatchedBy(func(h *models.BalanceHistory) bool {
		return h.UserID == cfg.OwnerID && h.TransactionType == models.TransactionTypeTax && h.Amount == 0
	})).Return(nil)

	result, err := svc.Give(ctx, 1, 2, 50)

	assert.NoError(t, err)
	assert.Equal(t, int64(0), result.Tax)
	assert.Equal(t, int64(50), result.NetAmount)

	// three ledgered changes and no owner notification
	published := mockUoW.PublishedEvents()
	assert.Len(t, published, 3)
	for _, ev := range published {
		_, isNotification := ev.(events.NotificationEvent)
		assert.False(t, isNotification)
	}

	mockUserRepo.AssertExpectations(t)
	mockBalanceRepo.AssertExpectations(t)
}

func TestEconomyService_Give_SelfTarget(t *testing.T) {
	mockFactory := new(MockUnitOfWorkFactory)
	svc := NewEconomyService(mockFactory, testConfig(), mocks.NewMockClock(testNow))

	result, err := svc.Give(context.Background(), 1, 1, 50)

	assert.ErrorIs(t, err, ErrSelfTarget)
	assert.Nil(t, result)
	mockFactory.AssertNotCalled(t, "Create")
}

func TestEconomyService_Give_NonPositiveAmount(t *testing.T) {
	mockFactory := new(MockUnitOfWorkFactory)
	svc := NewEconomyService(mockFactory, testConfig(), mocks.NewMockClock(testNow))

	for _, amount := range []int64{0, -10} {
		result, err := svc.Give(context.Background(), 1, 2, amount)
		assert.ErrorIs(t, err, ErrNonPositiveAmount)
		assert.Nil(t, result)
	}
	mockFactory.AssertNotCalled(t, "Create")
}

func TestEconomyService_Give_InsufficientFunds(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockUserRepo := new(MockUserRepository)

	mockUoW.SetRepositories(mockUserRepo, nil, nil, nil)

	svc := NewEconomyService(mockFactory, testConfig(), mocks.NewMockClock(testNow))

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockUserRepo.On("GetOrCreate", ctx, int64(1)).Return(&models.User{UserID: 1, Balance: 30}, nil)

	result, err := svc.Give(ctx, 1, 2, 50)

	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Nil(t, result)
	assert.Empty(t, mockUoW.PublishedEvents())
	mockUoW.AssertNotCalled(t, "Commit")
}

func TestEconomyService_ClaimDaily_Success(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockUserRepo := new(MockUserRepository)
	mockBalanceRepo := new(MockBalanceHistoryRepository)

	mockUoW.SetRepositories(mockUserRepo, mockBalanceRepo, nil, nil)

	clk := mocks.NewMockClock(testNow)
	svc := NewEconomyService(mockFactory, testConfig(), clk)

	// last claim was yesterday
	user := &models.User{UserID: 1, Balance: 100, DailyClaimedAt: testNow.Add(-24 * time.Hour)}

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockUserRepo.On("GetOrCreate", ctx, int64(1)).Return(user, nil)
	mockUserRepo.On("AdjustBalance", ctx, int64(1), int64(100)).Return(nil)
	mockUserRepo.On("Update", ctx, int64(1), mock.MatchedBy(func(p models.UserUpdate) bool {
		return p.DailyClaimedAt != nil && p.DailyClaimedAt.Equal(testNow)
	})).Return(nil)

	mockBalanceRepo.On("Record", ctx, mock.MatchedBy(func(h *models.BalanceHistory) bool {
		return h.UserID == 1 && h.TransactionType == models.TransactionTypeDaily && h.Amount == 100
	})).Return(nil)

	result, err := svc.ClaimDaily(ctx, 1)

	assert.NoError(t, err)
	assert.Equal(t, int64(100), result.Reward)
	assert.Equal(t, int64(200), result.NewBalance)

	mockUserRepo.AssertExpectations(t)
	mockBalanceRepo.AssertExpectations(t)
}

func TestEconomyService_ClaimDaily_AlreadyClaimedToday(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockUserRepo := new(MockUserRepository)

	mockUoW.SetRepositories(mockUserRepo, nil, nil, nil)

	svc := NewEconomyService(mockFactory, testConfig(), mocks.NewMockClock(testNow))

	// claimed earlier the same calendar day
	user := &models.User{UserID: 1, Balance: 200, DailyClaimedAt: testNow.Add(-3 * time.Hour)}

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockUserRepo.On("GetOrCreate", ctx, int64(1)).Return(user, nil)

	result, err := svc.ClaimDaily(ctx, 1)

	assert.ErrorIs(t, err, ErrDailyAlreadyClaimed)
	assert.Nil(t, result)
	mockUoW.AssertNotCalled(t, "Commit")
}

func TestEconomyService_ClaimDaily_MidnightBoundary(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockUserRepo := new(MockUserRepository)
	mockBalanceRepo := new(MockBalanceHistoryRepository)

	mockUoW.SetRepositories(mockUserRepo, mockBalanceRepo, nil, nil)

	// claimed at 23:59, clock now at 00:01 the next day: elapsed time is
	// two minutes but the calendar day changed, so the claim succeeds
	claimedAt := time.Date(2024, 6, 15, 23, 59, 0, 0, time.UTC)
	clk := mocks.NewMockClock(time.Date(2024, 6, 16, 0, 1, 0, 0, time.UTC))
	svc := NewEconomyService(mockFactory, testConfig(), clk)

	user := &models.User{UserID: 1, Balance: 100, DailyClaimedAt: claimedAt}

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockUserRepo.On("GetOrCreate", ctx, int64(1)).Return(user, nil)
	mockUserRepo.On("AdjustBalance", ctx, int64(1), int64(100)).Return(nil)
	mockUserRepo.On("Update", ctx, int64(1), mock.AnythingOfType("models.UserUpdate")).Return(nil)
	mockBalanceRepo.On("Record", ctx, mock.AnythingOfType("*models.BalanceHistory")).Return(nil)

	result, err := svc.ClaimDaily(ctx, 1)

	assert.NoError(t, err)
	assert.Equal(t, int64(100), result.Reward)
}
