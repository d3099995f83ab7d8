package service

import (
	"context"
	"testing"
	"time"

	"outlaw/dependencies/mocks"
	"outlaw/models"

	"github.com/stretchr/testify/assert"
)

func setupStatsMocks() (*MockUnitOfWorkFactory, *MockUnitOfWork, *MockUserRepository) {
	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockUserRepo := new(MockUserRepository)

	mockUoW.SetRepositories(mockUserRepo, nil, nil, nil)
	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", context.Background()).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	return mockFactory, mockUoW, mockUserRepo
}

func TestStatsService_Leaderboard_RanksAssigned(t *testing.T) {
	ctx := context.Background()
	mockFactory, _, mockUserRepo := setupStatsMocks()

	cfg := testConfig()
	svc := NewStatsService(mockFactory, cfg, mocks.NewMockClock(testNow))

	mockUserRepo.On("TopUsers", ctx, models.LeaderboardFieldBalance, cfg.LeaderboardLimit).Return([]*models.LeaderboardEntry{
		{UserID: 3, Value: 900},
		{UserID: 1, Value: 500},
		{UserID: 2, Value: 100},
	}, nil)

	entries, err := svc.Leaderboard(ctx, models.LeaderboardFieldBalance)

	assert.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, int64(3), entries[0].UserID)
	assert.Equal(t, 3, entries[2].Rank)
}

func TestStatsService_GetProfile_AliveUnprotected(t *testing.T) {
	ctx := context.Background()
	mockFactory, _, mockUserRepo := setupStatsMocks()

	cfg := testConfig()
	svc := NewStatsService(mockFactory, cfg, mocks.NewMockClock(testNow))

	mockUserRepo.On("GetOrCreate", ctx, int64(1)).Return(&models.User{
		UserID: 1, Balance: 250, TotalKills: 5,
		DeathUntil: models.Epoch, ProtectUntil: models.Epoch,
	}, nil)

	profile, err := svc.GetProfile(ctx, 1)

	assert.NoError(t, err)
	assert.False(t, profile.Dead)
	assert.False(t, profile.Protected)
	assert.Equal(t, int64(250), profile.Balance)
	assert.Equal(t, int64(5), profile.TotalKills)
	assert.Equal(t, cfg.ReviveDailyLimit, profile.RevivesLeft)
	assert.False(t, profile.ClaimedToday)
}

func TestStatsService_GetProfile_DeadAndProtectedRemaining(t *testing.T) {
	ctx := context.Background()
	mockFactory, _, mockUserRepo := setupStatsMocks()

	svc := NewStatsService(mockFactory, testConfig(), mocks.NewMockClock(testNow))

	mockUserRepo.On("GetOrCreate", ctx, int64(1)).Return(&models.User{
		UserID:       1,
		Balance:      250,
		DeathUntil:   testNow.Add(2 * time.Hour),
		ProtectUntil: testNow.Add(30 * time.Minute),
	}, nil)

	profile, err := svc.GetProfile(ctx, 1)

	assert.NoError(t, err)
	assert.True(t, profile.Dead)
	assert.Equal(t, 2*time.Hour, profile.DeathRemaining)
	assert.True(t, profile.Protected)
	assert.Equal(t, 30*time.Minute, profile.ProtectRemaining)
}

func TestStatsService_GetProfile_ReviveResetMatchesReviveRule(t *testing.T) {
	ctx := context.Background()
	mockFactory, _, mockUserRepo := setupStatsMocks()

	cfg := testConfig()
	svc := NewStatsService(mockFactory, cfg, mocks.NewMockClock(testNow))

	// counter maxed yesterday reads as a fresh limit today, exactly as
	// the revive path would compute it
	mockUserRepo.On("GetOrCreate", ctx, int64(1)).Return(&models.User{
		UserID: 1, Balance: 250,
		ReviveCount:     3,
		ReviveCountDate: CalendarDay(testNow.Add(-24 * time.Hour)),
	}, nil)

	profile, err := svc.GetProfile(ctx, 1)

	assert.NoError(t, err)
	assert.Equal(t, cfg.ReviveDailyLimit, profile.RevivesLeft)
}

func TestStatsService_GetProfile_RevivesUsedToday(t *testing.T) {
	ctx := context.Background()
	mockFactory, _, mockUserRepo := setupStatsMocks()

	cfg := testConfig()
	svc := NewStatsService(mockFactory, cfg, mocks.NewMockClock(testNow))

	mockUserRepo.On("GetOrCreate", ctx, int64(1)).Return(&models.User{
		UserID: 1, Balance: 250,
		ReviveCount:     2,
		ReviveCountDate: CalendarDay(testNow),
		DailyClaimedAt:  testNow.Add(-time.Hour),
	}, nil)

	profile, err := svc.GetProfile(ctx, 1)

	assert.NoError(t, err)
	assert.Equal(t, cfg.ReviveDailyLimit-2, profile.RevivesLeft)
	assert.True(t, profile.ClaimedToday)
}
