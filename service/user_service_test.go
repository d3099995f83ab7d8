package service

import (
	"context"
	"testing"

	"outlaw/models"

	"github.com/stretchr/testify/assert"
)

func TestUserService_RecordIdentity_SkipsUnchangedValues(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockIdentityRepo := new(MockIdentityHistoryRepository)

	mockUoW.SetRepositories(nil, nil, mockIdentityRepo, nil)

	svc := NewUserService(mockFactory)

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	// display name changed, handle did not
	mockIdentityRepo.On("RecordIfChanged", ctx, int64(1), models.IdentityKindDisplayName, "New Name").Return(true, nil)
	mockIdentityRepo.On("RecordIfChanged", ctx, int64(1), models.IdentityKindHandle, "samehandle").Return(false, nil)

	err := svc.RecordIdentity(ctx, 1, "New Name", "samehandle")

	assert.NoError(t, err)
	mockIdentityRepo.AssertExpectations(t)
}

func TestUserService_RecordIdentity_EmptyValuesNotRecorded(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockIdentityRepo := new(MockIdentityHistoryRepository)

	mockUoW.SetRepositories(nil, nil, mockIdentityRepo, nil)

	svc := NewUserService(mockFactory)

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockIdentityRepo.On("RecordIfChanged", ctx, int64(1), models.IdentityKindHandle, "handle").Return(true, nil)

	err := svc.RecordIdentity(ctx, 1, "", "handle")

	assert.NoError(t, err)
	mockIdentityRepo.AssertNotCalled(t, "RecordIfChanged", ctx, int64(1), models.IdentityKindDisplayName, "")
}

func TestUserService_GetOrCreateUser(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockUserRepo := new(MockUserRepository)

	mockUoW.SetRepositories(mockUserRepo, nil, nil, nil)

	svc := NewUserService(mockFactory)

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	expected := &models.User{UserID: 42, Balance: 100}
	mockUserRepo.On("GetOrCreate", ctx, int64(42)).Return(expected, nil)

	user, err := svc.GetOrCreateUser(ctx, 42)

	assert.NoError(t, err)
	assert.Equal(t, expected, user)
}

func TestUserService_GetIdentityHistory(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockIdentityRepo := new(MockIdentityHistoryRepository)

	mockUoW.SetRepositories(nil, nil, mockIdentityRepo, nil)

	svc := NewUserService(mockFactory)

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	entries := []*models.IdentityHistory{
		{ID: 2, UserID: 1, Kind: models.IdentityKindDisplayName, Value: "New Name"},
		{ID: 1, UserID: 1, Kind: models.IdentityKindHandle, Value: "oldhandle"},
	}
	mockIdentityRepo.On("GetByUser", ctx, int64(1)).Return(entries, nil)

	got, err := svc.GetIdentityHistory(ctx, 1)

	assert.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestUserService_GetBalanceHistory(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockBalanceRepo := new(MockBalanceHistoryRepository)

	mockUoW.SetRepositories(nil, mockBalanceRepo, nil, nil)

	svc := NewUserService(mockFactory)

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	entries := []*models.BalanceHistory{
		{ID: 2, UserID: 1, TransactionType: models.TransactionTypeDaily, Amount: 100},
		{ID: 1, UserID: 1, TransactionType: models.TransactionTypeGiveIn, Amount: 47},
	}
	mockBalanceRepo.On("GetByUser", ctx, int64(1), 15).Return(entries, nil)

	got, err := svc.GetBalanceHistory(ctx, 1, 15)

	assert.NoError(t, err)
	assert.Equal(t, entries, got)
}
