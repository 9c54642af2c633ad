package database

import (
	"context"
	"testing"

	"github.com/amirhossein-jamali/expense-splitter/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-splitter/internal/domain/error"
	balanceUseCase "github.com/amirhossein-jamali/expense-splitter/internal/domain/usecase/balance"
	expenseUseCase "github.com/amirhossein-jamali/expense-splitter/internal/domain/usecase/expense"
	groupUseCase "github.com/amirhossein-jamali/expense-splitter/internal/domain/usecase/group"
	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/idgen"
	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/repository"
	timeprovider "github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/time"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupLifecycle_BalancesAndCascadeDelete(t *testing.T) {
	// Arrange
	manager := NewTestManager(t)
	uow := manager.CreateUnitOfWork()
	log := logger.NewNoopLogger()
	tp := timeprovider.NewRealTimeProvider()
	ids := idgen.NewUUIDGenerator()
	ctx := context.Background()

	users := uow.GetUserRepository(ctx)
	for _, u := range []*entity.User{
		newTestUser("a", "a@example.com"),
		newTestUser("b", "b@example.com"),
		newTestUser("c", "c@example.com"),
	} {
		require.NoError(t, users.Create(ctx, u))
	}

	groups := groupUseCase.NewGroupService(uow, ids, tp, log)
	expenses := expenseUseCase.NewExpenseService(uow, ids, tp, log)
	balances := balanceUseCase.NewBalanceService(
		repository.NewExpenseRepository(manager.DB(), log),
		repository.NewGroupRepository(manager.DB(), log),
		log,
	)

	group, err := groups.CreateGroup(ctx, "a", "Trip", "")
	require.NoError(t, err)
	_, err = groups.AddMember(ctx, "a", group.ID, "b")
	require.NoError(t, err)
	_, err = groups.AddMember(ctx, "a", group.ID, "c")
	require.NoError(t, err)

	ten := decimal.NewFromInt(10)
	expense, err := expenses.CreateExpense(ctx, entity.ExpenseDraft{
		PayerID: "a",
		Amount:  decimal.NewFromInt(30),
		Scope:   string(entity.ScopeGroup),
		GroupID: group.ID,
		Participants: []entity.ParticipantShare{
			{UserID: "a", Share: ten},
			{UserID: "b", Share: ten},
			{UserID: "c", Share: ten},
		},
	})
	require.NoError(t, err)

	// Act: balances before the delete
	ofA, err := balances.GetBalances(ctx, "a", entity.BalanceFilter{Scope: entity.ScopeGroup, GroupID: group.ID})
	require.NoError(t, err)
	ofB, err := balances.GetBalances(ctx, "b", entity.BalanceFilter{})
	require.NoError(t, err)

	// Assert
	toB, ok := ofA.Find("b", group.ID)
	require.True(t, ok)
	assert.True(t, toB.NetBalance.Equal(ten))
	toC, ok := ofA.Find("c", group.ID)
	require.True(t, ok)
	assert.True(t, toC.NetBalance.Equal(ten))

	_, ok = ofB.Find("c", group.ID)
	assert.False(t, ok, "b and c are settled with each other")
	toA, ok := ofB.Find("a", group.ID)
	require.True(t, ok)
	assert.True(t, toA.NetBalance.Equal(ten.Neg()))

	// Act: delete the group
	require.NoError(t, groups.DeleteGroup(ctx, "a", group.ID))

	// Assert: nothing referencing the group remains
	expenseRepo := uow.GetExpenseRepository(ctx)
	_, err = expenseRepo.GetByID(ctx, expense.ID)
	assert.ErrorIs(t, err, errs.ErrExpenseNotFound)

	shares, err := expenseRepo.ListSharesByParticipant(ctx, "b")
	require.NoError(t, err)
	assert.Empty(t, shares)

	groupRepo := uow.GetGroupRepository(ctx)
	_, err = groupRepo.GetByID(ctx, group.ID)
	assert.ErrorIs(t, err, errs.ErrGroupNotFound)
	member, err := groupRepo.IsMember(ctx, group.ID, "b")
	require.NoError(t, err)
	assert.False(t, member)

	after, err := balances.GetBalances(ctx, "a", entity.BalanceFilter{})
	require.NoError(t, err)
	assert.Empty(t, after.Personal)
	assert.Empty(t, after.Groups)
}
