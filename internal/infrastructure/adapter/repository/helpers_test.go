package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/expense-splitter/internal/domain/entity"
	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/repository"
)

var baseTime = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

type store struct {
	db          *gorm.DB
	users       *repository.UserRepository
	friendships *repository.FriendshipRepository
	groups      *repository.GroupRepository
	expenses    *repository.ExpenseRepository
}

func newStore(t *testing.T) *store {
	t.Helper()
	db := database.NewTestDB(t)
	log := logger.NewNoopLogger()
	return &store{
		db:          db,
		users:       repository.NewUserRepository(db, log),
		friendships: repository.NewFriendshipRepository(db, log),
		groups:      repository.NewGroupRepository(db, log),
		expenses:    repository.NewExpenseRepository(db, log),
	}
}

func (s *store) seedUser(t *testing.T, id, username string) *entity.User {
	t.Helper()
	user := &entity.User{
		ID:           id,
		Username:     username,
		Email:        id + "@example.com",
		PasswordHash: "hash",
		CreatedAt:    baseTime,
		UpdatedAt:    baseTime,
	}
	require.NoError(t, s.users.Create(context.Background(), user))
	return user
}

func (s *store) seedGroup(t *testing.T, id, name, creatorID string, memberIDs ...string) *entity.Group {
	t.Helper()
	ctx := context.Background()
	group := &entity.Group{ID: id, Name: name, CreatorID: creatorID, CreatedAt: baseTime, UpdatedAt: baseTime}
	require.NoError(t, s.groups.Create(ctx, group))
	require.NoError(t, s.groups.AddMember(ctx, group.CreatorMembership()))
	for i, memberID := range memberIDs {
		require.NoError(t, s.groups.AddMember(ctx, entity.Membership{
			GroupID:  id,
			UserID:   memberID,
			JoinedAt: baseTime.Add(time.Duration(i+1) * time.Minute),
		}))
	}
	return group
}

type share struct {
	userID string
	amount string
}

func (s *store) seedExpense(t *testing.T, id, payerID, groupID, amount string, offset time.Duration, shares ...share) *entity.Expense {
	t.Helper()
	ctx := context.Background()
	scope := entity.ScopePersonal
	if groupID != "" {
		scope = entity.ScopeGroup
	}
	expense := &entity.Expense{
		ID:          id,
		Description: "expense " + id,
		Amount:      decimal.RequireFromString(amount),
		Scope:       scope,
		GroupID:     groupID,
		PaidBy:      payerID,
		CreatedAt:   baseTime.Add(offset),
		UpdatedAt:   baseTime.Add(offset),
	}
	require.NoError(t, s.expenses.Create(ctx, expense))

	participants := make([]entity.ExpenseParticipant, 0, len(shares))
	for _, sh := range shares {
		participants = append(participants, entity.ExpenseParticipant{
			ExpenseID: id,
			UserID:    sh.userID,
			Share:     decimal.RequireFromString(sh.amount),
		})
	}
	require.NoError(t, s.expenses.AddParticipants(ctx, participants))
	return expense
}

func ids[T any](items []T, id func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, id(item))
	}
	return out
}
