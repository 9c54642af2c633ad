package expense

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/expense-splitter/internal/domain/entity"
	mcore "github.com/amirhossein-jamali/expense-splitter/mocks/port/core"
	mpers "github.com/amirhossein-jamali/expense-splitter/mocks/port/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type txKey struct{}

var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	uow      *mpers.MockUnitOfWork
	expenses *mpers.MockExpenseRepository
	groups   *mpers.MockGroupRepository
	users    *mpers.MockUserRepository
	ids      *mcore.MockIDGenerator
	clock    *mcore.MockTimeProvider
	logger   *mcore.MockLogger
	service  *Service
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		uow:      mpers.NewMockUnitOfWork(t),
		expenses: mpers.NewMockExpenseRepository(t),
		groups:   mpers.NewMockGroupRepository(t),
		users:    mpers.NewMockUserRepository(t),
		ids:      mcore.NewMockIDGenerator(t),
		clock:    mcore.NewMockTimeProvider(t),
		logger:   mcore.NewMockLogger(t),
	}

	f.uow.EXPECT().GetExpenseRepository(mock.Anything).Return(f.expenses).Maybe()
	f.uow.EXPECT().GetGroupRepository(mock.Anything).Return(f.groups).Maybe()
	f.uow.EXPECT().GetUserRepository(mock.Anything).Return(f.users).Maybe()
	f.clock.EXPECT().Now().Return(fixedNow).Maybe()
	f.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	f.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	f.service = NewExpenseService(f.uow, f.ids, f.clock, f.logger)
	return f
}

// expectUsers makes every participant lookup resolve to the given ids
func (f *fixture) expectUsers(ids ...string) {
	users := make([]*entity.User, 0, len(ids))
	for _, id := range ids {
		users = append(users, &entity.User{ID: id, Username: "user-" + id})
	}
	f.users.EXPECT().GetByIDs(mock.Anything, mock.Anything).Return(users, nil).Maybe()
}

// beginTx makes Begin return a distinct transactional context
func (f *fixture) beginTx(ctx context.Context) context.Context {
	txCtx := context.WithValue(ctx, txKey{}, "tx")
	f.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
	return txCtx
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func split(pairs ...string) []entity.ParticipantShare {
	out := make([]entity.ParticipantShare, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, entity.ParticipantShare{UserID: pairs[i], Share: amount(pairs[i+1])})
	}
	return out
}

func storedExpense(id, payer string, scope entity.Scope, groupID string, total string, pairs ...string) *entity.Expense {
	e := &entity.Expense{
		ID:        id,
		Amount:    amount(total),
		Scope:     scope,
		GroupID:   groupID,
		PaidBy:    payer,
		CreatedAt: fixedNow,
		UpdatedAt: fixedNow,
	}
	e.SetParticipants(split(pairs...))
	return e
}
