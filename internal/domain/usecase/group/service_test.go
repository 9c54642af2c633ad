package group

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/expense-splitter/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-splitter/internal/domain/error"
	"github.com/amirhossein-jamali/expense-splitter/internal/domain/port/usecase"
	mcore "github.com/amirhossein-jamali/expense-splitter/mocks/port/core"
	mpers "github.com/amirhossein-jamali/expense-splitter/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type txKey struct{}

var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	uow      *mpers.MockUnitOfWork
	groups   *mpers.MockGroupRepository
	users    *mpers.MockUserRepository
	expenses *mpers.MockExpenseRepository
	ids      *mcore.MockIDGenerator
	service  *Service
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		uow:      mpers.NewMockUnitOfWork(t),
		groups:   mpers.NewMockGroupRepository(t),
		users:    mpers.NewMockUserRepository(t),
		expenses: mpers.NewMockExpenseRepository(t),
		ids:      mcore.NewMockIDGenerator(t),
	}
	f.uow.EXPECT().GetGroupRepository(mock.Anything).Return(f.groups).Maybe()
	f.uow.EXPECT().GetUserRepository(mock.Anything).Return(f.users).Maybe()
	f.uow.EXPECT().GetExpenseRepository(mock.Anything).Return(f.expenses).Maybe()

	clock := mcore.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(fixedNow).Maybe()
	logger := mcore.NewMockLogger(t)
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	f.service = NewGroupService(f.uow, f.ids, clock, logger)
	return f
}

func (f *fixture) beginTx(ctx context.Context) context.Context {
	txCtx := context.WithValue(ctx, txKey{}, "tx")
	f.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
	return txCtx
}

func trip() *entity.Group {
	return &entity.Group{ID: "g", Name: "Trip", CreatorID: "a", CreatedAt: fixedNow, UpdatedAt: fixedNow}
}

func TestCreateGroup(t *testing.T) {
	ctx := context.Background()

	t.Run("Creator is enrolled in the same transaction", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.ids.EXPECT().NewID().Return("g").Once()
		txCtx := f.beginTx(ctx)
		f.groups.EXPECT().Create(txCtx, mock.MatchedBy(func(g *entity.Group) bool {
			return g.ID == "g" && g.CreatorID == "a" && g.Name == "Trip"
		})).Return(nil).Once()
		f.groups.EXPECT().AddMember(txCtx, entity.Membership{GroupID: "g", UserID: "a", JoinedAt: fixedNow}).Return(nil).Once()
		f.uow.EXPECT().Commit(txCtx).Return(nil).Once()

		// Act
		group, err := f.service.CreateGroup(ctx, "a", "Trip", "summer")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "g", group.ID)
		assert.Equal(t, "summer", group.Description)
	})

	t.Run("Membership failure rolls back", func(t *testing.T) {
		f := newFixture(t)
		f.ids.EXPECT().NewID().Return("g").Once()
		txCtx := f.beginTx(ctx)
		f.groups.EXPECT().Create(txCtx, mock.Anything).Return(nil).Once()
		f.groups.EXPECT().AddMember(txCtx, mock.Anything).Return(errs.ErrDatabase).Once()
		f.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		_, err := f.service.CreateGroup(ctx, "a", "Trip", "")

		assert.ErrorIs(t, err, errs.ErrDatabase)
	})

	t.Run("Name required", func(t *testing.T) {
		f := newFixture(t)
		f.ids.EXPECT().NewID().Return("g").Once()

		_, err := f.service.CreateGroup(ctx, "a", " ", "")

		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.CreateGroup(ctx, "", "Trip", "")

		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})
}

func TestAddMember(t *testing.T) {
	ctx := context.Background()

	t.Run("Creator adds a member", func(t *testing.T) {
		f := newFixture(t)
		f.groups.EXPECT().GetByID(ctx, "g").Return(trip(), nil).Once()
		f.users.EXPECT().GetByID(ctx, "b").Return(&entity.User{ID: "b", Username: "Bob", Email: "bob@x.io"}, nil).Once()
		f.groups.EXPECT().IsMember(ctx, "g", "b").Return(false, nil).Once()
		f.groups.EXPECT().AddMember(ctx, entity.Membership{GroupID: "g", UserID: "b", JoinedAt: fixedNow}).Return(nil).Once()

		member, err := f.service.AddMember(ctx, "a", "g", "b")

		require.NoError(t, err)
		assert.Equal(t, "Bob", member.Username)
		assert.Equal(t, fixedNow, member.JoinedAt)
	})

	t.Run("Only the creator may add members", func(t *testing.T) {
		f := newFixture(t)
		f.groups.EXPECT().GetByID(ctx, "g").Return(trip(), nil).Once()

		_, err := f.service.AddMember(ctx, "b", "g", "c")

		assert.ErrorIs(t, err, errs.ErrNotAuthorized)
	})

	t.Run("Group not found", func(t *testing.T) {
		f := newFixture(t)
		f.groups.EXPECT().GetByID(ctx, "g-x").Return(nil, errs.NewEntityNotFoundError("group", "g-x")).Once()

		_, err := f.service.AddMember(ctx, "a", "g-x", "b")

		assert.ErrorIs(t, err, errs.ErrGroupNotFound)
	})

	t.Run("User not found", func(t *testing.T) {
		f := newFixture(t)
		f.groups.EXPECT().GetByID(ctx, "g").Return(trip(), nil).Once()
		f.users.EXPECT().GetByID(ctx, "ghost").Return(nil, errs.NewEntityNotFoundError("user", "ghost")).Once()

		_, err := f.service.AddMember(ctx, "a", "g", "ghost")

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Already a member", func(t *testing.T) {
		f := newFixture(t)
		f.groups.EXPECT().GetByID(ctx, "g").Return(trip(), nil).Once()
		f.users.EXPECT().GetByID(ctx, "b").Return(&entity.User{ID: "b"}, nil).Once()
		f.groups.EXPECT().IsMember(ctx, "g", "b").Return(true, nil).Once()

		_, err := f.service.AddMember(ctx, "a", "g", "b")

		assert.ErrorIs(t, err, errs.ErrAlreadyMember)
		assert.Equal(t, errs.KindConflict, errs.KindOf(err))
	})

	t.Run("Missing user id", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.AddMember(ctx, "a", "g", "")

		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})
}

func TestRemoveMember(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		caller     string
		target     string
		removeErr  error
		expectCall bool
		expected   error
	}{
		{name: "Creator removes a member", caller: "a", target: "b", expectCall: true},
		{name: "Member leaves", caller: "b", target: "b", expectCall: true},
		{name: "Creator cannot be removed", caller: "a", target: "a", expected: errs.ErrCreatorRemoval},
		{name: "Member cannot remove the creator", caller: "b", target: "a", expected: errs.ErrCreatorRemoval},
		{name: "Member cannot remove others", caller: "b", target: "c", expected: errs.ErrNotAuthorized},
		{name: "Target not a member", caller: "a", target: "z", expectCall: true,
			removeErr: errs.ErrNotFound, expected: errs.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			f := newFixture(t)
			f.groups.EXPECT().GetByID(ctx, "g").Return(trip(), nil).Once()
			if tt.expectCall {
				f.groups.EXPECT().RemoveMember(ctx, "g", tt.target).Return(tt.removeErr).Once()
			}

			// Act
			err := f.service.RemoveMember(ctx, tt.caller, "g", tt.target)

			// Assert
			if tt.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expected)
			}
		})
	}
}

func TestGetGroup(t *testing.T) {
	ctx := context.Background()

	t.Run("Member sees details", func(t *testing.T) {
		f := newFixture(t)
		f.groups.EXPECT().GetByID(ctx, "g").Return(trip(), nil).Once()
		f.groups.EXPECT().IsMember(ctx, "g", "b").Return(true, nil).Once()
		f.groups.EXPECT().ListMembers(ctx, "g").Return([]entity.Member{
			{GroupID: "g", UserID: "a", Username: "Alice", JoinedAt: fixedNow},
			{GroupID: "g", UserID: "b", Username: "Bob", JoinedAt: fixedNow.Add(time.Hour)},
		}, nil).Once()

		details, err := f.service.GetGroup(ctx, "b", "g")

		require.NoError(t, err)
		assert.Equal(t, "Trip", details.Group.Name)
		assert.Equal(t, "Alice", details.Creator.Username)
		assert.Len(t, details.Members, 2)
	})

	t.Run("Non member", func(t *testing.T) {
		f := newFixture(t)
		f.groups.EXPECT().GetByID(ctx, "g").Return(trip(), nil).Once()
		f.groups.EXPECT().IsMember(ctx, "g", "z").Return(false, nil).Once()

		_, err := f.service.GetGroup(ctx, "z", "g")

		assert.ErrorIs(t, err, errs.ErrNotAuthorized)
	})
}

func TestUpdateGroup(t *testing.T) {
	ctx := context.Background()
	name := "Road trip"

	t.Run("Creator renames", func(t *testing.T) {
		f := newFixture(t)
		f.groups.EXPECT().GetByID(ctx, "g").Return(trip(), nil).Once()
		f.groups.EXPECT().Update(ctx, mock.MatchedBy(func(g *entity.Group) bool { return g.Name == name })).Return(nil).Once()

		group, err := f.service.UpdateGroup(ctx, "a", "g", usecase.GroupUpdate{Name: &name})

		require.NoError(t, err)
		assert.Equal(t, name, group.Name)
	})

	t.Run("Only the creator may update", func(t *testing.T) {
		f := newFixture(t)
		f.groups.EXPECT().GetByID(ctx, "g").Return(trip(), nil).Once()

		_, err := f.service.UpdateGroup(ctx, "b", "g", usecase.GroupUpdate{Name: &name})

		assert.ErrorIs(t, err, errs.ErrNotAuthorized)
	})

	t.Run("Nothing to update", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.UpdateGroup(ctx, "a", "g", usecase.GroupUpdate{})

		assert.ErrorIs(t, err, errs.ErrNoUpdateData)
	})
}

func TestDeleteGroup(t *testing.T) {
	ctx := context.Background()

	t.Run("Cascades expenses then memberships then the group", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.groups.EXPECT().GetByID(ctx, "g").Return(trip(), nil).Once()
		txCtx := f.beginTx(ctx)
		expensesCall := f.expenses.EXPECT().DeleteByGroup(txCtx, "g").Return(nil)
		expensesCall.Once()
		membershipsCall := f.groups.EXPECT().DeleteMemberships(txCtx, "g").Return(nil)
		membershipsCall.Once().NotBefore(expensesCall.Call)
		f.groups.EXPECT().Delete(txCtx, "g").Return(nil).Once().NotBefore(membershipsCall.Call)
		f.uow.EXPECT().Commit(txCtx).Return(nil).Once()

		// Act
		err := f.service.DeleteGroup(ctx, "a", "g")

		// Assert
		assert.NoError(t, err)
	})

	t.Run("Only the creator may delete", func(t *testing.T) {
		f := newFixture(t)
		f.groups.EXPECT().GetByID(ctx, "g").Return(trip(), nil).Once()

		err := f.service.DeleteGroup(ctx, "b", "g")

		assert.ErrorIs(t, err, errs.ErrNotAuthorized)
		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("Failure rolls back everything", func(t *testing.T) {
		f := newFixture(t)
		f.groups.EXPECT().GetByID(ctx, "g").Return(trip(), nil).Once()
		txCtx := f.beginTx(ctx)
		f.expenses.EXPECT().DeleteByGroup(txCtx, "g").Return(nil).Once()
		f.groups.EXPECT().DeleteMemberships(txCtx, "g").Return(errors.New("boom")).Once()
		f.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		err := f.service.DeleteGroup(ctx, "a", "g")

		assert.Error(t, err)
		f.groups.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
