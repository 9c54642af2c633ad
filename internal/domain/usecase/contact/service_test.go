package contact

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/expense-splitter/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-splitter/internal/domain/error"
	mcore "github.com/amirhossein-jamali/expense-splitter/mocks/port/core"
	mpers "github.com/amirhossein-jamali/expense-splitter/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type txKey struct{}

var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	uow         *mpers.MockUnitOfWork
	users       *mpers.MockUserRepository
	friendships *mpers.MockFriendshipRepository
	groups      *mpers.MockGroupRepository
	service     *Service
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		uow:         mpers.NewMockUnitOfWork(t),
		users:       mpers.NewMockUserRepository(t),
		friendships: mpers.NewMockFriendshipRepository(t),
		groups:      mpers.NewMockGroupRepository(t),
	}
	f.uow.EXPECT().GetUserRepository(mock.Anything).Return(f.users).Maybe()
	f.uow.EXPECT().GetFriendshipRepository(mock.Anything).Return(f.friendships).Maybe()
	f.uow.EXPECT().GetGroupRepository(mock.Anything).Return(f.groups).Maybe()

	clock := mcore.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(fixedNow).Maybe()
	logger := mcore.NewMockLogger(t)
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	f.service = NewContactService(f.uow, clock, logger)
	return f
}

func (f *fixture) beginTx(ctx context.Context) context.Context {
	txCtx := context.WithValue(ctx, txKey{}, "tx")
	f.uow.EXPECT().Begin(ctx).Return(txCtx, nil).Once()
	return txCtx
}

func TestAddFriend(t *testing.T) {
	ctx := context.Background()
	bob := &entity.User{ID: "b", Username: "Bob", Email: "bob@x.io"}

	t.Run("Creates both directions", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.users.EXPECT().GetByEmail(ctx, "bob@x.io").Return(bob, nil).Once()
		f.friendships.EXPECT().Exists(ctx, "a", "b").Return(false, nil).Once()
		txCtx := f.beginTx(ctx)
		f.friendships.EXPECT().CreatePair(txCtx, []entity.Friendship{
			{UserID: "a", FriendID: "b", CreatedAt: fixedNow},
			{UserID: "b", FriendID: "a", CreatedAt: fixedNow},
		}).Return(nil).Once()
		f.uow.EXPECT().Commit(txCtx).Return(nil).Once()

		// Act
		friend, err := f.service.AddFriend(ctx, "a", " Bob@X.io ")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "b", friend.UserID)
		assert.Equal(t, fixedNow, friend.FriendsSince)
	})

	t.Run("Unknown email", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetByEmail(ctx, "ghost@x.io").Return(nil, errs.NewEntityNotFoundError("user", "ghost@x.io")).Once()

		_, err := f.service.AddFriend(ctx, "a", "ghost@x.io")

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Self friendship", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetByEmail(ctx, "me@x.io").Return(&entity.User{ID: "a", Email: "me@x.io"}, nil).Once()

		_, err := f.service.AddFriend(ctx, "a", "me@x.io")

		assert.ErrorIs(t, err, errs.ErrSelfFriendship)
		assert.Equal(t, errs.KindInvalidInput, errs.KindOf(err))
	})

	t.Run("Already friends", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetByEmail(ctx, "bob@x.io").Return(bob, nil).Once()
		f.friendships.EXPECT().Exists(ctx, "a", "b").Return(true, nil).Once()

		_, err := f.service.AddFriend(ctx, "a", "bob@x.io")

		assert.ErrorIs(t, err, errs.ErrAlreadyFriends)
		assert.Equal(t, errs.KindConflict, errs.KindOf(err))
	})

	t.Run("Concurrent duplicate insert rolls back", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().GetByEmail(ctx, "bob@x.io").Return(bob, nil).Once()
		f.friendships.EXPECT().Exists(ctx, "a", "b").Return(false, nil).Once()
		txCtx := f.beginTx(ctx)
		f.friendships.EXPECT().CreatePair(txCtx, mock.Anything).Return(errs.ErrAlreadyFriends).Once()
		f.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		_, err := f.service.AddFriend(ctx, "a", "bob@x.io")

		assert.ErrorIs(t, err, errs.ErrAlreadyFriends)
	})

	t.Run("Malformed email", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.AddFriend(ctx, "a", "not-an-email")

		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})
}

func TestRemoveFriend(t *testing.T) {
	ctx := context.Background()

	t.Run("Removes both directions", func(t *testing.T) {
		f := newFixture(t)
		txCtx := f.beginTx(ctx)
		f.friendships.EXPECT().DeletePair(txCtx, "a", "b").Return(int64(2), nil).Once()
		f.uow.EXPECT().Commit(txCtx).Return(nil).Once()

		assert.NoError(t, f.service.RemoveFriend(ctx, "a", "b"))
	})

	t.Run("Not friends", func(t *testing.T) {
		f := newFixture(t)
		txCtx := f.beginTx(ctx)
		f.friendships.EXPECT().DeletePair(txCtx, "a", "z").Return(int64(0), nil).Once()
		f.uow.EXPECT().Rollback(txCtx).Return(nil).Once()

		err := f.service.RemoveFriend(ctx, "a", "z")

		assert.True(t, errs.IsNotFoundError(err))
	})
}

func TestListFriends(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.friendships.EXPECT().ListFriends(ctx, "a").Return([]entity.Friend{
		{UserID: "c", Username: "Carol"},
		{UserID: "b", Username: "Bob"},
	}, nil).Once()

	friends, err := f.service.ListFriends(ctx, "a")

	require.NoError(t, err)
	require.Len(t, friends, 2)
	assert.Equal(t, "b", friends[0].UserID)
}

func TestListContacts(t *testing.T) {
	ctx := context.Background()

	t.Run("Friends and co-members", func(t *testing.T) {
		f := newFixture(t)
		f.friendships.EXPECT().ListFriends(mock.Anything, "a").Return([]entity.Friend{{UserID: "b", Username: "Bob"}}, nil).Once()
		f.groups.EXPECT().ListGroupIDsForUser(mock.Anything, "a").Return([]string{"g1"}, nil).Once()
		f.groups.EXPECT().ListMembersOfGroups(mock.Anything, []string{"g1"}).Return([]entity.Member{
			{GroupID: "g1", UserID: "a", Username: "Alice"},
			{GroupID: "g1", UserID: "c", Username: "Carol"},
		}, nil).Once()

		contacts, err := f.service.ListContacts(ctx, "a")

		require.NoError(t, err)
		require.Len(t, contacts, 2)
		assert.Equal(t, "b", contacts[0].UserID)
		assert.Equal(t, "c", contacts[1].UserID)
	})

	t.Run("No groups", func(t *testing.T) {
		f := newFixture(t)
		f.friendships.EXPECT().ListFriends(mock.Anything, "a").Return(nil, nil).Once()
		f.groups.EXPECT().ListGroupIDsForUser(mock.Anything, "a").Return([]string{}, nil).Once()

		contacts, err := f.service.ListContacts(ctx, "a")

		require.NoError(t, err)
		assert.Empty(t, contacts)
		f.groups.AssertNotCalled(t, "ListMembersOfGroups", mock.Anything, mock.Anything)
	})

	t.Run("Store failure", func(t *testing.T) {
		f := newFixture(t)
		f.friendships.EXPECT().ListFriends(mock.Anything, "a").Return(nil, errors.New("boom")).Once()
		f.groups.EXPECT().ListGroupIDsForUser(mock.Anything, "a").Return([]string{}, nil).Maybe()

		_, err := f.service.ListContacts(ctx, "a")

		assert.Error(t, err)
	})
}
