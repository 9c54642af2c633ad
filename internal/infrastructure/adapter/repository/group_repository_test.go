package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/expense-splitter/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-splitter/internal/domain/error"
)

func TestGroupRepository_CreateGetUpdateDelete(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	s.seedUser(t, "a", "alice")
	group := s.seedGroup(t, "g1", "Trip", "a")

	stored, err := s.groups.GetByID(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, "Trip", stored.Name)
	assert.Equal(t, "a", stored.CreatorID)

	group.Name = "Ski trip"
	group.Description = "February"
	group.UpdatedAt = baseTime.Add(time.Hour)
	require.NoError(t, s.groups.Update(ctx, group))

	stored, err = s.groups.GetByID(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, "Ski trip", stored.Name)
	assert.Equal(t, "February", stored.Description)
	assert.True(t, stored.UpdatedAt.Equal(baseTime.Add(time.Hour)))

	require.NoError(t, s.groups.DeleteMemberships(ctx, "g1"))
	require.NoError(t, s.groups.Delete(ctx, "g1"))

	_, err = s.groups.GetByID(ctx, "g1")
	assert.ErrorIs(t, err, errs.ErrGroupNotFound)
	assert.ErrorIs(t, s.groups.Delete(ctx, "g1"), errs.ErrGroupNotFound)
	assert.ErrorIs(t, s.groups.Update(ctx, group), errs.ErrGroupNotFound)
}

func TestGroupRepository_Membership(t *testing.T) {
	// Arrange
	s := newStore(t)
	ctx := context.Background()
	s.seedUser(t, "a", "alice")
	s.seedUser(t, "b", "bob")
	s.seedUser(t, "c", "carol")
	s.seedGroup(t, "g1", "Trip", "a", "c", "b")

	// Act
	members, err := s.groups.ListMembers(ctx, "g1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "b"}, ids(members, func(m entity.Member) string { return m.UserID }))
	assert.Equal(t, "carol", members[1].Username)

	isMember, err := s.groups.IsMember(ctx, "g1", "b")
	require.NoError(t, err)
	assert.True(t, isMember)

	err = s.groups.AddMember(ctx, entity.Membership{GroupID: "g1", UserID: "b", JoinedAt: baseTime})
	assert.ErrorIs(t, err, errs.ErrAlreadyMember)

	require.NoError(t, s.groups.RemoveMember(ctx, "g1", "b"))
	isMember, err = s.groups.IsMember(ctx, "g1", "b")
	require.NoError(t, err)
	assert.False(t, isMember)

	assert.ErrorIs(t, s.groups.RemoveMember(ctx, "g1", "b"), errs.ErrNotFound)
}

func TestGroupRepository_UserGroups(t *testing.T) {
	// Arrange
	s := newStore(t)
	ctx := context.Background()
	s.seedUser(t, "a", "alice")
	s.seedUser(t, "b", "bob")
	s.seedGroup(t, "g1", "Zoo", "a", "b")
	s.seedGroup(t, "g2", "Apartment", "b", "a")
	s.seedGroup(t, "g3", "Other", "b")

	// Act
	summaries, err := s.groups.ListUserGroups(ctx, "a")

	// Assert
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "Apartment", summaries[0].Group.Name)
	assert.False(t, summaries[0].IsCreator)
	assert.True(t, summaries[0].JoinedAt.Equal(baseTime.Add(time.Minute)))
	assert.Equal(t, "Zoo", summaries[1].Group.Name)
	assert.True(t, summaries[1].IsCreator)

	groupIDs, err := s.groups.ListGroupIDsForUser(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"g1", "g2"}, groupIDs)

	members, err := s.groups.ListMembersOfGroups(ctx, groupIDs)
	require.NoError(t, err)
	assert.Len(t, members, 4)

	none, err := s.groups.ListMembersOfGroups(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}
