package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/expense-splitter/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-splitter/internal/domain/error"
	"github.com/amirhossein-jamali/expense-splitter/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/api/dto"
)

func tripGroup() *entity.Group {
	return &entity.Group{
		ID:          "g-1",
		Name:        "Trip",
		Description: "Lisbon",
		CreatorID:   callerUser,
		CreatedAt:   fixedTime,
		UpdatedAt:   fixedTime,
	}
}

func TestCreateGroupHandler(t *testing.T) {
	t.Run("Created", func(t *testing.T) {
		a := newAPI(t)
		a.groups.EXPECT().CreateGroup(mock.Anything, callerUser, "Trip", "Lisbon").Return(tripGroup(), nil).Once()

		rec := a.do(t, http.MethodPost, "/api/groups", map[string]string{"group_name": "Trip", "description": "Lisbon"})

		assertStatus(t, http.StatusCreated, rec)
		body := decode[dto.GroupEnvelope](t, rec)
		assert.Equal(t, "g-1", body.Group.GroupID)
		assert.Equal(t, callerUser, body.Group.CreatedBy)
	})

	t.Run("Name required", func(t *testing.T) {
		a := newAPI(t)

		rec := a.do(t, http.MethodPost, "/api/groups", map[string]string{"description": "Lisbon"})

		assertStatus(t, http.StatusBadRequest, rec)
	})
}

func TestGetGroupHandler(t *testing.T) {
	t.Run("Member sees details", func(t *testing.T) {
		// Arrange
		a := newAPI(t)
		creator := entity.Member{GroupID: "g-1", UserID: callerUser, Username: "Alice", JoinedAt: fixedTime}
		a.groups.EXPECT().GetGroup(mock.Anything, callerUser, "g-1").Return(&entity.GroupDetails{
			Group:   *tripGroup(),
			Creator: creator,
			Members: []entity.Member{creator, {GroupID: "g-1", UserID: "u-2", Username: "Bob", JoinedAt: fixedTime}},
		}, nil).Once()

		// Act
		rec := a.do(t, http.MethodGet, "/api/groups/g-1", nil)

		// Assert
		assertStatus(t, http.StatusOK, rec)
		body := decode[dto.GroupDetailsResponse](t, rec)
		assert.Equal(t, 2, body.MemberCount)
		assert.Equal(t, "Alice", body.Creator.Username)
	})

	t.Run("Non member is forbidden", func(t *testing.T) {
		a := newAPI(t)
		a.groups.EXPECT().GetGroup(mock.Anything, callerUser, "g-1").Return(nil, errs.ErrNotAuthorized).Once()

		rec := a.do(t, http.MethodGet, "/api/groups/g-1", nil)

		assertStatus(t, http.StatusForbidden, rec)
		assert.Equal(t, errs.CodeNotAuthorized, decodeError(t, rec).Code)
	})
}

func TestListGroupsHandler(t *testing.T) {
	a := newAPI(t)
	a.groups.EXPECT().ListUserGroups(mock.Anything, callerUser).Return([]entity.GroupSummary{
		{Group: *tripGroup(), IsCreator: true, JoinedAt: fixedTime},
	}, nil).Once()

	rec := a.do(t, http.MethodGet, "/api/groups", nil)

	assertStatus(t, http.StatusOK, rec)
	body := decode[dto.UserGroupsResponse](t, rec)
	require.Equal(t, 1, body.Count)
	assert.True(t, body.Groups[0].IsCreator)
}

func TestUpdateGroupHandler(t *testing.T) {
	// Arrange
	a := newAPI(t)
	renamed := tripGroup()
	renamed.Name = "Porto"
	a.groups.EXPECT().UpdateGroup(mock.Anything, callerUser, "g-1", mock.MatchedBy(func(u usecase.GroupUpdate) bool {
		return u.Name != nil && *u.Name == "Porto" && u.Description == nil
	})).Return(renamed, nil).Once()

	// Act
	rec := a.do(t, http.MethodPut, "/api/groups/g-1", map[string]string{"group_name": "Porto"})

	// Assert
	assertStatus(t, http.StatusOK, rec)
	assert.Equal(t, "Porto", decode[dto.GroupEnvelope](t, rec).Group.GroupName)
}

func TestDeleteGroupHandler(t *testing.T) {
	t.Run("Creator deletes", func(t *testing.T) {
		a := newAPI(t)
		a.groups.EXPECT().DeleteGroup(mock.Anything, callerUser, "g-1").Return(nil).Once()

		rec := a.do(t, http.MethodDelete, "/api/groups/g-1", nil)

		assertStatus(t, http.StatusOK, rec)
	})

	t.Run("Unknown group", func(t *testing.T) {
		a := newAPI(t)
		a.groups.EXPECT().DeleteGroup(mock.Anything, callerUser, "g-404").
			Return(errs.NewEntityNotFoundError("group", "g-404")).Once()

		rec := a.do(t, http.MethodDelete, "/api/groups/g-404", nil)

		assertStatus(t, http.StatusNotFound, rec)
		assert.Equal(t, errs.CodeGroupNotFound, decodeError(t, rec).Code)
	})
}

func TestMembershipHandlers(t *testing.T) {
	t.Run("Add member", func(t *testing.T) {
		a := newAPI(t)
		a.groups.EXPECT().AddMember(mock.Anything, callerUser, "g-1", "u-2").Return(&entity.Member{
			GroupID: "g-1", UserID: "u-2", Username: "Bob", JoinedAt: fixedTime,
		}, nil).Once()

		rec := a.do(t, http.MethodPost, "/api/groups/g-1/members", map[string]string{"user_id": "u-2"})

		assertStatus(t, http.StatusCreated, rec)
		body := decode[dto.MemberEnvelope](t, rec)
		assert.Equal(t, "g-1", body.GroupID)
		assert.Equal(t, "u-2", body.Member.UserID)
	})

	t.Run("Already member", func(t *testing.T) {
		a := newAPI(t)
		a.groups.EXPECT().AddMember(mock.Anything, callerUser, "g-1", "u-2").Return(nil, errs.ErrAlreadyMember).Once()

		rec := a.do(t, http.MethodPost, "/api/groups/g-1/members", map[string]string{"user_id": "u-2"})

		assertStatus(t, http.StatusConflict, rec)
	})

	t.Run("Creator cannot be removed", func(t *testing.T) {
		a := newAPI(t)
		a.groups.EXPECT().RemoveMember(mock.Anything, callerUser, "g-1", callerUser).Return(errs.ErrCreatorRemoval).Once()

		rec := a.do(t, http.MethodDelete, "/api/groups/g-1/members/"+callerUser, nil)

		assertStatus(t, http.StatusBadRequest, rec)
		assert.Equal(t, errs.CodeCreatorRemoval, decodeError(t, rec).Code)
	})
}
