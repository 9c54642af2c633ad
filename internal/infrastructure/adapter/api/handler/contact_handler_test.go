package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/expense-splitter/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-splitter/internal/domain/error"
	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/api/dto"
)

func TestAddFriendHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{"Added", nil, http.StatusCreated, 0},
		{"Self friendship", errs.ErrSelfFriendship, http.StatusBadRequest, errs.CodeSelfFriendship},
		{"Unknown email", errs.NewEntityNotFoundError("user", "bob@example.com"), http.StatusNotFound, errs.CodeUserNotFound},
		{"Already friends", errs.ErrAlreadyFriends, http.StatusConflict, errs.CodeAlreadyFriends},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			a := newAPI(t)
			var friend *entity.Friend
			if tt.err == nil {
				friend = &entity.Friend{UserID: "u-2", Username: "Bob", Email: "bob@example.com", FriendsSince: fixedTime}
			}
			a.contacts.EXPECT().AddFriend(mock.Anything, callerUser, "bob@example.com").Return(friend, tt.err).Once()

			// Act
			rec := a.do(t, http.MethodPost, "/api/contacts/add", map[string]string{"friend_email": "bob@example.com"})

			// Assert
			assertStatus(t, tt.wantStatus, rec)
			if tt.err != nil {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
				return
			}
			assert.Equal(t, "u-2", decode[dto.FriendEnvelope](t, rec).Friend.UserID)
		})
	}
}

func TestRemoveFriendHandler(t *testing.T) {
	a := newAPI(t)
	a.contacts.EXPECT().RemoveFriend(mock.Anything, callerUser, "u-2").Return(nil).Once()

	rec := a.do(t, http.MethodDelete, "/api/contacts/remove/u-2", nil)

	assertStatus(t, http.StatusOK, rec)
}

func TestListFriendsHandler(t *testing.T) {
	t.Run("Empty list is an empty array", func(t *testing.T) {
		a := newAPI(t)
		a.contacts.EXPECT().ListFriends(mock.Anything, callerUser).Return(nil, nil).Once()

		rec := a.do(t, http.MethodGet, "/api/contacts/friends", nil)

		assertStatus(t, http.StatusOK, rec)
		assert.JSONEq(t, `{"friends":[],"count":0}`, rec.Body.String())
	})
}

func TestListContactsHandler(t *testing.T) {
	// Arrange
	a := newAPI(t)
	a.contacts.EXPECT().ListContacts(mock.Anything, callerUser).Return([]entity.Contact{
		{UserID: "u-2", Username: "Bob", Email: "bob@example.com", IsFriend: true},
		{UserID: "u-3", Username: "Carol", Email: "carol@example.com", SharedGroups: 2},
	}, nil).Once()

	// Act
	rec := a.do(t, http.MethodGet, "/api/contacts/all", nil)

	// Assert
	assertStatus(t, http.StatusOK, rec)
	body := decode[dto.ContactsResponse](t, rec)
	require.Equal(t, 2, body.Count)
	assert.True(t, body.Contacts[0].IsFriend)
	assert.Equal(t, 2, body.Contacts[1].SharedGroups)
}

func TestContactListsAreCallerOnly(t *testing.T) {
	for _, path := range []string{"/api/contacts/friends/u-2", "/api/contacts/all/u-2"} {
		t.Run(path, func(t *testing.T) {
			a := newAPI(t)

			rec := a.do(t, http.MethodGet, path, nil)

			assertStatus(t, http.StatusNotFound, rec)
			a.contacts.AssertNotCalled(t, "ListFriends", mock.Anything, mock.Anything)
			a.contacts.AssertNotCalled(t, "ListContacts", mock.Anything, mock.Anything)
		})
	}
}
