package dto

import (
	"time"

	"github.com/amirhossein-jamali/expense-splitter/internal/domain/entity"
)

// AddFriendRequest names the friend by email
type AddFriendRequest struct {
	FriendEmail string `json:"friend_email" binding:"required"`
}

// FriendResponse is one friend of the caller
type FriendResponse struct {
	UserID       string    `json:"user_id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FriendsSince time.Time `json:"friends_since"`
}

// FriendEnvelope wraps a newly added friend
type FriendEnvelope struct {
	Message string         `json:"message"`
	Friend  FriendResponse `json:"friend"`
}

// FriendsResponse lists the caller's friends
type FriendsResponse struct {
	Friends []FriendResponse `json:"friends"`
	Count   int              `json:"count"`
}

// ContactResponse is one entry of the unified contact list
type ContactResponse struct {
	UserID       string `json:"user_id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	IsFriend     bool   `json:"is_friend"`
	SharedGroups int    `json:"shared_groups"`
}

// ContactsResponse lists friends and group co-members
type ContactsResponse struct {
	Contacts []ContactResponse `json:"contacts"`
	Count    int               `json:"count"`
}

// FromFriend converts a domain friend
func FromFriend(f entity.Friend) FriendResponse {
	return FriendResponse{
		UserID:       f.UserID,
		Username:     f.Username,
		Email:        f.Email,
		FriendsSince: f.FriendsSince,
	}
}

// FromFriends converts a friend list, never returning nil
func FromFriends(friends []entity.Friend) FriendsResponse {
	out := make([]FriendResponse, 0, len(friends))
	for _, f := range friends {
		out = append(out, FromFriend(f))
	}
	return FriendsResponse{Friends: out, Count: len(out)}
}

// FromContacts converts a contact list, never returning nil
func FromContacts(contacts []entity.Contact) ContactsResponse {
	out := make([]ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, ContactResponse{
			UserID:       c.UserID,
			Username:     c.Username,
			Email:        c.Email,
			IsFriend:     c.IsFriend,
			SharedGroups: c.SharedGroups,
		})
	}
	return ContactsResponse{Contacts: out, Count: len(out)}
}
