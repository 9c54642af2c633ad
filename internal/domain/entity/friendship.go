package entity

import (
	"time"

	errs "github.com/amirhossein-jamali/expense-splitter/internal/domain/error"
)

// Friendship is one directed row of a symmetric friend relation.
// A pair (A->B, B->A) is always written and deleted together.
type Friendship struct {
	UserID    string
	FriendID  string
	CreatedAt time.Time
}

// NewFriendshipPair returns both directed rows linking userID and friendID
func NewFriendshipPair(userID, friendID string, now time.Time) ([]Friendship, error) {
	if userID == "" || friendID == "" {
		return nil, errs.NewValidationError("friend_id", "must not be empty", nil)
	}
	if userID == friendID {
		return nil, errs.ErrSelfFriendship
	}
	return []Friendship{
		{UserID: userID, FriendID: friendID, CreatedAt: now},
		{UserID: friendID, FriendID: userID, CreatedAt: now},
	}, nil
}

// Friend is a user seen from the other side of a friendship
type Friend struct {
	UserID       string
	Username     string
	Email        string
	FriendsSince time.Time
}
