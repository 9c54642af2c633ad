package persistence

import (
	"context"

	"github.com/amirhossein-jamali/expense-splitter/internal/domain/entity"
)

// FriendshipRepository stores the two directed rows of each friendship
type FriendshipRepository interface {
	// CreatePair inserts both directed rows
	//
	// Possible errors:
	// - ErrAlreadyFriends: If either row already exists
	// - ErrDatabase: If the insert fails
	CreatePair(ctx context.Context, rows []entity.Friendship) error

	// Exists reports whether userID -> friendID is stored
	Exists(ctx context.Context, userID, friendID string) (bool, error)

	// DeletePair removes both directions and returns the number of rows deleted
	DeletePair(ctx context.Context, userID, friendID string) (int64, error)

	// ListFriends returns the friends of userID
	ListFriends(ctx context.Context, userID string) ([]entity.Friend, error)
}
