package usecase

import (
	"context"

	"github.com/amirhossein-jamali/expense-splitter/internal/domain/entity"
)

// ContactUseCase manages friendships and resolves the people a user can split with
type ContactUseCase interface {
	// AddFriend befriends the user registered with friendEmail
	AddFriend(ctx context.Context, userID, friendEmail string) (*entity.Friend, error)

	// RemoveFriend deletes both directions of a friendship
	RemoveFriend(ctx context.Context, userID, friendID string) error

	ListFriends(ctx context.Context, userID string) ([]entity.Friend, error)

	// ListContacts returns friends and group co-members, deduplicated and sorted by name
	ListContacts(ctx context.Context, userID string) ([]entity.Contact, error)
}
