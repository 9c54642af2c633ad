package persistence

import (
	"context"

	"github.com/amirhossein-jamali/expense-splitter/internal/domain/entity"
)

// UserRepository defines the methods to interact with user data
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabase: If the query fails
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// GetByEmail retrieves a user by normalized email
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has this email
	// - ErrDatabase: If the query fails
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// GetByIDs retrieves every existing user among ids. Missing ids are skipped.
	GetByIDs(ctx context.Context, ids []string) ([]*entity.User, error)

	// Create stores a new user
	//
	// Possible errors:
	// - ErrEmailTaken: If the email is already registered
	// - ErrDatabase: If the insert fails
	Create(ctx context.Context, user *entity.User) error

	// Update saves username, email and updated_at
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrEmailTaken: If the new email belongs to another user
	// - ErrDatabase: If the update fails
	Update(ctx context.Context, user *entity.User) error
}
