package persistence

import (
	"context"
)

// UnitOfWork coordinates writes across repositories inside one database transaction
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetFriendshipRepository returns a friendship repository bound to the current transaction
	GetFriendshipRepository(ctx context.Context) FriendshipRepository

	// GetGroupRepository returns a group repository bound to the current transaction
	GetGroupRepository(ctx context.Context) GroupRepository

	// GetExpenseRepository returns an expense repository bound to the current transaction
	GetExpenseRepository(ctx context.Context) ExpenseRepository
}
