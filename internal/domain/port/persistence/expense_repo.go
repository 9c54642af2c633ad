package persistence

import (
	"context"

	"github.com/amirhossein-jamali/expense-splitter/internal/domain/entity"
)

// ExpenseRepository stores expenses and their participant shares
type ExpenseRepository interface {
	// Create inserts the expense row only
	Create(ctx context.Context, expense *entity.Expense) error

	// AddParticipants inserts participant rows in one batch
	AddParticipants(ctx context.Context, participants []entity.ExpenseParticipant) error

	// GetByID retrieves an expense with its participants
	//
	// Possible errors:
	// - ErrExpenseNotFound: If the expense doesn't exist
	// - ErrDatabase: If the query fails
	GetByID(ctx context.Context, id string) (*entity.Expense, error)

	// Update saves amount, description and updated_at
	//
	// Possible errors:
	// - ErrExpenseNotFound: If the expense doesn't exist
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes the expense row. Participants must be removed first.
	//
	// Possible errors:
	// - ErrExpenseNotFound: If the expense doesn't exist
	Delete(ctx context.Context, id string) error

	// DeleteParticipants removes every participant row of an expense
	DeleteParticipants(ctx context.Context, expenseID string) error

	// DeleteByGroup removes every expense of a group together with its participants
	DeleteByGroup(ctx context.Context, groupID string) error

	// ListForUser returns expenses userID paid for or participates in, newest first
	ListForUser(ctx context.Context, userID string, filter entity.ExpenseFilter) ([]*entity.Expense, error)

	// ListByGroup returns the expenses of a group, newest first
	ListByGroup(ctx context.Context, groupID string) ([]*entity.Expense, error)

	// ListSharesByParticipant returns every participant row of userID joined with its expense
	ListSharesByParticipant(ctx context.Context, userID string) ([]entity.ExpenseShare, error)

	// ListSharesByPayer returns every participant row of expenses paid by userID
	ListSharesByPayer(ctx context.Context, userID string) ([]entity.ExpenseShare, error)
}
