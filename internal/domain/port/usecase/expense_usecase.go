package usecase

import (
	"context"

	"github.com/amirhossein-jamali/expense-splitter/internal/domain/entity"
)

// ExpenseUseCase records and manages expenses
type ExpenseUseCase interface {
	// CreateExpense validates and stores an expense with its participants as one unit
	CreateExpense(ctx context.Context, draft entity.ExpenseDraft) (*entity.Expense, error)

	// UpdateExpense edits an expense. Payer only.
	UpdateExpense(ctx context.Context, callerID, expenseID string, update entity.ExpenseUpdate) (*entity.Expense, error)

	// DeleteExpense removes an expense and its participants. Payer only.
	DeleteExpense(ctx context.Context, callerID, expenseID string) error

	// GetExpense returns an expense visible to the caller
	GetExpense(ctx context.Context, callerID, expenseID string) (*entity.Expense, error)

	ListUserExpenses(ctx context.Context, callerID string, filter entity.ExpenseFilter) ([]*entity.Expense, error)

	// ListGroupExpenses returns the expenses of a group to one of its members
	ListGroupExpenses(ctx context.Context, callerID, groupID string) ([]*entity.Expense, error)
}
