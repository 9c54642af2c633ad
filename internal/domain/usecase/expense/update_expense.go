package expense

import (
	"context"

	"github.com/amirhossein-jamali/expense-splitter/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-splitter/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-splitter/internal/domain/port/core"
)

// UpdateExpense edits amount, description and optionally the participant set. Payer only.
func (s *Service) UpdateExpense(
	ctx context.Context,
	callerID, expenseID string,
	update entity.ExpenseUpdate,
) (*entity.Expense, error) {
	if callerID == "" {
		return nil, errs.ErrUnauthenticated
	}
	if update.IsEmpty() {
		return nil, errs.ErrNoUpdateData
	}

	repo := s.uow.GetExpenseRepository(ctx)
	expense, err := repo.GetByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if !expense.IsPayer(callerID) {
		return nil, errs.ErrNotAuthorized
	}

	if err := expense.Apply(update, s.timeProvider); err != nil {
		return nil, err
	}
	if update.Participants != nil {
		if err := s.validator.ValidateParticipantsExist(ctx, update.Participants); err != nil {
			return nil, err
		}
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	txRepo := s.uow.GetExpenseRepository(txCtx)
	if err := txRepo.Update(txCtx, expense); err != nil {
		_ = s.rollback(txCtx, "update_expense")
		return nil, err
	}
	if update.Participants != nil {
		if err := txRepo.DeleteParticipants(txCtx, expense.ID); err != nil {
			_ = s.rollback(txCtx, "replace_participants")
			return nil, err
		}
		if err := txRepo.AddParticipants(txCtx, expense.Participants); err != nil {
			_ = s.rollback(txCtx, "replace_participants")
			return nil, err
		}
	}
	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("Expense updated", map[string]any{
		"expense_id":           expense.ID,
		"amount":               entity.FormatAmount(expense.Amount),
		"participants_changed": update.Participants != nil,
	})

	updated, err := repo.GetByID(ctx, expense.ID)
	if err != nil {
		s.logger.Warn("Failed to reload updated expense", coreport.ErrorFields(err, map[string]any{
			"expense_id": expense.ID,
		}))
		return expense, nil
	}
	return updated, nil
}
