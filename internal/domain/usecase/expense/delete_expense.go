package expense

import (
	"context"

	errs "github.com/amirhossein-jamali/expense-splitter/internal/domain/error"
)

// DeleteExpense removes the participant rows and then the expense. Payer only.
func (s *Service) DeleteExpense(ctx context.Context, callerID, expenseID string) error {
	if callerID == "" {
		return errs.ErrUnauthenticated
	}

	expense, err := s.uow.GetExpenseRepository(ctx).GetByID(ctx, expenseID)
	if err != nil {
		return err
	}
	if !expense.IsPayer(callerID) {
		return errs.ErrNotAuthorized
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}
	txRepo := s.uow.GetExpenseRepository(txCtx)
	if err := txRepo.DeleteParticipants(txCtx, expenseID); err != nil {
		_ = s.rollback(txCtx, "delete_participants")
		return err
	}
	if err := txRepo.Delete(txCtx, expenseID); err != nil {
		_ = s.rollback(txCtx, "delete_expense")
		return err
	}
	if err := s.uow.Commit(txCtx); err != nil {
		return err
	}

	s.logger.Info("Expense deleted", map[string]any{
		"expense_id": expenseID,
		"payer_id":   callerID,
	})
	return nil
}
