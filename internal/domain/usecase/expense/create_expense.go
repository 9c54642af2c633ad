package expense

import (
	"context"

	"github.com/amirhossein-jamali/expense-splitter/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-splitter/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-splitter/internal/domain/port/core"
)

// CreateExpense validates a draft and stores the expense with its participants as one unit.
// On failure no expense row is left behind.
func (s *Service) CreateExpense(ctx context.Context, draft entity.ExpenseDraft) (*entity.Expense, error) {
	if draft.PayerID == "" {
		return nil, errs.ErrUnauthenticated
	}

	if err := s.validator.Validate(ctx, draft); err != nil {
		s.logger.Warn("Expense rejected", coreport.ErrorFields(err, map[string]any{
			"payer_id":   draft.PayerID,
			"amount":     entity.FormatAmount(draft.Amount),
			"scope":      draft.Scope,
			"group_id":   draft.GroupID,
			"error_code": errs.ErrorCode(err),
		}))
		return nil, err
	}

	expense, err := entity.NewExpense(s.idGenerator.NewID(), draft, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := s.store(ctx, expense); err != nil {
		return nil, err
	}

	s.logger.Info("Expense created", map[string]any{
		"expense_id":   expense.ID,
		"payer_id":     expense.PaidBy,
		"amount":       entity.FormatAmount(expense.Amount),
		"scope":        string(expense.Scope),
		"group_id":     expense.GroupID,
		"participants": len(expense.Participants),
	})
	return expense, nil
}

// store inserts the expense row and then its participant rows inside one transaction
func (s *Service) store(ctx context.Context, expense *entity.Expense) error {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}

	repo := s.uow.GetExpenseRepository(txCtx)
	if err := repo.Create(txCtx, expense); err != nil {
		_ = s.rollback(txCtx, "create_expense")
		return err
	}

	if err := repo.AddParticipants(txCtx, expense.Participants); err != nil {
		if rbErr := s.rollback(txCtx, "add_participants"); rbErr != nil {
			s.compensate(ctx, expense.ID)
		}
		return err
	}

	return s.uow.Commit(txCtx)
}

// compensate deletes an expense row whose transaction could not be rolled back.
// The caller already has the primary error, so failures here are only logged.
func (s *Service) compensate(ctx context.Context, expenseID string) {
	repo := s.uow.GetExpenseRepository(ctx)
	if err := repo.DeleteParticipants(ctx, expenseID); err != nil {
		s.logger.Error("Compensating participant delete failed", coreport.ErrorFields(err, map[string]any{
			"expense_id": expenseID,
		}))
	}
	err := repo.Delete(ctx, expenseID)
	switch {
	case errs.IsNotFoundError(err):
		s.logger.Debug("No orphaned expense left to remove", map[string]any{
			"expense_id": expenseID,
		})
		return
	case err != nil:
		s.logger.Error("Compensating expense delete failed", coreport.ErrorFields(err, map[string]any{
			"expense_id": expenseID,
		}))
		return
	}
	s.logger.Warn("Orphaned expense removed by compensating delete", map[string]any{
		"expense_id": expenseID,
	})
}
