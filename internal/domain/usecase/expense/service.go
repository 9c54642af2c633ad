package expense

import (
	"context"

	"github.com/amirhossein-jamali/expense-splitter/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-splitter/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-splitter/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-splitter/internal/domain/port/persistence"
)

// Service records expenses and enforces who may read or change them
type Service struct {
	uow          persistence.UnitOfWork
	validator    *Validator
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewExpenseService creates a new expense service
func NewExpenseService(
	uow persistence.UnitOfWork,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		validator:    NewValidator(uow),
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetExpense returns an expense visible to the caller
func (s *Service) GetExpense(ctx context.Context, callerID, expenseID string) (*entity.Expense, error) {
	if callerID == "" {
		return nil, errs.ErrUnauthenticated
	}

	expense, err := s.uow.GetExpenseRepository(ctx).GetByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	allowed, err := s.canView(ctx, expense, callerID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, errs.ErrNotAuthorized
	}
	return expense, nil
}

// ListUserExpenses returns expenses the caller paid for or participates in
func (s *Service) ListUserExpenses(ctx context.Context, callerID string, filter entity.ExpenseFilter) ([]*entity.Expense, error) {
	if callerID == "" {
		return nil, errs.ErrUnauthenticated
	}
	if filter.Scope != "" {
		if _, err := entity.ParseScope(string(filter.Scope)); err != nil {
			return nil, err
		}
	}
	return s.uow.GetExpenseRepository(ctx).ListForUser(ctx, callerID, filter)
}

// ListGroupExpenses returns the expenses of a group to one of its members
func (s *Service) ListGroupExpenses(ctx context.Context, callerID, groupID string) ([]*entity.Expense, error) {
	if callerID == "" {
		return nil, errs.ErrUnauthenticated
	}

	groupRepo := s.uow.GetGroupRepository(ctx)
	if _, err := groupRepo.GetByID(ctx, groupID); err != nil {
		return nil, err
	}
	member, err := groupRepo.IsMember(ctx, groupID, callerID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, errs.ErrNotAuthorized
	}
	return s.uow.GetExpenseRepository(ctx).ListByGroup(ctx, groupID)
}

// canView allows the payer, any participant, and members of the expense's group
func (s *Service) canView(ctx context.Context, expense *entity.Expense, userID string) (bool, error) {
	if expense.IsPayer(userID) || expense.HasParticipant(userID) {
		return true, nil
	}
	if expense.Scope != entity.ScopeGroup || expense.GroupID == "" {
		return false, nil
	}
	return s.uow.GetGroupRepository(ctx).IsMember(ctx, expense.GroupID, userID)
}

// rollback aborts the transaction in txCtx and logs a failure to do so
func (s *Service) rollback(txCtx context.Context, operation string) error {
	if err := s.uow.Rollback(txCtx); err != nil {
		s.logger.Error("Failed to roll back transaction", coreport.ErrorFields(err, map[string]any{
			"operation": operation,
		}))
		return err
	}
	return nil
}
