package balance

import (
	"context"

	"github.com/amirhossein-jamali/expense-splitter/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-splitter/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-splitter/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-splitter/internal/domain/port/persistence"
	"golang.org/x/sync/errgroup"
)

// Service feeds the store's participation rows into Calculate
type Service struct {
	expenseRepo persistence.ExpenseRepository
	groupRepo   persistence.GroupRepository
	logger      coreport.Logger
}

// NewBalanceService creates a new balance service
func NewBalanceService(
	expenseRepo persistence.ExpenseRepository,
	groupRepo persistence.GroupRepository,
	logger coreport.Logger,
) *Service {
	return &Service{
		expenseRepo: expenseRepo,
		groupRepo:   groupRepo,
		logger:      logger,
	}
}

// GetBalances returns the non-zero net balances of userID.
// A group filter naming a group the user does not belong to yields an empty result.
func (s *Service) GetBalances(ctx context.Context, userID string, filter entity.BalanceFilter) (*entity.BalanceResult, error) {
	if userID == "" {
		return nil, errs.ErrUnauthenticated
	}

	if filter.Scope == entity.ScopeGroup && filter.GroupID != "" {
		member, err := s.groupRepo.IsMember(ctx, filter.GroupID, userID)
		if err != nil {
			return nil, err
		}
		if !member {
			s.logger.Debug("Balance requested for inaccessible group", map[string]any{
				"user_id":  userID,
				"group_id": filter.GroupID,
			})
			return entity.NewEmptyBalanceResult(), nil
		}
	}

	var participations, paid []entity.ExpenseShare
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		participations, err = s.expenseRepo.ListSharesByParticipant(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		paid, err = s.expenseRepo.ListSharesByPayer(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("Failed to load balance inputs", coreport.ErrorFields(err, map[string]any{
			"user_id": userID,
		}))
		return nil, err
	}

	result := Filter(Calculate(userID, participations, paid), filter)

	s.logger.Debug("Balances computed", map[string]any{
		"user_id":        userID,
		"scope":          string(filter.Scope),
		"group_id":       filter.GroupID,
		"participations": len(participations),
		"paid_shares":    len(paid),
		"personal_rows":  len(result.Personal),
		"group_buckets":  len(result.Groups),
	})
	return result, nil
}
