package usecase

import (
	"context"

	"github.com/amirhossein-jamali/expense-splitter/internal/domain/entity"
)

// BalanceUseCase computes who owes whom for a user
type BalanceUseCase interface {
	// GetBalances returns the non-zero net balances of userID, partitioned by scope
	GetBalances(ctx context.Context, userID string, filter entity.BalanceFilter) (*entity.BalanceResult, error)
}
