package handler_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/expense-splitter/internal/domain/entity"
	errs "github.com/amirhossein-jamali/expense-splitter/internal/domain/error"
	expenseUseCase "github.com/amirhossein-jamali/expense-splitter/internal/domain/usecase/expense"
	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/api/dto"
	coremocks "github.com/amirhossein-jamali/expense-splitter/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/expense-splitter/mocks/port/persistence"
)

func dinner() *entity.Expense {
	return &entity.Expense{
		ID:          "e-1",
		Description: "Dinner",
		Amount:      decimal.RequireFromString("30"),
		Scope:       entity.ScopePersonal,
		PaidBy:      callerUser,
		CreatedAt:   fixedTime,
		UpdatedAt:   fixedTime,
		Participants: []entity.ExpenseParticipant{
			{ExpenseID: "e-1", UserID: callerUser, Username: "Alice", Share: decimal.RequireFromString("10")},
			{ExpenseID: "e-1", UserID: "u-2", Username: "Bob", Share: decimal.RequireFromString("20")},
		},
	}
}

func TestCreateExpenseHandler(t *testing.T) {
	t.Run("Payer is the caller", func(t *testing.T) {
		// Arrange
		a := newAPI(t)
		a.expenses.EXPECT().CreateExpense(mock.Anything, mock.MatchedBy(func(d entity.ExpenseDraft) bool {
			return d.PayerID == callerUser &&
				d.Amount.Equal(decimal.RequireFromString("30")) &&
				d.Scope == "personal" &&
				len(d.Participants) == 2 &&
				d.Participants[1].UserID == "u-2" &&
				d.Participants[1].Share.Equal(decimal.RequireFromString("20"))
		})).Return(dinner(), nil).Once()

		// Act
		rec := a.do(t, http.MethodPost, "/api/expenses", `{
			"amount": 30,
			"description": "Dinner",
			"expense_type": "personal",
			"paid_by": "someone-else",
			"participants": [
				{"user_id": "u-1", "share": "10"},
				{"user_id": "u-2", "share": 20}
			]
		}`)

		// Assert
		assertStatus(t, http.StatusCreated, rec)
		body := decode[dto.ExpenseEnvelope](t, rec)
		assert.Equal(t, "30.00", body.Expense.Amount)
		assert.Equal(t, callerUser, body.Expense.PaidBy)
		assert.Nil(t, body.Expense.GroupID)
		require.Len(t, body.Expense.Participants, 2)
		assert.Equal(t, "20.00", body.Expense.Participants[1].Share)
	})

	t.Run("Share mismatch", func(t *testing.T) {
		a := newAPI(t)
		a.expenses.EXPECT().CreateExpense(mock.Anything, mock.Anything).Return(nil, errs.ErrShareMismatch).Once()

		rec := a.do(t, http.MethodPost, "/api/expenses", `{
			"amount": 30,
			"expense_type": "personal",
			"participants": [{"user_id": "u-2", "share": 10}]
		}`)

		assertStatus(t, http.StatusBadRequest, rec)
		assert.Equal(t, errs.CodeShareMismatch, decodeError(t, rec).Code)
	})

	t.Run("Malformed body hides binding detail", func(t *testing.T) {
		a := newAPI(t)

		rec := a.do(t, http.MethodPost, "/api/expenses", `{"amount": "thirty"}`)

		assertStatus(t, http.StatusBadRequest, rec)
		body := decodeError(t, rec)
		assert.Equal(t, errs.CodeInvalidInput, body.Code)
		assert.Equal(t, "invalid request body", body.Message)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		a := newAPI(t)

		rec := a.doWithToken(t, http.MethodPost, "/api/expenses", `{}`, "")

		assertStatus(t, http.StatusUnauthorized, rec)
	})
}

func TestCreateExpenseHandler_RecorderCheckOrder(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{
			name:     "Zero amount without type",
			body:     `{"amount": 0, "participants": [{"user_id": "u-2", "share": 10}]}`,
			wantCode: errs.CodeInvalidAmount,
		},
		{
			name:     "Missing amount",
			body:     `{"expense_type": "personal", "participants": [{"user_id": "u-2", "share": 10}]}`,
			wantCode: errs.CodeInvalidAmount,
		},
		{
			name:     "No participants without type",
			body:     `{"amount": 10}`,
			wantCode: errs.CodeMissingParticipants,
		},
		{
			name:     "Missing type",
			body:     `{"amount": 10, "participants": [{"user_id": "u-2", "share": 10}]}`,
			wantCode: errs.CodeInvalidScope,
		},
		{
			name:     "Group without reference",
			body:     `{"amount": 10, "expense_type": "group", "participants": [{"user_id": "u-2", "share": 10}]}`,
			wantCode: errs.CodeMissingGroup,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange: shape failures must be reported before any store access
			logger := coremocks.NewMockLogger(t)
			logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
			service := expenseUseCase.NewExpenseService(
				persistencemocks.NewMockUnitOfWork(t),
				coremocks.NewMockIDGenerator(t),
				coremocks.NewMockTimeProvider(t),
				logger,
			)
			a := newAPIWithExpenseService(t, service)

			// Act
			rec := a.do(t, http.MethodPost, "/api/expenses", tt.body)

			// Assert
			assertStatus(t, http.StatusBadRequest, rec)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, string(errs.KindInvalidInput), body.Kind)
			assert.NotContains(t, body.Message, "Key:")
		})
	}
}

func TestListExpensesHandler(t *testing.T) {
	t.Run("Filters by type and group", func(t *testing.T) {
		a := newAPI(t)
		a.expenses.EXPECT().ListUserExpenses(mock.Anything, callerUser, entity.ExpenseFilter{
			Scope:   entity.ScopeGroup,
			GroupID: "g-1",
		}).Return([]*entity.Expense{}, nil).Once()

		rec := a.do(t, http.MethodGet, "/api/expenses?expense_type=group&group_id=g-1", nil)

		assertStatus(t, http.StatusOK, rec)
		assert.JSONEq(t, `{"expenses":[],"count":0}`, rec.Body.String())
	})

	t.Run("Invalid type", func(t *testing.T) {
		a := newAPI(t)

		rec := a.do(t, http.MethodGet, "/api/expenses?expense_type=shared", nil)

		assertStatus(t, http.StatusBadRequest, rec)
		assert.Equal(t, errs.CodeInvalidScope, decodeError(t, rec).Code)
	})
}

func TestGetBalancesHandler(t *testing.T) {
	t.Run("Both partitions", func(t *testing.T) {
		// Arrange
		a := newAPI(t)
		result := entity.NewEmptyBalanceResult()
		result.Personal = []entity.NetBalance{{
			CounterpartyID:   "u-2",
			CounterpartyName: "Bob",
			NetBalance:       decimal.RequireFromString("20"),
			TheyOweMe:        decimal.RequireFromString("20"),
			IOweThem:         decimal.Zero,
		}}
		a.balances.EXPECT().GetBalances(mock.Anything, callerUser, entity.BalanceFilter{}).Return(result, nil).Once()

		// Act
		rec := a.do(t, http.MethodGet, "/api/expenses/balances", nil)

		// Assert
		assertStatus(t, http.StatusOK, rec)
		body := decode[dto.BalanceResponse](t, rec)
		assert.Equal(t, callerUser, body.UserID)
		require.Len(t, body.Personal, 1)
		assert.Equal(t, "20.00", body.Personal[0].NetBalance)
		assert.Equal(t, "0.00", body.Personal[0].IOweThem)
		assert.NotNil(t, body.Group)
	})

	t.Run("Single group", func(t *testing.T) {
		a := newAPI(t)
		a.balances.EXPECT().GetBalances(mock.Anything, callerUser, entity.BalanceFilter{
			Scope:   entity.ScopeGroup,
			GroupID: "g-1",
		}).Return(entity.NewEmptyBalanceResult(), nil).Once()

		rec := a.do(t, http.MethodGet, "/api/expenses/balances?balance_type=group&group_id=g-1", nil)

		assertStatus(t, http.StatusOK, rec)
		assert.JSONEq(t, `{"user_id":"u-1","personal":[],"group":[]}`, rec.Body.String())
	})

	t.Run("Request context carries a deadline", func(t *testing.T) {
		a := newAPI(t)
		a.balances.EXPECT().GetBalances(mock.MatchedBy(func(ctx context.Context) bool {
			deadline, ok := ctx.Deadline()
			return ok && time.Until(deadline) <= requestTimeout
		}), callerUser, entity.BalanceFilter{}).Return(entity.NewEmptyBalanceResult(), nil).Once()

		rec := a.do(t, http.MethodGet, "/api/expenses/balances", nil)

		assertStatus(t, http.StatusOK, rec)
	})

	t.Run("Invalid balance type", func(t *testing.T) {
		a := newAPI(t)

		rec := a.do(t, http.MethodGet, "/api/expenses/balances?balance_type=everything", nil)

		assertStatus(t, http.StatusBadRequest, rec)
	})
}

func TestExpenseByIDHandlers(t *testing.T) {
	t.Run("Get visible expense", func(t *testing.T) {
		a := newAPI(t)
		a.expenses.EXPECT().GetExpense(mock.Anything, callerUser, "e-1").Return(dinner(), nil).Once()

		rec := a.do(t, http.MethodGet, "/api/expenses/e-1", nil)

		assertStatus(t, http.StatusOK, rec)
		assert.Equal(t, "e-1", decode[dto.ExpenseResponse](t, rec).ExpenseID)
	})

	t.Run("Balances route is not an expense id", func(t *testing.T) {
		a := newAPI(t)
		a.balances.EXPECT().GetBalances(mock.Anything, callerUser, mock.Anything).Return(entity.NewEmptyBalanceResult(), nil).Once()

		rec := a.do(t, http.MethodGet, "/api/expenses/balances", nil)

		assertStatus(t, http.StatusOK, rec)
	})

	t.Run("Update by non payer", func(t *testing.T) {
		a := newAPI(t)
		a.expenses.EXPECT().UpdateExpense(mock.Anything, callerUser, "e-1", mock.MatchedBy(func(u entity.ExpenseUpdate) bool {
			return u.Description != nil && *u.Description == "Lunch" && u.Amount == nil && u.Participants == nil
		})).Return(nil, errs.ErrNotAuthorized).Once()

		rec := a.do(t, http.MethodPut, "/api/expenses/e-1", map[string]string{"description": "Lunch"})

		assertStatus(t, http.StatusForbidden, rec)
	})

	t.Run("Update replaces participants", func(t *testing.T) {
		a := newAPI(t)
		a.expenses.EXPECT().UpdateExpense(mock.Anything, callerUser, "e-1", mock.MatchedBy(func(u entity.ExpenseUpdate) bool {
			return u.Amount != nil && u.Amount.Equal(decimal.RequireFromString("40")) && len(u.Participants) == 1
		})).Return(dinner(), nil).Once()

		rec := a.do(t, http.MethodPut, "/api/expenses/e-1", `{"amount": "40", "participants": [{"user_id": "u-2", "share": 40}]}`)

		assertStatus(t, http.StatusOK, rec)
	})

	t.Run("Delete", func(t *testing.T) {
		a := newAPI(t)
		a.expenses.EXPECT().DeleteExpense(mock.Anything, callerUser, "e-1").Return(nil).Once()

		rec := a.do(t, http.MethodDelete, "/api/expenses/e-1", nil)

		assertStatus(t, http.StatusOK, rec)
	})

	t.Run("Group listing for non member", func(t *testing.T) {
		a := newAPI(t)
		a.expenses.EXPECT().ListGroupExpenses(mock.Anything, callerUser, "g-1").Return(nil, errs.ErrNotAuthorized).Once()

		rec := a.do(t, http.MethodGet, "/api/expenses/group/g-1", nil)

		assertStatus(t, http.StatusForbidden, rec)
	})
}
