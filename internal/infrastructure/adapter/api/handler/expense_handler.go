package handler

import (
	"net/http"

	"github.com/amirhossein-jamali/expense-splitter/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/expense-splitter/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-splitter/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ExpenseHandler handles expense and balance requests
type ExpenseHandler struct {
	expenseUseCase usecase.ExpenseUseCase
	balanceUseCase usecase.BalanceUseCase
	logger         coreport.Logger
}

// NewExpenseHandler creates a new expense handler instance
func NewExpenseHandler(
	expenseUseCase usecase.ExpenseUseCase,
	balanceUseCase usecase.BalanceUseCase,
	logger coreport.Logger,
) *ExpenseHandler {
	return &ExpenseHandler{
		expenseUseCase: expenseUseCase,
		balanceUseCase: balanceUseCase,
		logger:         logger,
	}
}

// CreateExpense handles POST /api/expenses. The payer is the caller.
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	userID, ok := callerID(c, h.logger)
	if !ok {
		return
	}

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	expense, err := h.expenseUseCase.CreateExpense(c.Request.Context(), req.ToDraft(userID))
	if err != nil {
		respondError(c, h.logger, "create expense", err)
		return
	}

	c.JSON(http.StatusCreated, dto.ExpenseEnvelope{
		Message: "Expense created successfully",
		Expense: dto.FromExpense(expense),
	})
}

// ListExpenses handles GET /api/expenses?expense_type=&group_id=
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	userID, ok := callerID(c, h.logger)
	if !ok {
		return
	}

	filter := entity.ExpenseFilter{GroupID: c.Query("group_id")}
	if expenseType := c.Query("expense_type"); expenseType != "" {
		scope, err := entity.ParseScope(expenseType)
		if err != nil {
			respondError(c, h.logger, "list expenses", err)
			return
		}
		filter.Scope = scope
	}

	expenses, err := h.expenseUseCase.ListUserExpenses(c.Request.Context(), userID, filter)
	if err != nil {
		respondError(c, h.logger, "list expenses", err)
		return
	}

	c.JSON(http.StatusOK, dto.FromExpenses(expenses))
}

// GetBalances handles GET /api/expenses/balances?balance_type=&group_id=
func (h *ExpenseHandler) GetBalances(c *gin.Context) {
	userID, ok := callerID(c, h.logger)
	if !ok {
		return
	}

	filter, err := entity.ParseBalanceFilter(c.Query("balance_type"), c.Query("group_id"))
	if err != nil {
		respondError(c, h.logger, "get balances", err)
		return
	}

	result, err := h.balanceUseCase.GetBalances(c.Request.Context(), userID, filter)
	if err != nil {
		respondError(c, h.logger, "get balances", err)
		return
	}

	c.JSON(http.StatusOK, dto.FromBalanceResult(userID, result))
}

// ListGroupExpenses handles GET /api/expenses/group/:group_id
func (h *ExpenseHandler) ListGroupExpenses(c *gin.Context) {
	userID, ok := callerID(c, h.logger)
	if !ok {
		return
	}

	expenses, err := h.expenseUseCase.ListGroupExpenses(c.Request.Context(), userID, c.Param("group_id"))
	if err != nil {
		respondError(c, h.logger, "list group expenses", err)
		return
	}

	c.JSON(http.StatusOK, dto.FromExpenses(expenses))
}

// GetExpense handles GET /api/expenses/:expense_id
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	userID, ok := callerID(c, h.logger)
	if !ok {
		return
	}

	expense, err := h.expenseUseCase.GetExpense(c.Request.Context(), userID, c.Param("expense_id"))
	if err != nil {
		respondError(c, h.logger, "get expense", err)
		return
	}

	c.JSON(http.StatusOK, dto.FromExpense(expense))
}

// UpdateExpense handles PUT /api/expenses/:expense_id
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	userID, ok := callerID(c, h.logger)
	if !ok {
		return
	}

	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	expense, err := h.expenseUseCase.UpdateExpense(c.Request.Context(), userID, c.Param("expense_id"), req.ToUpdate())
	if err != nil {
		respondError(c, h.logger, "update expense", err)
		return
	}

	c.JSON(http.StatusOK, dto.ExpenseEnvelope{
		Message: "Expense updated successfully",
		Expense: dto.FromExpense(expense),
	})
}

// DeleteExpense handles DELETE /api/expenses/:expense_id
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID, ok := callerID(c, h.logger)
	if !ok {
		return
	}

	if err := h.expenseUseCase.DeleteExpense(c.Request.Context(), userID, c.Param("expense_id")); err != nil {
		respondError(c, h.logger, "delete expense", err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Expense deleted successfully"})
}
