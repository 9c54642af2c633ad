package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/expense-splitter/internal/domain/entity"
)

// ParticipantRequest is one requested share. Amounts accept JSON numbers or strings.
type ParticipantRequest struct {
	UserID string          `json:"user_id"`
	Share  decimal.Decimal `json:"share"`
}

// CreateExpenseRequest represents the API request for recording an expense.
// The payer is always the authenticated caller. Fields carry no binding rules
// so the recorder reports the first failed check in its own order.
type CreateExpenseRequest struct {
	Amount       decimal.Decimal      `json:"amount"`
	Description  string               `json:"description"`
	ExpenseType  string               `json:"expense_type"`
	GroupID      string               `json:"group_id"`
	Participants []ParticipantRequest `json:"participants"`
}

// UpdateExpenseRequest carries optional expense changes
type UpdateExpenseRequest struct {
	Amount       *decimal.Decimal     `json:"amount"`
	Description  *string              `json:"description"`
	Participants []ParticipantRequest `json:"participants"`
}

// ToDraft converts the request into an unvalidated expense draft
func (r CreateExpenseRequest) ToDraft(payerID string) entity.ExpenseDraft {
	return entity.ExpenseDraft{
		PayerID:      payerID,
		Amount:       r.Amount,
		Description:  r.Description,
		Scope:        r.ExpenseType,
		GroupID:      r.GroupID,
		Participants: toShares(r.Participants),
	}
}

// ToUpdate converts the request into an expense update
func (r UpdateExpenseRequest) ToUpdate() entity.ExpenseUpdate {
	return entity.ExpenseUpdate{
		Amount:       r.Amount,
		Description:  r.Description,
		Participants: toShares(r.Participants),
	}
}

func toShares(participants []ParticipantRequest) []entity.ParticipantShare {
	if participants == nil {
		return nil
	}
	shares := make([]entity.ParticipantShare, 0, len(participants))
	for _, p := range participants {
		shares = append(shares, entity.ParticipantShare{UserID: p.UserID, Share: p.Share})
	}
	return shares
}

// ParticipantResponse is one persisted share
type ParticipantResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username,omitempty"`
	Share    string `json:"share"`
}

// ExpenseResponse is the public view of an expense
type ExpenseResponse struct {
	ExpenseID    string                `json:"expense_id"`
	Description  string                `json:"description"`
	Amount       string                `json:"amount"`
	ExpenseType  string                `json:"expense_type"`
	GroupID      *string               `json:"group_id"`
	PaidBy       string                `json:"paid_by"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
	Participants []ParticipantResponse `json:"participants"`
}

// ExpenseEnvelope wraps an expense with a status message
type ExpenseEnvelope struct {
	Message string          `json:"message"`
	Expense ExpenseResponse `json:"expense"`
}

// ExpensesResponse lists expenses
type ExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Count    int               `json:"count"`
}

// FromExpense converts a domain expense
func FromExpense(e *entity.Expense) ExpenseResponse {
	participants := make([]ParticipantResponse, 0, len(e.Participants))
	for _, p := range e.Participants {
		participants = append(participants, ParticipantResponse{
			UserID:   p.UserID,
			Username: p.Username,
			Share:    entity.FormatAmount(p.Share),
		})
	}

	var groupID *string
	if e.GroupID != "" {
		id := e.GroupID
		groupID = &id
	}

	return ExpenseResponse{
		ExpenseID:    e.ID,
		Description:  e.Description,
		Amount:       entity.FormatAmount(e.Amount),
		ExpenseType:  string(e.Scope),
		GroupID:      groupID,
		PaidBy:       e.PaidBy,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
		Participants: participants,
	}
}

// FromExpenses converts an expense list, never returning nil
func FromExpenses(expenses []*entity.Expense) ExpensesResponse {
	out := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, FromExpense(e))
	}
	return ExpensesResponse{Expenses: out, Count: len(out)}
}
