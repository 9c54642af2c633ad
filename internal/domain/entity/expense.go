package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/expense-splitter/internal/domain/error"
	coreport "github.com/amirhossein-jamali/expense-splitter/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// Scope tells whether an expense is a personal split or belongs to a group
type Scope string

// Expense scopes
const (
	ScopePersonal Scope = "personal"
	ScopeGroup    Scope = "group"
)

// MaxDescriptionLength bounds the free-text description
const MaxDescriptionLength = 255

// ParseScope validates a scope string
func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case ScopePersonal, ScopeGroup:
		return Scope(s), nil
	default:
		return "", errs.ErrInvalidScope
	}
}

// ParticipantShare is a requested share of an expense
type ParticipantShare struct {
	UserID string
	Share  decimal.Decimal
}

// ExpenseParticipant is a persisted share of an expense
type ExpenseParticipant struct {
	ExpenseID string
	UserID    string
	Username  string // filled on reads, empty on writes
	Share     decimal.Decimal
}

// Expense is an amount paid by one user and split across participants
type Expense struct {
	ID           string
	Description  string
	Amount       decimal.Decimal
	Scope        Scope
	GroupID      string // empty for personal expenses
	PaidBy       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Participants []ExpenseParticipant
}

// ExpenseDraft is the unvalidated input for a new expense
type ExpenseDraft struct {
	PayerID      string
	Amount       decimal.Decimal
	Description  string
	Scope        string
	GroupID      string
	Participants []ParticipantShare
}

// ValidateShape runs the checks that need no store access, in the order callers see them:
// amount, participants, scope, group reference
func (draft ExpenseDraft) ValidateShape() (Scope, error) {
	if err := ValidateExpenseAmount(draft.Amount); err != nil {
		return "", err
	}
	if len(draft.Participants) == 0 {
		return "", errs.ErrMissingParticipants
	}
	scope, err := ParseScope(draft.Scope)
	if err != nil {
		return "", err
	}
	if scope == ScopeGroup && strings.TrimSpace(draft.GroupID) == "" {
		return "", errs.ErrMissingGroup
	}
	return scope, nil
}

// ValidateShares checks every share and the share-sum invariant
func ValidateShares(amount decimal.Decimal, participants []ParticipantShare) error {
	seen := make(map[string]struct{}, len(participants))
	total := decimal.Zero
	for _, p := range participants {
		if strings.TrimSpace(p.UserID) == "" {
			return errs.NewValidationError("participants", "user_id is required", nil)
		}
		if _, dup := seen[p.UserID]; dup {
			return errs.NewValidationError("participants", fmt.Sprintf("user %s listed twice", p.UserID), nil)
		}
		seen[p.UserID] = struct{}{}
		if err := ValidateShare(p.Share); err != nil {
			return err
		}
		total = total.Add(p.Share)
	}
	if !WithinEpsilon(total, amount) {
		return errs.NewValidationError("participants",
			fmt.Sprintf("shares total %s, amount is %s", FormatAmount(total), FormatAmount(amount)),
			errs.ErrShareMismatch)
	}
	return nil
}

// NewExpense builds an expense and its participant rows from a validated draft
func NewExpense(id string, draft ExpenseDraft, timeProvider coreport.TimeProvider) (*Expense, error) {
	scope, err := draft.ValidateShape()
	if err != nil {
		return nil, err
	}
	if err := ValidateShares(draft.Amount, draft.Participants); err != nil {
		return nil, err
	}
	description, err := normalizeDescription(draft.Description)
	if err != nil {
		return nil, err
	}

	groupID := ""
	if scope == ScopeGroup {
		groupID = strings.TrimSpace(draft.GroupID)
	}

	now := timeProvider.Now()
	expense := &Expense{
		ID:          id,
		Description: description,
		Amount:      draft.Amount,
		Scope:       scope,
		GroupID:     groupID,
		PaidBy:      draft.PayerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	expense.SetParticipants(draft.Participants)
	return expense, nil
}

// SetParticipants replaces the participant rows
func (e *Expense) SetParticipants(shares []ParticipantShare) {
	e.Participants = make([]ExpenseParticipant, 0, len(shares))
	for _, s := range shares {
		e.Participants = append(e.Participants, ExpenseParticipant{
			ExpenseID: e.ID,
			UserID:    s.UserID,
			Share:     s.Share,
		})
	}
}

// IsPayer reports whether userID paid the expense
func (e *Expense) IsPayer(userID string) bool {
	return e.PaidBy == userID
}

// HasParticipant reports whether userID holds a share of the expense
func (e *Expense) HasParticipant(userID string) bool {
	for _, p := range e.Participants {
		if p.UserID == userID {
			return true
		}
	}
	return false
}

// ShareTotal sums the participant shares
func (e *Expense) ShareTotal() decimal.Decimal {
	total := decimal.Zero
	for _, p := range e.Participants {
		total = total.Add(p.Share)
	}
	return total
}

// ExpenseUpdate carries the optional fields of an expense edit
type ExpenseUpdate struct {
	Amount       *decimal.Decimal
	Description  *string
	Participants []ParticipantShare // nil keeps the existing shares
}

// IsEmpty reports whether the update carries no fields
func (u ExpenseUpdate) IsEmpty() bool {
	return u.Amount == nil && u.Description == nil && u.Participants == nil
}

// Apply validates and applies an update. Shares are only re-checked against the
// amount when participants are re-submitted.
func (e *Expense) Apply(update ExpenseUpdate, timeProvider coreport.TimeProvider) error {
	if update.IsEmpty() {
		return errs.ErrNoUpdateData
	}

	amount := e.Amount
	if update.Amount != nil {
		if err := ValidateExpenseAmount(*update.Amount); err != nil {
			return err
		}
		amount = *update.Amount
	}

	description := e.Description
	if update.Description != nil {
		normalized, err := normalizeDescription(*update.Description)
		if err != nil {
			return err
		}
		description = normalized
	}

	if update.Participants != nil {
		if len(update.Participants) == 0 {
			return errs.ErrMissingParticipants
		}
		if err := ValidateShares(amount, update.Participants); err != nil {
			return err
		}
		e.SetParticipants(update.Participants)
	}

	e.Amount = amount
	e.Description = description
	e.UpdatedAt = timeProvider.Now()
	return nil
}

func normalizeDescription(description string) (string, error) {
	description = strings.TrimSpace(description)
	if len(description) > MaxDescriptionLength {
		return "", errs.NewValidationError("description", "must be at most 255 characters", nil)
	}
	return description, nil
}

// ExpenseShare is one participant row joined with its parent expense and the
// names of the people and group involved. It is the input row of the balance calculation.
type ExpenseShare struct {
	ExpenseID       string
	Scope           Scope
	GroupID         string
	GroupName       string
	PayerID         string
	PayerName       string
	ParticipantID   string
	ParticipantName string
	Share           decimal.Decimal
}

// ExpenseFilter narrows an expense listing
type ExpenseFilter struct {
	Scope   Scope  // empty for any scope
	GroupID string // empty for any group
}
