package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents the database model for expenses
type Expense struct {
	ID          string          `gorm:"primaryKey;type:varchar(36)"`
	Description string          `gorm:"type:varchar(255)"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ExpenseType string          `gorm:"type:varchar(16);not null"`
	GroupID     *string         `gorm:"type:varchar(36);index:idx_expenses_group_id"`
	PaidBy      string          `gorm:"type:varchar(36);not null;index:idx_expenses_paid_by"`
	CreatedAt   time.Time       `gorm:"not null;index:idx_expenses_created_at"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName specifies the table name for Expense
func (Expense) TableName() string {
	return "expenses"
}

// ExpenseParticipant is one user's share of an expense
type ExpenseParticipant struct {
	ExpenseID string          `gorm:"primaryKey;type:varchar(36)"`
	UserID    string          `gorm:"primaryKey;type:varchar(36);index:idx_expense_participants_user_id"`
	Share     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the table name for ExpenseParticipant
func (ExpenseParticipant) TableName() string {
	return "expense_participants"
}
