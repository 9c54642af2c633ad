package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/expense-splitter/internal/domain/error"
	"github.com/shopspring/decimal"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// Epsilon is the tolerance, in currency units, below which a share mismatch or a
// net balance is treated as zero. Expense validation and balance computation both use it.
var Epsilon = decimal.New(1, -MaxDecimalPlaces)

// MaxAmount is the largest amount storable in a numeric(12,2) column
var MaxAmount = decimal.RequireFromString("9999999999.99")

// ParseAmount parses a decimal string such as "12.50" into a decimal value
func ParseAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}
	return value, nil
}

// ValidateExpenseAmount checks an expense total is positive, bounded and has at most two decimals
func ValidateExpenseAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.ErrInvalidAmount
	}
	if amount.GreaterThan(MaxAmount) {
		return fmt.Errorf("%w: exceeds %s", errs.ErrInvalidAmount, MaxAmount.StringFixed(MaxDecimalPlaces))
	}
	if !hasValidPrecision(amount) {
		return fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}
	return nil
}

// ValidateShare checks a participant share is non-negative, bounded and has at most two decimals
func ValidateShare(share decimal.Decimal) error {
	if share.IsNegative() {
		return errs.NewValidationError("share", "must not be negative", nil)
	}
	if share.GreaterThan(MaxAmount) {
		return errs.NewValidationError("share", "too large", nil)
	}
	if !hasValidPrecision(share) {
		return errs.NewValidationError("share", fmt.Sprintf("maximum %d decimal places allowed", MaxDecimalPlaces), nil)
	}
	return nil
}

// WithinEpsilon reports whether a and b differ by no more than Epsilon
func WithinEpsilon(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(Epsilon)
}

// IsSettled reports whether a balance is small enough to be treated as zero
func IsSettled(balance decimal.Decimal) bool {
	return balance.Abs().LessThanOrEqual(Epsilon)
}

// FormatAmount renders a value with exactly two decimal places
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(MaxDecimalPlaces)
}

func hasValidPrecision(amount decimal.Decimal) bool {
	return amount.Equal(amount.Truncate(MaxDecimalPlaces))
}
