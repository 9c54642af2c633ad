package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/expense-splitter/internal/domain/error"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestParseAmount(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected string
		}{
			{"100.00", "100.00"},
			{"0.01", "0.01"},
			{" 1.5 ", "1.50"},
			{"1234567.89", "1234567.89"},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				value, err := ParseAmount(tc.input)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, FormatAmount(value))
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		for _, input := range []string{"", "   ", "abc", "1,000.00", "$100"} {
			t.Run(input, func(t *testing.T) {
				_, err := ParseAmount(input)
				assert.ErrorIs(t, err, errs.ErrInvalidAmount)
			})
		}
	})
}

func TestValidateExpenseAmount(t *testing.T) {
	assert.NoError(t, ValidateExpenseAmount(d("0.01")))
	assert.NoError(t, ValidateExpenseAmount(d("50")))
	assert.NoError(t, ValidateExpenseAmount(d("10.500")))
	assert.NoError(t, ValidateExpenseAmount(MaxAmount))

	assert.ErrorIs(t, ValidateExpenseAmount(decimal.Zero), errs.ErrInvalidAmount)
	assert.ErrorIs(t, ValidateExpenseAmount(d("-1")), errs.ErrInvalidAmount)
	assert.ErrorIs(t, ValidateExpenseAmount(d("1.234")), errs.ErrInvalidAmount)
	assert.ErrorIs(t, ValidateExpenseAmount(d("10000000000")), errs.ErrInvalidAmount)
}

func TestValidateShare(t *testing.T) {
	assert.NoError(t, ValidateShare(decimal.Zero))
	assert.NoError(t, ValidateShare(d("33.33")))

	err := ValidateShare(d("-0.01"))
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
	assert.ErrorIs(t, ValidateShare(d("3.333")), errs.ErrInvalidInput)
}

func TestEpsilonComparisons(t *testing.T) {
	testCases := []struct {
		a, b   string
		within bool
	}{
		{"50.00", "50.00", true},
		{"50.00", "49.99", true},
		{"50.00", "50.01", true},
		{"50.00", "49.98", false},
		{"50.00", "49.00", false},
		{"100.00", "99.999", true},
	}

	for _, tc := range testCases {
		t.Run(tc.a+"_"+tc.b, func(t *testing.T) {
			assert.Equal(t, tc.within, WithinEpsilon(d(tc.a), d(tc.b)))
		})
	}

	assert.True(t, IsSettled(d("0.01")))
	assert.True(t, IsSettled(d("-0.01")))
	assert.True(t, IsSettled(decimal.Zero))
	assert.False(t, IsSettled(d("0.02")))
	assert.False(t, IsSettled(d("-5")))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "25.00", FormatAmount(d("25")))
	assert.Equal(t, "-5.50", FormatAmount(d("-5.5")))
	assert.Equal(t, "0.00", FormatAmount(decimal.Zero))
}
