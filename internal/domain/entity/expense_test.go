package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/expense-splitter/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/expense-splitter/mocks/port/core"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shares(pairs ...string) []ParticipantShare {
	out := make([]ParticipantShare, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, ParticipantShare{UserID: pairs[i], Share: decimal.RequireFromString(pairs[i+1])})
	}
	return out
}

func TestExpenseDraftValidateShape(t *testing.T) {
	testCases := []struct {
		name     string
		draft    ExpenseDraft
		expected error
	}{
		{
			name:     "Zero amount",
			draft:    ExpenseDraft{Amount: decimal.Zero, Scope: "personal", Participants: shares("a", "0")},
			expected: errs.ErrInvalidAmount,
		},
		{
			name:     "Amount checked before participants",
			draft:    ExpenseDraft{Amount: d("-3"), Scope: "bogus"},
			expected: errs.ErrInvalidAmount,
		},
		{
			name:     "No participants",
			draft:    ExpenseDraft{Amount: d("10"), Scope: "bogus"},
			expected: errs.ErrMissingParticipants,
		},
		{
			name:     "Unknown scope",
			draft:    ExpenseDraft{Amount: d("10"), Scope: "shared", Participants: shares("a", "10")},
			expected: errs.ErrInvalidScope,
		},
		{
			name:     "Group scope without group",
			draft:    ExpenseDraft{Amount: d("10"), Scope: "group", GroupID: "  ", Participants: shares("a", "10")},
			expected: errs.ErrMissingGroup,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.draft.ValidateShape()
			assert.ErrorIs(t, err, tc.expected)
		})
	}

	scope, err := ExpenseDraft{Amount: d("10"), Scope: "group", GroupID: "g", Participants: shares("a", "10")}.ValidateShape()
	require.NoError(t, err)
	assert.Equal(t, ScopeGroup, scope)
}

func TestValidateShares(t *testing.T) {
	t.Run("Exact sum", func(t *testing.T) {
		assert.NoError(t, ValidateShares(d("50"), shares("a", "25", "b", "25")))
	})

	t.Run("Within tolerance", func(t *testing.T) {
		assert.NoError(t, ValidateShares(d("100"), shares("a", "33.33", "b", "33.33", "c", "33.33")))
		assert.NoError(t, ValidateShares(d("10"), shares("a", "10.01")))
	})

	t.Run("Mismatch", func(t *testing.T) {
		err := ValidateShares(d("50"), shares("a", "24.50", "b", "24.50"))
		assert.ErrorIs(t, err, errs.ErrShareMismatch)
		assert.Equal(t, errs.KindInvalidInput, errs.KindOf(err))
	})

	t.Run("Just outside tolerance", func(t *testing.T) {
		assert.ErrorIs(t, ValidateShares(d("10"), shares("a", "9.98")), errs.ErrShareMismatch)
	})

	t.Run("Duplicate participant", func(t *testing.T) {
		err := ValidateShares(d("10"), shares("a", "5", "a", "5"))
		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("Negative share", func(t *testing.T) {
		err := ValidateShares(d("10"), shares("a", "15", "b", "-5"))
		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("Missing user id", func(t *testing.T) {
		err := ValidateShares(d("10"), shares("", "10"))
		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})
}

func TestNewExpense(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Personal expense drops group reference", func(t *testing.T) {
		expense, err := NewExpense("e-1", ExpenseDraft{
			PayerID:      "a",
			Amount:       d("50"),
			Description:  "  dinner ",
			Scope:        "personal",
			GroupID:      "g-ignored",
			Participants: shares("a", "25", "b", "25"),
		}, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "e-1", expense.ID)
		assert.Equal(t, "dinner", expense.Description)
		assert.Equal(t, ScopePersonal, expense.Scope)
		assert.Empty(t, expense.GroupID)
		assert.True(t, expense.IsPayer("a"))
		assert.True(t, expense.HasParticipant("b"))
		assert.False(t, expense.HasParticipant("c"))
		require.Len(t, expense.Participants, 2)
		for _, p := range expense.Participants {
			assert.Equal(t, "e-1", p.ExpenseID)
		}
		assert.True(t, expense.ShareTotal().Equal(d("50")))
		assert.Equal(t, fixedTime, expense.CreatedAt)
	})

	t.Run("Group expense keeps group reference", func(t *testing.T) {
		expense, err := NewExpense("e-2", ExpenseDraft{
			PayerID:      "a",
			Amount:       d("30"),
			Scope:        "group",
			GroupID:      "g-1",
			Participants: shares("a", "10", "b", "10", "c", "10"),
		}, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "g-1", expense.GroupID)
		assert.Equal(t, ScopeGroup, expense.Scope)
	})

	t.Run("Share mismatch", func(t *testing.T) {
		_, err := NewExpense("e-3", ExpenseDraft{
			PayerID:      "a",
			Amount:       d("50"),
			Scope:        "personal",
			Participants: shares("a", "24.50", "b", "24.50"),
		}, mockTime)

		assert.ErrorIs(t, err, errs.ErrShareMismatch)
	})
}

func TestExpenseApply(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(created).Maybe()

	newExpense := func() *Expense {
		expense, err := NewExpense("e-1", ExpenseDraft{
			PayerID: "a", Amount: d("50"), Scope: "personal",
			Participants: shares("a", "25", "b", "25"),
		}, mockTime)
		require.NoError(t, err)
		return expense
	}

	t.Run("Empty update", func(t *testing.T) {
		assert.ErrorIs(t, newExpense().Apply(ExpenseUpdate{}, mockTime), errs.ErrNoUpdateData)
	})

	t.Run("Amount alone is not checked against stored shares", func(t *testing.T) {
		expense := newExpense()
		amount := d("60")
		require.NoError(t, expense.Apply(ExpenseUpdate{Amount: &amount}, mockTime))
		assert.True(t, expense.Amount.Equal(amount))
		assert.True(t, expense.ShareTotal().Equal(d("50")))
	})

	t.Run("Re-submitted shares are checked against the new amount", func(t *testing.T) {
		expense := newExpense()
		amount := d("60")
		err := expense.Apply(ExpenseUpdate{Amount: &amount, Participants: shares("a", "25", "b", "25")}, mockTime)
		assert.ErrorIs(t, err, errs.ErrShareMismatch)
		assert.True(t, expense.Amount.Equal(d("50")))

		require.NoError(t, expense.Apply(ExpenseUpdate{Amount: &amount, Participants: shares("a", "30", "b", "30")}, mockTime))
		assert.True(t, expense.ShareTotal().Equal(amount))
	})

	t.Run("Invalid amount", func(t *testing.T) {
		expense := newExpense()
		amount := d("0")
		assert.ErrorIs(t, expense.Apply(ExpenseUpdate{Amount: &amount}, mockTime), errs.ErrInvalidAmount)
	})

	t.Run("Description", func(t *testing.T) {
		expense := newExpense()
		desc := " lunch "
		require.NoError(t, expense.Apply(ExpenseUpdate{Description: &desc}, mockTime))
		assert.Equal(t, "lunch", expense.Description)
	})
}

func TestBalanceFilter(t *testing.T) {
	all, err := ParseBalanceFilter("", "g-1")
	require.NoError(t, err)
	assert.True(t, all.IncludesPersonal())
	assert.True(t, all.IncludesGroup("g-1"))
	assert.True(t, all.IncludesGroup("g-2"))

	personal, err := ParseBalanceFilter("personal", "g-1")
	require.NoError(t, err)
	assert.True(t, personal.IncludesPersonal())
	assert.False(t, personal.IncludesGroup("g-1"))

	groups, err := ParseBalanceFilter("group", "")
	require.NoError(t, err)
	assert.False(t, groups.IncludesPersonal())
	assert.True(t, groups.IncludesGroup("g-2"))

	single, err := ParseBalanceFilter("group", "g-1")
	require.NoError(t, err)
	assert.True(t, single.IncludesGroup("g-1"))
	assert.False(t, single.IncludesGroup("g-2"))

	_, err = ParseBalanceFilter("settled", "")
	assert.ErrorIs(t, err, errs.ErrInvalidScope)
}
