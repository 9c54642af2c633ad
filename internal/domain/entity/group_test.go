package entity

import (
	"strings"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/expense-splitter/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/expense-splitter/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGroup(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Creator is enrolled at creation time", func(t *testing.T) {
		group, err := NewGroup("g-1", " Trip ", " beach ", "u-1", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "Trip", group.Name)
		assert.Equal(t, "beach", group.Description)
		assert.True(t, group.IsCreator("u-1"))
		assert.False(t, group.IsCreator("u-2"))
		assert.Equal(t, Membership{GroupID: "g-1", UserID: "u-1", JoinedAt: fixedTime}, group.CreatorMembership())
	})

	t.Run("Name is required", func(t *testing.T) {
		_, err := NewGroup("g-1", "  ", "", "u-1", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("Name is bounded", func(t *testing.T) {
		_, err := NewGroup("g-1", strings.Repeat("x", MaxGroupNameLength+1), "", "u-1", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("Creator is required", func(t *testing.T) {
		_, err := NewGroup("g-1", "Trip", "", "", mockTime)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})
}

func TestGroupApply(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	group, err := NewGroup("g-1", "Trip", "beach", "u-1", mockTime)
	require.NoError(t, err)

	assert.ErrorIs(t, group.Apply(nil, nil, mockTime), errs.ErrNoUpdateData)

	name := "Road trip"
	require.NoError(t, group.Apply(&name, nil, mockTime))
	assert.Equal(t, "Road trip", group.Name)
	assert.Equal(t, "beach", group.Description)

	empty := ""
	require.NoError(t, group.Apply(nil, &empty, mockTime))
	assert.Equal(t, "", group.Description)

	blank := " "
	assert.ErrorIs(t, group.Apply(&blank, nil, mockTime), errs.ErrInvalidInput)
	assert.Equal(t, "Road trip", group.Name)
}
