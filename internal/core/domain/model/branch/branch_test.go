package branch_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/branch"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCapacity(t *testing.T) {
	_, err := branch.NewCapacity(-1, decimal.NewFromInt(10))
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = branch.NewCapacity(10, decimal.NewFromInt(-10))
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	c, err := branch.NewCapacity(100, decimal.NewFromInt(400))
	require.NoError(t, err)
	assert.Equal(t, 100, c.MaxOrdersPerDay())
}

func TestCapacity_Admits(t *testing.T) {
	c, _ := branch.NewCapacity(3, decimal.NewFromInt(20))
	five, _ := kernel.WeightFromKg(5)
	fifteen, _ := kernel.WeightFromKg(15)

	t.Run("count below max admits", func(t *testing.T) {
		ok, _ := c.Admits(branch.Load{Orders: 2, Weight: fifteen}, five)
		assert.True(t, ok)
	})

	t.Run("count at max refuses", func(t *testing.T) {
		ok, reason := c.Admits(branch.Load{Orders: 3, Weight: kernel.ZeroWeight()}, five)
		assert.False(t, ok)
		assert.Equal(t, "3/3 orders today", reason)
	})

	t.Run("weight over max refuses", func(t *testing.T) {
		ok, reason := c.Admits(branch.Load{Orders: 1, Weight: fifteen.Add(five)}, five)
		assert.False(t, ok)
		assert.Contains(t, reason, "kg today")
	})
}

func TestSchedule(t *testing.T) {
	s, err := branch.NewSchedule("Asia/Kolkata",
		[]time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		[]string{"2026-10-20"})
	require.NoError(t, err)

	monday := time.Date(2026, 10, 19, 4, 0, 0, 0, time.UTC)
	tuesdayHoliday := time.Date(2026, 10, 20, 4, 0, 0, 0, time.UTC)
	sunday := time.Date(2026, 10, 18, 4, 0, 0, 0, time.UTC)
	lateSundayUTCIsMondayIST := time.Date(2026, 10, 18, 20, 0, 0, 0, time.UTC)

	assert.True(t, s.IsOpenOn(monday))
	assert.False(t, s.IsOpenOn(tuesdayHoliday))
	assert.False(t, s.IsOpenOn(sunday))
	assert.True(t, s.IsOpenOn(lateSundayUTCIsMondayIST))

	start, end := s.DayWindow(monday)
	assert.Equal(t, time.Date(2026, 10, 18, 18, 30, 0, 0, time.UTC), start.UTC())
	assert.Equal(t, 24*time.Hour, end.Sub(start))

	_, err = branch.NewSchedule("Mars/Olympus", []time.Weekday{time.Monday}, nil)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	_, err = branch.NewSchedule("UTC", nil, nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	_, err = branch.NewSchedule("UTC", []time.Weekday{time.Monday}, []string{"19/10/2026"})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewBranch(t *testing.T) {
	c, _ := branch.NewCapacity(100, decimal.NewFromInt(400))
	s, _ := branch.EveryDay("UTC")

	b, err := branch.NewBranch(kernel.NewUUID(), "Indiranagar", c, s)
	require.NoError(t, err)
	require.NoError(t, b.Validate())
	assert.True(t, b.IsActive())

	b.Deactivate()
	assert.False(t, b.IsActive())

	_, err = branch.NewBranch(kernel.UUID{}, " ", c, s)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
