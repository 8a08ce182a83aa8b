package schedule

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/sip-processor/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestInitialNextDeduction(t *testing.T) {
	testCases := []struct {
		description string
		frequency   Frequency
		start       time.Time
		day         int
		now         time.Time
		expected    time.Time
	}{
		{"Monthly day still ahead", Monthly, date(2024, 1, 10), 15, date(2024, 1, 5), date(2024, 1, 15)},
		{"Monthly day already passed", Monthly, date(2024, 1, 10), 15, date(2024, 1, 20), date(2024, 2, 15)},
		{"Monthly day equal to now", Monthly, date(2024, 1, 10), 15, date(2024, 1, 15), date(2024, 1, 15)},
		{"Monthly day before start in the future", Monthly, date(2024, 6, 20), 5, date(2024, 1, 1), date(2024, 6, 5)},
		{"Monthly day 31 in a 30-day month rolls over", Monthly, date(2024, 4, 1), 31, date(2024, 3, 1), date(2024, 5, 1)},
		{"Weekly from Wednesday", Weekly, date(2024, 3, 6), 0, date(2024, 3, 1), date(2024, 3, 11)},
		{"Weekly from Sunday", Weekly, date(2024, 3, 10), 0, date(2024, 3, 1), date(2024, 3, 11)},
		{"Weekly from Monday stays", Weekly, date(2024, 3, 4), 0, date(2024, 3, 1), date(2024, 3, 4)},
		{"Daily", Daily, date(2024, 2, 28), 0, date(2024, 1, 1), date(2024, 2, 29)},
		{"Quarterly", Quarterly, date(2024, 1, 10), 0, date(2024, 1, 1), date(2024, 4, 10)},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, InitialNextDeduction(tc.frequency, tc.start, tc.day, tc.now))
		})
	}
}

func TestInitialNextDeductionKeepsClockTime(t *testing.T) {
	start := time.Date(2024, 1, 10, 14, 30, 0, 0, time.UTC)

	next := InitialNextDeduction(Monthly, start, 15, date(2024, 1, 1))

	assert.Equal(t, time.Date(2024, 1, 15, 14, 30, 0, 0, time.UTC), next)
}

func TestWeeklyAlwaysLandsOnMondayWithinAWeek(t *testing.T) {
	start := date(2024, 1, 1)
	for i := 0; i < 28; i++ {
		day := start.AddDate(0, 0, i)

		next := InitialNextDeduction(Weekly, day, 0, day)

		assert.Equal(t, time.Monday, next.Weekday(), day.String())
		assert.False(t, next.Before(day), day.String())
		assert.True(t, next.Before(day.AddDate(0, 0, 7)), day.String())
	}
}

func TestAdvance(t *testing.T) {
	testCases := []struct {
		description string
		frequency   Frequency
		current     time.Time
		expected    time.Time
	}{
		{"Monthly", Monthly, date(2024, 1, 15), date(2024, 2, 15)},
		{"Monthly across year", Monthly, date(2024, 12, 15), date(2025, 1, 15)},
		{"Monthly from the 31st rolls over", Monthly, date(2024, 1, 31), date(2024, 3, 2)},
		{"Weekly", Weekly, date(2024, 3, 4), date(2024, 3, 11)},
		{"Daily", Daily, date(2024, 12, 31), date(2025, 1, 1)},
		{"Quarterly", Quarterly, date(2024, 11, 10), date(2025, 2, 10)},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, Advance(tc.frequency, tc.current))
		})
	}
}

func TestAdvanceIsStrictlyIncreasing(t *testing.T) {
	for _, frequency := range []Frequency{Daily, Weekly, Monthly, Quarterly} {
		current := date(2024, 1, 31)
		for i := 0; i < 24; i++ {
			next := Advance(frequency, current)
			assert.True(t, next.After(current), "%s step %d", frequency, i)
			current = next
		}
	}
}

func TestValidateDeductionDay(t *testing.T) {
	one, thirtyOne, zero, thirtyTwo := 1, 31, 0, 32

	assert.NoError(t, ValidateDeductionDay(&one))
	assert.NoError(t, ValidateDeductionDay(&thirtyOne))
	assert.ErrorIs(t, ValidateDeductionDay(&zero), errs.ErrInvalidSchedule)
	assert.ErrorIs(t, ValidateDeductionDay(&thirtyTwo), errs.ErrInvalidSchedule)
	assert.ErrorIs(t, ValidateDeductionDay(nil), errs.ErrInvalidSchedule)
}

func TestFrequencyIsValid(t *testing.T) {
	assert.True(t, Monthly.IsValid())
	assert.False(t, Frequency("monthly").IsValid())
	assert.False(t, Frequency("").IsValid())
}
