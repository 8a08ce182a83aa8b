package entity

import (
	"testing"
	"time"

	"github.com/amirhossein-jamali/sip-processor/internal/domain/schedule"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDeductionSchedule(t *testing.T) {
	now := time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)
	fund := &Fund{ID: 7, NAV: decimal.NewFromInt(25), MinimumInvestment: decimal.NewFromInt(500)}

	t.Run("Monthly SIP", func(t *testing.T) {
		day := 15
		tx, err := NewSIP(SIPParams{
			UserID:       1,
			Amount:       decimal.NewFromInt(1000),
			Frequency:    "MONTHLY",
			StartDate:    time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			EndDate:      time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
			DeductionDay: &day,
		}, fund, now)
		require.NoError(t, err)

		view := ToDeductionSchedule(tx)

		assert.Equal(t, tx.ID.String(), view.TransactionID)
		assert.Equal(t, uint64(7), view.FundID)
		assert.Equal(t, "1000.00", FormatAmount(view.Amount))
		assert.Equal(t, string(schedule.Monthly), view.Frequency)
		require.NotNil(t, view.DeductionDay)
		assert.Equal(t, 15, *view.DeductionDay)
		require.NotNil(t, view.NextDeductionDate)
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), *view.NextDeductionDate)
	})

	t.Run("Lumpsum has no schedule fields", func(t *testing.T) {
		tx, err := NewLumpsum(1, decimal.NewFromInt(1000), fund, now)
		require.NoError(t, err)

		view := ToDeductionSchedule(tx)

		assert.Empty(t, view.Frequency)
		assert.Nil(t, view.DeductionDay)
		assert.Nil(t, view.NextDeductionDate)
	})
}
