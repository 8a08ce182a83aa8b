package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/sip-processor/internal/domain/error"
	"github.com/amirhossein-jamali/sip-processor/internal/domain/schedule"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFund() *Fund {
	return &Fund{
		ID:                1,
		Name:              "Index Fund",
		NAV:               decimal.NewFromInt(25),
		MinimumInvestment: decimal.NewFromInt(500),
	}
}

func intPtr(v int) *int {
	return &v
}

func monthlyParams() SIPParams {
	return SIPParams{
		UserID:       1,
		Amount:       decimal.NewFromInt(10000),
		Frequency:    "MONTHLY",
		StartDate:    time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		DeductionDay: intPtr(15),
	}
}

func activeSIP(t *testing.T) *Transaction {
	t.Helper()
	now := time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)
	tx, err := NewSIP(monthlyParams(), testFund(), now)
	require.NoError(t, err)
	return tx
}

func TestNewSIP(t *testing.T) {
	now := time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)

	t.Run("Valid monthly SIP", func(t *testing.T) {
		tx, err := NewSIP(monthlyParams(), testFund(), now)

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, tx.ID)
		assert.Equal(t, uint64(1), tx.UserID)
		assert.Equal(t, uint64(1), tx.FundID)
		assert.Equal(t, TypeSIP, tx.Type)
		assert.Equal(t, StatusActive, tx.Status)
		assert.True(t, tx.Units().Equal(decimal.NewFromInt(400)))
		assert.True(t, tx.NAVAtPurchase().Equal(decimal.NewFromInt(25)))
		assert.Equal(t, now, tx.CreatedAt)
		assert.Equal(t, now, tx.UpdatedAt)
		assert.Equal(t, uint64(0), tx.Version)

		require.NotNil(t, tx.SIP)
		assert.Equal(t, schedule.Monthly, tx.SIP.Frequency)
		require.NotNil(t, tx.SIP.DeductionDay)
		assert.Equal(t, 15, *tx.SIP.DeductionDay)
		assert.Nil(t, tx.SIP.LastDeductionDate)
		require.NotNil(t, tx.SIP.NextDeductionDate)
		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), *tx.SIP.NextDeductionDate)
	})

	t.Run("Monthly deduction day already passed", func(t *testing.T) {
		later := time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC)

		tx, err := NewSIP(monthlyParams(), testFund(), later)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC), *tx.SIP.NextDeductionDate)
	})

	t.Run("Frequency is case-insensitive", func(t *testing.T) {
		params := monthlyParams()
		params.Frequency = "monthly"

		tx, err := NewSIP(params, testFund(), now)

		require.NoError(t, err)
		assert.Equal(t, schedule.Monthly, tx.SIP.Frequency)
	})

	t.Run("Deduction day dropped for weekly SIP", func(t *testing.T) {
		params := monthlyParams()
		params.Frequency = "WEEKLY"

		tx, err := NewSIP(params, testFund(), now)

		require.NoError(t, err)
		assert.Nil(t, tx.SIP.DeductionDay)
		assert.Equal(t, time.Monday, tx.SIP.NextDeductionDate.Weekday())
	})

	t.Run("Validation failures", func(t *testing.T) {
		testCases := []struct {
			description string
			mutate      func(p *SIPParams)
			expected    error
		}{
			{"Zero user", func(p *SIPParams) { p.UserID = 0 }, errs.ErrInvalidUserID},
			{"Below minimum", func(p *SIPParams) { p.Amount = decimal.NewFromInt(100) }, errs.ErrAmountBelowMinimum},
			{"Zero amount", func(p *SIPParams) { p.Amount = decimal.Zero }, errs.ErrInvalidAmount},
			{"Unknown frequency", func(p *SIPParams) { p.Frequency = "YEARLY" }, errs.ErrInvalidFrequency},
			{"Missing deduction day", func(p *SIPParams) { p.DeductionDay = nil }, errs.ErrInvalidSchedule},
			{"Deduction day zero", func(p *SIPParams) { p.DeductionDay = intPtr(0) }, errs.ErrInvalidSchedule},
			{"Deduction day 32", func(p *SIPParams) { p.DeductionDay = intPtr(32) }, errs.ErrInvalidSchedule},
			{"Missing end date", func(p *SIPParams) { p.EndDate = time.Time{} }, errs.ErrInvalidDateRange},
			{"End before start", func(p *SIPParams) { p.EndDate = p.StartDate.AddDate(0, 0, -1) }, errs.ErrInvalidDateRange},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				params := monthlyParams()
				tc.mutate(&params)

				tx, err := NewSIP(params, testFund(), now)

				assert.ErrorIs(t, err, tc.expected)
				assert.ErrorIs(t, err, errs.ErrValidation)
				assert.Nil(t, tx)
			})
		}
	})

	t.Run("End date equal to start date", func(t *testing.T) {
		params := monthlyParams()
		params.EndDate = params.StartDate

		_, err := NewSIP(params, testFund(), now)

		assert.NoError(t, err)
	})
}

func TestNewLumpsum(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Valid lumpsum", func(t *testing.T) {
		tx, err := NewLumpsum(2, decimal.NewFromInt(1000), testFund(), now)

		require.NoError(t, err)
		assert.Equal(t, TypeLumpsum, tx.Type)
		assert.Equal(t, StatusActive, tx.Status)
		assert.Equal(t, now, tx.StartDate)
		assert.Nil(t, tx.SIP)
		assert.True(t, tx.Units().Equal(decimal.NewFromInt(40)))
	})

	t.Run("Below minimum", func(t *testing.T) {
		tx, err := NewLumpsum(2, decimal.NewFromInt(499), testFund(), now)

		assert.ErrorIs(t, err, errs.ErrAmountBelowMinimum)
		assert.Nil(t, tx)
	})

	t.Run("Zero user", func(t *testing.T) {
		_, err := NewLumpsum(0, decimal.NewFromInt(1000), testFund(), now)

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})

	t.Run("Fund without a positive NAV", func(t *testing.T) {
		for _, nav := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
			fund := testFund()
			fund.NAV = nav

			tx, err := NewLumpsum(1, decimal.NewFromInt(10000), fund, now)

			assert.ErrorIs(t, err, errs.ErrInvalidNAV, nav.String())
			assert.ErrorIs(t, err, errs.ErrValidation)
			assert.Nil(t, tx)

			sip, err := NewSIP(monthlyParams(), fund, now)
			assert.ErrorIs(t, err, errs.ErrInvalidNAV)
			assert.Nil(t, sip)
		}
	})
}

func TestTransactionTransitions(t *testing.T) {
	later := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Pause then resume restores ACTIVE", func(t *testing.T) {
		tx := activeSIP(t)

		require.NoError(t, tx.Pause(later))
		assert.Equal(t, StatusPaused, tx.Status)
		assert.Equal(t, later, tx.UpdatedAt)

		require.NoError(t, tx.Resume(later))
		assert.Equal(t, StatusActive, tx.Status)
	})

	t.Run("Resume requires PAUSED", func(t *testing.T) {
		tx := activeSIP(t)

		err := tx.Resume(later)

		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, StatusActive, tx.Status)
	})

	t.Run("Pause only checks the transaction type", func(t *testing.T) {
		for _, status := range []TransactionStatus{StatusPaused, StatusCompleted, StatusCancelled} {
			tx := activeSIP(t)
			tx.Status = status

			require.NoError(t, tx.Pause(later), string(status))
			assert.Equal(t, StatusPaused, tx.Status)
			assert.Equal(t, later, tx.UpdatedAt)
		}
	})

	t.Run("Cancelled SIP cannot be resumed", func(t *testing.T) {
		tx := activeSIP(t)
		require.NoError(t, tx.Cancel(later))

		assert.ErrorIs(t, tx.Resume(later), errs.ErrInvalidTransition)
		assert.Equal(t, StatusCancelled, tx.Status)
	})

	t.Run("Second cancel fails", func(t *testing.T) {
		tx := activeSIP(t)

		require.NoError(t, tx.Cancel(later))
		err := tx.Cancel(later)

		var transitionErr *errs.TransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, "cancel", transitionErr.Operation)
		assert.Equal(t, string(StatusCancelled), transitionErr.Status)
	})

	t.Run("Lumpsum can be cancelled but not paused", func(t *testing.T) {
		tx, err := NewLumpsum(1, decimal.NewFromInt(1000), testFund(), later)
		require.NoError(t, err)

		assert.ErrorIs(t, tx.Pause(later), errs.ErrInvalidTransition)
		assert.ErrorIs(t, tx.Resume(later), errs.ErrInvalidTransition)
		assert.NoError(t, tx.Cancel(later))
	})

	t.Run("Paused SIP can be cancelled", func(t *testing.T) {
		tx := activeSIP(t)
		require.NoError(t, tx.Pause(later))

		assert.NoError(t, tx.Cancel(later))
		assert.Equal(t, StatusCancelled, tx.Status)
	})
}

func TestAdvanceDeduction(t *testing.T) {
	later := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Monthly advance", func(t *testing.T) {
		tx := activeSIP(t)

		require.NoError(t, tx.AdvanceDeduction(later))

		assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), *tx.SIP.LastDeductionDate)
		assert.Equal(t, time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC), *tx.SIP.NextDeductionDate)
		assert.Equal(t, later, tx.UpdatedAt)
	})

	t.Run("Weekly advance", func(t *testing.T) {
		next := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
		tx := activeSIP(t)
		tx.SIP.Frequency = schedule.Weekly
		tx.SIP.DeductionDay = nil
		tx.SIP.NextDeductionDate = &next

		require.NoError(t, tx.AdvanceDeduction(later))

		assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), *tx.SIP.LastDeductionDate)
		assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), *tx.SIP.NextDeductionDate)
	})

	t.Run("Paused SIP is refused", func(t *testing.T) {
		tx := activeSIP(t)
		require.NoError(t, tx.Pause(later))
		before := *tx.SIP.NextDeductionDate

		err := tx.AdvanceDeduction(later)

		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, before, *tx.SIP.NextDeductionDate)
		assert.Nil(t, tx.SIP.LastDeductionDate)
	})

	t.Run("Lumpsum is refused", func(t *testing.T) {
		tx, err := NewLumpsum(1, decimal.NewFromInt(1000), testFund(), later)
		require.NoError(t, err)

		assert.ErrorIs(t, tx.AdvanceDeduction(later), errs.ErrInvalidTransition)
	})
}

func TestComplete(t *testing.T) {
	t.Run("Running SIP past end date", func(t *testing.T) {
		tx := activeSIP(t)
		afterEnd := tx.SIP.EndDate.AddDate(0, 0, 1).Add(time.Hour)

		require.True(t, tx.IsExhausted(afterEnd))
		require.NoError(t, tx.Complete(afterEnd))
		assert.Equal(t, StatusCompleted, tx.Status)
	})

	t.Run("Paused SIP past end date", func(t *testing.T) {
		tx := activeSIP(t)
		require.NoError(t, tx.Pause(tx.CreatedAt))

		assert.NoError(t, tx.Complete(tx.SIP.EndDate.AddDate(0, 0, 2)))
	})

	t.Run("Before end date", func(t *testing.T) {
		tx := activeSIP(t)

		err := tx.Complete(tx.SIP.EndDate.Add(-time.Hour))

		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, StatusActive, tx.Status)
	})

	t.Run("Cancelled SIP stays cancelled", func(t *testing.T) {
		tx := activeSIP(t)
		require.NoError(t, tx.Cancel(tx.CreatedAt))

		assert.False(t, tx.IsExhausted(tx.SIP.EndDate.AddDate(0, 0, 2)))
		assert.Error(t, tx.Complete(tx.SIP.EndDate.AddDate(0, 0, 2)))
	})

	t.Run("End date is inclusive", func(t *testing.T) {
		tx := activeSIP(t)
		end := tx.SIP.EndDate
		nextDay := end.AddDate(0, 0, 1)

		assert.False(t, tx.IsExhausted(end.Add(time.Second)), "start of end day")
		assert.False(t, tx.IsExhausted(nextDay.Add(-time.Second)), "last second of end day")
		assert.False(t, tx.IsExhausted(nextDay), "midnight after end day")
		assert.True(t, tx.IsExhausted(nextDay.Add(time.Second)), "after end day")

		assert.ErrorIs(t, tx.Complete(end.Add(12*time.Hour)), errs.ErrInvalidTransition)
		assert.Equal(t, StatusActive, tx.Status)
	})
}

func TestCompletionCutoff(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 1, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 1, 0, time.UTC), CompletionCutoff(now))
}

func TestRecordRoundTrip(t *testing.T) {
	tx := activeSIP(t)
	tx.Version = 3

	restored := RestoreTransaction(tx.Record())

	assert.Equal(t, tx.ID, restored.ID)
	assert.Equal(t, tx.Version, restored.Version)
	assert.True(t, tx.Amount().Equal(restored.Amount()))
	assert.True(t, tx.Units().Equal(restored.Units()))
	require.NotNil(t, restored.SIP)
	assert.Equal(t, tx.SIP.Frequency, restored.SIP.Frequency)
	assert.Equal(t, *tx.SIP.NextDeductionDate, *restored.SIP.NextDeductionDate)
}

func TestParseFrequency(t *testing.T) {
	for _, input := range []string{"DAILY", "weekly", " Monthly ", "QUARTERLY"} {
		_, err := ParseFrequency(input)
		assert.NoError(t, err, input)
	}

	_, err := ParseFrequency("HOURLY")
	assert.ErrorIs(t, err, errs.ErrInvalidFrequency)
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus("ACTIVE"))
	assert.True(t, IsValidStatus("COMPLETED"))
	assert.False(t, IsValidStatus("active"))
	assert.False(t, IsValidStatus("PENDING"))
}
