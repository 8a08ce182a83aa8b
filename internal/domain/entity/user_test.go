package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/sip-processor/internal/domain/error"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFundCheckInvestment(t *testing.T) {
	fund := &Fund{ID: 1, NAV: decimal.NewFromInt(25), MinimumInvestment: decimal.NewFromInt(500)}

	t.Run("Amount at minimum", func(t *testing.T) {
		assert.NoError(t, fund.CheckInvestment(decimal.NewFromInt(500)))
	})

	t.Run("Amount above minimum", func(t *testing.T) {
		assert.NoError(t, fund.CheckInvestment(decimal.RequireFromString("500.01")))
	})

	t.Run("Amount below minimum", func(t *testing.T) {
		err := fund.CheckInvestment(decimal.RequireFromString("499.99"))
		assert.ErrorIs(t, err, errs.ErrAmountBelowMinimum)
		assert.Contains(t, err.Error(), "499.99")
	})

	t.Run("Zero amount", func(t *testing.T) {
		err := fund.CheckInvestment(decimal.Zero)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}
