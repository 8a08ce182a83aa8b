package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/sip-processor/internal/domain/error"
	"github.com/shopspring/decimal"
)

// Fund is a mutual fund that transactions invest into. Funds are reference data.
type Fund struct {
	ID                uint64
	Name              string
	NAV               decimal.Decimal // current net asset value per unit
	MinimumInvestment decimal.Decimal
	UpdatedAt         time.Time
}

// CheckInvestment verifies that amount is a valid investment into this fund
func (f *Fund) CheckInvestment(amount decimal.Decimal) error {
	if !f.NAV.IsPositive() {
		return fmt.Errorf("%w: fund %d has NAV %s", errs.ErrInvalidNAV, f.ID, f.NAV.String())
	}

	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", errs.ErrInvalidAmount)
	}

	if amount.LessThan(f.MinimumInvestment) {
		return fmt.Errorf("%w: %s is less than %s for fund %d",
			errs.ErrAmountBelowMinimum, FormatAmount(amount), FormatAmount(f.MinimumInvestment), f.ID)
	}

	return nil
}
