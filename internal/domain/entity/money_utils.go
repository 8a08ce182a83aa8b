package entity

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/sip-processor/internal/domain/error"
	"github.com/shopspring/decimal"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// UnitsPrecision is the number of decimal places kept when converting an amount to fund units
const UnitsPrecision = 8

// ParseAmount validates a decimal string amount.
// The amount must be positive and carry at most two decimal places.
func ParseAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if len(amount) == 0 {
		return decimal.Zero, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	// decimal accepts exponents, which are not a money format
	if strings.ContainsAny(amount, "eE") {
		return decimal.Zero, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}

	if !value.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be positive", errs.ErrInvalidAmount)
	}

	if value.Exponent() < -MaxDecimalPlaces {
		return decimal.Zero, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}

	return value, nil
}

// FormatAmount renders a money amount with exactly two decimal places
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(MaxDecimalPlaces)
}

// ComputeUnits converts an invested amount into fund units at the given NAV
func ComputeUnits(amount, nav decimal.Decimal) decimal.Decimal {
	if !nav.IsPositive() {
		return decimal.Zero
	}
	return amount.DivRound(nav, UnitsPrecision)
}
