package lifecycle

import (
	"fmt"

	"github.com/amirhossein-jamali/sip-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/sip-processor/internal/domain/error"
	"github.com/amirhossein-jamali/sip-processor/internal/domain/port/usecase"
	"github.com/shopspring/decimal"
)

// RequestValidator checks the request shape before any lookup is made.
// Domain rules that need the fund (minimum investment) are enforced by the entity constructors.
type RequestValidator struct{}

// NewRequestValidator creates a new RequestValidator
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{}
}

// ValidateSIP validates a SIP request and returns the parsed amount
func (v *RequestValidator) ValidateSIP(req usecase.CreateSIPRequest) (decimal.Decimal, error) {
	amount, err := v.validateCommon(req.UserID, req.FundID, req.Amount)
	if err != nil {
		return decimal.Zero, err
	}

	if _, err := entity.ParseFrequency(req.Frequency); err != nil {
		return decimal.Zero, err
	}

	return amount, nil
}

// ValidateLumpsum validates a lumpsum request and returns the parsed amount
func (v *RequestValidator) ValidateLumpsum(req usecase.CreateLumpsumRequest) (decimal.Decimal, error) {
	return v.validateCommon(req.UserID, req.FundID, req.Amount)
}

func (v *RequestValidator) validateCommon(userID, fundID uint64, amount string) (decimal.Decimal, error) {
	if userID == 0 {
		return decimal.Zero, errs.ErrInvalidUserID
	}

	if fundID == 0 {
		return decimal.Zero, fmt.Errorf("%w: fund ID must be positive", errs.ErrValidation)
	}

	return entity.ParseAmount(amount)
}
