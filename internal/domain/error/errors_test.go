package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpecificErrorsMatchTheirKind(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		kind error
	}{
		{"FundNotFound", ErrFundNotFound, ErrNotFound},
		{"UserNotFound", ErrUserNotFound, ErrNotFound},
		{"TransactionNotFound", ErrTransactionNotFound, ErrNotFound},
		{"InvalidAmount", ErrInvalidAmount, ErrValidation},
		{"AmountBelowMinimum", ErrAmountBelowMinimum, ErrValidation},
		{"InvalidFrequency", ErrInvalidFrequency, ErrValidation},
		{"InvalidSchedule", ErrInvalidSchedule, ErrValidation},
		{"InvalidDateRange", ErrInvalidDateRange, ErrValidation},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.err, tc.kind)
			assert.ErrorIs(t, fmt.Errorf("wrapped: %w", tc.err), tc.kind)
			assert.NotErrorIs(t, tc.err, ErrConflict)
		})
	}

	assert.NotErrorIs(t, ErrFundNotFound, ErrUserNotFound)
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"FundNotFound", ErrFundNotFound, CodeFundNotFound},
		{"UserNotFound", ErrUserNotFound, CodeUserNotFound},
		{"TransactionNotFound", ErrTransactionNotFound, CodeTransactionAbsent},
		{"InvalidSchedule", ErrInvalidSchedule, CodeInvalidSchedule},
		{"AmountBelowMinimum", ErrAmountBelowMinimum, CodeAmountBelowMin},
		{"Transition", NewTransitionError("tx", "pause", "LUMPSUM", "ACTIVE", "only SIP transactions can be paused"), CodeInvalidTransition},
		{"Conflict", NewConflictError("tx", 3), CodeConflict},
		{"PortfolioLink", NewPortfolioLinkError("tx", 7, ErrUserNotFound), CodePortfolioLink},
		{"Database", fmt.Errorf("%w: reset", ErrDatabaseConnection), CodeDatabaseConnection},
		{"UnknownError", errors.New("unknown error"), CodeInternalServer},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidAmount), CodeInvalidAmount},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ErrorCode(tc.err))
		})
	}
}

func TestTransitionError(t *testing.T) {
	err := NewTransitionError("abc", "pause", "LUMPSUM", "ACTIVE", "only SIP transactions can be paused")

	assert.Equal(t, "cannot pause transaction abc (type: LUMPSUM, status: ACTIVE): only SIP transactions can be paused", err.Error())
	assert.True(t, IsInvalidTransitionError(err))
	assert.False(t, IsConflictError(err))

	var te *TransitionError
	if assert.ErrorAs(t, err, &te) {
		fields := te.LogFields()
		assert.Equal(t, "invalid_transition", fields["error_type"])
		assert.Equal(t, "pause", fields["operation"])
	}
}

func TestConflictError(t *testing.T) {
	err := NewConflictError("abc", 4)

	assert.Equal(t, "transaction abc was modified concurrently (expected version 4)", err.Error())
	assert.True(t, IsConflictError(err))
	assert.False(t, IsNotFoundError(err))
}

func TestPortfolioLinkError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewPortfolioLinkError("abc", 9, cause)

	assert.True(t, IsConflictError(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "not linked to portfolio of user 9")

	var linkErr *PortfolioLinkError
	if assert.ErrorAs(t, err, &linkErr) {
		assert.Equal(t, "abc", linkErr.TransactionID)
		assert.Equal(t, uint64(9), linkErr.UserID)
		assert.Equal(t, "portfolio_link", linkErr.LogFields()["error_type"])
	}
}

func TestKindHelpers(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrTransactionNotFound))
	assert.True(t, IsValidationError(ErrInvalidFrequency))
	assert.False(t, IsValidationError(ErrFundNotFound))
}
