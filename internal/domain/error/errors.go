package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation        = 4000
	CodeInvalidAmount     = 4001
	CodeAmountBelowMin    = 4002
	CodeInvalidFrequency  = 4003
	CodeInvalidSchedule   = 4004
	CodeInvalidDateRange  = 4005
	CodeInvalidUserID     = 4006
	CodeNotFound          = 4040
	CodeFundNotFound      = 4041
	CodeUserNotFound      = 4042
	CodeTransactionAbsent = 4043
	CodeConflict          = 4090
	CodePortfolioLink     = 4091
	CodeInvalidTransition = 4220

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeDatabaseConnection = 5030
)

// Error kinds. Specific errors below match their kind through errors.Is.
var (
	// ErrNotFound is returned when a fund, user or transaction is absent, or not owned by the caller
	ErrNotFound = errors.New("resource not found")

	// ErrValidation is returned when request data breaks a domain rule
	ErrValidation = errors.New("validation failed")

	// ErrInvalidTransition is returned for an illegal state-machine move
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrConflict is returned when a concurrent update won the race, or a write left a retryable inconsistency
	ErrConflict = errors.New("concurrent update conflict")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")
)

// Specific errors
var (
	ErrFundNotFound        = newKindError(ErrNotFound, "fund not found")
	ErrUserNotFound        = newKindError(ErrNotFound, "user not found")
	ErrTransactionNotFound = newKindError(ErrNotFound, "transaction not found")

	ErrInvalidAmount      = newKindError(ErrValidation, "invalid amount format")
	ErrAmountBelowMinimum = newKindError(ErrValidation, "amount below minimum investment")
	ErrInvalidFrequency   = newKindError(ErrValidation, "invalid frequency")
	ErrInvalidUserID      = newKindError(ErrValidation, "user ID must be positive")
	ErrInvalidDateRange   = newKindError(ErrValidation, "invalid date range")
	ErrInvalidNAV         = newKindError(ErrValidation, "fund NAV must be positive")

	// ErrInvalidSchedule is returned when a MONTHLY SIP has no deduction day or one outside 1..31
	ErrInvalidSchedule = newKindError(ErrValidation, "invalid deduction day. Must be between 1 and 31")
)

// kindError is a named error that also satisfies errors.Is against its kind
type kindError struct {
	kind error
	msg  string
}

func newKindError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

// Error implements the error interface
func (e *kindError) Error() string {
	return e.msg
}

// Is reports whether target is the kind of this error
func (e *kindError) Is(target error) bool {
	return target == e.kind
}

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	var linkErr *PortfolioLinkError

	switch {
	case errors.As(err, &linkErr):
		return CodePortfolioLink
	case errors.Is(err, ErrFundNotFound):
		return CodeFundNotFound
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionAbsent
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrAmountBelowMinimum):
		return CodeAmountBelowMin
	case errors.Is(err, ErrInvalidFrequency):
		return CodeInvalidFrequency
	case errors.Is(err, ErrInvalidSchedule):
		return CodeInvalidSchedule
	case errors.Is(err, ErrInvalidDateRange):
		return CodeInvalidDateRange
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrInvalidTransition):
		return CodeInvalidTransition
	case errors.Is(err, ErrConflict):
		return CodeConflict
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// TransitionError describes a refused state-machine move on a transaction
type TransitionError struct {
	TransactionID string
	Operation     string
	Type          string
	Status        string
	Reason        string
}

// Error implements the error interface for TransitionError
func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s transaction %s (type: %s, status: %s): %s",
		e.Operation, e.TransactionID, e.Type, e.Status, e.Reason)
}

// Is checks if the target error is an ErrInvalidTransition
func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// LogFields returns a map of fields for structured logging
func (e *TransitionError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "invalid_transition",
		"transaction_id": e.TransactionID,
		"operation":      e.Operation,
		"type":           e.Type,
		"status":         e.Status,
		"reason":         e.Reason,
		"error_code":     CodeInvalidTransition,
	}
}

// NewTransitionError creates a new detailed transition error
func NewTransitionError(transactionID, operation, txType, status, reason string) error {
	return &TransitionError{
		TransactionID: transactionID,
		Operation:     operation,
		Type:          txType,
		Status:        status,
		Reason:        reason,
	}
}

// ConflictError is returned when the stored version of a transaction moved under an update
type ConflictError struct {
	TransactionID   string
	ExpectedVersion uint64
}

// Error implements the error interface
func (e *ConflictError) Error() string {
	return fmt.Sprintf("transaction %s was modified concurrently (expected version %d)",
		e.TransactionID, e.ExpectedVersion)
}

// Is checks if the target error is an ErrConflict
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// LogFields returns a map of fields for structured logging
func (e *ConflictError) LogFields() map[string]any {
	return map[string]any{
		"error_type":       "conflict",
		"transaction_id":   e.TransactionID,
		"expected_version": e.ExpectedVersion,
		"error_code":       CodeConflict,
	}
}

// NewConflictError creates a new conflict error
func NewConflictError(transactionID string, expectedVersion uint64) error {
	return &ConflictError{
		TransactionID:   transactionID,
		ExpectedVersion: expectedVersion,
	}
}

// PortfolioLinkError reports a transaction that was stored but could not be appended
// to its owner's portfolio. The caller reconciles it by retrying the append.
type PortfolioLinkError struct {
	TransactionID string
	UserID        uint64
	Err           error
}

// Error implements the error interface
func (e *PortfolioLinkError) Error() string {
	return fmt.Sprintf("transaction %s created but not linked to portfolio of user %d: %v",
		e.TransactionID, e.UserID, e.Err)
}

// Is checks if the target error is an ErrConflict
func (e *PortfolioLinkError) Is(target error) bool {
	return target == ErrConflict
}

// Unwrap returns the underlying error
func (e *PortfolioLinkError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *PortfolioLinkError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "portfolio_link",
		"transaction_id": e.TransactionID,
		"user_id":        e.UserID,
		"error":          e.Err.Error(),
		"error_code":     CodePortfolioLink,
	}
}

// NewPortfolioLinkError creates a new portfolio link error
func NewPortfolioLinkError(transactionID string, userID uint64, err error) error {
	return &PortfolioLinkError{
		TransactionID: transactionID,
		UserID:        userID,
		Err:           err,
	}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsInvalidTransitionError checks if the error is an illegal state-machine move
func IsInvalidTransitionError(err error) bool {
	return errors.Is(err, ErrInvalidTransition)
}

// IsConflictError checks if the error is a lost concurrent update or a retryable inconsistency
func IsConflictError(err error) bool {
	return errors.Is(err, ErrConflict)
}
