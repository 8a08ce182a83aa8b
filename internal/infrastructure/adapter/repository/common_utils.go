package repository

import (
	"errors"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/sip-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/sip-processor/internal/domain/port/core"
	"gorm.io/gorm"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	ForeignKeyError   ErrorType = "foreign_key"
	LockError         ErrorType = "lock"
	ConnectionError   ErrorType = "connection"
)

// classifierRules is checked in order; the first matching rule wins
var classifierRules = []struct {
	errorType ErrorType
	fragments []string
}{
	{DuplicateKeyError, []string{"duplicate key", "unique constraint", "duplicate entry", "sqlstate 23505"}},
	{ForeignKeyError, []string{"foreign key", "sqlstate 23503"}},
	{LockError, []string{"deadlock", "lock wait timeout", "could not serialize access", "serialization failure"}},
	{ConnectionError, []string{"connection reset", "connection refused", "timeout", "eof", "server closed", "broken pipe", "dial", "network"}},
}

// ErrorClassifier provides methods to classify database errors
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error, or "" when it is not recognised
func (c *ErrorClassifier) Classify(err error) ErrorType {
	if err == nil {
		return ""
	}

	message := strings.ToLower(err.Error())
	for _, rule := range classifierRules {
		for _, fragment := range rule.fragments {
			if strings.Contains(message, fragment) {
				return rule.errorType
			}
		}
	}

	return ""
}

// IsDuplicateKeyError checks if the error is a duplicate key error
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	return c.Classify(err) == DuplicateKeyError
}

// IsForeignKeyError checks if the error is a missing referenced row
func (c *ErrorClassifier) IsForeignKeyError(err error) bool {
	return c.Classify(err) == ForeignKeyError
}

// IsLockError checks if the error is due to locking
func (c *ErrorClassifier) IsLockError(err error) bool {
	return c.Classify(err) == LockError
}

// handleDatabaseError logs a failed query and maps it onto the domain taxonomy.
// notFound is returned for gorm.ErrRecordNotFound.
func handleDatabaseError(logger coreport.Logger, classifier *ErrorClassifier, operation string, err error, notFound error, fields map[string]any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	logFields := map[string]any{
		"error":      err.Error(),
		"error_type": string(classifier.Classify(err)),
	}
	for k, v := range fields {
		logFields[k] = v
	}
	logger.Error(fmt.Sprintf("Database error when %s", operation), logFields)

	if classifier.IsLockError(err) {
		return fmt.Errorf("%w: %s", errs.ErrConflict, err.Error())
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}
