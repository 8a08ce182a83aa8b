package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/sip-processor/internal/domain/entity"
	"github.com/google/uuid"
)

// TransactionFilter narrows ListByOwner results. Zero fields match everything.
type TransactionFilter struct {
	Type   entity.TransactionType
	Status entity.TransactionStatus
}

// TransactionRepository defines essential methods to interact with transaction data
type TransactionRepository interface {
	// Create saves a new transaction
	// The transaction keeps the ID assigned by its constructor
	//
	// Possible errors:
	// - ErrValidation: If a transaction with the same ID already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByID retrieves a transaction by ID regardless of owner
	// Only for callers that are otherwise authorized, such as background jobs
	//
	// Possible errors:
	// - ErrTransactionNotFound: If transaction with the given ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// GetByIDAndOwner retrieves a transaction owned by userID
	// A transaction owned by another user is reported as absent
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no transaction with that ID belongs to the user
	// - ErrDatabaseConnection: If database connection fails
	GetByIDAndOwner(ctx context.Context, id uuid.UUID, userID uint64) (*entity.Transaction, error)

	// Update stores the mutable fields of a transaction with compare-and-swap on Version
	// On success transaction.Version is incremented to match the stored row
	//
	// Possible errors:
	// - ErrTransactionNotFound: If the transaction no longer exists for its owner
	// - ConflictError: If the stored version differs from transaction.Version
	// - ErrDatabaseConnection: If database connection fails
	Update(ctx context.Context, transaction *entity.Transaction) error

	// ListByOwner returns the user's transactions matching filter, newest first
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListByOwner(ctx context.Context, userID uint64, filter TransactionFilter) ([]*entity.Transaction, error)

	// ListSIPsEndedBefore returns up to limit ACTIVE or PAUSED SIPs whose end date is before cutoff
	// Used by the completion sweep
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	ListSIPsEndedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*entity.Transaction, error)
}
