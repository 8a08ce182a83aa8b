package persistence

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the user reference and its portfolio relation
type UserRepository interface {
	// Exists checks whether a user with the given ID exists
	//
	// Possible errors:
	// - ErrDatabaseConnection: If database connection fails
	Exists(ctx context.Context, id uint64) (bool, error)

	// AppendToPortfolio links a transaction to the user's portfolio
	// Appending an already linked transaction is a no-op
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	AppendToPortfolio(ctx context.Context, userID uint64, transactionID uuid.UUID) error
}
