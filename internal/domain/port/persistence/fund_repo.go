package persistence

import (
	"context"

	"github.com/amirhossein-jamali/sip-processor/internal/domain/entity"
)

// FundRepository is the read-only fund reference
type FundRepository interface {
	// GetByID retrieves a fund with its current NAV and minimum investment
	//
	// Possible errors:
	// - ErrFundNotFound: If fund with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Fund, error)
}
