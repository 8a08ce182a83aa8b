package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/sip-processor/internal/domain/entity"
	"github.com/google/uuid"
)

// CreateSIPRequest represents an incoming SIP creation request
type CreateSIPRequest struct {
	UserID       uint64
	FundID       uint64
	Amount       string // decimal string, at most 2 decimal places
	Frequency    string
	StartDate    time.Time
	EndDate      time.Time
	DeductionDay *int
}

// CreateLumpsumRequest represents an incoming one-time investment request
type CreateLumpsumRequest struct {
	UserID uint64
	FundID uint64
	Amount string
}

// LifecycleUseCase defines the transaction lifecycle operations.
// Every operation except creation is scoped to the owning user, and errors
// are returned unmodified: the engine never retries.
type LifecycleUseCase interface {
	// CreateSIP creates a recurring plan and appends it to the user's portfolio.
	// If the append fails the stored transaction is returned with a PortfolioLinkError.
	CreateSIP(ctx context.Context, req CreateSIPRequest) (*entity.Transaction, error)

	// CreateLumpsum creates a one-time investment and appends it to the user's portfolio.
	// Partial failure is reported the same way as CreateSIP.
	CreateLumpsum(ctx context.Context, req CreateLumpsumRequest) (*entity.Transaction, error)

	// PauseSIP moves an ACTIVE SIP to PAUSED
	PauseSIP(ctx context.Context, id uuid.UUID, userID uint64) (*entity.Transaction, error)

	// ResumeSIP moves a PAUSED SIP back to ACTIVE
	ResumeSIP(ctx context.Context, id uuid.UUID, userID uint64) (*entity.Transaction, error)

	// CancelTransaction cancels any transaction that is not already cancelled
	CancelTransaction(ctx context.Context, id uuid.UUID, userID uint64) (*entity.Transaction, error)

	// UpdateNextDeductionDate records the pending deduction of an ACTIVE SIP as executed
	UpdateNextDeductionDate(ctx context.Context, id uuid.UUID, userID uint64) (*entity.Transaction, error)

	// GetNextDeductionDates lists the upcoming deductions of the user's ACTIVE SIPs
	GetNextDeductionDates(ctx context.Context, userID uint64) ([]entity.DeductionSchedule, error)

	// GetPortfolio lists every transaction owned by the user, newest first
	GetPortfolio(ctx context.Context, userID uint64) ([]*entity.Transaction, error)

	// GetTransactionDetails returns one transaction owned by the user
	GetTransactionDetails(ctx context.Context, id uuid.UUID, userID uint64) (*entity.Transaction, error)

	// LinkToPortfolio idempotently appends an owned transaction to the user's portfolio
	LinkToPortfolio(ctx context.Context, id uuid.UUID, userID uint64) error
}

// CompletionUseCase moves exhausted SIPs to COMPLETED
type CompletionUseCase interface {
	// Run performs one sweep and returns how many transactions were completed
	Run(ctx context.Context) (int, error)
}
