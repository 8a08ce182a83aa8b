// Package lifecycle implements the transaction lifecycle engine: creation of
// SIP and LUMPSUM transactions and the owner-scoped state transitions on them.
//
// Every operation is a single read-modify-write against one transaction.
// Writes go through the store's compare-and-swap on Version, so a lost race
// surfaces as a ConflictError. The engine never retries; that is left to the
// caller.
package lifecycle

import (
	"context"

	"github.com/amirhossein-jamali/sip-processor/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/sip-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/sip-processor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/sip-processor/internal/domain/port/usecase"
	"github.com/google/uuid"
)

var _ usecase.LifecycleUseCase = (*Service)(nil)

// Service is the lifecycle engine
type Service struct {
	fundRepo        persistence.FundRepository
	userRepo        persistence.UserRepository
	transactionRepo persistence.TransactionRepository
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	validator       *RequestValidator
}

// NewService creates a new lifecycle engine
func NewService(
	fundRepo persistence.FundRepository,
	userRepo persistence.UserRepository,
	transactionRepo persistence.TransactionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		fundRepo:        fundRepo,
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		timeProvider:    timeProvider,
		logger:          logger,
		validator:       NewRequestValidator(),
	}
}

// transition loads an owned transaction, applies apply to it and stores the result
func (s *Service) transition(
	ctx context.Context,
	operation string,
	id uuid.UUID,
	userID uint64,
	apply func(tx *entity.Transaction) error,
) (*entity.Transaction, error) {
	tx, err := s.transactionRepo.GetByIDAndOwner(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	previousStatus := tx.Status
	if err := apply(tx); err != nil {
		s.logger.Debug("Transition refused", map[string]any{
			"operation":      operation,
			"transaction_id": id.String(),
			"user_id":        userID,
			"error":          err.Error(),
		})
		return nil, err
	}

	if err := s.transactionRepo.Update(ctx, tx); err != nil {
		return nil, err
	}

	s.logger.Info("Transaction updated", map[string]any{
		"operation":       operation,
		"transaction_id":  id.String(),
		"user_id":         userID,
		"previous_status": string(previousStatus),
		"status":          string(tx.Status),
		"version":         tx.Version,
	})

	return tx, nil
}
