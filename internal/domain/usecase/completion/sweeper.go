// Package completion moves SIPs whose end date has passed to COMPLETED.
package completion

import (
	"context"

	"github.com/amirhossein-jamali/sip-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/sip-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/sip-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/sip-processor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/sip-processor/internal/domain/port/usecase"
)

// DefaultBatchSize bounds how many SIPs one sweep loads
const DefaultBatchSize = 500

var _ usecase.CompletionUseCase = (*Sweeper)(nil)

// Sweeper completes exhausted SIPs through the same compare-and-swap path as user operations
type Sweeper struct {
	transactionRepo persistence.TransactionRepository
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	batchSize       int
}

// NewSweeper creates a new Sweeper. A non-positive batchSize falls back to DefaultBatchSize.
func NewSweeper(
	transactionRepo persistence.TransactionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	batchSize int,
) *Sweeper {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &Sweeper{
		transactionRepo: transactionRepo,
		timeProvider:    timeProvider,
		logger:          logger,
		batchSize:       batchSize,
	}
}

// Run performs one sweep.
// Conflicts and transactions that changed since listing are skipped; the next run picks them up.
// Any other error aborts the sweep.
func (s *Sweeper) Run(ctx context.Context) (int, error) {
	start := s.timeProvider.Now()

	candidates, err := s.transactionRepo.ListSIPsEndedBefore(ctx, entity.CompletionCutoff(start), s.batchSize)
	if err != nil {
		return 0, err
	}

	completed := 0
	for _, tx := range candidates {
		if err := ctx.Err(); err != nil {
			return completed, err
		}

		if err := tx.Complete(start); err != nil {
			s.logger.Debug("Skipping transaction that is no longer completable", map[string]any{
				"transaction_id": tx.ID.String(),
				"status":         string(tx.Status),
			})
			continue
		}

		if err := s.transactionRepo.Update(ctx, tx); err != nil {
			if errs.IsConflictError(err) || errs.IsNotFoundError(err) {
				s.logger.Warn("Skipping transaction modified during completion sweep", map[string]any{
					"transaction_id": tx.ID.String(),
					"error":          err.Error(),
				})
				continue
			}
			return completed, err
		}

		completed++
	}

	s.logger.Info("Completion sweep finished", map[string]any{
		"candidates": len(candidates),
		"completed":  completed,
		"duration":   s.timeProvider.Since(start).String(),
	})

	return completed, nil
}
