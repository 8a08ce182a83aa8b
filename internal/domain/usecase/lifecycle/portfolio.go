package lifecycle

import (
	"context"

	"github.com/amirhossein-jamali/sip-processor/internal/domain/entity"
	"github.com/amirhossein-jamali/sip-processor/internal/domain/port/persistence"
	"github.com/google/uuid"
)

// GetPortfolio lists every transaction owned by the user, newest first
func (s *Service) GetPortfolio(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	return s.transactionRepo.ListByOwner(ctx, userID, persistence.TransactionFilter{})
}

// GetTransactionDetails returns one transaction owned by the user
func (s *Service) GetTransactionDetails(ctx context.Context, id uuid.UUID, userID uint64) (*entity.Transaction, error) {
	return s.transactionRepo.GetByIDAndOwner(ctx, id, userID)
}

// LinkToPortfolio re-appends an owned transaction to the user's portfolio.
// Used to reconcile a PortfolioLinkError; linking twice is a no-op.
func (s *Service) LinkToPortfolio(ctx context.Context, id uuid.UUID, userID uint64) error {
	tx, err := s.transactionRepo.GetByIDAndOwner(ctx, id, userID)
	if err != nil {
		return err
	}

	if err := s.userRepo.AppendToPortfolio(ctx, userID, tx.ID); err != nil {
		return err
	}

	s.logger.Info("Transaction linked to portfolio", map[string]any{
		"transaction_id": id.String(),
		"user_id":        userID,
	})

	return nil
}
