package lifecycle

import (
	"context"

	"github.com/amirhossein-jamali/sip-processor/internal/domain/entity"
	"github.com/google/uuid"
)

// PauseSIP moves an ACTIVE SIP owned by userID to PAUSED
func (s *Service) PauseSIP(ctx context.Context, id uuid.UUID, userID uint64) (*entity.Transaction, error) {
	return s.transition(ctx, "pause", id, userID, func(tx *entity.Transaction) error {
		return tx.Pause(s.timeProvider.Now())
	})
}

// ResumeSIP moves a PAUSED SIP owned by userID back to ACTIVE
func (s *Service) ResumeSIP(ctx context.Context, id uuid.UUID, userID uint64) (*entity.Transaction, error) {
	return s.transition(ctx, "resume", id, userID, func(tx *entity.Transaction) error {
		return tx.Resume(s.timeProvider.Now())
	})
}

// CancelTransaction cancels a transaction owned by userID
func (s *Service) CancelTransaction(ctx context.Context, id uuid.UUID, userID uint64) (*entity.Transaction, error) {
	return s.transition(ctx, "cancel", id, userID, func(tx *entity.Transaction) error {
		return tx.Cancel(s.timeProvider.Now())
	})
}
