package lifecycle

import (
	"context"

	"github.com/amirhossein-jamali/sip-processor/internal/domain/entity"
	"github.com/amirhossein-jamali/sip-processor/internal/domain/port/persistence"
	"github.com/google/uuid"
)

// UpdateNextDeductionDate records the pending deduction as executed and schedules the next one
func (s *Service) UpdateNextDeductionDate(ctx context.Context, id uuid.UUID, userID uint64) (*entity.Transaction, error) {
	return s.transition(ctx, "advance_deduction", id, userID, func(tx *entity.Transaction) error {
		return tx.AdvanceDeduction(s.timeProvider.Now())
	})
}

// GetNextDeductionDates lists the upcoming deductions of the user's ACTIVE SIPs
func (s *Service) GetNextDeductionDates(ctx context.Context, userID uint64) ([]entity.DeductionSchedule, error) {
	sips, err := s.transactionRepo.ListByOwner(ctx, userID, persistence.TransactionFilter{
		Type:   entity.TypeSIP,
		Status: entity.StatusActive,
	})
	if err != nil {
		return nil, err
	}

	schedules := make([]entity.DeductionSchedule, 0, len(sips))
	for _, tx := range sips {
		schedules = append(schedules, entity.ToDeductionSchedule(tx))
	}

	return schedules, nil
}
