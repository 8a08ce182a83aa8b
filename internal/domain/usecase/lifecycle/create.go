package lifecycle

import (
	"context"

	"github.com/amirhossein-jamali/sip-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/sip-processor/internal/domain/error"
	"github.com/amirhossein-jamali/sip-processor/internal/domain/port/usecase"
)

// CreateSIP creates a recurring plan for the user.
// Order of checks: request shape, fund, user, then the SIP rules on the entity.
func (s *Service) CreateSIP(ctx context.Context, req usecase.CreateSIPRequest) (*entity.Transaction, error) {
	amount, err := s.validator.ValidateSIP(req)
	if err != nil {
		return nil, err
	}

	fund, err := s.loadParties(ctx, req.FundID, req.UserID)
	if err != nil {
		return nil, err
	}

	tx, err := entity.NewSIP(entity.SIPParams{
		UserID:       req.UserID,
		Amount:       amount,
		Frequency:    req.Frequency,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		DeductionDay: req.DeductionDay,
	}, fund, s.timeProvider.Now())
	if err != nil {
		return nil, err
	}

	return s.store(ctx, tx)
}

// CreateLumpsum creates a one-time investment for the user
func (s *Service) CreateLumpsum(ctx context.Context, req usecase.CreateLumpsumRequest) (*entity.Transaction, error) {
	amount, err := s.validator.ValidateLumpsum(req)
	if err != nil {
		return nil, err
	}

	fund, err := s.loadParties(ctx, req.FundID, req.UserID)
	if err != nil {
		return nil, err
	}

	tx, err := entity.NewLumpsum(req.UserID, amount, fund, s.timeProvider.Now())
	if err != nil {
		return nil, err
	}

	return s.store(ctx, tx)
}

// loadParties resolves the fund and checks that the user exists
func (s *Service) loadParties(ctx context.Context, fundID, userID uint64) (*entity.Fund, error) {
	fund, err := s.fundRepo.GetByID(ctx, fundID)
	if err != nil {
		return nil, err
	}

	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.ErrUserNotFound
	}

	return fund, nil
}

// store inserts the transaction, then links it to the owner's portfolio.
// The two writes are not atomic: a failed link returns the stored transaction with a PortfolioLinkError.
func (s *Service) store(ctx context.Context, tx *entity.Transaction) (*entity.Transaction, error) {
	if err := s.transactionRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	if err := s.userRepo.AppendToPortfolio(ctx, tx.UserID, tx.ID); err != nil {
		linkErr := errs.NewPortfolioLinkError(tx.ID.String(), tx.UserID, err)
		s.logger.Warn("Transaction stored but not linked to portfolio", map[string]any{
			"transaction_id": tx.ID.String(),
			"user_id":        tx.UserID,
			"error":          err.Error(),
		})
		return tx, linkErr
	}

	s.logger.Info("Transaction created", map[string]any{
		"transaction_id": tx.ID.String(),
		"user_id":        tx.UserID,
		"fund_id":        tx.FundID,
		"type":           string(tx.Type),
		"amount":         entity.FormatAmount(tx.Amount()),
		"units":          tx.Units().String(),
	})

	return tx, nil
}
