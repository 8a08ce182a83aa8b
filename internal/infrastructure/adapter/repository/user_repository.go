package repository

import (
	"context"

	errs "github.com/amirhossein-jamali/sip-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/sip-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/sip-processor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/sip-processor/internal/infrastructure/adapter/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ persistence.UserRepository = (*UserRepository)(nil)

// UserRepository implements UserRepository interface using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// Exists checks whether a user with the given ID exists
func (r *UserRepository) Exists(ctx context.Context, id uint64) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Count(&count)

	if result.Error != nil {
		return false, handleDatabaseError(r.logger, r.errorClassifier, "checking user existence", result.Error,
			errs.ErrUserNotFound, map[string]any{"user_id": id})
	}

	return count > 0, nil
}

// AppendToPortfolio links a transaction to the user's portfolio.
// The (user_id, transaction_id) pair is unique, so a repeated append inserts nothing.
func (r *UserRepository) AppendToPortfolio(ctx context.Context, userID uint64, transactionID uuid.UUID) error {
	exists, err := r.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return errs.ErrUserNotFound
	}

	entry := model.PortfolioEntry{
		UserID:        userID,
		TransactionID: transactionID,
		CreatedAt:     r.timeProvider.Now(),
	}

	result := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&entry)

	if result.Error != nil {
		if r.errorClassifier.IsForeignKeyError(result.Error) {
			r.logger.Warn("Portfolio append references a missing row", map[string]any{
				"user_id":        userID,
				"transaction_id": transactionID.String(),
				"error":          result.Error.Error(),
			})
			return errs.ErrTransactionNotFound
		}
		return handleDatabaseError(r.logger, r.errorClassifier, "appending to portfolio", result.Error,
			errs.ErrUserNotFound, map[string]any{"user_id": userID, "transaction_id": transactionID.String()})
	}

	if result.RowsAffected == 0 {
		r.logger.Debug("Transaction already in portfolio", map[string]any{
			"user_id":        userID,
			"transaction_id": transactionID.String(),
		})
	}

	return nil
}
