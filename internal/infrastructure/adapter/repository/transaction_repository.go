package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/sip-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/sip-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/sip-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/sip-processor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/sip-processor/internal/infrastructure/adapter/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var _ persistence.TransactionRepository = (*TransactionRepository)(nil)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(transaction *entity.Transaction) model.Transaction {
	rec := transaction.Record()
	return model.Transaction{
		ID:                rec.ID,
		UserID:            rec.UserID,
		FundID:            rec.FundID,
		Type:              rec.Type,
		Amount:            rec.Amount,
		Units:             rec.Units,
		NAVAtPurchase:     rec.NAVAtPurchase,
		Frequency:         rec.Frequency,
		DeductionDay:      rec.DeductionDay,
		StartDate:         rec.StartDate,
		EndDate:           rec.EndDate,
		Status:            rec.Status,
		LastDeductionDate: rec.LastDeductionDate,
		NextDeductionDate: rec.NextDeductionDate,
		Version:           rec.Version,
		CreatedAt:         rec.CreatedAt,
		UpdatedAt:         rec.UpdatedAt,
	}
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(m *model.Transaction) *entity.Transaction {
	return entity.RestoreTransaction(entity.TransactionRecord{
		ID:                m.ID,
		UserID:            m.UserID,
		FundID:            m.FundID,
		Type:              m.Type,
		Amount:            m.Amount,
		Units:             m.Units,
		NAVAtPurchase:     m.NAVAtPurchase,
		Frequency:         m.Frequency,
		DeductionDay:      m.DeductionDay,
		StartDate:         m.StartDate,
		EndDate:           m.EndDate,
		Status:            m.Status,
		LastDeductionDate: m.LastDeductionDate,
		NextDeductionDate: m.NextDeductionDate,
		Version:           m.Version,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	})
}

func (r *TransactionRepository) modelsToEntities(models []model.Transaction) []*entity.Transaction {
	transactions := make([]*entity.Transaction, 0, len(models))
	for i := range models {
		transactions = append(transactions, r.modelToEntity(&models[i]))
	}
	return transactions
}

// Create saves a new transaction
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	r.logger.Debug("Creating transaction", map[string]any{
		"transaction_id": transaction.ID.String(),
		"user_id":        transaction.UserID,
		"type":           string(transaction.Type),
	})

	transactionModel := r.entityToModel(transaction)

	result := r.db.WithContext(ctx).Omit("User", "Fund").Create(&transactionModel)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate transaction detected", map[string]any{
				"transaction_id": transaction.ID.String(),
			})
			return fmt.Errorf("%w: transaction %s already exists", errs.ErrValidation, transaction.ID)
		}
		return handleDatabaseError(r.logger, r.errorClassifier, "creating transaction", result.Error,
			errs.ErrTransactionNotFound, map[string]any{"transaction_id": transaction.ID.String()})
	}

	return nil
}

// GetByID retrieves a transaction by ID regardless of owner
func (r *TransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.Transaction
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel)

	if result.Error != nil {
		return nil, handleDatabaseError(r.logger, r.errorClassifier, "getting transaction", result.Error,
			errs.ErrTransactionNotFound, map[string]any{"transaction_id": id.String()})
	}

	return r.modelToEntity(&transactionModel), nil
}

// GetByIDAndOwner retrieves a transaction owned by userID
func (r *TransactionRepository) GetByIDAndOwner(ctx context.Context, id uuid.UUID, userID uint64) (*entity.Transaction, error) {
	var transactionModel model.Transaction
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&transactionModel)

	if result.Error != nil {
		return nil, handleDatabaseError(r.logger, r.errorClassifier, "getting owned transaction", result.Error,
			errs.ErrTransactionNotFound, map[string]any{"transaction_id": id.String(), "user_id": userID})
	}

	return r.modelToEntity(&transactionModel), nil
}

// Update writes the mutable fields of a transaction if its version still matches the stored row
func (r *TransactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	rec := transaction.Record()

	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ? AND user_id = ? AND version = ?", rec.ID, rec.UserID, rec.Version).
		Updates(map[string]interface{}{
			"status":              rec.Status,
			"last_deduction_date": rec.LastDeductionDate,
			"next_deduction_date": rec.NextDeductionDate,
			"updated_at":          rec.UpdatedAt,
			"version":             gorm.Expr("version + 1"),
		})

	if result.Error != nil {
		return handleDatabaseError(r.logger, r.errorClassifier, "updating transaction", result.Error,
			errs.ErrTransactionNotFound, map[string]any{"transaction_id": rec.ID.String()})
	}

	if result.RowsAffected == 0 {
		return r.explainMissedUpdate(ctx, rec)
	}

	transaction.Version++

	r.logger.Debug("Transaction updated", map[string]any{
		"transaction_id": rec.ID.String(),
		"status":         rec.Status,
		"version":        transaction.Version,
	})
	return nil
}

// explainMissedUpdate tells a vanished row apart from a version race
func (r *TransactionRepository) explainMissedUpdate(ctx context.Context, rec entity.TransactionRecord) error {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ? AND user_id = ?", rec.ID, rec.UserID).
		Count(&count)

	if result.Error != nil {
		return handleDatabaseError(r.logger, r.errorClassifier, "checking transaction after missed update", result.Error,
			errs.ErrTransactionNotFound, map[string]any{"transaction_id": rec.ID.String()})
	}

	if count == 0 {
		return errs.ErrTransactionNotFound
	}

	r.logger.Warn("Concurrent transaction update detected", map[string]any{
		"transaction_id":   rec.ID.String(),
		"expected_version": rec.Version,
	})
	return errs.NewConflictError(rec.ID.String(), rec.Version)
}

// ListByOwner returns the user's transactions matching filter, newest first
func (r *TransactionRepository) ListByOwner(ctx context.Context, userID uint64, filter persistence.TransactionFilter) ([]*entity.Transaction, error) {
	if filter.Status != "" && !entity.IsValidStatus(string(filter.Status)) {
		return nil, fmt.Errorf("%w: unknown status filter %q", errs.ErrValidation, filter.Status)
	}

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.Type != "" {
		query = query.Where("type = ?", string(filter.Type))
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	var models []model.Transaction
	if err := query.Order("created_at desc").Order("id").Find(&models).Error; err != nil {
		return nil, handleDatabaseError(r.logger, r.errorClassifier, "listing transactions", err,
			errs.ErrTransactionNotFound, map[string]any{"user_id": userID})
	}

	return r.modelsToEntities(models), nil
}

// ListSIPsEndedBefore returns running SIPs whose end date is before cutoff, oldest end date first
func (r *TransactionRepository) ListSIPsEndedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*entity.Transaction, error) {
	var models []model.Transaction
	err := r.db.WithContext(ctx).
		Where("type = ? AND status IN ? AND end_date < ?",
			string(entity.TypeSIP),
			[]string{string(entity.StatusActive), string(entity.StatusPaused)},
			cutoff).
		Order("end_date asc").
		Limit(limit).
		Find(&models).Error

	if err != nil {
		return nil, handleDatabaseError(r.logger, r.errorClassifier, "listing ended SIPs", err,
			errs.ErrTransactionNotFound, map[string]any{"cutoff": cutoff})
	}

	return r.modelsToEntities(models), nil
}
