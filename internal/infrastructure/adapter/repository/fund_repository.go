package repository

import (
	"context"

	"github.com/amirhossein-jamali/sip-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/sip-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/sip-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/sip-processor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/sip-processor/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

var _ persistence.FundRepository = (*FundRepository)(nil)

// FundRepository implements FundRepository interface using GORM
type FundRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewFundRepository creates a new FundRepository instance
func NewFundRepository(db *gorm.DB, logger coreport.Logger) *FundRepository {
	return &FundRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// GetByID retrieves a fund by ID
func (r *FundRepository) GetByID(ctx context.Context, id uint64) (*entity.Fund, error) {
	var fundModel model.Fund
	result := r.db.WithContext(ctx).First(&fundModel, id)

	if result.Error != nil {
		return nil, handleDatabaseError(r.logger, r.errorClassifier, "getting fund", result.Error,
			errs.ErrFundNotFound, map[string]any{"fund_id": id})
	}

	return &entity.Fund{
		ID:                fundModel.ID,
		Name:              fundModel.Name,
		NAV:               fundModel.NAV,
		MinimumInvestment: fundModel.MinimumInvestment,
		UpdatedAt:         fundModel.UpdatedAt,
	}, nil
}
