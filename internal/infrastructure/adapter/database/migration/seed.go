package migration

import (
	"context"

	"github.com/amirhossein-jamali/sip-processor/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/sip-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/sip-processor/internal/infrastructure/adapter/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var defaultUsers = []entity.User{
	{ID: 1, Name: "Asha Verma"},
	{ID: 2, Name: "Rohan Mehta"},
	{ID: 3, Name: "Meera Iyer"},
}

var defaultFunds = []entity.Fund{
	{ID: 1, Name: "Bluechip Equity Fund", NAV: decimal.RequireFromString("25.00"), MinimumInvestment: decimal.RequireFromString("500.00")},
	{ID: 2, Name: "Short Term Debt Fund", NAV: decimal.RequireFromString("12.3456"), MinimumInvestment: decimal.RequireFromString("1000.00")},
	{ID: 3, Name: "Balanced Advantage Fund", NAV: decimal.RequireFromString("48.75"), MinimumInvestment: decimal.RequireFromString("100.00")},
}

// SeedReferenceData inserts the development users and funds. Existing rows are left untouched.
func SeedReferenceData(ctx context.Context, db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) error {
	now := timeProvider.Now()

	users := make([]model.User, 0, len(defaultUsers))
	for _, u := range defaultUsers {
		users = append(users, model.User{ID: u.ID, Name: u.Name, CreatedAt: now, UpdatedAt: now})
	}

	funds := make([]model.Fund, 0, len(defaultFunds))
	for _, f := range defaultFunds {
		funds = append(funds, model.Fund{
			ID:                f.ID,
			Name:              f.Name,
			NAV:               f.NAV,
			MinimumInvestment: f.MinimumInvestment,
			CreatedAt:         now,
			UpdatedAt:         now,
		})
	}

	insertMissing := func(rows any) error {
		return db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(rows).Error
	}
	if err := insertMissing(&users); err != nil {
		return err
	}
	if err := insertMissing(&funds); err != nil {
		return err
	}

	logger.Info("Reference data seeded", map[string]any{
		"users": len(users),
		"funds": len(funds),
	})
	return nil
}
