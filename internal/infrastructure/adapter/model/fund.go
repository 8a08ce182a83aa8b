package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fund represents the database model for mutual funds
type Fund struct {
	ID                uint64          `gorm:"primaryKey"`
	Name              string          `gorm:"not null;size:255"`
	NAV               decimal.Decimal `gorm:"column:nav;type:numeric(20,8);not null"`
	MinimumInvestment decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null"`
}

// TableName specifies the table name for Fund
func (Fund) TableName() string {
	return "funds"
}
