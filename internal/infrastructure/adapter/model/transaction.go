package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents the database model for transactions.
// SIP-only columns are nullable and stay NULL for LUMPSUM rows.
type Transaction struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID            uint64          `gorm:"not null;index:idx_transactions_owner,priority:1"`
	FundID            uint64          `gorm:"not null;index"`
	Type              string          `gorm:"not null;size:20;index:idx_transactions_owner,priority:3"`
	Amount            decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	Units             decimal.Decimal `gorm:"type:numeric(28,8);not null"`
	NAVAtPurchase     decimal.Decimal `gorm:"column:nav_at_purchase;type:numeric(20,8);not null"`
	Frequency         *string         `gorm:"size:20"`
	DeductionDay      *int
	StartDate         time.Time  `gorm:"not null"`
	EndDate           *time.Time `gorm:"index:idx_transactions_expiry,priority:2"`
	Status            string     `gorm:"not null;size:20;index:idx_transactions_owner,priority:2;index:idx_transactions_expiry,priority:1"`
	LastDeductionDate *time.Time
	NextDeductionDate *time.Time
	Version           uint64    `gorm:"not null;default:0"`
	CreatedAt         time.Time `gorm:"not null;index"`
	UpdatedAt         time.Time `gorm:"not null"`

	// Define relationships
	User User `gorm:"foreignKey:UserID;references:ID"`
	Fund Fund `gorm:"foreignKey:FundID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
