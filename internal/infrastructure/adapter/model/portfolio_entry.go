package model

import (
	"time"

	"github.com/google/uuid"
)

// PortfolioEntry links a transaction to its owner's portfolio.
// The serial ID preserves insertion order.
type PortfolioEntry struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	UserID        uint64    `gorm:"not null;uniqueIndex:idx_portfolio_user_transaction,priority:1"`
	TransactionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_portfolio_user_transaction,priority:2"`
	CreatedAt     time.Time `gorm:"not null"`

	User        User        `gorm:"foreignKey:UserID;references:ID"`
	Transaction Transaction `gorm:"foreignKey:TransactionID;references:ID"`
}

// TableName specifies the table name for PortfolioEntry
func (PortfolioEntry) TableName() string {
	return "portfolio_entries"
}
