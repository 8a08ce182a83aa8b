package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/sip-processor/internal/domain/port/core"
	"gorm.io/gorm"
)

// PostgresIndexManager creates indexes GORM tags cannot express
type PostgresIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewPostgresIndexManager creates a new index manager
func NewPostgresIndexManager(db *gorm.DB, logger coreport.Logger) *PostgresIndexManager {
	return &PostgresIndexManager{
		db:     db,
		logger: logger,
	}
}

var postgresIndexes = []struct {
	name string
	sql  string
}{
	{
		// deduction listing only ever reads running SIPs
		name: "idx_transactions_active_sip_next_deduction",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_active_sip_next_deduction
			ON transactions (user_id, next_deduction_date)
			WHERE type = 'SIP' AND status = 'ACTIVE'`,
	},
	{
		name: "idx_transactions_created_at_brin",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_created_at_brin
			ON transactions USING BRIN (created_at)
			WITH (pages_per_range = 32)`,
	},
}

// CreateIndexes creates the partial and BRIN indexes
func (m *PostgresIndexManager) CreateIndexes(ctx context.Context) error {
	m.logger.Info("Creating PostgreSQL indexes", nil)

	for _, index := range postgresIndexes {
		if err := m.db.WithContext(ctx).Exec(index.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": index.name,
				"error": err.Error(),
			})
			return err
		}
	}

	return nil
}

// ApplyPerformanceTweaks tunes the transactions table. Failures are logged, not returned.
func (m *PostgresIndexManager) ApplyPerformanceTweaks(ctx context.Context) {
	// status and deduction dates are rewritten in place on every transition
	if err := m.db.WithContext(ctx).Exec(`ALTER TABLE transactions SET (fillfactor = 90)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for transactions table", map[string]any{
			"error": err.Error(),
		})
	}
}
