package repository

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/sip-processor/internal/domain/entity"
	"github.com/amirhossein-jamali/sip-processor/internal/infrastructure/adapter/database/migration"
	applogger "github.com/amirhossein-jamali/sip-processor/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/sip-processor/mocks/port/core"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testNow = time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

type testEnv struct {
	db           *gorm.DB
	clock        *coremocks.MockTimeProvider
	transactions *TransactionRepository
	users        *UserRepository
	funds        *FundRepository
}

// newTestEnv opens a private in-memory database with the schema and seed data applied
func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a new database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	clock := coremocks.NewMockTimeProvider(t)
	clock.EXPECT().Now().Return(testNow).Maybe()
	logger := applogger.NewNoopLogger()

	ctx := context.Background()
	require.NoError(t, migration.NewMigrationManager(db, logger, clock).MigrateAll(ctx))
	require.NoError(t, migration.SeedReferenceData(ctx, db, clock, logger))

	return testEnv{
		db:           db,
		clock:        clock,
		transactions: NewTransactionRepository(db, logger),
		users:        NewUserRepository(db, clock, logger),
		funds:        NewFundRepository(db, logger),
	}
}

func seededFund(t *testing.T, env testEnv) *entity.Fund {
	t.Helper()
	fund, err := env.funds.GetByID(context.Background(), 1)
	require.NoError(t, err)
	return fund
}

func newMonthlySIP(t *testing.T, env testEnv, userID uint64, end time.Time) *entity.Transaction {
	t.Helper()
	day := 15
	tx, err := entity.NewSIP(entity.SIPParams{
		UserID:       userID,
		Amount:       decimal.NewFromInt(5000),
		Frequency:    "MONTHLY",
		StartDate:    time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:      end,
		DeductionDay: &day,
	}, seededFund(t, env), testNow)
	require.NoError(t, err)
	return tx
}

func newLumpsum(t *testing.T, env testEnv, userID uint64, now time.Time) *entity.Transaction {
	t.Helper()
	tx, err := entity.NewLumpsum(userID, decimal.NewFromInt(10000), seededFund(t, env), now)
	require.NoError(t, err)
	return tx
}
