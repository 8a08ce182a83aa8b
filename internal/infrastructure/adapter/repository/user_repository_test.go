package repository

import (
	"context"
	"testing"

	errs "github.com/amirhossein-jamali/sip-processor/internal/domain/error"
	"github.com/amirhossein-jamali/sip-processor/internal/infrastructure/adapter/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepositoryExists(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	exists, err := env.users.Exists(ctx, 1)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = env.users.Exists(ctx, 404)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUserRepositoryAppendToPortfolio(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	portfolioOf := func(userID uint64) []model.PortfolioEntry {
		var entries []model.PortfolioEntry
		require.NoError(t, env.db.Where("user_id = ?", userID).Order("id").Find(&entries).Error)
		return entries
	}

	t.Run("Appends in insertion order", func(t *testing.T) {
		first := newLumpsum(t, env, 1, testNow)
		second := newMonthlySIP(t, env, 1, farEnd)
		require.NoError(t, env.transactions.Create(ctx, first))
		require.NoError(t, env.transactions.Create(ctx, second))

		require.NoError(t, env.users.AppendToPortfolio(ctx, 1, first.ID))
		require.NoError(t, env.users.AppendToPortfolio(ctx, 1, second.ID))

		entries := portfolioOf(1)
		require.Len(t, entries, 2)
		assert.Equal(t, first.ID, entries[0].TransactionID)
		assert.Equal(t, second.ID, entries[1].TransactionID)
	})

	t.Run("Repeated append is a no-op", func(t *testing.T) {
		tx := newLumpsum(t, env, 2, testNow)
		require.NoError(t, env.transactions.Create(ctx, tx))

		require.NoError(t, env.users.AppendToPortfolio(ctx, 2, tx.ID))
		require.NoError(t, env.users.AppendToPortfolio(ctx, 2, tx.ID))

		assert.Len(t, portfolioOf(2), 1)
	})

	t.Run("Unknown user", func(t *testing.T) {
		err := env.users.AppendToPortfolio(ctx, 404, uuid.New())

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Unknown transaction", func(t *testing.T) {
		err := env.users.AppendToPortfolio(ctx, 3, uuid.New())

		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
		assert.Empty(t, portfolioOf(3))
	})
}

func TestFundRepositoryGetByID(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	fund, err := env.funds.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Short Term Debt Fund", fund.Name)
	assert.Equal(t, "12.3456", fund.NAV.String())
	assert.Equal(t, "1000", fund.MinimumInvestment.String())

	_, err = env.funds.GetByID(ctx, 404)
	assert.ErrorIs(t, err, errs.ErrFundNotFound)
}

func TestErrorClassifier(t *testing.T) {
	classifier := NewErrorClassifier()

	tests := []struct {
		message  string
		expected ErrorType
	}{
		{"UNIQUE constraint failed: transactions.id", DuplicateKeyError},
		{`ERROR: duplicate key value violates unique constraint "transactions_pkey" (SQLSTATE 23505)`, DuplicateKeyError},
		{"FOREIGN KEY constraint failed", ForeignKeyError},
		{"ERROR: could not serialize access due to concurrent update (SQLSTATE 40001)", LockError},
		{"dial tcp 127.0.0.1:5432: connect: connection refused", ConnectionError},
		{"syntax error", ""},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifier.Classify(assertError(tt.message)))
		})
	}
}

type assertError string

func (e assertError) Error() string { return string(e) }
