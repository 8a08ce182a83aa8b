package lifecycle

import (
	"context"
	"testing"

	"github.com/amirhossein-jamali/sip-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/sip-processor/internal/domain/error"
	"github.com/amirhossein-jamali/sip-processor/internal/domain/port/persistence"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetPortfolio(t *testing.T) {
	ctx := context.Background()
	svc, deps := newTestService(t, created)
	sip := storedSIP(t, "MONTHLY")
	lumpsum := storedLumpsum(t)

	deps.transactions.EXPECT().ListByOwner(mock.Anything, uint64(1), persistence.TransactionFilter{}).
		Return([]*entity.Transaction{lumpsum, sip}, nil).Once()

	portfolio, err := svc.GetPortfolio(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, []*entity.Transaction{lumpsum, sip}, portfolio)
}

func TestGetTransactionDetails(t *testing.T) {
	ctx := context.Background()

	t.Run("Owned transaction", func(t *testing.T) {
		svc, deps := newTestService(t, created)
		tx := storedSIP(t, "MONTHLY")

		deps.transactions.EXPECT().GetByIDAndOwner(mock.Anything, tx.ID, uint64(1)).Return(tx, nil).Once()

		found, err := svc.GetTransactionDetails(ctx, tx.ID, 1)

		require.NoError(t, err)
		assert.Same(t, tx, found)
	})

	t.Run("Unknown transaction", func(t *testing.T) {
		svc, deps := newTestService(t, created)
		id := uuid.New()

		deps.transactions.EXPECT().GetByIDAndOwner(mock.Anything, id, uint64(1)).Return(nil, errs.ErrTransactionNotFound).Once()

		_, err := svc.GetTransactionDetails(ctx, id, 1)

		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})
}

func TestLinkToPortfolio(t *testing.T) {
	ctx := context.Background()

	t.Run("Links an owned transaction", func(t *testing.T) {
		svc, deps := newTestService(t, created)
		tx := storedLumpsum(t)

		deps.transactions.EXPECT().GetByIDAndOwner(mock.Anything, tx.ID, uint64(1)).Return(tx, nil).Once()
		deps.users.EXPECT().AppendToPortfolio(mock.Anything, uint64(1), tx.ID).Return(nil).Once()

		assert.NoError(t, svc.LinkToPortfolio(ctx, tx.ID, 1))
	})

	t.Run("Refuses a transaction owned by someone else", func(t *testing.T) {
		svc, deps := newTestService(t, created)
		id := uuid.New()

		deps.transactions.EXPECT().GetByIDAndOwner(mock.Anything, id, uint64(2)).Return(nil, errs.ErrTransactionNotFound).Once()

		err := svc.LinkToPortfolio(ctx, id, 2)

		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("Append failure is returned", func(t *testing.T) {
		svc, deps := newTestService(t, created)
		tx := storedLumpsum(t)

		deps.transactions.EXPECT().GetByIDAndOwner(mock.Anything, tx.ID, uint64(1)).Return(tx, nil).Once()
		deps.users.EXPECT().AppendToPortfolio(mock.Anything, uint64(1), tx.ID).Return(errs.ErrUserNotFound).Once()

		err := svc.LinkToPortfolio(ctx, tx.ID, 1)

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}
