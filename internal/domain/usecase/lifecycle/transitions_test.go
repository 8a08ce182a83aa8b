package lifecycle

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/sip-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/sip-processor/internal/domain/error"
	"github.com/amirhossein-jamali/sip-processor/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/sip-processor/internal/domain/schedule"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var created = time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

func storedSIP(t *testing.T, frequency string) *entity.Transaction {
	t.Helper()
	tx, err := entity.NewSIP(entity.SIPParams{
		UserID:       1,
		Amount:       decimal.NewFromInt(5000),
		Frequency:    frequency,
		StartDate:    time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		DeductionDay: intPtr(15),
	}, testFund(50, 500), created)
	require.NoError(t, err)
	tx.Version = 1
	return tx
}

func storedLumpsum(t *testing.T) *entity.Transaction {
	t.Helper()
	tx, err := entity.NewLumpsum(1, decimal.NewFromInt(5000), testFund(50, 500), created)
	require.NoError(t, err)
	tx.Version = 1
	return tx
}

// expectCASUpdate makes Update behave like the store: bump the version on success
func expectCASUpdate(deps testDeps) {
	deps.transactions.EXPECT().Update(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, tx *entity.Transaction) error {
			tx.Version++
			return nil
		}).Once()
}

func TestPauseResume(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Round trip returns to ACTIVE with schedule untouched", func(t *testing.T) {
		svc, deps := newTestService(t, now)
		tx := storedSIP(t, "MONTHLY")
		nextBefore := *tx.SIP.NextDeductionDate

		deps.transactions.EXPECT().GetByIDAndOwner(mock.Anything, tx.ID, uint64(1)).Return(tx, nil).Twice()
		expectCASUpdate(deps)
		expectCASUpdate(deps)

		paused, err := svc.PauseSIP(ctx, tx.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusPaused, paused.Status)

		resumed, err := svc.ResumeSIP(ctx, tx.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusActive, resumed.Status)
		assert.Equal(t, nextBefore, *resumed.SIP.NextDeductionDate)
		assert.Nil(t, resumed.SIP.LastDeductionDate)
		assert.True(t, resumed.Amount().Equal(decimal.NewFromInt(5000)))
		assert.Equal(t, uint64(3), resumed.Version)
	})

	t.Run("Pausing a lumpsum reports the type mismatch", func(t *testing.T) {
		svc, deps := newTestService(t, now)
		tx := storedLumpsum(t)

		deps.transactions.EXPECT().GetByIDAndOwner(mock.Anything, tx.ID, uint64(1)).Return(tx, nil).Once()

		_, err := svc.PauseSIP(ctx, tx.ID, 1)

		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Contains(t, err.Error(), "only SIP transactions can be paused")
		assert.Equal(t, entity.StatusActive, tx.Status)
	})

	t.Run("Resuming an active SIP", func(t *testing.T) {
		svc, deps := newTestService(t, now)
		tx := storedSIP(t, "MONTHLY")

		deps.transactions.EXPECT().GetByIDAndOwner(mock.Anything, tx.ID, uint64(1)).Return(tx, nil).Once()

		_, err := svc.ResumeSIP(ctx, tx.ID, 1)

		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("Another user's transaction is not found", func(t *testing.T) {
		svc, deps := newTestService(t, now)
		tx := storedSIP(t, "MONTHLY")

		deps.transactions.EXPECT().GetByIDAndOwner(mock.Anything, tx.ID, uint64(2)).Return(nil, errs.ErrTransactionNotFound).Once()

		_, err := svc.PauseSIP(ctx, tx.ID, 2)

		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("Lost race surfaces as conflict", func(t *testing.T) {
		svc, deps := newTestService(t, now)
		tx := storedSIP(t, "MONTHLY")

		deps.transactions.EXPECT().GetByIDAndOwner(mock.Anything, tx.ID, uint64(1)).Return(tx, nil).Once()
		deps.transactions.EXPECT().Update(mock.Anything, tx).
			Return(errs.NewConflictError(tx.ID.String(), 1)).Once()

		_, err := svc.PauseSIP(ctx, tx.ID, 1)

		var conflict *errs.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, uint64(1), conflict.ExpectedVersion)
	})
}

func TestCancelTransaction(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Second cancel is refused", func(t *testing.T) {
		svc, deps := newTestService(t, now)
		tx := storedSIP(t, "MONTHLY")

		deps.transactions.EXPECT().GetByIDAndOwner(mock.Anything, tx.ID, uint64(1)).Return(tx, nil).Twice()
		expectCASUpdate(deps)

		cancelled, err := svc.CancelTransaction(ctx, tx.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusCancelled, cancelled.Status)

		_, err = svc.CancelTransaction(ctx, tx.ID, 1)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("Completed SIP can be cancelled", func(t *testing.T) {
		svc, deps := newTestService(t, now)
		tx := storedSIP(t, "MONTHLY")
		tx.Status = entity.StatusCompleted

		deps.transactions.EXPECT().GetByIDAndOwner(mock.Anything, tx.ID, uint64(1)).Return(tx, nil).Once()
		expectCASUpdate(deps)

		cancelled, err := svc.CancelTransaction(ctx, tx.ID, 1)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusCancelled, cancelled.Status)
	})

	t.Run("Lumpsum can be cancelled", func(t *testing.T) {
		svc, deps := newTestService(t, now)
		tx := storedLumpsum(t)

		deps.transactions.EXPECT().GetByIDAndOwner(mock.Anything, tx.ID, uint64(1)).Return(tx, nil).Once()
		expectCASUpdate(deps)

		_, err := svc.CancelTransaction(ctx, tx.ID, 1)

		assert.NoError(t, err)
	})
}

func TestUpdateNextDeductionDate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 4, 12, 0, 0, 0, time.UTC)

	t.Run("Weekly SIP advances by seven days", func(t *testing.T) {
		svc, deps := newTestService(t, now)
		tx := storedSIP(t, "WEEKLY")
		monday := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
		tx.SIP.NextDeductionDate = &monday

		deps.transactions.EXPECT().GetByIDAndOwner(mock.Anything, tx.ID, uint64(1)).Return(tx, nil).Once()
		expectCASUpdate(deps)

		updated, err := svc.UpdateNextDeductionDate(ctx, tx.ID, 1)

		require.NoError(t, err)
		assert.Equal(t, schedule.Weekly, updated.SIP.Frequency)
		assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), *updated.SIP.LastDeductionDate)
		assert.Equal(t, time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), *updated.SIP.NextDeductionDate)
	})

	t.Run("Successive advances never move backwards", func(t *testing.T) {
		svc, deps := newTestService(t, now)
		tx := storedSIP(t, "MONTHLY")

		deps.transactions.EXPECT().GetByIDAndOwner(mock.Anything, tx.ID, uint64(1)).Return(tx, nil).Times(6)
		deps.transactions.EXPECT().Update(mock.Anything, tx).Return(nil).Times(6)

		previous := *tx.SIP.NextDeductionDate
		for i := 0; i < 6; i++ {
			updated, err := svc.UpdateNextDeductionDate(ctx, tx.ID, 1)
			require.NoError(t, err)
			assert.True(t, updated.SIP.NextDeductionDate.After(previous))
			assert.Equal(t, 15, updated.SIP.NextDeductionDate.Day())
			previous = *updated.SIP.NextDeductionDate
		}
	})

	t.Run("Paused SIP is refused", func(t *testing.T) {
		svc, deps := newTestService(t, now)
		tx := storedSIP(t, "MONTHLY")
		tx.Status = entity.StatusPaused

		deps.transactions.EXPECT().GetByIDAndOwner(mock.Anything, tx.ID, uint64(1)).Return(tx, nil).Once()

		_, err := svc.UpdateNextDeductionDate(ctx, tx.ID, 1)

		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestGetNextDeductionDates(t *testing.T) {
	ctx := context.Background()

	t.Run("Lists active SIPs", func(t *testing.T) {
		svc, deps := newTestService(t, created)
		monthly := storedSIP(t, "MONTHLY")
		daily := storedSIP(t, "DAILY")

		deps.transactions.EXPECT().ListByOwner(mock.Anything, uint64(1), persistence.TransactionFilter{
			Type:   entity.TypeSIP,
			Status: entity.StatusActive,
		}).Return([]*entity.Transaction{monthly, daily}, nil).Once()

		schedules, err := svc.GetNextDeductionDates(ctx, 1)

		require.NoError(t, err)
		require.Len(t, schedules, 2)
		assert.Equal(t, "MONTHLY", schedules[0].Frequency)
		assert.Equal(t, 15, *schedules[0].DeductionDay)
		assert.Equal(t, "DAILY", schedules[1].Frequency)
		assert.Nil(t, schedules[1].DeductionDay)
		assert.Equal(t, uint64(10), schedules[1].FundID)
	})

	t.Run("Empty result is an empty list", func(t *testing.T) {
		svc, deps := newTestService(t, created)

		deps.transactions.EXPECT().ListByOwner(mock.Anything, uint64(9), mock.Anything).Return(nil, nil).Once()

		schedules, err := svc.GetNextDeductionDates(ctx, 9)

		require.NoError(t, err)
		assert.NotNil(t, schedules)
		assert.Empty(t, schedules)
	})
}
