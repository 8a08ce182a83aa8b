package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/sip-processor/internal/domain/error"
	applogger "github.com/amirhossein-jamali/sip-processor/internal/infrastructure/adapter/logger"
	apptime "github.com/amirhossein-jamali/sip-processor/internal/infrastructure/adapter/time"
	usecasemocks "github.com/amirhossein-jamali/sip-processor/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestScheduler(timeout time.Duration) *Scheduler {
	return New(applogger.NewNoopLogger(), apptime.NewRealTimeProvider(), timeout)
}

func TestAddJob(t *testing.T) {
	s := newTestScheduler(0)
	job := NewCompletionJob(usecasemocks.NewMockCompletionUseCase(t), applogger.NewNoopLogger())

	require.NoError(t, s.AddJob("@every 1h", job))
	require.NoError(t, s.AddJob("0 */5 * * * *", job))
	assert.Len(t, s.cron.Entries(), 2)

	err := s.AddJob("every now and then", job)
	assert.ErrorContains(t, err, "sip_completion")
}

func TestRunNow(t *testing.T) {
	t.Run("Sweep succeeds", func(t *testing.T) {
		completion := usecasemocks.NewMockCompletionUseCase(t)
		completion.EXPECT().Run(mock.Anything).Return(3, nil).Once()

		err := newTestScheduler(time.Second).RunNow(NewCompletionJob(completion, applogger.NewNoopLogger()))

		assert.NoError(t, err)
	})

	t.Run("Sweep failure is returned", func(t *testing.T) {
		completion := usecasemocks.NewMockCompletionUseCase(t)
		completion.EXPECT().Run(mock.Anything).Return(0, errs.ErrDatabaseConnection).Once()

		err := newTestScheduler(0).RunNow(NewCompletionJob(completion, applogger.NewNoopLogger()))

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})

	t.Run("Run is bounded by the job timeout", func(t *testing.T) {
		completion := usecasemocks.NewMockCompletionUseCase(t)
		completion.EXPECT().Run(mock.Anything).RunAndReturn(func(ctx context.Context) (int, error) {
			deadline, ok := ctx.Deadline()
			assert.True(t, ok)
			assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
			return 0, nil
		}).Once()

		require.NoError(t, newTestScheduler(time.Minute).RunNow(NewCompletionJob(completion, applogger.NewNoopLogger())))
	})
}

func TestStopCancelsRunningJobs(t *testing.T) {
	s := newTestScheduler(0)
	s.Start()

	require.NoError(t, s.Stop(context.Background()))
	assert.True(t, errors.Is(s.ctx.Err(), context.Canceled))
}

func TestKeyValueFields(t *testing.T) {
	fields := keyValueFields([]interface{}{"entry", 1, "next", "soon", "dangling"})

	assert.Equal(t, map[string]any{"entry": 1, "next": "soon"}, fields)
}
