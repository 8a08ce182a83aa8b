package scheduler

import (
	"context"

	coreport "github.com/amirhossein-jamali/sip-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/sip-processor/internal/domain/port/usecase"
)

// CompletionJob runs the schedule-exhaustion sweep
type CompletionJob struct {
	completion usecase.CompletionUseCase
	logger     coreport.Logger
}

// NewCompletionJob creates the job
func NewCompletionJob(completion usecase.CompletionUseCase, logger coreport.Logger) *CompletionJob {
	return &CompletionJob{completion: completion, logger: logger}
}

// Name identifies the job in logs
func (j *CompletionJob) Name() string {
	return "sip_completion"
}

// Run performs one sweep
func (j *CompletionJob) Run(ctx context.Context) error {
	completed, err := j.completion.Run(ctx)
	if err != nil {
		return err
	}

	if completed > 0 {
		j.logger.Info("Exhausted SIPs completed", map[string]any{"completed": completed})
	}
	return nil
}
