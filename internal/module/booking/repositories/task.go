package repositories

import (
	"context"
	"rental-booking-service/internal/pkg/errors"
	"time"

	"github.com/hibiken/asynq"
	"go.elastic.co/apm"
)

const taskQueue = "default"

// SetTaskScheduler implements Repositories. taskID deduplicates: scheduling
// the same id twice keeps the first task.
func (r *repositories) SetTaskScheduler(ctx context.Context, taskType, taskID string, processAt time.Time, payload []byte) (string, error) {
	span, ctx := apm.StartSpan(ctx, "SetTaskScheduler", "messaging.asynq")
	defer span.End()

	task := asynq.NewTask(taskType, payload)
	info, err := r.taskClient.EnqueueContext(ctx, task,
		asynq.ProcessAt(processAt),
		asynq.TaskID(taskID),
		asynq.Queue(taskQueue),
		asynq.MaxRetry(5),
	)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		return taskID, nil
	}
	if err != nil {
		r.log.Error(ctx, "error enqueue task", taskType, err)
		return "", errors.InternalServerError("error set task scheduler")
	}
	return info.ID, nil
}

// DeleteTaskScheduler implements Repositories.
func (r *repositories) DeleteTaskScheduler(ctx context.Context, taskID string) error {
	span, ctx := apm.StartSpan(ctx, "DeleteTaskScheduler", "messaging.asynq")
	defer span.End()

	err := r.inspector.DeleteTask(taskQueue, taskID)
	if err == nil || errors.Is(err, asynq.ErrTaskNotFound) || errors.Is(err, asynq.ErrQueueNotFound) {
		return nil
	}
	r.log.Error(ctx, "error delete task", taskID, err)
	return errors.InternalServerError("error delete task scheduler")
}
