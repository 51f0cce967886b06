package notification

import (
	"context"
	"errors"
	"time"

	"laundry/internal/core/ports"

	"github.com/hibiken/asynq"
)

const (
	maxRetry  = 5
	retention = 24 * time.Hour
)

var _ ports.Notifier = (*AsynqNotifier)(nil)

// Enqueuer is the part of *asynq.Client the notifier uses.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type AsynqNotifier struct {
	client Enqueuer
}

func NewAsynqNotifier(client Enqueuer) *AsynqNotifier {
	return &AsynqNotifier{client: client}
}

func (n *AsynqNotifier) NotifyStatusChanged(ctx context.Context, notification ports.StatusNotification) error {
	task, err := NewStatusNotificationTask(notification)
	if err != nil {
		return err
	}

	_, err = n.client.EnqueueContext(ctx, task,
		asynq.Queue(Queue),
		asynq.TaskID(taskID(notification)),
		asynq.MaxRetry(maxRetry),
		asynq.Retention(retention),
	)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		return nil
	}
	return err
}
