// Package worker consumes queued customer notifications.
package worker

import (
	"context"
	"fmt"

	"laundry/internal/adapters/out/notification"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/logger"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Dispatcher delivers one notification over a customer channel (SMS, push,
// e-mail). Channel selection lives outside the workflow engine.
type Dispatcher interface {
	Dispatch(ctx context.Context, n ports.StatusNotification) error
}

type NotificationConsumer struct {
	dispatcher Dispatcher
	logger     *zap.Logger
}

func NewNotificationConsumer(dispatcher Dispatcher, l *zap.Logger) *NotificationConsumer {
	return &NotificationConsumer{
		dispatcher: dispatcher,
		logger:     logger.Component(l, "notification_consumer"),
	}
}

func (c *NotificationConsumer) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(notification.TaskStatusNotification, c.handleStatusNotification)
}

func (c *NotificationConsumer) handleStatusNotification(ctx context.Context, task *asynq.Task) error {
	n, err := notification.ParseStatusNotification(task.Payload())
	if err != nil {
		c.logger.Warn("dropping malformed notification task", zap.Error(err))
		// A malformed payload will not parse on retry either.
		return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
	}

	if err = c.dispatcher.Dispatch(ctx, n); err != nil {
		c.logger.Warn("notification dispatch failed",
			zap.String("order_id", n.OrderID.String()),
			zap.String("status", n.Status.String()),
			zap.Error(err))
		return err
	}

	c.logger.Info("customer notified",
		zap.String("order_id", n.OrderID.String()),
		zap.String("number", n.Number),
		zap.String("status", n.Status.String()))
	return nil
}

// LogDispatcher records notifications in the log instead of sending them. It
// is the default until a delivery channel is configured.
type LogDispatcher struct {
	logger *zap.Logger
}

func NewLogDispatcher(l *zap.Logger) LogDispatcher {
	return LogDispatcher{logger: logger.Component(l, "log_dispatcher")}
}

func (d LogDispatcher) Dispatch(_ context.Context, n ports.StatusNotification) error {
	d.logger.Info("status notification",
		zap.String("customer_id", n.CustomerID.String()),
		zap.String("number", n.Number),
		zap.String("status", n.Status.String()),
		zap.Time("at", n.At))
	return nil
}
