// Package notification hands customer notifications to the asynq queue. The
// worker in adapters/in/worker consumes them.
package notification

import (
	"encoding/json"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"

	"github.com/hibiken/asynq"
)

const (
	TaskStatusNotification = "order:status_notification"

	Queue = "notifications"
)

// StatusNotificationPayload is the task body. Status travels by name so a
// reordered enum never changes the meaning of queued tasks.
type StatusNotificationPayload struct {
	OrderID    string    `json:"order_id"`
	Number     string    `json:"number"`
	CustomerID string    `json:"customer_id"`
	Status     string    `json:"status"`
	At         time.Time `json:"at"`
}

func NewStatusNotificationTask(n ports.StatusNotification) (*asynq.Task, error) {
	body, err := json.Marshal(StatusNotificationPayload{
		OrderID:    n.OrderID.String(),
		Number:     n.Number,
		CustomerID: n.CustomerID.String(),
		Status:     n.Status.String(),
		At:         n.At.UTC(),
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskStatusNotification, body), nil
}

// ParseStatusNotification decodes and validates a task body.
func ParseStatusNotification(body []byte) (ports.StatusNotification, error) {
	var p StatusNotificationPayload
	if err := json.Unmarshal(body, &p); err != nil {
		return ports.StatusNotification{}, fmt.Errorf("decode %s payload: %w", TaskStatusNotification, err)
	}

	orderID, err := kernel.UUIDFromString(p.OrderID)
	if err != nil {
		return ports.StatusNotification{}, fmt.Errorf("order_id: %w", err)
	}
	customerID, err := kernel.UUIDFromString(p.CustomerID)
	if err != nil {
		return ports.StatusNotification{}, fmt.Errorf("customer_id: %w", err)
	}
	status, err := order.ParseStatus(p.Status)
	if err != nil {
		return ports.StatusNotification{}, err
	}

	return ports.StatusNotification{
		OrderID:    orderID,
		Number:     p.Number,
		CustomerID: customerID,
		Status:     status,
		At:         p.At,
	}, nil
}

// taskID makes re-enqueueing the same status change a no-op while the first
// task is still retained by the queue.
func taskID(n ports.StatusNotification) string {
	return n.OrderID.String() + ":" + n.Status.String()
}
