package ports

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
)

// StatusNotification asks the notification dispatcher to tell the customer
// about a status change.
type StatusNotification struct {
	OrderID    kernel.UUID
	Number     string
	CustomerID kernel.UUID
	Status     order.Status
	At         time.Time
}

// Notifier hands notifications to the dispatcher. Delivery itself happens
// elsewhere; a failed hand-off never affects the committed transition.
type Notifier interface {
	NotifyStatusChanged(ctx context.Context, n StatusNotification) error
}

// Notifies reports whether customers are told about entering s.
func Notifies(s order.Status) bool {
	switch s {
	case order.Ready, order.OutForDelivery, order.Delivered, order.Cancelled:
		return true
	case order.Unknown, order.Placed, order.AssignedToBranch, order.AssignedToLogisticsPickup,
		order.Picked, order.InProcess, order.AssignedToLogisticsDelivery:
		return false
	}
	return false
}
