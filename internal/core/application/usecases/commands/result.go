package commands

import (
	"time"

	"laundry/internal/core/domain/model/order"
)

// Result is what a committed workflow operation hands back: the order as
// persisted, the status it left and when the change was decided.
type Result struct {
	Order    *order.Order
	From     order.Status
	Override bool
	At       time.Time
}
