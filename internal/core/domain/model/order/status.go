package order

import (
	"fmt"
	"strings"

	"laundry/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// Main chain:
//
//	Placed -> AssignedToBranch -> AssignedToLogisticsPickup -> Picked -> InProcess
//	       -> Ready -> AssignedToLogisticsDelivery -> OutForDelivery -> Delivered
//
// Cancelled is reachable from every non-terminal status. Delivered and
// Cancelled are terminal; orders in them are kept for audit.
type Status int

const (
	// Unknown (0) catches uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status set when a customer places the order.
	Placed

	// AssignedToBranch means a branch accepted the order against its daily capacity.
	AssignedToBranch

	// AssignedToLogisticsPickup means a partner will collect the items from the customer.
	AssignedToLogisticsPickup

	// Picked means the items were collected.
	Picked

	// InProcess means branch staff are washing or ironing the items.
	InProcess

	// Ready means processing finished and the order awaits delivery.
	Ready

	// AssignedToLogisticsDelivery means a partner will bring the items back.
	AssignedToLogisticsDelivery

	// OutForDelivery means the items left the branch.
	OutForDelivery

	// Delivered is terminal.
	Delivered

	// Cancelled is terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                     "UNKNOWN",
		Placed:                      "PLACED",
		AssignedToBranch:            "ASSIGNED_TO_BRANCH",
		AssignedToLogisticsPickup:   "ASSIGNED_TO_LOGISTICS_PICKUP",
		Picked:                      "PICKED",
		InProcess:                   "IN_PROCESS",
		Ready:                       "READY",
		AssignedToLogisticsDelivery: "ASSIGNED_TO_LOGISTICS_DELIVERY",
		OutForDelivery:              "OUT_FOR_DELIVERY",
		Delivered:                   "DELIVERED",
		Cancelled:                   "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	valid := getStatusStrings()
	delete(valid, Unknown)
	return valid
}

// Statuses lists the ten valid statuses in lifecycle order.
func Statuses() []Status {
	return []Status{
		Placed, AssignedToBranch, AssignedToLogisticsPickup, Picked, InProcess,
		Ready, AssignedToLogisticsDelivery, OutForDelivery, Delivered, Cancelled,
	}
}

// ParseStatus maps the wire name (e.g. "IN_PROCESS") to a Status.
func ParseStatus(s string) (Status, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out-of-range values, e.g. read from storage.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further business transition is expected.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// RequiresBranch reports whether a record in this status must reference a
// branch. Placed must not; Cancelled may or may not, depending on when the
// order was cancelled.
func (s Status) RequiresBranch() (required bool, decided bool) {
	switch s {
	case Placed:
		return false, true
	case AssignedToBranch, AssignedToLogisticsPickup, Picked, InProcess, Ready,
		AssignedToLogisticsDelivery, OutForDelivery, Delivered:
		return true, true
	case Cancelled, Unknown:
		return false, false
	}
	return false, false
}

// AcceptsStaff reports whether staff may be attached: the order is held by its
// branch and not finished.
func (s Status) AcceptsStaff() bool {
	switch s {
	case AssignedToBranch, AssignedToLogisticsPickup, Picked, InProcess, Ready:
		return true
	case Unknown, Placed, AssignedToLogisticsDelivery, OutForDelivery, Delivered, Cancelled:
		return false
	}
	return false
}
