package logistics

import (
	"fmt"
	"strings"

	"laundry/internal/pkg/errs"
)

// Leg is one directional movement of an order.
type Leg int

const (
	LegUnknown Leg = iota
	// Pickup moves items from the customer to the branch.
	Pickup
	// Delivery moves items from the branch back to the customer.
	Delivery
)

// ParseLeg maps the request value ("pickup" | "delivery"). An empty value is a
// missing parameter, anything else unknown is invalid.
func ParseLeg(s string) (Leg, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pickup":
		return Pickup, nil
	case "delivery":
		return Delivery, nil
	case "":
		return LegUnknown, errs.NewValueIsRequiredError("type")
	}
	return LegUnknown, errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%q is not pickup or delivery", s))
}

func (l Leg) Validate() error {
	if l != Pickup && l != Delivery {
		return errs.NewValueIsInvalidErrorWithCause("leg", fmt.Errorf("%d is not a valid leg", l))
	}
	return nil
}

func (l Leg) String() string {
	switch l {
	case Pickup:
		return "pickup"
	case Delivery:
		return "delivery"
	case LegUnknown:
		return "unknown"
	}
	return "unknown"
}
