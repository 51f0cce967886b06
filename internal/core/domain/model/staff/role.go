package staff

import (
	"fmt"
	"strings"

	"laundry/internal/pkg/errs"
)

// Role is the kind of work a staff member performs.
type Role int

const (
	RoleUnknown Role = iota
	Washer
	Ironer
)

func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "washer":
		return Washer, nil
	case "ironer":
		return Ironer, nil
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not washer or ironer", s))
}

func (r Role) Validate() error {
	if r != Washer && r != Ironer {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid staff role", r))
	}
	return nil
}

func (r Role) String() string {
	switch r {
	case Washer:
		return "washer"
	case Ironer:
		return "ironer"
	case RoleUnknown:
		return "unknown"
	}
	return "unknown"
}
