package access

import (
	"fmt"
	"strings"

	"laundry/internal/pkg/errs"
)

// Role is the permission class of an authenticated caller.
type Role int

const (
	// RoleUnknown is the zero value and never authorizes anything.
	RoleUnknown Role = iota

	// Customer places orders and may cancel them before pickup is arranged.
	Customer

	// BranchManager runs a single branch: assignments and the in-branch workflow.
	BranchManager

	// BranchStaff are washers and ironers working orders inside a branch.
	BranchStaff

	// LogisticsAgent represents a logistics partner moving orders between legs.
	LogisticsAgent

	// SupportAgent handles complaints and may cancel orders.
	SupportAgent

	// Admin may perform corrective overrides.
	Admin
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:    "unknown",
		Customer:       "customer",
		BranchManager:  "branch_manager",
		BranchStaff:    "branch_staff",
		LogisticsAgent: "logistics_agent",
		SupportAgent:   "support_agent",
		Admin:          "admin",
	}
}

// Roles lists every valid role in declaration order.
func Roles() []Role {
	return []Role{Customer, BranchManager, BranchStaff, LogisticsAgent, SupportAgent, Admin}
}

// ParseRole maps the claim value carried by identity tokens to a Role.
func ParseRole(s string) (Role, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, r := range Roles() {
		if getRoleStrings()[r] == s {
			return r, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

func (r Role) Validate() error {
	if r <= RoleUnknown || r > Admin {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// IsBranchScoped reports whether the role only sees orders of its own branch.
func (r Role) IsBranchScoped() bool {
	return r == BranchManager || r == BranchStaff
}
