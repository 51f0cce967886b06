package services

import (
	"slices"

	"laundry/internal/core/domain/model/access"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
)

// Channel is the way an edge of the lifecycle may be taken.
type Channel int

const (
	// Manual edges are taken by a bare status transition request.
	Manual Channel = iota + 1
	// Assignment edges are only taken as part of a branch or logistics
	// assignment, which supplies the branch or partner reference the target
	// status needs.
	Assignment
)

func (c Channel) String() string {
	switch c {
	case Manual:
		return "manual"
	case Assignment:
		return "assignment"
	}
	return "unknown"
}

// Edge is one row of the transition authority table.
type Edge struct {
	From    order.Status
	To      order.Status
	Channel Channel
	Roles   []access.Role
}

var (
	assigners       = []access.Role{access.Admin, access.BranchManager}
	pickupCarriers  = []access.Role{access.BranchManager, access.LogisticsAgent}
	processors      = []access.Role{access.BranchManager, access.BranchStaff}
	cancellers      = []access.Role{access.BranchManager, access.SupportAgent}
	earlyCancellers = []access.Role{access.BranchManager, access.SupportAgent, access.Customer}
)

// TransitionAuthority is the pure decision table answering whether a role may
// move an order from one status to another. It has no side effects.
//
// Rules:
//   - main-chain edges are either assignment-only or manual, see next
//   - assignment-only edges can never be taken by a bare transition
//   - non-terminal -> Cancelled is manual for branch managers and support
//     agents; customers may cancel only from Placed or AssignedToBranch
//   - Admin may request any manual transition; it is reported as an override
//     and bypasses the table, never the record invariants of the order
type TransitionAuthority struct{}

func NewTransitionAuthority() TransitionAuthority {
	return TransitionAuthority{}
}

// next returns the forward edge leaving from. The switch is exhaustive over
// order.Status.
func (TransitionAuthority) next(from order.Status) (Edge, bool) {
	switch from {
	case order.Placed:
		return Edge{from, order.AssignedToBranch, Assignment, assigners}, true
	case order.AssignedToBranch:
		return Edge{from, order.AssignedToLogisticsPickup, Assignment, assigners}, true
	case order.AssignedToLogisticsPickup:
		return Edge{from, order.Picked, Manual, pickupCarriers}, true
	case order.Picked:
		return Edge{from, order.InProcess, Manual, processors}, true
	case order.InProcess:
		return Edge{from, order.Ready, Manual, processors}, true
	case order.Ready:
		return Edge{from, order.AssignedToLogisticsDelivery, Assignment, assigners}, true
	case order.AssignedToLogisticsDelivery:
		return Edge{from, order.OutForDelivery, Manual, pickupCarriers}, true
	case order.OutForDelivery:
		return Edge{from, order.Delivered, Manual, pickupCarriers}, true
	case order.Delivered, order.Cancelled, order.Unknown:
		return Edge{}, false
	}
	return Edge{}, false
}

func (TransitionAuthority) cancellation(from order.Status) (Edge, bool) {
	switch from {
	case order.Placed, order.AssignedToBranch:
		return Edge{from, order.Cancelled, Manual, earlyCancellers}, true
	case order.AssignedToLogisticsPickup, order.Picked, order.InProcess, order.Ready,
		order.AssignedToLogisticsDelivery, order.OutForDelivery:
		return Edge{from, order.Cancelled, Manual, cancellers}, true
	case order.Delivered, order.Cancelled, order.Unknown:
		return Edge{}, false
	}
	return Edge{}, false
}

func (a TransitionAuthority) edge(from, to order.Status) (Edge, bool) {
	if to == order.Cancelled {
		return a.cancellation(from)
	}
	e, ok := a.next(from)
	if !ok || e.To != to {
		return Edge{}, false
	}
	return e, true
}

// AuthorizeManual decides a bare status transition request.
//
// Returns:
//   - override=true when the caller is Admin; the table is bypassed
//   - InvalidTransition when the edge is absent, is assignment-only, or the
//     role is not listed for it
func (a TransitionAuthority) AuthorizeManual(from, to order.Status, role access.Role) (bool, error) {
	if err := to.Validate(); err != nil {
		return false, errs.NewInvalidParameterError("status", err)
	}
	if role == access.Admin {
		return true, nil
	}

	e, ok := a.edge(from, to)
	switch {
	case !ok:
		return false, errs.NewInvalidTransitionError(from.String(), to.String(), role.String(), "no such transition")
	case e.Channel == Assignment:
		return false, errs.NewInvalidTransitionError(from.String(), to.String(), role.String(),
			"reachable only through the corresponding assignment")
	case !slices.Contains(e.Roles, role):
		return false, errs.NewInvalidTransitionError(from.String(), to.String(), role.String(), "role lacks authority")
	}
	return false, nil
}

// AuthorizeAssignment decides the status change performed by an assignment.
// The caller has already checked the status precondition.
func (a TransitionAuthority) AuthorizeAssignment(from, to order.Status, role access.Role) error {
	e, ok := a.edge(from, to)
	if !ok || e.Channel != Assignment {
		return errs.NewInvalidTransitionError(from.String(), to.String(), role.String(), "not an assignment transition")
	}
	if !slices.Contains(e.Roles, role) {
		return errs.NewForbiddenError(role.String() + " may not perform assignments")
	}
	return nil
}

// CanAssignStaff reports whether role may attach staff to an order.
func (TransitionAuthority) CanAssignStaff(role access.Role) bool {
	return slices.Contains(assigners, role)
}
