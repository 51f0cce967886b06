package services

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/access"
	"laundry/internal/core/domain/model/branch"
	"laundry/internal/core/domain/model/logistics"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/pkg/errs"
)

// AssignmentEngine validates and applies the workflow operations on loaded
// aggregates. It consults the scope policy, the transition authority and the
// three oracles, and mutates the aggregates only after every check passed.
// Persisting the result atomically is the caller's job.
//
// Example usage:
//
//	engine := services.NewAssignmentEngine()
//	if err := engine.AssignBranch(scope, o, b, load, now); err != nil {
//	    return err // nothing was changed
//	}
//	// persist o in the same transaction that read load
type AssignmentEngine struct {
	authority    TransitionAuthority
	policy       ScopePolicy
	capacity     CapacityOracle
	coverage     CoverageOracle
	availability AvailabilityOracle
}

func NewAssignmentEngine() AssignmentEngine {
	return AssignmentEngine{
		authority:    NewTransitionAuthority(),
		policy:       NewScopePolicy(),
		capacity:     NewCapacityOracle(),
		coverage:     NewCoverageOracle(),
		availability: NewAvailabilityOracle(),
	}
}

func (e AssignmentEngine) Authority() TransitionAuthority {
	return e.authority
}

func (e AssignmentEngine) Capacity() CapacityOracle {
	return e.capacity
}

func (e AssignmentEngine) Policy() ScopePolicy {
	return e.policy
}

// AssignBranch moves a Placed order to branch b.
//
// Checks, in order:
//   - the scope covers the order and, for branch-scoped roles, the branch
//   - order status is exactly Placed (InvalidStatus)
//   - branch is active (BranchNotFound, inactive)
//   - the role may perform assignments (Forbidden)
//   - the capacity oracle admits the order on the current operating day (BranchFull)
func (e AssignmentEngine) AssignBranch(
	scope access.Scope,
	o *order.Order,
	b *branch.Branch,
	load branch.Load,
	now time.Time,
) error {
	if err := errors.Join(o.Validate(), b.Validate()); err != nil {
		return err
	}
	if err := e.policy.CanAccess(scope, o); err != nil {
		return err
	}
	if _, err := scope.ResolveBranch(b.ID()); err != nil {
		return err
	}
	if o.Status() != order.Placed {
		return errs.NewInvalidStatusError("branch assignment", o.Status().String(), order.Placed.String())
	}
	if !b.IsActive() {
		return errs.NewBranchInactiveError(b.ID().String())
	}
	if err := e.authority.AuthorizeAssignment(o.Status(), order.AssignedToBranch, scope.Role()); err != nil {
		return err
	}
	if err := e.capacity.Check(b, load, o, now); err != nil {
		return err
	}

	return o.AssignBranch(b.ID(), b.Name(), order.ActorFromScope(scope), now)
}

// AssignLogistics records partner p for leg and advances the status.
//
// Checks, in order:
//   - leg is present (MissingParameter)
//   - the scope covers the order
//   - status is AssignedToBranch for pickup, Ready for delivery (InvalidStatus)
//   - partner is active (LogisticsPartnerNotFound, inactive)
//   - the role may perform assignments (Forbidden)
//   - the coverage oracle serves the leg's pincode (AreaNotCovered)
func (e AssignmentEngine) AssignLogistics(
	scope access.Scope,
	o *order.Order,
	p *logistics.Partner,
	leg logistics.Leg,
	now time.Time,
) error {
	if leg.Validate() != nil {
		return errs.NewMissingParameterError("type")
	}
	if err := errors.Join(o.Validate(), p.Validate()); err != nil {
		return err
	}
	if err := e.policy.CanAccess(scope, o); err != nil {
		return err
	}

	required, target := order.RequiredStatusFor(leg), order.TargetStatusFor(leg)
	if o.Status() != required {
		return errs.NewInvalidStatusError(leg.String()+" logistics assignment", o.Status().String(), required.String())
	}
	if !p.IsActive() {
		return errs.NewPartnerInactiveError(p.ID().String())
	}
	if err := e.authority.AuthorizeAssignment(o.Status(), target, scope.Role()); err != nil {
		return err
	}
	if err := e.coverage.Check(p, o.AddressFor(leg).Pincode()); err != nil {
		return err
	}

	return o.AssignLogistics(leg, p.ID(), p.Name(), order.ActorFromScope(scope), now)
}

// AssignStaff attaches staff member s to the order and adds the order to the
// staff member's workload. Both aggregates change or neither does.
//
// Checks, in order:
//   - the scope covers the order and the role may assign staff (Forbidden)
//   - the order is held by its branch (InvalidStatus)
//   - staff is active and works for the order's branch (StaffNotFound
//     inactive, BranchMismatch)
//   - the staff member is not yet on the order (AlreadyAssigned)
//   - the staff member's workload is below the limit (StaffUnavailable)
func (e AssignmentEngine) AssignStaff(scope access.Scope, o *order.Order, s *staff.Staff, now time.Time) error {
	if err := errors.Join(o.Validate(), s.Validate()); err != nil {
		return err
	}
	if err := e.policy.CanAccess(scope, o); err != nil {
		return err
	}
	if !e.authority.CanAssignStaff(scope.Role()) {
		return errs.NewForbiddenError(scope.Role().String() + " may not assign staff")
	}
	if !o.Status().AcceptsStaff() || o.BranchID() == nil {
		return errs.NewInvalidStatusError("staff assignment", o.Status().String(),
			order.AssignedToBranch.String(), order.Ready.String())
	}
	if err := e.availability.CheckEligible(s, *o.BranchID()); err != nil {
		return err
	}
	if o.HasStaff(s.ID()) || s.Holds(o.ID()) {
		return errs.NewAlreadyAssignedError(s.ID().String(), o.ID().String())
	}
	if err := e.availability.CheckLoad(s); err != nil {
		return err
	}

	if err := s.TakeOrder(o.ID()); err != nil {
		return err
	}
	if err := o.AssignStaff(s.ID(), now); err != nil {
		_ = s.ReleaseOrder(o.ID())
		return err
	}
	return nil
}

// TransitionStatus applies a bare status change.
//
// Returns:
//   - override=true when the change bypassed the table (Admin)
//   - InvalidTransition when the table or the order's invariants refuse it
func (e AssignmentEngine) TransitionStatus(
	scope access.Scope,
	o *order.Order,
	target order.Status,
	note string,
	now time.Time,
) (bool, error) {
	if err := o.Validate(); err != nil {
		return false, err
	}
	if err := e.policy.CanAccess(scope, o); err != nil {
		return false, err
	}

	override, err := e.authority.AuthorizeManual(o.Status(), target, scope.Role())
	if err != nil {
		return false, err
	}
	if err = o.ChangeStatus(target, order.ActorFromScope(scope), now, note, override); err != nil {
		return false, err
	}
	return override, nil
}
