package commands

import (
	"errors"
	"strings"

	"laundry/internal/core/domain/model/access"
	"laundry/internal/core/domain/model/branch"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrBranchCommandIsNotConstructed = errors.New(
	"branch commands must be created via their New*Command constructors",
)

// CreateBranchCommand opens a new branch. Branch-scoped callers may not
// create branches.
type CreateBranchCommand struct {
	scope    access.Scope
	name     string
	capacity branch.Capacity
	schedule branch.Schedule

	guard guard.ConstructorGuard
}

func NewCreateBranchCommand(
	scope access.Scope,
	name string,
	capacity branch.Capacity,
	schedule branch.Schedule,
) (CreateBranchCommand, error) {
	if err := scope.Validate(); err != nil {
		return CreateBranchCommand{}, errs.NewForbiddenError("request scope is missing")
	}
	if scope.Role().IsBranchScoped() {
		return CreateBranchCommand{}, errs.NewForbiddenError("branch-scoped callers may not open branches")
	}
	if strings.TrimSpace(name) == "" {
		return CreateBranchCommand{}, errs.NewMissingParameterError("name")
	}
	if schedule.Timezone() == "" || len(schedule.OperatingDays()) == 0 {
		return CreateBranchCommand{}, errs.NewMissingParameterError("schedule")
	}

	return CreateBranchCommand{
		scope:    scope,
		name:     name,
		capacity: capacity,
		schedule: schedule,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateBranchCommand) Validate() error {
	return c.guard.Validate(ErrBranchCommandIsNotConstructed)
}

func (c CreateBranchCommand) Name() string {
	return c.name
}

func (c CreateBranchCommand) Capacity() branch.Capacity {
	return c.capacity
}

func (c CreateBranchCommand) Schedule() branch.Schedule {
	return c.schedule
}

// branchTarget resolves the branch a change applies to: branch-scoped callers
// only ever reach their own branch.
type branchTarget struct {
	branchID kernel.UUID
	guard    guard.ConstructorGuard
}

func newBranchTarget(scope access.Scope, branchID kernel.UUID) (branchTarget, error) {
	if err := scope.Validate(); err != nil {
		return branchTarget{}, errs.NewForbiddenError("request scope is missing")
	}
	resolved, err := scope.ResolveBranch(branchID)
	if err != nil {
		return branchTarget{}, err
	}
	return branchTarget{branchID: resolved, guard: guard.NewConstructorGuard()}, nil
}

func (t branchTarget) Validate() error {
	return t.guard.Validate(ErrBranchCommandIsNotConstructed)
}

func (t branchTarget) BranchID() kernel.UUID {
	return t.branchID
}

// UpdateBranchCapacityCommand replaces the daily capacity as a whole value.
type UpdateBranchCapacityCommand struct {
	branchTarget
	capacity branch.Capacity
}

func NewUpdateBranchCapacityCommand(
	scope access.Scope,
	branchID kernel.UUID,
	capacity branch.Capacity,
) (UpdateBranchCapacityCommand, error) {
	target, err := newBranchTarget(scope, branchID)
	if err != nil {
		return UpdateBranchCapacityCommand{}, err
	}
	return UpdateBranchCapacityCommand{branchTarget: target, capacity: capacity}, nil
}

func (c UpdateBranchCapacityCommand) Capacity() branch.Capacity {
	return c.capacity
}

// UpdateBranchScheduleCommand replaces timezone, operating days and holidays.
type UpdateBranchScheduleCommand struct {
	branchTarget
	schedule branch.Schedule
}

func NewUpdateBranchScheduleCommand(
	scope access.Scope,
	branchID kernel.UUID,
	schedule branch.Schedule,
) (UpdateBranchScheduleCommand, error) {
	target, err := newBranchTarget(scope, branchID)
	if err != nil {
		return UpdateBranchScheduleCommand{}, err
	}
	if len(schedule.OperatingDays()) == 0 {
		return UpdateBranchScheduleCommand{}, errs.NewMissingParameterError("operatingDays")
	}
	return UpdateBranchScheduleCommand{branchTarget: target, schedule: schedule}, nil
}

func (c UpdateBranchScheduleCommand) Schedule() branch.Schedule {
	return c.schedule
}

// SetBranchActiveCommand activates or deactivates a branch. Inactive branches
// refuse new assignments; orders already held keep their branch.
type SetBranchActiveCommand struct {
	branchTarget
	active bool
}

func NewSetBranchActiveCommand(scope access.Scope, branchID kernel.UUID, active bool) (SetBranchActiveCommand, error) {
	if err := scope.Validate(); err != nil {
		return SetBranchActiveCommand{}, errs.NewForbiddenError("request scope is missing")
	}
	if scope.Role().IsBranchScoped() {
		return SetBranchActiveCommand{}, errs.NewForbiddenError("branch-scoped callers may not change branch activation")
	}
	target, err := newBranchTarget(scope, branchID)
	if err != nil {
		return SetBranchActiveCommand{}, err
	}
	return SetBranchActiveCommand{branchTarget: target, active: active}, nil
}

func (c SetBranchActiveCommand) Active() bool {
	return c.active
}
