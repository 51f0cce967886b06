package commands

import (
	"errors"
	"strings"

	"laundry/internal/core/domain/model/access"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrStaffCommandIsNotConstructed = errors.New(
	"staff commands must be created via their New*Command constructors",
)

// CreateStaffCommand registers a washer or ironer at a branch. Branch
// managers register staff for their own branch only.
type CreateStaffCommand struct {
	name         string
	branchID     kernel.UUID
	role         staff.Role
	availability staff.Availability

	guard guard.ConstructorGuard
}

func NewCreateStaffCommand(
	scope access.Scope,
	name string,
	branchID kernel.UUID,
	role staff.Role,
	availability staff.Availability,
) (CreateStaffCommand, error) {
	if err := scope.Validate(); err != nil {
		return CreateStaffCommand{}, errs.NewForbiddenError("request scope is missing")
	}
	resolved, err := scope.ResolveBranch(branchID)
	if err != nil {
		return CreateStaffCommand{}, err
	}

	if strings.TrimSpace(name) == "" {
		err = errors.Join(err, errs.NewMissingParameterError("name"))
	}
	if vErr := role.Validate(); vErr != nil {
		err = errors.Join(err, errs.NewInvalidParameterError("role", vErr))
	}
	if err != nil {
		return CreateStaffCommand{}, err
	}

	return CreateStaffCommand{
		name:         name,
		branchID:     resolved,
		role:         role,
		availability: availability,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateStaffCommand) Validate() error {
	return c.guard.Validate(ErrStaffCommandIsNotConstructed)
}

func (c CreateStaffCommand) Name() string {
	return c.name
}

func (c CreateStaffCommand) BranchID() kernel.UUID {
	return c.branchID
}

func (c CreateStaffCommand) Role() staff.Role {
	return c.role
}

func (c CreateStaffCommand) Availability() staff.Availability {
	return c.availability
}

type staffTarget struct {
	scope   access.Scope
	staffID kernel.UUID
	guard   guard.ConstructorGuard
}

func newStaffTarget(scope access.Scope, staffID kernel.UUID) (staffTarget, error) {
	if err := scope.Validate(); err != nil {
		return staffTarget{}, errs.NewForbiddenError("request scope is missing")
	}
	if staffID.IsZero() {
		return staffTarget{}, errs.NewStaffRequiredError()
	}
	return staffTarget{scope: scope, staffID: staffID, guard: guard.NewConstructorGuard()}, nil
}

func (t staffTarget) Validate() error {
	return t.guard.Validate(ErrStaffCommandIsNotConstructed)
}

func (t staffTarget) StaffID() kernel.UUID {
	return t.staffID
}

// UpdateStaffAvailabilityCommand replaces the concurrency limit. Lowering it
// below the current workload is allowed; the member takes no new orders until
// the workload drops.
type UpdateStaffAvailabilityCommand struct {
	staffTarget
	availability staff.Availability
}

func NewUpdateStaffAvailabilityCommand(
	scope access.Scope,
	staffID kernel.UUID,
	availability staff.Availability,
) (UpdateStaffAvailabilityCommand, error) {
	target, err := newStaffTarget(scope, staffID)
	if err != nil {
		return UpdateStaffAvailabilityCommand{}, err
	}
	return UpdateStaffAvailabilityCommand{staffTarget: target, availability: availability}, nil
}

func (c UpdateStaffAvailabilityCommand) Availability() staff.Availability {
	return c.availability
}

type SetStaffActiveCommand struct {
	staffTarget
	active bool
}

func NewSetStaffActiveCommand(scope access.Scope, staffID kernel.UUID, active bool) (SetStaffActiveCommand, error) {
	target, err := newStaffTarget(scope, staffID)
	if err != nil {
		return SetStaffActiveCommand{}, err
	}
	return SetStaffActiveCommand{staffTarget: target, active: active}, nil
}

func (c SetStaffActiveCommand) Active() bool {
	return c.active
}
