package commands

import (
	"errors"
	"strings"

	"laundry/internal/core/domain/model/access"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/logistics"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrPartnerCommandIsNotConstructed = errors.New(
	"partner commands must be created via their New*Command constructors",
)

func requireNotBranchScoped(scope access.Scope) error {
	if err := scope.Validate(); err != nil {
		return errs.NewForbiddenError("request scope is missing")
	}
	if scope.Role().IsBranchScoped() || scope.Role() == access.Customer {
		return errs.NewForbiddenError(scope.Role().String() + " may not manage logistics partners")
	}
	return nil
}

type CreatePartnerCommand struct {
	name     string
	coverage logistics.Coverage

	guard guard.ConstructorGuard
}

func NewCreatePartnerCommand(scope access.Scope, name string, coverage logistics.Coverage) (CreatePartnerCommand, error) {
	if err := requireNotBranchScoped(scope); err != nil {
		return CreatePartnerCommand{}, err
	}
	if strings.TrimSpace(name) == "" {
		return CreatePartnerCommand{}, errs.NewMissingParameterError("name")
	}
	return CreatePartnerCommand{name: name, coverage: coverage, guard: guard.NewConstructorGuard()}, nil
}

func (c CreatePartnerCommand) Validate() error {
	return c.guard.Validate(ErrPartnerCommandIsNotConstructed)
}

func (c CreatePartnerCommand) Name() string {
	return c.name
}

func (c CreatePartnerCommand) Coverage() logistics.Coverage {
	return c.coverage
}

type partnerTarget struct {
	partnerID kernel.UUID
	guard     guard.ConstructorGuard
}

func newPartnerTarget(scope access.Scope, partnerID kernel.UUID) (partnerTarget, error) {
	if err := requireNotBranchScoped(scope); err != nil {
		return partnerTarget{}, err
	}
	if partnerID.IsZero() {
		return partnerTarget{}, errs.NewMissingParameterError("partnerId")
	}
	return partnerTarget{partnerID: partnerID, guard: guard.NewConstructorGuard()}, nil
}

func (t partnerTarget) Validate() error {
	return t.guard.Validate(ErrPartnerCommandIsNotConstructed)
}

func (t partnerTarget) PartnerID() kernel.UUID {
	return t.partnerID
}

// UpdatePartnerCoverageCommand replaces the served pincode set as a whole.
type UpdatePartnerCoverageCommand struct {
	partnerTarget
	coverage logistics.Coverage
}

func NewUpdatePartnerCoverageCommand(
	scope access.Scope,
	partnerID kernel.UUID,
	coverage logistics.Coverage,
) (UpdatePartnerCoverageCommand, error) {
	target, err := newPartnerTarget(scope, partnerID)
	if err != nil {
		return UpdatePartnerCoverageCommand{}, err
	}
	return UpdatePartnerCoverageCommand{partnerTarget: target, coverage: coverage}, nil
}

func (c UpdatePartnerCoverageCommand) Coverage() logistics.Coverage {
	return c.coverage
}

type SetPartnerActiveCommand struct {
	partnerTarget
	active bool
}

func NewSetPartnerActiveCommand(scope access.Scope, partnerID kernel.UUID, active bool) (SetPartnerActiveCommand, error) {
	target, err := newPartnerTarget(scope, partnerID)
	if err != nil {
		return SetPartnerActiveCommand{}, err
	}
	return SetPartnerActiveCommand{partnerTarget: target, active: active}, nil
}

func (c SetPartnerActiveCommand) Active() bool {
	return c.active
}
