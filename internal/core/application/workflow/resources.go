package workflow

import (
	"context"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/access"
	"laundry/internal/core/domain/model/branch"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/logistics"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/core/ports"

	"go.uber.org/zap"
)

// Branch, staff and partner maintenance. These calls replace whole values and
// never touch orders, so they take no order lock and emit no events.

const (
	opCreateBranch            = "create_branch"
	opUpdateBranchCapacity    = "update_branch_capacity"
	opUpdateBranchSchedule    = "update_branch_schedule"
	opSetBranchActive         = "set_branch_active"
	opCreateStaff             = "create_staff"
	opUpdateStaffAvailability = "update_staff_availability"
	opSetStaffActive          = "set_staff_active"
	opCreatePartner           = "create_partner"
	opUpdatePartnerCoverage   = "update_partner_coverage"
	opSetPartnerActive        = "set_partner_active"
)

func (f *Facade) CreateBranch(
	ctx context.Context,
	scope access.Scope,
	name string,
	capacity branch.Capacity,
	schedule branch.Schedule,
) (*branch.Branch, error) {
	return observe(ctx, f, scope, ports.OpManageBranch, opCreateBranch,
		func() (*branch.Branch, error) {
			cmd, err := commands.NewCreateBranchCommand(scope, name, capacity, schedule)
			if err != nil {
				return nil, err
			}
			return f.handlers.Branches.HandleCreate(ctx, cmd)
		}, branchFields)
}

func (f *Facade) UpdateBranchCapacity(
	ctx context.Context,
	scope access.Scope,
	branchID kernel.UUID,
	capacity branch.Capacity,
) (*branch.Branch, error) {
	return observe(ctx, f, scope, ports.OpManageBranch, opUpdateBranchCapacity,
		func() (*branch.Branch, error) {
			cmd, err := commands.NewUpdateBranchCapacityCommand(scope, branchID, capacity)
			if err != nil {
				return nil, err
			}
			return f.handlers.Branches.HandleUpdateCapacity(ctx, cmd)
		}, branchFields)
}

func (f *Facade) UpdateBranchSchedule(
	ctx context.Context,
	scope access.Scope,
	branchID kernel.UUID,
	schedule branch.Schedule,
) (*branch.Branch, error) {
	return observe(ctx, f, scope, ports.OpManageBranch, opUpdateBranchSchedule,
		func() (*branch.Branch, error) {
			cmd, err := commands.NewUpdateBranchScheduleCommand(scope, branchID, schedule)
			if err != nil {
				return nil, err
			}
			return f.handlers.Branches.HandleUpdateSchedule(ctx, cmd)
		}, branchFields)
}

func (f *Facade) SetBranchActive(
	ctx context.Context,
	scope access.Scope,
	branchID kernel.UUID,
	active bool,
) (*branch.Branch, error) {
	return observe(ctx, f, scope, ports.OpManageBranch, opSetBranchActive,
		func() (*branch.Branch, error) {
			cmd, err := commands.NewSetBranchActiveCommand(scope, branchID, active)
			if err != nil {
				return nil, err
			}
			return f.handlers.Branches.HandleSetActive(ctx, cmd)
		}, branchFields)
}

func (f *Facade) CreateStaff(
	ctx context.Context,
	scope access.Scope,
	name string,
	branchID kernel.UUID,
	role staff.Role,
	availability staff.Availability,
) (*staff.Staff, error) {
	return observe(ctx, f, scope, ports.OpManageStaff, opCreateStaff,
		func() (*staff.Staff, error) {
			cmd, err := commands.NewCreateStaffCommand(scope, name, branchID, role, availability)
			if err != nil {
				return nil, err
			}
			return f.handlers.Staff.HandleCreate(ctx, cmd)
		}, staffFields)
}

func (f *Facade) UpdateStaffAvailability(
	ctx context.Context,
	scope access.Scope,
	staffID kernel.UUID,
	availability staff.Availability,
) (*staff.Staff, error) {
	return observe(ctx, f, scope, ports.OpManageStaff, opUpdateStaffAvailability,
		func() (*staff.Staff, error) {
			cmd, err := commands.NewUpdateStaffAvailabilityCommand(scope, staffID, availability)
			if err != nil {
				return nil, err
			}
			return f.handlers.Staff.HandleUpdateAvailability(ctx, cmd)
		}, staffFields)
}

func (f *Facade) SetStaffActive(
	ctx context.Context,
	scope access.Scope,
	staffID kernel.UUID,
	active bool,
) (*staff.Staff, error) {
	return observe(ctx, f, scope, ports.OpManageStaff, opSetStaffActive,
		func() (*staff.Staff, error) {
			cmd, err := commands.NewSetStaffActiveCommand(scope, staffID, active)
			if err != nil {
				return nil, err
			}
			return f.handlers.Staff.HandleSetActive(ctx, cmd)
		}, staffFields)
}

func (f *Facade) CreatePartner(
	ctx context.Context,
	scope access.Scope,
	name string,
	coverage logistics.Coverage,
) (*logistics.Partner, error) {
	return observe(ctx, f, scope, ports.OpManageLogistics, opCreatePartner,
		func() (*logistics.Partner, error) {
			cmd, err := commands.NewCreatePartnerCommand(scope, name, coverage)
			if err != nil {
				return nil, err
			}
			return f.handlers.Partners.HandleCreate(ctx, cmd)
		}, partnerFields)
}

func (f *Facade) UpdatePartnerCoverage(
	ctx context.Context,
	scope access.Scope,
	partnerID kernel.UUID,
	coverage logistics.Coverage,
) (*logistics.Partner, error) {
	return observe(ctx, f, scope, ports.OpManageLogistics, opUpdatePartnerCoverage,
		func() (*logistics.Partner, error) {
			cmd, err := commands.NewUpdatePartnerCoverageCommand(scope, partnerID, coverage)
			if err != nil {
				return nil, err
			}
			return f.handlers.Partners.HandleUpdateCoverage(ctx, cmd)
		}, partnerFields)
}

func (f *Facade) SetPartnerActive(
	ctx context.Context,
	scope access.Scope,
	partnerID kernel.UUID,
	active bool,
) (*logistics.Partner, error) {
	return observe(ctx, f, scope, ports.OpManageLogistics, opSetPartnerActive,
		func() (*logistics.Partner, error) {
			cmd, err := commands.NewSetPartnerActiveCommand(scope, partnerID, active)
			if err != nil {
				return nil, err
			}
			return f.handlers.Partners.HandleSetActive(ctx, cmd)
		}, partnerFields)
}

func branchFields(b *branch.Branch) []zap.Field {
	return []zap.Field{zap.String("branch_id", b.ID().String())}
}

func staffFields(s *staff.Staff) []zap.Field {
	return []zap.Field{zap.String("staff_id", s.ID().String())}
}

func partnerFields(p *logistics.Partner) []zap.Field {
	return []zap.Field{zap.String("partner_id", p.ID().String())}
}
