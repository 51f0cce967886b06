package postgres

import (
	"laundry/internal/core/application/usecases/commands"
)

// Command handlers ask for the narrowest unit of work they need. These func
// types let one GormUnitOfWorkFactory serve all of them.

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncPlacementUoWFactory func() commands.PlacementUoW

func (f FuncPlacementUoWFactory) Create() commands.PlacementUoW {
	return f()
}

type FuncBranchUoWFactory func() commands.BranchUoW

func (f FuncBranchUoWFactory) Create() commands.BranchUoW {
	return f()
}

type FuncStaffUoWFactory func() commands.StaffUoW

func (f FuncStaffUoWFactory) Create() commands.StaffUoW {
	return f()
}

type FuncPartnerUoWFactory func() commands.PartnerUoW

func (f FuncPartnerUoWFactory) Create() commands.PartnerUoW {
	return f()
}

func (f *GormUnitOfWorkFactory) Workflow() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW { return f.Create() })
}

func (f *GormUnitOfWorkFactory) Placement() commands.PlacementUoWFactory {
	return FuncPlacementUoWFactory(func() commands.PlacementUoW { return f.Create() })
}

func (f *GormUnitOfWorkFactory) Branches() commands.BranchUoWFactory {
	return FuncBranchUoWFactory(func() commands.BranchUoW { return f.Create() })
}

func (f *GormUnitOfWorkFactory) Staff() commands.StaffUoWFactory {
	return FuncStaffUoWFactory(func() commands.StaffUoW { return f.Create() })
}

func (f *GormUnitOfWorkFactory) Partners() commands.PartnerUoWFactory {
	return FuncPartnerUoWFactory(func() commands.PartnerUoW { return f.Create() })
}
