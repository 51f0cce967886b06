package commands

import (
	"errors"

	"laundry/internal/pkg/guard"
)

var ErrReleaseStaffWorkloadCommandIsNotConstructed = errors.New(
	"ReleaseStaffWorkloadCommand must be created via NewReleaseStaffWorkloadCommand constructor",
)

// ReleaseStaffWorkloadCommand drops delivered and cancelled orders from staff
// workloads. Status transitions never touch staff, so this runs on a schedule.
type ReleaseStaffWorkloadCommand struct {
	guard guard.ConstructorGuard
}

func NewReleaseStaffWorkloadCommand() ReleaseStaffWorkloadCommand {
	return ReleaseStaffWorkloadCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c ReleaseStaffWorkloadCommand) Validate() error {
	return c.guard.Validate(ErrReleaseStaffWorkloadCommandIsNotConstructed)
}
