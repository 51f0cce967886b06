package services

import (
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/pkg/errs"
)

// AvailabilityOracle decides whether a staff member can take an order of a
// given branch. It looks only at isActive, the branch and the workload limit.
// Eligibility and load are separate checks so the engine can report
// AlreadyAssigned between them.
type AvailabilityOracle struct{}

func NewAvailabilityOracle() AvailabilityOracle {
	return AvailabilityOracle{}
}

// CheckEligible returns StaffNotFound (inactive) for a disabled staff member and
// BranchMismatch when staff and order belong to different branches.
func (AvailabilityOracle) CheckEligible(s *staff.Staff, orderBranch kernel.UUID) error {
	if !s.IsActive() {
		return errs.NewStaffInactiveError(s.ID().String())
	}
	if !s.BranchID().IsEqual(orderBranch) {
		return errs.NewBranchMismatchError(s.BranchID().String(), orderBranch.String())
	}
	return nil
}

// CheckLoad returns StaffUnavailable when currentOrders already reached the limit.
func (AvailabilityOracle) CheckLoad(s *staff.Staff) error {
	if !s.HasCapacity() {
		return errs.NewStaffUnavailableError(s.Name(), s.Workload(), s.Availability().MaxConcurrentOrders())
	}
	return nil
}
