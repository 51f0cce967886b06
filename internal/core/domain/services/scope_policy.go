package services

import (
	"laundry/internal/core/domain/model/access"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
)

// ScopePolicy decides whether a caller's scope covers a specific order.
type ScopePolicy struct{}

func NewScopePolicy() ScopePolicy {
	return ScopePolicy{}
}

// CanAccess returns Forbidden unless the scope covers o:
//   - Admin and SupportAgent cover every order
//   - BranchManager covers orders of its branch and unassigned Placed orders
//   - BranchStaff covers orders of its branch
//   - LogisticsAgent covers orders whose current leg its partner carries;
//     a pickup partner loses the order once another partner takes delivery
//   - Customer covers its own orders
func (ScopePolicy) CanAccess(scope access.Scope, o *order.Order) error {
	if err := scope.Validate(); err != nil {
		return errs.NewForbiddenError("request scope is missing")
	}

	switch scope.Role() {
	case access.Admin, access.SupportAgent:
		return nil
	case access.BranchManager:
		if o.BranchID() == nil && o.Status() == order.Placed {
			return nil
		}
		if o.BranchID() != nil && o.BranchID().IsEqual(scope.BranchID()) {
			return nil
		}
	case access.BranchStaff:
		if o.BranchID() != nil && o.BranchID().IsEqual(scope.BranchID()) {
			return nil
		}
	case access.LogisticsAgent:
		if p := o.LogisticsPartner(); p != nil && p.IsEqual(scope.PartnerID()) {
			return nil
		}
	case access.Customer:
		if o.CustomerID().IsEqual(scope.ActorID()) {
			return nil
		}
	case access.RoleUnknown:
	}
	return errs.NewForbiddenError("order " + o.Number().String() + " is outside the caller's scope")
}
