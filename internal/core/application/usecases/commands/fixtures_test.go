package commands_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/access"
	"laundry/internal/core/domain/model/branch"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/logistics"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/staff"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Monday 2026-10-19, 10:00 in Asia/Kolkata.
var (
	now   = time.Date(2026, 10, 19, 4, 30, 0, 0, time.UTC)
	clock = kernel.FixedClock{At: now}
)

func scopeFor(t *testing.T, role access.Role, branchID, partnerID kernel.UUID) access.Scope {
	t.Helper()
	s, err := access.NewScope(role, kernel.NewUUID(), branchID, partnerID)
	require.NoError(t, err)
	return s
}

func adminScope(t *testing.T) access.Scope {
	return scopeFor(t, access.Admin, kernel.UUID{}, kernel.UUID{})
}

func managerScope(t *testing.T, branchID kernel.UUID) access.Scope {
	return scopeFor(t, access.BranchManager, branchID, kernel.UUID{})
}

func newBranch(t *testing.T, maxOrders int) *branch.Branch {
	t.Helper()
	c, err := branch.NewCapacity(maxOrders, decimal.NewFromInt(1000))
	require.NoError(t, err)
	s, err := branch.EveryDay("Asia/Kolkata")
	require.NoError(t, err)
	b, err := branch.NewBranch(kernel.NewUUID(), "Indiranagar", c, s)
	require.NoError(t, err)
	return b
}

func newPartner(t *testing.T, pincodes ...string) *logistics.Partner {
	t.Helper()
	set := make([]kernel.Pincode, 0, len(pincodes))
	for _, p := range pincodes {
		set = append(set, kernel.MustPincode(p))
	}
	p, err := logistics.NewPartner(kernel.NewUUID(), "FastMove", logistics.NewCoverage(set...))
	require.NoError(t, err)
	return p
}

func newStaff(t *testing.T, branchID kernel.UUID, limit int) *staff.Staff {
	t.Helper()
	a, err := staff.NewAvailability(limit)
	require.NoError(t, err)
	s, err := staff.NewStaff(kernel.NewUUID(), "Ravi", branchID, staff.Washer, a)
	require.NoError(t, err)
	return s
}

func placement(t *testing.T, pickupPincode string) order.Placement {
	t.Helper()
	pickup, err := order.NewAddress("12 MG Road", "Bengaluru", kernel.MustPincode(pickupPincode))
	require.NoError(t, err)
	delivery, err := order.NewAddress("4 Church Street", "Bengaluru", kernel.MustPincode("560002"))
	require.NoError(t, err)
	weight, err := kernel.WeightFromKg(5)
	require.NoError(t, err)
	return order.Placement{
		CustomerID:      kernel.NewUUID(),
		PickupAddress:   pickup,
		DeliveryAddress: delivery,
		Weight:          weight,
	}
}

func newOrder(t *testing.T, pickupPincode string) *order.Order {
	t.Helper()
	number, err := order.NewNumber(now, 1)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), number, placement(t, pickupPincode),
		order.Actor{ID: kernel.NewUUID(), Role: access.Customer}, now)
	require.NoError(t, err)
	return o
}

func orderInBranch(t *testing.T, b *branch.Branch) *order.Order {
	t.Helper()
	o := newOrder(t, "560001")
	require.NoError(t, o.AssignBranch(b.ID(), b.Name(), order.Actor{ID: kernel.NewUUID(), Role: access.Admin}, now))
	return o
}

func emptyLoad() branch.Load {
	return branch.Load{Weight: kernel.ZeroWeight()}
}
