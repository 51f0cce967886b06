package services_test

import (
	"testing"

	"laundry/internal/core/domain/model/access"
	"laundry/internal/core/domain/model/branch"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/logistics"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertHistoryTracksStatus(t *testing.T, o *order.Order) {
	t.Helper()
	history := o.History()
	require.NotEmpty(t, history)
	assert.Equal(t, o.Status(), history[len(history)-1].Status())
}

func TestAssignmentEngine_AssignBranch(t *testing.T) {
	engine := services.NewAssignmentEngine()

	t.Run("scenario A: placed order, empty active branch", func(t *testing.T) {
		b := newBranch(t, 100)
		o := newOrder(t, "560001", "560002")

		err := engine.AssignBranch(managerScope(t, b.ID()), o, b, emptyLoad(), now)

		require.NoError(t, err)
		assert.Equal(t, order.AssignedToBranch, o.Status())
		assert.True(t, o.BranchID().IsEqual(b.ID()))
		assertHistoryTracksStatus(t, o)
	})

	t.Run("capacity boundary", func(t *testing.T) {
		b := newBranch(t, 3)

		require.NoError(t, engine.AssignBranch(adminScope(t), newOrder(t, "560001", "560002"), b,
			branch.Load{Orders: 2, Weight: kernel.ZeroWeight()}, now))

		o := newOrder(t, "560001", "560002")
		err := engine.AssignBranch(adminScope(t), o, b, branch.Load{Orders: 3, Weight: kernel.ZeroWeight()}, now)

		require.ErrorIs(t, err, errs.ErrCapacityExceeded)
		assert.Equal(t, order.Placed, o.Status())
		assert.Nil(t, o.BranchID())
	})

	t.Run("not placed", func(t *testing.T) {
		b := newBranch(t, 100)
		o := orderInBranch(t, b)

		err := engine.AssignBranch(adminScope(t), o, b, emptyLoad(), now)
		require.ErrorIs(t, err, errs.ErrInvalidStatus)
	})

	t.Run("inactive branch", func(t *testing.T) {
		b := newBranch(t, 100)
		b.Deactivate()

		err := engine.AssignBranch(adminScope(t), newOrder(t, "560001", "560002"), b, emptyLoad(), now)

		require.ErrorIs(t, err, errs.ErrInactiveResource)
		assert.Equal(t, errs.CodeBranchNotFound, errs.CodeOf(err))
	})

	t.Run("manager of another branch", func(t *testing.T) {
		b := newBranch(t, 100)

		err := engine.AssignBranch(managerScope(t, kernel.NewUUID()), newOrder(t, "560001", "560002"), b, emptyLoad(), now)
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("support agent may not assign", func(t *testing.T) {
		b := newBranch(t, 100)
		support := scopeFor(t, access.SupportAgent, kernel.UUID{}, kernel.UUID{})

		err := engine.AssignBranch(support, newOrder(t, "560001", "560002"), b, emptyLoad(), now)
		require.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestAssignmentEngine_AssignLogistics(t *testing.T) {
	engine := services.NewAssignmentEngine()

	t.Run("scenario B: pickup pincode not covered", func(t *testing.T) {
		b := newBranch(t, 100)
		o := orderInBranch(t, b)
		p := newPartner(t, "560001")
		o2 := newOrder(t, "560002", "560001")
		require.NoError(t, o2.AssignBranch(b.ID(), b.Name(), order.Actor{ID: kernel.NewUUID(), Role: access.Admin}, now))

		require.NoError(t, engine.AssignLogistics(managerScope(t, b.ID()), o, p, logistics.Pickup, now))

		err := engine.AssignLogistics(managerScope(t, b.ID()), o2, p, logistics.Pickup, now)
		require.ErrorIs(t, err, errs.ErrAreaNotCovered)
		assert.Equal(t, order.AssignedToBranch, o2.Status())
		assert.Nil(t, o2.PickupPartnerID())
	})

	t.Run("pickup requires exactly assigned to branch", func(t *testing.T) {
		p := newPartner(t, "560001", "560002")
		b := newBranch(t, 100)

		for _, o := range []*order.Order{newOrder(t, "560001", "560002"), orderReady(t, b, p)} {
			err := engine.AssignLogistics(adminScope(t), o, p, logistics.Pickup, now)
			require.ErrorIs(t, err, errs.ErrInvalidStatus, o.Status().String())
		}
	})

	t.Run("delivery requires exactly ready", func(t *testing.T) {
		p := newPartner(t, "560001", "560002")
		b := newBranch(t, 100)

		err := engine.AssignLogistics(adminScope(t), orderInBranch(t, b), p, logistics.Delivery, now)
		require.ErrorIs(t, err, errs.ErrInvalidStatus)

		o := orderReady(t, b, p)
		require.NoError(t, engine.AssignLogistics(adminScope(t), o, p, logistics.Delivery, now))
		assert.Equal(t, order.AssignedToLogisticsDelivery, o.Status())
		assert.True(t, o.DeliveryPartnerID().IsEqual(p.ID()))
		assertHistoryTracksStatus(t, o)
	})

	t.Run("missing leg", func(t *testing.T) {
		b := newBranch(t, 100)
		err := engine.AssignLogistics(adminScope(t), orderInBranch(t, b), newPartner(t, "560001"), logistics.LegUnknown, now)
		require.ErrorIs(t, err, errs.ErrMissingParameter)
	})

	t.Run("inactive partner", func(t *testing.T) {
		b := newBranch(t, 100)
		p := newPartner(t, "560001")
		p.Deactivate()

		err := engine.AssignLogistics(adminScope(t), orderInBranch(t, b), p, logistics.Pickup, now)
		require.ErrorIs(t, err, errs.ErrInactiveResource)
		assert.Equal(t, errs.CodeLogisticsPartnerNotFound, errs.CodeOf(err))
	})
}

func TestAssignmentEngine_AssignStaff(t *testing.T) {
	engine := services.NewAssignmentEngine()

	t.Run("scenario C: limit reached, then freed", func(t *testing.T) {
		b := newBranch(t, 100)
		s := newStaff(t, b.ID(), 3)
		for range 3 {
			require.NoError(t, s.TakeOrder(kernel.NewUUID()))
		}
		o := orderInBranch(t, b)

		err := engine.AssignStaff(managerScope(t, b.ID()), o, s, now)
		require.ErrorIs(t, err, errs.ErrUnavailable)
		assert.Empty(t, o.AssignedStaff())

		require.NoError(t, s.ReleaseOrder(s.CurrentOrders()[0]))
		require.NoError(t, engine.AssignStaff(managerScope(t, b.ID()), o, s, now))
		assert.Equal(t, 3, s.Workload())
		assert.True(t, s.Holds(o.ID()))
		assert.Len(t, o.AssignedStaff(), 1)
	})

	t.Run("same staff twice", func(t *testing.T) {
		b := newBranch(t, 100)
		s := newStaff(t, b.ID(), 1)
		o := orderInBranch(t, b)
		require.NoError(t, engine.AssignStaff(adminScope(t), o, s, now))

		err := engine.AssignStaff(adminScope(t), o, s, now)

		require.ErrorIs(t, err, errs.ErrAlreadyAssigned)
		assert.Len(t, o.AssignedStaff(), 1)
		assert.Equal(t, 1, s.Workload())
	})

	t.Run("branch mismatch", func(t *testing.T) {
		b := newBranch(t, 100)
		s := newStaff(t, kernel.NewUUID(), 3)

		err := engine.AssignStaff(adminScope(t), orderInBranch(t, b), s, now)
		require.ErrorIs(t, err, errs.ErrBranchMismatch)
		assert.Equal(t, 0, s.Workload())
	})

	t.Run("placed order", func(t *testing.T) {
		s := newStaff(t, kernel.NewUUID(), 3)
		err := engine.AssignStaff(adminScope(t), newOrder(t, "560001", "560002"), s, now)
		require.ErrorIs(t, err, errs.ErrInvalidStatus)
	})

	t.Run("branch staff may not assign", func(t *testing.T) {
		b := newBranch(t, 100)
		worker := scopeFor(t, access.BranchStaff, b.ID(), kernel.UUID{})

		err := engine.AssignStaff(worker, orderInBranch(t, b), newStaff(t, b.ID(), 3), now)
		require.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestAssignmentEngine_TransitionStatus(t *testing.T) {
	engine := services.NewAssignmentEngine()

	t.Run("scenario D: bare transition to delivery assignment is rejected", func(t *testing.T) {
		b := newBranch(t, 100)
		o := orderReady(t, b, newPartner(t, "560001"))
		before := len(o.History())

		_, err := engine.TransitionStatus(managerScope(t, b.ID()), o, order.AssignedToLogisticsDelivery, "", now)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Ready, o.Status())
		assert.Len(t, o.History(), before)
		assert.Nil(t, o.DeliveryPartnerID())
	})

	t.Run("pickup partner loses the order to the delivery partner", func(t *testing.T) {
		b := newBranch(t, 100)
		pickup, delivery := newPartner(t, "560001"), newPartner(t, "560002")
		o := orderReady(t, b, pickup)
		require.NoError(t, engine.AssignLogistics(managerScope(t, b.ID()), o, delivery, logistics.Delivery, now))
		before := len(o.History())

		_, err := engine.TransitionStatus(scopeFor(t, access.LogisticsAgent, kernel.UUID{}, pickup.ID()), o, order.OutForDelivery, "", now)

		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Equal(t, order.AssignedToLogisticsDelivery, o.Status())
		assert.Len(t, o.History(), before)

		_, err = engine.TransitionStatus(scopeFor(t, access.LogisticsAgent, kernel.UUID{}, delivery.ID()), o, order.OutForDelivery, "", now)
		require.NoError(t, err)
		assert.Equal(t, order.OutForDelivery, o.Status())
	})

	t.Run("staff moves order through processing", func(t *testing.T) {
		b := newBranch(t, 100)
		p := newPartner(t, "560001")
		o := orderInBranch(t, b)
		require.NoError(t, engine.AssignLogistics(adminScope(t), o, p, logistics.Pickup, now))
		agent := scopeFor(t, access.LogisticsAgent, kernel.UUID{}, p.ID())
		worker := scopeFor(t, access.BranchStaff, b.ID(), kernel.UUID{})

		_, err := engine.TransitionStatus(agent, o, order.Picked, "collected", now)
		require.NoError(t, err)
		override, err := engine.TransitionStatus(worker, o, order.InProcess, "", now)
		require.NoError(t, err)

		assert.False(t, override)
		assert.Equal(t, order.InProcess, o.Status())
		assertHistoryTracksStatus(t, o)
	})

	t.Run("accepted transitions are in the table", func(t *testing.T) {
		authority := services.NewTransitionAuthority()
		b := newBranch(t, 100)
		o := orderInBranch(t, b)
		p := newPartner(t, "560001", "560002")
		require.NoError(t, engine.AssignLogistics(adminScope(t), o, p, logistics.Pickup, now))
		manager := managerScope(t, b.ID())

		for _, target := range []order.Status{order.Picked, order.InProcess, order.Ready} {
			from := o.Status()
			override, err := engine.TransitionStatus(manager, o, target, "", now)
			require.NoError(t, err)
			assert.False(t, override)
			_, err = authority.AuthorizeManual(from, target, access.BranchManager)
			assert.NoError(t, err)
		}
	})

	t.Run("branch staff of another branch is forbidden", func(t *testing.T) {
		b := newBranch(t, 100)
		o := orderInBranch(t, b)
		outsider := scopeFor(t, access.BranchStaff, kernel.NewUUID(), kernel.UUID{})

		_, err := engine.TransitionStatus(outsider, o, order.Cancelled, "", now)
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("admin override is flagged and keeps invariants", func(t *testing.T) {
		b := newBranch(t, 100)
		o := orderInBranch(t, b)

		override, err := engine.TransitionStatus(adminScope(t), o, order.Ready, "recovered from outage", now)

		require.NoError(t, err)
		assert.True(t, override)
		history := o.History()
		assert.True(t, history[len(history)-1].IsOverride())

		placed := newOrder(t, "560001", "560002")
		_, err = engine.TransitionStatus(adminScope(t), placed, order.Delivered, "", now)
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, order.Placed, placed.Status())
	})

	t.Run("customer cancels own placed order", func(t *testing.T) {
		o := newOrder(t, "560001", "560002")
		customer, err := access.NewScope(access.Customer, o.CustomerID(), kernel.UUID{}, kernel.UUID{})
		require.NoError(t, err)

		_, err = engine.TransitionStatus(customer, o, order.Cancelled, "", now)
		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.Status())

		stranger := scopeFor(t, access.Customer, kernel.UUID{}, kernel.UUID{})
		_, err = engine.TransitionStatus(stranger, newOrder(t, "560001", "560002"), order.Cancelled, "", now)
		require.ErrorIs(t, err, errs.ErrForbidden)
	})
}
