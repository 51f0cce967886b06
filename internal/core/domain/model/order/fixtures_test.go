package order_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/access"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var placedAt = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

func customerActor() order.Actor {
	return order.Actor{ID: kernel.NewUUID(), Role: access.Customer}
}

func managerActor() order.Actor {
	return order.Actor{ID: kernel.NewUUID(), Role: access.BranchManager}
}

func validPlacement(t *testing.T) order.Placement {
	t.Helper()

	pickup, err := order.NewAddress("12 MG Road", "Bengaluru", kernel.MustPincode("560001"))
	require.NoError(t, err)
	delivery, err := order.NewAddress("4 Church Street", "Bengaluru", kernel.MustPincode("560002"))
	require.NoError(t, err)
	weight, err := kernel.WeightFromKg(4.5)
	require.NoError(t, err)
	total, err := kernel.NewMoney(decimal.NewFromInt(350))
	require.NoError(t, err)

	return order.Placement{
		CustomerID:      kernel.NewUUID(),
		PickupAddress:   pickup,
		DeliveryAddress: delivery,
		Weight:          weight,
		Total:           total,
	}
}

func newPlacedOrder(t *testing.T) *order.Order {
	t.Helper()

	number, err := order.NewNumber(placedAt, 1)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), number, validPlacement(t), customerActor(), placedAt)
	require.NoError(t, err)
	return o
}
