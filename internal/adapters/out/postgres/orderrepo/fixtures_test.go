package orderrepo_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/access"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var (
	day       = time.Date(2026, 10, 19, 6, 0, 0, 0, time.UTC)
	adminUser = order.Actor{ID: kernel.NewUUID(), Role: access.Admin}
)

func placeOrder(t *testing.T, customerID kernel.UUID, ordinal int64, at time.Time, kg float64) *order.Order {
	t.Helper()
	pickup, err := order.NewAddress("12 MG Road", "Bengaluru", kernel.MustPincode("560001"))
	require.NoError(t, err)
	delivery, err := order.NewAddress("4 Church Street", "Bengaluru", kernel.MustPincode("560025"))
	require.NoError(t, err)
	weight, err := kernel.WeightFromKg(kg)
	require.NoError(t, err)
	number, err := order.NewNumber(at, ordinal)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), number, order.Placement{
		CustomerID:      customerID,
		PickupAddress:   pickup,
		DeliveryAddress: delivery,
		Weight:          weight,
	}, order.Actor{ID: customerID, Role: access.Customer}, at)
	require.NoError(t, err)
	return o
}
