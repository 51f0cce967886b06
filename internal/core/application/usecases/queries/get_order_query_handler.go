package queries

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"
)

// GetOrderQueryHandler returns an order the caller's scope covers. Orders
// outside the scope are Forbidden, never silently hidden.
type GetOrderQueryHandler struct {
	orders OrderReader
	policy services.ScopePolicy
}

func NewGetOrderQueryHandler(orders OrderReader, policy services.ScopePolicy) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders, policy: policy}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return nil, errs.NewOrderNotFoundError(query.OrderID().String())
	case err != nil:
		return nil, errs.NewInfrastructureError("load order", err)
	}

	if err = h.policy.CanAccess(query.Scope(), o); err != nil {
		return nil, err
	}
	return o, nil
}
