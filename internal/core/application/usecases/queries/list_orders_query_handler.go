package queries

import (
	"context"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"
)

type ListOrdersQueryHandler struct {
	orders OrderReader
}

func NewListOrdersQueryHandler(orders OrderReader) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders}
}

// Handle filters by the scope's visibility, newest first.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.List(ctx, ports.OrderFilter{
		Visibility: query.Scope().Visibility(),
		Status:     query.Status(),
		Limit:      query.Limit(),
	})
	if err != nil {
		return nil, errs.NewInfrastructureError("list orders", err)
	}
	return orders, nil
}
