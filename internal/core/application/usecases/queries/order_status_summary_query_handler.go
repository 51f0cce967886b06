package queries

import (
	"context"
	"fmt"

	"laundry/internal/core/domain/model/access"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// OrderStatusSummaryQueryHandler aggregates straight from the orders table
// without rebuilding aggregates.
type OrderStatusSummaryQueryHandler struct {
	db *gorm.DB
}

func NewOrderStatusSummaryQueryHandler(db *gorm.DB) OrderStatusSummaryQueryHandler {
	return OrderStatusSummaryQueryHandler{db: db}
}

// Handle returns one line per status in lifecycle order.
func (h OrderStatusSummaryQueryHandler) Handle(
	ctx context.Context,
	query OrderStatusSummaryQuery,
) ([]OrderStatusSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	counts := make(map[order.Status]int64)
	where, args, visible := visibilityClause(query.Scope().Visibility())
	if visible {
		rows, err := h.db.WithContext(ctx).Raw(`
			SELECT status, COUNT(*)
			FROM orders
			WHERE `+where+`
			GROUP BY status
		`, args...).Rows()
		if err != nil {
			return nil, errs.NewInfrastructureError("summarize orders", err)
		}
		defer rows.Close()

		for rows.Next() {
			var status int
			var count int64
			if err = rows.Scan(&status, &count); err != nil {
				return nil, errs.NewInfrastructureError("summarize orders", err)
			}
			counts[order.Status(status)] = count
		}
		if err = rows.Err(); err != nil {
			return nil, errs.NewInfrastructureError("summarize orders", err)
		}
	}

	summary := make([]OrderStatusSummaryResponse, 0, len(order.Statuses()))
	for _, s := range order.Statuses() {
		summary = append(summary, OrderStatusSummaryResponse{Status: s, Count: counts[s]})
	}
	return summary, nil
}

func visibilityClause(v access.Visibility) (string, []any, bool) {
	switch {
	case v.All:
		return "1 = 1", nil, true
	case !v.CustomerID.IsZero():
		return "customer_id = ?", []any{v.CustomerID.Bytes()}, true
	case !v.BranchID.IsZero() && v.IncludeUnassigned:
		return fmt.Sprintf("(branch_id = ? OR (branch_id IS NULL AND status = %d))", int(order.Placed)),
			[]any{v.BranchID.Bytes()}, true
	case !v.BranchID.IsZero():
		return "branch_id = ?", []any{v.BranchID.Bytes()}, true
	case !v.PartnerID.IsZero():
		return "COALESCE(delivery_partner_id, pickup_partner_id) = ?",
			[]any{v.PartnerID.Bytes()}, true
	}
	return "", nil, false
}
