package workflow

import (
	"context"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/access"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/logistics"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/ports"

	"go.uber.org/zap"
)

const (
	opCreateOrder      = "create_order"
	opAssignBranch     = "assign_branch"
	opAssignLogistics  = "assign_logistics"
	opAssignStaff      = "assign_staff"
	opTransitionStatus = "transition_status"
	opGetOrder         = "get_order"
	opListOrders       = "list_orders"
	opStatusSummary    = "order_status_summary"
)

// CreateOrder places a new order in PLACED. Customers place for themselves;
// other roles name the customer.
func (f *Facade) CreateOrder(
	ctx context.Context,
	scope access.Scope,
	customerID kernel.UUID,
	placement order.Placement,
) (*order.Order, error) {
	return observe(ctx, f, scope, ports.OpCreateOrder, opCreateOrder,
		func() (*order.Order, error) {
			cmd, err := commands.NewCreateOrderCommand(scope, customerID, placement)
			if err != nil {
				return nil, err
			}
			res, err := f.handlers.CreateOrder.Handle(ctx, cmd)
			if err != nil {
				return nil, err
			}
			f.afterCommit(ctx, scope, ports.ChangePlaced, res)
			return res.Order, nil
		}, orderFields)
}

// AssignBranch attaches the order to a branch against its daily capacity.
func (f *Facade) AssignBranch(
	ctx context.Context,
	scope access.Scope,
	orderID, branchID kernel.UUID,
) (*order.Order, error) {
	return observe(ctx, f, scope, ports.OpAssignBranch, opAssignBranch,
		func() (*order.Order, error) {
			cmd, err := commands.NewAssignBranchCommand(scope, orderID, branchID)
			if err != nil {
				return nil, err
			}
			return f.commit(ctx, scope, cmd.OrderID(), ports.ChangeBranchAssigned, func() (commands.Result, error) {
				return f.handlers.AssignBranch.Handle(ctx, cmd)
			})
		}, orderFields)
}

// AssignLogistics attaches a partner for the pickup or the delivery leg.
func (f *Facade) AssignLogistics(
	ctx context.Context,
	scope access.Scope,
	orderID, partnerID kernel.UUID,
	leg logistics.Leg,
) (*order.Order, error) {
	return observe(ctx, f, scope, ports.OpAssignLogistics, opAssignLogistics,
		func() (*order.Order, error) {
			cmd, err := commands.NewAssignLogisticsCommand(scope, orderID, partnerID, leg)
			if err != nil {
				return nil, err
			}
			return f.commit(ctx, scope, cmd.OrderID(), ports.ChangeLogisticsAssigned, func() (commands.Result, error) {
				return f.handlers.AssignLogistics.Handle(ctx, cmd)
			})
		}, orderFields)
}

// AssignStaff attaches a staff member of the order's branch. The status does
// not change.
func (f *Facade) AssignStaff(
	ctx context.Context,
	scope access.Scope,
	orderID, staffID kernel.UUID,
) (*order.Order, error) {
	return observe(ctx, f, scope, ports.OpAssignStaff, opAssignStaff,
		func() (*order.Order, error) {
			cmd, err := commands.NewAssignStaffCommand(scope, orderID, staffID)
			if err != nil {
				return nil, err
			}
			return f.commit(ctx, scope, cmd.OrderID(), ports.ChangeStaffAssigned, func() (commands.Result, error) {
				return f.handlers.AssignStaff.Handle(ctx, cmd)
			})
		}, orderFields)
}

// TransitionStatus moves the order to target. Admin requests outside the
// transition table are applied as overrides and logged at warn level.
func (f *Facade) TransitionStatus(
	ctx context.Context,
	scope access.Scope,
	orderID kernel.UUID,
	target order.Status,
	note string,
) (*order.Order, error) {
	return observe(ctx, f, scope, ports.OpTransitionStatus, opTransitionStatus,
		func() (*order.Order, error) {
			cmd, err := commands.NewTransitionStatusCommand(scope, orderID, target, note)
			if err != nil {
				return nil, err
			}
			return f.commit(ctx, scope, cmd.OrderID(), ports.ChangeStatusChanged, func() (commands.Result, error) {
				return f.handlers.TransitionStatus.Handle(ctx, cmd)
			})
		}, orderFields)
}

func (f *Facade) GetOrder(ctx context.Context, scope access.Scope, orderID kernel.UUID) (*order.Order, error) {
	return observe(ctx, f, scope, ports.OpReadOrder, opGetOrder,
		func() (*order.Order, error) {
			query, err := queries.NewGetOrderQuery(scope, orderID)
			if err != nil {
				return nil, err
			}
			return f.handlers.GetOrder.Handle(ctx, query)
		}, nil)
}

// ListOrders returns the orders visible to scope, newest first. A nil status
// lists every status; limit 0 means the default page size.
func (f *Facade) ListOrders(
	ctx context.Context,
	scope access.Scope,
	status *order.Status,
	limit int,
) ([]*order.Order, error) {
	return observe(ctx, f, scope, ports.OpReadOrder, opListOrders,
		func() ([]*order.Order, error) {
			query, err := queries.NewListOrdersQuery(scope, status, limit)
			if err != nil {
				return nil, err
			}
			return f.handlers.ListOrders.Handle(ctx, query)
		}, nil)
}

func (f *Facade) OrderStatusSummary(
	ctx context.Context,
	scope access.Scope,
) ([]queries.OrderStatusSummaryResponse, error) {
	return observe(ctx, f, scope, ports.OpReadOrder, opStatusSummary,
		func() ([]queries.OrderStatusSummaryResponse, error) {
			query, err := queries.NewOrderStatusSummaryQuery(scope)
			if err != nil {
				return nil, err
			}
			return f.handlers.StatusSummary.Handle(ctx, query)
		}, nil)
}

// commit runs a state-changing handler under the order lock and hands the
// committed result to the side effects.
func (f *Facade) commit(
	ctx context.Context,
	scope access.Scope,
	orderID kernel.UUID,
	kind ports.ChangeKind,
	handle func() (commands.Result, error),
) (*order.Order, error) {
	res, err := f.withOrderLock(ctx, orderID, handle)
	if err != nil {
		return nil, err
	}

	if res.Override {
		f.metrics.CountOverride(res.Order.Status().String())
		f.logger.Warn("status override applied",
			zap.Bool("override", true),
			zap.String("order_id", res.Order.ID().String()),
			zap.String("from", res.From.String()),
			zap.String("to", res.Order.Status().String()),
			zap.String("actor_id", scope.ActorID().String()),
		)
	}

	f.afterCommit(ctx, scope, kind, res)
	return res.Order, nil
}

func orderFields(o *order.Order) []zap.Field {
	return []zap.Field{
		zap.String("order_id", o.ID().String()),
		zap.String("number", o.Number().String()),
		zap.String("status", o.Status().String()),
	}
}
