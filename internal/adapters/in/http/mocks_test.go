package http_test

import (
	"context"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/access"
	"laundry/internal/core/domain/model/branch"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/logistics"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/staff"

	"github.com/stretchr/testify/mock"
)

type MockWorkflow struct{ mock.Mock }

func orderResult(args mock.Arguments) (*order.Order, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockWorkflow) CreateOrder(ctx context.Context, scope access.Scope, customerID kernel.UUID, p order.Placement) (*order.Order, error) {
	return orderResult(m.Called(ctx, scope, customerID, p))
}

func (m *MockWorkflow) AssignBranch(ctx context.Context, scope access.Scope, orderID, branchID kernel.UUID) (*order.Order, error) {
	return orderResult(m.Called(ctx, scope, orderID, branchID))
}

func (m *MockWorkflow) AssignLogistics(
	ctx context.Context,
	scope access.Scope,
	orderID, partnerID kernel.UUID,
	leg logistics.Leg,
) (*order.Order, error) {
	return orderResult(m.Called(ctx, scope, orderID, partnerID, leg))
}

func (m *MockWorkflow) AssignStaff(ctx context.Context, scope access.Scope, orderID, staffID kernel.UUID) (*order.Order, error) {
	return orderResult(m.Called(ctx, scope, orderID, staffID))
}

func (m *MockWorkflow) TransitionStatus(
	ctx context.Context,
	scope access.Scope,
	orderID kernel.UUID,
	target order.Status,
	note string,
) (*order.Order, error) {
	return orderResult(m.Called(ctx, scope, orderID, target, note))
}

func (m *MockWorkflow) GetOrder(ctx context.Context, scope access.Scope, orderID kernel.UUID) (*order.Order, error) {
	return orderResult(m.Called(ctx, scope, orderID))
}

func (m *MockWorkflow) ListOrders(ctx context.Context, scope access.Scope, status *order.Status, limit int) ([]*order.Order, error) {
	args := m.Called(ctx, scope, status, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockWorkflow) OrderStatusSummary(ctx context.Context, scope access.Scope) ([]queries.OrderStatusSummaryResponse, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.OrderStatusSummaryResponse), args.Error(1)
}

func branchResult(args mock.Arguments) (*branch.Branch, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*branch.Branch), args.Error(1)
}

func (m *MockWorkflow) CreateBranch(
	ctx context.Context,
	scope access.Scope,
	name string,
	c branch.Capacity,
	s branch.Schedule,
) (*branch.Branch, error) {
	return branchResult(m.Called(ctx, scope, name, c, s))
}

func (m *MockWorkflow) UpdateBranchCapacity(ctx context.Context, scope access.Scope, branchID kernel.UUID, c branch.Capacity) (*branch.Branch, error) {
	return branchResult(m.Called(ctx, scope, branchID, c))
}

func (m *MockWorkflow) UpdateBranchSchedule(ctx context.Context, scope access.Scope, branchID kernel.UUID, s branch.Schedule) (*branch.Branch, error) {
	return branchResult(m.Called(ctx, scope, branchID, s))
}

func (m *MockWorkflow) SetBranchActive(ctx context.Context, scope access.Scope, branchID kernel.UUID, active bool) (*branch.Branch, error) {
	return branchResult(m.Called(ctx, scope, branchID, active))
}

func staffResult(args mock.Arguments) (*staff.Staff, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.Staff), args.Error(1)
}

func (m *MockWorkflow) CreateStaff(
	ctx context.Context,
	scope access.Scope,
	name string,
	branchID kernel.UUID,
	role staff.Role,
	a staff.Availability,
) (*staff.Staff, error) {
	return staffResult(m.Called(ctx, scope, name, branchID, role, a))
}

func (m *MockWorkflow) UpdateStaffAvailability(ctx context.Context, scope access.Scope, staffID kernel.UUID, a staff.Availability) (*staff.Staff, error) {
	return staffResult(m.Called(ctx, scope, staffID, a))
}

func (m *MockWorkflow) SetStaffActive(ctx context.Context, scope access.Scope, staffID kernel.UUID, active bool) (*staff.Staff, error) {
	return staffResult(m.Called(ctx, scope, staffID, active))
}

func partnerResult(args mock.Arguments) (*logistics.Partner, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*logistics.Partner), args.Error(1)
}

func (m *MockWorkflow) CreatePartner(ctx context.Context, scope access.Scope, name string, c logistics.Coverage) (*logistics.Partner, error) {
	return partnerResult(m.Called(ctx, scope, name, c))
}

func (m *MockWorkflow) UpdatePartnerCoverage(ctx context.Context, scope access.Scope, partnerID kernel.UUID, c logistics.Coverage) (*logistics.Partner, error) {
	return partnerResult(m.Called(ctx, scope, partnerID, c))
}

func (m *MockWorkflow) SetPartnerActive(ctx context.Context, scope access.Scope, partnerID kernel.UUID, active bool) (*logistics.Partner, error) {
	return partnerResult(m.Called(ctx, scope, partnerID, active))
}
