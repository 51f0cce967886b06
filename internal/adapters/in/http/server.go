// Package http exposes the workflow façade over REST. Routes, request and
// response types come from the generated servers package; this package maps
// them onto façade calls with the caller's scope.
package http

import (
	"context"
	"net/http"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/access"
	"laundry/internal/core/domain/model/branch"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/logistics"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Workflow is the façade surface the HTTP adapter drives.
type Workflow interface {
	CreateOrder(ctx context.Context, scope access.Scope, customerID kernel.UUID, p order.Placement) (*order.Order, error)
	AssignBranch(ctx context.Context, scope access.Scope, orderID, branchID kernel.UUID) (*order.Order, error)
	AssignLogistics(ctx context.Context, scope access.Scope, orderID, partnerID kernel.UUID, leg logistics.Leg) (*order.Order, error)
	AssignStaff(ctx context.Context, scope access.Scope, orderID, staffID kernel.UUID) (*order.Order, error)
	TransitionStatus(ctx context.Context, scope access.Scope, orderID kernel.UUID, target order.Status, note string) (*order.Order, error)
	GetOrder(ctx context.Context, scope access.Scope, orderID kernel.UUID) (*order.Order, error)
	ListOrders(ctx context.Context, scope access.Scope, status *order.Status, limit int) ([]*order.Order, error)
	OrderStatusSummary(ctx context.Context, scope access.Scope) ([]queries.OrderStatusSummaryResponse, error)

	CreateBranch(ctx context.Context, scope access.Scope, name string, c branch.Capacity, s branch.Schedule) (*branch.Branch, error)
	UpdateBranchCapacity(ctx context.Context, scope access.Scope, branchID kernel.UUID, c branch.Capacity) (*branch.Branch, error)
	UpdateBranchSchedule(ctx context.Context, scope access.Scope, branchID kernel.UUID, s branch.Schedule) (*branch.Branch, error)
	SetBranchActive(ctx context.Context, scope access.Scope, branchID kernel.UUID, active bool) (*branch.Branch, error)

	CreateStaff(ctx context.Context, scope access.Scope, name string, branchID kernel.UUID, role staff.Role, a staff.Availability) (*staff.Staff, error)
	UpdateStaffAvailability(ctx context.Context, scope access.Scope, staffID kernel.UUID, a staff.Availability) (*staff.Staff, error)
	SetStaffActive(ctx context.Context, scope access.Scope, staffID kernel.UUID, active bool) (*staff.Staff, error)

	CreatePartner(ctx context.Context, scope access.Scope, name string, c logistics.Coverage) (*logistics.Partner, error)
	UpdatePartnerCoverage(ctx context.Context, scope access.Scope, partnerID kernel.UUID, c logistics.Coverage) (*logistics.Partner, error)
	SetPartnerActive(ctx context.Context, scope access.Scope, partnerID kernel.UUID, active bool) (*logistics.Partner, error)
}

var _ servers.ServerInterface = (*Server)(nil)

// Server implements servers.ServerInterface on top of the workflow façade.
type Server struct {
	workflow Workflow
}

func NewServer(workflow Workflow) *Server {
	return &Server{workflow: workflow}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{Code: http.StatusBadRequest, Message: message})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, placement, err := toPlacement(body)
	if err != nil {
		return fail(ctx, err)
	}

	o, err := s.workflow.CreateOrder(ctx.Request().Context(), scopeFrom(ctx), customerID, placement)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, fromOrder(o))
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	var status *order.Status
	if params.Status != nil {
		parsed, err := toStatus(*params.Status)
		if err != nil {
			return fail(ctx, err)
		}
		status = &parsed
	}
	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}

	orders, err := s.workflow.ListOrders(ctx.Request().Context(), scopeFrom(ctx), status, limit)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, fromOrders(orders))
}

// GetOrderStatusSummary handles GET /api/v1/orders/summary.
func (s *Server) GetOrderStatusSummary(ctx echo.Context) error {
	summary, err := s.workflow.OrderStatusSummary(ctx.Request().Context(), scopeFrom(ctx))
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, fromSummary(summary))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderID servers.OrderId) error {
	o, err := s.workflow.GetOrder(ctx.Request().Context(), scopeFrom(ctx), kernel.UUIDFromGoogle(orderID))
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, fromOrder(o))
}

// AssignBranch handles POST /api/v1/orders/{orderId}/branch-assignment. A
// branch manager may omit branchId to take the order for its own branch.
func (s *Server) AssignBranch(ctx echo.Context, orderID servers.OrderId) error {
	var body servers.BranchAssignment
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var branchID kernel.UUID
	if body.BranchId != nil {
		branchID = kernel.UUIDFromGoogle(*body.BranchId)
	}

	o, err := s.workflow.AssignBranch(ctx.Request().Context(), scopeFrom(ctx), kernel.UUIDFromGoogle(orderID), branchID)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, fromOrder(o))
}

// AssignLogistics handles POST /api/v1/orders/{orderId}/logistics-assignment.
func (s *Server) AssignLogistics(ctx echo.Context, orderID servers.OrderId) error {
	var body servers.LogisticsAssignment
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	leg, err := logistics.ParseLeg(string(body.Type))
	if err != nil {
		return fail(ctx, err)
	}

	o, err := s.workflow.AssignLogistics(ctx.Request().Context(), scopeFrom(ctx),
		kernel.UUIDFromGoogle(orderID), kernel.UUIDFromGoogle(body.PartnerId), leg)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, fromOrder(o))
}

// AssignStaff handles POST /api/v1/orders/{orderId}/staff-assignment.
func (s *Server) AssignStaff(ctx echo.Context, orderID servers.OrderId) error {
	var body servers.StaffAssignment
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	o, err := s.workflow.AssignStaff(ctx.Request().Context(), scopeFrom(ctx),
		kernel.UUIDFromGoogle(orderID), kernel.UUIDFromGoogle(body.StaffId))
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, fromOrder(o))
}

// TransitionStatus handles POST /api/v1/orders/{orderId}/status.
func (s *Server) TransitionStatus(ctx echo.Context, orderID servers.OrderId) error {
	var body servers.StatusChange
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := toStatus(body.Status)
	if err != nil {
		return fail(ctx, err)
	}
	note := ""
	if body.Note != nil {
		note = *body.Note
	}

	o, err := s.workflow.TransitionStatus(ctx.Request().Context(), scopeFrom(ctx),
		kernel.UUIDFromGoogle(orderID), target, note)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, fromOrder(o))
}

// CreateBranch handles POST /api/v1/branches.
func (s *Server) CreateBranch(ctx echo.Context) error {
	var body servers.NewBranch
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	capacity, err := toCapacity(body.Capacity)
	if err != nil {
		return fail(ctx, err)
	}
	schedule, err := toSchedule(body.Schedule)
	if err != nil {
		return fail(ctx, err)
	}

	b, err := s.workflow.CreateBranch(ctx.Request().Context(), scopeFrom(ctx), body.Name, capacity, schedule)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, fromBranch(b))
}

// UpdateBranchCapacity handles PUT /api/v1/branches/{branchId}/capacity.
func (s *Server) UpdateBranchCapacity(ctx echo.Context, branchID servers.BranchId) error {
	var body servers.BranchCapacity
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	capacity, err := toCapacity(body)
	if err != nil {
		return fail(ctx, err)
	}

	b, err := s.workflow.UpdateBranchCapacity(ctx.Request().Context(), scopeFrom(ctx), kernel.UUIDFromGoogle(branchID), capacity)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, fromBranch(b))
}

// UpdateBranchSchedule handles PUT /api/v1/branches/{branchId}/schedule.
func (s *Server) UpdateBranchSchedule(ctx echo.Context, branchID servers.BranchId) error {
	var body servers.Schedule
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	schedule, err := toSchedule(body)
	if err != nil {
		return fail(ctx, err)
	}

	b, err := s.workflow.UpdateBranchSchedule(ctx.Request().Context(), scopeFrom(ctx), kernel.UUIDFromGoogle(branchID), schedule)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, fromBranch(b))
}

// SetBranchActive handles PUT /api/v1/branches/{branchId}/activation.
func (s *Server) SetBranchActive(ctx echo.Context, branchID servers.BranchId) error {
	var body servers.Activation
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	b, err := s.workflow.SetBranchActive(ctx.Request().Context(), scopeFrom(ctx), kernel.UUIDFromGoogle(branchID), body.Active)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, fromBranch(b))
}

// CreateStaff handles POST /api/v1/staff.
func (s *Server) CreateStaff(ctx echo.Context) error {
	var body servers.NewStaff
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	role, err := staff.ParseRole(string(body.Role))
	if err != nil {
		return fail(ctx, err)
	}
	availability, err := staff.NewAvailability(body.MaxConcurrentOrders)
	if err != nil {
		return fail(ctx, err)
	}

	member, err := s.workflow.CreateStaff(ctx.Request().Context(), scopeFrom(ctx),
		body.Name, kernel.UUIDFromGoogle(body.BranchId), role, availability)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, fromStaff(member))
}

// UpdateStaffAvailability handles PUT /api/v1/staff/{staffId}/availability.
func (s *Server) UpdateStaffAvailability(ctx echo.Context, staffID servers.StaffId) error {
	var body servers.StaffAvailability
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	availability, err := staff.NewAvailability(body.MaxConcurrentOrders)
	if err != nil {
		return fail(ctx, err)
	}

	member, err := s.workflow.UpdateStaffAvailability(ctx.Request().Context(), scopeFrom(ctx),
		kernel.UUIDFromGoogle(staffID), availability)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, fromStaff(member))
}

// SetStaffActive handles PUT /api/v1/staff/{staffId}/activation.
func (s *Server) SetStaffActive(ctx echo.Context, staffID servers.StaffId) error {
	var body servers.Activation
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	member, err := s.workflow.SetStaffActive(ctx.Request().Context(), scopeFrom(ctx), kernel.UUIDFromGoogle(staffID), body.Active)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, fromStaff(member))
}

// CreatePartner handles POST /api/v1/logistics-partners.
func (s *Server) CreatePartner(ctx echo.Context) error {
	var body servers.NewPartner
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	coverage, err := toCoverage(body.Pincodes)
	if err != nil {
		return fail(ctx, err)
	}

	p, err := s.workflow.CreatePartner(ctx.Request().Context(), scopeFrom(ctx), body.Name, coverage)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, fromPartner(p))
}

// UpdatePartnerCoverage handles PUT /api/v1/logistics-partners/{partnerId}/coverage.
func (s *Server) UpdatePartnerCoverage(ctx echo.Context, partnerID servers.PartnerId) error {
	var body servers.PartnerCoverage
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	coverage, err := toCoverage(body.Pincodes)
	if err != nil {
		return fail(ctx, err)
	}

	p, err := s.workflow.UpdatePartnerCoverage(ctx.Request().Context(), scopeFrom(ctx), kernel.UUIDFromGoogle(partnerID), coverage)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, fromPartner(p))
}

// SetPartnerActive handles PUT /api/v1/logistics-partners/{partnerId}/activation.
func (s *Server) SetPartnerActive(ctx echo.Context, partnerID servers.PartnerId) error {
	var body servers.Activation
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	p, err := s.workflow.SetPartnerActive(ctx.Request().Context(), scopeFrom(ctx), kernel.UUIDFromGoogle(partnerID), body.Active)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, fromPartner(p))
}
