// Package servers holds the request and response types of api/openapi.yaml,
// the ServerInterface the HTTP adapter implements and the echo wrapper that
// binds path and query parameters with oapi-codegen/runtime. Keep it in step
// with the OpenAPI document by hand.
package servers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	BearerAuthScopes = "bearerAuth.Scopes"
)

// Defines values for LogisticsAssignmentType.
const (
	Delivery LogisticsAssignmentType = "delivery"
	Pickup   LogisticsAssignmentType = "pickup"
)

// Defines values for NewStaffRole.
const (
	Ironer NewStaffRole = "ironer"
	Washer NewStaffRole = "washer"
)

// Defines values for OrderStatus.
const (
	ASSIGNEDTOBRANCH            OrderStatus = "ASSIGNED_TO_BRANCH"
	ASSIGNEDTOLOGISTICSDELIVERY OrderStatus = "ASSIGNED_TO_LOGISTICS_DELIVERY"
	ASSIGNEDTOLOGISTICSPICKUP   OrderStatus = "ASSIGNED_TO_LOGISTICS_PICKUP"
	CANCELLED                   OrderStatus = "CANCELLED"
	DELIVERED                   OrderStatus = "DELIVERED"
	INPROCESS                   OrderStatus = "IN_PROCESS"
	OUTFORDELIVERY              OrderStatus = "OUT_FOR_DELIVERY"
	PICKED                      OrderStatus = "PICKED"
	PLACED                      OrderStatus = "PLACED"
	READY                       OrderStatus = "READY"
)

// Activation defines model for Activation.
type Activation struct {
	Active bool `json:"active"`
}

// Address defines model for Address.
type Address struct {
	City    string `json:"city"`
	Line    string `json:"line"`
	Pincode string `json:"pincode"`
}

// AssignedStaff defines model for AssignedStaff.
type AssignedStaff struct {
	AssignedAt time.Time          `json:"assignedAt"`
	StaffId    openapi_types.UUID `json:"staffId"`
}

// Branch defines model for Branch.
type Branch struct {
	Capacity BranchCapacity     `json:"capacity"`
	Id       openapi_types.UUID `json:"id"`
	IsActive bool               `json:"isActive"`
	Name     string             `json:"name"`
	Schedule Schedule           `json:"schedule"`
}

// BranchAssignment defines model for BranchAssignment.
type BranchAssignment struct {
	BranchId *openapi_types.UUID `json:"branchId,omitempty"`
}

// BranchCapacity defines model for BranchCapacity.
type BranchCapacity struct {
	MaxOrdersPerDay int    `json:"maxOrdersPerDay"`
	MaxWeightKg     string `json:"maxWeightKg"`
}

// Error defines model for Error.
type Error struct {
	Code    int     `json:"code"`
	Failure *string `json:"failure,omitempty"`
	Message string  `json:"message"`
}

// HistoryEntry defines model for HistoryEntry.
type HistoryEntry struct {
	ActorId   openapi_types.UUID `json:"actorId"`
	ActorRole string             `json:"actorRole"`
	At        time.Time          `json:"at"`
	Note      *string            `json:"note,omitempty"`
	Override  bool               `json:"override"`
	Status    OrderStatus        `json:"status"`
}

// LogisticsAssignment defines model for LogisticsAssignment.
type LogisticsAssignment struct {
	PartnerId openapi_types.UUID      `json:"partnerId"`
	Type      LogisticsAssignmentType `json:"type"`
}

// LogisticsAssignmentType defines model for LogisticsAssignment.Type.
type LogisticsAssignmentType string

// NewBranch defines model for NewBranch.
type NewBranch struct {
	Capacity BranchCapacity `json:"capacity"`
	Name     string         `json:"name"`
	Schedule Schedule       `json:"schedule"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	CustomerId      *openapi_types.UUID `json:"customerId,omitempty"`
	DeliveryAddress Address             `json:"deliveryAddress"`
	IsExpress       *bool               `json:"isExpress,omitempty"`
	PickupAddress   Address             `json:"pickupAddress"`
	Total           string              `json:"total"`
	WeightKg        string              `json:"weightKg"`
}

// NewPartner defines model for NewPartner.
type NewPartner struct {
	Name     string   `json:"name"`
	Pincodes []string `json:"pincodes"`
}

// NewStaff defines model for NewStaff.
type NewStaff struct {
	BranchId            openapi_types.UUID `json:"branchId"`
	MaxConcurrentOrders int                `json:"maxConcurrentOrders"`
	Name                string             `json:"name"`
	Role                NewStaffRole       `json:"role"`
}

// NewStaffRole defines model for NewStaff.Role.
type NewStaffRole string

// Order defines model for Order.
type Order struct {
	AssignedStaff     []AssignedStaff     `json:"assignedStaff"`
	BranchId          *openapi_types.UUID `json:"branchId,omitempty"`
	CreatedAt         time.Time           `json:"createdAt"`
	CustomerId        openapi_types.UUID  `json:"customerId"`
	DeliveryAddress   Address             `json:"deliveryAddress"`
	DeliveryPartnerId *openapi_types.UUID `json:"deliveryPartnerId,omitempty"`
	History           []HistoryEntry      `json:"history"`
	Id                openapi_types.UUID  `json:"id"`
	IsExpress         bool                `json:"isExpress"`
	Number            string              `json:"number"`
	PickupAddress     Address             `json:"pickupAddress"`
	PickupPartnerId   *openapi_types.UUID `json:"pickupPartnerId,omitempty"`
	Status            OrderStatus         `json:"status"`
	Total             string              `json:"total"`
	Version           int64               `json:"version"`
	WeightKg          string              `json:"weightKg"`
}

// OrderStatus defines model for OrderStatus.
type OrderStatus string

// Partner defines model for Partner.
type Partner struct {
	Id       openapi_types.UUID `json:"id"`
	IsActive bool               `json:"isActive"`
	Name     string             `json:"name"`
	Pincodes []string           `json:"pincodes"`
}

// PartnerCoverage defines model for PartnerCoverage.
type PartnerCoverage struct {
	Pincodes []string `json:"pincodes"`
}

// Schedule defines model for Schedule.
type Schedule struct {
	Holidays      *[]openapi_types.Date `json:"holidays,omitempty"`
	OperatingDays []int                 `json:"operatingDays"`
	Timezone      string                `json:"timezone"`
}

// Staff defines model for Staff.
type Staff struct {
	BranchId            openapi_types.UUID   `json:"branchId"`
	CurrentOrders       []openapi_types.UUID `json:"currentOrders"`
	Id                  openapi_types.UUID   `json:"id"`
	IsActive            bool                 `json:"isActive"`
	MaxConcurrentOrders int                  `json:"maxConcurrentOrders"`
	Name                string               `json:"name"`
	Role                string               `json:"role"`
}

// StaffAssignment defines model for StaffAssignment.
type StaffAssignment struct {
	StaffId openapi_types.UUID `json:"staffId"`
}

// StaffAvailability defines model for StaffAvailability.
type StaffAvailability struct {
	MaxConcurrentOrders int `json:"maxConcurrentOrders"`
}

// StatusChange defines model for StatusChange.
type StatusChange struct {
	Note   *string     `json:"note,omitempty"`
	Status OrderStatus `json:"status"`
}

// StatusCount defines model for StatusCount.
type StatusCount struct {
	Count  int64       `json:"count"`
	Status OrderStatus `json:"status"`
}

// BranchId defines model for BranchId.
type BranchId = openapi_types.UUID

// OrderId defines model for OrderId.
type OrderId = openapi_types.UUID

// PartnerId defines model for PartnerId.
type PartnerId = openapi_types.UUID

// StaffId defines model for StaffId.
type StaffId = openapi_types.UUID

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	Status *OrderStatus `form:"status,omitempty" json:"status,omitempty"`
	Limit  *int         `form:"limit,omitempty" json:"limit,omitempty"`
}

// CreateBranchJSONRequestBody defines body for CreateBranch for application/json ContentType.
type CreateBranchJSONRequestBody = NewBranch

// UpdateBranchCapacityJSONRequestBody defines body for UpdateBranchCapacity for application/json ContentType.
type UpdateBranchCapacityJSONRequestBody = BranchCapacity

// UpdateBranchScheduleJSONRequestBody defines body for UpdateBranchSchedule for application/json ContentType.
type UpdateBranchScheduleJSONRequestBody = Schedule

// SetBranchActiveJSONRequestBody defines body for SetBranchActive for application/json ContentType.
type SetBranchActiveJSONRequestBody = Activation

// CreatePartnerJSONRequestBody defines body for CreatePartner for application/json ContentType.
type CreatePartnerJSONRequestBody = NewPartner

// UpdatePartnerCoverageJSONRequestBody defines body for UpdatePartnerCoverage for application/json ContentType.
type UpdatePartnerCoverageJSONRequestBody = PartnerCoverage

// SetPartnerActiveJSONRequestBody defines body for SetPartnerActive for application/json ContentType.
type SetPartnerActiveJSONRequestBody = Activation

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// AssignBranchJSONRequestBody defines body for AssignBranch for application/json ContentType.
type AssignBranchJSONRequestBody = BranchAssignment

// AssignLogisticsJSONRequestBody defines body for AssignLogistics for application/json ContentType.
type AssignLogisticsJSONRequestBody = LogisticsAssignment

// AssignStaffJSONRequestBody defines body for AssignStaff for application/json ContentType.
type AssignStaffJSONRequestBody = StaffAssignment

// TransitionStatusJSONRequestBody defines body for TransitionStatus for application/json ContentType.
type TransitionStatusJSONRequestBody = StatusChange

// CreateStaffJSONRequestBody defines body for CreateStaff for application/json ContentType.
type CreateStaffJSONRequestBody = NewStaff

// UpdateStaffAvailabilityJSONRequestBody defines body for UpdateStaffAvailability for application/json ContentType.
type UpdateStaffAvailabilityJSONRequestBody = StaffAvailability

// SetStaffActiveJSONRequestBody defines body for SetStaffActive for application/json ContentType.
type SetStaffActiveJSONRequestBody = Activation

// ServerInterface represents all server handlers.
type ServerInterface interface {

	// (POST /branches)
	CreateBranch(ctx echo.Context) error

	// (PUT /branches/{branchId}/activation)
	SetBranchActive(ctx echo.Context, branchId BranchId) error

	// (PUT /branches/{branchId}/capacity)
	UpdateBranchCapacity(ctx echo.Context, branchId BranchId) error

	// (PUT /branches/{branchId}/schedule)
	UpdateBranchSchedule(ctx echo.Context, branchId BranchId) error

	// (POST /logistics-partners)
	CreatePartner(ctx echo.Context) error

	// (PUT /logistics-partners/{partnerId}/activation)
	SetPartnerActive(ctx echo.Context, partnerId PartnerId) error

	// (PUT /logistics-partners/{partnerId}/coverage)
	UpdatePartnerCoverage(ctx echo.Context, partnerId PartnerId) error

	// (GET /orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error

	// (POST /orders)
	CreateOrder(ctx echo.Context) error

	// (GET /orders/summary)
	GetOrderStatusSummary(ctx echo.Context) error

	// (GET /orders/{orderId})
	GetOrder(ctx echo.Context, orderId OrderId) error

	// (POST /orders/{orderId}/branch-assignment)
	AssignBranch(ctx echo.Context, orderId OrderId) error

	// (POST /orders/{orderId}/logistics-assignment)
	AssignLogistics(ctx echo.Context, orderId OrderId) error

	// (POST /orders/{orderId}/staff-assignment)
	AssignStaff(ctx echo.Context, orderId OrderId) error

	// (POST /orders/{orderId}/status)
	TransitionStatus(ctx echo.Context, orderId OrderId) error

	// (POST /staff)
	CreateStaff(ctx echo.Context) error

	// (PUT /staff/{staffId}/activation)
	SetStaffActive(ctx echo.Context, staffId StaffId) error

	// (PUT /staff/{staffId}/availability)
	UpdateStaffAvailability(ctx echo.Context, staffId StaffId) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// CreateBranch converts echo context to params.
func (w *ServerInterfaceWrapper) CreateBranch(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.CreateBranch(ctx)
}

// SetBranchActive converts echo context to params.
func (w *ServerInterfaceWrapper) SetBranchActive(ctx echo.Context) error {
	branchId, err := bindUUIDPathParam(ctx, "branchId")
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.SetBranchActive(ctx, branchId)
}

// UpdateBranchCapacity converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateBranchCapacity(ctx echo.Context) error {
	branchId, err := bindUUIDPathParam(ctx, "branchId")
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.UpdateBranchCapacity(ctx, branchId)
}

// UpdateBranchSchedule converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateBranchSchedule(ctx echo.Context) error {
	branchId, err := bindUUIDPathParam(ctx, "branchId")
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.UpdateBranchSchedule(ctx, branchId)
}

// CreatePartner converts echo context to params.
func (w *ServerInterfaceWrapper) CreatePartner(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.CreatePartner(ctx)
}

// SetPartnerActive converts echo context to params.
func (w *ServerInterfaceWrapper) SetPartnerActive(ctx echo.Context) error {
	partnerId, err := bindUUIDPathParam(ctx, "partnerId")
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.SetPartnerActive(ctx, partnerId)
}

// UpdatePartnerCoverage converts echo context to params.
func (w *ServerInterfaceWrapper) UpdatePartnerCoverage(ctx echo.Context) error {
	partnerId, err := bindUUIDPathParam(ctx, "partnerId")
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.UpdatePartnerCoverage(ctx, partnerId)
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var err error

	ctx.Set(BearerAuthScopes, []string{})

	var params ListOrdersParams

	err = runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	err = runtime.BindQueryParameter("form", true, false, "limit", ctx.QueryParams(), &params.Limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter limit: %s", err))
	}

	return w.Handler.ListOrders(ctx, params)
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.CreateOrder(ctx)
}

// GetOrderStatusSummary converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderStatusSummary(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.GetOrderStatusSummary(ctx)
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderId, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.GetOrder(ctx, orderId)
}

// AssignBranch converts echo context to params.
func (w *ServerInterfaceWrapper) AssignBranch(ctx echo.Context) error {
	orderId, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.AssignBranch(ctx, orderId)
}

// AssignLogistics converts echo context to params.
func (w *ServerInterfaceWrapper) AssignLogistics(ctx echo.Context) error {
	orderId, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.AssignLogistics(ctx, orderId)
}

// AssignStaff converts echo context to params.
func (w *ServerInterfaceWrapper) AssignStaff(ctx echo.Context) error {
	orderId, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.AssignStaff(ctx, orderId)
}

// TransitionStatus converts echo context to params.
func (w *ServerInterfaceWrapper) TransitionStatus(ctx echo.Context) error {
	orderId, err := bindUUIDPathParam(ctx, "orderId")
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.TransitionStatus(ctx, orderId)
}

// CreateStaff converts echo context to params.
func (w *ServerInterfaceWrapper) CreateStaff(ctx echo.Context) error {
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.CreateStaff(ctx)
}

// SetStaffActive converts echo context to params.
func (w *ServerInterfaceWrapper) SetStaffActive(ctx echo.Context) error {
	staffId, err := bindUUIDPathParam(ctx, "staffId")
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.SetStaffActive(ctx, staffId)
}

// UpdateStaffAvailability converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateStaffAvailability(ctx echo.Context) error {
	staffId, err := bindUUIDPathParam(ctx, "staffId")
	if err != nil {
		return err
	}
	ctx.Set(BearerAuthScopes, []string{})

	return w.Handler.UpdateStaffAvailability(ctx, staffId)
}

func bindUUIDPathParam(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

// EchoRouter is the subset of echo.Echo and echo.Group the handlers register on.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/branches", wrapper.CreateBranch)
	router.PUT(baseURL+"/branches/:branchId/activation", wrapper.SetBranchActive)
	router.PUT(baseURL+"/branches/:branchId/capacity", wrapper.UpdateBranchCapacity)
	router.PUT(baseURL+"/branches/:branchId/schedule", wrapper.UpdateBranchSchedule)
	router.POST(baseURL+"/logistics-partners", wrapper.CreatePartner)
	router.PUT(baseURL+"/logistics-partners/:partnerId/activation", wrapper.SetPartnerActive)
	router.PUT(baseURL+"/logistics-partners/:partnerId/coverage", wrapper.UpdatePartnerCoverage)
	router.GET(baseURL+"/orders", wrapper.ListOrders)
	router.POST(baseURL+"/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/orders/summary", wrapper.GetOrderStatusSummary)
	router.GET(baseURL+"/orders/:orderId", wrapper.GetOrder)
	router.POST(baseURL+"/orders/:orderId/branch-assignment", wrapper.AssignBranch)
	router.POST(baseURL+"/orders/:orderId/logistics-assignment", wrapper.AssignLogistics)
	router.POST(baseURL+"/orders/:orderId/staff-assignment", wrapper.AssignStaff)
	router.POST(baseURL+"/orders/:orderId/status", wrapper.TransitionStatus)
	router.POST(baseURL+"/staff", wrapper.CreateStaff)
	router.PUT(baseURL+"/staff/:staffId/activation", wrapper.SetStaffActive)
	router.PUT(baseURL+"/staff/:staffId/availability", wrapper.UpdateStaffAvailability)
}
