package http

import (
	"errors"
	"time"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/branch"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/logistics"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/generated/servers"
	"laundry/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Request bodies -> domain values. Value errors keep their errs sentinels so
// they surface as MissingParameter / InvalidParameter.

func toPlacement(body servers.NewOrder) (kernel.UUID, order.Placement, error) {
	var customerID kernel.UUID
	if body.CustomerId != nil {
		customerID = kernel.UUIDFromGoogle(*body.CustomerId)
	}

	pickup, pickupErr := toAddress(body.PickupAddress)
	delivery, deliveryErr := toAddress(body.DeliveryAddress)
	weight, weightErr := toWeight(body.WeightKg)
	total, totalErr := toMoney(body.Total)
	if err := errors.Join(pickupErr, deliveryErr, weightErr, totalErr); err != nil {
		return kernel.UUID{}, order.Placement{}, err
	}

	return customerID, order.Placement{
		PickupAddress:   pickup,
		DeliveryAddress: delivery,
		Weight:          weight,
		Total:           total,
		IsExpress:       body.IsExpress != nil && *body.IsExpress,
	}, nil
}

func toAddress(a servers.Address) (order.Address, error) {
	pincode, err := kernel.NewPincode(a.Pincode)
	if err != nil {
		return order.Address{}, err
	}
	return order.NewAddress(a.Line, a.City, pincode)
}

func toWeight(s string) (kernel.Weight, error) {
	kg, err := decimal.NewFromString(s)
	if err != nil {
		return kernel.Weight{}, errs.NewValueIsInvalidErrorWithCause("weightKg", err)
	}
	return kernel.NewWeight(kg)
}

func toMoney(s string) (kernel.Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause("total", err)
	}
	return kernel.NewMoney(amount)
}

func toCapacity(c servers.BranchCapacity) (branch.Capacity, error) {
	kg, err := decimal.NewFromString(c.MaxWeightKg)
	if err != nil {
		return branch.Capacity{}, errs.NewValueIsInvalidErrorWithCause("maxWeightKg", err)
	}
	return branch.NewCapacity(c.MaxOrdersPerDay, kg)
}

func toSchedule(s servers.Schedule) (branch.Schedule, error) {
	days := make([]time.Weekday, len(s.OperatingDays))
	for i, d := range s.OperatingDays {
		days[i] = time.Weekday(d)
	}
	var holidays []string
	if s.Holidays != nil {
		holidays = make([]string, len(*s.Holidays))
		for i, h := range *s.Holidays {
			holidays[i] = h.String()
		}
	}
	return branch.NewSchedule(s.Timezone, days, holidays)
}

func toCoverage(pincodes []string) (logistics.Coverage, error) {
	parsed := make([]kernel.Pincode, 0, len(pincodes))
	var err error
	for _, p := range pincodes {
		pincode, pErr := kernel.NewPincode(p)
		if pErr != nil {
			err = errors.Join(err, pErr)
			continue
		}
		parsed = append(parsed, pincode)
	}
	if err != nil {
		return logistics.Coverage{}, err
	}
	return logistics.NewCoverage(parsed...), nil
}

func toStatus(s servers.OrderStatus) (order.Status, error) {
	status, err := order.ParseStatus(string(s))
	if err != nil {
		return order.Unknown, errs.NewInvalidParameterError("status", err)
	}
	return status, nil
}

// Domain -> response bodies.

func fromOrder(o *order.Order) servers.Order {
	staffRows := make([]servers.AssignedStaff, 0, len(o.AssignedStaff()))
	for _, a := range o.AssignedStaff() {
		staffRows = append(staffRows, servers.AssignedStaff{StaffId: a.StaffID().Bytes(), AssignedAt: a.AssignedAt()})
	}

	history := make([]servers.HistoryEntry, 0, len(o.History()))
	for _, h := range o.History() {
		entry := servers.HistoryEntry{
			Status:    servers.OrderStatus(h.Status().String()),
			ActorId:   h.Actor().ID.Bytes(),
			ActorRole: h.Actor().Role.String(),
			At:        h.At(),
			Override:  h.IsOverride(),
		}
		if note := h.Note(); note != "" {
			entry.Note = &note
		}
		history = append(history, entry)
	}

	return servers.Order{
		Id:                o.ID().Bytes(),
		Number:            o.Number().String(),
		CustomerId:        o.CustomerID().Bytes(),
		Status:            servers.OrderStatus(o.Status().String()),
		BranchId:          optionalID(o.BranchID()),
		PickupPartnerId:   optionalID(o.PickupPartnerID()),
		DeliveryPartnerId: optionalID(o.DeliveryPartnerID()),
		AssignedStaff:     staffRows,
		PickupAddress:     fromAddress(o.PickupAddress()),
		DeliveryAddress:   fromAddress(o.DeliveryAddress()),
		WeightKg:          o.Weight().Kg().StringFixed(3),
		Total:             o.Total().String(),
		IsExpress:         o.IsExpress(),
		CreatedAt:         o.CreatedAt(),
		Version:           o.Version(),
		History:           history,
	}
}

func fromOrders(orders []*order.Order) []servers.Order {
	out := make([]servers.Order, len(orders))
	for i, o := range orders {
		out[i] = fromOrder(o)
	}
	return out
}

func fromSummary(rows []queries.OrderStatusSummaryResponse) []servers.StatusCount {
	out := make([]servers.StatusCount, len(rows))
	for i, r := range rows {
		out[i] = servers.StatusCount{Status: servers.OrderStatus(r.Status.String()), Count: r.Count}
	}
	return out
}

func fromAddress(a order.Address) servers.Address {
	return servers.Address{Line: a.Line(), City: a.City(), Pincode: a.Pincode().String()}
}

func fromBranch(b *branch.Branch) servers.Branch {
	schedule := b.Schedule()
	days := make([]int, 0, len(schedule.OperatingDays()))
	for _, d := range schedule.OperatingDays() {
		days = append(days, int(d))
	}
	holidays := make([]openapi_types.Date, 0, len(schedule.Holidays()))
	for _, h := range schedule.Holidays() {
		day, err := time.Parse(time.DateOnly, h)
		if err != nil {
			continue
		}
		holidays = append(holidays, openapi_types.Date{Time: day})
	}

	return servers.Branch{
		Id:       b.ID().Bytes(),
		Name:     b.Name(),
		IsActive: b.IsActive(),
		Capacity: servers.BranchCapacity{
			MaxOrdersPerDay: b.Capacity().MaxOrdersPerDay(),
			MaxWeightKg:     b.Capacity().MaxWeightPerDay().StringFixed(3),
		},
		Schedule: servers.Schedule{
			Timezone:      schedule.Timezone(),
			OperatingDays: days,
			Holidays:      &holidays,
		},
	}
}

func fromStaff(s *staff.Staff) servers.Staff {
	current := make([]openapi_types.UUID, 0, s.Workload())
	for _, id := range s.CurrentOrders() {
		current = append(current, id.Bytes())
	}
	return servers.Staff{
		Id:                  s.ID().Bytes(),
		Name:                s.Name(),
		BranchId:            s.BranchID().Bytes(),
		Role:                s.Role().String(),
		IsActive:            s.IsActive(),
		MaxConcurrentOrders: s.Availability().MaxConcurrentOrders(),
		CurrentOrders:       current,
	}
}

func fromPartner(p *logistics.Partner) servers.Partner {
	return servers.Partner{
		Id:       p.ID().Bytes(),
		Name:     p.Name(),
		IsActive: p.IsActive(),
		Pincodes: p.Coverage().Pincodes(),
	}
}

func optionalID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil || id.IsZero() {
		return nil
	}
	raw := id.Bytes()
	return &raw
}
