// Package orderrepo persists order aggregates with their status history and
// staff assignments in three tables.
package orderrepo

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/access"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the row of the orders table.
type OrderDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number            string          `gorm:"type:varchar(32);not null;uniqueIndex"`
	CustomerID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status            int             `gorm:"not null;index"`
	BranchID          *uuid.UUID      `gorm:"type:uuid;index:idx_orders_branch_created,priority:1"`
	PickupPartnerID   *uuid.UUID      `gorm:"type:uuid;index"`
	DeliveryPartnerID *uuid.UUID      `gorm:"type:uuid;index"`
	PickupAddress     AddressDTO      `gorm:"embedded;embeddedPrefix:pickup_"`
	DeliveryAddress   AddressDTO      `gorm:"embedded;embeddedPrefix:delivery_"`
	WeightKg          decimal.Decimal `gorm:"type:numeric(9,3);not null"`
	Total             decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	IsExpress         bool            `gorm:"not null;default:false"`
	CreatedAt         time.Time       `gorm:"not null;index:idx_orders_branch_created,priority:2"`
	Version           int64           `gorm:"not null"`

	History []HistoryDTO         `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Staff   []StaffAssignmentDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type AddressDTO struct {
	Line    string `gorm:"type:varchar(255);not null"`
	City    string `gorm:"type:varchar(120);not null"`
	Pincode string `gorm:"type:char(6);not null"`
}

// HistoryDTO is one status history line. (OrderID, Seq) is immutable once
// written, which lets Update append with ON CONFLICT DO NOTHING.
type HistoryDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq       int       `gorm:"primaryKey"`
	Status    int       `gorm:"not null"`
	ActorID   uuid.UUID `gorm:"type:uuid;not null"`
	ActorRole int       `gorm:"not null"`
	At        time.Time `gorm:"not null"`
	Note      string    `gorm:"type:text;not null;default:''"`
	Override  bool      `gorm:"not null;default:false"`
}

func (HistoryDTO) TableName() string {
	return "order_status_history"
}

type StaffAssignmentDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	StaffID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	AssignedAt time.Time `gorm:"not null"`
}

func (StaffAssignmentDTO) TableName() string {
	return "order_staff_assignments"
}

func optionalID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func addressFromDomain(a order.Address) AddressDTO {
	return AddressDTO{Line: a.Line(), City: a.City(), Pincode: a.Pincode().String()}
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()

	history := make([]HistoryDTO, 0, len(o.History()))
	for i, h := range o.History() {
		history = append(history, HistoryDTO{
			OrderID:   orderID,
			Seq:       i,
			Status:    int(h.Status()),
			ActorID:   h.Actor().ID.Bytes(),
			ActorRole: int(h.Actor().Role),
			At:        h.At(),
			Note:      h.Note(),
			Override:  h.IsOverride(),
		})
	}

	staff := make([]StaffAssignmentDTO, 0, len(o.AssignedStaff()))
	for _, a := range o.AssignedStaff() {
		staff = append(staff, StaffAssignmentDTO{
			OrderID:    orderID,
			StaffID:    a.StaffID().Bytes(),
			AssignedAt: a.AssignedAt(),
		})
	}

	return OrderDTO{
		ID:                orderID,
		Number:            o.Number().String(),
		CustomerID:        o.CustomerID().Bytes(),
		Status:            int(o.Status()),
		BranchID:          optionalID(o.BranchID()),
		PickupPartnerID:   optionalID(o.PickupPartnerID()),
		DeliveryPartnerID: optionalID(o.DeliveryPartnerID()),
		PickupAddress:     addressFromDomain(o.PickupAddress()),
		DeliveryAddress:   addressFromDomain(o.DeliveryAddress()),
		WeightKg:          o.Weight().Kg(),
		Total:             o.Total().Amount(),
		IsExpress:         o.IsExpress(),
		CreatedAt:         o.CreatedAt(),
		Version:           o.Version(),
		History:           history,
		Staff:             staff,
	}
}

func toOptionalID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id := kernel.UUIDFromGoogle(*raw)
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return &id, nil
}

func addressToDomain(dto AddressDTO) (order.Address, error) {
	pincode, err := kernel.NewPincode(dto.Pincode)
	if err != nil {
		return order.Address{}, err
	}
	return order.NewAddress(dto.Line, dto.City, pincode)
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	number, numberErr := order.ParseNumber(dto.Number)
	branchID, branchErr := toOptionalID(dto.BranchID)
	pickupPartnerID, pickupErr := toOptionalID(dto.PickupPartnerID)
	deliveryPartnerID, deliveryErr := toOptionalID(dto.DeliveryPartnerID)
	pickup, pickupAddrErr := addressToDomain(dto.PickupAddress)
	delivery, deliveryAddrErr := addressToDomain(dto.DeliveryAddress)
	weight, weightErr := kernel.NewWeight(dto.WeightKg)
	total, totalErr := kernel.NewMoney(dto.Total)
	if err := errors.Join(numberErr, branchErr, pickupErr, deliveryErr,
		pickupAddrErr, deliveryAddrErr, weightErr, totalErr); err != nil {
		return nil, err
	}

	history := make([]order.HistoryEntry, 0, len(dto.History))
	for _, h := range dto.History {
		actor := order.Actor{ID: kernel.UUIDFromGoogle(h.ActorID), Role: access.Role(h.ActorRole)}
		history = append(history, order.NewHistoryEntry(order.Status(h.Status), actor, h.At.UTC(), h.Note, h.Override))
	}

	staff := make([]order.StaffAssignment, 0, len(dto.Staff))
	for _, a := range dto.Staff {
		staff = append(staff, order.NewStaffAssignment(kernel.UUIDFromGoogle(a.StaffID), a.AssignedAt.UTC()))
	}

	return order.RestoreOrder(order.State{
		ID:                kernel.UUIDFromGoogle(dto.ID),
		Number:            number,
		CustomerID:        kernel.UUIDFromGoogle(dto.CustomerID),
		Status:            order.Status(dto.Status),
		BranchID:          branchID,
		PickupPartnerID:   pickupPartnerID,
		DeliveryPartnerID: deliveryPartnerID,
		AssignedStaff:     staff,
		PickupAddress:     pickup,
		DeliveryAddress:   delivery,
		Weight:            weight,
		Total:             total,
		IsExpress:         dto.IsExpress,
		History:           history,
		CreatedAt:         dto.CreatedAt,
		Version:           dto.Version,
	})
}
