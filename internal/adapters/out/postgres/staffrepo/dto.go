// Package staffrepo persists staff members and the orders they currently hold.
package staffrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/staff"

	"github.com/google/uuid"
)

type StaffDTO struct {
	ID                  uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Name                string            `gorm:"type:varchar(255);not null"`
	BranchID            uuid.UUID         `gorm:"type:uuid;not null;index"`
	Role                int               `gorm:"not null"`
	IsActive            bool              `gorm:"not null"`
	MaxConcurrentOrders int               `gorm:"not null"`
	CurrentOrders       []CurrentOrderDTO `gorm:"foreignKey:StaffID;constraint:OnDelete:CASCADE"`
}

func (StaffDTO) TableName() string {
	return "staff"
}

// CurrentOrderDTO is one order on a staff member's workload. TakenAt keeps
// the workload in the order it was taken.
type CurrentOrderDTO struct {
	StaffID uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Seq     int       `gorm:"not null"`
	TakenAt time.Time `gorm:"not null"`
}

func (CurrentOrderDTO) TableName() string {
	return "staff_current_orders"
}

func fromDomain(s *staff.Staff, now time.Time) StaffDTO {
	staffID := s.ID().Bytes()

	current := make([]CurrentOrderDTO, 0, s.Workload())
	for i, orderID := range s.CurrentOrders() {
		current = append(current, CurrentOrderDTO{StaffID: staffID, OrderID: orderID.Bytes(), Seq: i, TakenAt: now})
	}

	return StaffDTO{
		ID:                  staffID,
		Name:                s.Name(),
		BranchID:            s.BranchID().Bytes(),
		Role:                int(s.Role()),
		IsActive:            s.IsActive(),
		MaxConcurrentOrders: s.Availability().MaxConcurrentOrders(),
		CurrentOrders:       current,
	}
}

func toDomain(dto StaffDTO) (*staff.Staff, error) {
	availability, err := staff.NewAvailability(dto.MaxConcurrentOrders)
	if err != nil {
		return nil, err
	}

	current := make([]kernel.UUID, 0, len(dto.CurrentOrders))
	for _, c := range dto.CurrentOrders {
		current = append(current, kernel.UUIDFromGoogle(c.OrderID))
	}

	return staff.RestoreStaff(
		kernel.UUIDFromGoogle(dto.ID),
		dto.Name,
		kernel.UUIDFromGoogle(dto.BranchID),
		staff.Role(dto.Role),
		dto.IsActive,
		current,
		availability,
	)
}
