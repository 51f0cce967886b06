// Package branchrepo persists branches together with their holiday calendar.
package branchrepo

import (
	"time"

	"laundry/internal/core/domain/model/branch"
	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BranchDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name            string          `gorm:"type:varchar(255);not null"`
	MaxOrdersPerDay int             `gorm:"not null"`
	MaxWeightKg     decimal.Decimal `gorm:"type:numeric(12,3);not null"`
	IsActive        bool            `gorm:"not null"`
	Timezone        string          `gorm:"type:varchar(64);not null"`
	// OperatingDays is a bit set indexed by time.Weekday.
	OperatingDays int          `gorm:"not null"`
	Holidays      []HolidayDTO `gorm:"foreignKey:BranchID;constraint:OnDelete:CASCADE"`
}

func (BranchDTO) TableName() string {
	return "branches"
}

type HolidayDTO struct {
	BranchID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Day      string    `gorm:"type:char(10);primaryKey"`
}

func (HolidayDTO) TableName() string {
	return "branch_holidays"
}

func fromDomain(b *branch.Branch) BranchDTO {
	branchID := b.ID().Bytes()

	days := 0
	for _, d := range b.Schedule().OperatingDays() {
		days |= 1 << d
	}

	holidays := make([]HolidayDTO, 0, len(b.Schedule().Holidays()))
	for _, h := range b.Schedule().Holidays() {
		holidays = append(holidays, HolidayDTO{BranchID: branchID, Day: h})
	}

	return BranchDTO{
		ID:              branchID,
		Name:            b.Name(),
		MaxOrdersPerDay: b.Capacity().MaxOrdersPerDay(),
		MaxWeightKg:     b.Capacity().MaxWeightPerDay(),
		IsActive:        b.IsActive(),
		Timezone:        b.Schedule().Timezone(),
		OperatingDays:   days,
		Holidays:        holidays,
	}
}

func toDomain(dto BranchDTO) (*branch.Branch, error) {
	capacity, err := branch.NewCapacity(dto.MaxOrdersPerDay, dto.MaxWeightKg)
	if err != nil {
		return nil, err
	}

	days := make([]time.Weekday, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if dto.OperatingDays&(1<<d) != 0 {
			days = append(days, d)
		}
	}
	holidays := make([]string, 0, len(dto.Holidays))
	for _, h := range dto.Holidays {
		holidays = append(holidays, h.Day)
	}
	schedule, err := branch.NewSchedule(dto.Timezone, days, holidays)
	if err != nil {
		return nil, err
	}

	return branch.RestoreBranch(kernel.UUIDFromGoogle(dto.ID), dto.Name, capacity, schedule, dto.IsActive)
}
