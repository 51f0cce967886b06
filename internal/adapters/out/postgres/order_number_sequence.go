package postgres

import (
	"context"
	"time"

	"laundry/internal/core/ports"

	"gorm.io/gorm"
)

// OrderNumberSequenceDTO keeps the last ordinal issued for one UTC day.
type OrderNumberSequenceDTO struct {
	Day       string `gorm:"type:char(8);primaryKey"`
	LastValue int64  `gorm:"not null"`
}

func (OrderNumberSequenceDTO) TableName() string {
	return "order_number_sequences"
}

// GormOrderNumberSequence issues ordinals with a single upsert, so concurrent
// placements on the same day serialize on the day's row.
type GormOrderNumberSequence struct {
	db *gorm.DB
}

var _ ports.OrderNumberSequence = (*GormOrderNumberSequence)(nil)

func NewGormOrderNumberSequence(db *gorm.DB) *GormOrderNumberSequence {
	return &GormOrderNumberSequence{db: db}
}

func (s *GormOrderNumberSequence) Next(ctx context.Context, day time.Time) (int64, error) {
	var next int64
	err := s.db.WithContext(ctx).Raw(
		`INSERT INTO order_number_sequences (day, last_value) VALUES (?, 1)
		 ON CONFLICT (day) DO UPDATE SET last_value = order_number_sequences.last_value + 1
		 RETURNING last_value`,
		day.UTC().Format("20060102"),
	).Scan(&next).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}
