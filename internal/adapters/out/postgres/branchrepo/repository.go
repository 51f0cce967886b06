package branchrepo

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/branch"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormBranchRepository struct {
	db *gorm.DB
}

var _ ports.BranchRepository = (*GormBranchRepository)(nil)

func NewGormBranchRepository(db *gorm.DB) *GormBranchRepository {
	return &GormBranchRepository{db: db}
}

func (r *GormBranchRepository) Add(ctx context.Context, aggregate *branch.Branch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return nil
}

// Update rewrites the branch row and replaces the holiday calendar.
func (r *GormBranchRepository) Update(ctx context.Context, aggregate *branch.Branch) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&BranchDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"name":               dto.Name,
		"max_orders_per_day": dto.MaxOrdersPerDay,
		"max_weight_kg":      dto.MaxWeightKg,
		"is_active":          dto.IsActive,
		"timezone":           dto.Timezone,
		"operating_days":     dto.OperatingDays,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("branch", aggregate.ID().String())
	}

	if err := db.Where("branch_id = ?", dto.ID).Delete(&HolidayDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Holidays) > 0 {
		if err := db.Create(&dto.Holidays).Error; err != nil {
			return err
		}
	}

	return nil
}

func (r *GormBranchRepository) Get(ctx context.Context, id kernel.UUID) (*branch.Branch, error) {
	return r.get(r.db.WithContext(ctx), id)
}

func (r *GormBranchRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*branch.Branch, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormBranchRepository) get(db *gorm.DB, id kernel.UUID) (*branch.Branch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BranchDTO
	if err := db.Preload("Holidays").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("branch", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
