package staffrepo

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/staff"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormStaffRepository struct {
	db    *gorm.DB
	clock kernel.Clock
}

var _ ports.StaffRepository = (*GormStaffRepository)(nil)

func NewGormStaffRepository(db *gorm.DB, clock kernel.Clock) *GormStaffRepository {
	return &GormStaffRepository{db: db, clock: clock}
}

func (r *GormStaffRepository) Add(ctx context.Context, aggregate *staff.Staff) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate, r.clock.Now())
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return nil
}

// Update rewrites the staff row and the workload rows: orders released on
// the aggregate are deleted, held ones inserted if missing. Rows added by
// other transactions are never touched.
func (r *GormStaffRepository) Update(ctx context.Context, aggregate *staff.Staff) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate, r.clock.Now())
	db := r.db.WithContext(ctx)

	result := db.Model(&StaffDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"name":                  dto.Name,
		"is_active":             dto.IsActive,
		"max_concurrent_orders": dto.MaxConcurrentOrders,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("staff", aggregate.ID().String())
	}

	if released := aggregate.Released(); len(released) > 0 {
		ids := make([]any, 0, len(released))
		for _, id := range released {
			ids = append(ids, id.Bytes())
		}
		err := db.Where("staff_id = ? AND order_id IN ?", dto.ID, ids).Delete(&CurrentOrderDTO{}).Error
		if err != nil {
			return err
		}
	}
	if len(dto.CurrentOrders) > 0 {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto.CurrentOrders).Error; err != nil {
			return err
		}
	}

	return nil
}

func (r *GormStaffRepository) Get(ctx context.Context, id kernel.UUID) (*staff.Staff, error) {
	return r.get(r.db.WithContext(ctx), id)
}

func (r *GormStaffRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*staff.Staff, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormStaffRepository) get(db *gorm.DB, id kernel.UUID) (*staff.Staff, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StaffDTO
	if err := preloaded(db).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("staff", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllBusy locks the busy staff rows so assignments wait for the release
// pass to commit.
func (r *GormStaffRepository) GetAllBusy(ctx context.Context) ([]*staff.Staff, error) {
	var dtos []StaffDTO
	err := preloaded(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"})).
		Where("EXISTS (SELECT 1 FROM staff_current_orders c WHERE c.staff_id = staff.id)").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	result := make([]*staff.Staff, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, nil
}

func preloaded(db *gorm.DB) *gorm.DB {
	return db.Preload("CurrentOrders", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("taken_at").Order("seq")
	})
}

