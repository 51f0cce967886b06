package partnerrepo

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/logistics"
	"laundry/internal/core/ports"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormPartnerRepository struct {
	db *gorm.DB
}

var _ ports.PartnerRepository = (*GormPartnerRepository)(nil)

func NewGormPartnerRepository(db *gorm.DB) *GormPartnerRepository {
	return &GormPartnerRepository{db: db}
}

func (r *GormPartnerRepository) Add(ctx context.Context, aggregate *logistics.Partner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return nil
}

// Update rewrites the partner row and replaces the whole coverage set.
func (r *GormPartnerRepository) Update(ctx context.Context, aggregate *logistics.Partner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&PartnerDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"name":      dto.Name,
		"is_active": dto.IsActive,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("logisticsPartner", aggregate.ID().String())
	}

	if err := db.Where("partner_id = ?", dto.ID).Delete(&CoverageDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Coverage) > 0 {
		if err := db.Create(&dto.Coverage).Error; err != nil {
			return err
		}
	}

	return nil
}

func (r *GormPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*logistics.Partner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PartnerDTO
	if err := r.db.WithContext(ctx).Preload("Coverage").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("logisticsPartner", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
