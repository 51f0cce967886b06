// Package partnerrepo persists logistics partners and their pincode coverage.
package partnerrepo

import (
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/logistics"

	"github.com/google/uuid"
)

type PartnerDTO struct {
	ID       uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Name     string        `gorm:"type:varchar(255);not null"`
	IsActive bool          `gorm:"not null"`
	Coverage []CoverageDTO `gorm:"foreignKey:PartnerID;constraint:OnDelete:CASCADE"`
}

func (PartnerDTO) TableName() string {
	return "logistics_partners"
}

type CoverageDTO struct {
	PartnerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Pincode   string    `gorm:"type:char(6);primaryKey;index"`
}

func (CoverageDTO) TableName() string {
	return "logistics_partner_coverage"
}

func fromDomain(p *logistics.Partner) PartnerDTO {
	partnerID := p.ID().Bytes()

	coverage := make([]CoverageDTO, 0, p.Coverage().Len())
	for _, pincode := range p.Coverage().Pincodes() {
		coverage = append(coverage, CoverageDTO{PartnerID: partnerID, Pincode: pincode})
	}

	return PartnerDTO{
		ID:       partnerID,
		Name:     p.Name(),
		IsActive: p.IsActive(),
		Coverage: coverage,
	}
}

func toDomain(dto PartnerDTO) (*logistics.Partner, error) {
	pincodes := make([]kernel.Pincode, 0, len(dto.Coverage))
	for _, c := range dto.Coverage {
		pincode, err := kernel.NewPincode(c.Pincode)
		if err != nil {
			return nil, err
		}
		pincodes = append(pincodes, pincode)
	}

	return logistics.RestorePartner(kernel.UUIDFromGoogle(dto.ID), dto.Name, dto.IsActive, logistics.NewCoverage(pincodes...))
}
