package services

import (
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/logistics"
	"laundry/internal/pkg/errs"
)

// CoverageOracle decides whether a partner serves a pincode. The answer is a
// pure function of the partner's pincode set and the query pincode.
type CoverageOracle struct{}

func NewCoverageOracle() CoverageOracle {
	return CoverageOracle{}
}

func (CoverageOracle) Check(p *logistics.Partner, pincode kernel.Pincode) error {
	if !p.Coverage().Covers(pincode) {
		return errs.NewAreaNotCoveredError(p.Name(), pincode.String())
	}
	return nil
}
