package logistics

import (
	"errors"
	"slices"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

var ErrPartnerIsNotConstructed = errors.New("Partner must be created via NewPartner")

// Coverage is the set of pincodes a partner serves. It is replaced as a whole.
type Coverage struct {
	pincodes map[string]struct{}
}

func NewCoverage(pincodes ...kernel.Pincode) Coverage {
	set := make(map[string]struct{}, len(pincodes))
	for _, p := range pincodes {
		if !p.IsZero() {
			set[p.String()] = struct{}{}
		}
	}
	return Coverage{pincodes: set}
}

// Covers is a pure function of the set and the query pincode.
func (c Coverage) Covers(p kernel.Pincode) bool {
	if p.IsZero() {
		return false
	}
	_, ok := c.pincodes[p.String()]
	return ok
}

// Pincodes returns the covered pincodes sorted for stable output.
func (c Coverage) Pincodes() []string {
	out := make([]string, 0, len(c.pincodes))
	for p := range c.pincodes {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

func (c Coverage) Len() int {
	return len(c.pincodes)
}

// Partner is a logistics company moving orders on pickup and delivery legs.
type Partner struct {
	id            kernel.UUID
	name          string
	isActive      bool
	coverage      Coverage
	isConstructed bool
}

func NewPartner(id kernel.UUID, name string, coverage Coverage) (*Partner, error) {
	p := &Partner{isActive: true, coverage: coverage, isConstructed: true}
	if err := errors.Join(p.setID(id), p.setName(name)); err != nil {
		return nil, err
	}
	return p, nil
}

// RestorePartner rebuilds a partner from storage.
func RestorePartner(id kernel.UUID, name string, isActive bool, coverage Coverage) (*Partner, error) {
	p, err := NewPartner(id, name, coverage)
	if err != nil {
		return nil, err
	}
	p.isActive = isActive
	return p, nil
}

func (p *Partner) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPartnerIsNotConstructed
	}
	return nil
}

func (p *Partner) ID() kernel.UUID {
	return p.id
}

func (p *Partner) Name() string {
	return p.name
}

func (p *Partner) IsActive() bool {
	return p.isActive
}

func (p *Partner) Coverage() Coverage {
	return p.coverage
}

// ReplaceCoverage swaps the whole pincode set.
func (p *Partner) ReplaceCoverage(coverage Coverage) {
	p.coverage = coverage
}

func (p *Partner) Activate() {
	p.isActive = true
}

func (p *Partner) Deactivate() {
	p.isActive = false
}

func (p *Partner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Partner) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}
