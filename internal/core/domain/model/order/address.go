package order

import (
	"errors"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

// Address is a pickup or delivery location. Only the pincode takes part in
// workflow decisions.
type Address struct {
	line    string
	city    string
	pincode kernel.Pincode
}

func NewAddress(line, city string, pincode kernel.Pincode) (Address, error) {
	line = strings.TrimSpace(line)
	city = strings.TrimSpace(city)

	var err error
	if line == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("address.line"))
	}
	if city == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("address.city"))
	}
	if pincode.IsZero() {
		err = errors.Join(err, errs.NewValueIsRequiredError("address.pincode"))
	}
	if err != nil {
		return Address{}, err
	}

	return Address{line: line, city: city, pincode: pincode}, nil
}

func (a Address) Line() string {
	return a.line
}

func (a Address) City() string {
	return a.city
}

func (a Address) Pincode() kernel.Pincode {
	return a.pincode
}

func (a Address) IsZero() bool {
	return a.pincode.IsZero()
}
