package kernel

import (
	"errors"
	"strings"

	"laundry/internal/pkg/errs"
)

var errPincodeFormat = errors.New("pincode must be 6 digits and must not start with 0")

// Pincode is a six-digit postal code. Coverage checks compare pincodes by
// value, so the canonical form has no surrounding whitespace.
type Pincode struct {
	value string
}

// NewPincode validates and normalizes a postal code such as "560001".
func NewPincode(value string) (Pincode, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Pincode{}, errs.NewValueIsRequiredError("pincode")
	}
	if len(value) != 6 || value[0] == '0' {
		return Pincode{}, errs.NewValueIsInvalidErrorWithCause("pincode", errPincodeFormat)
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return Pincode{}, errs.NewValueIsInvalidErrorWithCause("pincode", errPincodeFormat)
		}
	}
	return Pincode{value: value}, nil
}

// MustPincode is NewPincode for literals known to be valid.
func MustPincode(value string) Pincode {
	p, err := NewPincode(value)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Pincode) String() string {
	return p.value
}

func (p Pincode) IsEqual(other Pincode) bool {
	return p.value == other.value
}

func (p Pincode) IsZero() bool {
	return p.value == ""
}
