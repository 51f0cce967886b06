// Package kernel provides the shared value objects of the laundry domain:
//   - UUID: identifier of orders, branches, staff, partners and actors
//   - Pincode: six-digit postal code used by logistics coverage
//   - Weight and Money: decimal quantities backed by shopspring/decimal
//   - Clock: time source injected into the workflow
//
// All value objects are immutable and reject their zero value where a zero
// value would be meaningless.
package kernel
