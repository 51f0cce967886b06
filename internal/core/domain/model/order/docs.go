// Package order provides the Order aggregate governed by the workflow engine.
//
// The package includes:
//   - Order: identity, number, customer, branch, leg-indexed logistics partners,
//     staff assignments, addresses, weight, pricing and the status history
//   - Status: the ten-member lifecycle enumeration
//   - Number: the LD-YYYYMMDD-NNNNNN order number
//   - HistoryEntry and StaffAssignment: append-only records on the order
//
// Key business rules:
//   - every accepted transition appends exactly one history entry
//   - a branch is set iff the order has progressed past Placed
//   - staff may be attached once each, while the branch holds the order
//
// Which role may request which transition is decided by the transition
// authority in the domain services package, not here.
package order
