// Package services provides the domain services of the order workflow.
//
// The package includes:
//   - TransitionAuthority: the pure (from, to, role) decision table
//   - CapacityOracle, CoverageOracle, AvailabilityOracle: read-only checks
//     consulted before branch, logistics and staff assignment
//   - ScopePolicy: whether a request scope covers a given order
//   - AssignmentEngine: validates and applies the four workflow operations on
//     loaded aggregates, mutating nothing when a check fails
//
// Services here never perform I/O; loading, locking and committing belong to
// the application layer.
package services
