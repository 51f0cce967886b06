// Package errs provides standardized error types for the laundry service.
//
// Two layers live here:
//   - Generic value errors (ValueIsRequiredError, ValueIsInvalidError,
//     ValueIsOutOfRangeError, ObjectNotFoundError, VersionIsInvalidError) raised
//     by constructors and repositories. Each has a sentinel, a struct with the
//     details, constructors with and without cause, Error and Unwrap.
//   - The workflow taxonomy: WorkflowError tagged with a Kind (NotFound,
//     InactiveResource, InvalidStatus, ...) and an operation-specific Code
//     (OrderNotFound, BranchFull, StaffUnavailable, ...). Every WorkflowError
//     matches its kind sentinel through errors.Is.
//
// KindOf folds both layers into one Kind so transports can map failures to
// responses without knowing which layer produced them.
package errs
