package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object was
// not constructed and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as created through its constructor. Aggregates,
// commands and queries embed one so that a zero value is rejected by Validate
// instead of silently flowing into the workflow.
//
// Example usage:
//
//	var ErrBranchNotConstructed = errors.New("Branch must be created via NewBranch")
//
//	type Branch struct {
//	    id    kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func (b *Branch) Validate() error {
//	    return b.guard.Validate(ErrBranchNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that reports the owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
