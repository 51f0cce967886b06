package errs

import (
	"errors"
	"fmt"
)

// Kind classifies a workflow failure. Business-rule kinds are local and
// non-retriable; KindInfrastructure marks transient resource faults.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInactiveResource
	KindInvalidStatus
	KindInvalidTransition
	KindCapacityExceeded
	KindAreaNotCovered
	KindUnavailable
	KindBranchMismatch
	KindAlreadyAssigned
	KindMissingParameter
	KindInvalidParameter
	KindForbidden
	KindInfrastructure
)

// Sentinels matched by errors.Is against any *WorkflowError of the same kind.
var (
	ErrNotFound          = errors.New("not found")
	ErrInactiveResource  = errors.New("inactive resource")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrCapacityExceeded  = errors.New("capacity exceeded")
	ErrAreaNotCovered    = errors.New("area not covered")
	ErrUnavailable       = errors.New("unavailable")
	ErrBranchMismatch    = errors.New("branch mismatch")
	ErrAlreadyAssigned   = errors.New("already assigned")
	ErrMissingParameter  = errors.New("missing parameter")
	ErrInvalidParameter  = errors.New("invalid parameter")
	ErrForbidden         = errors.New("forbidden")
	ErrInfrastructure    = errors.New("infrastructure unavailable")
)

func (k Kind) sentinel() error {
	switch k {
	case KindNotFound:
		return ErrNotFound
	case KindInactiveResource:
		return ErrInactiveResource
	case KindInvalidStatus:
		return ErrInvalidStatus
	case KindInvalidTransition:
		return ErrInvalidTransition
	case KindCapacityExceeded:
		return ErrCapacityExceeded
	case KindAreaNotCovered:
		return ErrAreaNotCovered
	case KindUnavailable:
		return ErrUnavailable
	case KindBranchMismatch:
		return ErrBranchMismatch
	case KindAlreadyAssigned:
		return ErrAlreadyAssigned
	case KindMissingParameter:
		return ErrMissingParameter
	case KindInvalidParameter:
		return ErrInvalidParameter
	case KindForbidden:
		return ErrForbidden
	case KindInfrastructure:
		return ErrInfrastructure
	case KindUnknown:
		return nil
	}
	return nil
}

// String returns the taxonomy name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindInactiveResource:
		return "InactiveResource"
	case KindInvalidStatus:
		return "InvalidStatus"
	case KindInvalidTransition:
		return "InvalidTransition"
	case KindCapacityExceeded:
		return "CapacityExceeded"
	case KindAreaNotCovered:
		return "AreaNotCovered"
	case KindUnavailable:
		return "Unavailable"
	case KindBranchMismatch:
		return "BranchMismatch"
	case KindAlreadyAssigned:
		return "AlreadyAssigned"
	case KindMissingParameter:
		return "MissingParameter"
	case KindInvalidParameter:
		return "InvalidParameter"
	case KindForbidden:
		return "Forbidden"
	case KindInfrastructure:
		return "Infrastructure"
	case KindUnknown:
		return "Unknown"
	}
	return "Unknown"
}

// IsRetriable reports whether the caller may retry the same request unchanged.
// Only infrastructure faults are retriable; business-rule violations are not.
func (k Kind) IsRetriable() bool {
	return k == KindInfrastructure
}

// WorkflowError is the tagged error returned by the workflow engine.
// Code carries the operation-specific failure name (OrderNotFound, BranchFull,
// StaffUnavailable, ...), Kind the taxonomy class it belongs to.
type WorkflowError struct {
	Kind    Kind
	Code    string
	Message string
	Cause   error
}

// NewWorkflowError creates a WorkflowError without a cause.
func NewWorkflowError(kind Kind, code, message string) *WorkflowError {
	return &WorkflowError{Kind: kind, Code: code, Message: message}
}

// NewWorkflowErrorWithCause creates a WorkflowError wrapping cause.
func NewWorkflowErrorWithCause(kind Kind, code, message string, cause error) *WorkflowError {
	return &WorkflowError{Kind: kind, Code: code, Message: message, Cause: cause}
}

func (e *WorkflowError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *WorkflowError) Unwrap() []error {
	unwrapped := make([]error, 0, 2)
	if s := e.Kind.sentinel(); s != nil {
		unwrapped = append(unwrapped, s)
	}
	if e.Cause != nil {
		unwrapped = append(unwrapped, e.Cause)
	}
	return unwrapped
}

// KindOf classifies any error produced inside the service. Generic value errors
// raised by constructors and repositories are folded into the taxonomy.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	var wfErr *WorkflowError
	if errors.As(err, &wfErr) {
		return wfErr.Kind
	}

	switch {
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrValueIsRequired):
		return KindMissingParameter
	case errors.Is(err, ErrValueIsInvalid), errors.Is(err, ErrValueIsOutOfRange):
		return KindInvalidParameter
	case errors.Is(err, ErrVersionIsInvalid):
		return KindInfrastructure
	}
	return KindUnknown
}

// CodeOf returns the failure code carried by err, or the kind name when err is
// not a *WorkflowError.
func CodeOf(err error) string {
	var wfErr *WorkflowError
	if errors.As(err, &wfErr) {
		return wfErr.Code
	}
	return KindOf(err).String()
}

// Failure codes used across the engine.
const (
	CodeOrderNotFound            = "OrderNotFound"
	CodeBranchNotFound           = "BranchNotFound"
	CodeBranchFull               = "BranchFull"
	CodeInvalidStatus            = "InvalidStatus"
	CodeInvalidTransition        = "InvalidTransition"
	CodeMissingParameter         = "MissingParameter"
	CodeInvalidParameter         = "InvalidParameter"
	CodeLogisticsPartnerNotFound = "LogisticsPartnerNotFound"
	CodeAreaNotCovered           = "AreaNotCovered"
	CodeStaffRequired            = "StaffRequired"
	CodeStaffNotFound            = "StaffNotFound"
	CodeBranchMismatch           = "BranchMismatch"
	CodeStaffUnavailable         = "StaffUnavailable"
	CodeAlreadyAssigned          = "AlreadyAssigned"
	CodeForbidden                = "Forbidden"
	CodeServiceUnavailable       = "ServiceUnavailable"
	CodeConcurrentModification   = "ConcurrentModification"
)

func NewOrderNotFoundError(orderID string) *WorkflowError {
	return NewWorkflowError(KindNotFound, CodeOrderNotFound, fmt.Sprintf("order %s does not exist", orderID))
}

func NewBranchNotFoundError(branchID string) *WorkflowError {
	return NewWorkflowError(KindNotFound, CodeBranchNotFound, fmt.Sprintf("branch %s does not exist", branchID))
}

func NewBranchInactiveError(branchID string) *WorkflowError {
	return NewWorkflowError(KindInactiveResource, CodeBranchNotFound, fmt.Sprintf("branch %s is not active", branchID))
}

func NewBranchFullError(branchName, reason string) *WorkflowError {
	return NewWorkflowError(KindCapacityExceeded, CodeBranchFull,
		fmt.Sprintf("branch %s has no capacity: %s", branchName, reason))
}

func NewInvalidStatusError(operation, current string, expected ...string) *WorkflowError {
	return NewWorkflowError(KindInvalidStatus, CodeInvalidStatus,
		fmt.Sprintf("%s requires status %v, order is %s", operation, expected, current))
}

func NewInvalidTransitionError(from, to, role, reason string) *WorkflowError {
	return NewWorkflowError(KindInvalidTransition, CodeInvalidTransition,
		fmt.Sprintf("%s -> %s is not allowed for %s: %s", from, to, role, reason))
}

func NewMissingParameterError(param string) *WorkflowError {
	return NewWorkflowError(KindMissingParameter, CodeMissingParameter, fmt.Sprintf("%s is required", param))
}

func NewInvalidParameterError(param string, cause error) *WorkflowError {
	return NewWorkflowErrorWithCause(KindInvalidParameter, CodeInvalidParameter,
		fmt.Sprintf("%s is malformed", param), cause)
}

func NewPartnerNotFoundError(partnerID string) *WorkflowError {
	return NewWorkflowError(KindNotFound, CodeLogisticsPartnerNotFound,
		fmt.Sprintf("logistics partner %s does not exist", partnerID))
}

func NewPartnerInactiveError(partnerID string) *WorkflowError {
	return NewWorkflowError(KindInactiveResource, CodeLogisticsPartnerNotFound,
		fmt.Sprintf("logistics partner %s is not active", partnerID))
}

func NewAreaNotCoveredError(partnerName, pincode string) *WorkflowError {
	return NewWorkflowError(KindAreaNotCovered, CodeAreaNotCovered,
		fmt.Sprintf("logistics partner %s does not serve pincode %s", partnerName, pincode))
}

func NewStaffRequiredError() *WorkflowError {
	return NewWorkflowError(KindMissingParameter, CodeStaffRequired, "staff id is required")
}

func NewStaffNotFoundError(staffID string) *WorkflowError {
	return NewWorkflowError(KindNotFound, CodeStaffNotFound, fmt.Sprintf("staff %s does not exist", staffID))
}

func NewStaffInactiveError(staffID string) *WorkflowError {
	return NewWorkflowError(KindInactiveResource, CodeStaffNotFound, fmt.Sprintf("staff %s is not active", staffID))
}

func NewBranchMismatchError(staffBranch, orderBranch string) *WorkflowError {
	return NewWorkflowError(KindBranchMismatch, CodeBranchMismatch,
		fmt.Sprintf("staff belongs to branch %s, order is serviced by branch %s", staffBranch, orderBranch))
}

func NewStaffUnavailableError(staffName string, current, limit int) *WorkflowError {
	return NewWorkflowError(KindUnavailable, CodeStaffUnavailable,
		fmt.Sprintf("staff %s is at workload limit (%d/%d)", staffName, current, limit))
}

func NewAlreadyAssignedError(staffID, orderID string) *WorkflowError {
	return NewWorkflowError(KindAlreadyAssigned, CodeAlreadyAssigned,
		fmt.Sprintf("staff %s is already assigned to order %s", staffID, orderID))
}

func NewForbiddenError(reason string) *WorkflowError {
	return NewWorkflowError(KindForbidden, CodeForbidden, reason)
}

func NewInfrastructureError(operation string, cause error) *WorkflowError {
	return NewWorkflowErrorWithCause(KindInfrastructure, CodeServiceUnavailable,
		fmt.Sprintf("%s failed", operation), cause)
}

func NewConcurrentModificationError(cause error) *WorkflowError {
	return NewWorkflowErrorWithCause(KindInfrastructure, CodeConcurrentModification,
		"order was modified concurrently, retry the request", cause)
}
