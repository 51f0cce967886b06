package access

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrScopeIsNotConstructed = errors.New("Scope must be created via NewScope")

// Scope is the caller's authority for one request: the role plus the entity it
// is bound to. It is computed once from the authenticated identity and passed
// explicitly into every command, query and authorization check.
type Scope struct {
	role      Role
	actorID   kernel.UUID
	branchID  kernel.UUID
	partnerID kernel.UUID
	guard     guard.ConstructorGuard
}

// NewScope builds a Scope and enforces the bindings each role needs:
// branch-scoped roles carry a branch, logistics agents carry a partner.
func NewScope(role Role, actorID, branchID, partnerID kernel.UUID) (Scope, error) {
	if err := role.Validate(); err != nil {
		return Scope{}, err
	}
	if err := actorID.Validate(); err != nil {
		return Scope{}, errs.NewValueIsRequiredErrorWithCause("actorID", err)
	}
	if role.IsBranchScoped() && branchID.IsZero() {
		return Scope{}, errs.NewValueIsRequiredError("branchID")
	}
	if role == LogisticsAgent && partnerID.IsZero() {
		return Scope{}, errs.NewValueIsRequiredError("partnerID")
	}

	return Scope{
		role:      role,
		actorID:   actorID,
		branchID:  branchID,
		partnerID: partnerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (s Scope) Role() Role {
	return s.role
}

func (s Scope) ActorID() kernel.UUID {
	return s.actorID
}

// BranchID is the caller's own branch; zero for roles not bound to a branch.
func (s Scope) BranchID() kernel.UUID {
	return s.branchID
}

// PartnerID is the caller's logistics partner; zero unless LogisticsAgent.
func (s Scope) PartnerID() kernel.UUID {
	return s.partnerID
}

func (s Scope) Validate() error {
	return s.guard.Validate(ErrScopeIsNotConstructed)
}

// ResolveBranch applies branch auto-constraint. A branch manager acting on an
// omitted branch gets its own; any other branch is forbidden. Other roles must
// name the branch explicitly.
func (s Scope) ResolveBranch(requested kernel.UUID) (kernel.UUID, error) {
	if s.role.IsBranchScoped() {
		if requested.IsZero() || requested.IsEqual(s.branchID) {
			return s.branchID, nil
		}
		return kernel.UUID{}, errs.NewForbiddenError("branch-scoped callers may only act on their own branch")
	}
	if requested.IsZero() {
		return kernel.UUID{}, errs.NewMissingParameterError("branchId")
	}
	return requested, nil
}

// Visibility is the order filter derived from the scope.
type Visibility struct {
	All        bool
	CustomerID kernel.UUID
	BranchID   kernel.UUID
	PartnerID  kernel.UUID

	// IncludeUnassigned adds Placed orders without a branch, which branch
	// managers pick from.
	IncludeUnassigned bool
}

// Visibility returns the order filter a query must apply for this caller.
func (s Scope) Visibility() Visibility {
	switch s.role {
	case Admin, SupportAgent:
		return Visibility{All: true}
	case BranchManager:
		return Visibility{BranchID: s.branchID, IncludeUnassigned: true}
	case BranchStaff:
		return Visibility{BranchID: s.branchID}
	case LogisticsAgent:
		return Visibility{PartnerID: s.partnerID}
	case Customer:
		return Visibility{CustomerID: s.actorID}
	case RoleUnknown:
		return Visibility{}
	}
	return Visibility{}
}
