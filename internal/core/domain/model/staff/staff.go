package staff

import (
	"errors"
	"slices"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

const maxConcurrentOrdersLimit = 100

var (
	ErrStaffIsNotConstructed = errors.New("Staff must be created via NewStaff")

	// ErrOrderNotHeld is returned when releasing an order the staff member is
	// not working on.
	ErrOrderNotHeld = errors.New("order is not in staff workload")
)

// Availability is the concurrency limit of a staff member. It is replaced as
// a whole value.
type Availability struct {
	maxConcurrentOrders int
}

func NewAvailability(maxConcurrentOrders int) (Availability, error) {
	if maxConcurrentOrders < 0 || maxConcurrentOrders > maxConcurrentOrdersLimit {
		return Availability{}, errs.NewValueIsOutOfRangeError("maxConcurrentOrders",
			maxConcurrentOrders, 0, maxConcurrentOrdersLimit)
	}
	return Availability{maxConcurrentOrders: maxConcurrentOrders}, nil
}

func (a Availability) MaxConcurrentOrders() int {
	return a.maxConcurrentOrders
}

// Staff is a washer or ironer attached to one branch for life.
//
// Staff follows these invariants:
//   - branch is fixed at creation
//   - currentOrders holds each order at most once
//   - currentOrders only grows through TakeOrder, which the workflow calls in
//     the same transaction that attaches the staff member to the order
type Staff struct {
	id            kernel.UUID
	name          string
	branchID      kernel.UUID
	role          Role
	isActive      bool
	currentOrders []kernel.UUID
	released      []kernel.UUID
	availability  Availability
	isConstructed bool
}

// NewStaff creates an active staff member with an empty workload.
//
// Parameters:
//   - id: identity of the staff member
//   - name: display name, required
//   - branchID: the branch the staff member works for
//   - role: Washer or Ironer
//   - availability: concurrency limit
//
// Returns:
//   - *Staff, or the joined validation errors
func NewStaff(id kernel.UUID, name string, branchID kernel.UUID, role Role, availability Availability) (*Staff, error) {
	s := &Staff{
		isActive:      true,
		currentOrders: []kernel.UUID{},
		availability:  availability,
		isConstructed: true,
	}
	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setBranch(branchID),
		s.setRole(role),
	); err != nil {
		return nil, err
	}
	return s, nil
}

// RestoreStaff rebuilds a staff member from storage.
func RestoreStaff(
	id kernel.UUID,
	name string,
	branchID kernel.UUID,
	role Role,
	isActive bool,
	currentOrders []kernel.UUID,
	availability Availability,
) (*Staff, error) {
	s, err := NewStaff(id, name, branchID, role, availability)
	if err != nil {
		return nil, err
	}
	s.isActive = isActive
	for _, orderID := range currentOrders {
		if slices.ContainsFunc(s.currentOrders, orderID.IsEqual) {
			continue
		}
		s.currentOrders = append(s.currentOrders, orderID)
	}
	return s, nil
}

func (s *Staff) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStaffIsNotConstructed
	}
	return nil
}

func (s *Staff) ID() kernel.UUID {
	return s.id
}

func (s *Staff) Name() string {
	return s.name
}

func (s *Staff) BranchID() kernel.UUID {
	return s.branchID
}

func (s *Staff) Role() Role {
	return s.role
}

func (s *Staff) IsActive() bool {
	return s.isActive
}

func (s *Staff) Availability() Availability {
	return s.availability
}

// CurrentOrders returns a copy of the active workload.
func (s *Staff) CurrentOrders() []kernel.UUID {
	return append([]kernel.UUID{}, s.currentOrders...)
}

func (s *Staff) Workload() int {
	return len(s.currentOrders)
}

func (s *Staff) Holds(orderID kernel.UUID) bool {
	return slices.ContainsFunc(s.currentOrders, orderID.IsEqual)
}

// HasCapacity reports whether the workload is below the concurrency limit.
func (s *Staff) HasCapacity() bool {
	return len(s.currentOrders) < s.availability.maxConcurrentOrders
}

// TakeOrder adds the order to the workload. Callers check availability
// first; TakeOrder refuses to exceed the limit or to hold an order twice.
func (s *Staff) TakeOrder(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if s.Holds(orderID) {
		return errs.NewAlreadyAssignedError(s.id.String(), orderID.String())
	}
	if !s.HasCapacity() {
		return errs.NewStaffUnavailableError(s.name, len(s.currentOrders), s.availability.maxConcurrentOrders)
	}
	s.currentOrders = append(s.currentOrders, orderID)
	return nil
}

// ReleaseOrder removes a finished order from the workload. The order is
// remembered in Released until the aggregate is reloaded.
func (s *Staff) ReleaseOrder(orderID kernel.UUID) error {
	idx := slices.IndexFunc(s.currentOrders, orderID.IsEqual)
	if idx < 0 {
		return ErrOrderNotHeld
	}
	s.currentOrders = slices.Delete(s.currentOrders, idx, idx+1)
	s.released = append(s.released, orderID)
	return nil
}

// Released returns the orders dropped by ReleaseOrder since the staff member
// was loaded. Storage removes exactly these and never infers removals from
// CurrentOrders.
func (s *Staff) Released() []kernel.UUID {
	return append([]kernel.UUID{}, s.released...)
}

func (s *Staff) ReplaceAvailability(a Availability) {
	s.availability = a
}

func (s *Staff) Activate() {
	s.isActive = true
}

func (s *Staff) Deactivate() {
	s.isActive = false
}

func (s *Staff) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Staff) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *Staff) setBranch(branchID kernel.UUID) error {
	if err := branchID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("branchID", err)
	}
	s.branchID = branchID
	return nil
}

func (s *Staff) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	s.role = role
	return nil
}
