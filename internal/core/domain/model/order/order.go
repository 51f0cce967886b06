package order

import (
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/logistics"
	"laundry/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root whose lifecycle the workflow engine governs.
//
// Order follows these invariants:
//   - status is always a member of the Status enumeration
//   - history is non-empty and its last entry's status equals status
//   - branch is set if and only if status has progressed past Placed
//     (a Cancelled order keeps whatever it had when cancelled)
//   - a staff member appears at most once in assignedStaff
//   - number and customer never change after placement
//
// Mutations validate first and change state only when every check passed, so
// a failed call leaves the order untouched.
type Order struct {
	id                kernel.UUID
	number            Number
	customerID        kernel.UUID
	status            Status
	branchID          *kernel.UUID
	pickupPartnerID   *kernel.UUID
	deliveryPartnerID *kernel.UUID
	assignedStaff     []StaffAssignment
	pickupAddress     Address
	deliveryAddress   Address
	weight            kernel.Weight
	total             kernel.Money
	isExpress         bool
	history           []HistoryEntry
	createdAt         time.Time
	version           int64

	isConstructed bool
}

// Placement carries the customer's input for a new order.
type Placement struct {
	CustomerID      kernel.UUID
	PickupAddress   Address
	DeliveryAddress Address
	Weight          kernel.Weight
	Total           kernel.Money
	IsExpress       bool
}

// NewOrder places an order in Placed with a single history entry.
//
// Parameters:
//   - id: identity of the new order
//   - number: the issued order number
//   - p: customer input
//   - by: actor placing the order, usually the customer
//   - at: placement time; the capacity day of the order derives from it
//
// Returns:
//   - *Order in Placed, or the joined validation errors
func NewOrder(id kernel.UUID, number Number, p Placement, by Actor, at time.Time) (*Order, error) {
	o := &Order{
		status:          Placed,
		weight:          p.Weight,
		total:           p.Total,
		isExpress:       p.IsExpress,
		createdAt:       at.UTC(),
		assignedStaff:   []StaffAssignment{},
		isConstructed:   true,
		pickupAddress:   p.PickupAddress,
		deliveryAddress: p.DeliveryAddress,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomer(p.CustomerID),
		requireAddress("pickupAddress", p.PickupAddress),
		requireAddress("deliveryAddress", p.DeliveryAddress),
		requireTime(at),
	); err != nil {
		return nil, err
	}

	o.history = []HistoryEntry{NewHistoryEntry(Placed, by, o.createdAt, "order placed", false)}
	return o, nil
}

// State is the full stored form of an order, used by RestoreOrder.
type State struct {
	ID                kernel.UUID
	Number            Number
	CustomerID        kernel.UUID
	Status            Status
	BranchID          *kernel.UUID
	PickupPartnerID   *kernel.UUID
	DeliveryPartnerID *kernel.UUID
	AssignedStaff     []StaffAssignment
	PickupAddress     Address
	DeliveryAddress   Address
	Weight            kernel.Weight
	Total             kernel.Money
	IsExpress         bool
	History           []HistoryEntry
	CreatedAt         time.Time
	Version           int64
}

// RestoreOrder rebuilds an order read from storage and re-checks every record
// invariant, so corrupted rows surface as errors instead of silently flowing
// through the workflow.
func RestoreOrder(s State) (*Order, error) {
	o := &Order{
		status:            s.Status,
		branchID:          s.BranchID,
		pickupPartnerID:   s.PickupPartnerID,
		deliveryPartnerID: s.DeliveryPartnerID,
		assignedStaff:     append([]StaffAssignment{}, s.AssignedStaff...),
		pickupAddress:     s.PickupAddress,
		deliveryAddress:   s.DeliveryAddress,
		weight:            s.Weight,
		total:             s.Total,
		isExpress:         s.IsExpress,
		history:           append([]HistoryEntry{}, s.History...),
		createdAt:         s.CreatedAt.UTC(),
		version:           s.Version,
		isConstructed:     true,
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setNumber(s.Number),
		o.setCustomer(s.CustomerID),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}
	if err := o.CheckInvariants(); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// CheckInvariants verifies the record-level invariants listed on Order.
func (o *Order) CheckInvariants() error {
	if len(o.history) == 0 {
		return errs.NewValueIsInvalidErrorWithCause("history", errors.New("status history is empty"))
	}
	if last := o.history[len(o.history)-1].Status(); last != o.status {
		return errs.NewValueIsInvalidErrorWithCause("history",
			fmt.Errorf("last history status %s differs from status %s", last, o.status))
	}
	if err := o.checkBranchFor(o.status); err != nil {
		return err
	}
	seen := make(map[kernel.UUID]struct{}, len(o.assignedStaff))
	for _, a := range o.assignedStaff {
		if _, dup := seen[a.StaffID()]; dup {
			return errs.NewValueIsInvalidErrorWithCause("assignedStaff",
				fmt.Errorf("staff %s assigned twice", a.StaffID()))
		}
		seen[a.StaffID()] = struct{}{}
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Number() Number {
	return o.number
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

func (o *Order) Status() Status {
	return o.status
}

// BranchID returns the servicing branch, nil before branch assignment.
func (o *Order) BranchID() *kernel.UUID {
	return o.branchID
}

func (o *Order) PickupPartnerID() *kernel.UUID {
	return o.pickupPartnerID
}

func (o *Order) DeliveryPartnerID() *kernel.UUID {
	return o.deliveryPartnerID
}

// LogisticsPartner returns the partner responsible for the current leg: the
// delivery partner once one is assigned, the pickup partner before that.
func (o *Order) LogisticsPartner() *kernel.UUID {
	if o.deliveryPartnerID != nil {
		return o.deliveryPartnerID
	}
	return o.pickupPartnerID
}

// AssignedStaff returns a copy of the staff assignments in assignment order.
func (o *Order) AssignedStaff() []StaffAssignment {
	return append([]StaffAssignment{}, o.assignedStaff...)
}

func (o *Order) HasStaff(staffID kernel.UUID) bool {
	for _, a := range o.assignedStaff {
		if a.StaffID().IsEqual(staffID) {
			return true
		}
	}
	return false
}

func (o *Order) PickupAddress() Address {
	return o.pickupAddress
}

func (o *Order) DeliveryAddress() Address {
	return o.deliveryAddress
}

// AddressFor returns the address whose pincode decides coverage for leg.
func (o *Order) AddressFor(leg logistics.Leg) Address {
	if leg == logistics.Delivery {
		return o.deliveryAddress
	}
	return o.pickupAddress
}

func (o *Order) Weight() kernel.Weight {
	return o.weight
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) IsExpress() bool {
	return o.isExpress
}

// History returns a copy of the status history, oldest first.
func (o *Order) History() []HistoryEntry {
	return append([]HistoryEntry{}, o.history...)
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Version is the optimistic concurrency token of the stored row.
func (o *Order) Version() int64 {
	return o.version
}

// MarkPersisted records the version written by a successful conditional update.
func (o *Order) MarkPersisted(version int64) {
	o.version = version
}

// AssignBranch moves a Placed order to AssignedToBranch.
//
// Returns:
//   - InvalidStatus error unless the order is exactly Placed
func (o *Order) AssignBranch(branchID kernel.UUID, branchName string, by Actor, at time.Time) error {
	if err := branchID.Validate(); err != nil {
		return err
	}
	if o.status != Placed {
		return errs.NewInvalidStatusError("branch assignment", o.status.String(), Placed.String())
	}

	o.branchID = &branchID
	o.appendHistory(AssignedToBranch, by, at, fmt.Sprintf("assigned to branch %s", branchName), false)
	return nil
}

// RequiredStatusFor is the status a logistics assignment on leg starts from.
func RequiredStatusFor(leg logistics.Leg) Status {
	if leg == logistics.Delivery {
		return Ready
	}
	return AssignedToBranch
}

// TargetStatusFor is the status a logistics assignment on leg ends in.
func TargetStatusFor(leg logistics.Leg) Status {
	if leg == logistics.Delivery {
		return AssignedToLogisticsDelivery
	}
	return AssignedToLogisticsPickup
}

// AssignLogistics records the partner for leg and advances the status.
// Pickup requires AssignedToBranch, delivery requires Ready.
func (o *Order) AssignLogistics(leg logistics.Leg, partnerID kernel.UUID, partnerName string, by Actor, at time.Time) error {
	if err := errors.Join(leg.Validate(), partnerID.Validate()); err != nil {
		return err
	}
	if required := RequiredStatusFor(leg); o.status != required {
		return errs.NewInvalidStatusError(leg.String()+" logistics assignment", o.status.String(), required.String())
	}

	if leg == logistics.Delivery {
		o.deliveryPartnerID = &partnerID
	} else {
		o.pickupPartnerID = &partnerID
	}
	o.appendHistory(TargetStatusFor(leg), by, at, fmt.Sprintf("assigned to %s for %s", partnerName, leg), false)
	return nil
}

// AssignStaff appends a staff member. The status does not change and no
// history entry is written.
//
// Returns:
//   - InvalidStatus unless the order is held by its branch (AssignedToBranch..Ready)
//   - AlreadyAssigned when the staff member is already on the order
func (o *Order) AssignStaff(staffID kernel.UUID, at time.Time) error {
	if err := staffID.Validate(); err != nil {
		return err
	}
	if !o.status.AcceptsStaff() {
		return errs.NewInvalidStatusError("staff assignment", o.status.String(),
			AssignedToBranch.String(), AssignedToLogisticsPickup.String(), Picked.String(),
			InProcess.String(), Ready.String())
	}
	if o.HasStaff(staffID) {
		return errs.NewAlreadyAssignedError(staffID.String(), o.id.String())
	}

	o.assignedStaff = append(o.assignedStaff, NewStaffAssignment(staffID, at.UTC()))
	return nil
}

// ChangeStatus writes a status transition the caller has already authorized.
// It only guards record invariants: a real status change, and a branch present
// exactly when the target needs one. override marks administrative corrections.
func (o *Order) ChangeStatus(target Status, by Actor, at time.Time, note string, override bool) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if target == o.status {
		return errs.NewInvalidTransitionError(o.status.String(), target.String(), by.Role.String(), "order is already in this status")
	}
	if err := o.checkBranchFor(target); err != nil {
		return errs.NewInvalidTransitionError(o.status.String(), target.String(), by.Role.String(), err.Error())
	}

	o.appendHistory(target, by, at, note, override)
	return nil
}

func (o *Order) appendHistory(status Status, by Actor, at time.Time, note string, override bool) {
	o.status = status
	o.history = append(o.history, NewHistoryEntry(status, by, at.UTC(), note, override))
}

func (o *Order) checkBranchFor(status Status) error {
	required, decided := status.RequiresBranch()
	if !decided {
		return nil
	}
	if required && o.branchID == nil {
		return errs.NewValueIsRequiredErrorWithCause("branch", fmt.Errorf("status %s needs a branch", status))
	}
	if !required && o.branchID != nil {
		return errs.NewValueIsInvalidErrorWithCause("branch", fmt.Errorf("status %s must not have a branch", status))
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(n Number) error {
	if n.IsZero() {
		return errs.NewValueIsRequiredError("number")
	}
	o.number = n
	return nil
}

func (o *Order) setCustomer(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	o.customerID = customerID
	return nil
}

func requireAddress(name string, a Address) error {
	if a.IsZero() {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func requireTime(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	return nil
}
