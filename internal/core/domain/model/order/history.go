package order

import (
	"time"

	"laundry/internal/core/domain/model/access"
	"laundry/internal/core/domain/model/kernel"
)

// Actor identifies who caused a change to the order.
type Actor struct {
	ID   kernel.UUID
	Role access.Role
}

// ActorFromScope derives the actor recorded in history from a request scope.
func ActorFromScope(scope access.Scope) Actor {
	return Actor{ID: scope.ActorID(), Role: scope.Role()}
}

// HistoryEntry is one line of the append-only status history.
type HistoryEntry struct {
	status   Status
	actor    Actor
	at       time.Time
	note     string
	override bool
}

// NewHistoryEntry is used by repositories when restoring stored history.
func NewHistoryEntry(status Status, actor Actor, at time.Time, note string, override bool) HistoryEntry {
	return HistoryEntry{status: status, actor: actor, at: at, note: note, override: override}
}

func (h HistoryEntry) Status() Status {
	return h.status
}

func (h HistoryEntry) Actor() Actor {
	return h.actor
}

func (h HistoryEntry) At() time.Time {
	return h.at
}

func (h HistoryEntry) Note() string {
	return h.note
}

// IsOverride marks administrative corrections that bypassed the transition table.
func (h HistoryEntry) IsOverride() bool {
	return h.override
}

// StaffAssignment records when a staff member was attached to the order.
type StaffAssignment struct {
	staffID    kernel.UUID
	assignedAt time.Time
}

func NewStaffAssignment(staffID kernel.UUID, assignedAt time.Time) StaffAssignment {
	return StaffAssignment{staffID: staffID, assignedAt: assignedAt}
}

func (a StaffAssignment) StaffID() kernel.UUID {
	return a.staffID
}

func (a StaffAssignment) AssignedAt() time.Time {
	return a.assignedAt
}
