package entity

import (
	"time"

	"github.com/google/uuid"
)

// ServiceOrder links a customer, package, hostel and assigned staff user.
// ID and timestamps are assigned by the store, never by the caller.
type ServiceOrder struct {
	ID            int64         `db:"so_id"`
	CustomerID    int64         `db:"s_customer_id"`
	HostelID      int64         `db:"s_hostel_id"`
	PackageID     int64         `db:"s_package_id"`
	UserID        uuid.UUID     `db:"s_users_id"`
	TimeSlot      string        `db:"so_time_slot"`
	WorkStatus    WorkStatus    `db:"so_work_status"`
	PaymentStatus PaymentStatus `db:"so_payment_status"`
	CreatedAt     time.Time     `db:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at"`
}

// ServiceOrderPatch carries a partial update. Nil fields are left untouched
// by the store, so an update can never clobber a column with a zero value.
type ServiceOrderPatch struct {
	WorkStatus    *WorkStatus
	PaymentStatus *PaymentStatus
	TimeSlot      *string
}

func (p ServiceOrderPatch) IsEmpty() bool {
	return p.WorkStatus == nil && p.PaymentStatus == nil && p.TimeSlot == nil
}

// ServiceOrderExtended is a read-only projection of an order plus snapshots of
// its referenced rows, rebuilt by a joined read on every fetch. It reflects the
// referenced entities' current state, not their state at order creation.
type ServiceOrderExtended struct {
	ServiceOrder
	Customer     Customer
	Package      Package
	Hostel       Hostel
	AssignedUser UserSnapshot
}

// UserSnapshot is the subset of a service user exposed on extended orders.
type UserSnapshot struct {
	ID         uuid.UUID `db:"su_id"`
	Email      string    `db:"su_email"`
	Type       UserType  `db:"su_type"`
	IsApproved bool      `db:"su_is_approve"`
}
