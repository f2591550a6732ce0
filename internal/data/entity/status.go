package entity

// PaymentStatus represents the payment status of a service order.
// Values match the store columns, so they stay lowercase.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approve"
	PaymentStatusDeclined PaymentStatus = "decline"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusApproved, PaymentStatusDeclined:
		return true
	}
	return false
}

func PaymentStatusValues() []PaymentStatus {
	return []PaymentStatus{PaymentStatusPending, PaymentStatusApproved, PaymentStatusDeclined}
}

// WorkStatus represents the work progress of a service order.
// Varies independently from PaymentStatus.
type WorkStatus string

const (
	WorkStatusWaiting    WorkStatus = "waiting"
	WorkStatusInProgress WorkStatus = "in progress"
	WorkStatusCompleted  WorkStatus = "completed"
)

func (s WorkStatus) IsValid() bool {
	switch s {
	case WorkStatusWaiting, WorkStatusInProgress, WorkStatusCompleted:
		return true
	}
	return false
}

func WorkStatusValues() []WorkStatus {
	return []WorkStatus{WorkStatusWaiting, WorkStatusInProgress, WorkStatusCompleted}
}
