package request

type CreateOrderRequest struct {
	CustomerID int64  `json:"s_customer_id" validate:"required,min=1"`
	HostelID   int64  `json:"s_hostel_id" validate:"required,min=1"`
	PackageID  int64  `json:"s_package_id" validate:"required,min=1"`
	UserID     string `json:"s_users_id" validate:"required,uuid4"`
	TimeSlot   string `json:"so_time_slot" validate:"required"`
	// Optional; default to waiting/pending when omitted.
	WorkStatus    *string `json:"so_work_status,omitempty" validate:"omitempty,oneof=waiting 'in progress' completed"`
	PaymentStatus *string `json:"so_payment_status,omitempty" validate:"omitempty,oneof=pending approve decline"`
}

// UpdateOrderRequest is strictly partial: absent fields stay untouched.
type UpdateOrderRequest struct {
	WorkStatus    *string `json:"so_work_status,omitempty" validate:"omitempty,oneof=waiting 'in progress' completed"`
	PaymentStatus *string `json:"so_payment_status,omitempty" validate:"omitempty,oneof=pending approve decline"`
	TimeSlot      *string `json:"so_time_slot,omitempty"`
}
