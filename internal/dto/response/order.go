package response

import (
	"time"

	"service-booking/internal/data/entity"

	"github.com/shopspring/decimal"
)

type OrderResponse struct {
	ID            int64                `json:"so_id"`
	CustomerID    int64                `json:"s_customer_id"`
	HostelID      int64                `json:"s_hostel_id"`
	PackageID     int64                `json:"s_package_id"`
	UserID        string               `json:"s_users_id"`
	TimeSlot      string               `json:"so_time_slot"`
	WorkStatus    entity.WorkStatus    `json:"so_work_status"`
	PaymentStatus entity.PaymentStatus `json:"so_payment_status"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

type OrderExtendedResponse struct {
	OrderResponse
	Customer CustomerResponse     `json:"customer"`
	Package  PackageResponse      `json:"package"`
	Hostel   HostelResponse       `json:"hostel"`
	User     AssignedUserResponse `json:"user"`
}

type AssignedUserResponse struct {
	ID         string          `json:"su_id"`
	Email      string          `json:"su_email"`
	Type       entity.UserType `json:"su_type"`
	IsApproved bool            `json:"su_is_approve"`
}

type PackageResponse struct {
	ID          int64           `json:"sp_id"`
	Name        string          `json:"sp_name"`
	Code        string          `json:"sp_code"`
	Price       decimal.Decimal `json:"sp_price"`
	Description string          `json:"sp_description"`
}

type HostelResponse struct {
	ID   int64  `json:"sh_id"`
	Name string `json:"sh_name"`
}

// Helper converters
func OrderToResponse(order *entity.ServiceOrder) OrderResponse {
	return OrderResponse{
		ID:            order.ID,
		CustomerID:    order.CustomerID,
		HostelID:      order.HostelID,
		PackageID:     order.PackageID,
		UserID:        order.UserID.String(),
		TimeSlot:      order.TimeSlot,
		WorkStatus:    order.WorkStatus,
		PaymentStatus: order.PaymentStatus,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
}

func OrderExtendedToResponse(ext *entity.ServiceOrderExtended) OrderExtendedResponse {
	return OrderExtendedResponse{
		OrderResponse: OrderToResponse(&ext.ServiceOrder),
		Customer:      CustomerToResponse(&ext.Customer),
		Package:       PackageToResponse(&ext.Package),
		Hostel:        HostelToResponse(&ext.Hostel),
		User: AssignedUserResponse{
			ID:         ext.AssignedUser.ID.String(),
			Email:      ext.AssignedUser.Email,
			Type:       ext.AssignedUser.Type,
			IsApproved: ext.AssignedUser.IsApproved,
		},
	}
}

func OrdersExtendedToResponse(exts []*entity.ServiceOrderExtended) []OrderExtendedResponse {
	out := make([]OrderExtendedResponse, len(exts))
	for i, ext := range exts {
		out[i] = OrderExtendedToResponse(ext)
	}
	return out
}

func PackageToResponse(pkg *entity.Package) PackageResponse {
	return PackageResponse{
		ID:          pkg.ID,
		Name:        pkg.Name,
		Code:        pkg.Code,
		Price:       pkg.Price,
		Description: pkg.Description,
	}
}

func HostelToResponse(hostel *entity.Hostel) HostelResponse {
	return HostelResponse{
		ID:   hostel.ID,
		Name: hostel.Name,
	}
}
