package response

import (
	"time"

	"service-booking/internal/data/entity"
)

type CustomerResponse struct {
	ID          int64     `json:"sc_id"`
	Name        string    `json:"sc_name"`
	Email       string    `json:"sc_email"`
	Phone       string    `json:"sc_phone"`
	NumberPlate string    `json:"sc_number_plate"`
	BrandModel  string    `json:"sc_brand_model"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}

func CustomerToResponse(customer *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          customer.ID,
		Name:        customer.Name,
		Email:       customer.Email,
		Phone:       customer.Phone,
		NumberPlate: customer.NumberPlate,
		BrandModel:  customer.BrandModel,
		CreatedAt:   customer.CreatedAt,
	}
}

func CustomersToResponse(customers []*entity.Customer) []CustomerResponse {
	out := make([]CustomerResponse, len(customers))
	for i, c := range customers {
		out[i] = CustomerToResponse(c)
	}
	return out
}
