package request

type CreateCustomerRequest struct {
	Name        string `json:"sc_name" validate:"required,min=2,max=100"`
	Email       string `json:"sc_email" validate:"required,email"`
	Phone       string `json:"sc_phone" validate:"required,min=7,max=15"`
	NumberPlate string `json:"sc_number_plate" validate:"required"`
	BrandModel  string `json:"sc_brand_model" validate:"required"`
}
