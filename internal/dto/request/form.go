package request

// UpdateFormRequest carries a single field write into a booking form session.
type UpdateFormRequest struct {
	Field string `json:"field" validate:"required,oneof=name email phone hostel numberPlate brandModel productPackage timeslot"`
	Value string `json:"value"`
}
