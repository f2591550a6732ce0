package request

// WebhookRequest is the JSON body accepted by POST /api/webhook. The same
// fields can arrive as multipart form values with a binary receipt part
// instead of the base64 string.
type WebhookRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Hostel         string `json:"hostel"`
	NumberPlate    string `json:"numberPlate"`
	BrandModel     string `json:"brandModel"`
	ProductPackage string `json:"productPackage"`
	Timeslot       string `json:"timeslot"`
	// Optional base64 receipt, with or without a data: prefix.
	Receipt     string `json:"receipt,omitempty"`
	ReceiptName string `json:"receiptName,omitempty"`
	ReceiptType string `json:"receiptType,omitempty"`
}

// HasRequiredFields reports whether all eight booking fields are present.
func (r *WebhookRequest) HasRequiredFields() bool {
	return r.Name != "" && r.Email != "" && r.Phone != "" && r.Hostel != "" &&
		r.NumberPlate != "" && r.BrandModel != "" && r.ProductPackage != "" && r.Timeslot != ""
}
