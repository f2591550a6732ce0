package response

import (
	"service-booking/internal/booking"
)

type FormStateResponse struct {
	Token       string            `json:"token,omitempty"`
	Step        int               `json:"step"`
	StepName    string            `json:"step_name"`
	Data        booking.FormData  `json:"data"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
	SubmitError string            `json:"submit_error,omitempty"`
	Busy        bool              `json:"busy"`
	HasReceipt  bool              `json:"has_receipt"`
}

func FormToState(token string, form *booking.Form) FormStateResponse {
	data := form.Data()
	step := form.Step()

	return FormStateResponse{
		Token:       token,
		Step:        int(step),
		StepName:    step.String(),
		Data:        data,
		FieldErrors: form.FieldErrors(),
		SubmitError: form.SubmitError(),
		Busy:        form.Busy(),
		HasReceipt:  data.Receipt != nil,
	}
}
