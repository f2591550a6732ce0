package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"service-booking/pkg/utils"
)

// Step is a position in the fixed three-step booking sequence.
type Step int

const (
	StepUserDetails        Step = 1
	StepVehicleDetails     Step = 2
	StepAppointmentDetails Step = 3
)

func (s Step) String() string {
	switch s {
	case StepUserDetails:
		return "user_details"
	case StepVehicleDetails:
		return "vehicle_details"
	case StepAppointmentDetails:
		return "appointment_details"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

var (
	ErrSubmitInFlight = errors.New("submission already in progress")
	ErrNotOnFinalStep = errors.New("submission is only allowed on the appointment step")
	ErrUnknownField   = errors.New("unknown form field")
)

// Attachment is an optional uploaded receipt. It never travels inside the
// JSON payload; the notifier transports it separately.
type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}

// FormData accumulates the fields collected across the three steps.
type FormData struct {
	Name           string      `json:"name"`
	Email          string      `json:"email"`
	Phone          string      `json:"phone"`
	Hostel         string      `json:"hostel"`
	NumberPlate    string      `json:"numberPlate"`
	BrandModel     string      `json:"brandModel"`
	ProductPackage string      `json:"productPackage"`
	Timeslot       string      `json:"timeslot"`
	Receipt        *Attachment `json:"-"`
}

// Payload is the single outbound notification body built on submit. The
// receipt is deliberately excluded.
type Payload struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Hostel         string `json:"hostel"`
	NumberPlate    string `json:"numberPlate"`
	BrandModel     string `json:"brandModel"`
	ProductPackage string `json:"productPackage"`
	Timeslot       string `json:"timeslot"`
}

// Notifier delivers a completed booking request to the outside world.
type Notifier interface {
	Send(ctx context.Context, payload Payload, receipt *Attachment) error
}

// Per-step validation subjects. Field error keys come from the json tags.
type userDetails struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

type vehicleDetails struct {
	NumberPlate    string `json:"numberPlate" validate:"required"`
	BrandModel     string `json:"brandModel" validate:"required"`
	ProductPackage string `json:"productPackage" validate:"required,oneof=daily performance"`
}

type appointmentDetails struct {
	Hostel   string `json:"hostel" validate:"required"`
	Timeslot string `json:"timeslot" validate:"required"`
}

// Form drives one booking session through the step sequence. A failed step
// validation blocks advancement and fills FieldErrors without clearing any
// entered values. Submit is single-flight per form.
type Form struct {
	mu          sync.Mutex
	step        Step
	data        FormData
	fieldErrors map[string]string
	submitErr   string
	busy        bool
}

func NewForm() *Form {
	return &Form{step: StepUserDetails}
}

func (f *Form) Step() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

func (f *Form) Data() FormData {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data
}

func (f *Form) FieldErrors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.fieldErrors))
	for k, v := range f.fieldErrors {
		out[k] = v
	}
	return out
}

func (f *Form) SubmitError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitErr
}

func (f *Form) Busy() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.busy
}

// UpdateField writes one field by its wire name. Values are kept verbatim;
// trimming happens at validation time only.
func (f *Form) UpdateField(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case "name":
		f.data.Name = value
	case "email":
		f.data.Email = value
	case "phone":
		f.data.Phone = value
	case "hostel":
		f.data.Hostel = value
	case "numberPlate":
		f.data.NumberPlate = value
	case "brandModel":
		f.data.BrandModel = value
	case "productPackage":
		f.data.ProductPackage = value
	case "timeslot":
		f.data.Timeslot = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

func (f *Form) AttachReceipt(receipt *Attachment) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data.Receipt = receipt
}

// Next validates the current step and advances on success. It returns whether
// the form advanced; on failure the field-keyed errors are available via
// FieldErrors.
func (f *Form) Next() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step >= StepAppointmentDetails {
		return false
	}

	if errs := f.validateStep(f.step); len(errs) > 0 {
		f.fieldErrors = errs
		return false
	}

	f.fieldErrors = nil
	f.step++
	return true
}

// Back returns to the previous step. Step 1 has no predecessor.
func (f *Form) Back() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step <= StepUserDetails {
		return false
	}
	f.step--
	f.fieldErrors = nil
	return true
}

// Submit validates the final step, builds the payload from the accumulated
// fields and hands it to the notifier. Success resets the whole form; failure
// keeps every entered value so the user can retry.
func (f *Form) Submit(ctx context.Context, notifier Notifier) error {
	f.mu.Lock()
	if f.busy {
		f.mu.Unlock()
		return ErrSubmitInFlight
	}
	if f.step != StepAppointmentDetails {
		f.mu.Unlock()
		return ErrNotOnFinalStep
	}
	if errs := f.validateStep(StepAppointmentDetails); len(errs) > 0 {
		f.fieldErrors = errs
		f.mu.Unlock()
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	f.busy = true
	f.fieldErrors = nil
	f.submitErr = ""
	payload := Payload{
		Name:           f.data.Name,
		Email:          f.data.Email,
		Phone:          f.data.Phone,
		Hostel:         f.data.Hostel,
		NumberPlate:    f.data.NumberPlate,
		BrandModel:     f.data.BrandModel,
		ProductPackage: f.data.ProductPackage,
		Timeslot:       f.data.Timeslot,
	}
	receipt := f.data.Receipt
	f.mu.Unlock()

	err := notifier.Send(ctx, payload, receipt)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.busy = false

	if err != nil {
		f.submitErr = "Failed to submit request. Please try again."
		return fmt.Errorf("send booking request: %w", err)
	}

	f.reset()
	return nil
}

// Reset clears all fields and returns to step 1.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset()
}

func (f *Form) reset() {
	f.data = FormData{}
	f.step = StepUserDetails
	f.fieldErrors = nil
	f.submitErr = ""
}

func (f *Form) validateStep(step Step) map[string]string {
	switch step {
	case StepUserDetails:
		return utils.ValidateStruct(userDetails{
			Name:  strings.TrimSpace(f.data.Name),
			Email: strings.TrimSpace(f.data.Email),
			Phone: strings.TrimSpace(f.data.Phone),
		})
	case StepVehicleDetails:
		return utils.ValidateStruct(vehicleDetails{
			NumberPlate:    strings.TrimSpace(f.data.NumberPlate),
			BrandModel:     strings.TrimSpace(f.data.BrandModel),
			ProductPackage: f.data.ProductPackage,
		})
	case StepAppointmentDetails:
		return utils.ValidateStruct(appointmentDetails{
			Hostel:   strings.TrimSpace(f.data.Hostel),
			Timeslot: strings.TrimSpace(f.data.Timeslot),
		})
	}
	return nil
}
