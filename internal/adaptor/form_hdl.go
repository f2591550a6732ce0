package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"service-booking/internal/booking"
	"service-booking/internal/dto/request"
	"service-booking/internal/dto/response"
	"service-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// receipts above this size are rejected before buffering
const maxReceiptSize = 8 << 20

type FormHandler struct {
	forms    *booking.Manager
	notifier booking.Notifier
	log      *zap.Logger
}

func NewFormHandler(forms *booking.Manager, notifier booking.Notifier, log *zap.Logger) *FormHandler {
	return &FormHandler{
		forms:    forms,
		notifier: notifier,
		log:      log,
	}
}

// Start handles POST /api/form
func (h *FormHandler) Start(w http.ResponseWriter, r *http.Request) {
	token, form := h.forms.Start()
	utils.ResponseCreated(w, "Form session started", response.FormToState(token, form))
}

// GetState handles GET /api/form/{token}
func (h *FormHandler) GetState(w http.ResponseWriter, r *http.Request) {
	form, ok := h.lookup(w, r)
	if !ok {
		return
	}

	utils.ResponseSuccess(w, "Form state retrieved", response.FormToState("", form))
}

// UpdateField handles POST /api/form/{token}/fields
func (h *FormHandler) UpdateField(w http.ResponseWriter, r *http.Request) {
	form, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req request.UpdateFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := form.UpdateField(req.Field, req.Value); err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	utils.ResponseSuccess(w, "Field updated", response.FormToState("", form))
}

// Next handles POST /api/form/{token}/next
func (h *FormHandler) Next(w http.ResponseWriter, r *http.Request) {
	form, ok := h.lookup(w, r)
	if !ok {
		return
	}

	if !form.Next() {
		if errs := form.FieldErrors(); len(errs) > 0 {
			utils.ResponseBadRequest(w, "Validation failed", errs)
			return
		}
		utils.ResponseBadRequest(w, "Cannot advance step", nil)
		return
	}

	utils.ResponseSuccess(w, "Advanced to next step", response.FormToState("", form))
}

// Back handles POST /api/form/{token}/back
func (h *FormHandler) Back(w http.ResponseWriter, r *http.Request) {
	form, ok := h.lookup(w, r)
	if !ok {
		return
	}

	if !form.Back() {
		utils.ResponseBadRequest(w, "Already on the first step", nil)
		return
	}

	utils.ResponseSuccess(w, "Returned to previous step", response.FormToState("", form))
}

// UploadReceipt handles POST /api/form/{token}/receipt as multipart
func (h *FormHandler) UploadReceipt(w http.ResponseWriter, r *http.Request) {
	form, ok := h.lookup(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxReceiptSize); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart body", nil)
		return
	}

	file, header, err := r.FormFile("receipt")
	if err != nil {
		utils.ResponseBadRequest(w, "Missing receipt file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxReceiptSize))
	if err != nil {
		h.log.Error("Failed to read receipt upload", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to read receipt")
		return
	}

	form.AttachReceipt(&booking.Attachment{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})

	utils.ResponseSuccess(w, "Receipt attached", response.FormToState("", form))
}

// Submit handles POST /api/form/{token}/submit
func (h *FormHandler) Submit(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	form, ok := h.forms.Get(token)
	if !ok {
		utils.ResponseNotFound(w, "Form session not found")
		return
	}

	if err := form.Submit(r.Context(), h.notifier); err != nil {
		switch {
		case errors.Is(err, booking.ErrSubmitInFlight):
			utils.ResponseJSON(w, http.StatusConflict, false, "Submission already in progress", nil, nil)

		case errors.Is(err, booking.ErrNotOnFinalStep):
			utils.ResponseBadRequest(w, err.Error(), nil)

		case strings.Contains(err.Error(), "validation failed"):
			utils.ResponseBadRequest(w, err.Error(), form.FieldErrors())

		default:
			h.log.Error("Booking submission failed", zap.Error(err), zap.String("form_token", token))
			utils.ResponseJSON(w, http.StatusBadGateway, false,
				form.SubmitError(), response.FormToState("", form), nil)
		}
		return
	}

	h.forms.Remove(token)
	utils.ResponseSuccess(w, "Booking request submitted", nil)
}

// Reset handles POST /api/form/{token}/reset
func (h *FormHandler) Reset(w http.ResponseWriter, r *http.Request) {
	form, ok := h.lookup(w, r)
	if !ok {
		return
	}

	form.Reset()
	utils.ResponseSuccess(w, "Form reset", response.FormToState("", form))
}

func (h *FormHandler) lookup(w http.ResponseWriter, r *http.Request) (*booking.Form, bool) {
	token := chi.URLParam(r, "token")
	form, ok := h.forms.Get(token)
	if !ok {
		utils.ResponseNotFound(w, "Form session not found")
		return nil, false
	}
	return form, true
}
