package adaptor

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"service-booking/internal/booking"
	"service-booking/internal/dto/request"
	"service-booking/pkg/utils"

	"go.uber.org/zap"
)

type WebhookHandler struct {
	notifier booking.Notifier
	log      *zap.Logger
}

func NewWebhookHandler(notifier booking.Notifier, log *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		notifier: notifier,
		log:      log,
	}
}

// Receive handles POST /api/webhook. The body is either JSON with an
// optional base64 receipt, or multipart form data with a binary receipt
// part.
func (h *WebhookHandler) Receive(w http.ResponseWriter, r *http.Request) {
	var (
		req     request.WebhookRequest
		receipt *booking.Attachment
	)

	contentType := r.Header.Get("Content-Type")

	switch {
	case strings.HasPrefix(contentType, "multipart/form-data"):
		parsed, att, err := h.parseMultipart(r)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid multipart body", nil)
			return
		}
		req = parsed
		receipt = att

	default:
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.ResponseBadRequest(w, "Invalid request body", nil)
			return
		}
		if req.Receipt != "" {
			att, err := decodeReceipt(req.Receipt, req.ReceiptName, req.ReceiptType)
			if err != nil {
				utils.ResponseBadRequest(w, "Invalid receipt encoding", nil)
				return
			}
			receipt = att
		}
	}

	if !req.HasRequiredFields() {
		utils.ResponseBadRequest(w, "Missing required fields", nil)
		return
	}

	payload := booking.Payload{
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Hostel:         req.Hostel,
		NumberPlate:    req.NumberPlate,
		BrandModel:     req.BrandModel,
		ProductPackage: req.ProductPackage,
		Timeslot:       req.Timeslot,
	}

	if err := h.notifier.Send(r.Context(), payload, receipt); err != nil {
		h.log.Error("Failed to forward booking request", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to process request")
		return
	}

	utils.ResponseSuccess(w, "Request received", nil)
}

func (h *WebhookHandler) parseMultipart(r *http.Request) (request.WebhookRequest, *booking.Attachment, error) {
	if err := r.ParseMultipartForm(maxReceiptSize); err != nil {
		return request.WebhookRequest{}, nil, err
	}

	req := request.WebhookRequest{
		Name:           r.FormValue("name"),
		Email:          r.FormValue("email"),
		Phone:          r.FormValue("phone"),
		Hostel:         r.FormValue("hostel"),
		NumberPlate:    r.FormValue("numberPlate"),
		BrandModel:     r.FormValue("brandModel"),
		ProductPackage: r.FormValue("productPackage"),
		Timeslot:       r.FormValue("timeslot"),
	}

	file, header, err := r.FormFile("receipt")
	if err == http.ErrMissingFile {
		return req, nil, nil
	}
	if err != nil {
		return request.WebhookRequest{}, nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxReceiptSize))
	if err != nil {
		return request.WebhookRequest{}, nil, err
	}

	return req, &booking.Attachment{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// decodeReceipt accepts raw base64 or a full data URL. The base64 alphabet
// has no comma, so anything before the first comma is header, not payload.
func decodeReceipt(encoded, name, contentType string) (*booking.Attachment, error) {
	if idx := strings.Index(encoded, ","); idx != -1 {
		header := encoded[:idx]
		encoded = encoded[idx+1:]

		if contentType == "" && strings.HasPrefix(header, "data:") {
			header = strings.TrimPrefix(header, "data:")
			if semi := strings.Index(header, ";"); semi != -1 {
				contentType = header[:semi]
			}
		}
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		// Some senders strip the padding.
		data, err = base64.RawStdEncoding.DecodeString(encoded)
	}
	if err != nil {
		return nil, err
	}

	return &booking.Attachment{
		Name:        name,
		ContentType: contentType,
		Data:        data,
	}, nil
}
