package adaptor

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"service-booking/internal/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type captureNotifier struct {
	payloads []booking.Payload
	receipts []*booking.Attachment
	err      error
}

func (n *captureNotifier) Send(_ context.Context, payload booking.Payload, receipt *booking.Attachment) error {
	n.payloads = append(n.payloads, payload)
	n.receipts = append(n.receipts, receipt)
	return n.err
}

func validWebhookBody() map[string]any {
	return map[string]any{
		"name":           "Ali Hassan",
		"email":          "ali@example.com",
		"phone":          "0123456789",
		"hostel":         "Hostel A",
		"numberPlate":    "WXY 1234",
		"brandModel":     "Honda Civic",
		"productPackage": "daily",
		"timeslot":       "2024-03-04T10:00",
	}
}

func postJSON(t *testing.T, h *WebhookHandler, body any) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/webhook", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Receive(rec, req)
	return rec
}

func TestWebhookAcceptsJSONBody(t *testing.T) {
	notifier := &captureNotifier{}
	h := NewWebhookHandler(notifier, zap.NewNop())

	rec := postJSON(t, h, validWebhookBody())

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, notifier.payloads, 1)
	assert.Equal(t, "Ali Hassan", notifier.payloads[0].Name)
	assert.Equal(t, "daily", notifier.payloads[0].ProductPackage)
	assert.Nil(t, notifier.receipts[0])
}

func TestWebhookRejectsMissingFields(t *testing.T) {
	notifier := &captureNotifier{}
	h := NewWebhookHandler(notifier, zap.NewNop())

	body := validWebhookBody()
	delete(body, "numberPlate")

	rec := postJSON(t, h, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing required fields")
	assert.Empty(t, notifier.payloads)
}

func TestWebhookDecodesBase64Receipt(t *testing.T) {
	notifier := &captureNotifier{}
	h := NewWebhookHandler(notifier, zap.NewNop())

	body := validWebhookBody()
	body["receipt"] = base64.StdEncoding.EncodeToString([]byte("receipt-bytes"))
	body["receiptName"] = "receipt.pdf"
	body["receiptType"] = "application/pdf"

	rec := postJSON(t, h, body)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, notifier.receipts, 1)
	require.NotNil(t, notifier.receipts[0])
	assert.Equal(t, "receipt.pdf", notifier.receipts[0].Name)
	assert.Equal(t, "application/pdf", notifier.receipts[0].ContentType)
	assert.Equal(t, []byte("receipt-bytes"), notifier.receipts[0].Data)
}

func TestWebhookDecodesDataURLReceipt(t *testing.T) {
	notifier := &captureNotifier{}
	h := NewWebhookHandler(notifier, zap.NewNop())

	body := validWebhookBody()
	body["receipt"] = "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte{0x89, 0x50})

	rec := postJSON(t, h, body)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, notifier.receipts[0])
	assert.Equal(t, "image/png", notifier.receipts[0].ContentType)
	assert.Equal(t, []byte{0x89, 0x50}, notifier.receipts[0].Data)
}

func TestWebhookDecodesUnpaddedReceipt(t *testing.T) {
	notifier := &captureNotifier{}
	h := NewWebhookHandler(notifier, zap.NewNop())

	body := validWebhookBody()
	body["receipt"] = base64.RawStdEncoding.EncodeToString([]byte("receipt-bytes"))

	rec := postJSON(t, h, body)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, notifier.receipts[0])
	assert.Equal(t, []byte("receipt-bytes"), notifier.receipts[0].Data)
}

func TestWebhookDecodesCommaPrefixedReceipt(t *testing.T) {
	notifier := &captureNotifier{}
	h := NewWebhookHandler(notifier, zap.NewNop())

	body := validWebhookBody()
	body["receipt"] = "base64," + base64.StdEncoding.EncodeToString([]byte{0x89, 0x50})

	rec := postJSON(t, h, body)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, notifier.receipts[0])
	assert.Equal(t, []byte{0x89, 0x50}, notifier.receipts[0].Data)
}

func TestWebhookRejectsBadBase64(t *testing.T) {
	notifier := &captureNotifier{}
	h := NewWebhookHandler(notifier, zap.NewNop())

	body := validWebhookBody()
	body["receipt"] = "%%%not-base64%%%"

	rec := postJSON(t, h, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, notifier.payloads)
}

func TestWebhookAcceptsMultipartWithReceipt(t *testing.T) {
	notifier := &captureNotifier{}
	h := NewWebhookHandler(notifier, zap.NewNop())

	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	for field, value := range validWebhookBody() {
		require.NoError(t, writer.WriteField(field, value.(string)))
	}
	part, err := writer.CreateFormFile("receipt", "receipt.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/webhook", buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	h.Receive(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, notifier.payloads, 1)
	require.NotNil(t, notifier.receipts[0])
	assert.Equal(t, "receipt.jpg", notifier.receipts[0].Name)
	assert.Equal(t, []byte("jpeg-bytes"), notifier.receipts[0].Data)
}

func TestWebhookHidesNotifierFailureDetail(t *testing.T) {
	notifier := &captureNotifier{err: errors.New("discord webhook returned status 500")}
	h := NewWebhookHandler(notifier, zap.NewNop())

	rec := postJSON(t, h, validWebhookBody())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to process request")
	assert.NotContains(t, rec.Body.String(), "discord")
}
