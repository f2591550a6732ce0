package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"service-booking/internal/booking"

	"go.uber.org/zap"
)

// DiscordNotifier forwards booking requests to a Discord channel webhook as a
// formatted message, with the receipt attached when present. Discord expects
// multipart with a payload_json part plus optional file parts.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
	log        *zap.Logger
}

func NewDiscordNotifier(webhookURL string, log *zap.Logger) *DiscordNotifier {
	return &DiscordNotifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 15 * time.Second},
		log:        log.With(zap.String("notifier", "discord")),
	}
}

func (n *DiscordNotifier) Send(ctx context.Context, payload booking.Payload, receipt *booking.Attachment) error {
	if n.webhookURL == "" {
		n.log.Error("Discord webhook URL is not configured")
		return fmt.Errorf("discord webhook URL is not configured")
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	message := map[string]string{"content": FormatMessage(payload, receipt != nil)}
	messageJSON, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("marshal discord payload: %w", err)
	}

	if err := writer.WriteField("payload_json", string(messageJSON)); err != nil {
		return fmt.Errorf("write payload_json part: %w", err)
	}

	if receipt != nil {
		name := receipt.Name
		if name == "" {
			name = "receipt.jpg"
		}
		part, err := writer.CreateFormFile("file", name)
		if err != nil {
			return fmt.Errorf("create receipt part: %w", err)
		}
		if _, err := part.Write(receipt.Data); err != nil {
			return fmt.Errorf("write receipt part: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, body)
	if err != nil {
		return fmt.Errorf("build discord request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := n.client.Do(req)
	if err != nil {
		n.log.Error("Discord webhook request failed", zap.Error(err))
		return fmt.Errorf("send to discord: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Keep the upstream detail in the log; the caller gets a generic failure.
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		n.log.Error("Discord webhook returned non-success",
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(detail)),
		)
		return fmt.Errorf("discord webhook returned status %d", resp.StatusCode)
	}

	n.log.Info("Booking request forwarded to Discord",
		zap.String("name", payload.Name),
		zap.String("package", payload.ProductPackage),
		zap.Bool("receipt_attached", receipt != nil),
	)
	return nil
}

// FormatMessage builds the human-readable appointment message posted to the
// channel.
func FormatMessage(p booking.Payload, hasReceipt bool) string {
	receiptLine := "⚠️ **Receipt:** Not provided"
	if hasReceipt {
		receiptLine = "📄 **Receipt:** Attached below"
	}

	lines := []string{
		"==============================",
		"📋 **APPOINTMENT DETAILS**",
		fmt.Sprintf("👤 **Name:** %s", p.Name),
		fmt.Sprintf("📧 **Email:** %s", p.Email),
		fmt.Sprintf("📱 **Phone:** %s", p.Phone),
		fmt.Sprintf("🏢 **Hostel:** %s", p.Hostel),
		fmt.Sprintf("🚗 **Number Plate:** %s", p.NumberPlate),
		fmt.Sprintf("🔧 **Brand/Model:** %s", p.BrandModel),
		fmt.Sprintf("📦 **Package:** %s", p.ProductPackage),
		fmt.Sprintf("⏰ **Timeslot:** %s", p.Timeslot),
		receiptLine,
		"==============================",
	}
	return strings.Join(lines, "\n")
}
