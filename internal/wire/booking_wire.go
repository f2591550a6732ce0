package wire

import (
	"service-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(
	r chi.Router,
	formHandler *adaptor.FormHandler,
	webhookHandler *adaptor.WebhookHandler,
) {
	// The booking form is the public entry point; no auth
	r.Post("/api/form", formHandler.Start)
	r.Route("/api/form/{token}", func(r chi.Router) {
		r.Get("/", formHandler.GetState)
		r.Post("/fields", formHandler.UpdateField)
		r.Post("/next", formHandler.Next)
		r.Post("/back", formHandler.Back)
		r.Post("/receipt", formHandler.UploadReceipt)
		r.Post("/submit", formHandler.Submit)
		r.Post("/reset", formHandler.Reset)
	})

	// Direct webhook intake for clients that post a finished booking in one go
	r.Post("/api/webhook", webhookHandler.Receive)
}
