package adaptor

import (
	"service-booking/internal/booking"
	"service-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	Order    *OrderHandler
	Catalog  *CatalogHandler
	Customer *CustomerHandler
	Form     *FormHandler
	Webhook  *WebhookHandler
}

func NewHandler(service *usecase.Service, forms *booking.Manager, notifier booking.Notifier, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		Order:    NewOrderHandler(service.Order, log),
		Catalog:  NewCatalogHandler(service.Catalog, log),
		Customer: NewCustomerHandler(service.Customer, log),
		Form:     NewFormHandler(forms, notifier, log),
		Webhook:  NewWebhookHandler(notifier, log),
	}
}
