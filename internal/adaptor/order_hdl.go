package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"service-booking/internal/data/entity"
	"service-booking/internal/dto/request"
	"service-booking/internal/usecase"
	"service-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /api/orders
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateOrderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	response, err := h.service.CreateOrder(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create order")
		return
	}

	utils.ResponseCreated(w, "Order created successfully", response)
}

// List handles GET /api/orders with optional payment_status / work_status
// filters. The filters are exclusive; payment_status wins when both appear.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	paymentStatus := r.URL.Query().Get("payment_status")
	workStatus := r.URL.Query().Get("work_status")

	switch {
	case paymentStatus != "":
		orders, err := h.service.GetOrdersByPaymentStatus(r.Context(), entity.PaymentStatus(paymentStatus))
		if err != nil {
			h.handleServiceError(w, err, "list orders")
			return
		}
		utils.ResponseSuccess(w, "Orders retrieved successfully", orders)

	case workStatus != "":
		orders, err := h.service.GetOrdersByWorkStatus(r.Context(), entity.WorkStatus(workStatus))
		if err != nil {
			h.handleServiceError(w, err, "list orders")
			return
		}
		utils.ResponseSuccess(w, "Orders retrieved successfully", orders)

	default:
		orders, err := h.service.GetOrders(r.Context())
		if err != nil {
			h.handleServiceError(w, err, "list orders")
			return
		}
		utils.ResponseSuccess(w, "Orders retrieved successfully", orders)
	}
}

// GetByID handles GET /api/orders/{id}
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid order ID", nil)
		return
	}

	response, err := h.service.GetOrderByID(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "get order")
		return
	}

	utils.ResponseSuccess(w, "Order retrieved successfully", response)
}

// Update handles PATCH /api/orders/{id}
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid order ID", nil)
		return
	}

	var req request.UpdateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	response, err := h.service.UpdateOrder(r.Context(), id, &req)
	if err != nil {
		h.handleServiceError(w, err, "update order")
		return
	}

	utils.ResponseSuccess(w, "Order updated successfully", response)
}

// Delete handles DELETE /api/orders/{id}
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid order ID", nil)
		return
	}

	deleted, err := h.service.DeleteOrder(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, err, "delete order")
		return
	}
	if !deleted {
		utils.ResponseNotFound(w, "Order not found")
		return
	}

	utils.ResponseSuccess(w, "Order deleted successfully", nil)
}

// handleServiceError maps service errors to HTTP responses
func (h *OrderHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
