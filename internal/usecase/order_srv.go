package usecase

import (
	"context"
	"fmt"

	"service-booking/internal/data/entity"
	"service-booking/internal/data/repository"
	"service-booking/internal/dto/request"
	"service-booking/internal/dto/response"
	"service-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	CreateOrder(ctx context.Context, req *request.CreateOrderRequest) (*response.OrderResponse, error)
	GetOrders(ctx context.Context) ([]response.OrderExtendedResponse, error)
	GetOrderByID(ctx context.Context, id int64) (*response.OrderExtendedResponse, error)
	GetOrdersByPaymentStatus(ctx context.Context, status entity.PaymentStatus) ([]response.OrderExtendedResponse, error)
	GetOrdersByWorkStatus(ctx context.Context, status entity.WorkStatus) ([]response.OrderExtendedResponse, error)
	UpdateOrder(ctx context.Context, id int64, req *request.UpdateOrderRequest) (*response.OrderResponse, error)
	DeleteOrder(ctx context.Context, id int64) (bool, error)
}

type orderService struct {
	orders repository.OrderRepository
	log    *zap.Logger
}

func NewOrderService(orders repository.OrderRepository, log *zap.Logger) OrderService {
	return &orderService{
		orders: orders,
		log:    log.With(zap.String("service", "order")),
	}
}

func (s *orderService) CreateOrder(ctx context.Context, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create order validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", req.UserID, err)
	}

	// Statuses default to waiting/pending when the caller omits them.
	workStatus := entity.WorkStatusWaiting
	if req.WorkStatus != nil {
		workStatus = entity.WorkStatus(*req.WorkStatus)
	}
	paymentStatus := entity.PaymentStatusPending
	if req.PaymentStatus != nil {
		paymentStatus = entity.PaymentStatus(*req.PaymentStatus)
	}

	order := &entity.ServiceOrder{
		CustomerID:    req.CustomerID,
		HostelID:      req.HostelID,
		PackageID:     req.PackageID,
		UserID:        userID,
		TimeSlot:      req.TimeSlot,
		WorkStatus:    workStatus,
		PaymentStatus: paymentStatus,
	}

	created, err := s.orders.Create(ctx, order)
	if err != nil {
		s.log.Error("Failed to create order",
			zap.Error(err),
			zap.Int64("customer_id", req.CustomerID),
		)
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.log.Info("Order created",
		zap.Int64("order_id", created.ID),
		zap.Int64("customer_id", created.CustomerID),
		zap.String("work_status", string(created.WorkStatus)),
		zap.String("payment_status", string(created.PaymentStatus)),
	)

	resp := response.OrderToResponse(created)
	return &resp, nil
}

func (s *orderService) GetOrders(ctx context.Context) ([]response.OrderExtendedResponse, error) {
	orders, err := s.orders.FindAllExtended(ctx)
	if err != nil {
		s.log.Error("Failed to get orders", zap.Error(err))
		return nil, fmt.Errorf("get orders: %w", err)
	}

	return response.OrdersExtendedToResponse(orders), nil
}

func (s *orderService) GetOrderByID(ctx context.Context, id int64) (*response.OrderExtendedResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid order ID %d", id)
	}

	ext, err := s.orders.FindExtendedByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get order by ID",
			zap.Error(err),
			zap.Int64("order_id", id),
		)
		return nil, fmt.Errorf("get order by ID: %w", err)
	}
	if ext == nil {
		return nil, fmt.Errorf("order %d not found", id)
	}

	resp := response.OrderExtendedToResponse(ext)
	return &resp, nil
}

func (s *orderService) GetOrdersByPaymentStatus(ctx context.Context, status entity.PaymentStatus) ([]response.OrderExtendedResponse, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid payment status %q, expected one of %v", string(status), entity.PaymentStatusValues())
	}

	orders, err := s.orders.FindExtendedByPaymentStatus(ctx, status)
	if err != nil {
		s.log.Error("Failed to get orders by payment status",
			zap.Error(err),
			zap.String("payment_status", string(status)),
		)
		return nil, fmt.Errorf("get orders by payment status: %w", err)
	}

	return response.OrdersExtendedToResponse(orders), nil
}

func (s *orderService) GetOrdersByWorkStatus(ctx context.Context, status entity.WorkStatus) ([]response.OrderExtendedResponse, error) {
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid work status %q, expected one of %v", string(status), entity.WorkStatusValues())
	}

	orders, err := s.orders.FindExtendedByWorkStatus(ctx, status)
	if err != nil {
		s.log.Error("Failed to get orders by work status",
			zap.Error(err),
			zap.String("work_status", string(status)),
		)
		return nil, fmt.Errorf("get orders by work status: %w", err)
	}

	return response.OrdersExtendedToResponse(orders), nil
}

func (s *orderService) UpdateOrder(ctx context.Context, id int64, req *request.UpdateOrderRequest) (*response.OrderResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid order ID %d", id)
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update order validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	patch := entity.ServiceOrderPatch{
		TimeSlot: req.TimeSlot,
	}
	if req.WorkStatus != nil {
		ws := entity.WorkStatus(*req.WorkStatus)
		patch.WorkStatus = &ws
	}
	if req.PaymentStatus != nil {
		ps := entity.PaymentStatus(*req.PaymentStatus)
		patch.PaymentStatus = &ps
	}
	if patch.IsEmpty() {
		return nil, fmt.Errorf("invalid update: no fields provided")
	}

	updated, err := s.orders.UpdatePartial(ctx, id, patch)
	if err != nil {
		s.log.Error("Failed to update order",
			zap.Error(err),
			zap.Int64("order_id", id),
		)
		return nil, fmt.Errorf("update order: %w", err)
	}
	if updated == nil {
		return nil, fmt.Errorf("order %d not found", id)
	}

	s.log.Info("Order updated",
		zap.Int64("order_id", id),
		zap.String("work_status", string(updated.WorkStatus)),
		zap.String("payment_status", string(updated.PaymentStatus)),
	)

	resp := response.OrderToResponse(updated)
	return &resp, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, fmt.Errorf("invalid order ID %d", id)
	}

	deleted, err := s.orders.Delete(ctx, id)
	if err != nil {
		s.log.Error("Failed to delete order",
			zap.Error(err),
			zap.Int64("order_id", id),
		)
		return false, fmt.Errorf("delete order: %w", err)
	}

	return deleted, nil
}
