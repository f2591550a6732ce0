package usecase

import (
	"context"
	"testing"

	"service-booking/internal/data/entity"
	"service-booking/internal/data/repository"
	"service-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testUserID = "6fa1f9a3-0f0e-4d80-b2a6-8a5a0a2eb002"

func newOrderService(t *testing.T) OrderService {
	t.Helper()
	return NewOrderService(repository.NewFixtureOrderRepository(zap.NewNop()), zap.NewNop())
}

func strPtr(s string) *string { return &s }

func TestCreateOrderDefaultsStatuses(t *testing.T) {
	svc := newOrderService(t)

	created, err := svc.CreateOrder(context.Background(), &request.CreateOrderRequest{
		CustomerID: 1,
		HostelID:   1,
		PackageID:  1,
		UserID:     testUserID,
		TimeSlot:   "2024-03-10T10:00",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.WorkStatusWaiting, created.WorkStatus)
	assert.Equal(t, entity.PaymentStatusPending, created.PaymentStatus)
	assert.NotZero(t, created.ID)
}

func TestCreateOrderRejectsUnknownStatus(t *testing.T) {
	svc := newOrderService(t)

	_, err := svc.CreateOrder(context.Background(), &request.CreateOrderRequest{
		CustomerID: 1,
		HostelID:   1,
		PackageID:  1,
		UserID:     testUserID,
		TimeSlot:   "2024-03-10T10:00",
		WorkStatus: strPtr("paused"),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestCreateOrderRejectsBadUserID(t *testing.T) {
	svc := newOrderService(t)

	_, err := svc.CreateOrder(context.Background(), &request.CreateOrderRequest{
		CustomerID: 1,
		HostelID:   1,
		PackageID:  1,
		UserID:     "not-a-uuid",
		TimeSlot:   "2024-03-10T10:00",
	})

	require.Error(t, err)
}

func TestGetOrdersSortedNewestFirst(t *testing.T) {
	svc := newOrderService(t)

	orders, err := svc.GetOrders(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, orders)

	for i := 1; i < len(orders); i++ {
		assert.False(t, orders[i-1].CreatedAt.Before(orders[i].CreatedAt),
			"orders must be sorted by created_at descending")
	}

	// joined projections are populated
	first := orders[0]
	assert.NotEmpty(t, first.Customer.Name)
	assert.NotEmpty(t, first.Package.Name)
	assert.NotEmpty(t, first.Hostel.Name)
	assert.NotEmpty(t, first.User.Email)
}

func TestGetOrderByIDNotFound(t *testing.T) {
	svc := newOrderService(t)

	_, err := svc.GetOrderByID(context.Background(), 9999)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetOrdersByPaymentStatusFilters(t *testing.T) {
	svc := newOrderService(t)

	orders, err := svc.GetOrdersByPaymentStatus(context.Background(), entity.PaymentStatusApproved)
	require.NoError(t, err)
	require.NotEmpty(t, orders)
	for _, o := range orders {
		assert.Equal(t, entity.PaymentStatusApproved, o.PaymentStatus)
	}
}

func TestGetOrdersByPaymentStatusRejectsUnknown(t *testing.T) {
	svc := newOrderService(t)

	_, err := svc.GetOrdersByPaymentStatus(context.Background(), entity.PaymentStatus("paid"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid payment status")
	for _, valid := range entity.PaymentStatusValues() {
		assert.Contains(t, err.Error(), string(valid))
	}
}

func TestGetOrdersByWorkStatusRejectsUnknown(t *testing.T) {
	svc := newOrderService(t)

	_, err := svc.GetOrdersByWorkStatus(context.Background(), entity.WorkStatus("done"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid work status")
	for _, valid := range entity.WorkStatusValues() {
		assert.Contains(t, err.Error(), string(valid))
	}
}

func TestGetOrdersByWorkStatusFilters(t *testing.T) {
	svc := newOrderService(t)

	orders, err := svc.GetOrdersByWorkStatus(context.Background(), entity.WorkStatusInProgress)
	require.NoError(t, err)
	require.NotEmpty(t, orders)
	for _, o := range orders {
		assert.Equal(t, entity.WorkStatusInProgress, o.WorkStatus)
	}
}

func TestUpdateOrderTouchesOnlyProvidedFields(t *testing.T) {
	svc := newOrderService(t)

	before, err := svc.GetOrderByID(context.Background(), 1)
	require.NoError(t, err)

	updated, err := svc.UpdateOrder(context.Background(), 1, &request.UpdateOrderRequest{
		PaymentStatus: strPtr("approve"),
	})
	require.NoError(t, err)

	assert.Equal(t, entity.PaymentStatusApproved, updated.PaymentStatus)
	assert.Equal(t, before.WorkStatus, updated.WorkStatus)
	assert.Equal(t, before.TimeSlot, updated.TimeSlot)
}

func TestUpdateOrderRequiresAtLeastOneField(t *testing.T) {
	svc := newOrderService(t)

	_, err := svc.UpdateOrder(context.Background(), 1, &request.UpdateOrderRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no fields provided")
}

func TestUpdateOrderUnknownID(t *testing.T) {
	svc := newOrderService(t)

	_, err := svc.UpdateOrder(context.Background(), 9999, &request.UpdateOrderRequest{
		PaymentStatus: strPtr("approve"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestDeleteOrder(t *testing.T) {
	svc := newOrderService(t)

	deleted, err := svc.DeleteOrder(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, deleted)

	// second delete reports missing without an error
	deleted, err = svc.DeleteOrder(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, deleted)
}
