package usecase

import (
	"context"
	"fmt"

	"service-booking/internal/data/entity"
	"service-booking/internal/data/repository"
	"service-booking/internal/dto/request"
	"service-booking/internal/dto/response"
	"service-booking/pkg/utils"

	"go.uber.org/zap"
)

type CustomerService interface {
	CreateCustomer(ctx context.Context, req *request.CreateCustomerRequest) (*response.CustomerResponse, error)
	GetCustomers(ctx context.Context) ([]response.CustomerResponse, error)
	GetCustomerByID(ctx context.Context, id int64) (*response.CustomerResponse, error)
}

type customerService struct {
	customers repository.CustomerRepository
	log       *zap.Logger
}

func NewCustomerService(customers repository.CustomerRepository, log *zap.Logger) CustomerService {
	return &customerService{
		customers: customers,
		log:       log.With(zap.String("service", "customer")),
	}
}

func (s *customerService) CreateCustomer(ctx context.Context, req *request.CreateCustomerRequest) (*response.CustomerResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create customer validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.customers.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check customer email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("check customer email: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("customer email already registered")
	}

	customer := &entity.Customer{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		NumberPlate: req.NumberPlate,
		BrandModel:  req.BrandModel,
	}

	created, err := s.customers.Create(ctx, customer)
	if err != nil {
		s.log.Error("Failed to create customer", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create customer: %w", err)
	}

	s.log.Info("Customer created",
		zap.Int64("customer_id", created.ID),
		zap.String("email", created.Email))

	resp := response.CustomerToResponse(created)
	return &resp, nil
}

func (s *customerService) GetCustomers(ctx context.Context) ([]response.CustomerResponse, error) {
	customers, err := s.customers.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get customers", zap.Error(err))
		return nil, fmt.Errorf("get customers: %w", err)
	}

	return response.CustomersToResponse(customers), nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, id int64) (*response.CustomerResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid customer ID %d", id)
	}

	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get customer by ID", zap.Error(err), zap.Int64("customer_id", id))
		return nil, fmt.Errorf("get customer by ID: %w", err)
	}
	if customer == nil {
		return nil, fmt.Errorf("customer %d not found", id)
	}

	resp := response.CustomerToResponse(customer)
	return &resp, nil
}
