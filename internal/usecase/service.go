package usecase

import (
	"service-booking/internal/data/repository"
	"service-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Order    OrderService
	Catalog  CatalogService
	Customer CustomerService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, log),
		Order:    NewOrderService(repo.Order, log),
		Catalog:  NewCatalogService(repo.Hostel, repo.Package, log),
		Customer: NewCustomerService(repo.Customer, log),
	}
}
