package repository

import (
	"service-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Session  SessionRepository
	Customer CustomerRepository
	Package  PackageRepository
	Hostel   HostelRepository
	Order    OrderRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Session:  NewSessionRepository(db, log),
		Customer: NewCustomerRepository(db, log),
		Package:  NewPackageRepository(db, log),
		Hostel:   NewHostelRepository(db, log),
		Order:    NewOrderRepository(db, log),
	}
}
