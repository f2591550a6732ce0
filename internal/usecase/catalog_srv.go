package usecase

import (
	"context"
	"fmt"

	"service-booking/internal/data/repository"
	"service-booking/internal/dto/response"

	"go.uber.org/zap"
)

// CatalogService serves the reference data the booking form and admin UI
// select from.
type CatalogService interface {
	GetHostels(ctx context.Context) ([]response.HostelResponse, error)
	GetPackages(ctx context.Context) ([]response.PackageResponse, error)
}

type catalogService struct {
	hostels  repository.HostelRepository
	packages repository.PackageRepository
	log      *zap.Logger
}

func NewCatalogService(hostels repository.HostelRepository, packages repository.PackageRepository, log *zap.Logger) CatalogService {
	return &catalogService{
		hostels:  hostels,
		packages: packages,
		log:      log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) GetHostels(ctx context.Context) ([]response.HostelResponse, error) {
	hostels, err := s.hostels.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get hostels", zap.Error(err))
		return nil, fmt.Errorf("get hostels: %w", err)
	}

	out := make([]response.HostelResponse, len(hostels))
	for i, h := range hostels {
		out[i] = response.HostelToResponse(h)
	}
	return out, nil
}

func (s *catalogService) GetPackages(ctx context.Context) ([]response.PackageResponse, error) {
	packages, err := s.packages.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get packages", zap.Error(err))
		return nil, fmt.Errorf("get packages: %w", err)
	}

	out := make([]response.PackageResponse, len(packages))
	for i, p := range packages {
		out[i] = response.PackageToResponse(p)
	}
	return out, nil
}
