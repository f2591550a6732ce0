package wire

import (
	"service-booking/internal/adaptor"
	"service-booking/internal/data/repository"
	"service-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Reference data is public; the booking form reads it before login exists
	r.Get("/api/hostels", catalogHandler.GetHostels)
	r.Get("/api/packages", catalogHandler.GetPackages)
}
