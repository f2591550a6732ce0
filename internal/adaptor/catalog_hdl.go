package adaptor

import (
	"net/http"

	"service-booking/internal/usecase"
	"service-booking/pkg/utils"

	"go.uber.org/zap"
)

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log,
	}
}

// GetHostels handles GET /api/hostels
func (h *CatalogHandler) GetHostels(w http.ResponseWriter, r *http.Request) {
	hostels, err := h.service.GetHostels(r.Context())
	if err != nil {
		h.log.Error("Failed to get hostels", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "Hostels retrieved successfully", hostels)
}

// GetPackages handles GET /api/packages
func (h *CatalogHandler) GetPackages(w http.ResponseWriter, r *http.Request) {
	packages, err := h.service.GetPackages(r.Context())
	if err != nil {
		h.log.Error("Failed to get packages", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "Packages retrieved successfully", packages)
}
