package wire

import (
	"net/http"

	"service-booking/internal/adaptor"
	"service-booking/internal/booking"
	"service-booking/internal/data/repository"
	"service-booking/internal/usecase"
	"service-booking/pkg/middleware"
	"service-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and the router
func Wiring(
	repo *repository.Repository,
	forms *booking.Manager,
	notifier booking.Notifier,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, forms, notifier, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.AllowedOrigins, logger))

	// Apply routes
	wireAuth(r, handler.Auth, repo, config, logger)
	wireOrder(r, handler.Order, repo, config, logger)
	wireCatalog(r, handler.Catalog, repo, config, logger)
	wireCustomer(r, handler.Customer, repo, config, logger)
	wireBooking(r, handler.Form, handler.Webhook)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
