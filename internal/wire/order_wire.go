package wire

import (
	"service-booking/internal/adaptor"
	"service-booking/internal/data/repository"
	"service-booking/pkg/middleware"
	"service-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// The order table is staff-facing: every route needs an authenticated,
	// approved account.
	r.Route("/api/orders", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Approved(repo.User, log))

		r.Get("/", orderHandler.List)
		r.Get("/{id}", orderHandler.GetByID)
		r.Post("/", orderHandler.Create)
		r.Patch("/{id}", orderHandler.Update)
		r.Delete("/{id}", orderHandler.Delete)
	})
}
