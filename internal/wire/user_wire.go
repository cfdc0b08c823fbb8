package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== STAFF ROUTES ====================
	r.Route("/admin/users", func(r chi.Router) {
		r.Use(authenticated(repo, config, log))
		r.Use(middleware.Staff(log))

		r.Get("/", userHandler.GetAllUsers)

		// Deleting a user also deletes their bookings
		r.Delete("/{id}", userHandler.DeleteUser)
	})
}
