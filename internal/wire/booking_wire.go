package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/bookings", func(r chi.Router) {
		r.Use(authenticated(repo, config, log))

		// ==================== OWNER OR STAFF ====================
		// Guests are scoped to their own bookings inside the service
		r.Get("/", bookingHandler.ListBookings)
		r.Post("/", bookingHandler.CreateBooking)
		r.Get("/{id}", bookingHandler.GetBooking)
		r.Patch("/{id}", bookingHandler.UpdateBooking)
		r.Delete("/{id}", bookingHandler.CancelBooking)

		// ==================== STAFF ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.Staff(log))

			r.Patch("/{id}/check_in", bookingHandler.CheckIn)
			r.Patch("/{id}/check_out", bookingHandler.CheckOut)
			r.Patch("/{id}/arriving", bookingHandler.MarkArriving)
			r.Patch("/{id}/assign_room", bookingHandler.AssignRoom)
		})
	})
}
