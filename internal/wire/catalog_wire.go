package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCatalog(
	r chi.Router,
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(authenticated(repo, config, log))

		// ==================== ROOM TYPES ====================
		r.Route("/room_types", func(r chi.Router) {
			r.Get("/", handler.RoomType.ListRoomTypes)
			r.Get("/{id}", handler.RoomType.GetRoomType)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Staff(log))

				r.Post("/", handler.RoomType.CreateRoomType)
				r.Put("/{id}", handler.RoomType.UpdateRoomType)
				r.Delete("/{id}", handler.RoomType.DeleteRoomType)
			})
		})

		// ==================== ROOMS ====================
		r.Route("/rooms", func(r chi.Router) {
			r.Get("/", handler.Room.ListRooms)
			r.Get("/available", handler.Room.AvailableRooms)
			r.Get("/{id}", handler.Room.GetRoom)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Staff(log))

				r.Post("/", handler.Room.CreateRoom)
				r.Put("/{id}", handler.Room.UpdateRoom)
				r.Delete("/{id}", handler.Room.DeleteRoom)
			})
		})
	})
}
