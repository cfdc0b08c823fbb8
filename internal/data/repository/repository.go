package repository

import (
	"hotel-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Session  SessionRepository
	RoomType RoomTypeRepository
	Room     RoomRepository
	Booking  BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Session:  NewSessionRepository(db, log),
		RoomType: NewRoomTypeRepository(db, log),
		Room:     NewRoomRepository(db, log),
		Booking:  NewBookingRepository(db, log),
	}
}
