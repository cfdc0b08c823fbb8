package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusArriving  BookingStatus = "arriving"
	BookingStatusCheckedIn BookingStatus = "checked-in"
	BookingStatusDeparting BookingStatus = "departing"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusConfirmed, BookingStatusArriving, BookingStatusCheckedIn,
		BookingStatusDeparting, BookingStatusCancelled:
		return true
	}
	return false
}

// IsActive reports whether the booking still holds its room.
func (s BookingStatus) IsActive() bool {
	return s != BookingStatusCancelled
}

type Booking struct {
	Base
	UserID        uuid.UUID     `db:"user_id"`
	GuestName     string        `db:"guest_name"`
	GuestCount    int           `db:"guest_count"`
	Confirmation  string        `db:"confirmation"`
	RoomTypeID    uuid.UUID     `db:"room_type_id"`
	RoomID        *uuid.UUID    `db:"room_id"`
	CheckIn       time.Time     `db:"check_in"`
	CheckOut      time.Time     `db:"check_out"`
	Status        BookingStatus `db:"status"`
	Price         Money         `db:"price"`
	AuthorizeCard bool          `db:"authorize_card"`
}
