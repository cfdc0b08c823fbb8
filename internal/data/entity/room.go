package entity

import "github.com/google/uuid"

type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "available"
	RoomStatusBooked      RoomStatus = "booked"
	RoomStatusMaintenance RoomStatus = "maintenance"
)

type Room struct {
	Base
	RoomNo     string     `db:"room_no"`
	RoomTypeID uuid.UUID  `db:"room_type_id"`
	BedType    string     `db:"bed_type"`
	Size       int        `db:"size"`
	FloorNo    int        `db:"floor_no"`
	Status     RoomStatus `db:"status"`
	Amenities  []string   `db:"amenities"`
	Images     []string   `db:"images"`

	// PricePerNight is shown in the catalog only; bookings are priced from the room type.
	PricePerNight Money   `db:"price_per_night"`
	Description   *string `db:"description"`
}
