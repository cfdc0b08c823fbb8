package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

type RoomTypeResponse struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Price       entity.Money `json:"price"`
	MaxGuests   int          `json:"max_guests"`
	Description *string      `json:"description,omitempty"`
	Image       *string      `json:"image,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type RoomResponse struct {
	ID            string            `json:"id"`
	RoomNo        string            `json:"room_no"`
	RoomTypeID    string            `json:"room_type_id"`
	BedType       string            `json:"bed_type"`
	Size          int               `json:"size"`
	FloorNo       int               `json:"floor_no"`
	Status        entity.RoomStatus `json:"status"`
	Amenities     []string          `json:"amenities"`
	Images        []string          `json:"images"`
	PricePerNight entity.Money      `json:"price_per_night"`
	Description   *string           `json:"description,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

func RoomTypeToResponse(rt *entity.RoomType) RoomTypeResponse {
	return RoomTypeResponse{
		ID:          rt.ID.String(),
		Name:        rt.Name,
		Price:       rt.Price,
		MaxGuests:   rt.MaxGuests,
		Description: rt.Description,
		Image:       rt.Image,
		CreatedAt:   rt.CreatedAt,
		UpdatedAt:   rt.UpdatedAt,
	}
}

func RoomToResponse(room *entity.Room) RoomResponse {
	amenities := room.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	images := room.Images
	if images == nil {
		images = []string{}
	}

	return RoomResponse{
		ID:            room.ID.String(),
		RoomNo:        room.RoomNo,
		RoomTypeID:    room.RoomTypeID.String(),
		BedType:       room.BedType,
		Size:          room.Size,
		FloorNo:       room.FloorNo,
		Status:        room.Status,
		Amenities:     amenities,
		Images:        images,
		PricePerNight: room.PricePerNight,
		Description:   room.Description,
		CreatedAt:     room.CreatedAt,
		UpdatedAt:     room.UpdatedAt,
	}
}
