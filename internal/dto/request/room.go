package request

import "hotel-booking/internal/data/entity"

type CreateRoomRequest struct {
	RoomNo        string       `json:"room_no" validate:"required,notblank,max=50"`
	RoomTypeID    string       `json:"room_type_id" validate:"required,uuid"`
	BedType       string       `json:"bed_type" validate:"required,notblank,max=50"`
	Size          int          `json:"size" validate:"min=1"`
	FloorNo       int          `json:"floor_no" validate:"min=1"`
	PricePerNight entity.Money `json:"price_per_night" validate:"gt=0"`
	Status        string       `json:"status,omitempty" validate:"omitempty,oneof=available booked maintenance"`
	Amenities     []string     `json:"amenities,omitempty" validate:"omitempty,dive,required,max=100"`
	Images        []string     `json:"images,omitempty" validate:"omitempty,dive,required,max=1024"`
	Description   *string      `json:"description,omitempty"`
}

type UpdateRoomRequest struct {
	RoomNo        *string       `json:"room_no,omitempty" validate:"omitnil,notblank,max=50"`
	RoomTypeID    *string       `json:"room_type_id,omitempty" validate:"omitempty,uuid"`
	BedType       *string       `json:"bed_type,omitempty" validate:"omitnil,notblank,max=50"`
	Size          *int          `json:"size,omitempty" validate:"omitempty,min=1"`
	FloorNo       *int          `json:"floor_no,omitempty" validate:"omitempty,min=1"`
	PricePerNight *entity.Money `json:"price_per_night,omitempty" validate:"omitempty,gt=0"`
	Status        *string       `json:"status,omitempty" validate:"omitempty,oneof=available booked maintenance"`
	Amenities     []string      `json:"amenities,omitempty" validate:"omitempty,dive,required,max=100"`
	Images        []string      `json:"images,omitempty" validate:"omitempty,dive,required,max=1024"`
	Description   *string       `json:"description,omitempty"`
}

type ListRoomsRequest struct {
	RoomTypeID string `validate:"omitempty,uuid"`
	Status     string `validate:"omitempty,oneof=available booked maintenance"`
	FloorNo    int    `validate:"omitempty,min=1"`
	Search     string `validate:"omitempty,max=50"`
	PaginatedRequest
}

type AvailableRoomsRequest struct {
	CheckIn    string `validate:"required,datetime=2006-01-02"`
	CheckOut   string `validate:"required,datetime=2006-01-02"`
	RoomTypeID string `validate:"omitempty,uuid"`
}
