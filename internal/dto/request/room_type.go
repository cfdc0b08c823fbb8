package request

import "hotel-booking/internal/data/entity"

type CreateRoomTypeRequest struct {
	Name        string       `json:"name" validate:"required,notblank,max=255"`
	Price       entity.Money `json:"price" validate:"gt=0"`
	MaxGuests   int          `json:"max_guests" validate:"min=1"`
	Description *string      `json:"description,omitempty"`
	Image       *string      `json:"image,omitempty" validate:"omitempty,max=1024"`
}

type UpdateRoomTypeRequest struct {
	Name        *string       `json:"name,omitempty" validate:"omitnil,notblank,max=255"`
	Price       *entity.Money `json:"price,omitempty" validate:"omitempty,gt=0"`
	MaxGuests   *int          `json:"max_guests,omitempty" validate:"omitempty,min=1"`
	Description *string       `json:"description,omitempty"`
	Image       *string       `json:"image,omitempty" validate:"omitempty,max=1024"`
}
