package request

// DateLayout is the wire format of check-in and check-out dates.
const DateLayout = "2006-01-02"

type CreateBookingRequest struct {
	GuestName     string  `json:"guest_name" validate:"required,notblank,max=255"`
	GuestCount    int     `json:"guest_count" validate:"min=1"`
	RoomTypeID    string  `json:"room_type_id" validate:"required,uuid"`
	RoomID        *string `json:"room_id,omitempty" validate:"omitempty,uuid"`
	CheckIn       string  `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut      string  `json:"check_out" validate:"required,datetime=2006-01-02"`
	AuthorizeCard bool    `json:"authorize_card"`
}

// UpdateBookingRequest patches a booking. Nil fields are left unchanged.
type UpdateBookingRequest struct {
	GuestName     *string `json:"guest_name,omitempty" validate:"omitnil,notblank,max=255"`
	GuestCount    *int    `json:"guest_count,omitempty" validate:"omitempty,min=1"`
	RoomTypeID    *string `json:"room_type_id,omitempty" validate:"omitempty,uuid"`
	RoomID        *string `json:"room_id,omitempty" validate:"omitempty,uuid"`
	CheckIn       *string `json:"check_in,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CheckOut      *string `json:"check_out,omitempty" validate:"omitempty,datetime=2006-01-02"`
	AuthorizeCard *bool   `json:"authorize_card,omitempty"`
}

type AssignRoomRequest struct {
	RoomID string `json:"room_id" validate:"required,uuid"`
}

type ListBookingsRequest struct {
	Status   string `validate:"omitempty,oneof=confirmed arriving checked-in departing cancelled"`
	Search   string `validate:"omitempty,max=100"`
	CheckIn  string `validate:"omitempty,datetime=2006-01-02"`
	CheckOut string `validate:"omitempty,datetime=2006-01-02"`
	PaginatedRequest
}
