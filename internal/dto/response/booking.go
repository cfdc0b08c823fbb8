package response

import (
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/engine"
)

type BookingResponse struct {
	ID            string               `json:"id"`
	Confirmation  string               `json:"confirmation"`
	UserID        string               `json:"user_id"`
	GuestName     string               `json:"guest_name"`
	GuestCount    int                  `json:"guest_count"`
	RoomTypeID    string               `json:"room_type_id"`
	RoomID        *string              `json:"room_id"`
	CheckIn       string               `json:"check_in"`
	CheckOut      string               `json:"check_out"`
	Nights        int                  `json:"nights"`
	Status        entity.BookingStatus `json:"status"`
	Price         entity.Money         `json:"price"`
	AuthorizeCard bool                 `json:"authorize_card"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

func BookingToResponse(b *entity.Booking) BookingResponse {
	var roomID *string
	if b.RoomID != nil {
		id := b.RoomID.String()
		roomID = &id
	}

	return BookingResponse{
		ID:            b.ID.String(),
		Confirmation:  b.Confirmation,
		UserID:        b.UserID.String(),
		GuestName:     b.GuestName,
		GuestCount:    b.GuestCount,
		RoomTypeID:    b.RoomTypeID.String(),
		RoomID:        roomID,
		CheckIn:       b.CheckIn.Format(time.DateOnly),
		CheckOut:      b.CheckOut.Format(time.DateOnly),
		Nights:        engine.ComputeNights(b.CheckIn, b.CheckOut),
		Status:        b.Status,
		Price:         b.Price,
		AuthorizeCard: b.AuthorizeCard,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
