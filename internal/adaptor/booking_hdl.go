package adaptor

import (
	"net/http"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/v1/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateBookingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), actor, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "Booking created", response.BookingToResponse(booking))
}

// ListBookings handles GET /api/v1/bookings?status=&search=&check_in=&check_out=
// Guests only get their own bookings back.
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	req := &request.ListBookingsRequest{
		Status:   query.Get("status"),
		Search:   query.Get("search"),
		CheckIn:  query.Get("check_in"),
		CheckOut: query.Get("check_out"),
	}
	if query.Has("page") || query.Has("per_page") {
		req.Page, req.PerPage = utils.ParsePagination(query.Get("page"), query.Get("per_page"))
	}

	data := []response.BookingResponse{}
	for booking, err := range h.service.ListBookings(r.Context(), actor, req) {
		if err != nil {
			handleServiceError(w, h.log, err, "list bookings")
			return
		}
		data = append(data, response.BookingToResponse(booking))
	}

	utils.ResponseSuccess(w, "success", data)
}

// GetBooking handles GET /api/v1/bookings/{id}
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	id, ok := urlID(w, r, "booking")
	if !ok {
		return
	}

	booking, err := h.service.GetBooking(r.Context(), actor, id)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", response.BookingToResponse(booking))
}

// UpdateBooking handles PATCH /api/v1/bookings/{id}
func (h *BookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	id, ok := urlID(w, r, "booking")
	if !ok {
		return
	}
	var req request.UpdateBookingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	booking, err := h.service.UpdateBooking(r.Context(), actor, id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update booking")
		return
	}

	utils.ResponseSuccess(w, "Booking updated", response.BookingToResponse(booking))
}

// CancelBooking handles DELETE /api/v1/bookings/{id}. The record stays with status cancelled.
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, usecase.ActionCancel, nil)
}

// CheckIn handles PATCH /api/v1/bookings/{id}/check_in (staff only)
func (h *BookingHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, usecase.ActionCheckIn, nil)
}

// CheckOut handles PATCH /api/v1/bookings/{id}/check_out (staff only)
func (h *BookingHandler) CheckOut(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, usecase.ActionCheckOut, nil)
}

// MarkArriving handles PATCH /api/v1/bookings/{id}/arriving (staff only)
func (h *BookingHandler) MarkArriving(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, usecase.ActionArrive, nil)
}

// AssignRoom handles PATCH /api/v1/bookings/{id}/assign_room (staff only)
func (h *BookingHandler) AssignRoom(w http.ResponseWriter, r *http.Request) {
	var req request.AssignRoomRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseUnprocessable(w, "Validation failed", utils.FormatValidationErrors(validationErrors))
		return
	}

	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		utils.ResponseUnprocessable(w, "Validation failed", []string{"room_id: must be a valid UUID"})
		return
	}
	h.transition(w, r, usecase.ActionAssignRoom, &roomID)
}

func (h *BookingHandler) transition(w http.ResponseWriter, r *http.Request, action usecase.Action, roomID *uuid.UUID) {
	actor, ok := actorFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}
	id, ok := urlID(w, r, "booking")
	if !ok {
		return
	}

	booking, err := h.service.Transition(r.Context(), actor, id, action, roomID)
	if err != nil {
		handleServiceError(w, h.log, err, string(action))
		return
	}

	utils.ResponseSuccess(w, "success", response.BookingToResponse(booking))
}
