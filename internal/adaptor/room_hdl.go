package adaptor

import (
	"net/http"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type RoomHandler struct {
	service usecase.RoomService
	log     *zap.Logger
}

func NewRoomHandler(service usecase.RoomService, log *zap.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		log:     log.With(zap.String("handler", "room")),
	}
}

// ListRooms handles GET /api/v1/rooms?room_type_id=&status=&floor_no=&search=
func (h *RoomHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, perPage := utils.ParsePagination(query.Get("page"), query.Get("per_page"))

	req := &request.ListRoomsRequest{
		RoomTypeID:       query.Get("room_type_id"),
		Status:           query.Get("status"),
		FloorNo:          utils.ParseInt(query.Get("floor_no"), 0),
		Search:           query.Get("search"),
		PaginatedRequest: request.PaginatedRequest{Page: page, PerPage: perPage},
	}

	rooms, total, err := h.service.ListRooms(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list rooms")
		return
	}

	utils.ResponseSuccess(w, "success", response.Paginate(rooms, response.RoomToResponse, page, perPage, total))
}

// AvailableRooms handles GET /api/v1/rooms/available?check_in=&check_out=&room_type_id=
func (h *RoomHandler) AvailableRooms(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.AvailableRoomsRequest{
		CheckIn:    query.Get("check_in"),
		CheckOut:   query.Get("check_out"),
		RoomTypeID: query.Get("room_type_id"),
	}

	rooms, err := h.service.AvailableRooms(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "available rooms")
		return
	}

	data := make([]response.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		data = append(data, response.RoomToResponse(room))
	}

	utils.ResponseSuccess(w, "success", data)
}

// GetRoom handles GET /api/v1/rooms/{id}
func (h *RoomHandler) GetRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "room")
	if !ok {
		return
	}

	room, err := h.service.GetRoom(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get room")
		return
	}

	utils.ResponseSuccess(w, "success", response.RoomToResponse(room))
}

// CreateRoom handles POST /api/v1/rooms (staff only)
func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRoomRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	room, err := h.service.CreateRoom(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create room")
		return
	}

	utils.ResponseCreated(w, "Room created", response.RoomToResponse(room))
}

// UpdateRoom handles PUT /api/v1/rooms/{id} (staff only)
func (h *RoomHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "room")
	if !ok {
		return
	}
	var req request.UpdateRoomRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	room, err := h.service.UpdateRoom(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update room")
		return
	}

	utils.ResponseSuccess(w, "Room updated", response.RoomToResponse(room))
}

// DeleteRoom handles DELETE /api/v1/rooms/{id} (staff only)
func (h *RoomHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "room")
	if !ok {
		return
	}

	if err := h.service.DeleteRoom(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete room")
		return
	}

	utils.ResponseNoContent(w)
}
