package adaptor

import (
	"net/http"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

type RoomTypeHandler struct {
	service usecase.RoomTypeService
	log     *zap.Logger
}

func NewRoomTypeHandler(service usecase.RoomTypeService, log *zap.Logger) *RoomTypeHandler {
	return &RoomTypeHandler{
		service: service,
		log:     log.With(zap.String("handler", "room_type")),
	}
}

// ListRoomTypes handles GET /api/v1/room_types
func (h *RoomTypeHandler) ListRoomTypes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, perPage := utils.ParsePagination(query.Get("page"), query.Get("per_page"))

	roomTypes, total, err := h.service.ListRoomTypes(r.Context(), &request.PaginatedRequest{Page: page, PerPage: perPage})
	if err != nil {
		handleServiceError(w, h.log, err, "list room types")
		return
	}

	utils.ResponseSuccess(w, "success", response.Paginate(roomTypes, response.RoomTypeToResponse, page, perPage, total))
}

// GetRoomType handles GET /api/v1/room_types/{id}
func (h *RoomTypeHandler) GetRoomType(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "room type")
	if !ok {
		return
	}

	roomType, err := h.service.GetRoomType(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get room type")
		return
	}

	utils.ResponseSuccess(w, "success", response.RoomTypeToResponse(roomType))
}

// CreateRoomType handles POST /api/v1/room_types (staff only)
func (h *RoomTypeHandler) CreateRoomType(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRoomTypeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	roomType, err := h.service.CreateRoomType(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create room type")
		return
	}

	utils.ResponseCreated(w, "Room type created", response.RoomTypeToResponse(roomType))
}

// UpdateRoomType handles PUT /api/v1/room_types/{id} (staff only)
func (h *RoomTypeHandler) UpdateRoomType(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "room type")
	if !ok {
		return
	}
	var req request.UpdateRoomTypeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	roomType, err := h.service.UpdateRoomType(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update room type")
		return
	}

	utils.ResponseSuccess(w, "Room type updated", response.RoomTypeToResponse(roomType))
}

// DeleteRoomType handles DELETE /api/v1/room_types/{id} (staff only)
func (h *RoomTypeHandler) DeleteRoomType(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "room type")
	if !ok {
		return
	}

	if err := h.service.DeleteRoomType(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete room type")
		return
	}

	utils.ResponseNoContent(w)
}
