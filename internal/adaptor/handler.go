package adaptor

import (
	"encoding/json"
	"net/http"

	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	RoomType *RoomTypeHandler
	Room     *RoomHandler
	Booking  *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		User:     NewUserHandler(service.User, log),
		RoomType: NewRoomTypeHandler(service.RoomType, log),
		Room:     NewRoomHandler(service.Room, log),
		Booking:  NewBookingHandler(service.Booking, log),
	}
}

// actorFromRequest reads the caller set by middleware.AuthSession.
func actorFromRequest(r *http.Request) (usecase.Actor, bool) {
	p, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		return usecase.Actor{}, false
	}
	return usecase.Actor{UserID: p.UserID, Role: p.Role}, true
}

// decodeJSON reads the request body into dst, answering 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}
	return true
}

// urlID parses the {id} path parameter, answering 400 when it is not a UUID.
func urlID(w http.ResponseWriter, r *http.Request, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid "+what+" ID", nil)
		return uuid.Nil, false
	}
	return id, true
}
