package usecase

import (
	"fmt"
	"time"

	"hotel-booking/internal/apperr"
	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/pkg/database"
	"hotel-booking/pkg/metrics"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID uuid.UUID
	Role   entity.UserRole
}

func (a Actor) IsStaff() bool {
	return a.Role.IsStaff()
}

// Owns reports whether the actor may act on a record owned by userID.
func (a Actor) Owns(userID uuid.UUID) bool {
	return a.IsStaff() || a.UserID == userID
}

type Service struct {
	Auth     AuthService
	User     UserService
	RoomType RoomTypeService
	Room     RoomService
	Booking  BookingService
}

func NewService(
	repo *repository.Repository,
	tx database.TxManager,
	config *utils.Config,
	m *metrics.Metrics,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, log),
		User:     NewUserService(repo, tx, log),
		RoomType: NewRoomTypeService(repo, log),
		Room:     NewRoomService(repo, log),
		Booking:  NewBookingService(repo, tx, config.Booking, m, log),
	}
}

// validateRequest runs the struct tags and folds failures into a ValidationError.
func validateRequest(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return apperr.Validation(utils.FormatValidationErrors(errs)...)
	}
	return nil
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.ParseInLocation(request.DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, apperr.Validation(fmt.Sprintf("%s: must be a date in format %s", field, request.DateLayout))
	}
	return t, nil
}

func parseID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, apperr.Validation(fmt.Sprintf("%s: must be a valid UUID", field))
	}
	return id, nil
}
