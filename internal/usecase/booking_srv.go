package usecase

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"
	"time"

	"hotel-booking/internal/apperr"
	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/engine"
	"hotel-booking/pkg/database"
	"hotel-booking/pkg/metrics"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Action names a booking status transition.
type Action string

const (
	ActionCheckIn    Action = "check_in"
	ActionCheckOut   Action = "check_out"
	ActionArrive     Action = "arriving"
	ActionAssignRoom Action = "assign_room"
	ActionCancel     Action = "cancel"
)

const defaultCodeAttempts = 10

type BookingService interface {
	CreateBooking(ctx context.Context, actor Actor, req *request.CreateBookingRequest) (*entity.Booking, error)
	UpdateBooking(ctx context.Context, actor Actor, id uuid.UUID, req *request.UpdateBookingRequest) (*entity.Booking, error)
	Transition(ctx context.Context, actor Actor, id uuid.UUID, action Action, roomID *uuid.UUID) (*entity.Booking, error)
	MarkArriving(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Booking, error)
	GetBooking(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Booking, error)
	ListBookings(ctx context.Context, actor Actor, req *request.ListBookingsRequest) iter.Seq2[*entity.Booking, error]
}

type bookingService struct {
	repo    *repository.Repository
	tx      database.TxManager
	metrics *metrics.Metrics
	log     *zap.Logger

	codeAttempts int
	newCode      func() (string, error)
}

func NewBookingService(
	repo *repository.Repository,
	tx database.TxManager,
	config utils.BookingConfig,
	m *metrics.Metrics,
	log *zap.Logger,
) BookingService {
	attempts := config.CodeAttempts
	if attempts <= 0 {
		attempts = defaultCodeAttempts
	}

	return &bookingService{
		repo:         repo,
		tx:           tx,
		metrics:      m,
		log:          log.With(zap.String("service", "booking")),
		codeAttempts: attempts,
		newCode:      utils.GenerateConfirmationCode,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, actor Actor, req *request.CreateBookingRequest) (*entity.Booking, error) {
	if err := validateRequest(req); err != nil {
		s.log.Warn("Create booking validation failed", zap.Error(err))
		return nil, err
	}

	checkIn, err := parseDate("check_in", req.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := parseDate("check_out", req.CheckOut)
	if err != nil {
		return nil, err
	}
	if !engine.ValidRange(checkIn, checkOut) {
		return nil, apperr.Validation("check_out: must be after check_in")
	}

	roomTypeID, err := parseID("room_type_id", req.RoomTypeID)
	if err != nil {
		return nil, err
	}

	var roomID *uuid.UUID
	if req.RoomID != nil {
		id, err := parseID("room_id", *req.RoomID)
		if err != nil {
			return nil, err
		}
		roomID = &id
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.NewBase(now),

		UserID:        actor.UserID,
		GuestName:     strings.TrimSpace(req.GuestName),
		GuestCount:    req.GuestCount,
		RoomTypeID:    roomTypeID,
		RoomID:        roomID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Status:        entity.BookingStatusConfirmed,
		AuthorizeCard: req.AuthorizeCard,
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		roomType, err := s.loadRoomType(ctx, roomTypeID)
		if err != nil {
			return err
		}

		if booking.RoomID != nil {
			if err := s.ensureBookable(ctx, booking, nil); err != nil {
				return err
			}
		}

		code, err := s.uniqueConfirmation(ctx)
		if err != nil {
			return err
		}
		booking.Confirmation = code
		booking.Price = engine.PriceStay(roomType.Price, booking.CheckIn, booking.CheckOut).Total

		return s.repo.Booking.Create(ctx, booking)
	})
	if err != nil {
		s.observeFailure("create", err)
		return nil, err
	}

	s.metrics.RecordBookingCreated()
	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("confirmation", booking.Confirmation),
		zap.String("user_id", booking.UserID.String()),
		zap.Stringer("price", booking.Price))

	return booking, nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, actor Actor, id uuid.UUID, req *request.UpdateBookingRequest) (*entity.Booking, error) {
	if err := validateRequest(req); err != nil {
		s.log.Warn("Update booking validation failed", zap.Error(err))
		return nil, err
	}
	if req.RoomID != nil && !actor.IsStaff() {
		return nil, fmt.Errorf("change room: %w", apperr.ErrForbidden)
	}

	var booking *entity.Booking
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		booking, err = s.loadOwned(ctx, actor, id)
		if err != nil {
			return err
		}
		if booking.Status == entity.BookingStatusCancelled {
			return apperr.Validation("status: cancelled bookings cannot be changed")
		}

		before := *booking
		if err := applyPatch(booking, req); err != nil {
			return err
		}
		if !engine.ValidRange(booking.CheckIn, booking.CheckOut) {
			return apperr.Validation("check_out: must be after check_in")
		}

		datesChanged := !booking.CheckIn.Equal(before.CheckIn) || !booking.CheckOut.Equal(before.CheckOut)
		roomChanged := !sameRoom(booking.RoomID, before.RoomID)
		typeChanged := booking.RoomTypeID != before.RoomTypeID

		if (datesChanged || roomChanged) && booking.RoomID != nil {
			if err := s.ensureBookable(ctx, booking, &booking.ID); err != nil {
				return err
			}
		}
		if datesChanged || roomChanged || typeChanged {
			roomType, err := s.loadRoomType(ctx, booking.RoomTypeID)
			if err != nil {
				return err
			}
			booking.Price = engine.PriceStay(roomType.Price, booking.CheckIn, booking.CheckOut).Total
		}

		booking.Touch(time.Now())
		return s.repo.Booking.Update(ctx, booking)
	})
	if err != nil {
		s.observeFailure("update", err)
		return nil, err
	}

	s.log.Info("Booking updated",
		zap.String("booking_id", booking.ID.String()),
		zap.String("actor_id", actor.UserID.String()))

	return booking, nil
}

// Transition moves a booking between statuses. Check-in and check-out do not
// look at the current status; only a cancelled booking is frozen.
func (s *bookingService) Transition(ctx context.Context, actor Actor, id uuid.UUID, action Action, roomID *uuid.UUID) (*entity.Booking, error) {
	switch action {
	case ActionCheckIn, ActionCheckOut, ActionArrive, ActionAssignRoom:
		if !actor.IsStaff() {
			return nil, fmt.Errorf("%s: %w", action, apperr.ErrForbidden)
		}
	case ActionCancel:
	default:
		return nil, apperr.Validation(fmt.Sprintf("action: unknown action %q", action))
	}
	if action == ActionAssignRoom && roomID == nil {
		return nil, apperr.Validation("room_id: This field is required")
	}

	var booking *entity.Booking
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		booking, err = s.loadOwned(ctx, actor, id)
		if err != nil {
			return err
		}
		if booking.Status == entity.BookingStatusCancelled {
			return apperr.Validation("status: cancelled bookings cannot change status")
		}

		switch action {
		case ActionCheckIn:
			booking.Status = entity.BookingStatusCheckedIn
		case ActionCheckOut:
			booking.Status = entity.BookingStatusDeparting
		case ActionArrive:
			booking.Status = entity.BookingStatusArriving
		case ActionCancel:
			booking.Status = entity.BookingStatusCancelled
		case ActionAssignRoom:
			candidate := *booking
			candidate.RoomID = roomID
			if err := s.ensureBookable(ctx, &candidate, &booking.ID); err != nil {
				return err
			}
			booking.RoomID = roomID
			booking.Touch(time.Now())
			return s.repo.Booking.Update(ctx, booking)
		}

		booking.Touch(time.Now())
		return s.repo.Booking.UpdateStatus(ctx, booking.ID, booking.Status)
	})
	if err != nil {
		s.observeFailure(string(action), err)
		return nil, err
	}

	s.metrics.RecordTransition(string(action))
	s.log.Info("Booking transitioned",
		zap.String("booking_id", booking.ID.String()),
		zap.String("action", string(action)),
		zap.String("status", string(booking.Status)),
		zap.String("actor_id", actor.UserID.String()))

	return booking, nil
}

func (s *bookingService) MarkArriving(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Booking, error) {
	return s.Transition(ctx, actor, id, ActionArrive, nil)
}

func (s *bookingService) GetBooking(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Booking, error) {
	return s.loadOwned(ctx, actor, id)
}

// ListBookings streams bookings visible to the actor. Guests only ever see
// their own. Failures are yielded as the single element of the sequence.
func (s *bookingService) ListBookings(ctx context.Context, actor Actor, req *request.ListBookingsRequest) iter.Seq2[*entity.Booking, error] {
	if err := validateRequest(req); err != nil {
		return failedSeq(err)
	}

	filter := repository.BookingFilter{
		Status: entity.BookingStatus(req.Status),
		Search: strings.TrimSpace(req.Search),
	}

	switch actor.Role {
	case entity.RoleStaff:
	case entity.RoleGuest:
		userID := actor.UserID
		filter.UserID = &userID
	default:
		return failedSeq(fmt.Errorf("role %q: %w", actor.Role, apperr.ErrForbidden))
	}

	if req.CheckIn != "" {
		from, err := parseDate("check_in", req.CheckIn)
		if err != nil {
			return failedSeq(err)
		}
		filter.CheckInFrom = &from
	}
	if req.CheckOut != "" {
		to, err := parseDate("check_out", req.CheckOut)
		if err != nil {
			return failedSeq(err)
		}
		filter.CheckOutTo = &to
	}
	if req.Page > 0 || req.PerPage > 0 {
		filter.Limit = req.Limit()
		filter.Offset = req.Offset()
	}

	return s.repo.Booking.Stream(ctx, filter)
}

// ==================== HELPER METHODS ====================

// loadOwned hides bookings the actor may not see behind NotFound.
func (s *bookingService) loadOwned(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Booking, error) {
	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil || !actor.Owns(booking.UserID) {
		return nil, apperr.NotFound("booking", id.String())
	}
	return booking, nil
}

func (s *bookingService) loadRoomType(ctx context.Context, id uuid.UUID) (*entity.RoomType, error) {
	roomType, err := s.repo.RoomType.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if roomType == nil {
		return nil, apperr.NotFound("room type", id.String())
	}
	return roomType, nil
}

// ensureBookable locks the booking's room and checks it against every other
// active booking on it. Must run inside a transaction.
func (s *bookingService) ensureBookable(ctx context.Context, booking *entity.Booking, excludeID *uuid.UUID) error {
	room, err := s.repo.Room.FindByIDForUpdate(ctx, *booking.RoomID)
	if err != nil {
		return err
	}
	if room == nil {
		return apperr.NotFound("room", booking.RoomID.String())
	}

	existing, err := s.repo.Booking.FindActiveByRoom(ctx, room.ID, excludeID)
	if err != nil {
		return err
	}

	if !engine.IsBookable(room, booking.CheckIn, booking.CheckOut, existing) {
		return fmt.Errorf("room %s from %s to %s: %w",
			room.RoomNo,
			booking.CheckIn.Format(request.DateLayout),
			booking.CheckOut.Format(request.DateLayout),
			apperr.ErrRoomUnavailable)
	}
	return nil
}

// uniqueConfirmation draws codes until one is unused, giving up after
// codeAttempts collisions.
func (s *bookingService) uniqueConfirmation(ctx context.Context) (string, error) {
	for attempt := 1; attempt <= s.codeAttempts; attempt++ {
		code, err := s.newCode()
		if err != nil {
			return "", fmt.Errorf("generate confirmation code: %w", err)
		}

		exists, err := s.repo.Booking.ExistsByConfirmation(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}

		s.metrics.RecordCodeCollision()
		s.log.Warn("Confirmation code collision", zap.Int("attempt", attempt))
	}

	s.metrics.RecordCodeExhausted()
	s.log.Error("Confirmation code generation exhausted", zap.Int("attempts", s.codeAttempts))
	return "", apperr.ErrCodeExhausted
}

func (s *bookingService) observeFailure(op string, err error) {
	switch {
	case errors.Is(err, apperr.ErrRoomUnavailable):
		s.metrics.RecordConflict()
		s.log.Warn("Booking rejected, room unavailable", zap.String("op", op), zap.Error(err))
	case errors.Is(err, apperr.ErrValidation),
		errors.Is(err, apperr.ErrNotFound),
		errors.Is(err, apperr.ErrForbidden):
		s.log.Warn("Booking request rejected", zap.String("op", op), zap.Error(err))
	default:
		s.log.Error("Booking operation failed", zap.String("op", op), zap.Error(err))
	}
}

func applyPatch(booking *entity.Booking, req *request.UpdateBookingRequest) error {
	if req.GuestName != nil {
		booking.GuestName = strings.TrimSpace(*req.GuestName)
	}
	if req.GuestCount != nil {
		booking.GuestCount = *req.GuestCount
	}
	if req.AuthorizeCard != nil {
		booking.AuthorizeCard = *req.AuthorizeCard
	}
	if req.CheckIn != nil {
		checkIn, err := parseDate("check_in", *req.CheckIn)
		if err != nil {
			return err
		}
		booking.CheckIn = checkIn
	}
	if req.CheckOut != nil {
		checkOut, err := parseDate("check_out", *req.CheckOut)
		if err != nil {
			return err
		}
		booking.CheckOut = checkOut
	}
	if req.RoomTypeID != nil {
		id, err := parseID("room_type_id", *req.RoomTypeID)
		if err != nil {
			return err
		}
		booking.RoomTypeID = id
	}
	if req.RoomID != nil {
		id, err := parseID("room_id", *req.RoomID)
		if err != nil {
			return err
		}
		booking.RoomID = &id
	}
	return nil
}

func sameRoom(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func failedSeq(err error) iter.Seq2[*entity.Booking, error] {
	return func(yield func(*entity.Booking, error) bool) {
		yield(nil, err)
	}
}
