package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotel-booking/internal/apperr"
	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/engine"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RoomService interface {
	CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*entity.Room, error)
	GetRoom(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	ListRooms(ctx context.Context, req *request.ListRoomsRequest) ([]*entity.Room, int64, error)
	AvailableRooms(ctx context.Context, req *request.AvailableRoomsRequest) ([]*entity.Room, error)
	UpdateRoom(ctx context.Context, id uuid.UUID, req *request.UpdateRoomRequest) (*entity.Room, error)
	DeleteRoom(ctx context.Context, id uuid.UUID) error
}

type roomService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRoomService(repo *repository.Repository, log *zap.Logger) RoomService {
	return &roomService{
		repo: repo,
		log:  log.With(zap.String("service", "room")),
	}
}

func (s *roomService) CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*entity.Room, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	roomTypeID, err := parseID("room_type_id", req.RoomTypeID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureRoomType(ctx, roomTypeID); err != nil {
		return nil, err
	}

	roomNo := strings.TrimSpace(req.RoomNo)
	if err := s.ensureRoomNoFree(ctx, roomNo, uuid.Nil); err != nil {
		return nil, err
	}

	status := entity.RoomStatusAvailable
	if req.Status != "" {
		status = entity.RoomStatus(req.Status)
	}

	now := time.Now()
	room := &entity.Room{
		Base: entity.NewBase(now),

		RoomNo:        roomNo,
		RoomTypeID:    roomTypeID,
		BedType:       req.BedType,
		Size:          req.Size,
		FloorNo:       req.FloorNo,
		Status:        status,
		Amenities:     req.Amenities,
		Images:        req.Images,
		PricePerNight: req.PricePerNight,
		Description:   req.Description,
	}

	if err := s.repo.Room.Create(ctx, room); err != nil {
		return nil, err
	}

	s.log.Info("Room created",
		zap.String("room_id", room.ID.String()),
		zap.String("room_no", room.RoomNo))

	return room, nil
}

func (s *roomService) GetRoom(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, apperr.NotFound("room", id.String())
	}
	return room, nil
}

func (s *roomService) ListRooms(ctx context.Context, req *request.ListRoomsRequest) ([]*entity.Room, int64, error) {
	if err := validateRequest(req); err != nil {
		return nil, 0, err
	}

	filter := repository.RoomFilter{
		Status:  entity.RoomStatus(req.Status),
		FloorNo: req.FloorNo,
		Search:  strings.TrimSpace(req.Search),
		Limit:   req.Limit(),
		Offset:  req.Offset(),
	}
	if req.RoomTypeID != "" {
		id, err := parseID("room_type_id", req.RoomTypeID)
		if err != nil {
			return nil, 0, err
		}
		filter.RoomTypeID = &id
	}

	rooms, err := s.repo.Room.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repo.Room.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return rooms, total, nil
}

// AvailableRooms returns the rooms that could take a stay over the range.
func (s *roomService) AvailableRooms(ctx context.Context, req *request.AvailableRoomsRequest) ([]*entity.Room, error) {
	if err := validateRequest(req); err != nil {
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

	filter := repository.RoomFilter{Status: entity.RoomStatusAvailable}
	if req.RoomTypeID != "" {
		id, err := parseID("room_type_id", req.RoomTypeID)
		if err != nil {
			return nil, err
		}
		filter.RoomTypeID = &id
	}

	rooms, err := s.repo.Room.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.Booking.FindActiveInRange(ctx, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	available := make([]*entity.Room, 0, len(rooms))
	for _, room := range rooms {
		if engine.IsBookable(room, checkIn, checkOut, existing) {
			available = append(available, room)
		}
	}

	return available, nil
}

func (s *roomService) UpdateRoom(ctx context.Context, id uuid.UUID, req *request.UpdateRoomRequest) (*entity.Room, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	room, err := s.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.RoomNo != nil {
		roomNo := strings.TrimSpace(*req.RoomNo)
		if roomNo != room.RoomNo {
			if err := s.ensureRoomNoFree(ctx, roomNo, id); err != nil {
				return nil, err
			}
			room.RoomNo = roomNo
		}
	}
	if req.RoomTypeID != nil {
		roomTypeID, err := parseID("room_type_id", *req.RoomTypeID)
		if err != nil {
			return nil, err
		}
		if err := s.ensureRoomType(ctx, roomTypeID); err != nil {
			return nil, err
		}
		room.RoomTypeID = roomTypeID
	}
	if req.BedType != nil {
		room.BedType = *req.BedType
	}
	if req.Size != nil {
		room.Size = *req.Size
	}
	if req.FloorNo != nil {
		room.FloorNo = *req.FloorNo
	}
	if req.PricePerNight != nil {
		room.PricePerNight = *req.PricePerNight
	}
	if req.Status != nil {
		room.Status = entity.RoomStatus(*req.Status)
	}
	if req.Amenities != nil {
		room.Amenities = req.Amenities
	}
	if req.Images != nil {
		room.Images = req.Images
	}
	if req.Description != nil {
		room.Description = req.Description
	}
	room.Touch(time.Now())

	if err := s.repo.Room.Update(ctx, room); err != nil {
		return nil, err
	}

	s.log.Info("Room updated", zap.String("room_id", id.String()))
	return room, nil
}

// DeleteRoom refuses while any booking, cancelled or not, references the room.
func (s *roomService) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetRoom(ctx, id); err != nil {
		return err
	}

	bookings, err := s.repo.Booking.CountByRoom(ctx, id)
	if err != nil {
		return err
	}
	if bookings > 0 {
		return fmt.Errorf("room %s has %d bookings: %w", id.String(), bookings, apperr.ErrReferentialIntegrity)
	}

	if err := s.repo.Room.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("Room deleted", zap.String("room_id", id.String()))
	return nil
}

func (s *roomService) ensureRoomType(ctx context.Context, id uuid.UUID) error {
	roomType, err := s.repo.RoomType.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if roomType == nil {
		return apperr.NotFound("room type", id.String())
	}
	return nil
}

func (s *roomService) ensureRoomNoFree(ctx context.Context, roomNo string, self uuid.UUID) error {
	existing, err := s.repo.Room.FindByRoomNo(ctx, roomNo)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != self {
		return fmt.Errorf("room %q: %w", roomNo, apperr.ErrDuplicateKey)
	}
	return nil
}
