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

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RoomTypeService interface {
	CreateRoomType(ctx context.Context, req *request.CreateRoomTypeRequest) (*entity.RoomType, error)
	GetRoomType(ctx context.Context, id uuid.UUID) (*entity.RoomType, error)
	ListRoomTypes(ctx context.Context, req *request.PaginatedRequest) ([]*entity.RoomType, int64, error)
	UpdateRoomType(ctx context.Context, id uuid.UUID, req *request.UpdateRoomTypeRequest) (*entity.RoomType, error)
	DeleteRoomType(ctx context.Context, id uuid.UUID) error
}

type roomTypeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRoomTypeService(repo *repository.Repository, log *zap.Logger) RoomTypeService {
	return &roomTypeService{
		repo: repo,
		log:  log.With(zap.String("service", "room_type")),
	}
}

func (s *roomTypeService) CreateRoomType(ctx context.Context, req *request.CreateRoomTypeRequest) (*entity.RoomType, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if err := s.ensureNameFree(ctx, name, uuid.Nil); err != nil {
		return nil, err
	}

	now := time.Now()
	roomType := &entity.RoomType{
		Base: entity.NewBase(now),

		Name:        name,
		Price:       req.Price,
		MaxGuests:   req.MaxGuests,
		Description: req.Description,
		Image:       req.Image,
	}

	if err := s.repo.RoomType.Create(ctx, roomType); err != nil {
		return nil, err
	}

	s.log.Info("Room type created",
		zap.String("room_type_id", roomType.ID.String()),
		zap.String("name", roomType.Name),
		zap.Stringer("price", roomType.Price))

	return roomType, nil
}

func (s *roomTypeService) GetRoomType(ctx context.Context, id uuid.UUID) (*entity.RoomType, error) {
	roomType, err := s.repo.RoomType.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if roomType == nil {
		return nil, apperr.NotFound("room type", id.String())
	}
	return roomType, nil
}

func (s *roomTypeService) ListRoomTypes(ctx context.Context, req *request.PaginatedRequest) ([]*entity.RoomType, int64, error) {
	if err := validateRequest(req); err != nil {
		return nil, 0, err
	}

	roomTypes, err := s.repo.RoomType.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repo.RoomType.CountAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	return roomTypes, total, nil
}

func (s *roomTypeService) UpdateRoomType(ctx context.Context, id uuid.UUID, req *request.UpdateRoomTypeRequest) (*entity.RoomType, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	roomType, err := s.GetRoomType(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name != roomType.Name {
			if err := s.ensureNameFree(ctx, name, id); err != nil {
				return nil, err
			}
			roomType.Name = name
		}
	}
	if req.Price != nil {
		roomType.Price = *req.Price
	}
	if req.MaxGuests != nil {
		roomType.MaxGuests = *req.MaxGuests
	}
	if req.Description != nil {
		roomType.Description = req.Description
	}
	if req.Image != nil {
		roomType.Image = req.Image
	}
	roomType.Touch(time.Now())

	if err := s.repo.RoomType.Update(ctx, roomType); err != nil {
		return nil, err
	}

	s.log.Info("Room type updated", zap.String("room_type_id", id.String()))
	return roomType, nil
}

// DeleteRoomType refuses while any room or booking still references the type.
func (s *roomTypeService) DeleteRoomType(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetRoomType(ctx, id); err != nil {
		return err
	}

	rooms, err := s.repo.Room.CountByRoomType(ctx, id)
	if err != nil {
		return err
	}
	bookings, err := s.repo.Booking.CountByRoomType(ctx, id)
	if err != nil {
		return err
	}
	if rooms > 0 || bookings > 0 {
		s.log.Warn("Room type still referenced",
			zap.String("room_type_id", id.String()),
			zap.Int64("rooms", rooms),
			zap.Int64("bookings", bookings))
		return fmt.Errorf("room type %s has %d rooms and %d bookings: %w",
			id.String(), rooms, bookings, apperr.ErrReferentialIntegrity)
	}

	if err := s.repo.RoomType.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("Room type deleted", zap.String("room_type_id", id.String()))
	return nil
}

func (s *roomTypeService) ensureNameFree(ctx context.Context, name string, self uuid.UUID) error {
	existing, err := s.repo.RoomType.FindByName(ctx, name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != self {
		return fmt.Errorf("room type %q: %w", name, apperr.ErrDuplicateKey)
	}
	return nil
}
