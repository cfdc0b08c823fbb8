package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hotel-booking/internal/apperr"
	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// RoomFilter narrows FindAll and Count. Zero values are ignored.
type RoomFilter struct {
	RoomTypeID *uuid.UUID
	Status     entity.RoomStatus
	FloorNo    int
	Search     string // substring of room_no, case-insensitive
	Limit      int
	Offset     int
}

type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	FindByRoomNo(ctx context.Context, roomNo string) (*entity.Room, error)
	FindAll(ctx context.Context, filter RoomFilter) ([]*entity.Room, error)
	Count(ctx context.Context, filter RoomFilter) (int64, error)
	CountByRoomType(ctx context.Context, roomTypeID uuid.UUID) (int64, error)
	Update(ctx context.Context, room *entity.Room) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

const roomColumns = `
	id, room_no, room_type_id, bed_type, size, floor_no, status,
	amenities, images, (price_per_night * 100)::bigint, description,
	created_at, updated_at`

func scanRoom(row pgx.Row) (*entity.Room, error) {
	var room entity.Room
	err := row.Scan(
		&room.ID,
		&room.RoomNo,
		&room.RoomTypeID,
		&room.BedType,
		&room.Size,
		&room.FloorNo,
		&room.Status,
		&room.Amenities,
		&room.Images,
		&room.PricePerNight,
		&room.Description,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// nonNil keeps JSONB list columns as [] rather than null.
func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	query := `
		INSERT INTO rooms (id, room_no, room_type_id, bed_type, size, floor_no, status,
		                   amenities, images, price_per_night, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::numeric / 100, $11, $12, $13)
	`

	_, err := database.Conn(ctx, r.db).Exec(ctx, query,
		room.ID,
		room.RoomNo,
		room.RoomTypeID,
		room.BedType,
		room.Size,
		room.FloorNo,
		room.Status,
		nonNil(room.Amenities),
		nonNil(room.Images),
		room.PricePerNight.Cents(),
		room.Description,
		room.CreatedAt,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create room",
			zap.Error(err),
			zap.String("room_no", room.RoomNo),
		)
		return fmt.Errorf("create room %s: %w", room.RoomNo, translate(err))
	}

	return nil
}

func (r *roomRepository) findOne(ctx context.Context, query string, arg any) (*entity.Room, error) {
	room, err := scanRoom(database.Conn(ctx, r.db).QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return room, err
}

func (r *roomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	room, err := r.findOne(ctx, `SELECT `+roomColumns+` FROM rooms WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to find room by ID",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return nil, fmt.Errorf("find room by ID %s: %w", id.String(), err)
	}
	return room, nil
}

// FindByIDForUpdate locks the room row until the surrounding transaction
// ends, serializing bookings that target the same room.
func (r *roomRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	room, err := r.findOne(ctx, `SELECT `+roomColumns+` FROM rooms WHERE id = $1 FOR UPDATE`, id)
	if err != nil {
		r.log.Error("Failed to lock room",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return nil, fmt.Errorf("lock room %s: %w", id.String(), err)
	}
	return room, nil
}

func (r *roomRepository) FindByRoomNo(ctx context.Context, roomNo string) (*entity.Room, error) {
	room, err := r.findOne(ctx, `SELECT `+roomColumns+` FROM rooms WHERE room_no = $1`, roomNo)
	if err != nil {
		r.log.Error("Failed to find room by number",
			zap.Error(err),
			zap.String("room_no", roomNo),
		)
		return nil, fmt.Errorf("find room by number %s: %w", roomNo, err)
	}
	return room, nil
}

func buildRoomWhere(filter RoomFilter) (string, []any) {
	var where strings.Builder
	where.WriteString(" WHERE 1=1")

	args := []any{}
	argCount := 1

	if filter.RoomTypeID != nil {
		where.WriteString(fmt.Sprintf(" AND room_type_id = $%d", argCount))
		args = append(args, *filter.RoomTypeID)
		argCount++
	}
	if filter.Status != "" {
		where.WriteString(fmt.Sprintf(" AND status = $%d", argCount))
		args = append(args, filter.Status)
		argCount++
	}
	if filter.FloorNo > 0 {
		where.WriteString(fmt.Sprintf(" AND floor_no = $%d", argCount))
		args = append(args, filter.FloorNo)
		argCount++
	}
	if filter.Search != "" {
		where.WriteString(fmt.Sprintf(" AND room_no ILIKE $%d", argCount))
		args = append(args, "%"+filter.Search+"%")
	}

	return where.String(), args
}

func (r *roomRepository) FindAll(ctx context.Context, filter RoomFilter) ([]*entity.Room, error) {
	where, args := buildRoomWhere(filter)

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + roomColumns + ` FROM rooms`)
	queryBuilder.WriteString(where)
	queryBuilder.WriteString(" ORDER BY floor_no ASC, room_no ASC")

	if filter.Limit > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2))
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := database.Conn(ctx, r.db).Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to get rooms", zap.Error(err))
		return nil, fmt.Errorf("find rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*entity.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate room rows: %w", err)
	}

	return rooms, nil
}

func (r *roomRepository) Count(ctx context.Context, filter RoomFilter) (int64, error) {
	where, args := buildRoomWhere(filter)

	var count int64
	err := database.Conn(ctx, r.db).QueryRow(ctx, `SELECT COUNT(*) FROM rooms`+where, args...).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count rooms", zap.Error(err))
		return 0, fmt.Errorf("count rooms: %w", err)
	}
	return count, nil
}

func (r *roomRepository) CountByRoomType(ctx context.Context, roomTypeID uuid.UUID) (int64, error) {
	var count int64
	err := database.Conn(ctx, r.db).
		QueryRow(ctx, `SELECT COUNT(*) FROM rooms WHERE room_type_id = $1`, roomTypeID).
		Scan(&count)
	if err != nil {
		r.log.Error("Failed to count rooms by type",
			zap.Error(err),
			zap.String("room_type_id", roomTypeID.String()),
		)
		return 0, fmt.Errorf("count rooms by type %s: %w", roomTypeID.String(), err)
	}
	return count, nil
}

func (r *roomRepository) Update(ctx context.Context, room *entity.Room) error {
	query := `
		UPDATE rooms
		SET room_no = $2, room_type_id = $3, bed_type = $4, size = $5, floor_no = $6,
		    status = $7, amenities = $8, images = $9, price_per_night = $10::numeric / 100,
		    description = $11, updated_at = $12
		WHERE id = $1
	`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query,
		room.ID,
		room.RoomNo,
		room.RoomTypeID,
		room.BedType,
		room.Size,
		room.FloorNo,
		room.Status,
		nonNil(room.Amenities),
		nonNil(room.Images),
		room.PricePerNight.Cents(),
		room.Description,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update room",
			zap.Error(err),
			zap.String("room_id", room.ID.String()),
		)
		return fmt.Errorf("update room %s: %w", room.ID.String(), translate(err))
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("room", room.ID.String())
	}

	return nil
}

func (r *roomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := database.Conn(ctx, r.db).Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete room",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return fmt.Errorf("delete room %s: %w", id.String(), translate(err))
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("room", id.String())
	}

	return nil
}
