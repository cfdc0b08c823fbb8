package repository

import (
	"context"
	"errors"
	"fmt"

	"hotel-booking/internal/apperr"
	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RoomTypeRepository interface {
	Create(ctx context.Context, roomType *entity.RoomType) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RoomType, error)
	FindByName(ctx context.Context, name string) (*entity.RoomType, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.RoomType, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, roomType *entity.RoomType) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type roomTypeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomTypeRepository(db database.PgxIface, log *zap.Logger) RoomTypeRepository {
	return &roomTypeRepository{
		db:  db,
		log: log.With(zap.String("repository", "room_type")),
	}
}

// Prices live in NUMERIC(10,2) and travel as integer cents.
const roomTypeColumns = `id, name, (price * 100)::bigint, max_guests, description, image, created_at, updated_at`

func scanRoomType(row pgx.Row) (*entity.RoomType, error) {
	var rt entity.RoomType
	err := row.Scan(
		&rt.ID,
		&rt.Name,
		&rt.Price,
		&rt.MaxGuests,
		&rt.Description,
		&rt.Image,
		&rt.CreatedAt,
		&rt.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *roomTypeRepository) Create(ctx context.Context, roomType *entity.RoomType) error {
	query := `
		INSERT INTO room_types (id, name, price, max_guests, description, image, created_at, updated_at)
		VALUES ($1, $2, $3::numeric / 100, $4, $5, $6, $7, $8)
	`

	_, err := database.Conn(ctx, r.db).Exec(ctx, query,
		roomType.ID,
		roomType.Name,
		roomType.Price.Cents(),
		roomType.MaxGuests,
		roomType.Description,
		roomType.Image,
		roomType.CreatedAt,
		roomType.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create room type",
			zap.Error(err),
			zap.String("name", roomType.Name),
		)
		return fmt.Errorf("create room type %s: %w", roomType.Name, translate(err))
	}

	return nil
}

func (r *roomTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RoomType, error) {
	query := `SELECT ` + roomTypeColumns + ` FROM room_types WHERE id = $1`

	rt, err := scanRoomType(database.Conn(ctx, r.db).QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room type by ID",
			zap.Error(err),
			zap.String("room_type_id", id.String()),
		)
		return nil, fmt.Errorf("find room type by ID %s: %w", id.String(), err)
	}

	return rt, nil
}

func (r *roomTypeRepository) FindByName(ctx context.Context, name string) (*entity.RoomType, error) {
	query := `SELECT ` + roomTypeColumns + ` FROM room_types WHERE name = $1`

	rt, err := scanRoomType(database.Conn(ctx, r.db).QueryRow(ctx, query, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room type by name",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("find room type by name %s: %w", name, err)
	}

	return rt, nil
}

func (r *roomTypeRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.RoomType, error) {
	query := `
		SELECT ` + roomTypeColumns + `
		FROM room_types
		ORDER BY name ASC
		LIMIT $1 OFFSET $2
	`

	rows, err := database.Conn(ctx, r.db).Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to get all room types", zap.Error(err))
		return nil, fmt.Errorf("find all room types: %w", err)
	}
	defer rows.Close()

	var roomTypes []*entity.RoomType
	for rows.Next() {
		rt, err := scanRoomType(rows)
		if err != nil {
			r.log.Error("Failed to scan room type row", zap.Error(err))
			return nil, fmt.Errorf("scan room type row: %w", err)
		}
		roomTypes = append(roomTypes, rt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate room type rows: %w", err)
	}

	return roomTypes, nil
}

func (r *roomTypeRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := database.Conn(ctx, r.db).QueryRow(ctx, `SELECT COUNT(*) FROM room_types`).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count room types", zap.Error(err))
		return 0, fmt.Errorf("count room types: %w", err)
	}
	return count, nil
}

func (r *roomTypeRepository) Update(ctx context.Context, roomType *entity.RoomType) error {
	query := `
		UPDATE room_types
		SET name = $2, price = $3::numeric / 100, max_guests = $4,
		    description = $5, image = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query,
		roomType.ID,
		roomType.Name,
		roomType.Price.Cents(),
		roomType.MaxGuests,
		roomType.Description,
		roomType.Image,
		roomType.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update room type",
			zap.Error(err),
			zap.String("room_type_id", roomType.ID.String()),
		)
		return fmt.Errorf("update room type %s: %w", roomType.ID.String(), translate(err))
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("room type", roomType.ID.String())
	}

	return nil
}

// Delete fails with a referential integrity error while rooms or bookings
// still point at the room type.
func (r *roomTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := database.Conn(ctx, r.db).Exec(ctx, `DELETE FROM room_types WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete room type",
			zap.Error(err),
			zap.String("room_type_id", id.String()),
		)
		return fmt.Errorf("delete room type %s: %w", id.String(), translate(err))
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("room type", id.String())
	}

	return nil
}
