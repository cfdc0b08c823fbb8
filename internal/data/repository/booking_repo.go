package repository

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"
	"time"

	"hotel-booking/internal/apperr"
	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// BookingFilter narrows Stream. Zero values are ignored.
type BookingFilter struct {
	UserID      *uuid.UUID
	Status      entity.BookingStatus
	Search      string // guest name or confirmation, case-insensitive
	CheckInFrom *time.Time
	CheckOutTo  *time.Time
	Limit       int
	Offset      int
}

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	ExistsByConfirmation(ctx context.Context, code string) (bool, error)
	Update(ctx context.Context, booking *entity.Booking) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error)

	// Business queries
	FindActiveByRoom(ctx context.Context, roomID uuid.UUID, excludeID *uuid.UUID) ([]*entity.Booking, error)
	FindActiveInRange(ctx context.Context, from, to time.Time) ([]*entity.Booking, error)
	Stream(ctx context.Context, filter BookingFilter) iter.Seq2[*entity.Booking, error]
	CountByRoom(ctx context.Context, roomID uuid.UUID) (int64, error)
	CountByRoomType(ctx context.Context, roomTypeID uuid.UUID) (int64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `
	id, user_id, guest_name, guest_count, confirmation, room_type_id, room_id,
	check_in, check_out, status, (price * 100)::bigint, authorize_card,
	created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.GuestName,
		&booking.GuestCount,
		&booking.Confirmation,
		&booking.RoomTypeID,
		&booking.RoomID,
		&booking.CheckIn,
		&booking.CheckOut,
		&booking.Status,
		&booking.Price,
		&booking.AuthorizeCard,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, user_id, guest_name, guest_count, confirmation, room_type_id, room_id,
		                      check_in, check_out, status, price, authorize_card, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11::numeric / 100, $12, $13, $14)
	`

	_, err := database.Conn(ctx, r.db).Exec(ctx, query,
		booking.ID,
		booking.UserID,
		booking.GuestName,
		booking.GuestCount,
		booking.Confirmation,
		booking.RoomTypeID,
		booking.RoomID,
		booking.CheckIn,
		booking.CheckOut,
		booking.Status,
		booking.Price.Cents(),
		booking.AuthorizeCard,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("confirmation", booking.Confirmation),
			zap.String("user_id", booking.UserID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.Confirmation, translate(err))
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(database.Conn(ctx, r.db).QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) ExistsByConfirmation(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := database.Conn(ctx, r.db).
		QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM bookings WHERE confirmation = $1)`, code).
		Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check confirmation code", zap.Error(err))
		return false, fmt.Errorf("check confirmation %s: %w", code, err)
	}
	return exists, nil
}

// Update writes every mutable column. Confirmation and owner never change.
func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET guest_name = $2, guest_count = $3, room_type_id = $4, room_id = $5,
		    check_in = $6, check_out = $7, status = $8, price = $9::numeric / 100,
		    authorize_card = $10, updated_at = $11
		WHERE id = $1
	`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query,
		booking.ID,
		booking.GuestName,
		booking.GuestCount,
		booking.RoomTypeID,
		booking.RoomID,
		booking.CheckIn,
		booking.CheckOut,
		booking.Status,
		booking.Price.Cents(),
		booking.AuthorizeCard,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("update booking %s: %w", booking.ID.String(), translate(err))
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("booking", booking.ID.String())
	}

	return nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	query := `
		UPDATE bookings
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking status %s: %w", id.String(), translate(err))
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("booking", id.String())
	}

	return nil
}

func (r *bookingRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	result, err := database.Conn(ctx, r.db).Exec(ctx, `DELETE FROM bookings WHERE user_id = $1`, userID)
	if err != nil {
		r.log.Error("Failed to delete user bookings",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("delete bookings of user %s: %w", userID.String(), err)
	}
	return result.RowsAffected(), nil
}

func (r *bookingRepository) collect(rows pgx.Rows) ([]*entity.Booking, error) {
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}
	return bookings, nil
}

// FindActiveByRoom returns the non-cancelled bookings held on a room,
// leaving out excludeID when it is set.
func (r *bookingRepository) FindActiveByRoom(ctx context.Context, roomID uuid.UUID, excludeID *uuid.UUID) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE room_id = $1
		  AND status <> $2
		  AND ($3::uuid IS NULL OR id <> $3::uuid)
		ORDER BY check_in ASC
	`

	rows, err := database.Conn(ctx, r.db).Query(ctx, query, roomID, entity.BookingStatusCancelled, excludeID)
	if err != nil {
		r.log.Error("Failed to find active bookings for room",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return nil, fmt.Errorf("find active bookings for room %s: %w", roomID.String(), err)
	}

	return r.collect(rows)
}

// FindActiveInRange returns non-cancelled bookings with an assigned room
// whose stay touches [from, to] under the inclusive boundary policy.
func (r *bookingRepository) FindActiveInRange(ctx context.Context, from, to time.Time) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE room_id IS NOT NULL
		  AND status <> $1
		  AND check_in <= $3
		  AND check_out >= $2
	`

	rows, err := database.Conn(ctx, r.db).Query(ctx, query, entity.BookingStatusCancelled, from, to)
	if err != nil {
		r.log.Error("Failed to find bookings in range", zap.Error(err))
		return nil, fmt.Errorf("find bookings in range: %w", err)
	}

	return r.collect(rows)
}

// Stream yields bookings straight off the cursor. The rows are released
// when the caller stops ranging.
func (r *bookingRepository) Stream(ctx context.Context, filter BookingFilter) iter.Seq2[*entity.Booking, error] {
	return func(yield func(*entity.Booking, error) bool) {
		var queryBuilder strings.Builder
		queryBuilder.WriteString(`SELECT ` + bookingColumns + ` FROM bookings WHERE 1=1`)

		args := []any{}
		argCount := 1

		if filter.UserID != nil {
			queryBuilder.WriteString(fmt.Sprintf(" AND user_id = $%d", argCount))
			args = append(args, *filter.UserID)
			argCount++
		}
		if filter.Status != "" {
			queryBuilder.WriteString(fmt.Sprintf(" AND status = $%d", argCount))
			args = append(args, filter.Status)
			argCount++
		}
		if filter.Search != "" {
			queryBuilder.WriteString(fmt.Sprintf(" AND (guest_name ILIKE $%d OR confirmation ILIKE $%d)", argCount, argCount))
			args = append(args, "%"+filter.Search+"%")
			argCount++
		}
		if filter.CheckInFrom != nil {
			queryBuilder.WriteString(fmt.Sprintf(" AND check_in >= $%d", argCount))
			args = append(args, *filter.CheckInFrom)
			argCount++
		}
		if filter.CheckOutTo != nil {
			queryBuilder.WriteString(fmt.Sprintf(" AND check_out <= $%d", argCount))
			args = append(args, *filter.CheckOutTo)
			argCount++
		}

		queryBuilder.WriteString(" ORDER BY created_at DESC")
		if filter.Limit > 0 {
			queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argCount, argCount+1))
			args = append(args, filter.Limit, filter.Offset)
		}

		rows, err := database.Conn(ctx, r.db).Query(ctx, queryBuilder.String(), args...)
		if err != nil {
			r.log.Error("Failed to list bookings", zap.Error(err))
			yield(nil, fmt.Errorf("list bookings: %w", err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			booking, err := scanBooking(rows)
			if err != nil {
				r.log.Error("Failed to scan booking row", zap.Error(err))
				yield(nil, fmt.Errorf("scan booking row: %w", err))
				return
			}
			if !yield(booking, nil) {
				return
			}
		}

		if err := rows.Err(); err != nil {
			yield(nil, fmt.Errorf("iterate booking rows: %w", err))
		}
	}
}

func (r *bookingRepository) CountByRoom(ctx context.Context, roomID uuid.UUID) (int64, error) {
	var count int64
	err := database.Conn(ctx, r.db).
		QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE room_id = $1`, roomID).
		Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by room", zap.Error(err))
		return 0, fmt.Errorf("count bookings by room %s: %w", roomID.String(), err)
	}
	return count, nil
}

func (r *bookingRepository) CountByRoomType(ctx context.Context, roomTypeID uuid.UUID) (int64, error) {
	var count int64
	err := database.Conn(ctx, r.db).
		QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE room_type_id = $1`, roomTypeID).
		Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by room type", zap.Error(err))
		return 0, fmt.Errorf("count bookings by room type %s: %w", roomTypeID.String(), err)
	}
	return count, nil
}
