package usecase

import (
	"context"
	"iter"
	"sort"
	"strings"
	"sync"
	"time"

	"hotel-booking/internal/apperr"
	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/engine"

	"github.com/google/uuid"
)

// store is an in-memory stand-in for the database shared by the fake repositories.
type store struct {
	mu        sync.Mutex
	users     map[uuid.UUID]*entity.User
	sessions  map[uuid.UUID]*entity.Session
	roomTypes map[uuid.UUID]*entity.RoomType
	rooms     map[uuid.UUID]*entity.Room
	bookings  map[uuid.UUID]*entity.Booking
	seq       int64
	order     map[uuid.UUID]int64
}

func newStore() *store {
	return &store{
		users:     map[uuid.UUID]*entity.User{},
		sessions:  map[uuid.UUID]*entity.Session{},
		roomTypes: map[uuid.UUID]*entity.RoomType{},
		rooms:     map[uuid.UUID]*entity.Room{},
		bookings:  map[uuid.UUID]*entity.Booking{},
		order:     map[uuid.UUID]int64{},
	}
}

func (s *store) repository() *repository.Repository {
	return &repository.Repository{
		User:     &fakeUserRepo{s},
		Session:  &fakeSessionRepo{s},
		RoomType: &fakeRoomTypeRepo{s},
		Room:     &fakeRoomRepo{s},
		Booking:  &fakeBookingRepo{s},
	}
}

// passTx runs fn directly; the fakes are already serialized by store.mu.
type passTx struct{}

func (passTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func clone[T any](v *T) *T {
	c := *v
	return &c
}

// ==================== USERS ====================

type fakeUserRepo struct{ s *store }

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return apperr.ErrDuplicateKey
		}
	}
	r.s.users[user.ID] = clone(user)
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[id]; ok {
		return clone(u), nil
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			return clone(u), nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.User
	for _, u := range r.s.users {
		out = append(out, clone(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return page(out, limit, offset), nil
}

func (r *fakeUserRepo) CountAll(context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.users)), nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return apperr.NotFound("user", id.String())
	}
	delete(r.s.users, id)
	return nil
}

// ==================== SESSIONS ====================

type fakeSessionRepo struct{ s *store }

func (r *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.sessions[session.Token] = clone(session)
	return nil
}

func (r *fakeSessionRepo) FindValidSession(_ context.Context, token uuid.UUID) (*entity.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sess, ok := r.s.sessions[token]
	if !ok || !sess.Live(time.Now()) {
		return nil, nil
	}
	return clone(sess), nil
}

func (r *fakeSessionRepo) Revoke(_ context.Context, token uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sess, ok := r.s.sessions[token]
	if !ok || sess.RevokedAt != nil {
		return apperr.NotFound("session", token.String())
	}
	now := time.Now()
	sess.RevokedAt = &now
	return nil
}

func (r *fakeSessionRepo) PurgeExpired(_ context.Context, before time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for token, sess := range r.s.sessions {
		if sess.ExpiresAt.Before(before) {
			delete(r.s.sessions, token)
			n++
		}
	}
	return n, nil
}

// ==================== ROOM TYPES ====================

type fakeRoomTypeRepo struct{ s *store }

func (r *fakeRoomTypeRepo) Create(_ context.Context, rt *entity.RoomType) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.roomTypes {
		if existing.Name == rt.Name {
			return apperr.ErrDuplicateKey
		}
	}
	r.s.roomTypes[rt.ID] = clone(rt)
	return nil
}

func (r *fakeRoomTypeRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.RoomType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if rt, ok := r.s.roomTypes[id]; ok {
		return clone(rt), nil
	}
	return nil, nil
}

func (r *fakeRoomTypeRepo) FindByName(_ context.Context, name string) (*entity.RoomType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, rt := range r.s.roomTypes {
		if rt.Name == name {
			return clone(rt), nil
		}
	}
	return nil, nil
}

func (r *fakeRoomTypeRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.RoomType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.RoomType
	for _, rt := range r.s.roomTypes {
		out = append(out, clone(rt))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return page(out, limit, offset), nil
}

func (r *fakeRoomTypeRepo) CountAll(context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.roomTypes)), nil
}

func (r *fakeRoomTypeRepo) Update(_ context.Context, rt *entity.RoomType) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.roomTypes[rt.ID]; !ok {
		return apperr.NotFound("room type", rt.ID.String())
	}
	r.s.roomTypes[rt.ID] = clone(rt)
	return nil
}

func (r *fakeRoomTypeRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.roomTypes[id]; !ok {
		return apperr.NotFound("room type", id.String())
	}
	delete(r.s.roomTypes, id)
	return nil
}

// ==================== ROOMS ====================

type fakeRoomRepo struct{ s *store }

func (r *fakeRoomRepo) Create(_ context.Context, room *entity.Room) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.rooms {
		if existing.RoomNo == room.RoomNo {
			return apperr.ErrDuplicateKey
		}
	}
	r.s.rooms[room.ID] = clone(room)
	return nil
}

func (r *fakeRoomRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Room, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if room, ok := r.s.rooms[id]; ok {
		return clone(room), nil
	}
	return nil, nil
}

func (r *fakeRoomRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeRoomRepo) FindByRoomNo(_ context.Context, roomNo string) (*entity.Room, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, room := range r.s.rooms {
		if room.RoomNo == roomNo {
			return clone(room), nil
		}
	}
	return nil, nil
}

func (r *fakeRoomRepo) matching(filter repository.RoomFilter) []*entity.Room {
	var out []*entity.Room
	for _, room := range r.s.rooms {
		if filter.RoomTypeID != nil && room.RoomTypeID != *filter.RoomTypeID {
			continue
		}
		if filter.Status != "" && room.Status != filter.Status {
			continue
		}
		if filter.FloorNo > 0 && room.FloorNo != filter.FloorNo {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(room.RoomNo), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, clone(room))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoomNo < out[j].RoomNo })
	return out
}

func (r *fakeRoomRepo) FindAll(_ context.Context, filter repository.RoomFilter) ([]*entity.Room, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return page(r.matching(filter), filter.Limit, filter.Offset), nil
}

func (r *fakeRoomRepo) Count(_ context.Context, filter repository.RoomFilter) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.matching(filter))), nil
}

func (r *fakeRoomRepo) CountByRoomType(_ context.Context, roomTypeID uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, room := range r.s.rooms {
		if room.RoomTypeID == roomTypeID {
			n++
		}
	}
	return n, nil
}

func (r *fakeRoomRepo) Update(_ context.Context, room *entity.Room) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.rooms[room.ID]; !ok {
		return apperr.NotFound("room", room.ID.String())
	}
	r.s.rooms[room.ID] = clone(room)
	return nil
}

func (r *fakeRoomRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.rooms[id]; !ok {
		return apperr.NotFound("room", id.String())
	}
	delete(r.s.rooms, id)
	return nil
}

// ==================== BOOKINGS ====================

type fakeBookingRepo struct{ s *store }

// Create enforces the unique confirmation and the room overlap exclusion
// the way the database constraints do.
func (r *fakeBookingRepo) Create(_ context.Context, b *entity.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.bookings {
		if existing.Confirmation == b.Confirmation {
			return apperr.ErrDuplicateKey
		}
	}
	if err := r.excludeOverlap(b); err != nil {
		return err
	}
	r.s.seq++
	r.s.order[b.ID] = r.s.seq
	r.s.bookings[b.ID] = clone(b)
	return nil
}

func (r *fakeBookingRepo) excludeOverlap(b *entity.Booking) error {
	if b.RoomID == nil || !b.Status.IsActive() {
		return nil
	}
	for _, existing := range r.s.bookings {
		if existing.ID == b.ID || existing.RoomID == nil || *existing.RoomID != *b.RoomID || !existing.Status.IsActive() {
			continue
		}
		if engine.Overlaps(existing.CheckIn, existing.CheckOut, b.CheckIn, b.CheckOut) {
			return apperr.ErrRoomUnavailable
		}
	}
	return nil
}

func (r *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if b, ok := r.s.bookings[id]; ok {
		return clone(b), nil
	}
	return nil, nil
}

func (r *fakeBookingRepo) ExistsByConfirmation(_ context.Context, code string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, b := range r.s.bookings {
		if b.Confirmation == code {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBookingRepo) Update(_ context.Context, b *entity.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.bookings[b.ID]; !ok {
		return apperr.NotFound("booking", b.ID.String())
	}
	if err := r.excludeOverlap(b); err != nil {
		return err
	}
	r.s.bookings[b.ID] = clone(b)
	return nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.BookingStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.bookings[id]
	if !ok {
		return apperr.NotFound("booking", id.String())
	}
	b.Status = status
	b.UpdatedAt = time.Now()
	return nil
}

func (r *fakeBookingRepo) DeleteByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for id, b := range r.s.bookings {
		if b.UserID == userID {
			delete(r.s.bookings, id)
			n++
		}
	}
	return n, nil
}

func (r *fakeBookingRepo) FindActiveByRoom(_ context.Context, roomID uuid.UUID, excludeID *uuid.UUID) ([]*entity.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Booking
	for _, b := range r.s.bookings {
		if b.RoomID == nil || *b.RoomID != roomID || !b.Status.IsActive() {
			continue
		}
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		out = append(out, clone(b))
	}
	return out, nil
}

func (r *fakeBookingRepo) FindActiveInRange(_ context.Context, from, to time.Time) ([]*entity.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Booking
	for _, b := range r.s.bookings {
		if b.RoomID == nil || !b.Status.IsActive() {
			continue
		}
		if engine.Overlaps(b.CheckIn, b.CheckOut, from, to) {
			out = append(out, clone(b))
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) Stream(_ context.Context, filter repository.BookingFilter) iter.Seq2[*entity.Booking, error] {
	return func(yield func(*entity.Booking, error) bool) {
		r.s.mu.Lock()
		var out []*entity.Booking
		for _, b := range r.s.bookings {
			if filter.UserID != nil && b.UserID != *filter.UserID {
				continue
			}
			if filter.Status != "" && b.Status != filter.Status {
				continue
			}
			if filter.Search != "" {
				q := strings.ToLower(filter.Search)
				if !strings.Contains(strings.ToLower(b.GuestName), q) &&
					!strings.Contains(strings.ToLower(b.Confirmation), q) {
					continue
				}
			}
			if filter.CheckInFrom != nil && b.CheckIn.Before(*filter.CheckInFrom) {
				continue
			}
			if filter.CheckOutTo != nil && b.CheckOut.After(*filter.CheckOutTo) {
				continue
			}
			out = append(out, clone(b))
		}
		sort.Slice(out, func(i, j int) bool { return r.s.order[out[i].ID] > r.s.order[out[j].ID] })
		r.s.mu.Unlock()

		for _, b := range page(out, filter.Limit, filter.Offset) {
			if !yield(b, nil) {
				return
			}
		}
	}
}

func (r *fakeBookingRepo) CountByRoom(_ context.Context, roomID uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, b := range r.s.bookings {
		if b.RoomID != nil && *b.RoomID == roomID {
			n++
		}
	}
	return n, nil
}

func (r *fakeBookingRepo) CountByRoomType(_ context.Context, roomTypeID uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, b := range r.s.bookings {
		if b.RoomTypeID == roomTypeID {
			n++
		}
	}
	return n, nil
}

func page[T any](items []T, limit, offset int) []T {
	if limit <= 0 {
		return items
	}
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
