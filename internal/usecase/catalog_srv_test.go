package usecase

import (
	"context"
	"testing"

	"hotel-booking/internal/apperr"
	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCatalog(t *testing.T) (*store, RoomTypeService, RoomService) {
	t.Helper()
	st := newStore()
	repo := st.repository()
	return st, NewRoomTypeService(repo, zap.NewNop()), NewRoomService(repo, zap.NewNop())
}

func roomReq(roomTypeID uuid.UUID, no string) *request.CreateRoomRequest {
	return &request.CreateRoomRequest{
		RoomNo:        no,
		RoomTypeID:    roomTypeID.String(),
		BedType:       "queen",
		Size:          24,
		FloorNo:       1,
		PricePerNight: 15000,
	}
}

func TestRoomType_CreateAndDuplicateName(t *testing.T) {
	_, types, _ := newCatalog(t)
	ctx := context.Background()

	rt, err := types.CreateRoomType(ctx, &request.CreateRoomTypeRequest{Name: " Deluxe ", Price: 12000, MaxGuests: 2})
	require.NoError(t, err)
	require.Equal(t, "Deluxe", rt.Name)
	require.Equal(t, entity.Money(12000), rt.Price)

	_, err = types.CreateRoomType(ctx, &request.CreateRoomTypeRequest{Name: "Deluxe", Price: 9000, MaxGuests: 2})
	require.ErrorIs(t, err, apperr.ErrDuplicateKey)

	_, err = types.CreateRoomType(ctx, &request.CreateRoomTypeRequest{Name: "Free", Price: 0, MaxGuests: 2})
	require.ErrorIs(t, err, apperr.ErrValidation)
}

func TestRoomType_UpdateAndList(t *testing.T) {
	_, types, _ := newCatalog(t)
	ctx := context.Background()

	deluxe, err := types.CreateRoomType(ctx, &request.CreateRoomTypeRequest{Name: "Deluxe", Price: 12000, MaxGuests: 2})
	require.NoError(t, err)
	_, err = types.CreateRoomType(ctx, &request.CreateRoomTypeRequest{Name: "Standard", Price: 8000, MaxGuests: 2})
	require.NoError(t, err)

	price := entity.Money(13500)
	updated, err := types.UpdateRoomType(ctx, deluxe.ID, &request.UpdateRoomTypeRequest{Price: &price})
	require.NoError(t, err)
	require.Equal(t, price, updated.Price)

	taken := "Standard"
	_, err = types.UpdateRoomType(ctx, deluxe.ID, &request.UpdateRoomTypeRequest{Name: &taken})
	require.ErrorIs(t, err, apperr.ErrDuplicateKey)

	list, total, err := types.ListRoomTypes(ctx, &request.PaginatedRequest{Page: 1, PerPage: 1})
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, list, 1)
	require.Equal(t, "Deluxe", list[0].Name)

	_, err = types.GetRoomType(ctx, uuid.New())
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRoomType_DeleteRejectedWhileRoomsExist(t *testing.T) {
	st, types, rooms := newCatalog(t)
	ctx := context.Background()

	rt, err := types.CreateRoomType(ctx, &request.CreateRoomTypeRequest{Name: "Deluxe", Price: 12000, MaxGuests: 2})
	require.NoError(t, err)
	room, err := rooms.CreateRoom(ctx, roomReq(rt.ID, "101"))
	require.NoError(t, err)

	err = types.DeleteRoomType(ctx, rt.ID)
	require.ErrorIs(t, err, apperr.ErrReferentialIntegrity)
	require.Len(t, st.rooms, 1)
	require.Contains(t, st.roomTypes, rt.ID)

	require.NoError(t, rooms.DeleteRoom(ctx, room.ID))
	require.NoError(t, types.DeleteRoomType(ctx, rt.ID))
	require.Empty(t, st.roomTypes)

	err = types.DeleteRoomType(ctx, rt.ID)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRoomType_DeleteRejectedWhileBookingsExist(t *testing.T) {
	f := newBookingFixture(t)
	types := NewRoomTypeService(f.store.repository(), zap.NewNop())

	_, err := f.svc.CreateBooking(context.Background(), f.guest, f.createReq(nil, 0, 2))
	require.NoError(t, err)
	delete(f.store.rooms, f.room101.ID)

	err = types.DeleteRoomType(context.Background(), f.deluxe.ID)
	require.ErrorIs(t, err, apperr.ErrReferentialIntegrity)
}

func TestRoom_Create(t *testing.T) {
	st, types, rooms := newCatalog(t)
	ctx := context.Background()

	rt, err := types.CreateRoomType(ctx, &request.CreateRoomTypeRequest{Name: "Deluxe", Price: 12000, MaxGuests: 2})
	require.NoError(t, err)

	room, err := rooms.CreateRoom(ctx, roomReq(rt.ID, "101"))
	require.NoError(t, err)
	require.Equal(t, entity.RoomStatusAvailable, room.Status)

	_, err = rooms.CreateRoom(ctx, roomReq(rt.ID, "101"))
	require.ErrorIs(t, err, apperr.ErrDuplicateKey)

	_, err = rooms.CreateRoom(ctx, roomReq(uuid.New(), "102"))
	require.ErrorIs(t, err, apperr.ErrNotFound)

	bad := roomReq(rt.ID, "103")
	bad.Status = "haunted"
	_, err = rooms.CreateRoom(ctx, bad)
	require.ErrorIs(t, err, apperr.ErrValidation)

	require.Len(t, st.rooms, 1)
}

func TestRoom_UpdateAndList(t *testing.T) {
	_, types, rooms := newCatalog(t)
	ctx := context.Background()

	rt, err := types.CreateRoomType(ctx, &request.CreateRoomTypeRequest{Name: "Deluxe", Price: 12000, MaxGuests: 2})
	require.NoError(t, err)
	a, err := rooms.CreateRoom(ctx, roomReq(rt.ID, "101"))
	require.NoError(t, err)
	_, err = rooms.CreateRoom(ctx, roomReq(rt.ID, "102"))
	require.NoError(t, err)

	status := string(entity.RoomStatusMaintenance)
	updated, err := rooms.UpdateRoom(ctx, a.ID, &request.UpdateRoomRequest{Status: &status})
	require.NoError(t, err)
	require.Equal(t, entity.RoomStatusMaintenance, updated.Status)

	taken := "102"
	_, err = rooms.UpdateRoom(ctx, a.ID, &request.UpdateRoomRequest{RoomNo: &taken})
	require.ErrorIs(t, err, apperr.ErrDuplicateKey)

	list, total, err := rooms.ListRooms(ctx, &request.ListRoomsRequest{Status: "available"})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, "102", list[0].RoomNo)

	list, total, err = rooms.ListRooms(ctx, &request.ListRoomsRequest{Search: "10", RoomTypeID: rt.ID.String()})
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, list, 2)
}

func TestRoom_DeleteRejectedWhileBooked(t *testing.T) {
	f := newBookingFixture(t)
	rooms := NewRoomService(f.store.repository(), zap.NewNop())
	ctx := context.Background()

	b := f.book(t, f.guest, 0, 2)
	_, err := f.svc.Transition(ctx, f.guest, b.ID, ActionCancel, nil)
	require.NoError(t, err)

	err = rooms.DeleteRoom(ctx, f.room101.ID)
	require.ErrorIs(t, err, apperr.ErrReferentialIntegrity)
	require.Contains(t, f.store.rooms, f.room101.ID)
}

func TestRoom_AvailableRooms(t *testing.T) {
	f := newBookingFixture(t)
	rooms := NewRoomService(f.store.repository(), zap.NewNop())
	ctx := context.Background()

	free := f.addRoom("102", entity.RoomStatusAvailable)
	f.addRoom("103", entity.RoomStatusMaintenance)
	f.book(t, f.guest, 0, 2)

	got, err := rooms.AvailableRooms(ctx, &request.AvailableRoomsRequest{CheckIn: date(2), CheckOut: date(4)})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, free.ID, got[0].ID)

	got, err = rooms.AvailableRooms(ctx, &request.AvailableRoomsRequest{CheckIn: date(3), CheckOut: date(4)})
	require.NoError(t, err)
	require.Len(t, got, 2)

	got, err = rooms.AvailableRooms(ctx, &request.AvailableRoomsRequest{
		CheckIn:    date(3),
		CheckOut:   date(4),
		RoomTypeID: uuid.NewString(),
	})
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = rooms.AvailableRooms(ctx, &request.AvailableRoomsRequest{CheckIn: date(4), CheckOut: date(4)})
	require.ErrorIs(t, err, apperr.ErrValidation)
}
