package engine_test

import (
	"testing"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/engine"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var day0 = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func d(n int) time.Time { return day0.AddDate(0, 0, n) }

func room101() *entity.Room {
	return &entity.Room{
		Base:   entity.Base{ID: uuid.New()},
		RoomNo: "101",
		Status: entity.RoomStatusAvailable,
	}
}

func bookingOn(room *entity.Room, in, out time.Time, status entity.BookingStatus) *entity.Booking {
	id := room.ID
	return &entity.Booking{
		Base:     entity.Base{ID: uuid.New()},
		RoomID:   &id,
		CheckIn:  in,
		CheckOut: out,
		Status:   status,
	}
}

func TestIsBookable_EmptyRoom(t *testing.T) {
	require.True(t, engine.IsBookable(room101(), d(0), d(2), nil))
}

func TestIsBookable_InvalidRangeFailsClosed(t *testing.T) {
	r := room101()
	require.False(t, engine.IsBookable(r, d(2), d(2), nil))
	require.False(t, engine.IsBookable(r, d(3), d(1), nil))
	require.False(t, engine.IsBookable(nil, d(0), d(1), nil))
}

func TestIsBookable_RoomStatus(t *testing.T) {
	for _, status := range []entity.RoomStatus{entity.RoomStatusBooked, entity.RoomStatusMaintenance} {
		r := room101()
		r.Status = status
		require.False(t, engine.IsBookable(r, d(0), d(1), nil), status)
	}
}

func TestIsBookable_Overlap(t *testing.T) {
	r := room101()
	existing := []*entity.Booking{bookingOn(r, d(0), d(2), entity.BookingStatusConfirmed)}

	require.False(t, engine.IsBookable(r, d(1), d(3), existing), "overlapping stay")
	require.False(t, engine.IsBookable(r, d(-1), d(5), existing), "enclosing stay")
	require.False(t, engine.IsBookable(r, d(2), d(4), existing), "same-day turnover conflicts")
	require.False(t, engine.IsBookable(r, d(-2), d(0), existing), "ending on existing check-in conflicts")
	require.True(t, engine.IsBookable(r, d(3), d(5), existing), "gap of one day")
	require.True(t, engine.IsBookable(r, d(-3), d(-1), existing))
}

func TestIsBookable_IgnoresCancelledAndOtherRooms(t *testing.T) {
	r := room101()
	other := room101()
	existing := []*entity.Booking{
		bookingOn(r, d(0), d(2), entity.BookingStatusCancelled),
		bookingOn(other, d(0), d(2), entity.BookingStatusCheckedIn),
	}
	require.True(t, engine.IsBookable(r, d(1), d(3), existing))
}

func TestIsBookable_EveryActiveStatusBlocks(t *testing.T) {
	r := room101()
	for _, s := range []entity.BookingStatus{
		entity.BookingStatusConfirmed,
		entity.BookingStatusArriving,
		entity.BookingStatusCheckedIn,
		entity.BookingStatusDeparting,
	} {
		existing := []*entity.Booking{bookingOn(r, d(0), d(2), s)}
		require.False(t, engine.IsBookable(r, d(1), d(2), existing), s)
	}
}

func TestOverlapsIsSymmetric(t *testing.T) {
	cases := [][4]int{{0, 2, 1, 3}, {0, 2, 2, 4}, {0, 2, 3, 4}, {0, 5, 1, 2}, {4, 6, 0, 3}}
	for _, c := range cases {
		a := engine.Overlaps(d(c[0]), d(c[1]), d(c[2]), d(c[3]))
		b := engine.Overlaps(d(c[2]), d(c[3]), d(c[0]), d(c[1]))
		require.Equal(t, a, b, c)
	}
}

func TestComputeNights(t *testing.T) {
	require.Equal(t, 2, engine.ComputeNights(d(0), d(2)))
	require.Equal(t, 1, engine.ComputeNights(d(0), d(1).Add(23*time.Hour)))
	require.Equal(t, 31, engine.ComputeNights(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)))
}

func TestComputePrice_Deluxe(t *testing.T) {
	p := engine.ComputePrice(12000, 2)
	require.Equal(t, entity.Money(24000), p.Subtotal)
	require.Equal(t, entity.Money(2400), p.Tax)
	require.Equal(t, entity.Money(26400), p.Total)
	require.Equal(t, "264.00", p.Total.String())
}

func TestComputePrice_RoundsHalfUp(t *testing.T) {
	// 99.95 × 1 night: tax 9.995 -> 10.00
	p := engine.ComputePrice(9995, 1)
	require.Equal(t, entity.Money(1000), p.Tax)
	require.Equal(t, entity.Money(10995), p.Total)

	// 33.33 × 3 nights: subtotal 99.99, tax 9.999 -> 10.00
	p = engine.ComputePrice(3333, 3)
	require.Equal(t, entity.Money(9999), p.Subtotal)
	require.Equal(t, entity.Money(10999), p.Total)
}

func TestComputePrice_StableUnderRecomputation(t *testing.T) {
	first := engine.ComputePrice(8050, 7)
	for i := 0; i < 100; i++ {
		require.Equal(t, first, engine.ComputePrice(first.Rate, first.Nights))
	}
}

func TestPriceStay(t *testing.T) {
	p := engine.PriceStay(12000, d(0), d(2))
	require.Equal(t, 2, p.Nights)
	require.Equal(t, entity.Money(26400), p.Total)
}

func TestComputeNights_MultiCenturyRange(t *testing.T) {
	in := time.Date(1700, 1, 1, 0, 0, 0, 0, time.UTC)
	out := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	require.True(t, engine.ValidRange(in, out))
	require.Equal(t, 109572, engine.ComputeNights(in, out))

	p := engine.PriceStay(100, in, out)
	require.Equal(t, entity.Money(12052920), p.Total)
	require.Equal(t, "120529.20", p.Total.String())
}
