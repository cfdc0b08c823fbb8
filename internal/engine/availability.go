// Package engine decides whether a room can be booked for a stay and what the stay costs.
// Everything here is pure: callers load the data and act on the answers.
package engine

import (
	"time"

	"hotel-booking/internal/data/entity"
)

// Day truncates t to its calendar date in UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ValidRange reports whether check-out falls on a later day than check-in.
func ValidRange(checkIn, checkOut time.Time) bool {
	return Day(checkOut).After(Day(checkIn))
}

// Overlaps compares two stays with inclusive boundaries, so a stay that ends on
// the day another begins still conflicts.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return !Day(aIn).After(Day(bOut)) && !Day(aOut).Before(Day(bIn))
}

// IsBookable reports whether room can take a stay from checkIn to checkOut given
// the bookings already recorded for it. The booking being edited must not be in existing.
// An invalid range is never bookable.
func IsBookable(room *entity.Room, checkIn, checkOut time.Time, existing []*entity.Booking) bool {
	if room == nil || !ValidRange(checkIn, checkOut) {
		return false
	}
	if room.Status != entity.RoomStatusAvailable {
		return false
	}
	return len(Conflicts(room, checkIn, checkOut, existing)) == 0
}

// Conflicts returns the active bookings on room that overlap the stay.
func Conflicts(room *entity.Room, checkIn, checkOut time.Time, existing []*entity.Booking) []*entity.Booking {
	var out []*entity.Booking
	for _, b := range existing {
		if b == nil || !b.Status.IsActive() {
			continue
		}
		if b.RoomID == nil || *b.RoomID != room.ID {
			continue
		}
		if Overlaps(b.CheckIn, b.CheckOut, checkIn, checkOut) {
			out = append(out, b)
		}
	}
	return out
}
