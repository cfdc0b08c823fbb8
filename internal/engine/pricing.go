package engine

import (
	"time"

	"hotel-booking/internal/data/entity"
)

// TaxPercent is applied to every stay.
const TaxPercent = 10

const secondsPerDay = 24 * 60 * 60

type Price struct {
	Nights   int          `json:"nights"`
	Rate     entity.Money `json:"rate"`
	Subtotal entity.Money `json:"subtotal"`
	Tax      entity.Money `json:"tax"`
	Total    entity.Money `json:"total"`
}

// ComputeNights counts calendar days between check-in and check-out. It works
// on Unix seconds because time.Duration saturates after about 292 years.
func ComputeNights(checkIn, checkOut time.Time) int {
	return int((Day(checkOut).Unix() - Day(checkIn).Unix()) / secondsPerDay)
}

// ComputePrice returns subtotal = rate × nights, tax rounded half-up to the cent, and their sum.
func ComputePrice(rate entity.Money, nights int) Price {
	subtotal := int64(rate) * int64(nights)
	tax := roundHalfUp(subtotal*TaxPercent, 100)

	return Price{
		Nights:   nights,
		Rate:     rate,
		Subtotal: entity.Money(subtotal),
		Tax:      entity.Money(tax),
		Total:    entity.Money(subtotal + tax),
	}
}

// PriceStay prices the range between checkIn and checkOut.
func PriceStay(rate entity.Money, checkIn, checkOut time.Time) Price {
	return ComputePrice(rate, ComputeNights(checkIn, checkOut))
}

func roundHalfUp(num, den int64) int64 {
	if num < 0 {
		return -((-num + den/2) / den)
	}
	return (num + den/2) / den
}
