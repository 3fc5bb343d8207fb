package extension

import (
	"time"

	"booking-calculator/internal/domain/car"
)

const (
	halfDayHours = 12
	fullDayHours = 24
)

// Booking is the part of a confirmed booking a quote depends on.
type Booking struct {
	EndDate time.Time
	Rate    car.RateCard
}

type Quote struct {
	AdditionalHours int
	AdditionalPrice car.Money
	NewEnd          time.Time
}

// Submittable is false for zero-effect quotes; callers must not submit them.
func (q Quote) Submittable() bool {
	return q.AdditionalHours > 0
}

// QuoteExtension is a pure function of its inputs.
func QuoteExtension(b Booking, r Request) Quote {
	var (
		hours int
		price car.Money
	)

	switch r.kind {
	case KindHalfDay:
		hours = halfDayHours
		price = b.Rate.HalfDayRate()
	case KindFullDay:
		hours = fullDayHours
		price = b.Rate.DailyRate()
	case KindCustom:
		if r.days > 0 && r.days <= MaxCustomDays {
			hours = fullDayHours * r.days
			price = b.Rate.DailyRate().Times(int64(r.days))
		}
	}

	return Quote{
		AdditionalHours: hours,
		AdditionalPrice: price,
		NewEnd:          b.EndDate.Add(time.Duration(hours) * time.Hour),
	}
}
