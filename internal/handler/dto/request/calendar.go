package request

import (
	"booking-calculator/internal/domain/booking"
	"booking-calculator/internal/usecase/queries"
)

type CalendarQuery struct {
	From string `form:"from"`
	To   string `form:"to"`
}

func (q *CalendarQuery) ToRange() (queries.CalendarRange, error) {
	var rng queries.CalendarRange
	if q.From != "" {
		d, err := booking.ParseDate(q.From)
		if err != nil {
			return queries.CalendarRange{}, err
		}
		rng.From = &d
	}
	if q.To != "" {
		d, err := booking.ParseDate(q.To)
		if err != nil {
			return queries.CalendarRange{}, err
		}
		rng.To = &d
	}
	return rng, nil
}
