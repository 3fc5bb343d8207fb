package queries

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

import (
	"context"
	"time"

	"booking-calculator/internal/domain/booking"
	"booking-calculator/internal/pkg/errs"
	"booking-calculator/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*BookingView, error)
}

type bookingQueriesImpl struct {
	bookings shared.BookingReader
	loc      *time.Location
}

func NewBookingQueries(bookings shared.BookingReader, loc *time.Location) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings, loc: loc}
}

// GetByID hides bookings owned by other users behind ErrBookingNotFound.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*BookingView, error) {
	snap, err := shared.LoadOwnedBooking(ctx, q.bookings, actor, id)
	if err != nil {
		return nil, err
	}

	rates, err := snap.Rates.RateCard()
	if err != nil {
		return nil, errs.Wrap(err, "booking car has an invalid rate card")
	}

	start, end := snap.StartAt.In(q.loc), snap.EndAt.In(q.loc)
	view := &BookingView{
		ID:        snap.ID,
		CarID:     snap.CarID,
		CarName:   snap.CarName,
		CarNumber: snap.CarNumber,
		StartAt:   start,
		EndAt:     end,
		StartDate: booking.DateOf(start, q.loc).String(),
		EndDate:   booking.DateOf(end, q.loc).String(),
		StartTime: booking.FormatClock(start),
		EndTime:   booking.FormatClock(end),
		Status:    snap.Status,
		CanExtend: booking.Status(snap.Status).CanExtend(),
		Rates: RatesView{
			Price:       rates.BaseRate().Amount(),
			DailyRate:   rates.DailyRate().Amount(),
			HalfDayRate: rates.HalfDayRate().Amount(),
		},
		CreatedAt: snap.CreatedAt,
	}
	if m, ok := rates.DiscountedRate(); ok {
		v := m.Amount()
		view.Rates.DiscountPrice = &v
	}
	if m, ok := rates.StoredHalfDayRate(); ok {
		v := m.Amount()
		view.Rates.HalfDayPrice = &v
	}
	return view, nil
}
