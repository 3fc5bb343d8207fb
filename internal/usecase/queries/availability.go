package queries

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability.go -package=queriesmock

import (
	"context"
	"time"

	"booking-calculator/internal/domain/booking"
	"booking-calculator/internal/pkg/clock"
	"booking-calculator/internal/usecase/shared"

	"github.com/google/uuid"
)

type CalendarRange struct {
	From *booking.Date
	To   *booking.Date
}

type AvailabilityQueries interface {
	// BookedRanges starts a booking flow session: the car's snapshot is
	// reloaded and returned.
	BookedRanges(ctx context.Context, carID uuid.UUID) ([]BookedRangeView, error)
	Calendar(ctx context.Context, carID uuid.UUID, rng CalendarRange) (*CalendarView, error)
}

type availabilityQueriesImpl struct {
	cars     shared.CarReader
	provider shared.BookedRangeProvider
	clock    clock.Clock
	loc      *time.Location
	months   int
}

func NewAvailabilityQueries(cars shared.CarReader, provider shared.BookedRangeProvider, clk clock.Clock, loc *time.Location, windowMonths int) AvailabilityQueries {
	return &availabilityQueriesImpl{
		cars:     cars,
		provider: provider,
		clock:    clk,
		loc:      loc,
		months:   windowMonths,
	}
}

func (q *availabilityQueriesImpl) BookedRanges(ctx context.Context, carID uuid.UUID) ([]BookedRangeView, error) {
	if err := q.ensureCar(ctx, carID); err != nil {
		return nil, err
	}

	set := q.provider.Refresh(ctx, carID)

	views := make([]BookedRangeView, 0, set.Len())
	for _, iv := range set.Intervals() {
		views = append(views, BookedRangeView{
			StartAt: iv.Start().In(q.loc),
			EndAt:   iv.End().In(q.loc),
		})
	}
	return views, nil
}

func (q *availabilityQueriesImpl) Calendar(ctx context.Context, carID uuid.UUID, rng CalendarRange) (*CalendarView, error) {
	if rng.From != nil && rng.To != nil && rng.To.Before(*rng.From) {
		return nil, booking.ErrEndBeforeStart
	}
	if err := q.ensureCar(ctx, carID); err != nil {
		return nil, err
	}

	window := booking.NewDateWindow(booking.DateOf(q.clock.Now(), q.loc), q.months)
	from, to := window.Min(), window.Max()
	if rng.From != nil {
		from = *rng.From
	}
	if rng.To != nil {
		to = *rng.To
	}

	view := &CalendarView{
		CarID:         carID,
		MinDate:       window.Min().String(),
		MaxDate:       window.Max().String(),
		DisabledDates: []string{},
	}

	clampedFrom, clampedTo, ok := window.Clamp(from, to)
	if !ok {
		// nothing selectable in the requested range
		view.From, view.To = from.String(), to.String()
		return view, nil
	}
	from, to = clampedFrom, clampedTo
	view.From, view.To = from.String(), to.String()

	set := q.provider.Snapshot(ctx, carID)
	for _, d := range set.DisabledDates(from, to, q.loc) {
		view.DisabledDates = append(view.DisabledDates, d.String())
	}
	return view, nil
}

func (q *availabilityQueriesImpl) ensureCar(ctx context.Context, carID uuid.UUID) error {
	_, err := shared.LoadCar(ctx, q.cars, carID)
	return err
}
