package shared

//go:generate mockgen -source=booked_ranges.go -destination=../../../tests/mock/shared/booked_ranges.go -package=sharedmock

import (
	"context"
	"log/slog"

	"booking-calculator/internal/domain/booking"
	"booking-calculator/internal/infra/snapshot"

	"github.com/google/uuid"
)

// BookedRangeProvider owns the per-car reserved interval snapshots used by a
// booking flow session. Nothing else reads or writes them.
type BookedRangeProvider interface {
	// Snapshot returns the cached set, loading it when missing or expired.
	Snapshot(ctx context.Context, carID uuid.UUID) booking.BookedRangeSet
	// Refresh always reloads the set and restarts its time to live.
	Refresh(ctx context.Context, carID uuid.UUID) booking.BookedRangeSet
	// Sweep drops expired snapshots.
	Sweep() int
}

type bookedRangeProviderImpl struct {
	reader BookedRangeReader
	store  snapshot.Storage[uuid.UUID, booking.BookedRangeSet]
	logger *slog.Logger
}

func NewBookedRangeProvider(reader BookedRangeReader, store snapshot.Storage[uuid.UUID, booking.BookedRangeSet], logger *slog.Logger) BookedRangeProvider {
	return &bookedRangeProviderImpl{reader: reader, store: store, logger: logger}
}

func (p *bookedRangeProviderImpl) Snapshot(ctx context.Context, carID uuid.UUID) booking.BookedRangeSet {
	if set, ok := p.store.Get(carID); ok {
		return set
	}
	return p.Refresh(ctx, carID)
}

// Refresh degrades to an empty set when the reserved intervals cannot be
// read. The failure is not cached so the next call retries.
func (p *bookedRangeProviderImpl) Refresh(ctx context.Context, carID uuid.UUID) booking.BookedRangeSet {
	rows, err := p.reader.FindByCarID(ctx, carID)
	if err != nil {
		p.logger.Warn("Booked ranges unavailable, proceeding without conflicts",
			slog.String("car_id", carID.String()),
			slog.String("error", err.Error()))
		p.store.Delete(carID)
		return booking.NewBookedRangeSet(nil)
	}

	intervals := make([]booking.TimeInterval, 0, len(rows))
	for _, row := range rows {
		iv, err := booking.NewTimeInterval(row.StartAt, row.EndAt)
		if err != nil {
			p.logger.Warn("Skipping malformed booked range",
				slog.String("booking_id", row.BookingID.String()),
				slog.String("error", err.Error()))
			continue
		}
		intervals = append(intervals, iv)
	}

	set := booking.NewBookedRangeSet(intervals)
	p.store.Set(carID, set)
	return set
}

func (p *bookedRangeProviderImpl) Sweep() int {
	removed := p.store.Sweep()
	p.logger.Debug("Booked range snapshots swept", slog.Int("removed", removed), slog.Int("cached", p.store.Len()))
	return removed
}
