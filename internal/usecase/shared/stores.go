package shared

//go:generate mockgen -source=stores.go -destination=../../../tests/mock/shared/stores.go -package=sharedmock

import (
	"context"

	"booking-calculator/internal/infra"
	"booking-calculator/internal/pkg/errs"

	"github.com/google/uuid"
)

type CarReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CarSnapshot, error)
}

type BookingReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
}

// BookedRangeReader lists the non-cancelled bookings of a car ordered by start.
type BookedRangeReader interface {
	FindByCarID(ctx context.Context, carID uuid.UUID) ([]BookedRangeSnapshot, error)
}

// LoadOwnedBooking reports bookings of other users as not found.
func LoadOwnedBooking(ctx context.Context, bookings BookingReader, actor uuid.UUID, id uuid.UUID) (*BookingSnapshot, error) {
	snap, err := bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to load booking")
	}
	if snap.UserID != actor {
		return nil, errs.ErrBookingNotFound
	}
	return snap, nil
}

// LoadCar maps a missing car to errs.ErrCarNotFound.
func LoadCar(ctx context.Context, cars CarReader, id uuid.UUID) (*CarSnapshot, error) {
	snap, err := cars.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCarNotFound
		}
		return nil, errs.Wrap(err, "failed to load car")
	}
	return snap, nil
}
