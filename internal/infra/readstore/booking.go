package readstore

import (
	"context"
	"log/slog"

	"booking-calculator/internal/infra"
	"booking-calculator/internal/infra/db"
	"booking-calculator/internal/pkg/pgconv"
	"booking-calculator/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const findBookingByIDSQL = `
SELECT b.id, b.user_id, b.car_id, c.name, c.vehicle_number,
       b.start_at, b.end_at, b.status,
       (c.price * 100)::BIGINT,
       (c.discountprice * 100)::BIGINT,
       (c.halfdayprice * 100)::BIGINT,
       b.created_at
FROM bookings b
JOIN cars c ON c.id = b.car_id
WHERE b.id = $1`

type BookingReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewBookingReadStore(dbtx db.DBTX, logger *slog.Logger) *BookingReadStore {
	return &BookingReadStore{db: dbtx, logger: logger}
}

type bookingRow struct {
	ID            pgtype.UUID
	UserID        pgtype.UUID
	CarID         pgtype.UUID
	CarName       string
	CarNumber     string
	StartAt       pgtype.Timestamptz
	EndAt         pgtype.Timestamptz
	Status        string
	Price         int64
	DiscountPrice pgtype.Int8
	HalfDayPrice  pgtype.Int8
	CreatedAt     pgtype.Timestamptz
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	var row bookingRow
	err := r.db.QueryRow(ctx, findBookingByIDSQL, pgconv.UUIDToPgtype(id)).Scan(
		&row.ID, &row.UserID, &row.CarID, &row.CarName, &row.CarNumber,
		&row.StartAt, &row.EndAt, &row.Status,
		&row.Price, &row.DiscountPrice, &row.HalfDayPrice,
		&row.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find booking by ID", err)
	}

	return toBookingSnapshot(row), nil
}

func toBookingSnapshot(row bookingRow) *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:        uuid.UUID(row.ID.Bytes),
		UserID:    uuid.UUID(row.UserID.Bytes),
		CarID:     uuid.UUID(row.CarID.Bytes),
		CarName:   row.CarName,
		CarNumber: row.CarNumber,
		StartAt:   pgconv.TimeFromPgtype(row.StartAt),
		EndAt:     pgconv.TimeFromPgtype(row.EndAt),
		Status:    row.Status,
		Rates: shared.RateSnapshot{
			PriceMinor:         row.Price,
			DiscountPriceMinor: pgconv.Int64PtrFromPgtype(row.DiscountPrice),
			HalfDayPriceMinor:  pgconv.Int64PtrFromPgtype(row.HalfDayPrice),
		},
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
