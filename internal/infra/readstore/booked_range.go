package readstore

import (
	"context"
	"log/slog"

	"booking-calculator/internal/infra"
	"booking-calculator/internal/infra/db"
	"booking-calculator/internal/pkg/pgconv"
	"booking-calculator/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const findBookedRangesByCarIDSQL = `
SELECT id, start_at, end_at
FROM bookings
WHERE car_id = $1
  AND status <> 'cancelled'
ORDER BY start_at, id`

type BookedRangeReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewBookedRangeReadStore(dbtx db.DBTX, logger *slog.Logger) *BookedRangeReadStore {
	return &BookedRangeReadStore{db: dbtx, logger: logger}
}

type bookedRangeRow struct {
	ID      pgtype.UUID
	StartAt pgtype.Timestamptz
	EndAt   pgtype.Timestamptz
}

func (r *BookedRangeReadStore) FindByCarID(ctx context.Context, carID uuid.UUID) ([]shared.BookedRangeSnapshot, error) {
	rows, err := r.db.Query(ctx, findBookedRangesByCarIDSQL, pgconv.UUIDToPgtype(carID))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to query booked ranges", err)
	}

	ranges, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (shared.BookedRangeSnapshot, error) {
		var br bookedRangeRow
		if err := row.Scan(&br.ID, &br.StartAt, &br.EndAt); err != nil {
			return shared.BookedRangeSnapshot{}, err
		}
		return toBookedRangeSnapshot(br), nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan booked ranges", err)
	}

	return ranges, nil
}

func toBookedRangeSnapshot(row bookedRangeRow) shared.BookedRangeSnapshot {
	return shared.BookedRangeSnapshot{
		BookingID: uuid.UUID(row.ID.Bytes),
		StartAt:   pgconv.TimeFromPgtype(row.StartAt),
		EndAt:     pgconv.TimeFromPgtype(row.EndAt),
	}
}
