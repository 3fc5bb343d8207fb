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

// Prices are NUMERIC(10,2); they are selected in minor units so no float
// rounding happens on the way in.
const findCarByIDSQL = `
SELECT id, name, vehicle_number,
       (price * 100)::BIGINT,
       (discountprice * 100)::BIGINT,
       (halfdayprice * 100)::BIGINT
FROM cars
WHERE id = $1`

type CarReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewCarReadStore(dbtx db.DBTX, logger *slog.Logger) *CarReadStore {
	return &CarReadStore{db: dbtx, logger: logger}
}

type carRow struct {
	ID            pgtype.UUID
	Name          string
	Number        string
	Price         int64
	DiscountPrice pgtype.Int8
	HalfDayPrice  pgtype.Int8
}

func (r *CarReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.CarSnapshot, error) {
	var row carRow
	err := r.db.QueryRow(ctx, findCarByIDSQL, pgconv.UUIDToPgtype(id)).Scan(
		&row.ID, &row.Name, &row.Number, &row.Price, &row.DiscountPrice, &row.HalfDayPrice,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "car not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to find car by ID", err)
	}

	return toCarSnapshot(row), nil
}

func toCarSnapshot(row carRow) *shared.CarSnapshot {
	return &shared.CarSnapshot{
		ID:     uuid.UUID(row.ID.Bytes),
		Name:   row.Name,
		Number: row.Number,
		Rates: shared.RateSnapshot{
			PriceMinor:         row.Price,
			DiscountPriceMinor: pgconv.Int64PtrFromPgtype(row.DiscountPrice),
			HalfDayPriceMinor:  pgconv.Int64PtrFromPgtype(row.HalfDayPrice),
		},
	}
}
