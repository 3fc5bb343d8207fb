package components

import (
	"booking-calculator/internal/infra/db"
	"booking-calculator/internal/infra/readstore"
	"booking-calculator/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewCarReadStore,
			fx.As(new(shared.CarReader)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(shared.BookingReader)),
		),
		fx.Annotate(
			readstore.NewBookedRangeReadStore,
			fx.As(new(shared.BookedRangeReader)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
