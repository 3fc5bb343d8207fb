package components

import (
	"time"

	"booking-calculator/internal/domain/booking"
	"booking-calculator/internal/domain/extension"
	"booking-calculator/internal/infra/snapshot"
	"booking-calculator/internal/pkg/clock"
	"booking-calculator/internal/pkg/config"
	"booking-calculator/internal/usecase/commands"
	"booking-calculator/internal/usecase/queries"
	"booking-calculator/internal/usecase/shared"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config, clk clock.Clock) snapshot.Storage[uuid.UUID, booking.BookedRangeSet] {
		return snapshot.NewTTLStorage[uuid.UUID, booking.BookedRangeSet](cfg.Snapshot.TTL, clk)
	},
	func(cfg config.Config, clk clock.Clock) snapshot.Storage[uuid.UUID, *extension.Memo] {
		return snapshot.NewTTLStorage[uuid.UUID, *extension.Memo](cfg.Snapshot.TTL, clk)
	},
	shared.NewBookedRangeProvider,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(cars shared.CarReader, provider shared.BookedRangeProvider, clk clock.Clock, loc *time.Location, cfg config.Config) commands.ProposalCommands {
			return commands.NewProposalUseCase(cars, provider, clk, loc, cfg.Booking.WindowMonths)
		},
		commands.NewExtensionUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		func(cars shared.CarReader, provider shared.BookedRangeProvider, clk clock.Clock, loc *time.Location, cfg config.Config) queries.AvailabilityQueries {
			return queries.NewAvailabilityQueries(cars, provider, clk, loc, cfg.Booking.WindowMonths)
		},
		queries.NewBookingQueries,
	),
)
