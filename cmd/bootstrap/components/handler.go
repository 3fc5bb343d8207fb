package components

import (
	"booking-calculator/internal/handler"
	"booking-calculator/internal/handler/api"
	"booking-calculator/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewProposalHandler,
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
		func(a *api.AvailabilityHandler, p *api.ProposalHandler, b *api.BookingHandler) handler.Handlers {
			return handler.Handlers{Availability: a, Proposal: p, Booking: b}
		},
	),
	fx.Invoke(handler.NewRouter),
)
