package components

import (
	"guideway/internal/handler"
	"guideway/internal/handler/api"
	"guideway/internal/handler/middleware"
	"guideway/internal/metrics"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewGuideHandler,
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		api.NewReviewHandler,
		api.NewAdminHandler,
		api.NewDashboardHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(
		metrics.Register,
		handler.NewRouter,
	),
)

func newHandlers(
	auth *api.AuthHandler,
	guide *api.GuideHandler,
	availability *api.AvailabilityHandler,
	booking *api.BookingHandler,
	review *api.ReviewHandler,
	admin *api.AdminHandler,
	dashboard *api.DashboardHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Guide:        guide,
		Availability: availability,
		Booking:      booking,
		Review:       review,
		Admin:        admin,
		Dashboard:    dashboard,
	}
}
