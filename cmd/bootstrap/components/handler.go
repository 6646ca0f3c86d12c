package components

import (
	"movie-booking/internal/handler"
	"movie-booking/internal/handler/api"
	"movie-booking/internal/handler/middleware"
	"movie-booking/internal/pkg/clock"
	"movie-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
		NewRateLimiter,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(auth *api.AuthHandler, catalog *api.CatalogHandler, booking *api.BookingHandler) handler.Handlers {
	return handler.Handlers{Auth: auth, Catalog: catalog, Booking: booking}
}

func NewRateLimiter(cfg config.Config, rdb *redis.Client, clk clock.Clock) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RateLimit, rdb, clk)
}
